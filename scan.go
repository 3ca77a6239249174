package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"github.com/vyPal/langscan/lib/cache"
	"github.com/vyPal/langscan/lib/project"
	"github.com/vyPal/langscan/lib/report"
	"github.com/vyPal/langscan/lib/source"
)

func init() {
	commands = append(commands, &cli.Command{
		Name:      "scan",
		Aliases:   []string{"s"},
		Usage:     "Scan source files and report tokens, symbols and lexical errors",
		Category:  "analyze",
		ArgsUsage: "[files...]",
		Description: "Scans the given files, or the sources listed in " + project.FileName +
			" when no files are given.\nExits with status 1 when any lexical error is found.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "The path to the config file. ",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Also write the report to this file",
			},
			&cli.StringFlag{
				Name:    "rev",
				Aliases: []string{"r"},
				Usage:   "Scan the files as of this git revision",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Write the results as JSON",
			},
			&cli.BoolFlag{
				Name:  "cache",
				Usage: "Reuse results for unchanged sources",
			},
			&cli.StringFlag{
				Name:  "cache-dir",
				Usage: "Where cached results are kept. Defaults to the user cache directory",
			},
			&cli.BoolFlag{
				Name:  "no-tokens",
				Usage: "Leave the token stream out of the report",
			},
			&cli.BoolFlag{
				Name:  "no-symbols",
				Usage: "Leave the symbol table out of the report",
			},
		},
		Action: scan,
	})
}

func loadConfig(c *cli.Context) (*project.Config, error) {
	if path := c.String("config"); path != "" {
		return project.LoadFile(path)
	}
	if c.Args().Present() {
		return nil, nil
	}
	return project.Load(".")
}

func scan(c *cli.Context) error {
	conf, err := loadConfig(c)
	if err != nil {
		return cli.Exit(color.RedString("Error loading config: %s", err), 1)
	}

	var files []string
	opts := report.DefaultOptions
	loader := source.Loader{}
	useCache, asJSON, output := false, false, ""
	if conf != nil {
		ok, err := conf.CheckVersion(c.App.Version)
		if err != nil {
			return cli.Exit(color.RedString("Error checking version: %s", err), 1)
		}
		if !ok {
			return cli.Exit(color.RedString("Error: project requires langscan %s, this is %s", conf.Requires, c.App.Version), 1)
		}

		opts = conf.Report.Options()
		loader.Revision = conf.Revision
		useCache, asJSON, output = conf.Cache, conf.Report.JSON, conf.Output
	}

	if c.Args().Present() {
		files = c.Args().Slice()
	} else {
		files, err = conf.Files()
		if err != nil {
			return cli.Exit(color.RedString("Error: %s", err), 1)
		}
	}

	if c.IsSet("rev") {
		loader.Revision = c.String("rev")
	}
	if c.IsSet("output") {
		output = c.String("output")
	}
	useCache = useCache || c.Bool("cache")
	asJSON = asJSON || c.Bool("json")
	opts.Tokens = opts.Tokens && !c.Bool("no-tokens")
	opts.Symbols = opts.Symbols && !c.Bool("no-symbols")

	var w io.Writer = c.App.Writer
	if output != "" {
		file, err := os.Create(output)
		if err != nil {
			return cli.Exit(color.RedString("Error creating output file: %s", err), 1)
		}
		defer file.Close()

		noColor := color.NoColor
		color.NoColor = true
		defer func() {
			color.NoColor = noColor
		}()
		w = io.MultiWriter(w, file)
	}

	var store *cache.Cache
	if useCache {
		store, err = cache.Open(c.String("cache-dir"))
		if err != nil {
			return cli.Exit(color.RedString("Error opening cache: %s", err), 1)
		}
	}

	results := make([]*report.Result, 0, len(files))
	failed := 0
	for _, file := range files {
		src, err := loader.Load(file)
		if err != nil {
			return cli.Exit(color.RedString("Error reading %s: %s", file, err), 1)
		}

		var result *report.Result
		hit := false
		if store != nil {
			result, hit, err = store.Scan(file, src)
		} else {
			result, err = report.Scan(file, src)
		}
		if err != nil {
			return cli.Exit(color.RedString("Error scanning %s: %s", file, err), 1)
		}
		logger.Debug("scanned",
			"file", file,
			"revision", loader.Revision,
			"tokens", len(result.Tokens),
			"errors", len(result.Diagnostics),
			"cached", hit,
		)

		if !result.Clean() {
			failed++
		}
		if !asJSON {
			result.Write(w, opts)
		}
		results = append(results, result)
	}

	if asJSON {
		if err := report.WriteJSON(w, results); err != nil {
			return cli.Exit(color.RedString("Error encoding results: %s", err), 1)
		}
	}

	if failed > 0 {
		return cli.Exit(color.RedString("Lexical errors found in %d of %d file(s)", failed, len(files)), 1)
	}
	fmt.Fprintln(c.App.ErrWriter, color.GreenString("Scanned %d file(s) without lexical errors", len(files)))
	return nil
}
