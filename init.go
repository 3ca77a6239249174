package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"github.com/vyPal/langscan/lib/project"
	"github.com/vyPal/langscan/util"
)

const sampleProgram = `## A first program
start
  declare Count = 0;
  loop (Count < 10) {
    Count += 1;
  }
  output("Done");
finish
`

func init() {
	commands = append(commands, &cli.Command{
		Name:      "init",
		Usage:     "Initialize a new langscan project",
		Category:  "project",
		ArgsUsage: "[directory]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "The name of the project",
			},
			&cli.StringSliceFlag{
				Name:    "source",
				Aliases: []string{"s"},
				Usage:   "A glob of source files to scan",
			},
			&cli.StringFlag{
				Name:  "requires",
				Usage: "The langscan versions the project accepts, e.g. ^0.1.0",
			},
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Use the default configuration without prompting",
			},
			&cli.BoolFlag{
				Name:    "force",
				Aliases: []string{"f"},
				Usage:   "Overwrite an existing " + project.FileName,
			},
		},
		Action: initProject,
	})
}

func initProject(c *cli.Context) error {
	rootDir := c.Args().First()
	if rootDir == "" {
		rootDir = "."
	}
	if err := os.MkdirAll(rootDir, 0755); err != nil {
		return cli.Exit(color.RedString("Error creating project directory: %s", err), 1)
	}

	abs, err := filepath.Abs(rootDir)
	if err != nil {
		return err
	}

	conf := project.Config{}
	conf.CreateDefault(filepath.Base(abs))
	if !c.Bool("yes") && !util.PromptYN("Use default configuration?", true) {
		conf.Name = util.PromptString("Project name", conf.Name)
		conf.Description = util.PromptString("Project description", conf.Description)
		conf.Sources = []string{util.PromptString("Source files", conf.Sources[0])}
		conf.Requires = util.PromptString("Required langscan version", "^"+version)
	}
	if c.IsSet("name") {
		conf.Name = c.String("name")
	}
	if c.IsSet("source") {
		conf.Sources = c.StringSlice("source")
	}
	if c.IsSet("requires") {
		conf.Requires = c.String("requires")
	}

	path := filepath.Join(rootDir, project.FileName)
	saved, err := conf.Save(path, c.Bool("force"))
	if err != nil {
		return cli.Exit(color.RedString("Error writing %s: %s", path, err), 1)
	}
	if !saved {
		fmt.Fprintln(c.App.Writer, "Kept existing", path)
		return nil
	}
	fmt.Fprintln(c.App.Writer, "Created file:", path)

	if len(conf.Sources) == 1 && conf.Sources[0] == "tests/*.lang" {
		sample := filepath.Join(rootDir, "tests", "main.lang")
		if _, err := os.Stat(sample); os.IsNotExist(err) {
			if err := os.MkdirAll(filepath.Dir(sample), 0755); err != nil {
				return err
			}
			if err := os.WriteFile(sample, []byte(sampleProgram), 0644); err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, "Created file:", sample)
		}
	}

	fmt.Fprintln(c.App.Writer, "----------------------------------------")
	fmt.Fprintln(c.App.Writer, "Project initialized successfully!")
	fmt.Fprintln(c.App.Writer, "Run 'cd", rootDir, "&& langscan scan' to scan the project.")
	fmt.Fprintln(c.App.Writer, "----------------------------------------")
	return nil
}
