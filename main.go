package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"github.com/vyPal/langscan/lib/logs"
)

const version = "0.1.0"

var (
	commands []*cli.Command
	logger   = slog.Default()
)

func newApp() *cli.App {
	var logCloser io.Closer

	return &cli.App{
		Name:                   "langscan",
		Usage:                  "Lexical analysis for Pascal-case identifier programs",
		Version:                version,
		EnableBashCompletion:   true,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "One of debug, info, warn or error",
				Value: "warn",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "Also write JSON log records to this file",
			},
		},
		Before: func(c *cli.Context) error {
			l, closer, err := logs.New(logs.Options{
				Level:  c.String("log-level"),
				Writer: c.App.ErrWriter,
				File:   c.String("log-file"),
			})
			if err != nil {
				return cli.Exit(color.RedString("Error setting up logging: %s", err), 1)
			}
			logger, logCloser = l, closer
			return nil
		},
		After: func(c *cli.Context) error {
			if logCloser != nil {
				return logCloser.Close()
			}
			return nil
		},
		Commands: commands,
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %s", err))
		os.Exit(1)
	}
}
