// Package main is the entry point for prompt-pwd, which prints the working
// directory abbreviated for a shell prompt.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/chmouel/gitprompt/internal/buildinfo"
	"github.com/chmouel/gitprompt/internal/pathshort"
	urfavecli "github.com/urfave/cli/v2"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	buildinfo.Set(version, commit, date)
	buildinfo.Enrich()

	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *urfavecli.App {
	return &urfavecli.App{
		Name:            "prompt-pwd",
		Usage:           "Print the working directory abbreviated for a shell prompt",
		ArgsUsage:       "[PATH]",
		Version:         buildinfo.Version(),
		HideHelpCommand: true,

		Flags: []urfavecli.Flag{
			&urfavecli.IntFlag{
				Name:  "n",
				Value: 1,
				Usage: "Number of trailing directories kept full width",
			},
			&urfavecli.BoolFlag{
				Name:  "no-tilde",
				Usage: "Do not compress $HOME to '~'",
			},
			&urfavecli.BoolFlag{
				Name:  "debug",
				Usage: "Print the raw PATH to stderr",
			},
		},

		Action: func(c *urfavecli.Context) error {
			return run(c, stdout, stderr)
		},
	}
}

func run(c *urfavecli.Context, stdout, stderr io.Writer) error {
	path := c.Args().First()
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving working directory: %w", err)
		}
		path = wd
	}

	if c.Bool("debug") {
		fmt.Fprint(stderr, path)
	}

	homeTilde := !c.Bool("no-tilde")
	home := ""
	if homeTilde {
		home = os.Getenv("HOME")
		if home == "" {
			return fmt.Errorf("HOME is not set; set it or pass --no-tilde")
		}
	}

	fmt.Fprint(stdout, pathshort.Truncate(path, home, homeTilde, c.Int("n")))
	return nil
}
