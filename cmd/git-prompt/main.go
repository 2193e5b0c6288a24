// Package main is the entry point for git-prompt, which prints a compact
// Git status decoration for a shell prompt.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chmouel/gitprompt/internal/buildinfo"
	"github.com/chmouel/gitprompt/internal/config"
	"github.com/chmouel/gitprompt/internal/git"
	"github.com/chmouel/gitprompt/internal/log"
	"github.com/chmouel/gitprompt/internal/prompt"
	"github.com/chmouel/gitprompt/internal/status"
	"github.com/chmouel/gitprompt/internal/theme"
	urfavecli "github.com/urfave/cli/v2"
	"golang.org/x/term"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	buildinfo.Set(version, commit, date)
	buildinfo.Enrich()

	app := newApp(os.Stdout)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		_ = log.Close()
		os.Exit(1)
	}
	_ = log.Close()
}

func newApp(stdout io.Writer) *urfavecli.App {
	return &urfavecli.App{
		Name:            "git-prompt",
		Usage:           "Print a Git status decoration for a shell prompt",
		Version:         buildinfo.Version(),
		HideHelpCommand: true,
		Action: func(c *urfavecli.Context) error {
			return run(c.Context, stdout)
		},
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	if err := log.SetFile(cfg.DebugLog); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening debug log file %q: %v\n", cfg.DebugLog, err)
	}

	raw, err := git.Status(ctx)
	if err != nil {
		if errors.Is(err, git.ErrUnavailable) {
			// not inside a repository, the prompt simply omits the segment
			return nil
		}
		return err
	}

	summary, err := status.ParseWith(raw, status.Options{
		HashChars:      cfg.HashChars,
		DetachedPrefix: cfg.DetachedPrefix,
	})
	if err != nil {
		return err
	}

	renderer := prompt.New(cfg.Symbols, styleFor(cfg))
	fmt.Fprint(stdout, renderer.Render(summary))
	return nil
}

func styleFor(cfg *config.AppConfig) prompt.StyleFunc {
	isTerminal := term.IsTerminal(int(os.Stdout.Fd()))
	switch cfg.ResolveColorMode(isTerminal) {
	case config.ColorANSI:
		return theme.ByName(cfg.Theme).Style
	case config.ColorNone:
		return prompt.Plain
	default:
		return prompt.TemplateStyle(cfg.Styles)
	}
}
