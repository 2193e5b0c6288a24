// Package git runs git subprocesses for the prompt helpers.
package git

import (
	"context"
	"errors"
	"os/exec"

	"github.com/chmouel/gitprompt/internal/log"
)

// ErrUnavailable is returned when git exits non-zero or cannot be run at
// all, typically because the working directory is not inside a repository.
// Callers render no decoration in that case; it is not an application error.
var ErrUnavailable = errors.New("git status unavailable")

// execGit runs git with the given argument vector and returns its stdout.
// Exposed as a package variable so tests can stub subprocess execution
// without depending on a real repository.
var execGit = func(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	// Output captures stdout only; stderr is discarded.
	return cmd.Output()
}

// Status returns the raw output of `git status --porcelain=2 --branch` for
// the current working directory.
func Status(ctx context.Context) (string, error) {
	out, err := execGit(ctx, "status", "--porcelain=2", "--branch")
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			log.Printf("git: status exited %d", exitErr.ExitCode())
		} else {
			log.Printf("git: %v", err)
		}
		return "", ErrUnavailable
	}

	return string(out), nil
}
