package config

import (
	"os/exec"
	"strings"
)

// gitConfigMock allows tests to mock git config output.
var gitConfigMock func(args []string, repoPath string) (string, error)

// runGitConfig executes git config and returns raw output.
func runGitConfig(args []string, repoPath string) (string, error) {
	if gitConfigMock != nil {
		return gitConfigMock(args, repoPath)
	}

	cmd := exec.Command("git", args...)
	if repoPath != "" {
		cmd.Dir = repoPath
	}

	output, err := cmd.Output()
	if err != nil {
		// git config exits 1 when no key matches, which is not an error
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			return "", nil
		}
		return "", err
	}
	return string(output), nil
}

// parseGitConfigOutput parses `git config --get-regexp` output into a map.
// Input format: "gp.color_mode ansi\ngp.symbol_clean ok\n". Later values
// win when a key repeats (matching git's own last-one-wins semantics).
func parseGitConfigOutput(output string) map[string]any {
	values := make(map[string]any)
	if output == "" {
		return values
	}

	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		if line == "" {
			continue
		}

		// SplitN keeps values containing spaces intact
		parts := strings.SplitN(line, " ", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimPrefix(parts[0], "gp.")
		values[key] = parts[1]
	}

	return values
}

// loadGitConfig reads gp.* keys from the repository-local git config so a
// repo can carry its own prompt styling. Failures are reported to the
// caller, which treats them as "no overrides".
func loadGitConfig(repoPath string) (map[string]any, error) {
	output, err := runGitConfig([]string{"config", "--get-regexp", `^gp\.`}, repoPath)
	if err != nil {
		return nil, err
	}
	return parseGitConfigOutput(output), nil
}
