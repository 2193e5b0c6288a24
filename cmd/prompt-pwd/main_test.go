package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := newApp(&stdout, &stderr)
	err := app.Run(append([]string{"prompt-pwd"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestRunTruncatesPath(t *testing.T) {
	t.Setenv("HOME", "/Users/alice")

	stdout, _, err := runApp(t, "-n", "2", "/Users/alice/proj/src/lib")
	require.NoError(t, err)

	assert.Equal(t, "~/p/src/lib", stdout)
}

func TestRunDefaultKeepsLastSegment(t *testing.T) {
	t.Setenv("HOME", "/nonexistent-home")

	stdout, _, err := runApp(t, "/alpha/beta/gamma/delta")
	require.NoError(t, err)

	assert.Equal(t, "/a/b/g/delta", stdout)
}

func TestRunNoTilde(t *testing.T) {
	t.Setenv("HOME", "/home/bob")

	stdout, _, err := runApp(t, "--no-tilde", "/home/bob/work")
	require.NoError(t, err)

	assert.Equal(t, "/h/b/work", stdout)
}

func TestRunDebugWritesRawPathToStderr(t *testing.T) {
	t.Setenv("HOME", "/home/bob")

	stdout, stderr, err := runApp(t, "--debug", "/home/bob/work")
	require.NoError(t, err)

	assert.Equal(t, "/home/bob/work", stderr)
	assert.Equal(t, "~/work", stdout)
}

func TestRunMissingHome(t *testing.T) {
	t.Setenv("HOME", "")

	_, _, err := runApp(t, "/some/path")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HOME")
}

func TestRunMissingHomeAllowedWithNoTilde(t *testing.T) {
	t.Setenv("HOME", "")

	stdout, _, err := runApp(t, "--no-tilde", "/some/long/path")
	require.NoError(t, err)

	assert.Equal(t, "/s/l/path", stdout)
}

func TestRunNoOutputNewline(t *testing.T) {
	t.Setenv("HOME", "/home/bob")

	stdout, _, err := runApp(t, "/home/bob")
	require.NoError(t, err)

	assert.Equal(t, "~", stdout)
	assert.NotContains(t, stdout, "\n")
}
