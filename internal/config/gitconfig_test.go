package config

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGitConfigOutput(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected map[string]any
	}{
		{
			name:   "single values",
			output: "gp.color_mode ansi\ngp.hash_chars 9\n",
			expected: map[string]any{
				"color_mode": "ansi",
				"hash_chars": "9",
			},
		},
		{
			name:   "values with spaces",
			output: "gp.style_branch ${fg_bold[cyan]}%s${reset_color}\n",
			expected: map[string]any{
				"style_branch": "${fg_bold[cyan]}%s${reset_color}",
			},
		},
		{
			name:   "repeated key keeps last value",
			output: "gp.color_mode zsh\ngp.color_mode none\n",
			expected: map[string]any{
				"color_mode": "none",
			},
		},
		{
			name:     "empty output",
			output:   "",
			expected: map[string]any{},
		},
		{
			name:     "whitespace only",
			output:   "   \n\n  ",
			expected: map[string]any{},
		},
		{
			name:   "blank lines skipped",
			output: "gp.theme bright\n\ngp.debug_log /tmp/gp.log\n\n",
			expected: map[string]any{
				"theme":     "bright",
				"debug_log": "/tmp/gp.log",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseGitConfigOutput(tt.output))
		})
	}
}

func TestLoadGitConfigKeyNotFound(t *testing.T) {
	gitConfigMock = func(_ []string, _ string) (string, error) {
		return "", nil
	}
	t.Cleanup(func() { gitConfigMock = nil })

	values, err := loadGitConfig("")
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestLoadGitConfigError(t *testing.T) {
	gitConfigMock = func(_ []string, _ string) (string, error) {
		return "", fmt.Errorf("git not found")
	}
	t.Cleanup(func() { gitConfigMock = nil })

	_, err := loadGitConfig("")
	assert.Error(t, err)
}
