// Package config loads the prompt helper configuration from YAML, with
// optional per-repository overrides taken from `git config` keys.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/chmouel/gitprompt/internal/prompt"
)

// Color modes for the decoration renderer.
const (
	ColorZsh  = "zsh"  // literal zsh prompt tokens (default)
	ColorANSI = "ansi" // escape sequences rendered through lipgloss
	ColorNone = "none" // no styling
	ColorAuto = "auto" // ansi when stdout is a terminal, none otherwise
)

// AppConfig defines the git-prompt configuration options.
type AppConfig struct {
	ColorMode      string            // zsh, ansi, none or auto
	Theme          string            // lipgloss theme used in ansi mode
	HashChars      int               // hash characters shown on a detached HEAD
	DetachedPrefix string            // marker prepended to a detached-HEAD hash
	Symbols        prompt.Symbols    // glyphs per decoration part
	Styles         map[string]string // marker -> template with one %s, zsh mode
	DebugLog       string            // debug log file path, empty disables
}

// DefaultConfig returns the default configuration values, matching the
// classic zsh-git-prompt glyphs and zsh color tokens.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		ColorMode:      ColorZsh,
		Theme:          "default",
		HashChars:      7,
		DetachedPrefix: ":",
		Symbols:        prompt.DefaultSymbols(),
		Styles: map[string]string{
			prompt.MarkerBranch:   "${fg_bold[magenta]}%s${reset_color}",
			prompt.MarkerClean:    "${fg_bold[green]}%s${reset_color}",
			prompt.MarkerStaged:   "${fg_bold[magenta]}%s${reset_color}",
			prompt.MarkerModified: "${fg_bold[blue]}%s${reset_color}",
		},
	}
}

// ResolveColorMode maps the configured mode to a concrete one, resolving
// "auto" based on whether stdout is a terminal.
func (c *AppConfig) ResolveColorMode(isTerminal bool) string {
	if c.ColorMode != ColorAuto {
		return c.ColorMode
	}
	if isTerminal {
		return ColorANSI
	}
	return ColorNone
}

// LoadConfig loads the configuration, layering (lowest to highest):
// defaults, the YAML config file, and `git config` gp.* overrides from the
// current repository. A missing config file is not an error.
func LoadConfig(configPath string) (*AppConfig, error) {
	cfg := DefaultConfig()

	paths := []string{configPath}
	if configPath == "" {
		base := filepath.Join(getConfigDir(), "git-prompt")
		paths = []string{
			filepath.Join(base, "config.yaml"),
			filepath.Join(base, "config.yml"),
		}
	}

	for _, path := range paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		// #nosec G304 -- path comes from the user's own config directory
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		var yamlData map[string]any
		if err := yaml.Unmarshal(data, &yamlData); err != nil {
			return cfg, err
		}

		applyValues(cfg, yamlData)
		break
	}

	overrides, err := loadGitConfig("")
	if err == nil && len(overrides) > 0 {
		applyValues(cfg, overrides)
	}

	return cfg, nil
}

// applyValues merges a loosely-typed key/value mapping into cfg. Unknown
// keys are ignored so older binaries tolerate newer config files.
func applyValues(cfg *AppConfig, data map[string]any) {
	for key, value := range data {
		switch key {
		case "color_mode":
			cfg.ColorMode = coerceColorMode(value, cfg.ColorMode)
		case "theme":
			cfg.Theme = coerceString(value, cfg.Theme)
		case "hash_chars":
			cfg.HashChars = coerceInt(value, cfg.HashChars)
		case "detached_prefix":
			cfg.DetachedPrefix = coerceString(value, cfg.DetachedPrefix)
		case "debug_log":
			cfg.DebugLog = coerceString(value, cfg.DebugLog)
		case "symbols":
			applySymbols(cfg, value)
		case "styles":
			applyStyles(cfg, value)
		default:
			// flat override form used by git config: symbol_clean, style_branch
			switch {
			case strings.HasPrefix(key, "symbol_"):
				applySymbol(cfg, strings.TrimPrefix(key, "symbol_"), value)
			case strings.HasPrefix(key, "style_"):
				if s := coerceString(value, ""); s != "" {
					cfg.Styles[strings.TrimPrefix(key, "style_")] = s
				}
			}
		}
	}
}

func applySymbols(cfg *AppConfig, value any) {
	m, ok := value.(map[string]any)
	if !ok {
		return
	}
	for name, v := range m {
		applySymbol(cfg, name, v)
	}
}

func applySymbol(cfg *AppConfig, name string, value any) {
	switch name {
	case "ahead":
		cfg.Symbols.Ahead = coerceString(value, cfg.Symbols.Ahead)
	case "behind":
		cfg.Symbols.Behind = coerceString(value, cfg.Symbols.Behind)
	case "clean":
		cfg.Symbols.Clean = coerceString(value, cfg.Symbols.Clean)
	case "staged":
		cfg.Symbols.Staged = coerceString(value, cfg.Symbols.Staged)
	case "modified":
		cfg.Symbols.Modified = coerceString(value, cfg.Symbols.Modified)
	case "untracked":
		cfg.Symbols.Untracked = coerceString(value, cfg.Symbols.Untracked)
	}
}

func applyStyles(cfg *AppConfig, value any) {
	m, ok := value.(map[string]any)
	if !ok {
		return
	}
	for marker, v := range m {
		if s := coerceString(v, ""); s != "" {
			cfg.Styles[marker] = s
		}
	}
}

func coerceColorMode(value any, defaultVal string) string {
	mode := strings.ToLower(strings.TrimSpace(coerceString(value, defaultVal)))
	switch mode {
	case ColorZsh, ColorANSI, ColorNone, ColorAuto:
		return mode
	}
	return defaultVal
}

func coerceString(value any, defaultVal string) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	}
	return defaultVal
}

func coerceInt(value any, defaultVal int) int {
	switch v := value.(type) {
	case int:
		return v
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
	}
	return defaultVal
}

func getConfigDir() string {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}
