// Package theme provides lipgloss style sets for the ANSI color mode.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the styles applied to each prompt marker.
type Theme struct {
	Branch   lipgloss.Style
	Clean    lipgloss.Style
	Staged   lipgloss.Style
	Modified lipgloss.Style
}

// Theme names.
const (
	DefaultName = "default"
	BrightName  = "bright"
)

// Default returns the standard theme, matching the classic zsh-git-prompt
// palette: magenta branch and staged markers, green clean, blue modified.
func Default() *Theme {
	return &Theme{
		Branch:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
		Clean:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		Staged:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
		Modified: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
	}
}

// Bright returns a high-intensity variant for dark terminals.
func Bright() *Theme {
	return &Theme{
		Branch:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
		Clean:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		Staged:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
		Modified: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
	}
}

// ByName returns the theme for name, falling back to Default.
func ByName(name string) *Theme {
	switch name {
	case BrightName:
		return Bright()
	default:
		return Default()
	}
}

// AvailableThemes lists the selectable theme names.
func AvailableThemes() []string {
	return []string{DefaultName, BrightName}
}

// Style renders text with the style registered for the named marker.
// Unknown markers are returned unstyled.
func (t *Theme) Style(marker, text string) string {
	switch marker {
	case "branch":
		return t.Branch.Render(text)
	case "clean":
		return t.Clean.Render(text)
	case "staged":
		return t.Staged.Render(text)
	case "modified":
		return t.Modified.Render(text)
	default:
		return text
	}
}
