// Package prompt renders a status summary into a shell prompt decoration.
// The renderer is pure: terminal styling is injected as a StyleFunc so the
// output can be tested without a terminal.
package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chmouel/gitprompt/internal/status"
)

// Marker names passed to a StyleFunc.
const (
	MarkerBranch   = "branch"
	MarkerClean    = "clean"
	MarkerStaged   = "staged"
	MarkerModified = "modified"
)

// Symbols holds the glyphs used for each part of the decoration.
type Symbols struct {
	Ahead     string
	Behind    string
	Clean     string
	Staged    string
	Modified  string
	Untracked string
}

// DefaultSymbols returns the classic zsh-git-prompt glyphs.
func DefaultSymbols() Symbols {
	return Symbols{
		Ahead:     "↑",
		Behind:    "↓",
		Clean:     "✓",
		Staged:    "•",
		Modified:  "+",
		Untracked: "...",
	}
}

// StyleFunc wraps text in terminal styling for a named marker.
type StyleFunc func(marker, text string) string

// Plain is a StyleFunc that applies no styling.
func Plain(_, text string) string { return text }

// TemplateStyle builds a StyleFunc from marker templates carrying a single
// %s verb, e.g. "${fg_bold[green]}%s${reset_color}". Markers without a
// template are left unstyled.
func TemplateStyle(templates map[string]string) StyleFunc {
	return func(marker, text string) string {
		tpl := templates[marker]
		if tpl == "" {
			return text
		}
		return fmt.Sprintf(tpl, text)
	}
}

// Renderer formats a status.Summary as a prompt decoration.
type Renderer struct {
	symbols Symbols
	style   StyleFunc
}

// New returns a Renderer using the given symbols and styling.
func New(symbols Symbols, style StyleFunc) *Renderer {
	if style == nil {
		style = Plain
	}
	return &Renderer{symbols: symbols, style: style}
}

// Render returns the decoration " (branch↑A↓B|status)". Parts that do not
// apply contribute nothing, there are no separators between markers.
func (r *Renderer) Render(s *status.Summary) string {
	var b strings.Builder

	b.WriteString(" (")
	b.WriteString(r.style(MarkerBranch, s.Branch))

	if s.Ahead > 0 {
		b.WriteString(r.symbols.Ahead)
		b.WriteString(strconv.Itoa(s.Ahead))
	}
	if s.Behind > 0 {
		b.WriteString(r.symbols.Behind)
		b.WriteString(strconv.Itoa(s.Behind))
	}

	b.WriteString("|")
	b.WriteString(r.statusMarker(s))
	b.WriteString(")")

	return b.String()
}

func (r *Renderer) statusMarker(s *status.Summary) string {
	if s.Clean() {
		return r.style(MarkerClean, r.symbols.Clean)
	}

	var b strings.Builder
	if s.Staged > 0 {
		b.WriteString(r.style(MarkerStaged, r.symbols.Staged+strconv.Itoa(s.Staged)))
	}
	if s.Modified > 0 {
		b.WriteString(r.style(MarkerModified, r.symbols.Modified+strconv.Itoa(s.Modified)))
	}
	if s.Untracked > 0 {
		b.WriteString(r.symbols.Untracked)
	}
	return b.String()
}
