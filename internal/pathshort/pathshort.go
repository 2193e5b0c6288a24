// Package pathshort abbreviates filesystem paths for prompt display.
package pathshort

import (
	"strings"
	"unicode/utf8"
)

// Truncate shortens path for display. When homeTilde is set, the first
// occurrence of the literal home value anywhere in the string is replaced
// with "~" (substring match, not prefix-anchored, to keep the historical
// behavior). When nFull > 0, every segment at distance nFull or more from
// the end is reduced to its first character; the last nFull segments are
// kept verbatim. The empty leading segment of an absolute path is left
// untouched.
func Truncate(path, home string, homeTilde bool, nFull int) string {
	if homeTilde && home != "" {
		path = strings.Replace(path, home, "~", 1)
	}

	if nFull <= 0 {
		return path
	}

	pieces := strings.Split(path, "/")
	for i := range pieces {
		j := len(pieces) - i - 1
		if i >= nFull && pieces[j] != "" {
			pieces[j] = firstRune(pieces[j])
		}
	}
	return strings.Join(pieces, "/")
}

func firstRune(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}
