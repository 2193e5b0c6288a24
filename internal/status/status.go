// Package status parses `git status --porcelain=2 --branch` output into a
// summary suitable for prompt rendering.
package status

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/chmouel/gitprompt/internal/log"
)

// ErrNoBranchHeader is returned when the porcelain stream carries no
// `# branch.head` header. Every valid `--porcelain=2 --branch` invocation
// emits one, so this signals an unsupported git version or output format.
var ErrNoBranchHeader = errors.New("git did not return branch information")

// Summary is the parsed repository state used by the renderer.
type Summary struct {
	Branch    string
	Untracked int
	Staged    int
	Modified  int
	Ahead     int
	Behind    int
}

// Clean reports whether the worktree has no pending changes.
func (s *Summary) Clean() bool {
	return s.Untracked+s.Staged+s.Modified == 0
}

// Options control how the branch name is resolved on a detached HEAD.
type Options struct {
	// HashChars is the number of commit hash characters printed when HEAD
	// is detached and no branch name is available.
	HashChars int
	// DetachedPrefix marks a hash so it cannot be mistaken for a branch name.
	DetachedPrefix string
}

// DefaultOptions returns the resolution defaults (7 hash chars, ":" prefix).
func DefaultOptions() Options {
	return Options{HashChars: 7, DetachedPrefix: ":"}
}

// Parse parses raw porcelain v2 output using DefaultOptions.
func Parse(raw string) (*Summary, error) {
	return ParseWith(raw, DefaultOptions())
}

// ParseWith parses raw porcelain v2 output into a Summary.
func ParseWith(raw string, opts Options) (*Summary, error) {
	groups := group(raw)

	headers, ok := groups['#']
	if !ok {
		return nil, ErrNoBranchHeader
	}

	info := branchHeaders(headers)
	branch, err := resolveBranch(info, opts)
	if err != nil {
		return nil, err
	}

	ahead, behind := aheadBehind(info)
	staged, modified := changeCounts(groups)

	return &Summary{
		Branch:    branch,
		Untracked: len(groups['?']),
		Staged:    staged,
		Modified:  modified,
		Ahead:     ahead,
		Behind:    behind,
	}, nil
}

// group buckets status lines by their leading tag byte, preserving order
// within each bucket. Empty lines are dropped.
func group(raw string) map[byte][]string {
	groups := make(map[byte][]string)
	for _, line := range strings.Split(raw, "\n") {
		if line == "" {
			continue
		}
		groups[line[0]] = append(groups[line[0]], line)
	}
	return groups
}

// branchHeaders parses `# branch.<key> <value...>` lines into a map. The
// value is kept verbatim after a single split, it may contain spaces
// (branch.ab is "+N -M").
func branchHeaders(lines []string) map[string]string {
	info := make(map[string]string, len(lines))
	for _, line := range lines {
		rest := strings.TrimLeft(line, "# ")
		key, value, found := strings.Cut(rest, " ")
		if !found {
			log.Printf("status: skipping malformed header line %q", line)
			continue
		}
		info[key] = value
	}
	return info
}

// resolveBranch returns the branch name, or a prefixed hash fragment when
// HEAD is detached (branch.head is a "(detached)"-style marker).
func resolveBranch(info map[string]string, opts Options) (string, error) {
	head, ok := info["branch.head"]
	if !ok {
		return "", fmt.Errorf("%w: missing branch.head header", ErrNoBranchHeader)
	}
	if !strings.HasPrefix(head, "(") {
		return head, nil
	}

	oid := info["branch.oid"]
	if len(oid) > opts.HashChars {
		oid = oid[:opts.HashChars]
	}
	return opts.DetachedPrefix + oid, nil
}

// aheadBehind extracts the ahead/behind counts from branch.ab. The header
// is absent when there is no upstream; the sign characters are discarded
// and the tokens are taken positionally (ahead first), matching git's own
// "+N -M" convention.
func aheadBehind(info map[string]string) (int, int) {
	value, ok := info["branch.ab"]
	if !ok {
		return 0, 0
	}

	tokens := strings.Fields(value)
	if len(tokens) != 2 {
		log.Printf("status: unexpected branch.ab value %q", value)
		return 0, 0
	}

	return magnitude(tokens[0]), magnitude(tokens[1])
}

func magnitude(token string) int {
	if len(token) < 2 {
		return 0
	}
	n, err := strconv.Atoi(token[1:])
	if err != nil {
		log.Printf("status: unexpected branch.ab token %q", token)
		return 0
	}
	return n
}

// changeCounts walks every non-header, non-untracked line and classifies it
// by its two-character XY field: a change in the index column (X) counts as
// staged, otherwise a change in the worktree column (Y) counts as modified.
// Lines that do not fit the expected shape are logged and skipped.
func changeCounts(groups map[byte][]string) (staged, modified int) {
	for tag, lines := range groups {
		if tag == '#' || tag == '?' {
			continue
		}
		for _, line := range lines {
			fields := strings.Fields(line)
			if len(fields) < 2 || len(fields[1]) < 2 {
				log.Printf("status: skipping malformed status line %q", line)
				continue
			}
			switch xy := fields[1]; {
			case xy[0] != '.':
				staged++
			case xy[1] != '.':
				modified++
			default:
				// ".." should not occur in well-formed output
				log.Printf("status: no change recorded in status line %q", line)
			}
		}
	}
	return staged, modified
}
