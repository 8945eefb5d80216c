// Package ignore loads the list of usernames that are never reported as
// non-followers.
//
// The file holds one entry per line. Surrounding whitespace is trimmed, blank
// lines and lines starting with "#" are skipped. Instagram usernames only use
// letters, digits, "." and "_", so an entry containing glob syntax
// ("*", "?", "[", "{") is compiled as a pattern:
//
//	# brands I follow on purpose
//	nike
//	*_official
//	news.??
package ignore

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/gobwas/glob"

	"igunfollow/pkg/compare"
	"igunfollow/pkg/errors"
)

const patternChars = "*?[{"

// List matches usernames against exact entries and glob patterns
type List struct {
	names    compare.Set
	patterns []pattern
	source   string
}

type pattern struct {
	source string
	glob   glob.Glob
}

// Empty returns a list that matches nothing
func Empty() *List {
	return &List{names: compare.NewSet()}
}

// Load reads the ignore list at path. A missing file yields an empty list and
// no error; an empty path does the same.
func Load(path string) (*List, error) {
	if path == "" {
		return Empty(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return Empty(), nil
		}
		return nil, errors.Wrap(path, err)
	}
	defer f.Close()

	list, err := Parse(f)
	if err != nil {
		return nil, errors.Parsing(path, err)
	}
	list.source = path
	return list, nil
}

// Source returns the file the list was read from, or "" when no file was
// read
func (l *List) Source() string {
	return l.source
}

// Parse reads ignore entries from r
func Parse(r io.Reader) (*List, error) {
	list := Empty()

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !strings.ContainsAny(line, patternChars) {
			list.names.Add(line)
			continue
		}

		g, err := glob.Compile(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid pattern %q: %w", lineNo, line, err)
		}
		list.patterns = append(list.patterns, pattern{source: line, glob: g})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ignore list: %w", err)
	}

	return list, nil
}

// Match reports whether username is ignored
func (l *List) Match(username string) bool {
	if l.names.Has(username) {
		return true
	}
	for _, p := range l.patterns {
		if p.glob.Match(username) {
			return true
		}
	}
	return false
}

// Len returns the number of entries, exact names plus patterns
func (l *List) Len() int {
	return l.names.Len() + len(l.patterns)
}

// Names returns the exact entries, sorted
func (l *List) Names() []string {
	return l.names.Sorted()
}

// Patterns returns the pattern entries in file order
func (l *List) Patterns() []string {
	out := make([]string, len(l.patterns))
	for i, p := range l.patterns {
		out[i] = p.source
	}
	return out
}
