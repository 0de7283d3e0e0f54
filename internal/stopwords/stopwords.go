// Package stopwords exposes the embedded English stopword set shared by
// the lexical, highlighting, and keyword-frequency stages.
package stopwords

import (
	"strings"

	"github.com/vialandd/text-complexity-analyzer/data"
)

// set is built once at init from the embedded list; read-only afterwards.
var set map[string]struct{}

func init() {
	set = parse(data.Stopwords)
}

// parse reads one lowercase word per line, skipping blanks and # comments.
func parse(raw string) map[string]struct{} {
	m := make(map[string]struct{}, 200)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}
		m[strings.ToLower(line)] = struct{}{}
	}
	return m
}

// Is reports whether word is a stopword. The check is case-insensitive.
func Is(word string) bool {
	_, ok := set[strings.ToLower(word)]
	return ok
}

// Count returns the number of stopwords in the embedded set.
func Count() int {
	return len(set)
}
