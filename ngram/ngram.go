// Package ngram extracts repeated word bigrams and trigrams from a text.
//
// N-grams are built over the lowercase alphabetic token sequence, so
// punctuation and numbers never appear inside a gram. Only grams occurring
// more than once are reported; a text too short to contain a repeated
// trigram simply yields empty lists.
//
// All functions are safe for concurrent use by multiple goroutines.
package ngram

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// minCount is the occurrence floor for a reported gram.
	minCount = 2

	// topGrams is how many grams each list keeps.
	topGrams = 5
)

// Gram is one repeated n-gram with its occurrence count.
type Gram struct {
	Text  string // space-joined words
	Count int
}

// String formats the gram as "w1 w2 (n)".
func (g Gram) String() string {
	return fmt.Sprintf("%s (%d)", g.Text, g.Count)
}

// Bigrams returns up to 5 repeated bigrams from words, most frequent
// first. Ties are broken alphabetically.
func Bigrams(words []string) []Gram {
	return extract(words, 2)
}

// Trigrams returns up to 5 repeated trigrams from words, most frequent
// first. Ties are broken alphabetically.
func Trigrams(words []string) []Gram {
	return extract(words, 3)
}

// Format renders grams as "w1 w2 (n)" strings for report output.
func Format(grams []Gram) []string {
	out := make([]string, len(grams))
	for i, g := range grams {
		out[i] = g.String()
	}
	return out
}

func extract(words []string, n int) []Gram {
	if len(words) < n {
		return nil
	}

	counts := make(map[string]int, len(words))
	for i := 0; i+n <= len(words); i++ {
		counts[strings.Join(words[i:i+n], " ")]++
	}

	grams := make([]Gram, 0, len(counts))
	for text, c := range counts {
		if c >= minCount {
			grams = append(grams, Gram{Text: text, Count: c})
		}
	}
	sort.Slice(grams, func(i, j int) bool {
		if grams[i].Count != grams[j].Count {
			return grams[i].Count > grams[j].Count
		}
		return grams[i].Text < grams[j].Text
	})

	if len(grams) > topGrams {
		grams = grams[:topGrams]
	}
	return grams
}
