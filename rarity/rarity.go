// Package rarity scores words against a reference frequency corpus and
// buckets a text's vocabulary into difficulty levels.
//
// A FrequencyTable maps words to dense ranks, 1 being the most common
// word. The embedded reference table is built once on first use; callers
// that need a different corpus construct their own with NewTable and pass
// it explicitly. Words missing from the table are retried with their
// snowball stem before falling back to a sentinel very-rare rank.
//
// All methods are safe for concurrent use once the table is built.
package rarity

import (
	"math"
	"strings"
	"sync"

	"github.com/kljensen/snowball"

	"github.com/vialandd/text-complexity-analyzer/data"
)

// Bucket thresholds over dense ranks.
const (
	commonMaxRank       = 1000
	intermediateMaxRank = 5000

	// UnknownRank is the sentinel rank for words absent from the corpus,
	// deep inside the Advanced/Rare bucket.
	UnknownRank = 100000
)

// Bucket labels as they appear in reports.
const (
	LabelCommon       = "Common"
	LabelIntermediate = "Intermediate"
	LabelAdvanced     = "Advanced/Rare"
)

// Distribution holds the percentage of a text's alphabetic words falling
// into each difficulty bucket. Percentages are rounded to 1 decimal and
// sum to roughly 100 for non-empty input; all zero for empty input.
type Distribution struct {
	Common       float64 `json:"Common"`
	Intermediate float64 `json:"Intermediate"`
	Advanced     float64 `json:"Advanced/Rare"`
}

// FrequencyTable maps lowercase words to their dense frequency rank.
type FrequencyTable struct {
	ranks map[string]int
}

// NewTable builds a FrequencyTable from raw corpus text: one word per
// line in descending frequency order, rank assigned by line position.
// Blank lines and #-comments are skipped; duplicate words keep their
// first (better) rank.
func NewTable(raw string) *FrequencyTable {
	ranks := make(map[string]int, 2048)
	rank := 0
	for _, line := range strings.Split(raw, "\n") {
		word := strings.ToLower(strings.TrimSpace(line))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if _, dup := ranks[word]; dup {
			continue
		}
		rank++
		ranks[word] = rank
	}
	return &FrequencyTable{ranks: ranks}
}

var (
	defaultTable *FrequencyTable
	defaultOnce  sync.Once
)

// Default returns the table built from the embedded reference corpus.
// The table is constructed on first call and shared afterwards.
func Default() *FrequencyTable {
	defaultOnce.Do(func() {
		defaultTable = NewTable(data.FreqList)
	})
	return defaultTable
}

// Len returns the number of ranked words in the table.
func (t *FrequencyTable) Len() int {
	return len(t.ranks)
}

// Rank returns the dense rank of word, looking up the snowball stem when
// the word itself is absent. Words unknown in both forms get UnknownRank.
func (t *FrequencyTable) Rank(word string) int {
	w := strings.ToLower(word)
	if r, ok := t.ranks[w]; ok {
		return r
	}
	if stem, err := snowball.Stem(w, "english", false); err == nil && stem != w {
		if r, ok := t.ranks[stem]; ok {
			return r
		}
	}
	return UnknownRank
}

// Distribute buckets words by rank and returns the percentage split.
// Empty input returns the zero Distribution.
func (t *FrequencyTable) Distribute(words []string) Distribution {
	if len(words) == 0 {
		return Distribution{}
	}

	var common, intermediate, advanced int
	for _, w := range words {
		switch r := t.Rank(w); {
		case r <= commonMaxRank:
			common++
		case r <= intermediateMaxRank:
			intermediate++
		default:
			advanced++
		}
	}

	total := float64(len(words))
	return Distribution{
		Common:       round1(100 * float64(common) / total),
		Intermediate: round1(100 * float64(intermediate) / total),
		Advanced:     round1(100 * float64(advanced) / total),
	}
}

// Analyze buckets words against the default table.
func Analyze(words []string) Distribution {
	return Default().Distribute(words)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
