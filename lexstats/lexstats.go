// Package lexstats computes surface-level lexical statistics for a text:
// token and sentence counts, consonant density, type-token diversity, and
// the stopword-filtered rare-word ratio.
//
// All ratios are guarded against empty input: a text with no alphabetic
// tokens yields 0.0 for every ratio rather than an error.
//
// All functions are safe for concurrent use by multiple goroutines.
package lexstats

import (
	"math"
	"strings"
	"unicode"

	"github.com/vialandd/text-complexity-analyzer/internal/stopwords"
	"github.com/vialandd/text-complexity-analyzer/tokenizer"
)

// Stats holds the lexical profile of a text.
type Stats struct {
	WordCount        int     `json:"word_count"`        // all non-space tokens, punctuation included
	SentenceCount    int     `json:"sentence_count"`    // sentence segments
	AvgConsonants    float64 `json:"avg_consonants"`    // consonant letters per alphabetic token, 2 decimals
	LexicalDiversity float64 `json:"lexical_diversity"` // unique / total alphabetic tokens, 2 decimals
	RareWordRatio    float64 `json:"rare_word_ratio"`   // non-stopword / total alphabetic tokens, 2 decimals
}

// vowels are the characters excluded when counting consonants.
const vowels = "aeiouAEIOU"

// Compute derives Stats from pre-tokenized input. tokens must be the
// non-space token sequence for text and sentences the sentence count;
// alphaWords the lowercase alphabetic token sequence. The source text is
// needed for the consonant census, which runs over every letter in the
// text rather than only over token content.
func Compute(text string, tokens []tokenizer.Token, sentenceCount int, alphaWords []string) Stats {
	s := Stats{
		WordCount:     len(tokens),
		SentenceCount: sentenceCount,
	}

	if len(alphaWords) == 0 {
		return s
	}

	consonants := 0
	for _, r := range text {
		if unicode.IsLetter(r) && !strings.ContainsRune(vowels, r) {
			consonants++
		}
	}
	s.AvgConsonants = round2(float64(consonants) / float64(len(alphaWords)))

	unique := make(map[string]struct{}, len(alphaWords))
	nonStop := 0
	for _, w := range alphaWords {
		unique[w] = struct{}{}
		if !stopwords.Is(w) {
			nonStop++
		}
	}
	s.LexicalDiversity = round2(float64(len(unique)) / float64(len(alphaWords)))
	s.RareWordRatio = round2(float64(nonStop) / float64(len(alphaWords)))

	return s
}

// Analyze is the convenience entry point: it tokenizes text itself.
func Analyze(text string) Stats {
	return Compute(
		text,
		tokenizer.Tokens(text),
		len(tokenizer.Sentences(text)),
		tokenizer.AlphaWords(text),
	)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
