// Package readability scores English text with the Flesch Reading Ease
// formula and measures inter-sentence cohesion via Jaccard word overlap.
//
// The Flesch score is unbounded in both directions; Progress clamps it to
// [0, 100] for bounded display. Syllables are estimated with a vowel-group
// heuristic, not a pronunciation dictionary, so scores are approximate.
//
// All functions are safe for concurrent use by multiple goroutines.
package readability

import (
	"math"
	"strings"

	"github.com/vialandd/text-complexity-analyzer/tokenizer"
)

// Flesch Reading Ease constants.
const (
	fleschBase          = 206.835
	fleschSentenceCoeff = 1.015
	fleschSyllableCoeff = 84.6
)

// Flesch computes the Flesch Reading Ease score from alphabetic words and
// a sentence count, rounded to 1 decimal. Returns 0.0 when either count
// is zero.
func Flesch(words []string, sentenceCount int) float64 {
	if len(words) == 0 || sentenceCount == 0 {
		return 0
	}

	syllables := 0
	for _, w := range words {
		syllables += Syllables(w)
	}

	wordCount := float64(len(words))
	score := fleschBase -
		fleschSentenceCoeff*(wordCount/float64(sentenceCount)) -
		fleschSyllableCoeff*(float64(syllables)/wordCount)

	return round1(score)
}

// Progress clamps a Flesch score into [0, 100] for bounded display.
// Scores outside that range are truncated, not rejected.
func Progress(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Cohesion returns the mean Jaccard similarity of adjacent sentence pairs,
// rounded to 3 decimals. Fewer than two sentences is perfectly cohesive by
// convention and returns 1.0.
func Cohesion(sentences []string) float64 {
	if len(sentences) < 2 {
		return 1.0
	}

	var total float64
	for i := 0; i < len(sentences)-1; i++ {
		total += Jaccard(sentences[i], sentences[i+1])
	}
	return round3(total / float64(len(sentences)-1))
}

// Jaccard computes the Jaccard similarity between the lowercase word-token
// sets of two sentences: |intersection| / |union|. Returns 0.0 when either
// sentence has no word tokens.
func Jaccard(sent1, sent2 string) float64 {
	set1 := wordSet(sent1)
	set2 := wordSet(sent2)
	if len(set1) == 0 || len(set2) == 0 {
		return 0.0
	}

	intersection := 0
	for w := range set1 {
		if _, ok := set2[w]; ok {
			intersection++
		}
	}
	union := len(set1) + len(set2) - intersection
	return float64(intersection) / float64(union)
}

// Syllables estimates the syllable count of a word by counting vowel
// groups, discounting a silent final e, with a minimum of one.
func Syllables(word string) int {
	word = strings.ToLower(word)

	count := 0
	prevVowel := false
	for _, r := range word {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

// Analyze is the convenience entry point over raw text. It returns the
// rounded Flesch score, its clamped progress value, and the cohesion mean.
func Analyze(text string) (flesch, progress, cohesion float64) {
	words := tokenizer.AlphaWords(text)
	sentences := tokenizer.Sentences(text)

	flesch = Flesch(words, len(sentences))
	progress = Progress(flesch)
	cohesion = Cohesion(sentences)
	return flesch, progress, cohesion
}

func wordSet(sentence string) map[string]struct{} {
	words := tokenizer.Words(sentence)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
