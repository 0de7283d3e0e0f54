// Package highlight scores each sentence of a text for reading difficulty
// and marks the most frequent meaningful words with inline emphasis.
//
// The difficulty score combines sentence length with long-word density and
// is normalized into an opacity weight in [0, 0.6] suitable for driving a
// background-highlight intensity. Short, simple sentences are never
// highlighted regardless of the raw score.
//
// All functions are safe for concurrent use by multiple goroutines.
package highlight

import (
	"math"
	"sort"
	"strings"

	"github.com/vialandd/text-complexity-analyzer/internal/stopwords"
	"github.com/vialandd/text-complexity-analyzer/tokenizer"
)

const (
	// Length contribution: one 30-word sentence saturates at 0.6.
	lenDivisor = 30.0
	lenCap     = 0.6

	// Complexity contribution: eight long words saturate at 0.4.
	compDivisor = 8.0
	compCap     = 0.4

	// Opacity ceiling and the short-simple exemption thresholds.
	opacityCap      = 0.6
	minHighlightLen = 8
	minHighlightCmp = 2

	// A word longer than this many runes counts as complex.
	longWordRunes = 6

	// is_hard flags for display: very long or complex-dense sentences.
	hardLenThreshold  = 20
	hardCompThreshold = 3

	// Frequent-word marking.
	topFrequent  = 5
	minFrequency = 2

	markOpen  = `<mark title="frequent word">`
	markClose = `</mark>`
)

// Sentence is one scored, marked-up sentence of the source text.
type Sentence struct {
	Text            string  `json:"text"`             // original sentence with frequent words wrapped in <mark>
	ComplexityScore float64 `json:"complexity_score"` // 0–10 scale, 1 decimal
	Opacity         float64 `json:"opacity"`          // highlight weight in [0, 0.6]
	IsHard          bool    `json:"is_hard"`          // long or complex-dense sentence
}

// Analyze scores every sentence of text. Sentences are returned in source
// order; the input text's own punctuation and spacing are preserved in the
// marked-up output because markup is applied over byte offsets rather than
// by re-joining tokens.
func Analyze(text string) []Sentence {
	if text == "" {
		return nil
	}

	frequent := FrequentWords(tokenizer.AlphaWords(text), topFrequent)
	return Build(tokenizer.Sentences(text), frequent)
}

// Build scores the given sentences, marking up occurrences of the given
// frequent words (lowercase). Pass nil to skip frequent-word marking.
func Build(sentences []string, frequent []string) []Sentence {
	if len(sentences) == 0 {
		return nil
	}

	freqSet := make(map[string]struct{}, len(frequent))
	for _, w := range frequent {
		freqSet[strings.ToLower(w)] = struct{}{}
	}

	out := make([]Sentence, 0, len(sentences))
	for _, sent := range sentences {
		out = append(out, scoreSentence(sent, freqSet))
	}
	return out
}

// FrequentWords returns up to topN non-stopword alphabetic words occurring
// more than once in words, ordered by descending count. Ties are broken
// alphabetically so the result is deterministic.
func FrequentWords(words []string, topN int) []string {
	if topN <= 0 {
		topN = topFrequent
	}

	counts := make(map[string]int, len(words))
	for _, w := range words {
		if stopwords.Is(w) {
			continue
		}
		counts[w]++
	}

	type wc struct {
		word  string
		count int
	}
	ranked := make([]wc, 0, len(counts))
	for w, c := range counts {
		if c >= minFrequency {
			ranked = append(ranked, wc{w, c})
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].word < ranked[j].word
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.word
	}
	return out
}

// scoreSentence computes the difficulty signals for one sentence and
// applies frequent-word markup.
func scoreSentence(sent string, frequent map[string]struct{}) Sentence {
	tokens := tokenizer.WordTokens(sent)

	sentLen := 0
	complexCount := 0
	for _, t := range tokens {
		if !t.IsAlpha() {
			continue
		}
		sentLen++
		if len([]rune(t.Text)) > longWordRunes {
			complexCount++
		}
	}

	lenScore := math.Min(float64(sentLen)/lenDivisor, lenCap)
	compScore := math.Min(float64(complexCount)/compDivisor, compCap)
	total := lenScore + compScore

	opacity := math.Min(total, opacityCap)
	if sentLen < minHighlightLen && complexCount < minHighlightCmp {
		opacity = 0
	}

	return Sentence{
		Text:            markup(sent, tokens, frequent),
		ComplexityScore: round1(total * 10),
		Opacity:         opacity,
		IsHard:          sentLen > hardLenThreshold || complexCount > hardCompThreshold,
	}
}

// markup rebuilds the sentence from its tokens, wrapping alphabetic tokens
// that appear in the frequent set. Because tokens carry byte offsets and
// cover the sentence completely, the original punctuation and spacing
// survive unchanged.
func markup(sent string, tokens []tokenizer.Token, frequent map[string]struct{}) string {
	trimmed := strings.TrimSpace(sent)
	if len(frequent) == 0 {
		return trimmed
	}

	var b strings.Builder
	b.Grow(len(sent) + len(markOpen)*4)
	for _, t := range tokens {
		if t.IsAlpha() {
			if _, ok := frequent[strings.ToLower(t.Text)]; ok {
				b.WriteString(markOpen)
				b.WriteString(t.Text)
				b.WriteString(markClose)
				continue
			}
		}
		b.WriteString(t.Text)
	}
	return strings.TrimSpace(b.String())
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
