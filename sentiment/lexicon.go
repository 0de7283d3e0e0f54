package sentiment

import (
	"math"
	"strconv"
	"strings"

	"github.com/vialandd/text-complexity-analyzer/data"
	"github.com/vialandd/text-complexity-analyzer/tokenizer"
)

const (
	// boosterStep is the valence adjustment a booster word contributes.
	boosterStep = 0.293

	// negationScalar dampens and flips a negated valence.
	negationScalar = -0.74

	// negationWindow is how many preceding words are checked for a negator.
	negationWindow = 3

	// normAlpha is the normalization constant for the compound score.
	normAlpha = 15.0
)

// lexicon maps lowercase words to valence scores, built once at init.
var lexicon map[string]float64

func init() {
	lexicon = parseLexicon(data.SentimentLexicon)
}

// negators flip the valence of the word they precede.
var negators = map[string]bool{
	"not": true, "no": true, "never": true, "neither": true, "nor": true,
	"none": true, "nobody": true, "nothing": true, "nowhere": true,
	"cannot": true, "without": true, "rarely": true, "seldom": true,
}

// boosters intensify (positive step) or dampen (negative step) the
// valence of the word they precede.
var boosters = map[string]float64{
	"very": boosterStep, "extremely": boosterStep, "incredibly": boosterStep,
	"absolutely": boosterStep, "completely": boosterStep, "utterly": boosterStep,
	"really": boosterStep, "so": boosterStep, "totally": boosterStep,
	"remarkably": boosterStep, "exceptionally": boosterStep,
	"slightly": -boosterStep, "somewhat": -boosterStep, "barely": -boosterStep,
	"hardly": -boosterStep, "marginally": -boosterStep, "almost": -boosterStep,
}

// parseLexicon parses tab-separated "word\tscore" lines.
func parseLexicon(raw string) map[string]float64 {
	m := make(map[string]float64, 256)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}
		word, rest, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		score, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
		if err != nil {
			continue
		}
		m[strings.ToLower(strings.TrimSpace(word))] = score
	}
	return m
}

// analyze implements the core scoring pipeline.
func analyze(text string) Result {
	words := tokenizer.Words(text)
	if len(words) == 0 {
		return Result{}
	}

	lowered := make([]string, len(words))
	for i, w := range words {
		lowered[i] = strings.ToLower(w)
	}

	var (
		sum    float64
		posSum float64
		negSum float64
		neu    int
	)

	for i, w := range lowered {
		// Negators and boosters shape neighboring valences; they do not
		// score themselves.
		if negators[w] || isContractedNegation(w) {
			continue
		}
		if _, ok := boosters[w]; ok {
			continue
		}

		v, ok := lexicon[w]
		if !ok || v == 0 {
			neu++
			continue
		}

		if i > 0 {
			if step, ok := boosters[lowered[i-1]]; ok {
				if v > 0 {
					v += step
				} else {
					v -= step
				}
			}
		}
		if negatedAt(lowered, i) {
			v *= negationScalar
		}

		sum += v
		if v > 0 {
			posSum += v + 1
		} else {
			negSum += -v + 1
		}
	}

	total := posSum + negSum + float64(neu)
	if total == 0 {
		return Result{}
	}

	return Result{
		Neg:      round3(negSum / total),
		Neu:      round3(float64(neu) / total),
		Pos:      round3(posSum / total),
		Compound: round4(sum / math.Sqrt(sum*sum+normAlpha)),
	}
}

// negatedAt reports whether any of the preceding negationWindow words is
// a negator.
func negatedAt(words []string, idx int) bool {
	for j := idx - 1; j >= 0 && j >= idx-negationWindow; j-- {
		if negators[words[j]] || isContractedNegation(words[j]) {
			return true
		}
	}
	return false
}

// isContractedNegation matches n't contractions, which the tokenizer
// keeps as single word tokens (don't, isn't, won't).
func isContractedNegation(word string) bool {
	return strings.HasSuffix(word, "n't") || strings.HasSuffix(word, "n’t")
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
