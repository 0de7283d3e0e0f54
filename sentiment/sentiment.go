// Package sentiment performs lexicon-based sentiment analysis of English text.
//
// The analyzer tokenizes input and looks each word up in an embedded
// valence lexicon (scores in [-4, +4]). Valences are adjusted for booster
// words ("very good") and negation in a trailing three-word window
// ("not good", "isn't good"), then aggregated into the four-value result
// shape: neg, neu, and pos are the proportions of negative, neutral, and
// positive signal, and compound is the normalized overall score in [-1, 1].
//
// v1 limitations:
//   - No idiom handling ("the bomb" scores negative).
//   - Punctuation emphasis and capitalization emphasis are ignored.
//   - Sarcasm is not detected.
//
// All functions are safe for concurrent use by multiple goroutines.
package sentiment

import "fmt"

// maxInputBytes is the maximum input size. Inputs exceeding this return a zero Result.
const maxInputBytes = 1 << 20 // 1 MiB

// Result holds the sentiment analysis output. Neg, Neu, and Pos are
// proportions summing to ~1.0 for scored input; Compound is the
// normalized aggregate in [-1, 1].
type Result struct {
	Neg      float64 `json:"neg"`
	Neu      float64 `json:"neu"`
	Pos      float64 `json:"pos"`
	Compound float64 `json:"compound"`
}

// String returns a debug representation of the result.
func (r Result) String() string {
	return fmt.Sprintf("sentiment(neg=%.3f, neu=%.3f, pos=%.3f, compound=%.4f)",
		r.Neg, r.Neu, r.Pos, r.Compound)
}

// Analyze returns the sentiment profile of text.
// Returns a zero Result for empty or oversized input.
func Analyze(text string) Result {
	if text == "" || len(text) > maxInputBytes {
		return Result{}
	}
	return analyze(text)
}

// Compound returns only the normalized aggregate score in [-1, 1].
func Compound(text string) float64 {
	return Analyze(text).Compound
}

// IsPositive returns true if the overall sentiment is positive.
func IsPositive(text string) bool {
	return Analyze(text).Compound > 0
}
