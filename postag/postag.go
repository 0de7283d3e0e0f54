// Package postag assigns coarse universal part-of-speech tags to English
// words and derives the content-word ratio of a text.
//
// Tagging is lexicon-first: an embedded list of common English words maps
// directly to tags, unknown words fall through to suffix rules, and
// anything still untagged defaults to NOUN. The tagset is the universal
// one: NOUN, VERB, ADJ, ADV, PRON, DET, ADP, CONJ, NUM, PRT, X.
//
// Known limitations (v1.0):
//
//   - No context: "run" tags the same in "a run" and "they run".
//   - The suffix rules favor derivational morphology, so short irregular
//     verbs outside the lexicon tag as NOUN.
//
// All functions are safe for concurrent use by multiple goroutines.
package postag

import (
	"math"
	"sort"
	"strings"

	"github.com/vialandd/text-complexity-analyzer/data"
)

// Universal tagset values.
const (
	Noun = "NOUN"
	Verb = "VERB"
	Adj  = "ADJ"
	Adv  = "ADV"
	Pron = "PRON"
	Det  = "DET"
	Adp  = "ADP"
	Conj = "CONJ"
	Num  = "NUM"
	Prt  = "PRT"
	X    = "X"
)

// topTags is how many tags the distribution keeps for charting.
const topTags = 5

var lexicon = parseLexicon(data.POSLexicon)

// contentTags are the open-class tags that carry lexical meaning.
var contentTags = map[string]bool{
	Noun: true,
	Verb: true,
	Adj:  true,
	Adv:  true,
}

// suffixRules are tried in order after a lexicon miss. Longer suffixes
// come first so "-ation" wins over "-ion" semantics implicitly.
var suffixRules = []struct {
	suffix string
	tag    string
}{
	{"ness", Noun},
	{"ment", Noun},
	{"tion", Noun},
	{"sion", Noun},
	{"ship", Noun},
	{"ally", Adv},
	{"able", Adj},
	{"ible", Adj},
	{"ical", Adj},
	{"ious", Adj},
	{"ward", Adv},
	{"ity", Noun},
	{"ism", Noun},
	{"ous", Adj},
	{"ful", Adj},
	{"ive", Adj},
	{"ish", Adj},
	{"ing", Verb},
	{"ize", Verb},
	{"ise", Verb},
	{"ate", Verb},
	{"ify", Verb},
	{"ly", Adv},
	{"ed", Verb},
	{"al", Adj},
}

// TagCount pairs a tag with its occurrence count.
type TagCount struct {
	Tag   string
	Count int
}

// Result holds the part-of-speech profile of a word sequence.
type Result struct {
	Counts       []TagCount // descending count, ties alphabetical
	ContentRatio float64    // NOUN+VERB+ADJ+ADV / total words, 2 decimals
}

// Tag returns the universal tag for a single word. The lookup is
// case-insensitive.
func Tag(word string) string {
	w := strings.ToLower(word)
	if tag, ok := lexicon[w]; ok {
		return tag
	}
	for _, rule := range suffixRules {
		if len(w) > len(rule.suffix)+1 && strings.HasSuffix(w, rule.suffix) {
			return rule.tag
		}
	}
	return Noun
}

// Analyze tags every word and returns the tag distribution with the
// content-word ratio. Empty input yields an empty Result with ratio 0.0.
func Analyze(words []string) Result {
	if len(words) == 0 {
		return Result{}
	}

	counts := make(map[string]int)
	content := 0
	for _, w := range words {
		tag := Tag(w)
		counts[tag]++
		if contentTags[tag] {
			content++
		}
	}

	ranked := make([]TagCount, 0, len(counts))
	for tag, c := range counts {
		ranked = append(ranked, TagCount{Tag: tag, Count: c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Tag < ranked[j].Tag
	})

	return Result{
		Counts:       ranked,
		ContentRatio: round2(float64(content) / float64(len(words))),
	}
}

// Top returns up to n highest-count tags from the result, for charting.
func (r Result) Top(n int) []TagCount {
	if n <= 0 {
		n = topTags
	}
	if len(r.Counts) <= n {
		return r.Counts
	}
	return r.Counts[:n]
}

func parseLexicon(raw string) map[string]string {
	lex := make(map[string]string, 1024)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, tag, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		word = strings.ToLower(strings.TrimSpace(word))
		tag = strings.TrimSpace(tag)
		if word == "" || tag == "" {
			continue
		}
		if _, dup := lex[word]; dup {
			continue
		}
		lex[word] = tag
	}
	return lex
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
