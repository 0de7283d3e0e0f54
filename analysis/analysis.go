// Package analysis orchestrates the full text-complexity pipeline and
// assembles its output into a single Report.
//
// One tokenization pass feeds every stage: lexical statistics, Flesch
// readability and sentence cohesion, per-sentence difficulty highlighting,
// part-of-speech distribution, repeated n-grams, named entities, corpus
// rarity buckets, and sentiment. Chart fields hold base64-encoded PNGs
// and are omitted from JSON when the underlying series is degenerate.
//
// Analyze never fails: empty or tokenless input yields the zero Report,
// and a chart that cannot be drawn is simply left out.
package analysis

import (
	"github.com/vialandd/text-complexity-analyzer/entities"
	"github.com/vialandd/text-complexity-analyzer/highlight"
	"github.com/vialandd/text-complexity-analyzer/lexstats"
	"github.com/vialandd/text-complexity-analyzer/ngram"
	"github.com/vialandd/text-complexity-analyzer/postag"
	"github.com/vialandd/text-complexity-analyzer/rarity"
	"github.com/vialandd/text-complexity-analyzer/readability"
	"github.com/vialandd/text-complexity-analyzer/render"
	"github.com/vialandd/text-complexity-analyzer/sentiment"
	"github.com/vialandd/text-complexity-analyzer/tokenizer"
)

// defaultTopFrequent is how many repeated words the highlighter marks.
const defaultTopFrequent = 5

// Chart titles.
const (
	posChartTitle  = "Part-of-speech distribution"
	lenChartTitle  = "Word length distribution"
	freqChartTitle = "Vocabulary rarity"
)

// General holds the surface statistics of the text.
type General struct {
	WordCount     int              `json:"word_count"`
	SentenceCount int              `json:"sentence_count"`
	AvgConsonants float64          `json:"avg_consonants"`
	Sentiment     sentiment.Result `json:"sentiment"`
}

// Reading holds readability scores and the highlighted sentences.
type Reading struct {
	FleschScore          float64              `json:"flesch_score"`
	FleschProgress       float64              `json:"flesch_progress"`
	AvgJaccard           float64              `json:"avg_jaccard"`
	HighlightedSentences []highlight.Sentence `json:"highlighted_sentences"`
}

// Lexical holds vocabulary ratios and their charts.
type Lexical struct {
	Diversity    float64 `json:"diversity"`
	RareRatio    float64 `json:"rare_ratio"`
	ContentRatio float64 `json:"content_ratio"`
	POSGraph     string  `json:"pos_graph,omitempty"`
	LenGraph     string  `json:"len_graph,omitempty"`
}

// Advanced holds repetition, entity, and rarity findings.
type Advanced struct {
	Bigrams     []string            `json:"bigrams"`
	Trigrams    []string            `json:"trigrams"`
	Entities    []string            `json:"entities"`
	RarityStats rarity.Distribution `json:"rarity_stats"`
	FreqGraph   string              `json:"freq_graph,omitempty"`
}

// Report is the complete analysis output for one text.
type Report struct {
	General  General  `json:"general"`
	Reading  Reading  `json:"reading"`
	Lexical  Lexical  `json:"lexical"`
	Advanced Advanced `json:"advanced"`
}

// Analyzer runs the pipeline with its configured knobs. The zero value is
// not usable; construct with New.
type Analyzer struct {
	topFrequent int
	table       *rarity.FrequencyTable
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithTopFrequent sets how many repeated words the highlighter marks.
func WithTopFrequent(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.topFrequent = n
		}
	}
}

// WithFrequencyTable substitutes the reference frequency corpus used for
// rarity bucketing.
func WithFrequencyTable(t *rarity.FrequencyTable) Option {
	return func(a *Analyzer) {
		if t != nil {
			a.table = t
		}
	}
}

// New returns an Analyzer with defaults: mark the top 5 frequent words
// and score rarity against the embedded corpus.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		topFrequent: defaultTopFrequent,
		table:       rarity.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze runs the default pipeline over text.
func Analyze(text string) Report {
	return New().Analyze(text)
}

// Analyze runs every stage over text and assembles the Report.
func (a *Analyzer) Analyze(text string) Report {
	tokens := tokenizer.Tokens(text)
	if len(tokens) == 0 {
		return Report{}
	}

	sentences := tokenizer.Sentences(text)
	alphaWords := tokenizer.AlphaWords(text)

	stats := lexstats.Compute(text, tokens, len(sentences), alphaWords)
	flesch := readability.Flesch(alphaWords, len(sentences))
	pos := postag.Analyze(alphaWords)
	dist := a.table.Distribute(alphaWords)

	frequent := highlight.FrequentWords(alphaWords, a.topFrequent)

	return Report{
		General: General{
			WordCount:     stats.WordCount,
			SentenceCount: stats.SentenceCount,
			AvgConsonants: stats.AvgConsonants,
			Sentiment:     sentiment.Analyze(text),
		},
		Reading: Reading{
			FleschScore:          flesch,
			FleschProgress:       readability.Progress(flesch),
			AvgJaccard:           readability.Cohesion(sentences),
			HighlightedSentences: highlight.Build(sentences, frequent),
		},
		Lexical: Lexical{
			Diversity:    stats.LexicalDiversity,
			RareRatio:    stats.RareWordRatio,
			ContentRatio: pos.ContentRatio,
			POSGraph:     posChart(pos),
			LenGraph:     lengthChart(alphaWords),
		},
		Advanced: Advanced{
			Bigrams:     ngram.Format(ngram.Bigrams(alphaWords)),
			Trigrams:    ngram.Format(ngram.Trigrams(alphaWords)),
			Entities:    entities.Formatted(text),
			RarityStats: dist,
			FreqGraph:   rarityChart(dist),
		},
	}
}

// posChart renders the top tag counts as a pie chart. A degenerate
// series yields an empty string and the field is omitted from JSON.
func posChart(r postag.Result) string {
	top := r.Top(0)
	if len(top) == 0 {
		return ""
	}
	values := make([]render.Value, len(top))
	for i, tc := range top {
		values[i] = render.Value{Label: tc.Tag, Value: float64(tc.Count)}
	}
	png, err := render.Pie(values, posChartTitle)
	if err != nil {
		return ""
	}
	return png
}

func lengthChart(alphaWords []string) string {
	if len(alphaWords) == 0 {
		return ""
	}
	lengths := make([]int, len(alphaWords))
	for i, w := range alphaWords {
		lengths[i] = len([]rune(w))
	}
	png, err := render.Histogram(lengths, 0, lenChartTitle)
	if err != nil {
		return ""
	}
	return png
}

func rarityChart(d rarity.Distribution) string {
	png, err := render.Bar([]render.Value{
		{Label: rarity.LabelCommon, Value: d.Common},
		{Label: rarity.LabelIntermediate, Value: d.Intermediate},
		{Label: rarity.LabelAdvanced, Value: d.Advanced},
	}, freqChartTitle)
	if err != nil {
		return ""
	}
	return png
}
