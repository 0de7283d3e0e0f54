// Package e2e runs the complete analysis pipeline over realistic texts
// and checks the structural properties every report must satisfy.
package e2e

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/vialandd/text-complexity-analyzer/analysis"
)

const textNarrative = `In my younger and more vulnerable years my father gave me
some advice that I have been turning over in my mind ever since. Whenever you
feel like criticizing anyone, he told me, just remember that all the people in
this world have not had the advantages that you have had. He did not say any
more, but we have always been unusually communicative in a reserved way.`

const textTechnical = `The authentication subsystem validates incoming
credentials against the configured identity provider. Authentication failures
increment a counter and trigger exponential backoff. The authentication
subsystem caches successful authentication results for a configurable
interval. Administrators can invalidate the authentication cache manually.`

const textConversation = `Nick met Daisy in London. They talked for hours.
The weather was wonderful and the food was not bad either. Dr. Carraway
joined them later that evening.`

// checkReportInvariants asserts the bounds that hold for every report.
func checkReportInvariants(t *testing.T, name string, r analysis.Report) {
	t.Helper()

	if r.General.WordCount < 0 || r.General.SentenceCount < 0 {
		t.Errorf("%s: negative counts: %+v", name, r.General)
	}
	if r.Reading.FleschProgress < 0 || r.Reading.FleschProgress > 100 {
		t.Errorf("%s: FleschProgress = %v out of [0,100]", name, r.Reading.FleschProgress)
	}
	if r.Reading.AvgJaccard < 0 || r.Reading.AvgJaccard > 1 {
		t.Errorf("%s: AvgJaccard = %v out of [0,1]", name, r.Reading.AvgJaccard)
	}
	for _, ratio := range []float64{r.Lexical.Diversity, r.Lexical.RareRatio, r.Lexical.ContentRatio} {
		if ratio < 0 || ratio > 1 {
			t.Errorf("%s: lexical ratio %v out of [0,1]", name, ratio)
		}
	}
	for i, s := range r.Reading.HighlightedSentences {
		if s.Opacity < 0 || s.Opacity > 0.6 {
			t.Errorf("%s: sentence %d opacity %v out of [0,0.6]", name, i, s.Opacity)
		}
		if s.ComplexityScore < 0 || s.ComplexityScore > 10 {
			t.Errorf("%s: sentence %d score %v out of [0,10]", name, i, s.ComplexityScore)
		}
	}
	for _, g := range append(append([]string{}, r.Advanced.Bigrams...), r.Advanced.Trigrams...) {
		if !strings.Contains(g, "(") || strings.HasSuffix(g, "(1)") {
			t.Errorf("%s: gram %q malformed or below repeat threshold", name, g)
		}
	}
	if r.General.WordCount > 0 {
		sum := r.Advanced.RarityStats.Common +
			r.Advanced.RarityStats.Intermediate +
			r.Advanced.RarityStats.Advanced
		if sum != 0 && (sum < 99.5 || sum > 100.5) {
			t.Errorf("%s: rarity buckets sum to %v", name, sum)
		}
	}
	for _, p := range []float64{r.General.Sentiment.Neg, r.General.Sentiment.Neu, r.General.Sentiment.Pos} {
		if p < 0 || p > 1 {
			t.Errorf("%s: sentiment proportion %v out of [0,1]", name, p)
		}
	}
	if c := r.General.Sentiment.Compound; c < -1 || c > 1 {
		t.Errorf("%s: compound %v out of [-1,1]", name, c)
	}
}

func TestPipelineFixtures(t *testing.T) {
	t.Parallel()

	fixtures := map[string]string{
		"narrative":    textNarrative,
		"technical":    textTechnical,
		"conversation": textConversation,
	}

	for name, text := range fixtures {
		name, text := name, text
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			r := analysis.Analyze(text)
			checkReportInvariants(t, name, r)

			if r.General.WordCount == 0 {
				t.Fatal("no tokens found in fixture")
			}
			if len(r.Reading.HighlightedSentences) == 0 {
				t.Error("no highlighted sentences")
			}
			if r.Lexical.POSGraph == "" || r.Lexical.LenGraph == "" {
				t.Error("charts missing for normal prose")
			}
		})
	}
}

func TestPipelineEmptyText(t *testing.T) {
	t.Parallel()

	r := analysis.Analyze("")
	checkReportInvariants(t, "empty", r)
	if r.General.WordCount != 0 || len(r.Reading.HighlightedSentences) != 0 {
		t.Errorf("empty input produced content: %+v", r.General)
	}

	raw, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal empty report: %v", err)
	}
	if strings.Contains(string(raw), "pos_graph") {
		t.Error("empty report contains chart fields")
	}
}

func TestPipelineRepetitionDetected(t *testing.T) {
	t.Parallel()

	r := analysis.Analyze(textTechnical)
	found := false
	for _, g := range r.Advanced.Bigrams {
		if strings.HasPrefix(g, "authentication ") || strings.HasSuffix(g, " authentication") ||
			strings.Contains(g, "authentication") {
			found = true
		}
	}
	if !found {
		t.Errorf("repeated term not found in bigrams: %v", r.Advanced.Bigrams)
	}
}

func TestPipelineEntitiesDetected(t *testing.T) {
	t.Parallel()

	r := analysis.Analyze(textConversation)
	want := map[string]bool{
		"Nick (PERSON)":     false,
		"Daisy (PERSON)":    false,
		"London (GPE)":      false,
		"Carraway (PERSON)": false,
	}
	for _, e := range r.Advanced.Entities {
		if _, ok := want[e]; ok {
			want[e] = true
		}
	}
	for e, seen := range want {
		if !seen {
			t.Errorf("entity %q not found in %v", e, r.Advanced.Entities)
		}
	}
}

func TestPipelineLongSentenceHighlighted(t *testing.T) {
	t.Parallel()

	long := "The committee responsible for evaluating infrastructure proposals " +
		"convened yesterday afternoon to deliberate extensively regarding the " +
		"numerous complicated submissions received throughout the preceding " +
		"quarter from various metropolitan municipalities."
	r := analysis.Analyze(long)
	if len(r.Reading.HighlightedSentences) != 1 {
		t.Fatalf("got %d sentences, want 1", len(r.Reading.HighlightedSentences))
	}
	if r.Reading.HighlightedSentences[0].Opacity == 0 {
		t.Error("long complex sentence not highlighted")
	}
}

func TestPipelineUnknownVocabulary(t *testing.T) {
	t.Parallel()

	r := analysis.Analyze("Sesquipedalian obfuscation notwithstanding, antidisestablishmentarianism persists.")
	if r.Advanced.RarityStats.Advanced == 0 {
		t.Errorf("advanced share = 0 for obscure vocabulary: %+v", r.Advanced.RarityStats)
	}
}

func TestPipelineDeterministic(t *testing.T) {
	t.Parallel()

	a, err := json.Marshal(analysis.Analyze(textNarrative))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	b, err := json.Marshal(analysis.Analyze(textNarrative))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(a) != string(b) {
		t.Error("same input produced different reports")
	}
}
