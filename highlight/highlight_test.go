package highlight

import (
	"strings"
	"testing"
)

func TestAnalyzeEmpty(t *testing.T) {
	t.Parallel()

	if got := Analyze(""); got != nil {
		t.Errorf("Analyze(\"\") = %v, want nil", got)
	}
}

func TestShortSimpleSentenceNotHighlighted(t *testing.T) {
	t.Parallel()

	got := Analyze("The cat sat.")
	if len(got) != 1 {
		t.Fatalf("got %d sentences, want 1", len(got))
	}
	if got[0].Opacity != 0 {
		t.Errorf("Opacity = %v, want 0 for a short simple sentence", got[0].Opacity)
	}
	if got[0].IsHard {
		t.Error("IsHard = true for a three-word sentence")
	}
}

func TestLongSentenceHighlighted(t *testing.T) {
	t.Parallel()

	// 25 plain words: lenScore = 25/30, compScore = 0.
	sent := strings.Repeat("the cat sat on a mat in a sun ", 2) +
		"and the dog ran by"
	got := Analyze(sent + ".")
	if len(got) != 1 {
		t.Fatalf("got %d sentences, want 1", len(got))
	}
	if got[0].Opacity <= 0 {
		t.Errorf("Opacity = %v, want > 0 for a 25-word sentence", got[0].Opacity)
	}
	if got[0].Opacity > 0.6 {
		t.Errorf("Opacity = %v, exceeds 0.6 cap", got[0].Opacity)
	}
	if !got[0].IsHard {
		t.Error("IsHard = false for a 25-word sentence")
	}
}

func TestComplexWordsRaiseScore(t *testing.T) {
	t.Parallel()

	plain := Analyze("The cat sat on the mat by the door today.")
	dense := Analyze("Institutional frameworks necessitate comprehensive organizational restructuring initiatives today.")
	if len(plain) != 1 || len(dense) != 1 {
		t.Fatal("expected one sentence each")
	}
	if dense[0].ComplexityScore <= plain[0].ComplexityScore {
		t.Errorf("dense score %v not above plain score %v",
			dense[0].ComplexityScore, plain[0].ComplexityScore)
	}
}

func TestOpacityCap(t *testing.T) {
	t.Parallel()

	// Saturate both components: 40 words, 10 of them long.
	var b strings.Builder
	for i := 0; i < 30; i++ {
		b.WriteString("word ")
	}
	for i := 0; i < 10; i++ {
		b.WriteString("extraordinary ")
	}
	got := Analyze(strings.TrimSpace(b.String()) + ".")
	if len(got) != 1 {
		t.Fatalf("got %d sentences, want 1", len(got))
	}
	if got[0].Opacity != 0.6 {
		t.Errorf("Opacity = %v, want capped at 0.6", got[0].Opacity)
	}
	if got[0].ComplexityScore != 10.0 {
		t.Errorf("ComplexityScore = %v, want 10.0 at saturation", got[0].ComplexityScore)
	}
}

func TestFrequentWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		words []string
		topN  int
		want  []string
	}{
		{
			name:  "stopwords excluded",
			words: []string{"the", "the", "the", "cat", "cat"},
			topN:  5,
			want:  []string{"cat"},
		},
		{
			name:  "singletons excluded",
			words: []string{"cat", "dog", "bird"},
			topN:  5,
			want:  []string{},
		},
		{
			name:  "ordered by count then alphabetically",
			words: []string{"zebra", "zebra", "zebra", "apple", "apple", "mango", "mango"},
			topN:  5,
			want:  []string{"zebra", "apple", "mango"},
		},
		{
			name:  "truncated to topN",
			words: []string{"a1", "a1", "b2", "b2", "c3", "c3", "d4", "d4"},
			topN:  2,
			want:  []string{"a1", "b2"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := FrequentWords(tc.words, tc.topN)
			if len(got) != len(tc.want) {
				t.Fatalf("FrequentWords = %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("FrequentWords[%d] = %q, want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestMarkupPreservesPunctuation(t *testing.T) {
	t.Parallel()

	got := Analyze("The forest was dark. The forest was deep, and the forest was silent!")
	if len(got) != 2 {
		t.Fatalf("got %d sentences, want 2", len(got))
	}

	// "forest" occurs three times and is not a stopword.
	for i, s := range got {
		if !strings.Contains(s.Text, `<mark title="frequent word">forest</mark>`) {
			t.Errorf("sentence %d missing mark around frequent word: %q", i, s.Text)
		}
	}
	if !strings.Contains(got[1].Text, "deep,") {
		t.Errorf("comma lost in markup: %q", got[1].Text)
	}
	if !strings.HasSuffix(got[1].Text, "!") {
		t.Errorf("terminal punctuation lost: %q", got[1].Text)
	}
}

func TestMarkupCaseInsensitive(t *testing.T) {
	t.Parallel()

	got := Analyze("Forest paths wind. The forest breathes.")
	if len(got) != 2 {
		t.Fatalf("got %d sentences, want 2", len(got))
	}
	if !strings.Contains(got[0].Text, markOpen+"Forest"+markClose) {
		t.Errorf("capitalized occurrence not marked: %q", got[0].Text)
	}
	if !strings.Contains(got[1].Text, markOpen+"forest"+markClose) {
		t.Errorf("lowercase occurrence not marked: %q", got[1].Text)
	}
}

func TestBuildNoFrequentWords(t *testing.T) {
	t.Parallel()

	got := Build([]string{"A quiet morning."}, nil)
	if len(got) != 1 {
		t.Fatalf("got %d sentences, want 1", len(got))
	}
	if strings.Contains(got[0].Text, "<mark") {
		t.Errorf("unexpected markup with no frequent words: %q", got[0].Text)
	}
	if got[0].Text != "A quiet morning." {
		t.Errorf("Text = %q, want the sentence unchanged", got[0].Text)
	}
}
