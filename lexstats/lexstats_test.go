package lexstats

import "testing"

func TestAnalyze(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		input         string
		wordCount     int
		sentenceCount int
		diversity     float64
		rareRatio     float64
	}{
		{
			name:  "empty string",
			input: "",
		},
		{
			name:  "all punctuation",
			input: "?!...",
		},
		{
			name:          "repeated words lower diversity",
			input:         "The cat sat. The cat ran.",
			wordCount:     8, // 6 words + 2 periods
			sentenceCount: 2,
			diversity:     0.67, // the, cat, sat, ran / 6
			rareRatio:     0.67, // cat, sat, cat, ran / 6
		},
		{
			name:          "unique words full diversity",
			input:         "Quantum leap",
			wordCount:     2,
			sentenceCount: 1,
			diversity:     1.0,
			rareRatio:     1.0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Analyze(tc.input)

			if tc.name == "all punctuation" {
				// Ratios must all be zero-guarded; exact token split is
				// covered by the tokenizer tests.
				if got.AvgConsonants != 0 || got.LexicalDiversity != 0 || got.RareWordRatio != 0 {
					t.Errorf("punctuation-only ratios not zeroed: %+v", got)
				}
				return
			}

			if got.WordCount != tc.wordCount {
				t.Errorf("WordCount = %d, want %d", got.WordCount, tc.wordCount)
			}
			if got.SentenceCount != tc.sentenceCount {
				t.Errorf("SentenceCount = %d, want %d", got.SentenceCount, tc.sentenceCount)
			}
			if got.LexicalDiversity != tc.diversity {
				t.Errorf("LexicalDiversity = %v, want %v", got.LexicalDiversity, tc.diversity)
			}
			if got.RareWordRatio != tc.rareRatio {
				t.Errorf("RareWordRatio = %v, want %v", got.RareWordRatio, tc.rareRatio)
			}
		})
	}
}

func TestRatiosBounded(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"word",
		"a a a a a",
		"The quick brown fox jumps over the lazy dog.",
		"12345 67890 !!!",
	}

	for _, in := range inputs {
		got := Analyze(in)
		if got.LexicalDiversity < 0 || got.LexicalDiversity > 1 {
			t.Errorf("Analyze(%q).LexicalDiversity = %v out of [0,1]", in, got.LexicalDiversity)
		}
		if got.RareWordRatio < 0 || got.RareWordRatio > 1 {
			t.Errorf("Analyze(%q).RareWordRatio = %v out of [0,1]", in, got.RareWordRatio)
		}
		if got.WordCount < 0 {
			t.Errorf("Analyze(%q).WordCount = %d negative", in, got.WordCount)
		}
	}
}

func TestAvgConsonants(t *testing.T) {
	t.Parallel()

	// "cat dog": consonants c,t,d,g = 4 over 2 alphabetic tokens.
	got := Analyze("cat dog")
	if got.AvgConsonants != 2.0 {
		t.Errorf("AvgConsonants = %v, want 2.0", got.AvgConsonants)
	}
}
