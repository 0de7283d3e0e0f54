package ngram

import "testing"

func TestBigrams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		words []string
		want  []string
	}{
		{
			name:  "empty input",
			words: nil,
			want:  nil,
		},
		{
			name:  "one word too short",
			words: []string{"cat"},
			want:  nil,
		},
		{
			name:  "no repeats",
			words: []string{"the", "cat", "sat"},
			want:  []string{},
		},
		{
			name:  "repeated bigram",
			words: []string{"the", "cat", "sat", "the", "cat", "ran"},
			want:  []string{"the cat (2)"},
		},
		{
			name: "descending then alphabetical",
			words: []string{
				"a", "b", "a", "b", "a", "b", // "a b"×3 plus "b a"×2
				"x", "y", "x", "y", // "x y"×2, "y x"×1
			},
			want: []string{"a b (3)", "b a (2)", "x y (2)"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Format(Bigrams(tc.words))
			if len(got) != len(tc.want) {
				t.Fatalf("Bigrams = %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("Bigrams[%d] = %q, want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestTrigrams(t *testing.T) {
	t.Parallel()

	words := []string{
		"the", "old", "man", "walked", "slowly",
		"the", "old", "man", "smiled",
	}
	got := Format(Trigrams(words))
	if len(got) != 1 || got[0] != "the old man (2)" {
		t.Errorf("Trigrams = %v, want [\"the old man (2)\"]", got)
	}

	if got := Trigrams([]string{"a", "b"}); got != nil {
		t.Errorf("Trigrams on 2 words = %v, want nil", got)
	}
}

func TestTopLimit(t *testing.T) {
	t.Parallel()

	// Seven distinct repeated bigrams; only five survive.
	var words []string
	pairs := [][2]string{
		{"aa", "ab"}, {"ba", "bb"}, {"ca", "cb"}, {"da", "db"},
		{"ea", "eb"}, {"fa", "fb"}, {"ga", "gb"},
	}
	for _, p := range pairs {
		words = append(words, p[0], p[1], "gap", p[0], p[1], "gap")
	}

	got := Bigrams(words)
	if len(got) != 5 {
		t.Errorf("got %d bigrams, want 5", len(got))
	}
	for _, g := range got {
		if g.Count < 2 {
			t.Errorf("gram %v below minimum count", g)
		}
	}
}
