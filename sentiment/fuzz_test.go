package sentiment

import (
	"math"
	"testing"
)

func FuzzAnalyze(f *testing.F) {
	f.Add("What a wonderful day")
	f.Add("terrible awful news")
	f.Add("")
	f.Add("123 456")
	f.Add("not good, not bad, not anything")
	f.Add("very very very happy")

	f.Fuzz(func(t *testing.T, s string) {
		r := Analyze(s)

		if r.Compound < -1.0 || r.Compound > 1.0 {
			t.Errorf("Compound out of range: %.4f", r.Compound)
		}
		if math.IsNaN(r.Compound) || math.IsInf(r.Compound, 0) {
			t.Errorf("Compound is NaN or Inf: %v", r.Compound)
		}

		for _, v := range []float64{r.Neg, r.Neu, r.Pos} {
			if v < 0 || v > 1 {
				t.Errorf("proportion out of range: %v", r)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("proportion is NaN or Inf: %v", r)
			}
		}

		sum := r.Neg + r.Neu + r.Pos
		if sum != 0 && (sum < 0.99 || sum > 1.01) {
			t.Errorf("proportions sum to %v, want ~1.0 or 0", sum)
		}
	})
}
