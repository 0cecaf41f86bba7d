package domain

import (
	"math"
	"testing"
)

func TestSimilarChars(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"World", "Word", 4},
		{"chargecardjob", "chargecardjob", 13},
		{"abc", "xyz", 0},
		{"", "abc", 0},
	}
	for _, c := range cases {
		if got := SimilarChars(c.a, c.b); got != c.want {
			t.Errorf("SimilarChars(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestSimilarityPercent(t *testing.T) {
	if got := SimilarityPercent("chargecardjob", "chargecardjob"); got != 100 {
		t.Fatalf("identical strings must score 100, got %v", got)
	}
	if got := SimilarityPercent("World", "Word"); math.Abs(got-800.0/9) > 1e-9 {
		t.Fatalf("expected 88.88.., got %v", got)
	}
	if got := SimilarityPercent("qqq", "chargecardjob"); got != 0 {
		t.Fatalf("disjoint strings must score 0, got %v", got)
	}
	if got := SimilarityPercent("", ""); got != 0 {
		t.Fatalf("empty strings must score 0, got %v", got)
	}
}
