package match

import (
	"math"
	"testing"
)

func TestNameDistance(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		candidate string
		want      float64
	}{
		{"exact match", "Winter Jacket", "Winter Jacket", 0},
		{"case folded match", "winter jacket", "Winter Jacket", 0},
		{"unrelated names", "Bicycle", "Winter Jacket", 1},
		{"both empty", "", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nameDistance(tt.query, tt.candidate)
			if got != tt.want {
				t.Fatalf("nameDistance(%q, %q) = %v, want %v", tt.query, tt.candidate, got, tt.want)
			}
		})
	}
}

func TestNameDistanceTypoWithinThreshold(t *testing.T) {
	// One dropped letter: edit distance 1 over the 6-rune candidate.
	got := nameDistance("Jackt", "Jacket")
	if math.Abs(got-1.0/6.0) > 1e-12 {
		t.Fatalf("expected normalized distance 1/6, got %v", got)
	}
}

func TestNameDistanceEmptyQueryIsDeterministic(t *testing.T) {
	// An empty query name treats every non-empty candidate uniformly as
	// unmatched: the edit distance equals the candidate length, which
	// always lands above the match threshold.
	candidates := []string{"Winter Jacket", "Rice", "Blanket", "x"}
	for _, c := range candidates {
		if got := nameDistance("", c); got != 1 {
			t.Fatalf("empty query against %q should score 1, got %v", c, got)
		}
	}
}

func TestNameDistanceThresholdExclusion(t *testing.T) {
	// A fuzzy hit whose normalized distance exceeds 0.4 is dropped to the
	// worst distance rather than keeping a weak partial score.
	// "Cap" is a subsequence of "Carpet" so it fuzzy-matches, but the edit
	// distance (3 over 6 runes) is past the threshold.
	if got := nameDistance("Cap", "Carpet"); got != 1 {
		t.Fatalf("expected over-threshold match to score 1, got %v", got)
	}
}
