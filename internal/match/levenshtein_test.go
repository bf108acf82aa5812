package match

import (
	"testing"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"", "", 0},
		{"keyword", "keyword", 0},

		// Empty vs non-empty
		{"", "text", 4},
		{"text", "", 4},

		// Single edits
		{"long", "lung", 1},
		{"date", "dates", 1},
		{"short", "shor", 1},

		// Typical discriminator typos
		{"keywrod", "keyword", 2},
		{"dense_vektor", "dense_vector", 1},
		{"ip_rnage", "ip_range", 2},
		{"kitten", "sitting", 3},

		// Case-sensitive
		{"Text", "text", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Levenshtein(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}

			resultReverse := Levenshtein(tt.b, tt.a)
			if result != resultReverse {
				t.Errorf("Levenshtein symmetry failed: (%q, %q) = %d, (%q, %q) = %d",
					tt.a, tt.b, result, tt.b, tt.a, resultReverse)
			}
		})
	}
}

func TestSimilarity(t *testing.T) {
	if got := Similarity("DenseVector", "dense_vector"); got != 1.0 {
		t.Errorf("Similarity(DenseVector, dense_vector) = %v, want 1", got)
	}

	if got := Similarity("", ""); got != 1.0 {
		t.Errorf("Similarity of empty strings = %v, want 1", got)
	}

	if got := Similarity("abc", "xyz"); got != 0.0 {
		t.Errorf("Similarity(abc, xyz) = %v, want 0", got)
	}
}
