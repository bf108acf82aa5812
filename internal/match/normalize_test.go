package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"keyword", "keyword"},
		{"dense_vector", "densevector"},
		{"DenseVector", "densevector"},
		{"search-as-you-type", "searchasyoutype"},
		{"copy_to", "copyto"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestTokens(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"search_as_you_type", []string{"search", "as", "you", "type"}},
		{"ignoreAbove", []string{"ignore", "above"}},
		{"IPRange", []string{"ip", "range"}},
		{"doc_values", []string{"doc", "values"}},
		{"murmur3", []string{"murmur3"}},
		{"", nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Tokens(tt.in), "Tokens(%q)", tt.in)
	}
}
