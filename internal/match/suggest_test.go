package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	t.Parallel()

	tags := []string{"keyword", "text", "long", "long_range", "dense_vector", "date", "date_nanos"}

	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{name: "transposition", in: "keywrod", want: "keyword", wantOK: true},
		{name: "camel case", in: "denseVector", want: "dense_vector", wantOK: true},
		{name: "missing separator", in: "longrange", want: "long_range", wantOK: true},
		{name: "exact match", in: "text", wantOK: false},
		{name: "unrelated", in: "geo_shape_polygon", wantOK: false},
		{name: "empty", in: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Suggest(tt.in, tags)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
