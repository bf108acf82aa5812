package mapping_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osmapping/mapping"
	"osmapping/options"
)

func TestScript(t *testing.T) {
	t.Parallel()

	var s mapping.Script
	require.NoError(t, json.Unmarshal([]byte(`"doc['a'].value * 2"`), &s))
	assert.Equal(t, mapping.Script{Source: "doc['a'].value * 2"}, s)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"stored","params":{"factor":2}}`), &s))
	assert.Equal(t, "stored", s.ID)
	assert.Equal(t, map[string]any{"factor": json.Number("2")}, s.Params)

	err := json.Unmarshal([]byte(`{"lang":"painless"}`), &s)
	assert.Equal(t, []string{"source"}, mapping.MissingFields(err))

	out, err := json.Marshal(mapping.Script{Source: "emit(1)", Lang: "painless"})
	require.NoError(t, err)
	assert.Equal(t, `{"source":"emit(1)","lang":"painless"}`, string(out))
}

func TestValueTypesRequiredMembers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		missing []string
	}{
		{
			name:    "frequency filter",
			in:      `{"type":"text","fielddata_frequency_filter":{"min":0.1}}`,
			missing: []string{"max", "min_segment_size"},
		},
		{
			name:    "index prefixes",
			in:      `{"type":"text","index_prefixes":{"min_chars":null}}`,
			missing: []string{"max_chars", "min_chars"},
		},
		{
			name:    "suggest context",
			in:      `{"type":"completion","contexts":[{"name":"place"}]}`,
			missing: []string{"type"},
		},
		{
			name:    "numeric fielddata",
			in:      `{"type":"boolean","fielddata":{}}`,
			missing: []string{"format"},
		},
		{
			name:    "dense vector index options",
			in:      `{"type":"dense_vector","dims":2,"index_options":{"m":4}}`,
			missing: []string{"type"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := mapping.DecodeProperty([]byte(tt.in), options.DecodeDefault)
			require.Error(t, err)
			assert.Equal(t, tt.missing, mapping.MissingFields(err))
		})
	}
}

func TestValueTypesMarshal(t *testing.T) {
	t.Parallel()

	m := 16

	tests := []struct {
		name string
		v    any
		want string
	}{
		{"fielddata", mapping.NumericFielddata{Format: mapping.NumericFielddataDisabled}, `{"format":"disabled"}`},
		{"frequency filter", mapping.FielddataFrequencyFilter{Max: 1, Min: 0.5, MinSegmentSize: 10}, `{"max":1,"min":0.5,"min_segment_size":10}`},
		{"prefixes", mapping.TextIndexPrefixes{MaxChars: 5, MinChars: 2}, `{"max_chars":5,"min_chars":2}`},
		{"context", mapping.SuggestContext{Name: "loc", Type: "geo", Precision: 4}, `{"name":"loc","type":"geo","precision":4}`},
		{"index options", mapping.DenseVectorIndexOptions{Type: "hnsw", M: &m}, `{"type":"hnsw","m":16}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := json.Marshal(tt.v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestEnums(t *testing.T) {
	t.Parallel()

	assert.True(t, mapping.GeoOrientationCCW.IsValid())
	assert.Equal(t, mapping.GeoOrientationRight, mapping.GeoOrientationCCW.Canonical())
	assert.Equal(t, mapping.GeoOrientationLeft, mapping.GeoOrientationClockwise.Canonical())
	assert.Equal(t, mapping.GeoOrientationLeft, mapping.GeoOrientationLeft.Canonical())
	assert.False(t, mapping.GeoOrientation("up").IsValid())
	assert.True(t, mapping.TermVectorWithPositionsOffsetsPayload.IsValid())
	assert.False(t, mapping.IndexOptions("all").IsValid())
	assert.True(t, mapping.DynamicRuntime.IsValid())
	assert.Equal(t, "strict", mapping.DynamicStrict.String())

	p, err := mapping.DecodeProperty([]byte(`{"type":"nested","dynamic":true}`), options.DecodeNone)
	require.NoError(t, err)

	nested, err := p.Nested()
	require.NoError(t, err)

	d, ok := nested.Dynamic()
	assert.True(t, ok)
	assert.Equal(t, mapping.DynamicTrue, d)
}
