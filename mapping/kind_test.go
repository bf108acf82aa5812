package mapping

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osmapping/options"
)

const variantCount = 44

func TestKindsAreConsistent(t *testing.T) {
	t.Parallel()

	kinds := Kinds()
	require.Len(t, kinds, variantCount)
	assert.Equal(t, variantCount+1, KindTotal)

	for _, k := range kinds {
		assert.True(t, k.IsValid(), "kind %d", int(k))

		parsed, ok := ParseKind(k.String())
		assert.True(t, ok, k.String())
		assert.Equal(t, k, parsed)

		assert.NotNil(t, variantDecoder(k), k.String())
		assert.NotNil(t, lookupVariantDecoder(k), k.String())
		assert.NotEmpty(t, k.TypeName(), k.String())

		traits := k.Traits()
		require.NotEmpty(t, traits, k.String())
		assert.Equal(t, "PropertyBase", traits[0])
	}

	assert.Len(t, Tags(), variantCount)
}

func TestKindText(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(map[Kind]Kind{KindIP: KindIPRange})
	require.NoError(t, err)
	assert.Equal(t, `{"ip":"ip_range"}`, string(data))

	var k Kind
	require.NoError(t, k.UnmarshalText([]byte("search_as_you_type")))
	assert.Equal(t, KindSearchAsYouType, k)

	err = k.UnmarshalText([]byte("flattend"))

	var unknown *UnknownVariantError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "flattened", unknown.Suggestion)

	_, err = Kind(-1).MarshalText()
	require.Error(t, err)
}

func TestKindPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, KindLong.IsNumber())
	assert.True(t, KindScaledFloat.IsNumber())
	assert.False(t, KindKeyword.IsNumber())
	assert.True(t, KindIPRange.IsRange())
	assert.False(t, KindIP.IsRange())
	assert.True(t, KindNested.IsObjectLike())
	assert.True(t, KindObject.IsObjectLike())
	assert.True(t, KindText.IsTextual())
	assert.False(t, KindDate.IsTextual())
}

func TestKindFields(t *testing.T) {
	t.Parallel()

	fields := KindDenseVector.Fields()
	require.NotEmpty(t, fields)

	byName := map[string]FieldInfo{}
	for _, f := range fields {
		byName[f.Name] = f
	}

	assert.Equal(t, FieldInfo{Name: "dims", Type: "integer", Required: true}, byName["dims"])
	assert.Equal(t, FieldInfo{Name: "properties", Type: "property map"}, byName["properties"])
	assert.NotContains(t, byName, "type")

	// inherited fields come first
	assert.Equal(t, "local_metadata", fields[0].Name)
}

// requiredOnly holds the smallest valid document of every kind that has
// required fields.
var requiredOnly = map[Kind]string{
	KindAggregateMetricDouble: `{"type":"aggregate_metric_double","default_metric":"max","metrics":["min","max"]}`,
	KindDenseVector:           `{"type":"dense_vector","dims":3}`,
}

func TestRoundTripMinimal(t *testing.T) {
	t.Parallel()

	for _, k := range Kinds() {
		in, ok := requiredOnly[k]
		if !ok {
			in = `{"type":"` + k.String() + `"}`
		}

		p, err := DecodeProperty([]byte(in), options.DecodeNone)
		require.NoError(t, err, k.String())
		assert.Equal(t, k, p.Kind())

		out, err := json.Marshal(p)
		require.NoError(t, err, k.String())
		assert.Equal(t, in, string(out))
	}
}

// sampleValues maps "name/type" to a valid JSON value for that field.
var sampleValues = map[string]string{
	"local_metadata/object":              `{"owner":"search","priority":1}`,
	"meta/object":                        `{"unit":"ms"}`,
	"properties/property map":            `{"child":{"type":"keyword"}}`,
	"fields/property map":                `{"raw":{"type":"keyword","ignore_above":10}}`,
	"dynamic/string":                     `"strict"`,
	"script/object":                      `{"source":"emit(1)","lang":"painless","params":{"n":2}}`,
	"on_script_error/string":             `"continue"`,
	"fielddata/object":                   `{"format":"array"}`,
	"fielddata_frequency_filter/object":  `{"max":0.5,"min":0.001,"min_segment_size":500}`,
	"index_prefixes/object":              `{"max_chars":5,"min_chars":2}`,
	"index_options/object":               `{"type":"hnsw","m":16,"ef_construction":100}`,
	"index_options/string":               `"offsets"`,
	"term_vector/string":                 `"with_positions_offsets"`,
	"orientation/string":                 `"ccw"`,
	"strategy/string":                    `"recursive"`,
	"time_series_metric/string":          `"gauge"`,
	"contexts/array":                     `[{"name":"place","type":"geo","precision":4}]`,
	"relations/object":                   `{"question":["answer","comment"]}`,
	"metrics/array":                      `["min","max","sum"]`,
	"null_value/any":                     `[1.5,2.25]`,
	"value/any":                          `"fixed"`,
}

func sampleFor(f FieldInfo) string {
	if v, ok := sampleValues[f.Name+"/"+f.Type]; ok {
		return v
	}

	switch f.Type {
	case "boolean":
		return `true`
	case "integer":
		return `7`
	case "number":
		return `1.5`
	case "array":
		return `["all"]`
	default:
		return `"x"`
	}
}

func TestRoundTripAllFields(t *testing.T) {
	t.Parallel()

	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			t.Parallel()

			doc := map[string]json.RawMessage{"type": json.RawMessage(`"` + k.String() + `"`)}
			for _, f := range k.Fields() {
				doc[f.Name] = json.RawMessage(sampleFor(f))
			}

			in, err := json.Marshal(doc)
			require.NoError(t, err)

			p, err := DecodeProperty(in, options.DecodeStrict)
			require.NoError(t, err)

			out, err := json.Marshal(p)
			require.NoError(t, err)
			assert.JSONEq(t, string(in), string(out))

			// decoding the output again yields an equal value
			again, err := DecodeProperty(out, options.DecodeStrict)
			require.NoError(t, err)
			assert.Equal(t, p, again)
		})
	}
}
