package mapping_test

import (
	"encoding/json"
	"testing"

	"github.com/invopop/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osmapping/mapping"
)

func TestJSONSchema(t *testing.T) {
	t.Parallel()

	s := mapping.JSONSchema()
	assert.Equal(t, jsonschema.Version, s.Version)
	assert.Equal(t, "#/$defs/Property", s.Ref)

	union := s.Definitions["Property"]
	require.NotNil(t, union)
	assert.Len(t, union.OneOf, len(mapping.Kinds()))

	dv := s.Definitions["DenseVectorProperty"]
	require.NotNil(t, dv)
	assert.Equal(t, []string{"type", "dims"}, dv.Required)

	typ, ok := dv.Properties.Get("type")
	require.True(t, ok)
	assert.Equal(t, "dense_vector", typ.Const)

	// properties keep the trait order, discriminator first
	first := dv.Properties.Oldest()
	require.NotNil(t, first)
	assert.Equal(t, "type", first.Key)
	assert.Equal(t, "local_metadata", first.Next().Key)

	nested, ok := dv.Properties.Get("properties")
	require.True(t, ok)
	assert.Equal(t, "#/$defs/Property", nested.AdditionalProperties.Ref)

	obj := s.Definitions["ObjectProperty"]
	require.NotNil(t, obj)
	assert.NotContains(t, obj.Required, "type")

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"$schema":"https://json-schema.org/draft/2020-12/schema"`)
}

func TestTypeMappingSchema(t *testing.T) {
	t.Parallel()

	s := mapping.TypeMappingSchema()
	assert.Equal(t, "#/$defs/TypeMapping", s.Ref)

	tm := s.Definitions["TypeMapping"]
	require.NotNil(t, tm)

	source, ok := tm.Properties.Get("_source")
	require.True(t, ok)
	assert.Equal(t, "object", source.Type)

	_, ok = source.Properties.Get("excludes")
	assert.True(t, ok)

	_, err := json.Marshal(s)
	require.NoError(t, err)
}
