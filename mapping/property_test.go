package mapping_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osmapping/mapping"
	"osmapping/options"
)

func TestKeywordBuildAndMarshal(t *testing.T) {
	t.Parallel()

	p, err := mapping.NewKeywordPropertyBuilder().
		NullValue("N/A").
		IgnoreAbove(256).
		CopyTo([]string{"all"}).
		DocValues(false).
		BuildProperty()
	require.NoError(t, err)

	assert.Equal(t, mapping.KindKeyword, p.Kind())
	assert.True(t, p.IsKeyword())
	assert.False(t, p.IsText())

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t,
		`{"type":"keyword","ignore_above":256,"copy_to":["all"],"doc_values":false,"null_value":"N/A"}`,
		string(data))

	kw, err := p.Keyword()
	require.NoError(t, err)

	v, ok := kw.NullValue()
	assert.True(t, ok)
	assert.Equal(t, "N/A", v)

	_, ok = kw.Boost()
	assert.False(t, ok)
}

func TestMarshalOnlyTypeForEmptyVariant(t *testing.T) {
	t.Parallel()

	p := mapping.Must(mapping.NewKeywordPropertyBuilder().NullValue("N/A").BuildProperty())

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, `{"type":"keyword","null_value":"N/A"}`, string(data))

	empty := mapping.Must(mapping.NewBinaryPropertyBuilder().BuildProperty())

	data, err = json.Marshal(empty)
	require.NoError(t, err)
	assert.Equal(t, `{"type":"binary"}`, string(data))
}

func TestZeroPropertyMarshal(t *testing.T) {
	t.Parallel()

	var p mapping.Property
	assert.True(t, p.IsZero())
	assert.Nil(t, p.Properties())

	_, err := json.Marshal(p)
	require.Error(t, err)
	assert.ErrorIs(t, err, mapping.ErrEmptyProperty)
}

func TestNewPropertyTypedNil(t *testing.T) {
	t.Parallel()

	v, err := mapping.NewDenseVectorPropertyBuilder().Build()
	require.Error(t, err)
	require.Nil(t, v)

	for _, p := range []mapping.Property{
		mapping.NewProperty(v),
		mapping.NewProperty((*mapping.KeywordProperty)(nil)),
	} {
		assert.True(t, p.IsZero())
		assert.False(t, p.Kind().IsValid())

		_, err = json.Marshal(p)
		assert.ErrorIs(t, err, mapping.ErrEmptyProperty)
	}
}

func TestBuilderSingleUse(t *testing.T) {
	t.Parallel()

	b := mapping.NewTextPropertyBuilder().Analyzer("standard")

	first, err := b.Build()
	require.NoError(t, err)

	analyzer, _ := first.Analyzer()
	assert.Equal(t, "standard", analyzer)

	_, err = b.Build()
	require.ErrorIs(t, err, mapping.ErrSingleUseViolation)

	_, err = b.BuildProperty()
	require.ErrorIs(t, err, mapping.ErrSingleUseViolation)

	// the first value is unaffected by later use of the builder
	b.Analyzer("whitespace")

	analyzer, _ = first.Analyzer()
	assert.Equal(t, "standard", analyzer)
}

func TestBuilderRequiredFields(t *testing.T) {
	t.Parallel()

	t.Run("dense_vector without dims", func(t *testing.T) {
		t.Parallel()

		b := mapping.NewDenseVectorPropertyBuilder().Similarity("cosine")

		_, err := b.Build()
		require.Error(t, err)

		var missing *mapping.MissingRequiredFieldError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "dims", missing.Field)
		assert.Equal(t, "DenseVectorProperty", missing.Type)

		// a failed build does not consume the builder
		v, err := b.Dims(3).Build()
		require.NoError(t, err)
		assert.Equal(t, 3, v.Dims())
	})

	t.Run("every missing field is reported", func(t *testing.T) {
		t.Parallel()

		_, err := mapping.NewAggregateMetricDoublePropertyBuilder().Build()
		require.Error(t, err)
		assert.ElementsMatch(t, []string{"default_metric", "metrics"}, mapping.MissingFields(err))
	})
}

func TestBuilderCollectionsAreCopied(t *testing.T) {
	t.Parallel()

	copyTo := []string{"a"}
	meta := map[string]string{"owner": "search"}

	kw := mapping.Must(mapping.NewKeywordPropertyBuilder().CopyTo(copyTo).Meta(meta).Build())

	copyTo[0] = "changed"
	meta["owner"] = "changed"

	assert.Equal(t, []string{"a"}, kw.CopyTo())
	assert.Equal(t, map[string]string{"owner": "search"}, kw.Meta())

	got := kw.CopyTo()
	got[0] = "mutated"
	assert.Equal(t, []string{"a"}, kw.CopyTo())
}

func TestNestedBuild(t *testing.T) {
	t.Parallel()

	raw := mapping.Must(mapping.NewKeywordPropertyBuilder().BuildProperty())
	name := mapping.Must(mapping.NewTextPropertyBuilder().Field("raw", raw).BuildProperty())
	age := mapping.Must(mapping.NewIntegerNumberPropertyBuilder().BuildProperty())

	user := mapping.Must(mapping.NewObjectPropertyBuilder().
		Property("name", name).
		Property("age", age).
		BuildProperty())

	data, err := json.Marshal(user)
	require.NoError(t, err)
	assert.Equal(t,
		`{"type":"object","properties":{"age":{"type":"integer"},"name":{"type":"text","fields":{"raw":{"type":"keyword"}}}}}`,
		string(data))

	back, err := mapping.DecodeProperty(data, options.DecodeDefault)
	require.NoError(t, err)
	assert.Equal(t, user, back, spew.Sdump(back))
}

func TestDecodeProperty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		kind mapping.Kind
		out  string
	}{
		{
			name: "keyword",
			in:   `{"type":"keyword","null_value":"N/A"}`,
			kind: mapping.KindKeyword,
			out:  `{"type":"keyword","null_value":"N/A"}`,
		},
		{
			name: "no type is object",
			in:   `{}`,
			kind: mapping.KindObject,
			out:  `{"type":"object"}`,
		},
		{
			name: "null type is object",
			in:   `{"type":null,"enabled":false}`,
			kind: mapping.KindObject,
			out:  `{"type":"object","enabled":false}`,
		},
		{
			name: "null members are absent",
			in:   `{"type":"long","null_value":null,"coerce":true}`,
			kind: mapping.KindLong,
			out:  `{"type":"long","coerce":true}`,
		},
		{
			name: "text number and textual bool",
			in:   `{"type":"keyword","ignore_above":"256","doc_values":"false"}`,
			kind: mapping.KindKeyword,
			out:  `{"type":"keyword","ignore_above":256,"doc_values":false}`,
		},
		{
			name: "single copy_to",
			in:   `{"type":"text","copy_to":"all"}`,
			kind: mapping.KindText,
			out:  `{"type":"text","copy_to":["all"]}`,
		},
		{
			name: "empty meta is kept",
			in:   `{"type":"keyword","meta":{}}`,
			kind: mapping.KindKeyword,
			out:  `{"type":"keyword","meta":{}}`,
		},
		{
			name: "dynamic as bool",
			in:   `{"type":"object","dynamic":false}`,
			kind: mapping.KindObject,
			out:  `{"type":"object","dynamic":"false"}`,
		},
		{
			name: "unknown keys are skipped",
			in:   `{"type":"boolean","nul_value":true}`,
			kind: mapping.KindBoolean,
			out:  `{"type":"boolean"}`,
		},
		{
			name: "script as string",
			in:   `{"type":"long","script":"emit(1)"}`,
			kind: mapping.KindLong,
			out:  `{"type":"long","script":{"source":"emit(1)"}}`,
		},
		{
			name: "large unsigned long",
			in:   `{"type":"unsigned_long","null_value":18446744073709551615}`,
			kind: mapping.KindUnsignedLong,
			out:  `{"type":"unsigned_long","null_value":18446744073709551615}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := mapping.DecodeProperty([]byte(tt.in), options.DecodeDefault)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, p.Kind())

			out, err := json.Marshal(p)
			require.NoError(t, err)
			assert.Equal(t, tt.out, string(out))
		})
	}
}

func TestDecodePropertyErrors(t *testing.T) {
	t.Parallel()

	t.Run("unknown variant", func(t *testing.T) {
		t.Parallel()

		_, err := mapping.DecodeProperty([]byte(`{"type":"keywrd"}`), options.DecodeDefault)

		var unknown *mapping.UnknownVariantError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "keywrd", unknown.Discriminator)
		assert.Equal(t, "keyword", unknown.Suggestion)
		assert.Contains(t, err.Error(), `did you mean "keyword"?`)
	})

	t.Run("type is not a string", func(t *testing.T) {
		t.Parallel()

		_, err := mapping.DecodeProperty([]byte(`{"type":5}`), options.DecodeDefault)

		var fe *mapping.FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "type", fe.Path)
	})

	t.Run("not an object", func(t *testing.T) {
		t.Parallel()

		_, err := mapping.DecodeProperty([]byte(`["keyword"]`), options.DecodeDefault)

		var malformed *mapping.MalformedValueError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, "object", malformed.Expected)
	})

	t.Run("missing required field", func(t *testing.T) {
		t.Parallel()

		_, err := mapping.DecodeProperty([]byte(`{"type":"dense_vector","similarity":"l2_norm"}`), options.DecodeDefault)
		assert.Equal(t, []string{"dims"}, mapping.MissingFields(err))
	})

	t.Run("invalid enum", func(t *testing.T) {
		t.Parallel()

		_, err := mapping.DecodeProperty([]byte(`{"type":"keyword","index_options":"all"}`), options.DecodeDefault)

		var malformed *mapping.MalformedValueError
		require.ErrorAs(t, err, &malformed)

		var fe *mapping.FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "index_options", fe.Path)
	})

	t.Run("out of range", func(t *testing.T) {
		t.Parallel()

		_, err := mapping.DecodeProperty([]byte(`{"type":"byte","null_value":300}`), options.DecodeDefault)

		var malformed *mapping.MalformedValueError
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("nested path", func(t *testing.T) {
		t.Parallel()

		in := `{"properties":{"user":{"properties":{"age":{"type":"integer","ignore_above":"many"}}}}}`

		_, err := mapping.DecodeProperty([]byte(in), options.DecodeDefault)

		var fe *mapping.FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "properties.user.properties.age.ignore_above", fe.Path)
	})
}

func TestDecodeFlags(t *testing.T) {
	t.Parallel()

	t.Run("exact types without text flags", func(t *testing.T) {
		t.Parallel()

		_, err := mapping.DecodeProperty([]byte(`{"type":"keyword","ignore_above":"256"}`), options.DecodeNone)

		var malformed *mapping.MalformedValueError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, "integer", malformed.Expected)

		_, err = mapping.DecodeProperty([]byte(`{"type":"keyword","store":"true"}`), options.DecodeNone)
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, "boolean", malformed.Expected)
	})

	t.Run("strict rejects unknown keys", func(t *testing.T) {
		t.Parallel()

		_, err := mapping.DecodeProperty([]byte(`{"type":"keyword","nul_value":"x"}`), options.DecodeStrict)

		var unknown *mapping.UnknownFieldError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "nul_value", unknown.Field)
		assert.Equal(t, "null_value", unknown.Suggestion)
	})

	t.Run("strict accepts the discriminator", func(t *testing.T) {
		t.Parallel()

		_, err := mapping.DecodeProperty([]byte(`{"type":"keyword","null_value":"x"}`), options.DecodeStrict)
		require.NoError(t, err)
	})
}

func TestUnmarshalJSON(t *testing.T) {
	t.Parallel()

	var doc struct {
		Field mapping.Property `json:"field"`
	}

	err := json.Unmarshal([]byte(`{"field":{"type":"date","format":"yyyy-MM-dd"}}`), &doc)
	require.NoError(t, err)

	date, err := doc.Field.Date()
	require.NoError(t, err)

	format, ok := date.Format()
	assert.True(t, ok)
	assert.Equal(t, "yyyy-MM-dd", format)
}

func TestAsMismatch(t *testing.T) {
	t.Parallel()

	p := mapping.Must(mapping.NewKeywordPropertyBuilder().BuildProperty())

	_, err := p.Text()

	var mismatch *mapping.VariantMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, mapping.KindText, mismatch.Expected)
	assert.Equal(t, mapping.KindKeyword, mismatch.Actual)
	assert.Equal(t, "property holds keyword, not text", err.Error())

	kw, err := mapping.As[*mapping.KeywordProperty](p)
	require.NoError(t, err)
	assert.Equal(t, mapping.KindKeyword, kw.PropertyKind())

	_, err = mapping.As[*mapping.KeywordProperty](mapping.Property{})
	require.Error(t, err)
}

func TestTraitAccessors(t *testing.T) {
	t.Parallel()

	p, err := mapping.DecodeProperty([]byte(`{
		"type": "scaled_float",
		"scaling_factor": 100,
		"coerce": false,
		"ignore_malformed": true,
		"doc_values": true,
		"store": true,
		"meta": {"unit": "ms"}
	}`), options.DecodeDefault)
	require.NoError(t, err)

	sf, err := p.ScaledFloat()
	require.NoError(t, err)

	factor, _ := sf.ScalingFactor()
	assert.InDelta(t, 100.0, factor, 0)

	ignore, _ := sf.IgnoreMalformed()
	assert.True(t, ignore)

	docValues, _ := sf.DocValues()
	assert.True(t, docValues)

	store, _ := sf.Store()
	assert.True(t, store)

	assert.Equal(t, map[string]string{"unit": "ms"}, sf.Meta())

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t,
		`{"type":"scaled_float","meta":{"unit":"ms"},"store":true,"doc_values":true,"ignore_malformed":true,"coerce":false,"scaling_factor":100}`,
		string(out))
}

func TestMissingFieldsOnUnrelatedError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, mapping.MissingFields(nil))
	assert.Empty(t, mapping.MissingFields(errors.New("boom")))
}
