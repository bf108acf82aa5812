package lint

import (
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osmapping/internal/diagnostic"
	"osmapping/mapping"
	"osmapping/options"
)

func decode(t *testing.T, js string) *mapping.TypeMapping {
	t.Helper()

	tm, err := mapping.DecodeTypeMapping([]byte(js), options.DecodeDefault)
	require.NoError(t, err)

	return tm
}

func codes(ds []diagnostic.Diagnostic) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Path+":"+d.Code)
	}

	return out
}

func TestCheckClean(t *testing.T) {
	t.Parallel()

	tm := decode(t, `{"properties":{
		"title": {"type":"text","copy_to":["all"],"fields":{"raw":{"type":"keyword","ignore_above":256}}},
		"all": {"type":"text"},
		"title_raw": {"type":"alias","path":"title.raw"},
		"price": {"type":"scaled_float","scaling_factor":100},
		"vec": {"type":"dense_vector","dims":128},
		"rel": {"type":"join","relations":{"question":["answer"]}}
	}}`)

	res := Check(tm)
	assert.False(t, res.HasErrors(), spew.Sdump(res))
	assert.Empty(t, res.Warnings)
}

func TestCheckErrors(t *testing.T) {
	t.Parallel()

	tm := decode(t, `{"properties":{
		"title": {"type":"text","copy_to":["al"],"fielddata":true},
		"all": {"type":"text"},
		"user": {"properties":{"name":{"type":"keyword","ignore_above":-1}}},
		"name_alias": {"type":"alias","path":"user.nme"},
		"obj_alias": {"type":"alias","path":"user"},
		"price": {"type":"scaled_float"},
		"vec": {"type":"dense_vector","dims":20000},
		"rel": {"type":"join"}
	}}`)

	res := Check(tm)
	require.True(t, res.HasErrors())

	all := res.All()
	assert.Equal(t, []string{
		"name_alias:unresolved_alias",
		"obj_alias:unresolved_alias",
		"price:missing_scaling_factor",
		"title:unresolved_copy_to",
		"user.name:negative_ignore_above",
		"vec:dense_vector_dims",
		"rel:empty_join_relations",
		"title:text_fielddata",
	}, codes(all))

	for _, d := range all {
		switch d.Path {
		case "name_alias":
			assert.Equal(t, []string{"user.name"}, d.Suggestions)
		case "title":
			if d.Code == CodeUnresolvedCopyTo {
				assert.Equal(t, []string{"all"}, d.Suggestions)
			}
		}
	}

	assert.Contains(t, res.Error().Error(), `alias path "user.nme" does not resolve`)
}

func TestCheckDepth(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	for range MaxObjectDepth + 2 {
		b.WriteString(`{"properties":{"o":`)
	}

	b.WriteString(`{"type":"keyword"}`)

	for range MaxObjectDepth + 2 {
		b.WriteString(`}}`)
	}

	p, err := mapping.DecodeProperty([]byte(b.String()), options.DecodeDefault)
	require.NoError(t, err)

	res := CheckProperty("root", p)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, CodeDepthExceeded, res.Warnings[0].Code)
	assert.Equal(t, MaxObjectDepth+1, depth(res.Warnings[0].Path))
}
