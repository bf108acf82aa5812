package catalog

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadMappingCatalog(t *testing.T) *Catalog {
	t.Helper()

	c, err := LoadFile("../../mapping/catalog.yaml")
	require.NoError(t, err)

	return c
}

func TestLoadFile_MappingCatalog(t *testing.T) {
	c := loadMappingCatalog(t)

	assert.Equal(t, "mapping", c.Package)
	assert.Len(t, c.Traits, 6)
	assert.Len(t, c.Variants, 44)

	diags := Validate(c)
	require.False(t, diags.HasErrors(), "diagnostics: %s", spew.Sdump(diags.Errors))

	kw, ok := c.Variant("keyword")
	require.True(t, ok)
	assert.Equal(t, "KeywordProperty", kw.Type)
	assert.Equal(t, "DocValuesPropertyBase", kw.Trait)

	alias, ok := c.Variant("alias")
	require.True(t, ok)
	assert.Equal(t, "FieldAliasProperty", alias.Type)

	dv, ok := c.Variant("dense_vector")
	require.True(t, ok)

	required := dv.RequiredFields()
	require.Len(t, required, 1)
	assert.Equal(t, "dims", required[0].Name)
	assert.Equal(t, "Dims", required[0].GoName)
}

func TestCatalog_AllFields(t *testing.T) {
	c := loadMappingCatalog(t)

	sf, ok := c.Variant("scaled_float")
	require.True(t, ok)

	fields, err := c.AllFields(sf)
	require.NoError(t, err)

	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}

	assert.Equal(t, []string{
		"local_metadata", "meta", "name", "properties", "ignore_above", "dynamic", "fields",
		"copy_to", "similarity", "store",
		"doc_values",
		"index", "ignore_malformed",
		"coerce", "null_value", "scaling_factor",
	}, names)
}

func TestCatalog_Chain(t *testing.T) {
	c := loadMappingCatalog(t)

	chain, err := c.Chain("StandardNumberPropertyBase")
	require.NoError(t, err)

	var names []string
	for _, tr := range chain {
		names = append(names, tr.Name)
	}

	assert.Equal(t, []string{
		"PropertyBase", "CorePropertyBase", "DocValuesPropertyBase",
		"NumberPropertyBase", "StandardNumberPropertyBase",
	}, names)

	_, err = c.Chain("Missing")
	assert.Error(t, err)
}

func TestCatalog_TraitOrder(t *testing.T) {
	c := &Catalog{Traits: []Trait{
		{Name: "Leaf", Parent: "Mid"},
		{Name: "Root"},
		{Name: "Mid", Parent: "Root"},
	}}

	order, err := c.TraitOrder()
	require.NoError(t, err)
	require.Len(t, order, 3)
	assert.Equal(t, "Root", order[0].Name)
	assert.Equal(t, "Mid", order[1].Name)
	assert.Equal(t, "Leaf", order[2].Name)
}

func TestValidate_Broken(t *testing.T) {
	c, err := LoadFile("testdata/broken.yaml")
	require.NoError(t, err)

	diags := Validate(c)
	require.True(t, diags.HasErrors())

	codes := diags.Codes()
	assert.Contains(t, codes, "required_trait_field")
	assert.Contains(t, codes, "unknown_parent")
	assert.Contains(t, codes, "duplicate_field")
	assert.Contains(t, codes, "duplicate_kind")
	assert.Contains(t, codes, "duplicate_tag")
	assert.Contains(t, codes, "unknown_trait")

	for _, d := range diags.Errors {
		switch d.Code {
		case "unknown_parent":
			assert.Equal(t, []string{"PropertyBase"}, d.Suggestions)
		case "unknown_trait":
			assert.Equal(t, []string{"DocValuesPropertyBase"}, d.Suggestions)
		}
	}
}

func TestValidate_DuplicateFieldMessage(t *testing.T) {
	c, err := LoadFile("testdata/broken.yaml")
	require.NoError(t, err)

	var messages []string

	for _, d := range Validate(c).Errors {
		if d.Code == "duplicate_field" {
			messages = append(messages, d.Subject+": "+d.Message)
		}
	}

	assert.ElementsMatch(t, []string{
		`KeywordProperty: field "name" already declared by PropertyBase`,
		`TextProperty: field "type" already declared by discriminator`,
	}, messages)
}

func TestValidate_Cycle(t *testing.T) {
	c, err := LoadFile("testdata/cycle.yaml")
	require.NoError(t, err)

	diags := Validate(c)
	assert.Contains(t, diags.Codes(), "trait_cycle")

	_, err = c.TraitOrder()
	require.ErrorIs(t, err, ErrTraitCycle)

	_, err = c.Chain("A")
	require.ErrorIs(t, err, ErrTraitCycle)
}

func TestValidate_Nil(t *testing.T) {
	diags := Validate(nil)
	assert.Equal(t, []string{"catalog_is_nil"}, diags.Codes())
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("package: x\ntraits:\n  - name: A\n    fields:\n      - {name: a, type: bogus}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown field type "bogus"`)

	_, err = Parse([]byte("package: x\nunexpected: 1\n"))
	require.Error(t, err)
}

func TestMarshal_RoundTrip(t *testing.T) {
	c := loadMappingCatalog(t)

	data, err := Marshal(c)
	require.NoError(t, err)

	again, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, c, again)
}
