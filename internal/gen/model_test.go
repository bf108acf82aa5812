package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osmapping/internal/catalog"
)

func TestBuildField(t *testing.T) {
	tests := []struct {
		field      catalog.Field
		storeType  string
		getterType string
		decoder    string
		writer     string
	}{
		{
			field:      catalog.Field{Name: "ignore_above", Type: catalog.TypeRef{Kind: catalog.TypeInt}},
			storeType:  "*int",
			getterType: "(int, bool)",
			decoder:    "codec.Int[int]",
			writer:     "codec.WriteOpt",
		},
		{
			field:      catalog.Field{Name: "dims", Type: catalog.TypeRef{Kind: catalog.TypeInt}, Required: true},
			storeType:  "*int",
			getterType: "int",
			decoder:    "codec.Int[int]",
			writer:     "codec.WriteOpt",
		},
		{
			field:      catalog.Field{Name: "relations", Type: catalog.TypeRef{Kind: catalog.TypeStringsMap}},
			storeType:  "map[string][]string",
			getterType: "map[string][]string",
			decoder:    "codec.StringsMap",
			writer:     "codec.WriteMap",
		},
		{
			field:      catalog.Field{Name: "value", Type: catalog.TypeRef{Kind: catalog.TypeAny}},
			storeType:  "any",
			getterType: "any",
			decoder:    "codec.Any",
			writer:     "codec.WriteAny",
		},
		{
			field:      catalog.Field{Name: "script", Type: catalog.TypeRef{Kind: catalog.TypeValue, Elem: "Script"}},
			storeType:  "*Script",
			getterType: "(Script, bool)",
			decoder:    "decodeScript",
			writer:     "codec.WriteOpt",
		},
		{
			field: catalog.Field{
				Name:    "dynamic",
				Type:    catalog.TypeRef{Kind: catalog.TypeEnum, Elem: "DynamicMapping"},
				Decoder: "decodeDynamicMapping",
			},
			storeType:  "*DynamicMapping",
			getterType: "(DynamicMapping, bool)",
			decoder:    "decodeDynamicMapping",
			writer:     "codec.WriteOpt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.field.Name, func(t *testing.T) {
			fd, err := buildField(tt.field)
			require.NoError(t, err)

			assert.Equal(t, tt.storeType, fd.StoreType())
			assert.Equal(t, tt.getterType, fd.GetterType())
			assert.Equal(t, tt.decoder, fd.Decoder())
			assert.Equal(t, tt.writer, fd.Writer())
			assert.Equal(t, catalog.GoName(tt.field.Name), fd.GoName)
		})
	}

	_, err := buildField(catalog.Field{Name: "broken"})
	assert.Error(t, err)
}

func TestFieldData_Docs(t *testing.T) {
	opt, err := buildField(catalog.Field{Name: "store", Type: catalog.TypeRef{Kind: catalog.TypeBool}})
	require.NoError(t, err)
	assert.Equal(t, `returns the "store" value and whether it is set.`, opt.GetterDoc())
	assert.Equal(t, "Add", opt.Register())
	assert.Equal(t, "codec.Set", opt.Store())

	list, err := buildField(catalog.Field{Name: "copy_to", Type: catalog.TypeRef{Kind: catalog.TypeStrings}})
	require.NoError(t, err)
	assert.Equal(t, `returns a copy of "copy_to", or nil when unset.`, list.GetterDoc())
	assert.Equal(t, "codec.Assign", list.Store())
	assert.Equal(t, "slices.Clone(v)", list.SetExpr())
}
