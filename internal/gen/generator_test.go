package gen

import (
	"errors"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osmapping/internal/catalog"
)

func loadCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	c, err := catalog.LoadFile("../../mapping/catalog.yaml")
	require.NoError(t, err)

	return c
}

func generate(t *testing.T, cfg GeneratorConfig) string {
	t.Helper()

	cfg.OutputDir = t.TempDir()

	file, err := NewGenerator(cfg).Generate(loadCatalog(t))
	require.NoError(t, err)
	assert.Equal(t, "properties_gen.go", file.Filename)

	return string(file.Content)
}

// typeCheck checks content as properties_gen.go of the mapping package,
// together with the package's hand-written sources.
func typeCheck(t *testing.T, content string) error {
	t.Helper()

	dir, err := filepath.Abs("../../mapping")
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	// files pulling in third-party packages are not needed by the generated code
	skip := map[string]bool{"properties_gen.go": true, "jsonschema.go": true, "yaml.go": true}

	fset := token.NewFileSet()

	var files []*ast.File

	for _, e := range entries {
		name := e.Name()
		if !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") || skip[name] {
			continue
		}

		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, 0)
		require.NoError(t, err)

		files = append(files, f)
	}

	f, err := parser.ParseFile(fset, filepath.Join(dir, "properties_gen.go"), content, 0)
	require.NoError(t, err)

	files = append(files, f)

	var errs []error

	conf := types.Config{
		Importer: importer.ForCompiler(fset, "source", nil),
		Error:    func(err error) { errs = append(errs, err) },
	}

	_, _ = conf.Check("osmapping/mapping", fset, files, nil)

	return errors.Join(errs...)
}

func TestGenerate_MappingCatalog(t *testing.T) {
	content := generate(t, DefaultGeneratorConfig())

	assert.True(t, strings.HasPrefix(content, "// Code generated by propgen. DO NOT EDIT."))

	f, err := parser.ParseFile(token.NewFileSet(), "properties_gen.go", content, parser.ParseComments)
	require.NoError(t, err)
	assert.Equal(t, "mapping", f.Name.Name)

	var imports []string
	for _, imp := range f.Imports {
		imports = append(imports, strings.Trim(imp.Path.Value, `"`))
	}

	assert.Equal(t, []string{
		"encoding/json", "errors", "maps", "slices", "sync",
		"osmapping/internal/codec", "osmapping/options",
	}, imports)

	c := loadCatalog(t)
	for _, v := range c.Variants {
		assert.Contains(t, content, "type "+v.Type+" struct {", v.Tag)
		assert.Contains(t, content, "func New"+v.Type+"Builder() *"+v.Type+"Builder {", v.Tag)
		assert.Contains(t, content, "case Kind"+v.Kind+":", v.Tag)
		assert.Contains(t, content, "func (p Property) Is"+v.Kind+"() bool {", v.Tag)
	}

	assert.NoError(t, typeCheck(t, content))
}

func TestGenerate_TypeCheckReportsCycles(t *testing.T) {
	content := generate(t, DefaultGeneratorConfig())

	// a static initializer makes dispatch depend on the deserializers that
	// dispatch nested properties through it
	cyclic := strings.Replace(content,
		"var lookupVariantDecoder func(Kind) variantDecodeFunc\n\nfunc init() {\n\tlookupVariantDecoder = variantDecoder\n}",
		"var lookupVariantDecoder = variantDecoder", 1)
	require.NotEqual(t, content, cyclic)

	err := typeCheck(t, cyclic)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "initialization cycle")
}

func TestGenerate_Shapes(t *testing.T) {
	content := generate(t, DefaultGeneratorConfig())

	for _, want := range []string{
		// trait storage and chain
		"type corePropertyBase struct {\n\tpropertyBase\n",
		"func (b *propertyBase) IgnoreAbove() (int, bool) {\n\treturn deref(b.ignoreAbove)\n}",
		"func (b *corePropertyBase) CopyTo() []string {\n\treturn slices.Clone(b.copyTo)\n}",
		"b.docValuesPropertyBase.serializeFields(w)",
		// builders
		"type StandardNumberPropertyBaseBuilder[B any] struct {\n\tNumberPropertyBaseBuilder[B]\n",
		"b.NumberPropertyBaseBuilder.bind(self, &fields.numberPropertyBase)",
		"func (b *PropertyBaseBuilder[B]) Property(name string, p Property) B {",
		"func (b *PropertyBaseBuilder[B]) Field(name string, p Property) B {",
		// decoders
		`d.Add("dynamic", codec.FieldString, func(b B, v *codec.Value) error {` + "\n\t\treturn codec.Set(&b.propertyBaseFields().dynamic, v, decodeDynamicMapping)",
		"return codec.Set(&b.v.nullValue, v, codec.Uint[uint64])",
		"return codec.Assign(&b.v.contexts, v, codec.List(decodeSuggestContext))",
		"return codec.Set(&b.v.indexOptions, v, codec.Enum[IndexOptions])",
		`d.AddRequired("dims", codec.FieldInteger`,
		// required fields
		`missing = append(missing, &MissingRequiredFieldError{Type: "DenseVectorProperty", Field: "dims"})`,
		`missing = append(missing, &MissingRequiredFieldError{Type: "AggregateMetricDoubleProperty", Field: "metrics"})`,
		"func (p *DenseVectorProperty) Dims() int {\n\treturn valueOf(p.dims)\n}",
		// dispatch
		`return []string{"PropertyBase", "CorePropertyBase", "DocValuesPropertyBase", "RangePropertyBase"}`,
		"case KindIPRange:\n\t\treturn decodeIPRangeProperty",
		"var ipRangePropertyDeserializer = sync.OnceValue(",
	} {
		assert.Contains(t, content, want)
	}

	// only variants with required fields check them
	keywordBuild := content[strings.Index(content, "func (b *KeywordPropertyBuilder) Build()"):]
	keywordBuild = keywordBuild[:strings.Index(keywordBuild, "\n}\n")]
	assert.NotContains(t, keywordBuild, "missing")
}

func TestGenerate_NoComments(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.GenerateComments = false
	cfg.PackageName = "other"

	content := generate(t, cfg)
	assert.Contains(t, content, "package other\n")
	assert.NotContains(t, content, "// PropertyKind returns")
	assert.NotContains(t, content, "// KeywordPropertyBuilder builds")
}

func TestGenerate_Deterministic(t *testing.T) {
	a := generate(t, DefaultGeneratorConfig())
	b := generate(t, DefaultGeneratorConfig())
	assert.Equal(t, a, b)
}

func TestGenerate_InvalidCatalog(t *testing.T) {
	c := loadCatalog(t)
	c.Variants[1].Tag = c.Variants[0].Tag

	_, err := NewGenerator(DefaultGeneratorConfig()).Generate(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate_tag")
}

func TestGenerate_SmallCatalog(t *testing.T) {
	c := &catalog.Catalog{
		Package: "tiny",
		Traits: []catalog.Trait{{
			Name:   "PropertyBase",
			Fields: []catalog.Field{{Name: "name", GoName: "Name", Type: catalog.TypeRef{Kind: catalog.TypeString}}},
		}},
		Variants: []catalog.Variant{{Kind: "Binary", Tag: "binary", Type: "BinaryProperty", Trait: "PropertyBase"}},
	}

	cfg := DefaultGeneratorConfig()
	cfg.OutputDir = t.TempDir()

	file, err := NewGenerator(cfg).Generate(c)
	require.NoError(t, err)

	f, err := parser.ParseFile(token.NewFileSet(), file.Filename, file.Content, 0)
	require.NoError(t, err)

	var imports []string
	for _, imp := range f.Imports {
		imports = append(imports, strings.Trim(imp.Path.Value, `"`))
	}

	assert.Equal(t, []string{"encoding/json", "sync", "osmapping/internal/codec", "osmapping/options"}, imports)

	var funcs int

	ast.Inspect(f, func(n ast.Node) bool {
		if _, ok := n.(*ast.FuncDecl); ok {
			funcs++
		}

		return true
	})
	assert.Positive(t, funcs)
	assert.Contains(t, string(file.Content), "type BinaryProperty struct {\n\tpropertyBase\n}")
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	err := WriteFiles([]GeneratedFile{{Filename: "a_gen.go", Content: []byte("package a\n")}}, dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "a_gen.go"))
	require.NoError(t, err)
	assert.Equal(t, "package a\n", string(data))
}

func TestCheckFiles(t *testing.T) {
	dir := t.TempDir()
	files := []GeneratedFile{{Filename: "a_gen.go", Content: []byte("package a\n\nvar x = 1\n")}}

	var stale *StaleFileError

	err := CheckFiles(files, dir)
	require.ErrorAs(t, err, &stale)
	assert.Equal(t, 0, stale.Line)

	require.NoError(t, WriteFiles(files, dir))
	require.NoError(t, CheckFiles(files, dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a_gen.go"), []byte("package a\n\nvar x = 2\n"), 0o600))

	err = CheckFiles(files, dir)
	require.ErrorAs(t, err, &stale)
	assert.Equal(t, 3, stale.Line)
	assert.Equal(t, filepath.Join(dir, "a_gen.go"), stale.Path)
	assert.Contains(t, err.Error(), "out of date at line 3")
}

func TestFirstDiffLine(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"x\ny\n", "x\ny\n", 0},
		{"x\ny\n", "x\nz\n", 2},
		{"x\n", "x\ny\n", 2},
		{"", "x", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, firstDiffLine([]byte(tt.a), []byte(tt.b)), "%q vs %q", tt.a, tt.b)
	}
}

func TestWriteDebugUnformatted(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, writeDebugUnformatted(dir, "properties_gen.go", []byte("package x {")))
	assert.FileExists(t, filepath.Join(dir, "properties_gen.unformatted.go"))

	assert.NoError(t, writeDebugUnformatted("", "x.go", nil))
}
