package gen

import (
	"fmt"

	"osmapping/internal/catalog"
)

// fileData is the input of the properties template.
type fileData struct {
	PackageName      string
	Generator        string
	Imports          []string
	GenerateComments bool
	Traits           []traitData
	Variants         []variantData
}

type traitData struct {
	Name     string // PropertyBase
	Storage  string // propertyBase
	Doc      string
	Parent   *traitData
	Chain    []string
	Fields   []fieldData
	Comments bool
}

// Describe is the trait description used in comments.
func (t traitData) Describe() string {
	if t.Doc != "" {
		return t.Doc
	}

	return "the " + t.Name + " attributes"
}

// Builder is the generic builder level of the trait.
func (t traitData) Builder() string { return t.Name + "Builder" }

// Target is the constraint satisfied by builders that embed the level.
func (t traitData) Target() string { return t.Storage + "Target" }

// Accessor returns the level's storage from a builder.
func (t traitData) Accessor() string { return t.Storage + "Fields" }

// Setup registers the level's decoders.
func (t traitData) Setup() string { return "setup" + t.Name + "Deserializer" }

type variantData struct {
	Kind         string // Keyword
	Tag          string
	Type         string // KeywordProperty
	Doc          string
	Trait        traitData
	Fields       []fieldData
	Required     []fieldData
	Deserializer string // keywordPropertyDeserializer
	Comments     bool
}

// KindConst is the name of the variant's Kind constant.
func (v variantData) KindConst() string { return "Kind" + v.Kind }

// Builder is the variant's builder type.
func (v variantData) Builder() string { return v.Type + "Builder" }

// DecodeFunc decodes the variant from a split JSON object.
func (v variantData) DecodeFunc() string { return "decode" + v.Type }

type fieldData struct {
	Wire      string // ignore_above
	GoName    string // IgnoreAbove
	Storage   string // ignoreAbove
	Elem      string // int, []string, map[string]Property, ...
	Required  bool
	Adder     string
	Doc       string
	decoder   string
	fieldType string
	shape     shape
}

// shape decides storage, getter, setter and writer of a field.
type shape int

const (
	shapeScalar shape = iota
	shapeSlice
	shapeMap
	shapeStringsMap
	shapeAny
)

// StoreType is the Go type of the storage field.
func (f fieldData) StoreType() string {
	if f.shape == shapeScalar {
		return "*" + f.Elem
	}

	return f.Elem
}

// Optional reports whether the getter also returns a presence flag.
func (f fieldData) Optional() bool { return f.shape == shapeScalar && !f.Required }

// GetterType is the result type of the getter.
func (f fieldData) GetterType() string {
	if f.Optional() {
		return "(" + f.Elem + ", bool)"
	}

	return f.Elem
}

// GetExpr reads the field from recv.
func (f fieldData) GetExpr(recv string) string {
	ref := recv + "." + f.Storage

	switch f.shape {
	case shapeScalar:
		if f.Required {
			return "valueOf(" + ref + ")"
		}

		return "deref(" + ref + ")"
	case shapeSlice:
		return "slices.Clone(" + ref + ")"
	case shapeMap:
		return "maps.Clone(" + ref + ")"
	case shapeStringsMap:
		return "cloneStringsMap(" + ref + ")"
	default:
		return ref
	}
}

// GetterDoc completes the getter comment after its name.
func (f fieldData) GetterDoc() string {
	switch {
	case f.Doc != "":
		return f.Doc
	case f.Optional():
		return "returns the \"" + f.Wire + "\" value and whether it is set."
	case f.shape == shapeScalar:
		return "returns the \"" + f.Wire + "\" value."
	case f.shape == shapeAny:
		return "returns the \"" + f.Wire + "\" value, or nil when unset."
	default:
		return "returns a copy of \"" + f.Wire + "\", or nil when unset."
	}
}

// SetExpr is the value stored by the setter for parameter v.
func (f fieldData) SetExpr() string {
	switch f.shape {
	case shapeScalar:
		return "&v"
	case shapeSlice:
		return "slices.Clone(v)"
	case shapeMap:
		return "maps.Clone(v)"
	case shapeStringsMap:
		return "cloneStringsMap(v)"
	default:
		return "v"
	}
}

// Writer is the codec helper that serializes the field.
func (f fieldData) Writer() string {
	switch f.shape {
	case shapeScalar:
		return "codec.WriteOpt"
	case shapeSlice:
		return "codec.WriteSlice"
	case shapeMap, shapeStringsMap:
		return "codec.WriteMap"
	default:
		return "codec.WriteAny"
	}
}

// Store is the codec helper that stores a decoded value.
func (f fieldData) Store() string {
	if f.shape == shapeScalar {
		return "codec.Set"
	}

	return "codec.Assign"
}

// Decoder is the decoder function expression.
func (f fieldData) Decoder() string { return f.decoder }

// FieldType is the codec.FieldType constant of the field.
func (f fieldData) FieldType() string { return "codec." + f.fieldType }

// Register is the ObjectDeserializer method that registers the field.
func (f fieldData) Register() string {
	if f.Required {
		return "AddRequired"
	}

	return "Add"
}

// Missing is the condition under which a required field is unset.
func (f fieldData) Missing(recv string) string {
	return recv + "." + f.Storage + " == nil"
}

// buildField resolves the Go side of a catalog field.
func buildField(f catalog.Field) (fieldData, error) {
	fd := fieldData{
		Wire:     f.Name,
		GoName:   f.GoName,
		Storage:  catalog.LowerName(f.GoName),
		Required: f.Required,
		Adder:    f.Adder,
		Doc:      f.Doc,
	}

	if fd.GoName == "" {
		fd.GoName = catalog.GoName(f.Name)
		fd.Storage = catalog.LowerName(fd.GoName)
	}

	switch t := f.Type; t.Kind {
	case catalog.TypeString:
		fd.Elem, fd.decoder, fd.fieldType = "string", "codec.String", "FieldString"
	case catalog.TypeBool:
		fd.Elem, fd.decoder, fd.fieldType = "bool", "codec.Bool", "FieldBool"
	case catalog.TypeInt, catalog.TypeInt8, catalog.TypeInt16, catalog.TypeInt64:
		fd.Elem = t.String()
		fd.decoder, fd.fieldType = "codec.Int["+fd.Elem+"]", "FieldInteger"
	case catalog.TypeUint64:
		fd.Elem, fd.decoder, fd.fieldType = "uint64", "codec.Uint[uint64]", "FieldInteger"
	case catalog.TypeFloat32, catalog.TypeFloat64:
		fd.Elem = t.String()
		fd.decoder, fd.fieldType = "codec.Float["+fd.Elem+"]", "FieldNumber"
	case catalog.TypeStrings:
		fd.Elem, fd.decoder, fd.fieldType, fd.shape = "[]string", "codec.Strings", "FieldArray", shapeSlice
	case catalog.TypeStringMap:
		fd.Elem, fd.decoder, fd.fieldType, fd.shape = "map[string]string", "codec.StringMap", "FieldObject", shapeMap
	case catalog.TypeStringsMap:
		fd.Elem, fd.decoder, fd.fieldType, fd.shape = "map[string][]string", "codec.StringsMap", "FieldObject", shapeStringsMap
	case catalog.TypeAnyMap:
		fd.Elem, fd.decoder, fd.fieldType, fd.shape = "map[string]any", "codec.AnyMap", "FieldObject", shapeMap
	case catalog.TypeAny:
		fd.Elem, fd.decoder, fd.fieldType, fd.shape = "any", "codec.Any", "FieldAny", shapeAny
	case catalog.TypePropertyMap:
		fd.Elem, fd.decoder, fd.fieldType, fd.shape = "map[string]Property", "decodePropertyMap", "FieldPropertyMap", shapeMap
	case catalog.TypeEnum:
		fd.Elem, fd.decoder, fd.fieldType = t.Elem, "codec.Enum["+t.Elem+"]", "FieldString"
	case catalog.TypeValue:
		fd.Elem, fd.decoder, fd.fieldType = t.Elem, "decode"+t.Elem, "FieldObject"
	case catalog.TypeList:
		fd.Elem, fd.fieldType, fd.shape = "[]"+t.Elem, "FieldArray", shapeSlice
		fd.decoder = "codec.List(decode" + t.Elem + ")"
	default:
		return fieldData{}, fmt.Errorf("field %q: unsupported type %s", f.Name, t)
	}

	if f.Decoder != "" {
		fd.decoder = f.Decoder
	}

	return fd, nil
}

func buildFields(fields []catalog.Field) ([]fieldData, error) {
	out := make([]fieldData, 0, len(fields))

	for _, f := range fields {
		fd, err := buildField(f)
		if err != nil {
			return nil, err
		}

		out = append(out, fd)
	}

	return out, nil
}

// buildFileData resolves the catalog into template input.
func buildFileData(c *catalog.Catalog, cfg GeneratorConfig) (*fileData, error) {
	ordered, err := c.TraitOrder()
	if err != nil {
		return nil, err
	}

	data := &fileData{
		PackageName:      c.Package,
		Generator:        cfg.GeneratorName,
		GenerateComments: cfg.GenerateComments,
	}

	if cfg.PackageName != "" {
		data.PackageName = cfg.PackageName
	}

	traits := make(map[string]*traitData, len(ordered))

	for _, t := range ordered {
		fields, err := buildFields(t.Fields)
		if err != nil {
			return nil, fmt.Errorf("trait %s: %w", t.Name, err)
		}

		td := &traitData{
			Name:     t.Name,
			Storage:  catalog.LowerName(t.Name),
			Doc:      t.Doc,
			Fields:   fields,
			Comments: cfg.GenerateComments,
		}

		if t.Parent != "" {
			parent, ok := traits[t.Parent]
			if !ok {
				return nil, fmt.Errorf("trait %s: unknown parent %q", t.Name, t.Parent)
			}

			td.Parent = parent
			td.Chain = append(td.Chain, parent.Chain...)
		}

		td.Chain = append(td.Chain, t.Name)
		traits[t.Name] = td
		data.Traits = append(data.Traits, *td)
	}

	for _, v := range c.Variants {
		trait, ok := traits[v.Trait]
		if !ok {
			return nil, fmt.Errorf("variant %s: unknown trait %q", v.Tag, v.Trait)
		}

		fields, err := buildFields(v.Fields)
		if err != nil {
			return nil, fmt.Errorf("variant %s: %w", v.Tag, err)
		}

		vd := variantData{
			Kind:         v.Kind,
			Tag:          v.Tag,
			Type:         v.Type,
			Doc:          v.Doc,
			Trait:        *trait,
			Fields:       fields,
			Deserializer: catalog.LowerName(v.Type) + "Deserializer",
			Comments:     cfg.GenerateComments,
		}

		if vd.Type == "" {
			vd.Type = v.Kind + "Property"
			vd.Deserializer = catalog.LowerName(vd.Type) + "Deserializer"
		}

		for _, f := range fields {
			if f.Required {
				vd.Required = append(vd.Required, f)
			}
		}

		data.Variants = append(data.Variants, vd)
	}

	data.Imports = collectImports(data, cfg)

	return data, nil
}

// collectImports lists the packages the generated file refers to: standard
// library first, then module packages, each group sorted.
func collectImports(data *fileData, cfg GeneratorConfig) []string {
	var usesMaps, usesSlices, usesErrors bool

	scan := func(fields []fieldData) {
		for _, f := range fields {
			switch f.shape {
			case shapeMap:
				usesMaps = true
			case shapeSlice:
				usesSlices = true
			}
		}
	}

	for _, t := range data.Traits {
		scan(t.Fields)
	}

	for _, v := range data.Variants {
		scan(v.Fields)

		if len(v.Required) > 0 {
			usesErrors = true
		}
	}

	imports := []string{"encoding/json"}
	if usesErrors {
		imports = append(imports, "errors")
	}

	if usesMaps {
		imports = append(imports, "maps")
	}

	if usesSlices {
		imports = append(imports, "slices")
	}

	imports = append(imports, "sync", "", cfg.CodecImport, cfg.OptionsImport)

	return imports
}
