package catalog

// Catalog is the root of a variant catalog file.
type Catalog struct {
	// Version of the catalog format.
	Version string `yaml:"version,omitempty"`

	// Package is the Go package the generated code belongs to.
	Package string `yaml:"package"`

	// Traits are the attribute levels shared by variants.
	Traits []Trait `yaml:"traits"`

	// Variants are the concrete union members, in kind order.
	Variants []Variant `yaml:"variants"`
}

// Trait is one level of the attribute chain.
type Trait struct {
	// Name is the Go name of the level (e.g. "DocValuesPropertyBase").
	Name string `yaml:"name"`

	// Parent names the level this one extends. Empty for the root.
	Parent string `yaml:"parent,omitempty"`

	// Doc is a one-line description used in generated comments.
	Doc string `yaml:"doc,omitempty"`

	// Fields are the attributes this level contributes.
	Fields []Field `yaml:"fields,omitempty"`
}

// Variant is one concrete member of the union.
type Variant struct {
	// Kind is the Go name of the kind constant, without the "Kind" prefix.
	Kind string `yaml:"kind"`

	// Tag is the wire discriminator.
	Tag string `yaml:"tag"`

	// Type is the Go type name. Defaults to Kind + "Property".
	Type string `yaml:"type,omitempty"`

	// Trait is the level the variant attaches to.
	Trait string `yaml:"trait"`

	// Doc overrides the generated type comment.
	Doc string `yaml:"doc,omitempty"`

	// Fields are the variant's own attributes.
	Fields []Field `yaml:"fields,omitempty"`
}

// Field is a single named attribute.
type Field struct {
	// Name is the JSON key.
	Name string `yaml:"name"`

	// GoName is the exported Go name. Derived from Name when empty.
	GoName string `yaml:"go,omitempty"`

	// Type is the value type of the field.
	Type TypeRef `yaml:"type"`

	// Required marks fields a variant cannot be built without.
	Required bool `yaml:"required,omitempty"`

	// Adder names a builder method that inserts one entry into a
	// property map field.
	Adder string `yaml:"adder,omitempty"`

	// Decoder overrides the decoder function for the field.
	Decoder string `yaml:"decoder,omitempty"`

	// Doc is an optional description used in generated comments.
	Doc string `yaml:"doc,omitempty"`
}

// Trait returns the trait with the given name.
func (c *Catalog) Trait(name string) (*Trait, bool) {
	for i := range c.Traits {
		if c.Traits[i].Name == name {
			return &c.Traits[i], true
		}
	}

	return nil, false
}

// Variant returns the variant with the given tag.
func (c *Catalog) Variant(tag string) (*Variant, bool) {
	for i := range c.Variants {
		if c.Variants[i].Tag == tag {
			return &c.Variants[i], true
		}
	}

	return nil, false
}

// RequiredFields returns the required fields of v, in declaration order.
func (v *Variant) RequiredFields() []Field {
	var out []Field

	for _, f := range v.Fields {
		if f.Required {
			out = append(out, f)
		}
	}

	return out
}
