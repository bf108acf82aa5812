package gen

import "text/template"

var propertiesTemplate = template.Must(template.New("properties").Parse(`// Code generated by {{.Generator}}. DO NOT EDIT.

package {{.PackageName}}

import (
{{range .Imports}}{{if .}}	"{{.}}"
{{else}}
{{end}}{{end}})
{{range .Traits}}{{template "trait" .}}{{end}}
{{- range .Variants}}{{template "variant" .}}{{end}}
{{template "dispatch" .}}
`))

var _ = template.Must(propertiesTemplate.New("trait").Parse(`
{{if .Comments}}// {{.Storage}} holds {{.Describe}}.
{{end}}type {{.Storage}} struct {
{{- if .Parent}}
	{{.Parent.Storage}}
{{end}}
{{range .Fields}}	{{.Storage}} {{.StoreType}}
{{end}}}
{{range .Fields}}
{{if $.Comments}}// {{.GoName}} {{.GetterDoc}}
{{end}}func (b *{{$.Storage}}) {{.GoName}}() {{.GetterType}} {
	return {{.GetExpr "b"}}
}
{{end}}
func (b *{{.Storage}}) serializeFields(w *codec.ObjectWriter) {
{{- if .Parent}}
	b.{{.Parent.Storage}}.serializeFields(w)
{{- end}}
{{- range .Fields}}
	{{.Writer}}(w, "{{.Wire}}", b.{{.Storage}})
{{- end}}
}

{{if .Comments}}// {{.Builder}} sets {{.Describe}}.
// B is the concrete builder returned by every setter.
{{end}}type {{.Builder}}[B any] struct {
{{- if .Parent}}
	{{.Parent.Builder}}[B]

	fields *{{.Storage}}
{{- else}}
	self   B
	fields *{{.Storage}}
{{- end}}
}

func (b *{{.Builder}}[B]) bind(self B, fields *{{.Storage}}) {
{{- if .Parent}}
	b.{{.Parent.Builder}}.bind(self, &fields.{{.Parent.Storage}})
{{- else}}
	b.self = self
{{- end}}
	b.fields = fields
}

func (b *{{.Builder}}[B]) {{.Accessor}}() *{{.Storage}} {
	return b.fields
}
{{range .Fields}}
{{if $.Comments}}// {{.GoName}} sets "{{.Wire}}".
{{end}}func (b *{{$.Builder}}[B]) {{.GoName}}(v {{.Elem}}) B {
	b.fields.{{.Storage}} = {{.SetExpr}}
	return b.self
}
{{if .Adder}}
{{if $.Comments}}// {{.Adder}} adds one entry to "{{.Wire}}".
{{end}}func (b *{{$.Builder}}[B]) {{.Adder}}(name string, p Property) B {
	b.fields.{{.Storage}} = withEntry(b.fields.{{.Storage}}, name, p)
	return b.self
}
{{end}}{{end}}
type {{.Target}} interface {
{{- if .Parent}}
	{{.Parent.Target}}
{{- end}}
	{{.Accessor}}() *{{.Storage}}
}

func {{.Setup}}[B {{.Target}}](d *codec.ObjectDeserializer[B]) {
{{- if .Parent}}
	{{.Parent.Setup}}(d)
{{- end}}
{{- range .Fields}}
	d.Add("{{.Wire}}", {{.FieldType}}, func(b B, v *codec.Value) error {
		return {{.Store}}(&b.{{$.Accessor}}().{{.Storage}}, v, {{.Decoder}})
	})
{{- end}}
}
`))

var _ = template.Must(propertiesTemplate.New("variant").Parse(`
{{if .Comments}}// {{if .Doc}}{{.Type}} {{.Doc}}{{else}}{{.Type}} is the "{{.Tag}}" field mapping{{end}}.
{{end}}type {{.Type}} struct {
	{{.Trait.Storage}}
{{- if .Fields}}
{{end}}
{{range .Fields}}	{{.Storage}} {{.StoreType}}
{{end}}}

{{if .Comments}}// PropertyKind returns {{.KindConst}}.
{{end}}func (p *{{.Type}}) PropertyKind() Kind {
	return {{.KindConst}}
}
{{range .Fields}}
{{if $.Comments}}// {{.GoName}} {{.GetterDoc}}
{{end}}func (p *{{$.Type}}) {{.GoName}}() {{.GetterType}} {
	return {{.GetExpr "p"}}
}
{{end}}
func (p *{{.Type}}) serializeInternal(w *codec.ObjectWriter) {
	codec.WriteString(w, "type", {{.KindConst}}.String())
	p.{{.Trait.Storage}}.serializeFields(w)
{{- range .Fields}}
	{{.Writer}}(w, "{{.Wire}}", p.{{.Storage}})
{{- end}}
}

func (p *{{.Type}}) isNil() bool { return p == nil }

{{if .Comments}}// {{.Builder}} builds a {{.Type}}. A builder is single use.
{{end}}type {{.Builder}} struct {
	{{.Trait.Builder}}[*{{.Builder}}]

	v    {{.Type}}
	used bool
}

{{if .Comments}}// New{{.Builder}} returns an empty {{.Builder}}.
{{end}}func New{{.Builder}}() *{{.Builder}} {
	b := &{{.Builder}}{}
	b.bind(b, &b.v.{{.Trait.Storage}})

	return b
}
{{range .Fields}}
{{if $.Comments}}// {{.GoName}} sets "{{.Wire}}".
{{end}}func (b *{{$.Builder}}) {{.GoName}}(v {{.Elem}}) *{{$.Builder}} {
	b.v.{{.Storage}} = {{.SetExpr}}
	return b
}
{{end}}
{{if .Comments}}// Build returns the {{.Type}}. A second call fails with ErrSingleUseViolation.
{{end}}func (b *{{.Builder}}) Build() (*{{.Type}}, error) {
	if b.used {
		return nil, ErrSingleUseViolation
	}
{{if .Required}}
	var missing []error
{{- range .Required}}
	if {{.Missing "b.v"}} {
		missing = append(missing, &MissingRequiredFieldError{Type: "{{$.Type}}", Field: "{{.Wire}}"})
	}
{{- end}}

	if len(missing) > 0 {
		return nil, errors.Join(missing...)
	}
{{end}}
	v := b.v
	b.v = {{.Type}}{}
	b.used = true

	return &v, nil
}

{{if .Comments}}// BuildProperty builds the {{.Type}} and wraps it in a Property.
{{end}}func (b *{{.Builder}}) BuildProperty() (Property, error) {
	v, err := b.Build()
	if err != nil {
		return Property{}, err
	}

	return NewProperty(v), nil
}

var {{.Deserializer}} = sync.OnceValue(func() *codec.ObjectDeserializer[*{{.Builder}}] {
	d := codec.NewObjectDeserializer[*{{.Builder}}]("{{.Type}}")
	d.Ignore("type")
	{{.Trait.Setup}}(d)
{{- range .Fields}}
	d.{{.Register}}("{{.Wire}}", {{.FieldType}}, func(b *{{$.Builder}}, v *codec.Value) error {
		return {{.Store}}(&b.v.{{.Storage}}, v, {{.Decoder}})
	})
{{- end}}

	return d
})

func {{.DecodeFunc}}(obj map[string]json.RawMessage, flags options.DecodeEnum) (PropertyVariant, error) {
	b := New{{.Builder}}()
	if err := {{.Deserializer}}().DecodeFields(obj, b, flags); err != nil {
		return nil, err
	}

	v, err := b.Build()
	if err != nil {
		return nil, err
	}

	return v, nil
}
`))

var _ = template.Must(propertiesTemplate.New("dispatch").Parse(`
// variantDecoder returns the decode function of k, or nil when k names no variant.
func variantDecoder(k Kind) variantDecodeFunc {
	switch k {
{{- range .Variants}}
	case {{.KindConst}}:
		return {{.DecodeFunc}}
{{- end}}
	default:
		return nil
	}
}

// lookupVariantDecoder is variantDecoder, assigned in init. Deserializers of
// nested properties dispatch through it.
var lookupVariantDecoder func(Kind) variantDecodeFunc

func init() {
	lookupVariantDecoder = variantDecoder
}

// variantFields returns the fields accepted by the variant of kind k.
func variantFields(k Kind) []codec.Field {
	switch k {
{{- range .Variants}}
	case {{.KindConst}}:
		return {{.Deserializer}}().Fields()
{{- end}}
	default:
		return nil
	}
}

// kindTraitChain returns the trait levels of the variant of kind k, root first.
func kindTraitChain(k Kind) []string {
	switch k {
{{- range .Variants}}
	case {{.KindConst}}:
		return []string{ {{- range $i, $t := .Trait.Chain}}{{if $i}}, {{end}}"{{$t}}"{{end -}} }
{{- end}}
	default:
		return nil
	}
}

// kindTypeName returns the Go type name of the variant of kind k.
func kindTypeName(k Kind) string {
	switch k {
{{- range .Variants}}
	case {{.KindConst}}:
		return "{{.Type}}"
{{- end}}
	default:
		return ""
	}
}
{{range .Variants}}
// Is{{.Kind}} reports whether p holds a {{.Type}}.
func (p Property) Is{{.Kind}}() bool {
	return p.kind == {{.KindConst}}
}

// {{.Kind}} returns the {{.Type}} held by p, or a *VariantMismatchError.
func (p Property) {{.Kind}}() (*{{.Type}}, error) {
	return As[*{{.Type}}](p)
}
{{end}}`))
