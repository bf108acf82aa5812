package mapping

import (
	"encoding/json"

	"osmapping/internal/codec"
	"osmapping/options"
)

// PropertyVariant is implemented by the concrete field mapping types
// (KeywordProperty, TextProperty, ...). The set is closed: only types of this
// package implement it.
type PropertyVariant interface {
	// PropertyKind returns the kind tag of the variant.
	PropertyKind() Kind

	serializeInternal(w *codec.ObjectWriter)
	baseFields() *propertyBase
	isNil() bool
}

// Property is a field mapping: exactly one variant together with its kind.
// Properties are immutable and safe to share.
type Property struct {
	kind    Kind
	variant PropertyVariant
}

type variantDecodeFunc func(obj map[string]json.RawMessage, flags options.DecodeEnum) (PropertyVariant, error)

// NewProperty wraps a built variant. The kind is taken from the variant.
// A nil variant, typed or not, yields the zero Property.
func NewProperty(v PropertyVariant) Property {
	if v == nil || v.isNil() {
		return Property{}
	}

	return Property{kind: v.PropertyKind(), variant: v}
}

// Kind returns the kind of the held variant.
func (p Property) Kind() Kind { return p.kind }

// Variant returns the held variant, or nil for the zero Property.
func (p Property) Variant() PropertyVariant { return p.variant }

// IsZero reports whether p holds no variant.
func (p Property) IsZero() bool { return p.variant == nil }

// Properties returns the nested "properties" of the held variant.
func (p Property) Properties() map[string]Property {
	if p.variant == nil {
		return nil
	}

	return p.variant.baseFields().Properties()
}

// Fields returns the multi-fields of the held variant.
func (p Property) Fields() map[string]Property {
	if p.variant == nil {
		return nil
	}

	return p.variant.baseFields().Fields()
}

// As returns the variant held by p as T, or a *VariantMismatchError.
func As[T PropertyVariant](p Property) (T, error) {
	if v, ok := p.variant.(T); ok {
		return v, nil
	}

	var zero T

	var expected Kind
	if any(zero) != nil {
		expected = zero.PropertyKind()
	}

	return zero, &VariantMismatchError{Expected: expected, Actual: p.kind}
}

// Must returns v or panics with err. It is meant for literals in tests and
// examples.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}

// MarshalJSON writes the "type" discriminator first, then the inherited
// attributes, then the variant's own attributes. Unset attributes are omitted.
func (p Property) MarshalJSON() ([]byte, error) {
	if p.variant == nil {
		return nil, ErrEmptyProperty
	}

	w := codec.NewObjectWriter()
	p.variant.serializeInternal(w)

	return w.Bytes()
}

// UnmarshalJSON decodes p with options.DecodeDefault.
func (p *Property) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeProperty(data, options.DecodeDefault)
	if err != nil {
		return err
	}

	*p = decoded

	return nil
}

// DecodeProperty decodes one field mapping. The variant is chosen by the
// "type" key; an object without one is an "object" mapping.
func DecodeProperty(data []byte, flags options.DecodeEnum) (Property, error) {
	obj, err := codec.ReadObject(data)
	if err != nil {
		return Property{}, err
	}

	return decodeProperty(obj, flags)
}

func decodeProperty(obj map[string]json.RawMessage, flags options.DecodeEnum) (Property, error) {
	kind := KindObject

	if raw, ok := obj["type"]; ok && !codec.IsNull(raw) {
		tag, err := codec.String(codec.NewValue(raw, flags))
		if err != nil {
			return Property{}, codec.WrapField("type", err)
		}

		parsed, ok := ParseKind(tag)
		if !ok {
			return Property{}, &UnknownVariantError{Discriminator: tag, Suggestion: suggestTag(tag)}
		}

		kind = parsed
	}

	v, err := lookupVariantDecoder(kind)(obj, flags)
	if err != nil {
		return Property{}, err
	}

	return Property{kind: kind, variant: v}, nil
}

func decodePropertyValue(v *codec.Value) (Property, error) {
	obj, err := codec.ReadObject(v.Raw())
	if err != nil {
		return Property{}, err
	}

	return decodeProperty(obj, v.Flags())
}

// decodePropertyMap decodes a JSON object of named properties.
func decodePropertyMap(v *codec.Value) (map[string]Property, error) {
	return codec.Map(decodePropertyValue)(v)
}

func (b *propertyBase) baseFields() *propertyBase { return b }
