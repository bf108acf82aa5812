package codec

import (
	"encoding/json"
	"fmt"

	"osmapping/internal/match"
	"osmapping/options"
)

// FieldType is the JSON shape a field accepts. It is descriptive only:
// decoders do their own shape checks.
type FieldType int

const (
	FieldAny FieldType = iota
	FieldString
	FieldBool
	FieldInteger
	FieldNumber
	FieldArray
	FieldObject
	FieldProperty
	FieldPropertyMap
)

// String returns a short name of the field type.
func (t FieldType) String() string {
	switch t {
	case FieldString:
		return "string"
	case FieldBool:
		return "boolean"
	case FieldInteger:
		return "integer"
	case FieldNumber:
		return "number"
	case FieldArray:
		return "array"
	case FieldObject:
		return "object"
	case FieldProperty:
		return "property"
	case FieldPropertyMap:
		return "property map"
	default:
		return "any"
	}
}

// Field describes one key accepted by an ObjectDeserializer.
type Field struct {
	Name     string
	Type     FieldType
	Required bool
}

// DecodeFunc stores the decoded value v into target.
type DecodeFunc[B any] func(target B, v *Value) error

// ObjectDeserializer routes the members of a JSON object to per-key decoders.
// It is assembled once and is safe for concurrent use afterwards.
type ObjectDeserializer[B any] struct {
	name     string
	fields   []Field
	decoders map[string]DecodeFunc[B]
	ignored  map[string]struct{}
}

// NewObjectDeserializer creates an empty deserializer for the named type.
func NewObjectDeserializer[B any](name string) *ObjectDeserializer[B] {
	return &ObjectDeserializer[B]{
		name:     name,
		decoders: make(map[string]DecodeFunc[B]),
		ignored:  make(map[string]struct{}),
	}
}

// Name returns the type name used in error messages.
func (d *ObjectDeserializer[B]) Name() string { return d.name }

// Add registers an optional field. Registering a name twice is a programming
// error and panics.
func (d *ObjectDeserializer[B]) Add(name string, typ FieldType, fn DecodeFunc[B]) {
	d.add(Field{Name: name, Type: typ}, fn)
}

// AddRequired registers a field the built value cannot do without.
func (d *ObjectDeserializer[B]) AddRequired(name string, typ FieldType, fn DecodeFunc[B]) {
	d.add(Field{Name: name, Type: typ, Required: true}, fn)
}

func (d *ObjectDeserializer[B]) add(f Field, fn DecodeFunc[B]) {
	if _, dup := d.decoders[f.Name]; dup {
		panic(fmt.Sprintf("codec: field %q registered twice for %s", f.Name, d.name))
	}

	if _, dup := d.ignored[f.Name]; dup {
		panic(fmt.Sprintf("codec: field %q is both ignored and decoded for %s", f.Name, d.name))
	}

	d.fields = append(d.fields, f)
	d.decoders[f.Name] = fn
}

// Ignore makes the deserializer skip name even in strict mode.
func (d *ObjectDeserializer[B]) Ignore(name string) {
	if _, dup := d.decoders[name]; dup {
		panic(fmt.Sprintf("codec: field %q is both ignored and decoded for %s", name, d.name))
	}

	d.ignored[name] = struct{}{}
}

// Fields returns the registered fields in registration order.
func (d *ObjectDeserializer[B]) Fields() []Field {
	return append([]Field(nil), d.fields...)
}

// Names returns the registered field names in registration order.
func (d *ObjectDeserializer[B]) Names() []string {
	names := make([]string, len(d.fields))
	for i, f := range d.fields {
		names[i] = f.Name
	}

	return names
}

// Decode reads data as a JSON object and decodes it into target.
func (d *ObjectDeserializer[B]) Decode(data []byte, target B, flags options.DecodeEnum) error {
	obj, err := ReadObject(data)
	if err != nil {
		return err
	}

	return d.DecodeFields(obj, target, flags)
}

// DecodeFields decodes the members of obj into target. Members are visited
// in key order so the first reported error does not depend on map iteration.
// null members are treated as absent. Unknown members are skipped unless
// flags has DecodeUnknownStrict.
func (d *ObjectDeserializer[B]) DecodeFields(obj map[string]json.RawMessage, target B, flags options.DecodeEnum) error {
	for _, key := range SortedKeys(obj) {
		if _, skip := d.ignored[key]; skip {
			continue
		}

		fn, ok := d.decoders[key]
		if !ok {
			if flags.Has(options.DecodeUnknownStrict) {
				suggestion, _ := match.Suggest(key, d.Names())
				return WrapField(key, &UnknownFieldError{Object: d.name, Field: key, Suggestion: suggestion})
			}

			continue
		}

		raw := obj[key]
		if IsNull(raw) {
			continue
		}

		if err := fn(target, NewValue(raw, flags)); err != nil {
			return WrapField(key, err)
		}
	}

	return nil
}
