package catalog

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// TypeKind classifies a field's value type.
type TypeKind int

const (
	TypeInvalid TypeKind = iota
	TypeString
	TypeBool
	TypeInt
	TypeInt8
	TypeInt16
	TypeInt64
	TypeUint64
	TypeFloat32
	TypeFloat64
	TypeStrings
	TypeStringMap
	TypeStringsMap
	TypeAnyMap
	TypeAny
	TypePropertyMap
	TypeEnum
	TypeValue
	TypeList
)

var scalarNames = map[string]TypeKind{
	"string":       TypeString,
	"bool":         TypeBool,
	"int":          TypeInt,
	"int8":         TypeInt8,
	"int16":        TypeInt16,
	"int64":        TypeInt64,
	"uint64":       TypeUint64,
	"float32":      TypeFloat32,
	"float64":      TypeFloat64,
	"strings":      TypeStrings,
	"string_map":   TypeStringMap,
	"strings_map":  TypeStringsMap,
	"any_map":      TypeAnyMap,
	"any":          TypeAny,
	"property_map": TypePropertyMap,
}

var parameterizedNames = map[string]TypeKind{
	"enum":  TypeEnum,
	"value": TypeValue,
	"list":  TypeList,
}

// TypeRef is a parsed field type such as "int", "enum:IndexOptions" or
// "list:SuggestContext".
type TypeRef struct {
	Kind TypeKind
	// Elem is the named Go type for enum, value and list types.
	Elem string
}

// ParseTypeRef parses the textual form of a field type.
func ParseTypeRef(s string) (TypeRef, error) {
	if k, ok := scalarNames[s]; ok {
		return TypeRef{Kind: k}, nil
	}

	prefix, elem, found := strings.Cut(s, ":")
	if found {
		if k, ok := parameterizedNames[prefix]; ok && elem != "" {
			return TypeRef{Kind: k, Elem: elem}, nil
		}
	}

	return TypeRef{}, fmt.Errorf("unknown field type %q", s)
}

// String returns the textual form accepted by ParseTypeRef.
func (t TypeRef) String() string {
	for name, k := range parameterizedNames {
		if k == t.Kind {
			return name + ":" + t.Elem
		}
	}

	for name, k := range scalarNames {
		if k == t.Kind {
			return name
		}
	}

	return "invalid"
}

// IsCollection reports whether the type is stored as a slice or map, where
// nil means unset.
func (t TypeRef) IsCollection() bool {
	switch t.Kind {
	case TypeStrings, TypeStringMap, TypeStringsMap, TypeAnyMap, TypePropertyMap, TypeList:
		return true
	default:
		return false
	}
}

// IsNested reports whether the type holds nested properties.
func (t TypeRef) IsNested() bool {
	return t.Kind == TypePropertyMap
}

// UnmarshalYAML accepts the textual form of a type.
func (t *TypeRef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: field type must be a string", node.Line)
	}

	ref, err := ParseTypeRef(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*t = ref

	return nil
}

// MarshalYAML writes the textual form of a type.
func (t TypeRef) MarshalYAML() (any, error) {
	return t.String(), nil
}
