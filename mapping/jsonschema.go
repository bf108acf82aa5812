package mapping

import (
	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"osmapping/internal/codec"
)

const (
	propertyDef    = "Property"
	typeMappingDef = "TypeMapping"
	defsPrefix     = "#/$defs/"
)

// JSONSchema describes the JSON form of a Property: one definition per
// variant, combined with oneOf. Nested "properties" and "fields" refer back
// to the union.
func JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Version:     jsonschema.Version,
		Ref:         defsPrefix + propertyDef,
		Definitions: definitions(),
	}
}

// TypeMappingSchema describes the JSON form of a TypeMapping.
func TypeMappingSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Version:     jsonschema.Version,
		Ref:         defsPrefix + typeMappingDef,
		Definitions: definitions(),
	}
}

func definitions() jsonschema.Definitions {
	defs := jsonschema.Definitions{}

	union := &jsonschema.Schema{
		Title:       propertyDef,
		Description: "A field mapping, selected by its \"type\" key.",
	}

	for _, k := range Kinds() {
		name := k.TypeName()
		defs[name] = variantSchema(k)
		union.OneOf = append(union.OneOf, &jsonschema.Schema{Ref: defsPrefix + name})
	}

	defs[propertyDef] = union
	defs[typeMappingDef] = typeMappingSchema()

	return defs
}

func variantSchema(k Kind) *jsonschema.Schema {
	props := orderedmap.New[string, *jsonschema.Schema]()
	props.Set("type", &jsonschema.Schema{Type: "string", Const: k.String()})

	s := &jsonschema.Schema{
		Type:        "object",
		Title:       k.TypeName(),
		Description: "The \"" + k.String() + "\" field mapping.",
		Properties:  props,
	}

	// "type" may be left out for object mappings.
	if k != KindObject {
		s.Required = append(s.Required, "type")
	}

	for _, f := range variantFields(k) {
		props.Set(f.Name, fieldSchema(f.Type))

		if f.Required {
			s.Required = append(s.Required, f.Name)
		}
	}

	return s
}

func fieldSchema(t codec.FieldType) *jsonschema.Schema {
	switch t {
	case codec.FieldString, codec.FieldBool, codec.FieldInteger, codec.FieldNumber, codec.FieldArray, codec.FieldObject:
		return &jsonschema.Schema{Type: t.String()}
	case codec.FieldProperty:
		return &jsonschema.Schema{Ref: defsPrefix + propertyDef}
	case codec.FieldPropertyMap:
		return propertyMapSchema()
	default:
		return &jsonschema.Schema{}
	}
}

func propertyMapSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:                 "object",
		AdditionalProperties: &jsonschema.Schema{Ref: defsPrefix + propertyDef},
	}
}

func typeMappingSchema() *jsonschema.Schema {
	props := orderedmap.New[string, *jsonschema.Schema]()
	props.Set("dynamic", &jsonschema.Schema{
		Enum: []any{true, false, string(DynamicTrue), string(DynamicFalse), string(DynamicStrict), string(DynamicRuntime)},
	})
	props.Set("date_detection", &jsonschema.Schema{Type: "boolean"})
	props.Set("numeric_detection", &jsonschema.Schema{Type: "boolean"})
	props.Set("dynamic_date_formats", &jsonschema.Schema{Type: "array", Items: &jsonschema.Schema{Type: "string"}})
	props.Set("dynamic_templates", &jsonschema.Schema{
		Type: "array",
		Items: &jsonschema.Schema{
			Type:                 "object",
			Description:          "A single template, keyed by its name.",
			AdditionalProperties: dynamicTemplateSchema(),
		},
	})
	props.Set("_meta", &jsonschema.Schema{Type: "object"})
	props.Set("_routing", reflectValue(&RoutingField{}))
	props.Set("_source", reflectValue(&SourceField{}))
	props.Set("enabled", &jsonschema.Schema{Type: "boolean"})
	props.Set("properties", propertyMapSchema())

	return &jsonschema.Schema{
		Type:        "object",
		Title:       typeMappingDef,
		Description: "The root mapping object of an index.",
		Properties:  props,
	}
}

func dynamicTemplateSchema() *jsonschema.Schema {
	props := orderedmap.New[string, *jsonschema.Schema]()
	for _, name := range []string{"match", "unmatch", "path_match", "path_unmatch", "match_mapping_type"} {
		props.Set(name, &jsonschema.Schema{Type: "string"})
	}

	props.Set("match_pattern", &jsonschema.Schema{Enum: []any{string(MatchTypeSimple), string(MatchTypeRegex)}})
	props.Set("mapping", &jsonschema.Schema{Ref: defsPrefix + propertyDef})

	return &jsonschema.Schema{
		Type:       "object",
		Properties: props,
		Required:   []string{"mapping"},
	}
}

// reflectValue derives an inline schema from the json tags of v.
func reflectValue(v any) *jsonschema.Schema {
	r := jsonschema.Reflector{DoNotReference: true, ExpandedStruct: true}

	s := r.Reflect(v)
	s.Version = ""
	s.ID = ""

	return s
}
