package mapping

import (
	"encoding/json"
	"sync"

	"osmapping/internal/codec"
	"osmapping/internal/common"
	"osmapping/options"
)

// TypeMapping is the root mapping object of an index: the top level
// properties together with the index-wide mapping settings.
type TypeMapping struct {
	Properties         map[string]Property
	Dynamic            *DynamicMapping
	DateDetection      *bool
	NumericDetection   *bool
	DynamicDateFormats []string
	DynamicTemplates   []NamedDynamicTemplate
	Meta               map[string]any
	Routing            *RoutingField
	Source             *SourceField
	Enabled            *bool
}

// RoutingField is the "_routing" setting.
type RoutingField struct {
	Required bool `json:"required"`
}

// SourceField is the "_source" setting.
type SourceField struct {
	Enabled  *bool    `json:"enabled,omitempty"`
	Includes []string `json:"includes,omitempty"`
	Excludes []string `json:"excludes,omitempty"`
}

// NamedDynamicTemplate is one entry of "dynamic_templates". On the wire each
// entry is an object with the template name as its only key.
type NamedDynamicTemplate struct {
	Name     string
	Template DynamicTemplate
}

// DynamicTemplate maps fields added by dynamic mapping. Mapping is applied
// to every new field that passes the match conditions.
type DynamicTemplate struct {
	Mapping          Property
	Match            string
	Unmatch          string
	PathMatch        string
	PathUnmatch      string
	MatchMappingType string
	MatchPattern     MatchType
}

// DecodeTypeMapping decodes a root mapping object.
func DecodeTypeMapping(data []byte, flags options.DecodeEnum) (*TypeMapping, error) {
	tm := &TypeMapping{}
	if err := typeMappingDeserializer().Decode(data, tm, flags); err != nil {
		return nil, err
	}

	return tm, nil
}

func (tm *TypeMapping) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeTypeMapping(data, options.DecodeDefault)
	if err != nil {
		return err
	}

	*tm = *decoded

	return nil
}

func (tm TypeMapping) MarshalJSON() ([]byte, error) {
	w := codec.NewObjectWriter()
	codec.WriteOpt(w, "dynamic", tm.Dynamic)
	codec.WriteOpt(w, "date_detection", tm.DateDetection)
	codec.WriteOpt(w, "numeric_detection", tm.NumericDetection)
	codec.WriteSlice(w, "dynamic_date_formats", tm.DynamicDateFormats)
	codec.WriteSlice(w, "dynamic_templates", tm.DynamicTemplates)
	codec.WriteMap(w, "_meta", tm.Meta)
	codec.WriteOpt(w, "_routing", tm.Routing)
	codec.WriteOpt(w, "_source", tm.Source)
	codec.WriteOpt(w, "enabled", tm.Enabled)
	codec.WriteMap(w, "properties", tm.Properties)

	return w.Bytes()
}

var typeMappingDeserializer = sync.OnceValue(func() *codec.ObjectDeserializer[*TypeMapping] {
	d := codec.NewObjectDeserializer[*TypeMapping]("TypeMapping")
	d.Add("properties", codec.FieldPropertyMap, func(tm *TypeMapping, v *codec.Value) error {
		return codec.Assign(&tm.Properties, v, decodePropertyMap)
	})
	d.Add("dynamic", codec.FieldString, func(tm *TypeMapping, v *codec.Value) error {
		return codec.Set(&tm.Dynamic, v, decodeDynamicMapping)
	})
	d.Add("date_detection", codec.FieldBool, func(tm *TypeMapping, v *codec.Value) error {
		return codec.Set(&tm.DateDetection, v, codec.Bool)
	})
	d.Add("numeric_detection", codec.FieldBool, func(tm *TypeMapping, v *codec.Value) error {
		return codec.Set(&tm.NumericDetection, v, codec.Bool)
	})
	d.Add("dynamic_date_formats", codec.FieldArray, func(tm *TypeMapping, v *codec.Value) error {
		return codec.Assign(&tm.DynamicDateFormats, v, codec.Strings)
	})
	d.Add("dynamic_templates", codec.FieldArray, func(tm *TypeMapping, v *codec.Value) error {
		return codec.Assign(&tm.DynamicTemplates, v, codec.List(decodeNamedDynamicTemplate))
	})
	d.Add("_meta", codec.FieldObject, func(tm *TypeMapping, v *codec.Value) error {
		return codec.Assign(&tm.Meta, v, codec.AnyMap)
	})
	d.Add("_routing", codec.FieldObject, func(tm *TypeMapping, v *codec.Value) error {
		return codec.Set(&tm.Routing, v, decodeRoutingField)
	})
	d.Add("_source", codec.FieldObject, func(tm *TypeMapping, v *codec.Value) error {
		return codec.Set(&tm.Source, v, decodeSourceField)
	})
	d.Add("enabled", codec.FieldBool, func(tm *TypeMapping, v *codec.Value) error {
		return codec.Set(&tm.Enabled, v, codec.Bool)
	})

	return d
})

func (r RoutingField) MarshalJSON() ([]byte, error) {
	w := codec.NewObjectWriter()
	w.Field("required", r.Required)

	return w.Bytes()
}

var routingFieldDeserializer = sync.OnceValue(func() *codec.ObjectDeserializer[*RoutingField] {
	d := codec.NewObjectDeserializer[*RoutingField]("RoutingField")
	d.Add("required", codec.FieldBool, func(r *RoutingField, v *codec.Value) error {
		return codec.Assign(&r.Required, v, codec.Bool)
	})

	return d
})

func decodeRoutingField(v *codec.Value) (RoutingField, error) {
	return decodeValue(v, routingFieldDeserializer())
}

func (s SourceField) MarshalJSON() ([]byte, error) {
	w := codec.NewObjectWriter()
	codec.WriteOpt(w, "enabled", s.Enabled)
	codec.WriteSlice(w, "includes", s.Includes)
	codec.WriteSlice(w, "excludes", s.Excludes)

	return w.Bytes()
}

var sourceFieldDeserializer = sync.OnceValue(func() *codec.ObjectDeserializer[*SourceField] {
	d := codec.NewObjectDeserializer[*SourceField]("SourceField")
	d.Add("enabled", codec.FieldBool, func(s *SourceField, v *codec.Value) error {
		return codec.Set(&s.Enabled, v, codec.Bool)
	})
	d.Add("includes", codec.FieldArray, func(s *SourceField, v *codec.Value) error {
		return codec.Assign(&s.Includes, v, codec.Strings)
	})
	d.Add("excludes", codec.FieldArray, func(s *SourceField, v *codec.Value) error {
		return codec.Assign(&s.Excludes, v, codec.Strings)
	})

	return d
})

func decodeSourceField(v *codec.Value) (SourceField, error) {
	return decodeValue(v, sourceFieldDeserializer())
}

func (n NamedDynamicTemplate) MarshalJSON() ([]byte, error) {
	data, err := codec.Marshal(n.Template)
	if err != nil {
		return nil, err
	}

	w := codec.NewObjectWriter()
	w.Raw(n.Name, data)

	return w.Bytes()
}

func decodeNamedDynamicTemplate(v *codec.Value) (NamedDynamicTemplate, error) {
	obj, err := codec.ReadObject(v.Raw())
	if err != nil {
		return NamedDynamicTemplate{}, err
	}

	names := codec.SortedKeys(obj)
	if !common.IsSingle(names) {
		return NamedDynamicTemplate{}, codec.Malformed("object with a single template name", v.Raw(), nil)
	}

	name, _ := common.First(names)

	tmpl, err := decodeDynamicTemplate(codec.NewValue(obj[name], v.Flags()))
	if err != nil {
		return NamedDynamicTemplate{}, codec.WrapField(name, err)
	}

	return NamedDynamicTemplate{Name: name, Template: tmpl}, nil
}

func (t DynamicTemplate) MarshalJSON() ([]byte, error) {
	w := codec.NewObjectWriter()
	writeNonEmpty(w, "match", t.Match)
	writeNonEmpty(w, "unmatch", t.Unmatch)
	writeNonEmpty(w, "path_match", t.PathMatch)
	writeNonEmpty(w, "path_unmatch", t.PathUnmatch)
	writeNonEmpty(w, "match_mapping_type", t.MatchMappingType)
	writeNonEmpty(w, "match_pattern", string(t.MatchPattern))

	if !t.Mapping.IsZero() {
		w.Field("mapping", t.Mapping)
	}

	return w.Bytes()
}

func (t *DynamicTemplate) UnmarshalJSON(data []byte) error {
	return unmarshalValue(data, t, decodeDynamicTemplate)
}

var dynamicTemplateDeserializer = sync.OnceValue(func() *codec.ObjectDeserializer[*DynamicTemplate] {
	d := codec.NewObjectDeserializer[*DynamicTemplate]("DynamicTemplate")
	d.AddRequired("mapping", codec.FieldProperty, func(t *DynamicTemplate, v *codec.Value) error {
		return codec.Assign(&t.Mapping, v, decodePropertyValue)
	})
	d.Add("match", codec.FieldString, func(t *DynamicTemplate, v *codec.Value) error {
		return codec.Assign(&t.Match, v, codec.String)
	})
	d.Add("unmatch", codec.FieldString, func(t *DynamicTemplate, v *codec.Value) error {
		return codec.Assign(&t.Unmatch, v, codec.String)
	})
	d.Add("path_match", codec.FieldString, func(t *DynamicTemplate, v *codec.Value) error {
		return codec.Assign(&t.PathMatch, v, codec.String)
	})
	d.Add("path_unmatch", codec.FieldString, func(t *DynamicTemplate, v *codec.Value) error {
		return codec.Assign(&t.PathUnmatch, v, codec.String)
	})
	d.Add("match_mapping_type", codec.FieldString, func(t *DynamicTemplate, v *codec.Value) error {
		return codec.Assign(&t.MatchMappingType, v, codec.String)
	})
	d.Add("match_pattern", codec.FieldString, func(t *DynamicTemplate, v *codec.Value) error {
		return codec.Assign(&t.MatchPattern, v, codec.Enum[MatchType])
	})

	return d
})

func decodeDynamicTemplate(v *codec.Value) (DynamicTemplate, error) {
	return decodeValue(v, dynamicTemplateDeserializer())
}

// compile-time checks
var (
	_ json.Marshaler   = TypeMapping{}
	_ json.Unmarshaler = (*TypeMapping)(nil)
)
