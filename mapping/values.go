package mapping

import (
	"encoding/json"
	"errors"
	"sync"

	"osmapping/internal/codec"
	"osmapping/options"
)

// Script is an inline or stored script. On input a bare string is the
// script source.
type Script struct {
	Source  string            `json:"source,omitempty"`
	ID      string            `json:"id,omitempty"`
	Lang    string            `json:"lang,omitempty"`
	Params  map[string]any    `json:"params,omitempty"`
	Options map[string]string `json:"options,omitempty"`
}

func (s Script) MarshalJSON() ([]byte, error) {
	w := codec.NewObjectWriter()
	writeNonEmpty(w, "source", s.Source)
	writeNonEmpty(w, "id", s.ID)
	writeNonEmpty(w, "lang", s.Lang)
	codec.WriteMap(w, "params", s.Params)
	codec.WriteMap(w, "options", s.Options)

	return w.Bytes()
}

func (s *Script) UnmarshalJSON(data []byte) error {
	return unmarshalValue(data, s, decodeScript)
}

var scriptDeserializer = sync.OnceValue(func() *codec.ObjectDeserializer[*Script] {
	d := codec.NewObjectDeserializer[*Script]("Script")
	d.Add("source", codec.FieldString, func(s *Script, v *codec.Value) error {
		return codec.Assign(&s.Source, v, codec.String)
	})
	d.Add("id", codec.FieldString, func(s *Script, v *codec.Value) error {
		return codec.Assign(&s.ID, v, codec.String)
	})
	d.Add("lang", codec.FieldString, func(s *Script, v *codec.Value) error {
		return codec.Assign(&s.Lang, v, codec.String)
	})
	d.Add("params", codec.FieldObject, func(s *Script, v *codec.Value) error {
		return codec.Assign(&s.Params, v, codec.AnyMap)
	})
	d.Add("options", codec.FieldObject, func(s *Script, v *codec.Value) error {
		return codec.Assign(&s.Options, v, codec.StringMap)
	})

	return d
})

func decodeScript(v *codec.Value) (Script, error) {
	if v.Token() == codec.TokenString {
		src, err := codec.String(v)
		if err != nil {
			return Script{}, err
		}

		return Script{Source: src}, nil
	}

	s, err := decodeValue(v, scriptDeserializer())
	if err != nil {
		return Script{}, err
	}

	if s.Source == "" && s.ID == "" {
		return Script{}, &MissingRequiredFieldError{Type: "Script", Field: "source"}
	}

	return s, nil
}

// NumericFielddata configures field data of boolean and date fields.
type NumericFielddata struct {
	Format NumericFielddataFormat `json:"format"`
}

func (f NumericFielddata) MarshalJSON() ([]byte, error) {
	w := codec.NewObjectWriter()
	codec.WriteString(w, "format", string(f.Format))

	return w.Bytes()
}

func (f *NumericFielddata) UnmarshalJSON(data []byte) error {
	return unmarshalValue(data, f, decodeNumericFielddata)
}

var numericFielddataDeserializer = sync.OnceValue(func() *codec.ObjectDeserializer[*NumericFielddata] {
	d := codec.NewObjectDeserializer[*NumericFielddata]("NumericFielddata")
	d.AddRequired("format", codec.FieldString, func(f *NumericFielddata, v *codec.Value) error {
		return codec.Assign(&f.Format, v, codec.Enum[NumericFielddataFormat])
	})

	return d
})

func decodeNumericFielddata(v *codec.Value) (NumericFielddata, error) {
	return decodeValue(v, numericFielddataDeserializer())
}

// FielddataFrequencyFilter limits which terms of a text field are loaded
// into field data.
type FielddataFrequencyFilter struct {
	Max            float64 `json:"max"`
	Min            float64 `json:"min"`
	MinSegmentSize int     `json:"min_segment_size"`
}

func (f FielddataFrequencyFilter) MarshalJSON() ([]byte, error) {
	w := codec.NewObjectWriter()
	w.Field("max", f.Max)
	w.Field("min", f.Min)
	w.Field("min_segment_size", f.MinSegmentSize)

	return w.Bytes()
}

func (f *FielddataFrequencyFilter) UnmarshalJSON(data []byte) error {
	return unmarshalValue(data, f, decodeFielddataFrequencyFilter)
}

var fielddataFrequencyFilterDeserializer = sync.OnceValue(func() *codec.ObjectDeserializer[*FielddataFrequencyFilter] {
	d := codec.NewObjectDeserializer[*FielddataFrequencyFilter]("FielddataFrequencyFilter")
	d.AddRequired("max", codec.FieldNumber, func(f *FielddataFrequencyFilter, v *codec.Value) error {
		return codec.Assign(&f.Max, v, codec.Float[float64])
	})
	d.AddRequired("min", codec.FieldNumber, func(f *FielddataFrequencyFilter, v *codec.Value) error {
		return codec.Assign(&f.Min, v, codec.Float[float64])
	})
	d.AddRequired("min_segment_size", codec.FieldInteger, func(f *FielddataFrequencyFilter, v *codec.Value) error {
		return codec.Assign(&f.MinSegmentSize, v, codec.Int[int])
	})

	return d
})

func decodeFielddataFrequencyFilter(v *codec.Value) (FielddataFrequencyFilter, error) {
	return decodeValue(v, fielddataFrequencyFilterDeserializer())
}

// TextIndexPrefixes enables indexing of term prefixes of a text field.
type TextIndexPrefixes struct {
	MaxChars int `json:"max_chars"`
	MinChars int `json:"min_chars"`
}

func (p TextIndexPrefixes) MarshalJSON() ([]byte, error) {
	w := codec.NewObjectWriter()
	w.Field("max_chars", p.MaxChars)
	w.Field("min_chars", p.MinChars)

	return w.Bytes()
}

func (p *TextIndexPrefixes) UnmarshalJSON(data []byte) error {
	return unmarshalValue(data, p, decodeTextIndexPrefixes)
}

var textIndexPrefixesDeserializer = sync.OnceValue(func() *codec.ObjectDeserializer[*TextIndexPrefixes] {
	d := codec.NewObjectDeserializer[*TextIndexPrefixes]("TextIndexPrefixes")
	d.AddRequired("max_chars", codec.FieldInteger, func(p *TextIndexPrefixes, v *codec.Value) error {
		return codec.Assign(&p.MaxChars, v, codec.Int[int])
	})
	d.AddRequired("min_chars", codec.FieldInteger, func(p *TextIndexPrefixes, v *codec.Value) error {
		return codec.Assign(&p.MinChars, v, codec.Int[int])
	})

	return d
})

func decodeTextIndexPrefixes(v *codec.Value) (TextIndexPrefixes, error) {
	return decodeValue(v, textIndexPrefixesDeserializer())
}

// SuggestContext is one context of a completion field.
type SuggestContext struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Path      string `json:"path,omitempty"`
	Precision any    `json:"precision,omitempty"`
}

func (c SuggestContext) MarshalJSON() ([]byte, error) {
	w := codec.NewObjectWriter()
	w.Field("name", c.Name)
	w.Field("type", c.Type)
	writeNonEmpty(w, "path", c.Path)
	codec.WriteAny(w, "precision", c.Precision)

	return w.Bytes()
}

func (c *SuggestContext) UnmarshalJSON(data []byte) error {
	return unmarshalValue(data, c, decodeSuggestContext)
}

var suggestContextDeserializer = sync.OnceValue(func() *codec.ObjectDeserializer[*SuggestContext] {
	d := codec.NewObjectDeserializer[*SuggestContext]("SuggestContext")
	d.AddRequired("name", codec.FieldString, func(c *SuggestContext, v *codec.Value) error {
		return codec.Assign(&c.Name, v, codec.String)
	})
	d.AddRequired("type", codec.FieldString, func(c *SuggestContext, v *codec.Value) error {
		return codec.Assign(&c.Type, v, codec.String)
	})
	d.Add("path", codec.FieldString, func(c *SuggestContext, v *codec.Value) error {
		return codec.Assign(&c.Path, v, codec.String)
	})
	d.Add("precision", codec.FieldAny, func(c *SuggestContext, v *codec.Value) error {
		return codec.Assign(&c.Precision, v, codec.Any)
	})

	return d
})

func decodeSuggestContext(v *codec.Value) (SuggestContext, error) {
	return decodeValue(v, suggestContextDeserializer())
}

// DenseVectorIndexOptions configures the approximate kNN index of a
// dense_vector field.
type DenseVectorIndexOptions struct {
	Type           string `json:"type"`
	M              *int   `json:"m,omitempty"`
	EfConstruction *int   `json:"ef_construction,omitempty"`
}

func (o DenseVectorIndexOptions) MarshalJSON() ([]byte, error) {
	w := codec.NewObjectWriter()
	w.Field("type", o.Type)
	codec.WriteOpt(w, "m", o.M)
	codec.WriteOpt(w, "ef_construction", o.EfConstruction)

	return w.Bytes()
}

func (o *DenseVectorIndexOptions) UnmarshalJSON(data []byte) error {
	return unmarshalValue(data, o, decodeDenseVectorIndexOptions)
}

var denseVectorIndexOptionsDeserializer = sync.OnceValue(func() *codec.ObjectDeserializer[*DenseVectorIndexOptions] {
	d := codec.NewObjectDeserializer[*DenseVectorIndexOptions]("DenseVectorIndexOptions")
	d.AddRequired("type", codec.FieldString, func(o *DenseVectorIndexOptions, v *codec.Value) error {
		return codec.Assign(&o.Type, v, codec.String)
	})
	d.Add("m", codec.FieldInteger, func(o *DenseVectorIndexOptions, v *codec.Value) error {
		return codec.Set(&o.M, v, codec.Int[int])
	})
	d.Add("ef_construction", codec.FieldInteger, func(o *DenseVectorIndexOptions, v *codec.Value) error {
		return codec.Set(&o.EfConstruction, v, codec.Int[int])
	})

	return d
})

func decodeDenseVectorIndexOptions(v *codec.Value) (DenseVectorIndexOptions, error) {
	return decodeValue(v, denseVectorIndexOptionsDeserializer())
}

// decodeValue decodes a value type and reports every required member that
// is absent or null.
func decodeValue[T any](v *codec.Value, d *codec.ObjectDeserializer[*T]) (T, error) {
	var out T

	obj, err := codec.ReadObject(v.Raw())
	if err != nil {
		return out, err
	}

	if err := d.DecodeFields(obj, &out, v.Flags()); err != nil {
		return out, err
	}

	var missing []error

	for _, f := range d.Fields() {
		if raw, ok := obj[f.Name]; f.Required && (!ok || codec.IsNull(raw)) {
			missing = append(missing, &MissingRequiredFieldError{Type: d.Name(), Field: f.Name})
		}
	}

	if len(missing) > 0 {
		var zero T
		return zero, errors.Join(missing...)
	}

	return out, nil
}

func unmarshalValue[T any](data []byte, dst *T, dec codec.Decoder[T]) error {
	return codec.Assign(dst, codec.NewValue(json.RawMessage(data), options.DecodeDefault), dec)
}

func writeNonEmpty(w *codec.ObjectWriter, name, v string) {
	if v != "" {
		w.Field(name, v)
	}
}
