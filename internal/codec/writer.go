package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ObjectWriter writes a single JSON object. The first error encountered is
// kept and returned by Bytes; later writes become no-ops.
type ObjectWriter struct {
	buf    bytes.Buffer
	fields int
	err    error
}

// NewObjectWriter starts a new JSON object.
func NewObjectWriter() *ObjectWriter {
	w := &ObjectWriter{}
	w.buf.WriteByte('{')

	return w
}

// Field writes name and the JSON encoding of v.
func (w *ObjectWriter) Field(name string, v any) {
	if w.err != nil {
		return
	}

	data, err := marshal(v)
	if err != nil {
		w.err = fmt.Errorf("write %s: %w", name, err)
		return
	}

	w.Raw(name, data)
}

// Raw writes name with an already encoded JSON value.
func (w *ObjectWriter) Raw(name string, data []byte) {
	if w.err != nil {
		return
	}

	if w.fields > 0 {
		w.buf.WriteByte(',')
	}

	key, err := marshal(name)
	if err != nil {
		w.err = err
		return
	}

	w.buf.Write(key)
	w.buf.WriteByte(':')
	w.buf.Write(data)
	w.fields++
}

// Len returns the number of fields written so far.
func (w *ObjectWriter) Len() int { return w.fields }

// Bytes closes the object and returns its encoding.
func (w *ObjectWriter) Bytes() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}

	out := make([]byte, 0, w.buf.Len()+1)
	out = append(out, w.buf.Bytes()...)

	return append(out, '}'), nil
}

// WriteString writes a string field unconditionally.
func WriteString(w *ObjectWriter, name, v string) {
	w.Field(name, v)
}

// WriteOpt writes an optional field when it is set.
func WriteOpt[T any](w *ObjectWriter, name string, v *T) {
	if v != nil {
		w.Field(name, *v)
	}
}

// WriteSlice writes a list field when it is set. An empty but non-nil list
// is written as [].
func WriteSlice[T any](w *ObjectWriter, name string, v []T) {
	if v != nil {
		w.Field(name, v)
	}
}

// WriteMap writes a map field when it is set. Keys come out sorted.
func WriteMap[V any](w *ObjectWriter, name string, v map[string]V) {
	if v != nil {
		w.Field(name, v)
	}
}

// WriteAny writes a loosely typed field when it is non-nil.
func WriteAny(w *ObjectWriter, name string, v any) {
	if v != nil {
		w.Field(name, v)
	}
}

// Marshal encodes v the way ObjectWriter does: no HTML escaping, no trailing newline.
func Marshal(v any) ([]byte, error) {
	return marshal(v)
}

func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
