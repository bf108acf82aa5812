package codec

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingMarshaler struct{}

func (failingMarshaler) MarshalJSON() ([]byte, error) { return nil, errors.New("boom") }

func TestObjectWriter_Fields(t *testing.T) {
	ignoreAbove := 256
	var unset *string

	w := NewObjectWriter()
	WriteString(w, "type", "keyword")
	WriteOpt(w, "ignore_above", &ignoreAbove)
	WriteOpt(w, "null_value", unset)
	WriteSlice(w, "copy_to", []string{"all"})
	WriteSlice[string](w, "skipped", nil)
	WriteMap(w, "meta", map[string]string{"b": "2", "a": "1"})
	WriteMap(w, "empty", map[string]string{})
	WriteAny(w, "nothing", nil)
	WriteAny(w, "html", "<a&b>")

	data, err := w.Bytes()
	require.NoError(t, err)
	assert.Equal(t,
		`{"type":"keyword","ignore_above":256,"copy_to":["all"],"meta":{"a":"1","b":"2"},"empty":{},"html":"<a&b>"}`,
		string(data))
	assert.Equal(t, 6, w.Len())
	assert.True(t, json.Valid(data))
}

func TestObjectWriter_Empty(t *testing.T) {
	data, err := NewObjectWriter().Bytes()
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestObjectWriter_StickyError(t *testing.T) {
	w := NewObjectWriter()
	w.Field("bad", failingMarshaler{})
	w.Field("good", 1)

	_, err := w.Bytes()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write bad")
	assert.Equal(t, 0, w.Len())
}

func TestObjectWriter_Raw(t *testing.T) {
	w := NewObjectWriter()
	w.Raw("nested", []byte(`{"type":"object"}`))
	w.Field("float", float32(1.5))

	data, err := w.Bytes()
	require.NoError(t, err)
	assert.Equal(t, `{"nested":{"type":"object"},"float":1.5}`, string(data))
}
