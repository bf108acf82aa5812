package codec

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osmapping/options"
)

type sample struct {
	name        *string
	ignoreAbove *int
	copyTo      []string
	dims        *int
}

func sampleDeserializer() *ObjectDeserializer[*sample] {
	d := NewObjectDeserializer[*sample]("SampleProperty")
	d.Ignore("type")
	d.Add("name", FieldString, func(s *sample, v *Value) error { return Set(&s.name, v, String) })
	d.Add("ignore_above", FieldInteger, func(s *sample, v *Value) error { return Set(&s.ignoreAbove, v, Int[int]) })
	d.Add("copy_to", FieldArray, func(s *sample, v *Value) error { return Assign(&s.copyTo, v, Strings) })
	d.AddRequired("dims", FieldInteger, func(s *sample, v *Value) error { return Set(&s.dims, v, Int[int]) })

	return d
}

func TestObjectDeserializer_Decode(t *testing.T) {
	var s sample

	err := sampleDeserializer().Decode(
		[]byte(`{"dims":3,"type":"sample","ignore_above":"256","copy_to":"all","name":null,"extra":1}`),
		&s, options.DecodeDefault)
	require.NoError(t, err)

	assert.Nil(t, s.name, "null is absent")
	require.NotNil(t, s.ignoreAbove)
	assert.Equal(t, 256, *s.ignoreAbove)
	assert.Equal(t, []string{"all"}, s.copyTo)
	require.NotNil(t, s.dims)
	assert.Equal(t, 3, *s.dims)
}

func TestObjectDeserializer_Strict(t *testing.T) {
	var s sample

	err := sampleDeserializer().Decode([]byte(`{"type":"sample","ignore_abvoe":1}`), &s, options.DecodeStrict)

	var uf *UnknownFieldError
	require.ErrorAs(t, err, &uf)
	assert.Equal(t, "ignore_abvoe", uf.Field)
	assert.Equal(t, "ignore_above", uf.Suggestion)
	assert.Equal(t, "SampleProperty", uf.Object)

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "ignore_abvoe", fe.Path)
	assert.Equal(t, `ignore_abvoe: unknown field "ignore_abvoe" for SampleProperty (did you mean "ignore_above"?)`, err.Error())
}

func TestObjectDeserializer_FieldErrorPath(t *testing.T) {
	var s sample

	err := sampleDeserializer().Decode([]byte(`{"copy_to":["a",true]}`), &s, options.DecodeNone)

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "copy_to.1", fe.Path)

	var mv *MalformedValueError
	require.ErrorAs(t, err, &mv)
	assert.Equal(t, "string", mv.Expected)
}

func TestObjectDeserializer_NotAnObject(t *testing.T) {
	var s sample

	for _, input := range []string{`[]`, `"keyword"`, `null`, ``, `{"a":`} {
		err := sampleDeserializer().Decode([]byte(input), &s, options.DecodeNone)

		var mv *MalformedValueError
		assert.ErrorAs(t, err, &mv, "input %q", input)
	}
}

func TestObjectDeserializer_Fields(t *testing.T) {
	d := sampleDeserializer()

	assert.Equal(t, []string{"name", "ignore_above", "copy_to", "dims"}, d.Names())

	fields := d.Fields()
	require.Len(t, fields, 4)
	assert.Equal(t, Field{Name: "dims", Type: FieldInteger, Required: true}, fields[3])
	assert.Equal(t, "integer", fields[3].Type.String())

	fields[0].Name = "mutated"
	assert.Equal(t, "name", d.Fields()[0].Name)
}

func TestObjectDeserializer_DuplicatePanics(t *testing.T) {
	d := sampleDeserializer()

	assert.Panics(t, func() {
		d.Add("dims", FieldInteger, func(*sample, *Value) error { return nil })
	})
	assert.Panics(t, func() {
		d.Ignore("name")
	})
}

func TestObjectDeserializer_Concurrent(t *testing.T) {
	d := sampleDeserializer()

	var wg sync.WaitGroup

	errs := make(chan error, 32)

	for i := 0; i < 32; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			var s sample
			errs <- d.Decode([]byte(`{"dims":8,"name":"vec"}`), &s, options.DecodeDefault)
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestWrapField(t *testing.T) {
	assert.NoError(t, WrapField("x", nil))

	inner := WrapField("ignore_above", Malformed("integer", []byte(`"x"`), nil))
	outer := WrapField("properties", WrapField("age", inner))

	var fe *FieldError
	require.ErrorAs(t, outer, &fe)
	assert.Equal(t, "properties.age.ignore_above", fe.Path)
	assert.Equal(t, `properties.age.ignore_above: malformed value: expected integer, got "x"`, outer.Error())
}
