package codec

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osmapping/options"
)

type color string

func (c color) IsValid() bool { return c == "red" || c == "blue" }

func val(raw string, flags options.DecodeEnum) *Value {
	return NewValue(json.RawMessage(raw), flags)
}

func TestString(t *testing.T) {
	s, err := String(val(`"N/A"`, options.DecodeNone))
	require.NoError(t, err)
	assert.Equal(t, "N/A", s)

	_, err = String(val(`12`, options.DecodeAll))

	var mv *MalformedValueError
	require.ErrorAs(t, err, &mv)
	assert.Equal(t, "string", mv.Expected)
	assert.Equal(t, "12", mv.Value)
}

func TestBool(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		flags   options.DecodeEnum
		want    bool
		wantErr bool
	}{
		{name: "true", raw: `true`, flags: options.DecodeNone, want: true},
		{name: "false", raw: `false`, flags: options.DecodeNone, want: false},
		{name: "textual allowed", raw: `"true"`, flags: options.DecodeTextualBool, want: true},
		{name: "textual rejected", raw: `"true"`, flags: options.DecodeNone, wantErr: true},
		{name: "textual garbage", raw: `"yes"`, flags: options.DecodeTextualBool, wantErr: true},
		{name: "number", raw: `1`, flags: options.DecodeAll, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Bool(val(tt.raw, tt.flags))
			if tt.wantErr {
				var mv *MalformedValueError
				assert.ErrorAs(t, err, &mv)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInt(t *testing.T) {
	n, err := Int[int](val(`256`, options.DecodeNone))
	require.NoError(t, err)
	assert.Equal(t, 256, n)

	n, err = Int[int](val(`"256"`, options.DecodeTextNumber))
	require.NoError(t, err)
	assert.Equal(t, 256, n)

	_, err = Int[int](val(`"256"`, options.DecodeNone))
	assert.Error(t, err)

	b, err := Int[int8](val(`-128`, options.DecodeNone))
	require.NoError(t, err)
	assert.Equal(t, int8(-128), b)

	_, err = Int[int8](val(`128`, options.DecodeNone))

	var mv *MalformedValueError
	require.ErrorAs(t, err, &mv)
	assert.Contains(t, mv.Error(), "out of range")

	_, err = Int[int](val(`1.5`, options.DecodeNone))
	assert.ErrorAs(t, err, &mv)
}

func TestUint(t *testing.T) {
	n, err := Uint[uint64](val(`18446744073709551615`, options.DecodeNone))
	require.NoError(t, err)
	assert.Equal(t, uint64(18446744073709551615), n)

	_, err = Uint[uint64](val(`-1`, options.DecodeNone))
	assert.Error(t, err)
}

func TestFloat(t *testing.T) {
	f, err := Float[float64](val(`2.5`, options.DecodeNone))
	require.NoError(t, err)
	assert.InDelta(t, 2.5, f, 0)

	g, err := Float[float32](val(`"0.5"`, options.DecodeTextNumber))
	require.NoError(t, err)
	assert.InDelta(t, float32(0.5), g, 0)

	_, err = Float[float32](val(`1e300`, options.DecodeNone))
	assert.Error(t, err)

	_, err = Float[float64](val(`true`, options.DecodeAll))
	assert.Error(t, err)
}

func TestStrings(t *testing.T) {
	ss, err := Strings(val(`"all_text"`, options.DecodeNone))
	require.NoError(t, err)
	assert.Equal(t, []string{"all_text"}, ss)

	ss, err = Strings(val(`["a","b"]`, options.DecodeNone))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ss)

	ss, err = Strings(val(`[]`, options.DecodeNone))
	require.NoError(t, err)
	assert.NotNil(t, ss)
	assert.Empty(t, ss)

	_, err = Strings(val(`["a",1]`, options.DecodeNone))

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "1", fe.Path)
}

func TestMapDecoders(t *testing.T) {
	m, err := StringMap(val(`{"owner":"search","tier":"hot"}`, options.DecodeNone))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"owner": "search", "tier": "hot"}, m)

	_, err = StringMap(val(`{"owner":1}`, options.DecodeNone))

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "owner", fe.Path)

	sm, err := StringsMap(val(`{"question":["answer"],"a":"b"}`, options.DecodeNone))
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"question": {"answer"}, "a": {"b"}}, sm)

	nums, err := List(Int[int])(val(`[1,2,3]`, options.DecodeNone))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, nums)
}

func TestAnyDecoders(t *testing.T) {
	m, err := AnyMap(val(`{"n":12345678901234567890,"s":"x","nested":{"ok":true}}`, options.DecodeNone))
	require.NoError(t, err)
	assert.Equal(t, json.Number("12345678901234567890"), m["n"])

	data, err := Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":12345678901234567890,"s":"x","nested":{"ok":true}}`, string(data))
	assert.Contains(t, string(data), "12345678901234567890")

	_, err = AnyMap(val(`[1]`, options.DecodeNone))
	assert.Error(t, err)

	a, err := Any(val(`[1,"x"]`, options.DecodeNone))
	require.NoError(t, err)
	assert.Equal(t, []any{json.Number("1"), "x"}, a)
}

func TestEnum(t *testing.T) {
	c, err := Enum[color](val(`"red"`, options.DecodeNone))
	require.NoError(t, err)
	assert.Equal(t, color("red"), c)

	_, err = Enum[color](val(`"green"`, options.DecodeNone))

	var mv *MalformedValueError
	require.ErrorAs(t, err, &mv)
	assert.Equal(t, "codec.color", mv.Expected)
}

func TestSetAndAssign(t *testing.T) {
	var p *int
	require.NoError(t, Set(&p, val(`7`, options.DecodeNone), Int[int]))
	require.NotNil(t, p)
	assert.Equal(t, 7, *p)

	var ss []string
	require.NoError(t, Assign(&ss, val(`"x"`, options.DecodeNone), Strings))
	assert.Equal(t, []string{"x"}, ss)

	var q *int
	err := Set(&q, val(`"x"`, options.DecodeNone), Int[int])
	assert.Error(t, err)
	assert.Nil(t, q)
}

func TestMalformed_Truncates(t *testing.T) {
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'a'
	}

	err := Malformed("string", long, errors.New("cause"))
	assert.Len(t, err.Value, maxQuoted+3)
	assert.ErrorContains(t, err, "cause")
	assert.Equal(t, "cause", errors.Unwrap(err).Error())
}
