package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"osmapping/options"
)

// Signed is the set of signed integer field types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer field types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Floating is the set of floating point field types.
type Floating interface {
	~float32 | ~float64
}

// EnumValue is a string enumeration that knows its valid members.
type EnumValue interface {
	~string
	IsValid() bool
}

// Decoder converts a raw value into T.
type Decoder[T any] func(v *Value) (T, error)

// Set decodes v and stores a pointer to the result in dst.
func Set[T any](dst **T, v *Value, dec Decoder[T]) error {
	out, err := dec(v)
	if err != nil {
		return err
	}

	*dst = &out

	return nil
}

// Assign decodes v and stores the result in dst.
func Assign[T any](dst *T, v *Value, dec Decoder[T]) error {
	out, err := dec(v)
	if err != nil {
		return err
	}

	*dst = out

	return nil
}

// String decodes a JSON string.
func String(v *Value) (string, error) {
	if v.Token() != TokenString {
		return "", Malformed("string", v.raw, nil)
	}

	var s string
	if err := json.Unmarshal(v.raw, &s); err != nil {
		return "", Malformed("string", v.raw, err)
	}

	return s, nil
}

// Bool decodes a JSON boolean, or "true"/"false" under DecodeTextualBool.
func Bool(v *Value) (bool, error) {
	switch v.Token() {
	case TokenBool:
		return bytes.Equal(v.raw, []byte("true")), nil
	case TokenString:
		if v.flags.Has(options.DecodeTextualBool) {
			s, err := String(v)
			if err != nil {
				return false, err
			}

			switch s {
			case "true":
				return true, nil
			case "false":
				return false, nil
			}
		}
	}

	return false, Malformed("boolean", v.raw, nil)
}

// numberText returns the number literal of v, unquoting it under DecodeTextNumber.
func numberText(v *Value, expected string) (string, error) {
	switch v.Token() {
	case TokenNumber:
		return string(v.raw), nil
	case TokenString:
		if v.flags.Has(options.DecodeTextNumber) {
			return String(v)
		}
	}

	return "", Malformed(expected, v.raw, nil)
}

// Int decodes a signed integer, rejecting values that do not fit T.
func Int[T Signed](v *Value) (T, error) {
	s, err := numberText(v, "integer")
	if err != nil {
		return 0, err
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, Malformed("integer", v.raw, err)
	}

	if int64(T(n)) != n {
		return 0, Malformed("integer", v.raw, fmt.Errorf("%d out of range", n))
	}

	return T(n), nil
}

// Uint decodes an unsigned integer, rejecting values that do not fit T.
func Uint[T Unsigned](v *Value) (T, error) {
	s, err := numberText(v, "unsigned integer")
	if err != nil {
		return 0, err
	}

	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, Malformed("unsigned integer", v.raw, err)
	}

	if uint64(T(n)) != n {
		return 0, Malformed("unsigned integer", v.raw, fmt.Errorf("%d out of range", n))
	}

	return T(n), nil
}

// Float decodes a floating point number, rejecting values that overflow T.
func Float[T Floating](v *Value) (T, error) {
	s, err := numberText(v, "number")
	if err != nil {
		return 0, err
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, Malformed("number", v.raw, err)
	}

	if math.IsInf(float64(T(f)), 0) {
		return 0, Malformed("number", v.raw, fmt.Errorf("%s out of range", s))
	}

	return T(f), nil
}

// Strings decodes a list of strings. A single string is accepted as a
// one-element list.
func Strings(v *Value) ([]string, error) {
	switch v.Token() {
	case TokenString:
		s, err := String(v)
		if err != nil {
			return nil, err
		}

		return []string{s}, nil
	case TokenArray:
		var raws []json.RawMessage
		if err := json.Unmarshal(v.raw, &raws); err != nil {
			return nil, Malformed("array of strings", v.raw, err)
		}

		out := make([]string, 0, len(raws))

		for i, raw := range raws {
			s, err := String(NewValue(raw, v.flags))
			if err != nil {
				return nil, WrapField(strconv.Itoa(i), err)
			}

			out = append(out, s)
		}

		return out, nil
	}

	return nil, Malformed("array of strings", v.raw, nil)
}

// StringMap decodes an object whose members are all strings.
func StringMap(v *Value) (map[string]string, error) {
	return Map(String)(v)
}

// StringsMap decodes an object whose members are string lists.
func StringsMap(v *Value) (map[string][]string, error) {
	return Map(Strings)(v)
}

// Map lifts an element decoder to an object of such elements. Errors carry
// the member key.
func Map[T any](dec Decoder[T]) Decoder[map[string]T] {
	return func(v *Value) (map[string]T, error) {
		if v.Token() != TokenObject {
			return nil, Malformed("object", v.raw, nil)
		}

		obj, err := ReadObject(v.raw)
		if err != nil {
			return nil, err
		}

		out := make(map[string]T, len(obj))

		for _, k := range SortedKeys(obj) {
			elem, err := dec(NewValue(obj[k], v.flags))
			if err != nil {
				return nil, WrapField(k, err)
			}

			out[k] = elem
		}

		return out, nil
	}
}

// List lifts an element decoder to an array of such elements.
func List[T any](dec Decoder[T]) Decoder[[]T] {
	return func(v *Value) ([]T, error) {
		if v.Token() != TokenArray {
			return nil, Malformed("array", v.raw, nil)
		}

		var raws []json.RawMessage
		if err := json.Unmarshal(v.raw, &raws); err != nil {
			return nil, Malformed("array", v.raw, err)
		}

		out := make([]T, 0, len(raws))

		for i, raw := range raws {
			elem, err := dec(NewValue(raw, v.flags))
			if err != nil {
				return nil, WrapField(strconv.Itoa(i), err)
			}

			out = append(out, elem)
		}

		return out, nil
	}
}

// AnyMap decodes an object of arbitrary JSON values. Numbers are kept as
// json.Number so they are written back unchanged.
func AnyMap(v *Value) (map[string]any, error) {
	if v.Token() != TokenObject {
		return nil, Malformed("object", v.raw, nil)
	}

	var out map[string]any
	if err := decodeUseNumber(v.raw, &out); err != nil {
		return nil, Malformed("object", v.raw, err)
	}

	return out, nil
}

// Any decodes an arbitrary JSON value, keeping numbers as json.Number.
func Any(v *Value) (any, error) {
	var out any
	if err := decodeUseNumber(v.raw, &out); err != nil {
		return nil, Malformed("JSON value", v.raw, err)
	}

	return out, nil
}

// Enum decodes a string and checks it is a member of T.
func Enum[T EnumValue](v *Value) (T, error) {
	s, err := String(v)
	if err != nil {
		return "", err
	}

	out := T(s)
	if !out.IsValid() {
		return "", Malformed(fmt.Sprintf("%T", out), v.raw, nil)
	}

	return out, nil
}

// JSON decodes v with encoding/json into T. Used for value types that carry
// their own UnmarshalJSON.
func JSON[T any](v *Value) (T, error) {
	var out T
	if err := json.Unmarshal(v.raw, &out); err != nil {
		return out, err
	}

	return out, nil
}

func decodeUseNumber(raw []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	return dec.Decode(dst)
}
