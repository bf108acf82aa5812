package codec

import (
	"bytes"
	"encoding/json"
	"sort"

	"osmapping/options"
)

// Value is one raw JSON value handed to a field decoder together with the
// decode flags in effect.
type Value struct {
	raw   json.RawMessage
	flags options.DecodeEnum
}

// NewValue wraps raw for decoding under flags.
func NewValue(raw json.RawMessage, flags options.DecodeEnum) *Value {
	return &Value{raw: bytes.TrimSpace(raw), flags: flags}
}

// Raw returns the undecoded JSON text.
func (v *Value) Raw() json.RawMessage { return v.raw }

// Flags returns the decode flags in effect.
func (v *Value) Flags() options.DecodeEnum { return v.flags }

// Token reports the JSON type of the value.
func (v *Value) Token() Token { return tokenOf(v.raw) }

// Token is the JSON type of a raw value.
type Token int

const (
	TokenInvalid Token = iota
	TokenNull
	TokenBool
	TokenNumber
	TokenString
	TokenArray
	TokenObject
)

// String returns the JSON name of the token type.
func (t Token) String() string {
	switch t {
	case TokenNull:
		return "null"
	case TokenBool:
		return "boolean"
	case TokenNumber:
		return "number"
	case TokenString:
		return "string"
	case TokenArray:
		return "array"
	case TokenObject:
		return "object"
	default:
		return "invalid"
	}
}

func tokenOf(raw []byte) Token {
	if len(raw) == 0 {
		return TokenInvalid
	}

	switch c := raw[0]; {
	case c == 'n':
		return TokenNull
	case c == 't' || c == 'f':
		return TokenBool
	case c == '"':
		return TokenString
	case c == '[':
		return TokenArray
	case c == '{':
		return TokenObject
	case c == '-' || (c >= '0' && c <= '9'):
		return TokenNumber
	default:
		return TokenInvalid
	}
}

// IsNull reports whether raw is the JSON literal null.
func IsNull(raw []byte) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

// ReadObject splits a JSON object into its members.
func ReadObject(data []byte) (map[string]json.RawMessage, error) {
	data = bytes.TrimSpace(data)
	if tokenOf(data) != TokenObject {
		return nil, Malformed("object", data, nil)
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, Malformed("object", data, err)
	}

	return obj, nil
}

// SortedKeys returns the keys of obj in lexical order.
func SortedKeys[V any](obj map[string]V) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
