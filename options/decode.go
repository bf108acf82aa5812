// Package options holds the decode behavior flags shared by the mapping codec.
package options

type DecodeEnum int

const (
	DecodeTextNumber    DecodeEnum = 1 << iota // "256" <-> 256: quoted numbers accepted where a number is expected
	DecodeTextualBool                          // "true" <-> true: quoted booleans accepted where a boolean is expected
	DecodeUnknownStrict                        // keys not declared by the target object are rejected instead of skipped

	DecodeAll     DecodeEnum = (1 << iota) - 1 // all flags combined
	DecodeNone    DecodeEnum = 0               // exact JSON types, unknown keys skipped
	DecodeDefault            = DecodeTextNumber | DecodeTextualBool
	DecodeStrict             = DecodeDefault | DecodeUnknownStrict
)

// Has reports whether every flag of f is set in d.
func (d DecodeEnum) Has(f DecodeEnum) bool {
	return d&f == f
}

// With returns d with the flags of f set.
func (d DecodeEnum) With(f DecodeEnum) DecodeEnum {
	return d | f
}

// Without returns d with the flags of f cleared.
func (d DecodeEnum) Without(f DecodeEnum) DecodeEnum {
	return d &^ f
}
