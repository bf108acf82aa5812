package codec

import (
	"fmt"
	"strings"
)

// maxQuoted bounds how much of an offending value is echoed back in an error.
const maxQuoted = 64

// MalformedValueError reports a JSON value of the wrong shape or out of range
// for the field it was decoded into.
type MalformedValueError struct {
	// Expected describes the accepted shape (e.g. "string", "integer", "object").
	Expected string
	// Value is the offending raw JSON, truncated.
	Value string
	// Err is the underlying conversion error, if any.
	Err error
}

func (e *MalformedValueError) Error() string {
	msg := fmt.Sprintf("malformed value: expected %s, got %s", e.Expected, e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *MalformedValueError) Unwrap() error { return e.Err }

// Malformed builds a MalformedValueError for raw.
func Malformed(expected string, raw []byte, err error) *MalformedValueError {
	s := string(raw)
	if len(s) > maxQuoted {
		s = s[:maxQuoted] + "..."
	}

	return &MalformedValueError{Expected: expected, Value: s, Err: err}
}

// UnknownFieldError reports a key that the target object does not declare.
// It is only produced when options.DecodeUnknownStrict is set.
type UnknownFieldError struct {
	// Object is the name of the type being decoded.
	Object string
	// Field is the unknown key.
	Field string
	// Suggestion is the closest declared key, if one is similar enough.
	Suggestion string
}

func (e *UnknownFieldError) Error() string {
	msg := fmt.Sprintf("unknown field %q for %s", e.Field, e.Object)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}

	return msg
}

// FieldError attaches the dotted JSON path of the failing value to a decode error.
type FieldError struct {
	Path string
	Err  error
}

func (e *FieldError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error { return e.Err }

// WrapField prefixes err with the key name. Nested FieldErrors are merged
// into one so the path reads outermost first.
func WrapField(name string, err error) error {
	if err == nil {
		return nil
	}

	if fe, ok := err.(*FieldError); ok {
		return &FieldError{Path: joinPath(name, fe.Path), Err: fe.Err}
	}

	return &FieldError{Path: name, Err: err}
}

func joinPath(parts ...string) string {
	nonEmpty := parts[:0:0]

	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}

	return strings.Join(nonEmpty, ".")
}
