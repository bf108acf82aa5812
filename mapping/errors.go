package mapping

import (
	"errors"
	"fmt"

	"osmapping/internal/codec"
	"osmapping/internal/match"
)

// ErrSingleUseViolation is returned by Build on a builder that already
// produced a value.
var ErrSingleUseViolation = errors.New("builder already used")

// ErrEmptyProperty is returned when serializing a zero Property.
var ErrEmptyProperty = errors.New("property holds no variant")

// Decode errors shared with the codec engine.
type (
	// MalformedValueError reports a value of the wrong JSON shape or out of range.
	MalformedValueError = codec.MalformedValueError
	// UnknownFieldError reports an undeclared key under options.DecodeUnknownStrict.
	UnknownFieldError = codec.UnknownFieldError
	// FieldError carries the dotted JSON path of a decode failure.
	FieldError = codec.FieldError
)

// MissingRequiredFieldError is returned by Build when a required field was
// never set. Several missing fields are joined with errors.Join.
type MissingRequiredFieldError struct {
	Type  string
	Field string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("missing required field %q for %s", e.Field, e.Type)
}

// UnknownVariantError is returned when a "type" discriminator names no kind.
type UnknownVariantError struct {
	Discriminator string
	// Suggestion is the closest known discriminator, if any is similar enough.
	Suggestion string
}

func (e *UnknownVariantError) Error() string {
	msg := fmt.Sprintf("unknown property type %q", e.Discriminator)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}

	return msg
}

// VariantMismatchError is returned when a Property is asked for a variant it
// does not hold.
type VariantMismatchError struct {
	Expected Kind
	Actual   Kind
}

func (e *VariantMismatchError) Error() string {
	return fmt.Sprintf("property holds %s, not %s", e.Actual, e.Expected)
}

// MissingFields lists the fields of every MissingRequiredFieldError in err,
// looking through joined and wrapped errors.
func MissingFields(err error) []string {
	var out []string

	var visit func(error)
	visit = func(err error) {
		switch e := err.(type) {
		case nil:
		case *MissingRequiredFieldError:
			out = append(out, e.Field)
		case interface{ Unwrap() []error }:
			for _, inner := range e.Unwrap() {
				visit(inner)
			}
		case interface{ Unwrap() error }:
			visit(e.Unwrap())
		}
	}

	visit(err)

	return out
}

func suggestTag(tag string) string {
	s, _ := match.Suggest(tag, Tags())
	return s
}
