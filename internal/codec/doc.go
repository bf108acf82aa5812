// Package codec is the JSON engine behind the mapping types.
//
// Serialization goes through ObjectWriter, which writes one JSON object field
// by field and skips absent optional values. Deserialization goes through
// ObjectDeserializer, a per-type table of field decoders assembled once and
// then reused: each JSON key of an object is routed to the decoder registered
// for it, and values are converted by the scalar decoders in this package
// (String, Bool, Int, Float, Strings, ...), honoring options.DecodeEnum flags.
//
// Decode failures are reported as MalformedValueError or UnknownFieldError,
// wrapped in a FieldError that carries the dotted path of the failing value.
package codec
