// Package mapping models OpenSearch field mappings.
//
// A Property holds exactly one of the field mapping variants (keyword, text,
// long, nested, ...). Each variant is built with its builder, which is single
// use and validates required attributes, or decoded from JSON with
// DecodeProperty. The "type" key selects the variant and is always written
// first; an object without it is an "object" mapping.
//
// Variants share attributes through a fixed chain of trait levels:
//
//	PropertyBase -> CorePropertyBase -> DocValuesPropertyBase -> NumberPropertyBase -> StandardNumberPropertyBase
//	                                                          \-> RangePropertyBase
//
// The variants, their trait level and their attributes are declared in
// catalog.yaml; properties_gen.go is generated from it.
package mapping

//go:generate go run ../cmd/propgen -catalog catalog.yaml -out properties_gen.go
