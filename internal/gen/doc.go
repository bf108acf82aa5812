// Package gen turns a variant catalog into the Go source of the mapping
// package: trait storage structs and their generic builder levels, one
// struct, builder and memoized deserializer per variant, and the kind
// dispatch tables.
//
// Generation uses text/template + go/format, so the output is deterministic
// and gofmt-clean.
//
// Per field, the catalog type decides:
//   - Storage (pointer for scalars, nil-able slice or map for collections)
//   - Getter shape (value plus presence flag, or a defensive copy)
//   - Decoder function and descriptive codec.FieldType
//   - Writer helper used during serialization
package gen
