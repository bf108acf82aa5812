// Package catalog describes the field mapping variants as data: the trait
// levels that contribute shared attributes, the variants attached to them and
// each field's wire name, Go name and value type.
//
// The catalog is loaded from YAML, validated into diagnostics, and then
// consumed by the code generator. Trait levels form a single-parent chain;
// Chain and AllFields resolve a variant's full ordered field set.
package catalog
