package catalog

import (
	"errors"
	"fmt"

	"osmapping/internal/common"
	"osmapping/internal/diagnostic"
	"osmapping/internal/match"
)

// Validate checks the catalog for structural problems: unknown or cyclic
// parents, duplicate kinds and tags, field names declared twice along a
// trait chain, and malformed field types.
func Validate(c *Catalog) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if c == nil {
		res.AddError("catalog_is_nil", "catalog is nil", "", "")
		return res
	}

	if c.Package == "" {
		res.AddError("missing_package", "catalog does not name a Go package", "", "package")
	}

	validateTraits(c, res)

	if common.IsEmpty(c.Variants) {
		res.AddWarning("no_variants", "catalog declares no variants", "", "variants")
	}

	validateVariants(c, res)

	return res
}

func traitNames(c *Catalog) []string {
	names := make([]string, 0, len(c.Traits))
	for _, t := range c.Traits {
		names = append(names, t.Name)
	}

	return names
}

func validateTraits(c *Catalog, res *diagnostic.Diagnostics) {
	seen := map[string]struct{}{}
	names := traitNames(c)

	for i := range c.Traits {
		t := &c.Traits[i]
		path := fmt.Sprintf("traits[%d]", i)

		if t.Name == "" {
			res.AddError("missing_trait_name", "trait has no name", "", path)
			continue
		}

		if _, dup := seen[t.Name]; dup {
			res.AddError("duplicate_trait", fmt.Sprintf("trait %q declared twice", t.Name), t.Name, path)
		}

		seen[t.Name] = struct{}{}

		if t.Parent != "" {
			if _, ok := c.Trait(t.Parent); !ok {
				res.AddError("unknown_parent", fmt.Sprintf("parent trait %q not found", t.Parent),
					t.Name, path+".parent", suggestions(t.Parent, names)...)
			}
		}

		for j, f := range t.Fields {
			fpath := fmt.Sprintf("%s.fields[%d]", path, j)
			validateField(f, t.Name, fpath, res)

			if f.Required {
				res.AddError("required_trait_field",
					fmt.Sprintf("trait field %q cannot be required", f.Name), t.Name, fpath)
			}
		}
	}

	if _, err := c.TraitOrder(); errors.Is(err, ErrTraitCycle) {
		res.AddError("trait_cycle", "trait parents form a cycle", "", "traits")
	}
}

func validateVariants(c *Catalog, res *diagnostic.Diagnostics) {
	kinds := map[string]struct{}{}
	tags := map[string]struct{}{}
	types := map[string]struct{}{}
	names := traitNames(c)

	for i := range c.Variants {
		v := &c.Variants[i]
		path := fmt.Sprintf("variants[%d]", i)
		subject := v.Type

		if v.Kind == "" || v.Tag == "" {
			res.AddError("missing_variant_name", "variant needs both kind and tag", subject, path)
			continue
		}

		checkUnique(kinds, v.Kind, "duplicate_kind", "kind", subject, path, res)
		checkUnique(tags, v.Tag, "duplicate_tag", "tag", subject, path, res)
		checkUnique(types, v.Type, "duplicate_type", "type", subject, path, res)

		for j, f := range v.Fields {
			validateField(f, subject, fmt.Sprintf("%s.fields[%d]", path, j), res)
		}

		if _, ok := c.Trait(v.Trait); !ok {
			res.AddError("unknown_trait", fmt.Sprintf("trait %q not found", v.Trait),
				subject, path+".trait", suggestions(v.Trait, names)...)

			continue
		}

		validateFieldNames(c, v, subject, path, res)
	}
}

func checkUnique(seen map[string]struct{}, value, code, what, subject, path string, res *diagnostic.Diagnostics) {
	if _, dup := seen[value]; dup {
		res.AddError(code, fmt.Sprintf("%s %q used by more than one variant", what, value), subject, path)
		return
	}

	seen[value] = struct{}{}
}

// validateFieldNames reports JSON keys that appear more than once in the
// composed field set of a variant.
func validateFieldNames(c *Catalog, v *Variant, subject, path string, res *diagnostic.Diagnostics) {
	chain, err := c.Chain(v.Trait)
	if err != nil {
		// cycles and unknown parents are reported on the traits
		return
	}

	owner := map[string]string{"type": "discriminator"}

	check := func(f Field, level string) {
		if prev, dup := owner[f.Name]; dup {
			res.AddError("duplicate_field",
				fmt.Sprintf("field %q already declared by %s", f.Name, prev), subject, path)

			return
		}

		owner[f.Name] = level
	}

	for _, t := range chain {
		for _, f := range t.Fields {
			check(f, t.Name)
		}
	}

	for _, f := range v.Fields {
		check(f, v.Type)
	}
}

func validateField(f Field, subject, path string, res *diagnostic.Diagnostics) {
	if f.Name == "" {
		res.AddError("missing_field_name", "field has no name", subject, path)
		return
	}

	switch f.Type.Kind {
	case TypeInvalid:
		res.AddError("invalid_field_type", fmt.Sprintf("field %q has no valid type", f.Name), subject, path)
	case TypeEnum, TypeValue, TypeList:
		if f.Type.Elem == "" {
			res.AddError("invalid_field_type",
				fmt.Sprintf("field %q needs an element type", f.Name), subject, path)
		}
	}

	if f.Adder != "" && !f.Type.IsNested() {
		res.AddError("invalid_adder",
			fmt.Sprintf("field %q has an adder but is not a property map", f.Name), subject, path)
	}

	if f.Required && f.Type.Kind == TypeAny {
		res.AddWarning("required_any", fmt.Sprintf("required field %q accepts any value", f.Name), subject, path)
	}
}

func suggestions(name string, candidates []string) []string {
	if s, ok := match.Suggest(name, candidates); ok {
		return []string{s}
	}

	return nil
}
