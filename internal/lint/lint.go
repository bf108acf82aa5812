package lint

import (
	"fmt"
	"strings"

	"osmapping/internal/diagnostic"
	"osmapping/internal/match"
	"osmapping/mapping"
)

// Limits enforced by OpenSearch.
const (
	MaxDenseVectorDims = 16000
	MaxObjectDepth     = 20
)

// Diagnostic codes.
const (
	CodeUnresolvedAlias      = "unresolved_alias"
	CodeUnresolvedCopyTo     = "unresolved_copy_to"
	CodeMissingScalingFactor = "missing_scaling_factor"
	CodeNegativeIgnoreAbove  = "negative_ignore_above"
	CodeTextFielddata        = "text_fielddata"
	CodeDenseVectorDims      = "dense_vector_dims"
	CodeEmptyJoinRelations   = "empty_join_relations"
	CodeDepthExceeded        = "depth_exceeded"
)

type (
	copyToer      interface{ CopyTo() []string }
	ignoreAbover  interface{ IgnoreAbove() (int, bool) }
	propertyCheck func(c *checker, path string, p mapping.Property)
)

var checks = []propertyCheck{
	checkAlias,
	checkCopyTo,
	checkScaledFloat,
	checkIgnoreAbove,
	checkTextFielddata,
	checkDenseVector,
	checkJoin,
}

type checker struct {
	tm    *mapping.TypeMapping
	paths []string
	res   *diagnostic.Diagnostics
}

// Check runs every rule over the properties of tm.
func Check(tm *mapping.TypeMapping) *diagnostic.Diagnostics {
	c := &checker{tm: tm, res: &diagnostic.Diagnostics{}}

	_ = tm.Walk(func(path string, _ mapping.Property) error {
		c.paths = append(c.paths, path)
		return nil
	})

	_ = tm.Walk(func(path string, p mapping.Property) error {
		if p.IsZero() {
			return nil
		}

		for _, check := range checks {
			check(c, path, p)
		}

		if p.Kind().IsObjectLike() && depth(path) > MaxObjectDepth {
			c.res.AddWarning(CodeDepthExceeded,
				fmt.Sprintf("object nesting depth %d exceeds %d", depth(path), MaxObjectDepth),
				p.Kind().String(), path)

			return mapping.SkipChildren
		}

		return nil
	})

	return c.res
}

// CheckProperty runs every rule over a single property tree rooted at name.
func CheckProperty(name string, p mapping.Property) *diagnostic.Diagnostics {
	return Check(&mapping.TypeMapping{Properties: map[string]mapping.Property{name: p}})
}

func depth(path string) int {
	return strings.Count(path, ".") + 1
}

func (c *checker) suggest(target string) []string {
	if s, ok := match.Suggest(target, c.paths); ok {
		return []string{s}
	}

	return nil
}

func checkAlias(c *checker, path string, p mapping.Property) {
	alias, err := p.Alias()
	if err != nil {
		return
	}

	target, ok := alias.Path()
	if !ok || target == "" {
		c.res.AddError(CodeUnresolvedAlias, "alias has no path", p.Kind().String(), path)
		return
	}

	resolved, found := c.tm.Lookup(target)
	if !found {
		c.res.AddError(CodeUnresolvedAlias,
			fmt.Sprintf("alias path %q does not resolve", target),
			p.Kind().String(), path, c.suggest(target)...)

		return
	}

	if resolved.IsAlias() || resolved.Kind().IsObjectLike() {
		c.res.AddError(CodeUnresolvedAlias,
			fmt.Sprintf("alias path %q points to a %s field", target, resolved.Kind()),
			p.Kind().String(), path)
	}
}

func checkCopyTo(c *checker, path string, p mapping.Property) {
	v, ok := p.Variant().(copyToer)
	if !ok {
		return
	}

	for _, target := range v.CopyTo() {
		if _, found := c.tm.Lookup(target); !found {
			c.res.AddError(CodeUnresolvedCopyTo,
				fmt.Sprintf("copy_to target %q does not resolve", target),
				p.Kind().String(), path, c.suggest(target)...)
		}
	}
}

func checkScaledFloat(c *checker, path string, p mapping.Property) {
	sf, err := p.ScaledFloat()
	if err != nil {
		return
	}

	factor, ok := sf.ScalingFactor()
	if !ok {
		c.res.AddError(CodeMissingScalingFactor, "scaled_float requires scaling_factor", p.Kind().String(), path)
		return
	}

	if factor <= 0 {
		c.res.AddError(CodeMissingScalingFactor,
			fmt.Sprintf("scaling_factor must be positive, got %g", factor),
			p.Kind().String(), path)
	}
}

func checkIgnoreAbove(c *checker, path string, p mapping.Property) {
	v, ok := p.Variant().(ignoreAbover)
	if !ok {
		return
	}

	if n, set := v.IgnoreAbove(); set && n < 0 {
		c.res.AddError(CodeNegativeIgnoreAbove,
			fmt.Sprintf("ignore_above must not be negative, got %d", n),
			p.Kind().String(), path)
	}
}

func checkTextFielddata(c *checker, path string, p mapping.Property) {
	text, err := p.Text()
	if err != nil {
		return
	}

	if on, _ := text.Fielddata(); on {
		c.res.AddWarning(CodeTextFielddata,
			"fielddata on text fields can use significant heap; consider a keyword multi-field",
			p.Kind().String(), path)
	}
}

func checkDenseVector(c *checker, path string, p mapping.Property) {
	dv, err := p.DenseVector()
	if err != nil {
		return
	}

	if dims := dv.Dims(); dims < 1 || dims > MaxDenseVectorDims {
		c.res.AddError(CodeDenseVectorDims,
			fmt.Sprintf("dims must be between 1 and %d, got %d", MaxDenseVectorDims, dims),
			p.Kind().String(), path)
	}
}

func checkJoin(c *checker, path string, p mapping.Property) {
	join, err := p.Join()
	if err != nil {
		return
	}

	if len(join.Relations()) == 0 {
		c.res.AddWarning(CodeEmptyJoinRelations, "join field declares no relations", p.Kind().String(), path)
	}
}
