package catalog

import (
	"errors"
	"fmt"
	"sort"
)

// ErrTraitCycle is returned when trait parents form a cycle.
var ErrTraitCycle = errors.New("trait cycle detected")

// TraitOrder returns the traits sorted so that every parent precedes its
// children. Among independent traits declaration order is kept.
func (c *Catalog) TraitOrder() ([]Trait, error) {
	index := make(map[string]int, len(c.Traits))
	for i, t := range c.Traits {
		index[t.Name] = i
	}

	order, err := topoSort(len(c.Traits), func(i int) []int {
		if p, ok := index[c.Traits[i].Parent]; ok {
			return []int{p}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]Trait, len(order))
	for i, idx := range order {
		out[i] = c.Traits[idx]
	}

	return out, nil
}

// Chain returns the trait named name and all its ancestors, root first.
func (c *Catalog) Chain(name string) ([]Trait, error) {
	var chain []Trait

	seen := map[string]bool{}

	for name != "" {
		if seen[name] {
			return nil, fmt.Errorf("%w at %s", ErrTraitCycle, name)
		}

		seen[name] = true

		t, ok := c.Trait(name)
		if !ok {
			return nil, fmt.Errorf("unknown trait %q", name)
		}

		chain = append(chain, *t)
		name = t.Parent
	}

	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	return chain, nil
}

// AllFields returns every field of v in serialization order: inherited
// fields root first, then the variant's own fields.
func (c *Catalog) AllFields(v *Variant) ([]Field, error) {
	chain, err := c.Chain(v.Trait)
	if err != nil {
		return nil, fmt.Errorf("variant %s: %w", v.Tag, err)
	}

	var fields []Field
	for _, t := range chain {
		fields = append(fields, t.Fields...)
	}

	return append(fields, v.Fields...), nil
}

// topoSort returns indices in dependency order.
//
// depsFn(i) yields indices that must come before i. When several nodes are
// ready the smallest index wins, so the result is deterministic.
func topoSort(n int, depsFn func(i int) []int) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}

	indeg := make([]int, n)
	out := make([][]int, n)

	for i := range n {
		for _, d := range depsFn(i) {
			if d < 0 || d >= n {
				return nil, fmt.Errorf("dependency index out of range: %d depends on %d", i, d)
			}

			indeg[i]++
			out[d] = append(out[d], i)
		}
	}

	for i := range out {
		sort.Ints(out[i])
	}

	var ready []int

	for i := range n {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, n)

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]

		order = append(order, i)

		for _, j := range out[i] {
			indeg[j]--
			if indeg[j] == 0 {
				k := sort.SearchInts(ready, j)
				ready = append(ready, 0)
				copy(ready[k+1:], ready[k:])
				ready[k] = j
			}
		}
	}

	if len(order) != n {
		return nil, ErrTraitCycle
	}

	return order, nil
}
