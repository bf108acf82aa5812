package mapping

import (
	"maps"
	"slices"
)

func deref[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}

	return *p, true
}

// valueOf reads a required field, which is always set on a built value.
func valueOf[T any](p *T) T {
	v, _ := deref(p)
	return v
}

func cloneStringsMap(m map[string][]string) map[string][]string {
	if m == nil {
		return nil
	}

	out := make(map[string][]string, len(m))
	for k, v := range m {
		out[k] = slices.Clone(v)
	}

	return out
}

// withEntry returns a copy of m with name set to p.
func withEntry(m map[string]Property, name string, p Property) map[string]Property {
	out := maps.Clone(m)
	if out == nil {
		out = make(map[string]Property, 1)
	}

	out[name] = p

	return out
}
