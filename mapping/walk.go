package mapping

import (
	"errors"
	"strings"

	"osmapping/internal/codec"
)

// SkipChildren can be returned by a WalkFunc to skip the nested properties
// and multi-fields of the current property.
var SkipChildren = errors.New("skip children")

// WalkFunc is called for every property reached by Walk. path is the dotted
// path from the root, e.g. "user.name.raw".
type WalkFunc func(path string, p Property) error

// Walk visits props depth first in key order. For each property the nested
// properties are visited before its multi-fields. Walk stops at the first
// error returned by fn, other than SkipChildren, and returns it.
func Walk(props map[string]Property, fn WalkFunc) error {
	return walk("", props, fn)
}

func walk(prefix string, props map[string]Property, fn WalkFunc) error {
	for _, name := range codec.SortedKeys(props) {
		p := props[name]
		path := joinPath(prefix, name)

		err := fn(path, p)
		if errors.Is(err, SkipChildren) {
			continue
		}

		if err != nil {
			return err
		}

		if p.IsZero() {
			continue
		}

		base := p.variant.baseFields()

		if err := walk(path, base.properties, fn); err != nil {
			return err
		}

		if err := walk(path, base.fields, fn); err != nil {
			return err
		}
	}

	return nil
}

// Lookup resolves a dotted path against props. Each segment is looked up in
// the nested properties first, then in the multi-fields.
func Lookup(props map[string]Property, path string) (Property, bool) {
	if path == "" {
		return Property{}, false
	}

	var (
		cur   Property
		found bool
	)

	for _, seg := range strings.Split(path, ".") {
		if !found {
			cur, found = props[seg]
			if !found {
				return Property{}, false
			}

			continue
		}

		if cur.IsZero() {
			return Property{}, false
		}

		base := cur.variant.baseFields()

		next, ok := base.properties[seg]
		if !ok {
			next, ok = base.fields[seg]
		}

		if !ok {
			return Property{}, false
		}

		cur = next
	}

	return cur, true
}

// Walk visits the properties of tm. See the package level Walk.
func (tm *TypeMapping) Walk(fn WalkFunc) error {
	return Walk(tm.Properties, fn)
}

// Lookup resolves a dotted path such as "user.name.raw" in tm.
func (tm *TypeMapping) Lookup(path string) (Property, bool) {
	return Lookup(tm.Properties, path)
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}

	return prefix + "." + name
}
