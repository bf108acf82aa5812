package catalog

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a catalog file from the given path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	applyDefaults(&c)

	return &c, nil
}

// applyDefaults fills in names left to convention.
func applyDefaults(c *Catalog) {
	if c.Version == "" {
		c.Version = "1"
	}

	for i := range c.Traits {
		fillGoNames(c.Traits[i].Fields)
	}

	for i := range c.Variants {
		v := &c.Variants[i]
		if v.Type == "" {
			v.Type = v.Kind + "Property"
		}

		fillGoNames(v.Fields)
	}
}

func fillGoNames(fields []Field) {
	for i := range fields {
		if fields[i].GoName == "" {
			fields[i].GoName = GoName(fields[i].Name)
		}
	}
}

// Marshal serializes a Catalog to YAML.
func Marshal(c *Catalog) ([]byte, error) {
	return yaml.Marshal(c)
}
