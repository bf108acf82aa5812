package mapping

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"osmapping/internal/yamlconv"
	"osmapping/options"
)

const (
	yamlIndent = 2
	filePerm   = 0o644
)

// ParseYAML decodes a root mapping object written as YAML. Keys keep the
// meaning they have in JSON.
func ParseYAML(data []byte, flags options.DecodeEnum) (*TypeMapping, error) {
	js, err := yamlconv.ToJSON(data)
	if err != nil {
		return nil, err
	}

	return DecodeTypeMapping(js, flags)
}

// ParsePropertyYAML decodes a single field mapping written as YAML.
func ParsePropertyYAML(data []byte, flags options.DecodeEnum) (Property, error) {
	js, err := yamlconv.ToJSON(data)
	if err != nil {
		return Property{}, err
	}

	return DecodeProperty(js, flags)
}

// MarshalYAML writes v, usually a *TypeMapping or a Property, as YAML in
// the key order of its JSON form.
func MarshalYAML(v any) ([]byte, error) {
	js, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	return yamlconv.FromJSON(js, yamlIndent)
}

// MarshalIndentJSON writes v as indented JSON without HTML escaping.
func MarshalIndentJSON(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// IsYAMLPath reports whether path has a YAML extension.
func IsYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}

	return false
}

// LoadFile reads a root mapping object from a JSON or YAML file, chosen by
// the file extension.
func LoadFile(path string, flags options.DecodeEnum) (*TypeMapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mapping file: %w", err)
	}

	var tm *TypeMapping
	if IsYAMLPath(path) {
		tm, err = ParseYAML(data, flags)
	} else {
		tm, err = DecodeTypeMapping(data, flags)
	}

	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return tm, nil
}

// WriteFile writes tm as YAML or indented JSON, chosen by the file extension.
func WriteFile(path string, tm *TypeMapping) error {
	var (
		data []byte
		err  error
	)

	if IsYAMLPath(path) {
		data, err = MarshalYAML(tm)
	} else {
		data, err = MarshalIndentJSON(tm, "  ")
	}

	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("writing mapping file: %w", err)
	}

	return nil
}
