// Package yamlconv converts between YAML and JSON documents while keeping the
// order of object keys. The conversion walks yaml.Node trees, so it never
// round-trips through Go maps.
package yamlconv
