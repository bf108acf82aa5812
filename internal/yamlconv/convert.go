package yamlconv

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	tagNull  = "!!null"
	tagBool  = "!!bool"
	tagInt   = "!!int"
	tagFloat = "!!float"
	tagStr   = "!!str"
	tagMerge = "!!merge"
)

// ErrEmptyDocument is returned when the input holds no YAML document.
var ErrEmptyDocument = errors.New("empty document")

// ToJSON converts a single YAML document to compact JSON.
func ToJSON(data []byte) ([]byte, error) {
	var doc yaml.Node

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, ErrEmptyDocument
	}

	var buf bytes.Buffer
	if err := writeNode(&buf, doc.Content[0]); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func writeNode(buf *bytes.Buffer, n *yaml.Node) error {
	switch n.Kind {
	case yaml.DocumentNode:
		return writeNode(buf, n.Content[0])
	case yaml.AliasNode:
		return writeNode(buf, n.Alias)
	case yaml.MappingNode:
		return writeMapping(buf, n)
	case yaml.SequenceNode:
		buf.WriteByte('[')

		for i, item := range n.Content {
			if i > 0 {
				buf.WriteByte(',')
			}

			if err := writeNode(buf, item); err != nil {
				return err
			}
		}

		buf.WriteByte(']')

		return nil
	case yaml.ScalarNode:
		return writeScalar(buf, n)
	default:
		return fmt.Errorf("line %d: unsupported yaml node kind %d", n.Line, n.Kind)
	}
}

func writeMapping(buf *bytes.Buffer, n *yaml.Node) error {
	buf.WriteByte('{')

	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]

		if key.ShortTag() == tagMerge {
			return fmt.Errorf("line %d: merge keys are not supported", key.Line)
		}

		if key.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: object keys must be scalars", key.Line)
		}

		if i > 0 {
			buf.WriteByte(',')
		}

		if err := writeString(buf, key.Value); err != nil {
			return err
		}

		buf.WriteByte(':')

		if err := writeNode(buf, val); err != nil {
			return err
		}
	}

	buf.WriteByte('}')

	return nil
}

func writeScalar(buf *bytes.Buffer, n *yaml.Node) error {
	switch n.ShortTag() {
	case tagNull:
		buf.WriteString("null")
	case tagBool:
		var b bool
		if err := n.Decode(&b); err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}

		buf.WriteString(strconv.FormatBool(b))
	case tagInt:
		return writeInt(buf, n)
	case tagFloat:
		return writeFloat(buf, n)
	default:
		return writeString(buf, n.Value)
	}

	return nil
}

func writeInt(buf *bytes.Buffer, n *yaml.Node) error {
	if isJSONNumber(n.Value) {
		buf.WriteString(n.Value)
		return nil
	}

	var i int64
	if err := n.Decode(&i); err == nil {
		buf.WriteString(strconv.FormatInt(i, 10))
		return nil
	}

	var u uint64
	if err := n.Decode(&u); err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}

	buf.WriteString(strconv.FormatUint(u, 10))

	return nil
}

func writeFloat(buf *bytes.Buffer, n *yaml.Node) error {
	if isJSONNumber(n.Value) {
		buf.WriteString(n.Value)
		return nil
	}

	var f float64
	if err := n.Decode(&f); err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}

	if math.IsInf(f, 0) || math.IsNaN(f) {
		return fmt.Errorf("line %d: %s has no JSON representation", n.Line, n.Value)
	}

	buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))

	return nil
}

func writeString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(s); err != nil {
		return err
	}

	buf.Truncate(buf.Len() - 1)

	return nil
}

func isJSONNumber(s string) bool {
	if s == "" || s[0] == '+' || s[0] == '.' {
		return false
	}

	var n json.Number

	return json.Unmarshal([]byte(s), &n) == nil
}

// FromJSON converts a JSON document to YAML with the given indent.
func FromJSON(data []byte, indent int) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	root, err := readNode(dec)
	if err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("parse json: trailing data after document")
	}

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)

	if err := enc.Encode(root); err != nil {
		return nil, err
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func readNode(dec *json.Decoder) (*yaml.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return readMapping(dec)
		case '[':
			return readSequence(dec)
		default:
			return nil, fmt.Errorf("unexpected %q", t)
		}
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tagNull, Value: "null"}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tagBool, Value: strconv.FormatBool(t)}, nil
	case json.Number:
		tag := tagInt
		if strings.ContainsAny(t.String(), ".eE") {
			tag = tagFloat
		}

		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: t.String()}, nil
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tagStr, Value: t}, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func readMapping(dec *json.Decoder) (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key %v is not a string", tok)
		}

		val, err := readNode(dec)
		if err != nil {
			return nil, err
		}

		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: tagStr, Value: key}, val)
	}

	// closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return n, nil
}

func readSequence(dec *json.Decoder) (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}

	for dec.More() {
		item, err := readNode(dec)
		if err != nil {
			return nil, err
		}

		n.Content = append(n.Content, item)
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return n, nil
}
