package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMapping = "../../mapping/testdata/mapping.json"

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd()

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestKinds(t *testing.T) {
	out, _, err := execute(t, "kinds")
	require.NoError(t, err)
	assert.Contains(t, out, "TYPE")
	assert.Contains(t, out, "KeywordProperty")
	assert.Contains(t, out, "PropertyBase > CorePropertyBase > DocValuesPropertyBase > NumberPropertyBase > StandardNumberPropertyBase")

	out, _, err = execute(t, "kinds", "dense_vector")
	require.NoError(t, err)
	assert.Regexp(t, `dims\s+integer\s+yes`, out)

	_, _, err = execute(t, "kinds", "dense_vectr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "dense_vector"?`)
}

func TestFmtYAML(t *testing.T) {
	in := writeFile(t, "m.json", `{"properties":{"b":{"type":"keyword","ignore_above":"10"},"a":{"type":"text"}}}`)

	out, _, err := execute(t, "fmt", in, "--output", "yaml")
	require.NoError(t, err)
	assert.Equal(t, "properties:\n  a:\n    type: text\n  b:\n    type: keyword\n    ignore_above: 10\n", out)
}

func TestFmtJSONIndent(t *testing.T) {
	in := writeFile(t, "m.yaml", "properties:\n  a: {type: text}\n")

	out, _, err := execute(t, "fmt", in, "--indent", "4")
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"properties\": {\n        \"a\": {\n            \"type\": \"text\"\n        }\n    }\n}\n", out)
}

func TestFmtWrite(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out.yaml")

	_, _, err := execute(t, "fmt", testMapping, "--write", dst)
	require.NoError(t, err)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Contains(t, string(data), "dynamic: strict")
}

func TestCheck(t *testing.T) {
	out, _, err := execute(t, "check", testMapping)
	require.NoError(t, err)
	assert.Equal(t, "1 files ok\n", out)

	bad := writeFile(t, "bad.json", `{"properties":{"a":{"type":"alias","path":"nowhere"}}}`)

	_, logs, err := execute(t, "check", testMapping, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 files failed")
	assert.Contains(t, logs, "unresolved_alias")

	unknown := writeFile(t, "unknown.json", `{"properties":{"a":{"type":"keyword","nul_value":"x"}}}`)

	_, logs, err = execute(t, "check", unknown)
	require.Error(t, err)
	assert.Contains(t, logs, "null_value")
}

func TestCheckWarnings(t *testing.T) {
	in := writeFile(t, "warn.json", `{"properties":{"t":{"type":"text","fielddata":true}}}`)

	_, _, err := execute(t, "check", in)
	require.NoError(t, err)

	_, _, err = execute(t, "check", in, "--warnings-as-errors")
	require.Error(t, err)
}

func TestSchema(t *testing.T) {
	out, _, err := execute(t, "schema")
	require.NoError(t, err)
	assert.Contains(t, out, `"$ref": "#/$defs/Property"`)

	out, _, err = execute(t, "schema", "--type-mapping", "--output", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "$ref: '#/$defs/TypeMapping'")
}

func TestConfigFile(t *testing.T) {
	cfg := writeFile(t, "mappingctl.toml", "output = \"yaml\"\ntext_numbers = false\n")
	in := writeFile(t, "m.json", `{"properties":{"a":{"type":"keyword","ignore_above":"10"}}}`)

	_, _, err := execute(t, "--config", cfg, "fmt", in)
	require.Error(t, err)

	in = writeFile(t, "ok.json", `{"properties":{"a":{"type":"keyword"}}}`)

	out, _, err := execute(t, "--config", cfg, "fmt", in)
	require.NoError(t, err)
	assert.Equal(t, "properties:\n  a:\n    type: keyword\n", out)

	_, _, err = execute(t, "--output", "xml", "kinds")
	require.Error(t, err)
}

func TestReportFailure(t *testing.T) {
	var buf bytes.Buffer

	reportFailure(&buf, errors.New("no such file"))
	assert.Contains(t, buf.String(), "mappingctl failed")
	assert.Contains(t, buf.String(), "no such file")
}
