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

const catalogPath = "../../mapping/catalog.yaml"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestGenerateWritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "props.go")

	_, err := execute(t, "--catalog", catalogPath, "--out", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("// Code generated by propgen. DO NOT EDIT.")))

	_, err = execute(t, "--catalog", catalogPath, "--out", out, "--check")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(out, []byte("package mapping\n"), 0o600))

	_, err = execute(t, "--catalog", catalogPath, "--out", out, "--check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of date at line 1")

	_, err = execute(t, "--catalog", catalogPath, "--out", filepath.Join(t.TempDir(), "none.go"), "--check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is missing")
}

func TestDump(t *testing.T) {
	out, err := execute(t, "--catalog", catalogPath, "--dump")
	require.NoError(t, err)
	assert.Contains(t, out, "dense_vector")
	assert.Contains(t, out, "StandardNumberPropertyBase")
}

func TestInvalidCatalog(t *testing.T) {
	_, err := execute(t, "--catalog", "../../internal/catalog/testdata/broken.yaml", "--out", filepath.Join(t.TempDir(), "x.go"))
	require.Error(t, err)
}

func TestReportFailure(t *testing.T) {
	var buf bytes.Buffer

	reportFailure(&buf, errors.New("catalog not found"))
	assert.Contains(t, buf.String(), "propgen failed")
	assert.Contains(t, buf.String(), "catalog not found")
}
