package mapping_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osmapping/mapping"
	"osmapping/options"
)

func TestLoadFileYAMLMatchesJSON(t *testing.T) {
	t.Parallel()

	fromJSON := loadTestMapping(t)

	fromYAML, err := mapping.LoadFile(filepath.Join("testdata", "mapping.yaml"), options.DecodeStrict)
	require.NoError(t, err)

	a, err := json.Marshal(fromJSON)
	require.NoError(t, err)

	b, err := json.Marshal(fromYAML)
	require.NoError(t, err)

	assert.Equal(t, string(a), string(b))
}

func TestParsePropertyYAML(t *testing.T) {
	t.Parallel()

	p, err := mapping.ParsePropertyYAML([]byte("type: keyword\nnull_value: \"N/A\"\nignore_above: 256\n"), options.DecodeNone)
	require.NoError(t, err)

	out, err := mapping.MarshalYAML(p)
	require.NoError(t, err)
	assert.Equal(t, "type: keyword\nignore_above: 256\nnull_value: N/A\n", string(out))
}

func TestParseYAMLErrors(t *testing.T) {
	t.Parallel()

	_, err := mapping.ParseYAML([]byte("properties:\n  a: {type: keywrd}\n"), options.DecodeDefault)

	var unknown *mapping.UnknownVariantError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "keyword", unknown.Suggestion)

	_, err = mapping.ParseYAML([]byte("properties: [\n"), options.DecodeDefault)
	require.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	tm := loadTestMapping(t)
	dir := t.TempDir()

	for _, name := range []string{"out.json", "out.yml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, mapping.WriteFile(path, tm))

		back, err := mapping.LoadFile(path, options.DecodeStrict)
		require.NoError(t, err, name)
		assert.Equal(t, tm, back, name)
	}
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()

	_, err := mapping.LoadFile(filepath.Join("testdata", "nope.json"), options.DecodeDefault)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading mapping file")
}

func TestIsYAMLPath(t *testing.T) {
	t.Parallel()

	assert.True(t, mapping.IsYAMLPath("a.yaml"))
	assert.True(t, mapping.IsYAMLPath("A.YML"))
	assert.False(t, mapping.IsYAMLPath("a.json"))
	assert.False(t, mapping.IsYAMLPath("yaml"))
}
