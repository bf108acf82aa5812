package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osmapping/options"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "mappingctl.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, options.DecodeDefault, cfg.DecodeFlags())
	assert.False(t, cfg.IsYAML())
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "strict = true\ntext_numbers = false\noutput = \"yaml\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Strict)
	assert.False(t, cfg.TextNumbers)
	assert.True(t, cfg.TextualBools, "unset keys keep their default")
	assert.Equal(t, 2, cfg.Indent)
	assert.True(t, cfg.IsYAML())
	assert.Equal(t, options.DecodeTextualBool|options.DecodeUnknownStrict, cfg.DecodeFlags())
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown key", "stirct = true\n", `did you mean "strict"?`},
		{"bad output", "output = \"xml\"\n", "output must be"},
		{"bad indent", "indent = 12\n", "indent must be between"},
		{"bad syntax", "strict = \n", "loading config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.toml")
	cfg := Default()
	cfg.Strict = true
	cfg.Indent = 4

	require.NoError(t, Save(path, cfg))

	back, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}
