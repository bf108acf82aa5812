// Package config loads the mappingctl settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"osmapping/internal/match"
	"osmapping/options"
)

// DefaultPath is read when no --config flag is given. A missing file at
// this path is not an error.
const DefaultPath = "mappingctl.toml"

// Output formats.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds the mappingctl settings.
type Config struct {
	Strict       bool   `toml:"strict"`
	TextNumbers  bool   `toml:"text_numbers"`
	TextualBools bool   `toml:"textual_bools"`
	Output       string `toml:"output"`
	Indent       int    `toml:"indent"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		TextNumbers:  true,
		TextualBools: true,
		Output:       OutputJSON,
		Indent:       2,
	}
}

var keys = []string{"strict", "text_numbers", "textual_bools", "output", "indent"}

// Load reads path over the defaults. An empty path means DefaultPath, which
// may be absent.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}

		return Config{}, fmt.Errorf("loading config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		key := undecoded[0].String()
		msg := fmt.Sprintf("unknown config key %q in %s", key, path)

		if s, ok := match.Suggest(key, keys); ok {
			msg += fmt.Sprintf(" (did you mean %q?)", s)
		}

		return Config{}, errors.New(msg)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch strings.ToLower(c.Output) {
	case OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("output must be %q or %q, got %q", OutputJSON, OutputYAML, c.Output)
	}

	if c.Indent < 0 || c.Indent > 8 {
		return fmt.Errorf("indent must be between 0 and 8, got %d", c.Indent)
	}

	return nil
}

// DecodeFlags translates the settings into decode options.
func (c Config) DecodeFlags() options.DecodeEnum {
	flags := options.DecodeNone

	if c.TextNumbers {
		flags = flags.With(options.DecodeTextNumber)
	}

	if c.TextualBools {
		flags = flags.With(options.DecodeTextualBool)
	}

	if c.Strict {
		flags = flags.With(options.DecodeUnknownStrict)
	}

	return flags
}

// Save writes c to path.
func Save(path string, c Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

// IsYAML reports whether YAML output is selected.
func (c Config) IsYAML() bool {
	return strings.EqualFold(c.Output, OutputYAML)
}
