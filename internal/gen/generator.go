package gen

import (
	"bytes"
	"fmt"
	"go/format"

	"osmapping/internal/catalog"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName overrides the package named by the catalog.
	PackageName string
	// OutputDir is where the generated file is written and where an
	// unformatted copy is left when formatting fails.
	OutputDir string
	// Filename is the name of the generated file.
	Filename string
	// GeneratorName appears in the "Code generated" header.
	GeneratorName string
	// CodecImport is the import path of the codec package.
	CodecImport string
	// OptionsImport is the import path of the decode options package.
	OptionsImport string
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		OutputDir:        ".",
		Filename:         "properties_gen.go",
		GeneratorName:    "propgen",
		CodecImport:      "osmapping/internal/codec",
		OptionsImport:    "osmapping/options",
		GenerateComments: true,
	}
}

// Generator generates the mapping package source from a variant catalog.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "properties_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate validates the catalog and renders it.
func (g *Generator) Generate(c *catalog.Catalog) (*GeneratedFile, error) {
	if diags := catalog.Validate(c); diags.HasErrors() {
		return nil, fmt.Errorf("invalid catalog: %w", diags.Error())
	}

	data, err := buildFileData(c, g.config)
	if err != nil {
		return nil, fmt.Errorf("resolving catalog: %w", err)
	}

	var buf bytes.Buffer
	if err := propertiesTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort debug output, ignoring any errors
		_ = writeDebugUnformatted(g.config.OutputDir, g.config.Filename, buf.Bytes())

		return nil, fmt.Errorf("formatting generated code: %w", err)
	}

	return &GeneratedFile{Filename: g.config.Filename, Content: formatted}, nil
}
