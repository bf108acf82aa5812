// Package main provides the propgen command, which renders the mapping
// package variants from catalog.yaml.
//
// It is meant to run through go generate in the mapping directory:
//
//	//go:generate go run ../cmd/propgen -catalog catalog.yaml -out properties_gen.go
package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"osmapping/internal/catalog"
	"osmapping/internal/diagnostic"
	"osmapping/internal/gen"
)

type flags struct {
	catalog    string
	out        string
	pkg        string
	noComments bool
	dump       bool
	check      bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:           "propgen",
		Short:         "Generate field mapping variants from a catalog",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.catalog, "catalog", "catalog.yaml", "variant catalog file")
	cmd.Flags().StringVar(&f.out, "out", "properties_gen.go", "output file")
	cmd.Flags().StringVar(&f.pkg, "package", "", "package name, overrides the catalog")
	cmd.Flags().BoolVar(&f.noComments, "no-comments", false, "omit doc comments")
	cmd.Flags().BoolVar(&f.dump, "dump", false, "print the resolved catalog and exit")
	cmd.Flags().BoolVar(&f.check, "check", false, "fail if the output file is out of date instead of writing it")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")

	return cmd
}

func run(cmd *cobra.Command, f *flags) error {
	log := newLogger(cmd.ErrOrStderr(), f.verbose)

	c, err := catalog.LoadFile(f.catalog)
	if err != nil {
		return err
	}

	log.Debug().Str("catalog", f.catalog).Int("traits", len(c.Traits)).Int("variants", len(c.Variants)).Msg("catalog loaded")

	diags := catalog.Validate(c)
	logDiagnostics(log, diags)

	if f.dump {
		spew.Fdump(cmd.OutOrStdout(), c)
		return nil
	}

	cfg := gen.DefaultGeneratorConfig()
	cfg.PackageName = f.pkg
	cfg.OutputDir = filepath.Dir(f.out)
	cfg.Filename = filepath.Base(f.out)
	cfg.GenerateComments = !f.noComments

	file, err := gen.NewGenerator(cfg).Generate(c)
	if err != nil {
		return err
	}

	if f.check {
		return gen.CheckFiles([]gen.GeneratedFile{*file}, cfg.OutputDir)
	}

	if err := gen.WriteFiles([]gen.GeneratedFile{*file}, cfg.OutputDir); err != nil {
		return err
	}

	log.Info().Str("file", f.out).Int("bytes", len(file.Content)).Msg("generated")

	return nil
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w}).
		With().
		Timestamp().
		Logger().
		Level(level)
}

func logDiagnostics(log zerolog.Logger, diags *diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		evt := log.Warn()
		if d.Severity == diagnostic.SeverityError {
			evt = log.Error()
		}

		evt.Str("code", d.Code).Str("subject", d.Subject).Str("path", d.Path).Msg(d.Message)
	}
}

func reportFailure(w io.Writer, err error) {
	log := newLogger(w, false)
	log.Error().Err(err).Msg("propgen failed")
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		reportFailure(os.Stderr, err)
		os.Exit(1)
	}
}
