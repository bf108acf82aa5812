// Package main provides mappingctl, a command line tool for OpenSearch field
// mappings: it lists the known field types, normalizes and converts mapping
// documents between JSON and YAML, checks them, and prints their JSON Schema.
package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"osmapping/internal/config"
)

type app struct {
	configPath string
	verbose    bool
	logJSON    bool
	strict     bool
	output     string
	indent     int

	cfg config.Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "mappingctl",
		Short: "Inspect, convert and check OpenSearch field mappings",
		Long: `mappingctl works with OpenSearch mapping documents in JSON or YAML.

Examples:
  # List field types and their inherited attribute levels
  mappingctl kinds

  # Convert a mapping to YAML
  mappingctl fmt mapping.json --output yaml

  # Strict decode and lint, non-zero exit on errors
  mappingctl check mapping.json other.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default ./"+config.DefaultPath+" if present)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	flags.BoolVar(&a.logJSON, "log-json", false, "log JSON lines instead of console output")
	flags.BoolVar(&a.strict, "strict", false, "reject unknown keys")
	flags.StringVarP(&a.output, "output", "o", "", "output format: json|yaml")
	flags.IntVar(&a.indent, "indent", 0, "indent width")

	root.AddCommand(
		newKindsCmd(a),
		newFmtCmd(a),
		newCheckCmd(a),
		newSchemaCmd(a),
	)

	return root
}

// setup merges defaults, the config file and flags, in that order.
func (a *app) setup(cmd *cobra.Command) error {
	a.log = newLogger(cmd.ErrOrStderr(), a.verbose, a.logJSON)

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("strict") {
		cfg.Strict = a.strict
	}

	if flags.Changed("output") {
		cfg.Output = a.output
	}

	if flags.Changed("indent") {
		cfg.Indent = a.indent
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log.Debug().
		Bool("strict", cfg.Strict).
		Str("output", cfg.Output).
		Int("indent", cfg.Indent).
		Msg("configuration")

	return nil
}

func newLogger(w io.Writer, verbose, asJSON bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	if !asJSON {
		w = zerolog.ConsoleWriter{Out: w}
	}

	return zerolog.New(w).With().Timestamp().Logger().Level(level)
}

func reportFailure(w io.Writer, err error) {
	log := newLogger(w, false, false)
	log.Error().Err(err).Msg("mappingctl failed")
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		reportFailure(os.Stderr, err)
		os.Exit(1)
	}
}
