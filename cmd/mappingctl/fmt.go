package main

import (
	"strings"

	"github.com/spf13/cobra"

	"osmapping/mapping"
)

func newFmtCmd(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Normalize a mapping document, optionally converting it between JSON and YAML",
		Long: `fmt decodes a mapping document and writes it back in canonical form:
"type" first, inherited attributes before own ones, map keys sorted.

With --write the result goes to a file whose extension selects the format;
otherwise it is printed in the configured output format.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tm, err := mapping.LoadFile(args[0], a.cfg.DecodeFlags())
			if err != nil {
				return err
			}

			if out != "" {
				if err := mapping.WriteFile(out, tm); err != nil {
					return err
				}

				a.log.Info().Str("from", args[0]).Str("to", out).Msg("written")

				return nil
			}

			data, err := a.encode(tm)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	cmd.Flags().StringVarP(&out, "write", "w", "", "write to this file instead of stdout")

	return cmd
}

func (a *app) encode(v any) ([]byte, error) {
	if a.cfg.IsYAML() {
		return mapping.MarshalYAML(v)
	}

	return mapping.MarshalIndentJSON(v, strings.Repeat(" ", a.cfg.Indent))
}

