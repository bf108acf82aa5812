package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"osmapping/internal/diagnostic"
	"osmapping/internal/lint"
	"osmapping/mapping"
	"osmapping/options"
)

func newCheckCmd(a *app) *cobra.Command {
	var warningsAsErrors bool

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Decode mapping documents strictly and lint them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0

			for _, path := range args {
				ok := a.checkFile(path, warningsAsErrors)
				if !ok {
					failed++
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d files ok\n", len(args))

			return nil
		},
	}

	cmd.Flags().BoolVar(&warningsAsErrors, "warnings-as-errors", false, "fail on lint warnings too")

	return cmd
}

func (a *app) checkFile(path string, warningsAsErrors bool) bool {
	flags := a.cfg.DecodeFlags().With(options.DecodeUnknownStrict)

	tm, err := mapping.LoadFile(path, flags)
	if err != nil {
		evt := a.log.Error().Str("file", path).Err(err)

		var fe *mapping.FieldError
		if errors.As(err, &fe) {
			evt = evt.Str("path", fe.Path)
		}

		evt.Msg("decode failed")

		return false
	}

	diags := lint.Check(tm)
	for _, d := range diags.All() {
		evt := a.log.Warn()
		if d.Severity == diagnostic.SeverityError {
			evt = a.log.Error()
		}

		evt.Str("file", path).
			Str("code", d.Code).
			Str("path", d.Path).
			Str("severity", d.Severity.String()).
			Strs("suggestions", d.Suggestions).
			Msg(d.Message)
	}

	if diags.HasErrors() || (warningsAsErrors && len(diags.Warnings) > 0) {
		return false
	}

	a.log.Debug().Str("file", path).Msg("ok")

	return true
}
