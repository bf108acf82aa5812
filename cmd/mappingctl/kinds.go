package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"osmapping/mapping"
)

func newKindsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds [type]",
		Short: "List field types, or the attributes of one type",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			if len(args) == 0 {
				fmt.Fprintln(w, "TYPE\tGO TYPE\tTRAITS")

				for _, k := range mapping.Kinds() {
					fmt.Fprintf(w, "%s\t%s\t%s\n", k, k.TypeName(), strings.Join(k.Traits(), " > "))
				}

				return w.Flush()
			}

			var k mapping.Kind
			if err := k.UnmarshalText([]byte(args[0])); err != nil {
				return err
			}

			a.log.Debug().Str("kind", k.String()).Msg("describing kind")

			fmt.Fprintln(w, "ATTRIBUTE\tJSON TYPE\tREQUIRED")

			for _, f := range k.Fields() {
				req := ""
				if f.Required {
					req = "yes"
				}

				fmt.Fprintf(w, "%s\t%s\t%s\n", f.Name, f.Type, req)
			}

			return w.Flush()
		},
	}
}
