package main

import (
	"github.com/spf13/cobra"

	"osmapping/mapping"
)

func newSchemaCmd(a *app) *cobra.Command {
	var typeMapping bool

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of field mappings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := mapping.JSONSchema()
			if typeMapping {
				s = mapping.TypeMappingSchema()
			}

			data, err := a.encode(s)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	cmd.Flags().BoolVar(&typeMapping, "type-mapping", false, "describe a whole root mapping instead of one field")

	return cmd
}
