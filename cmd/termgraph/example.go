package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"termgraph/demo"
)

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Print the built-in scene as a JSON script",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), demo.GenerateExample())
			return err
		},
	}
}
