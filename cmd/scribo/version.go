package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joestump/scribo/internal/build"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "scribo", build.String())
		},
	}
}
