package cmd

import (
	"fmt"

	"github.com/projscan/projscan/internal"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of projscan.",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "projscan version %s\n", internal.Version)
		},
	}
}
