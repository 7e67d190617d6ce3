package cmd

import (
	"context"
	"io"
	"log"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	debug := false
	flags := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "projscan [dir]",
		Short: "Scan a directory for development projects and report on them.",
		Long: `Scan the immediate subdirectories of a root for development projects.

Each subdirectory is probed for marker files (pyproject.toml, uv.lock,
package.json, lockfiles, .git and friends), classified by ecosystem, and
listed with summary statistics. The scan is read-only and touches nothing.`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetFlags(log.LstdFlags | log.Lshortfile)
			if !debug {
				log.SetOutput(io.Discard)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}

			action, err := newScanAction(root, flags, cmd.Flags().Changed("limit"), cmd.OutOrStdout())
			if err != nil {
				return err
			}

			return action.Run(cmd.Context())
		},
		SilenceUsage: true,
	}

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enables debug/diagnostic logging")
	flags.Bind(cmd.Flags())

	cmd.AddCommand(newVersionCmd())

	return cmd
}

func Execute(ctx context.Context, args []string) error {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}
