package cmd

import (
	"github.com/spf13/cobra"
)

// startupCmd represents the startup command.
var startupCmd = newStartupCmd()

func newStartupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "startup [args...]",
		Short: "Register a scope from invocation arguments",
		Long: `Register the "startup" scope derived from the given invocation arguments:
arguments naming existing directories and files become the scope's paths,
flags are skipped, and the working directory is used when nothing path-like
was passed. The scope's paths are printed after registration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, err := workflow.AddStartupScope(args)
			if err != nil {
				return err
			}

			for _, path := range scope.Paths() {
				cmd.Println(path)
			}

			return nil
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(startupCmd)
}
