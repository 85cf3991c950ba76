package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/scopes/internal/adapter"
)

// selectCmd represents the select command.
var selectCmd = newSelectCmd()

func newSelectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select [name]",
		Short: "Select the current scope",
		Long: `Select the current scope by name, or interactively when no name is given,
then print the selected scope's paths.

The interactive picker is a full-screen list on a terminal and falls back
to a plain numbered prompt when output is redirected.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if err := reg.SetCurrent(args[0]); err != nil {
					return err
				}
			} else {
				picker := adapter.NewPicker(cmd, adapter.IsTTY(os.Stdout))

				scope, err := workflow.SelectInteractive(picker)
				if err != nil {
					return err
				}

				if scope == nil {
					// Cancelled, nothing selected.
					return nil
				}
			}

			paths, err := reg.CurrentPaths()
			if err != nil {
				return err
			}

			for _, path := range paths {
				cmd.Println(path)
			}

			return nil
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(selectCmd)
}
