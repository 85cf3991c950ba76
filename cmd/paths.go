package cmd

import (
	"github.com/spf13/cobra"
)

// pathsCmd and dirsCmd print the active scope's locations one per line,
// shaped for piping into external tools.
var pathsCmd = newPathsCmd()
var dirsCmd = newDirsCmd()

func newPathsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths [name]",
		Short: "Print the current scope's paths",
		Long:  "Print the current scope's directories followed by its files, one per line.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := selectIfNamed(args); err != nil {
				return err
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

func newDirsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dirs [name]",
		Short: "Print the current scope's directories",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := selectIfNamed(args); err != nil {
				return err
			}

			dirs, err := reg.CurrentDirs()
			if err != nil {
				return err
			}

			for _, dir := range dirs {
				cmd.Println(dir)
			}

			return nil
		},
	}

	return cmd
}

// selectIfNamed makes the named scope current when a name argument was
// given; otherwise the selection from the config file (if any) stands.
func selectIfNamed(args []string) error {
	if len(args) == 0 {
		return nil
	}

	return reg.SetCurrent(args[0])
}

func init() {
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(dirsCmd)
}
