// Package cmd provides the root command and CLI setup for scopes.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/scopes/internal/adapter"
	"github.com/mouse-blink/scopes/internal/domain"
	m "github.com/mouse-blink/scopes/internal/model"
	"github.com/mouse-blink/scopes/internal/registry"
)

var fsAdapter adapter.WorkspaceFS
var gitRunner adapter.GitRunner
var configLoader adapter.ConfigLoader
var reg *registry.Registry
var workflow *domain.Workflow

func init() {
	fsAdapter = adapter.NewLocalWorkspaceFS()
	gitRunner = adapter.NewLocalGitRunner()
	configLoader = adapter.NewViperConfigLoader()
	reg = registry.New()
	workflow = domain.NewWorkflow(fsAdapter, gitRunner, configLoader, reg)
}

var configFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scopes",
		Short: "Named-scope registry for project paths",
		Long: `Scopes tracks named sets of directories and files ("scopes") within a
project and exposes the currently selected scope's paths for consumption
by external tooling such as fuzzy file finders.

Scopes come from three places:
  - the project config file (scopes.json in the working directory)
  - npm workspace declarations in package.json
  - git diffs against branches or their merge-base ancestors`,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Setup(&m.Config{ConfigFilename: configFlag})
		},
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "project config filename, resolved in the working directory (default scopes.json)")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
