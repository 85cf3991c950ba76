package cmd

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/scopes/internal/model"
)

// listCmd represents the list command.
var listCmd = newListCmd()
var listNamesFlag bool

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered scopes",
		Long:  "List every registered scope with its origin and path counts.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			scopes := reg.AllScopes()

			names := make([]string, 0, len(scopes))
			for name := range scopes {
				names = append(names, name)
			}

			sort.Strings(names)

			if listNamesFlag {
				for _, name := range names {
					cmd.Println(name)
				}

				return nil
			}

			if len(names) == 0 {
				cmd.Println("No scopes registered")
				return nil
			}

			renderScopeTable(cmd, names, scopes)

			return nil
		},
	}
	cmd.Flags().BoolVarP(&listNamesFlag, "names", "n", false, "print scope names only, one per line")

	return cmd
}

func renderScopeTable(cmd *cobra.Command, names []string, scopes map[string]*m.Scope) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Name", "Origin", "Dirs", "Files"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	for _, name := range names {
		scope := scopes[name]
		table.Append([]string{
			name,
			scope.Origin,
			fmt.Sprintf("%d", len(scope.Dirs)),
			fmt.Sprintf("%d", len(scope.Files)),
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(names)), "", "", ""})
	table.Render()

	cmd.Printf("%s", tableBuffer.String())
}

func init() {
	rootCmd.AddCommand(listCmd)
}
