package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/tatianab/textr/internal/games"
)

var nameStyle = lipgloss.NewStyle().Bold(true)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the bundled games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, e := range games.All() {
				fmt.Fprintf(out, "%-8s %s\n", nameStyle.Render(e.Name), e.Title)
				fmt.Fprintf(out, "         %s\n", e.Summary)
			}
			return nil
		},
	}
}
