// internal/cli/browse.go
package prodsight

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/prodsight/internal/tui"
)

// browseCmd implements 'browse', which opens the dashboard in the terminal.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the dashboard views in the terminal",
	Long:  `The 'browse' command opens a full-screen terminal browser with one tab per dashboard view. Use left/right or tab to switch views, up/down to scroll, and q to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, d, err := buildDashboard(getConfig())
		if err != nil {
			return err
		}
		return tui.Start(cmd.Context(), d)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
