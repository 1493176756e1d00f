// internal/cli/build.go
package prodsight

import (
	"github.com/spf13/cobra"
)

// buildCmd implements 'build', which writes the standalone HTML dashboard.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the dashboard to a standalone HTML file",
	Long:  `The 'build' command generates every table from the configured seed, assembles the four dashboard views and writes them as a single HTML page with embedded Chart.js charts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()
		if cmd.Flags().Changed("html-output") {
			cfg.HTMLOutput, _ = cmd.Flags().GetString("html-output")
		}
		_, err := runBuild(cmd.OutOrStdout(), cfg)
		return err
	},
}

func init() {
	buildCmd.Flags().String("html-output", "", "output path for the HTML dashboard (default reports/dashboard.html)")
	rootCmd.AddCommand(buildCmd)
}
