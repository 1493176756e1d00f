// internal/cli/export.go
package prodsight

import (
	"github.com/spf13/cobra"
)

// exportCmd represents the 'export' command group.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Group commands for exporting tables, views and chart images",
	Long:  `The 'export' command groups subcommands that write the generated tables, the dashboard render tree, or static chart images to disk or stdout.`,
}

var exportTablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Export the seven dashboard tables as JSON or YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, output := exportFlags(cmd)
		return runExportTables(cmd.OutOrStdout(), getConfig(), format, output)
	},
}

var exportViewsCmd = &cobra.Command{
	Use:   "views",
	Short: "Export the dashboard render tree as JSON or YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, output := exportFlags(cmd)
		return runExportViews(cmd.OutOrStdout(), getConfig(), format, output)
	},
}

var exportChartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "Render every chart to SVG or PNG files",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()
		if cmd.Flags().Changed("dir") {
			cfg.ChartsDir, _ = cmd.Flags().GetString("dir")
		}
		if cmd.Flags().Changed("format") {
			cfg.ChartFormat, _ = cmd.Flags().GetString("format")
		}
		_, err := runExportCharts(cmd.OutOrStdout(), cfg)
		return err
	},
}

// exportFlags returns the --format and --output values; an empty format defers to config.
func exportFlags(cmd *cobra.Command) (string, string) {
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")
	return format, output
}

func init() {
	for _, c := range []*cobra.Command{exportTablesCmd, exportViewsCmd} {
		c.Flags().String("format", "", "json or yaml (default from config, else json)")
		c.Flags().StringP("output", "o", "", "output file (default stdout)")
		exportCmd.AddCommand(c)
	}
	exportChartsCmd.Flags().String("dir", "", "output directory (default reports/charts)")
	exportChartsCmd.Flags().String("format", "", "svg or png (default from config, else svg)")
	exportCmd.AddCommand(exportChartsCmd)

	rootCmd.AddCommand(exportCmd)
}
