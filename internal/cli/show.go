// internal/cli/show.go
package prodsight

import (
	"github.com/spf13/cobra"
)

// showCmd represents the 'show' command group for displaying resources.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Group commands for displaying resources",
	Long:  `The 'show' command groups subcommands that display the merged configuration and the generated tables.`,
}

var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON configs are loaded properly and overridden by flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		raw, _ := cmd.Flags().GetBool("raw")
		runShowConfig(cmd.OutOrStdout(), raw)
	},
}

var showTablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Show the generated tables and synthetic label counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetBool("raw")
		return runShowTables(cmd.OutOrStdout(), getConfig(), raw)
	},
}

func init() {
	showConfigCmd.Flags().Bool("raw", false, "pretty-print the raw config struct")
	showTablesCmd.Flags().Bool("raw", false, "pretty-print the raw table rows")
	showCmd.AddCommand(showConfigCmd, showTablesCmd)
	rootCmd.AddCommand(showCmd)
}
