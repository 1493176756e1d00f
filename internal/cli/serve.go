// internal/cli/serve.go
package prodsight

import (
	"github.com/spf13/cobra"
)

// serveCmd implements 'serve', which exposes the dashboard and its data over HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard, tables and charts over HTTP",
	Long:  `The 'serve' command starts an HTTP server that renders the dashboard page at / and exposes the tables, views and server-rendered charts under /api. It shuts down gracefully on SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()
		if cmd.Flags().Changed("addr") {
			cfg.Addr, _ = cmd.Flags().GetString("addr")
		}
		return runServe(cmd.Context(), cfg)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8080)")
	rootCmd.AddCommand(serveCmd)
}
