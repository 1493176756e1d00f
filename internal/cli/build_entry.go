package prodsight

import (
	"fmt"
	"io"

	"github.com/mwiater/prodsight/internal/appconfig"
	"github.com/mwiater/prodsight/internal/logging"
	"github.com/mwiater/prodsight/internal/report"
	"github.com/mwiater/prodsight/internal/util"
)

// runBuild writes the HTML dashboard and returns the path written.
func runBuild(out io.Writer, cfg appconfig.Config) (string, error) {
	_, d, err := buildDashboard(cfg)
	if err != nil {
		return "", err
	}
	page, err := report.Generate(d)
	if err != nil {
		return "", err
	}
	path := cfg.HTMLOutputPath()
	if err := util.WriteFile(path, []byte(page)); err != nil {
		return "", fmt.Errorf("write dashboard: %w", err)
	}
	logging.LogEvent("dashboard written to %s (seed %d)", path, d.Seed)
	fmt.Fprintf(out, "%s %s\n", successText("Dashboard written:"), path)
	return path, nil
}
