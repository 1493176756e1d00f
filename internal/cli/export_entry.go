package prodsight

import (
	"bytes"
	"fmt"
	"io"

	"github.com/mwiater/prodsight/internal/appconfig"
	"github.com/mwiater/prodsight/internal/chartrender"
	"github.com/mwiater/prodsight/internal/export"
	"github.com/mwiater/prodsight/internal/logging"
	"github.com/mwiater/prodsight/internal/util"
)

func runExportTables(out io.Writer, cfg appconfig.Config, format, output string) error {
	enc, err := resolveExportFormat(cfg, format)
	if err != nil {
		return err
	}
	ds, _, err := buildDashboard(cfg)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := export.Tables(&buf, ds, enc); err != nil {
		return err
	}
	return emit(out, buf.Bytes(), output)
}

func runExportViews(out io.Writer, cfg appconfig.Config, format, output string) error {
	enc, err := resolveExportFormat(cfg, format)
	if err != nil {
		return err
	}
	_, d, err := buildDashboard(cfg)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := export.Views(&buf, d, enc); err != nil {
		return err
	}
	return emit(out, buf.Bytes(), output)
}

// runExportCharts renders every chart into the configured directory.
func runExportCharts(out io.Writer, cfg appconfig.Config) ([]string, error) {
	format, err := cfg.ChartImageFormat()
	if err != nil {
		return nil, err
	}
	_, d, err := buildDashboard(cfg)
	if err != nil {
		return nil, err
	}
	paths, err := chartrender.RenderAll(cfg.ChartsDirPath(), d, format)
	if err != nil {
		return paths, err
	}
	for _, p := range paths {
		fmt.Fprintf(out, "%s %s\n", successText("Chart written:"), p)
	}
	logging.LogEvent("exported %d %s charts to %s", len(paths), format, cfg.ChartsDirPath())
	return paths, nil
}

func resolveExportFormat(cfg appconfig.Config, flag string) (export.Format, error) {
	if flag != "" {
		return export.ParseFormat(flag)
	}
	return cfg.ExportEncoding()
}

// emit writes data to path, or to out when path is empty.
func emit(out io.Writer, data []byte, path string) error {
	if path == "" {
		_, err := out.Write(data)
		return err
	}
	if err := util.WriteFile(path, data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	logging.LogEvent("export written to %s", path)
	fmt.Fprintf(out, "%s %s\n", successText("Export written:"), path)
	return nil
}
