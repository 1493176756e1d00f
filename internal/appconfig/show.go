package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config, fallback Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	if cfg == nil {
		cfg = &fallback
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Seed:          %d\n", cfg.SeedValue())
	fmt.Fprintf(out, "  Debug:         %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Log File:      %s\n", cfg.LogFilePath())
	fmt.Fprintf(out, "  HTML Output:   %s\n", cfg.HTMLOutputPath())
	fmt.Fprintf(out, "  Listen Addr:   %s\n", cfg.ListenAddr())
	fmt.Fprintf(out, "  Charts Dir:    %s\n", cfg.ChartsDirPath())
	if f, err := cfg.ChartImageFormat(); err == nil {
		fmt.Fprintf(out, "  Chart Format:  %s\n", f)
	} else {
		fmt.Fprintf(out, "  Chart Format:  %s (invalid)\n", cfg.ChartFormat)
	}
	if f, err := cfg.ExportEncoding(); err == nil {
		fmt.Fprintf(out, "  Export Format: %s\n", f)
	} else {
		fmt.Fprintf(out, "  Export Format: %s (invalid)\n", cfg.ExportFormat)
	}
	if cfg.Title != "" {
		fmt.Fprintf(out, "  Title:         %s\n", cfg.Title)
	}
}
