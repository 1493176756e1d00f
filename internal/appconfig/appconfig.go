// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mwiater/prodsight/internal/chartrender"
	"github.com/mwiater/prodsight/internal/export"
	"github.com/mwiater/prodsight/internal/fixtures"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// DefaultHTMLOutput is where `build` writes the dashboard page.
	DefaultHTMLOutput = "reports/dashboard.html"
	// DefaultChartsDir is where `export charts` writes images.
	DefaultChartsDir = "reports/charts"
	// DefaultAddr is the `serve` listen address.
	DefaultAddr = ":8080"
	// defaultLogFile is used when the config omits logFile.
	defaultLogFile = "prodsight.log"
)

// Config represents the top-level application configuration.
type Config struct {
	Seed         *int64 `json:"seed,omitempty"`
	Debug        bool   `json:"debug"`
	LogFile      string `json:"logFile,omitempty"`
	HTMLOutput   string `json:"htmlOutput,omitempty"`
	Addr         string `json:"addr,omitempty"`
	ChartsDir    string `json:"chartsDir,omitempty"`
	ChartFormat  string `json:"chartFormat,omitempty"`
	ExportFormat string `json:"exportFormat,omitempty"`
	Title        string `json:"title,omitempty"`
	ConfigPath   string `json:"-"`
}

// SeedValue returns the configured seed, or the default seed when unset.
func (c Config) SeedValue() int64 {
	if c.Seed == nil {
		return fixtures.DefaultSeed
	}
	return *c.Seed
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return defaultLogFile
}

// HTMLOutputPath returns the dashboard page path.
func (c Config) HTMLOutputPath() string {
	return orDefault(c.HTMLOutput, DefaultHTMLOutput)
}

// ListenAddr returns the HTTP listen address.
func (c Config) ListenAddr() string {
	return orDefault(c.Addr, DefaultAddr)
}

// ChartsDirPath returns the chart image output directory.
func (c Config) ChartsDirPath() string {
	return orDefault(c.ChartsDir, DefaultChartsDir)
}

// ChartImageFormat resolves chartFormat, defaulting to SVG.
func (c Config) ChartImageFormat() (chartrender.Format, error) {
	return chartrender.ParseFormat(orDefault(c.ChartFormat, string(chartrender.FormatSVG)))
}

// ExportEncoding resolves exportFormat, defaulting to JSON.
func (c Config) ExportEncoding() (export.Format, error) {
	return export.ParseFormat(orDefault(c.ExportFormat, string(export.FormatJSON)))
}

// Validate reports every out-of-range setting at once.
func (c Config) Validate() error {
	var problems []string
	if seed := c.SeedValue(); seed < 0 || seed > fixtures.MaxSeed {
		problems = append(problems, fmt.Sprintf("seed %d outside [0, %d]", seed, int64(fixtures.MaxSeed)))
	}
	if _, err := c.ChartImageFormat(); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := c.ExportEncoding(); err != nil {
		problems = append(problems, err.Error())
	}
	if len(problems) > 0 {
		return errors.New("invalid config: " + strings.Join(problems, "; "))
	}
	return nil
}

// Load reads the application configuration from the specified path.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("no configuration file found at %q", path)
		}
		return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	config.ConfigPath = path
	return config, nil
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
