// internal/export/export.go
// Package export serializes fixture tables and the dashboard render tree.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mwiater/prodsight/internal/dashboard"
	"github.com/mwiater/prodsight/internal/fixtures"
)

// Format is an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned by ParseFormat and the writers.
var ErrUnknownFormat = errors.New("export: unknown format")

// ErrUnknownTable is returned by Table for names outside TableNames.
var ErrUnknownTable = errors.New("export: unknown table")

// TableNames lists the exported tables in display order.
var TableNames = []string{
	"model_performance",
	"feature_importance",
	"category_failure",
	"alert_distribution",
	"complaint_patterns",
	"trajectories",
	"clusters",
}

// ParseFormat accepts json, yaml or yml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownFormat, s)
}

// Table returns one table of ds by its export name.
func Table(ds fixtures.Dataset, name string) (any, error) {
	switch name {
	case "model_performance":
		return ds.Models, nil
	case "feature_importance":
		return ds.Features, nil
	case "category_failure":
		return ds.Categories, nil
	case "alert_distribution":
		return ds.Alerts, nil
	case "complaint_patterns":
		return ds.Complaints, nil
	case "trajectories":
		return ds.Trajectories, nil
	case "clusters":
		return ds.Clusters, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownTable, name)
}

// Tables writes all seven tables of ds to w.
func Tables(w io.Writer, ds fixtures.Dataset, format Format) error {
	return encode(w, ds, format)
}

// Views writes the full render tree of d to w.
func Views(w io.Writer, d dashboard.Dashboard, format Format) error {
	return encode(w, d, format)
}

func encode(w io.Writer, v any, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w %q", ErrUnknownFormat, format)
}
