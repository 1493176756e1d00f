// internal/fixtures/dataset.go
// Package fixtures builds the fixed and seeded synthetic tables behind the dashboard.
package fixtures

import (
	"fmt"
	"math"

	"github.com/mwiater/prodsight/internal/theme"
)

// Options controls a build. The zero value is not valid; use DefaultOptions.
type Options struct {
	Seed    int64
	Palette theme.Palette
}

// DefaultOptions returns the seed and palette the published dashboard uses.
func DefaultOptions() Options {
	return Options{Seed: DefaultSeed, Palette: theme.DefaultPalette()}
}

// Build produces every table and validates the result. A validation error
// means the literal data is malformed and should abort startup.
func Build(opts Options) (Dataset, error) {
	g, err := NewGenerator(opts.Seed)
	if err != nil {
		return Dataset{}, err
	}
	trajectories, err := Trajectories(g)
	if err != nil {
		return Dataset{}, err
	}
	clusters, err := Clusters(g)
	if err != nil {
		return Dataset{}, err
	}

	ds := Dataset{
		Seed:         opts.Seed,
		Models:       ModelPerformanceTable(),
		Features:     FeatureImportanceTable(),
		Categories:   CategoryFailureTable(opts.Palette),
		Alerts:       AlertDistributionTable(opts.Palette),
		Complaints:   ComplaintPatternTable(),
		Trajectories: trajectories,
		Clusters:     clusters,
	}
	if err := Validate(ds); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}

// MustBuild is Build for callers that treat malformed fixtures as a programming error.
func MustBuild(opts Options) Dataset {
	ds, err := Build(opts)
	if err != nil {
		panic(fmt.Sprintf("fixtures: %v", err))
	}
	return ds
}

// LabelShare is the size of one label group within a synthetic table.
type LabelShare struct {
	Label   string  `json:"label" yaml:"label"`
	Count   int     `json:"count" yaml:"count"`
	Percent float64 `json:"percent" yaml:"percent"`
}

// Summary condenses the synthetic tables for captions and CLI output.
type Summary struct {
	Trajectories []LabelShare `json:"trajectories" yaml:"trajectories"`
	Clusters     []LabelShare `json:"clusters" yaml:"clusters"`
	AlertTotal   int          `json:"alert_total" yaml:"alert_total"`
}

// Summary counts labels in segment order and rounds shares to one decimal.
func (ds Dataset) Summary() Summary {
	trajLabels := make([]string, len(ds.Trajectories))
	for i, p := range ds.Trajectories {
		trajLabels[i] = p.Label
	}
	clusterLabels := make([]string, len(ds.Clusters))
	for i, p := range ds.Clusters {
		clusterLabels[i] = p.Label
	}
	total := 0
	for _, a := range ds.Alerts {
		total += a.Count
	}
	return Summary{
		Trajectories: shares(trajLabels, trajectorySegments),
		Clusters:     shares(clusterLabels, clusterSegments),
		AlertTotal:   total,
	}
}

func shares(labels []string, order []Segment) []LabelShare {
	counts := make(map[string]int)
	for _, l := range labels {
		counts[l]++
	}
	out := make([]LabelShare, 0, len(order))
	for _, s := range order {
		pct := 0.0
		if len(labels) > 0 {
			pct = math.Round(float64(counts[s.Label])/float64(len(labels))*1000) / 10
		}
		out = append(out, LabelShare{Label: s.Label, Count: counts[s.Label], Percent: pct})
	}
	return out
}

// NormalizedImportance rescales importances so they sum to one.
func NormalizedImportance(features []FeatureImportance) []FeatureImportance {
	sum := 0.0
	for _, f := range features {
		sum += f.Importance
	}
	out := make([]FeatureImportance, len(features))
	for i, f := range features {
		out[i] = f
		if sum > 0 {
			out[i].Importance = f.Importance / sum
		}
	}
	return out
}
