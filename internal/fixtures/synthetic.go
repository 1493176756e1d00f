// internal/fixtures/synthetic.go
package fixtures

import (
	"fmt"
	"math"
	"slices"
)

// Range is a closed numeric interval.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Contains reports whether v lies in r.
func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

func (r Range) clamp(v float64) float64 { return math.Min(math.Max(v, r.Min), r.Max) }

// Pairing decides how the second coordinate of a segment is produced.
type Pairing int

const (
	// PairNoise adds Gaussian noise to the first coordinate, then clamps.
	PairNoise Pairing = iota
	// PairIndependent draws the second coordinate uniformly from its own range.
	PairIndependent
)

// Segment describes one labelled block of synthetic points.
type Segment struct {
	Label    string
	Count    int
	X        Range
	Pairing  Pairing
	Y        Range   // PairIndependent draw range
	NoiseStd float64 // PairNoise standard deviation
	Clamp    Range   // PairNoise clamp bounds
}

// Validate checks the segment parameters.
func (s Segment) Validate() error {
	if s.Count < 0 {
		return fmt.Errorf("%w: %s count %d is negative", ErrInvalidSegment, s.Label, s.Count)
	}
	if s.X.Min > s.X.Max {
		return fmt.Errorf("%w: %s x range [%g, %g] is inverted", ErrInvalidSegment, s.Label, s.X.Min, s.X.Max)
	}
	switch s.Pairing {
	case PairNoise:
		if s.NoiseStd < 0 {
			return fmt.Errorf("%w: %s noise std %g is negative", ErrInvalidSegment, s.Label, s.NoiseStd)
		}
		if s.Clamp.Min > s.Clamp.Max {
			return fmt.Errorf("%w: %s clamp [%g, %g] is inverted", ErrInvalidSegment, s.Label, s.Clamp.Min, s.Clamp.Max)
		}
	case PairIndependent:
		if s.Y.Min > s.Y.Max {
			return fmt.Errorf("%w: %s y range [%g, %g] is inverted", ErrInvalidSegment, s.Label, s.Y.Min, s.Y.Max)
		}
	default:
		return fmt.Errorf("%w: %s has unknown pairing %d", ErrInvalidSegment, s.Label, s.Pairing)
	}
	return nil
}

var trajectorySegments = []Segment{
	{Label: TrajectoryStableHigh, Count: 340, X: Range{4.2, 5.0}, Pairing: PairNoise, NoiseStd: 0.15, Clamp: Range{4.0, 5.0}},
	{Label: TrajectoryStableLow, Count: 114, X: Range{2.0, 3.9}, Pairing: PairNoise, NoiseStd: 0.2, Clamp: Range{1.5, 3.99}},
	{Label: TrajectoryRecovered, Count: 11, X: Range{3.5, 3.9}, Pairing: PairIndependent, Y: Range{4.0, 4.5}},
	{Label: TrajectoryDeclined, Count: 6, X: Range{4.3, 4.7}, Pairing: PairIndependent, Y: Range{3.5, 3.99}},
}

var clusterSegments = []Segment{
	{Label: ClusterElite, Count: 312, X: Range{4.2, 5.0}, Pairing: PairIndependent, Y: Range{0.3, 1.0}},
	{Label: ClusterHighRisk, Count: 159, X: Range{2.0, 4.2}, Pairing: PairIndependent, Y: Range{1.0, 1.8}},
}

// TrajectorySegments returns a copy of the trajectory segments in draw order.
func TrajectorySegments() []Segment { return slices.Clone(trajectorySegments) }

// ClusterSegments returns a copy of the cluster segments in draw order.
func ClusterSegments() []Segment { return slices.Clone(clusterSegments) }

type sample struct {
	x, y  float64
	label string
}

// drawSegment samples every x first, then every y, mirroring array-at-a-time sampling.
func drawSegment(g *Generator, s Segment) ([]sample, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	xs := g.UniformN(s.Count, s.X.Min, s.X.Max)
	var ys []float64
	switch s.Pairing {
	case PairNoise:
		noise := g.NormalN(s.Count, 0, s.NoiseStd)
		ys = make([]float64, s.Count)
		for i := range ys {
			ys[i] = s.Clamp.clamp(xs[i] + noise[i])
		}
	case PairIndependent:
		ys = g.UniformN(s.Count, s.Y.Min, s.Y.Max)
	}
	out := make([]sample, s.Count)
	for i := range out {
		out[i] = sample{x: xs[i], y: ys[i], label: s.Label}
	}
	return out, nil
}

func drawSegments(g *Generator, segments []Segment) ([]sample, error) {
	var all []sample
	for _, s := range segments {
		part, err := drawSegment(g, s)
		if err != nil {
			return nil, err
		}
		all = append(all, part...)
	}
	return all, nil
}

// Trajectories draws the early-vs-one-year table from g.
func Trajectories(g *Generator) ([]TrajectoryPoint, error) {
	return TrajectoriesFrom(g, trajectorySegments)
}

// TrajectoriesFrom draws trajectory points for arbitrary segments.
func TrajectoriesFrom(g *Generator, segments []Segment) ([]TrajectoryPoint, error) {
	samples, err := drawSegments(g, segments)
	if err != nil {
		return nil, fmt.Errorf("trajectories: %w", err)
	}
	out := make([]TrajectoryPoint, len(samples))
	for i, s := range samples {
		out[i] = TrajectoryPoint{EarlyRating: s.x, OneYearRating: s.y, Label: s.label}
	}
	return out, nil
}

// Clusters draws the rating-vs-volatility table from g.
func Clusters(g *Generator) ([]ClusterPoint, error) {
	return ClustersFrom(g, clusterSegments)
}

// ClustersFrom draws cluster points for arbitrary segments.
func ClustersFrom(g *Generator, segments []Segment) ([]ClusterPoint, error) {
	samples, err := drawSegments(g, segments)
	if err != nil {
		return nil, fmt.Errorf("clusters: %w", err)
	}
	out := make([]ClusterPoint, len(samples))
	for i, s := range samples {
		out[i] = ClusterPoint{EarlyRating: s.x, Volatility: s.y, Label: s.label}
	}
	return out, nil
}

// SegmentCounts returns label -> expected count for segments.
func SegmentCounts(segments []Segment) map[string]int {
	counts := make(map[string]int, len(segments))
	for _, s := range segments {
		counts[s.Label] += s.Count
	}
	return counts
}
