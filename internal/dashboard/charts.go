// internal/dashboard/charts.go
package dashboard

import (
	"github.com/mwiater/prodsight/internal/fixtures"
	"github.com/mwiater/prodsight/internal/theme"
)

// Chart IDs are stable so the HTML, SVG and HTTP surfaces can address charts.
const (
	ChartIDModelPerformance  = "model-performance"
	ChartIDFeatureImportance = "feature-importance"
	ChartIDAlertDistribution = "alert-distribution"
	ChartIDCategoryFailure   = "category-failure"
	ChartIDComplaintPatterns = "complaint-patterns"
	ChartIDTrajectories      = "trajectories"
	ChartIDClusters          = "clusters"
)

// Fixed scale stops of the two continuous-color bar charts.
var (
	ImportanceScale = ColorScale{From: "#146EB4", To: "#F0C14B"}
	ComplaintScale  = ColorScale{From: "#8b1a04", To: "#B12704"}
)

// FailureThreshold is the one-year rating below which a product counts as failed.
const FailureThreshold = 4.0

// VolatilityThreshold is the early-rating standard deviation of the warning rule.
const VolatilityThreshold = 1.0

// ModelPerformanceChart groups accuracy, precision, recall and F1 bars per model.
func ModelPerformanceChart(models []fixtures.ModelPerformance, p theme.Palette) ChartSpec {
	names := make([]string, len(models))
	for i, m := range models {
		names[i] = m.Model
	}
	metric := func(name, color string, pick func(fixtures.ModelPerformance) float64) Series {
		values := make([]float64, len(models))
		for i, m := range models {
			values[i] = pick(m)
		}
		return Series{Name: name, Color: color, Categories: names, Values: values}
	}
	return ChartSpec{
		ID:      ChartIDModelPerformance,
		Title:   "Model Performance Comparison",
		Kind:    ChartBar,
		Grouped: true,
		YAxis:   Axis{Range: &AxisRange{Min: 90, Max: 101}},
		Series: []Series{
			metric("Accuracy (%)", p.Primary, func(m fixtures.ModelPerformance) float64 { return m.Accuracy }),
			metric("Precision (%)", p.Secondary, func(m fixtures.ModelPerformance) float64 { return m.Precision }),
			metric("Recall (%)", p.Success, func(m fixtures.ModelPerformance) float64 { return m.Recall }),
			metric("F1 (%)", p.Warning, func(m fixtures.ModelPerformance) float64 { return m.F1 }),
		},
		Height:     400,
		ShowLegend: true,
	}
}

// FeatureImportanceChart draws importances as horizontal bars on a continuous scale.
func FeatureImportanceChart(features []fixtures.FeatureImportance) ChartSpec {
	names := make([]string, len(features))
	values := make([]float64, len(features))
	for i, f := range features {
		names[i] = f.Feature
		values[i] = f.Importance
	}
	scale := ImportanceScale
	return ChartSpec{
		ID:     ChartIDFeatureImportance,
		Title:  "Feature Importance Rankings",
		Kind:   ChartHorizontalBar,
		XAxis:  Axis{Label: "Importance"},
		YAxis:  Axis{Label: "Feature"},
		Series: []Series{{Name: "Importance", Categories: names, Values: values, Colors: scale.Colors(values)}},
		Scale:  &scale,
		Height: 300,
	}
}

// AlertDistributionChart draws the alert tiers as a pie with a fixed color per tier.
func AlertDistributionChart(alerts []fixtures.AlertDistribution) ChartSpec {
	names := make([]string, len(alerts))
	values := make([]float64, len(alerts))
	colors := make([]string, len(alerts))
	for i, a := range alerts {
		names[i] = a.Name
		values[i] = float64(a.Count)
		colors[i] = a.Color
	}
	return ChartSpec{
		ID:         ChartIDAlertDistribution,
		Title:      "Alert Distribution",
		Kind:       ChartPie,
		Series:     []Series{{Name: "Products", Categories: names, Values: values, Colors: colors}},
		Height:     250,
		ShowLegend: true,
	}
}

// CategoryFailureChart draws one bar per category in the category's own color.
func CategoryFailureChart(categories []fixtures.CategoryFailure) ChartSpec {
	names := make([]string, len(categories))
	values := make([]float64, len(categories))
	colors := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Category
		values[i] = c.Rate
		colors[i] = c.Color
	}
	return ChartSpec{
		ID:     ChartIDCategoryFailure,
		Title:  "Failure Rate by Category",
		Kind:   ChartBar,
		XAxis:  Axis{Label: "Category"},
		YAxis:  Axis{Label: "% Products Ending <4.0"},
		Series: []Series{{Name: "Failure rate", Categories: names, Values: values, Colors: colors}},
		Height: 400,
	}
}

// ComplaintPatternChart draws complaint bigrams as horizontal bars on a continuous scale.
func ComplaintPatternChart(complaints []fixtures.ComplaintPattern) ChartSpec {
	names := make([]string, len(complaints))
	values := make([]float64, len(complaints))
	for i, c := range complaints {
		names[i] = c.Pattern
		values[i] = float64(c.Frequency)
	}
	scale := ComplaintScale
	return ChartSpec{
		ID:     ChartIDComplaintPatterns,
		Title:  "Top 15 Complaint Patterns in Failed Products",
		Kind:   ChartHorizontalBar,
		XAxis:  Axis{Label: "Frequency in Failed Product Reviews"},
		YAxis:  Axis{Label: "Complaint Pattern"},
		Series: []Series{{Name: "Frequency", Categories: names, Values: values, Colors: scale.Colors(values)}},
		Scale:  &scale,
		Height: 500,
	}
}

// TrajectoryColors maps each trajectory label to its palette role.
func TrajectoryColors(p theme.Palette) map[string]string {
	return map[string]string{
		fixtures.TrajectoryStableHigh: p.Success,
		fixtures.TrajectoryStableLow:  p.Danger,
		fixtures.TrajectoryRecovered:  p.Secondary,
		fixtures.TrajectoryDeclined:   p.Primary,
	}
}

// ClusterColors maps each cluster label to its palette role.
func ClusterColors(p theme.Palette) map[string]string {
	return map[string]string{
		fixtures.ClusterElite:    p.Success,
		fixtures.ClusterHighRisk: p.Danger,
	}
}

// TrajectoryChart plots early against one-year ratings, one series per trajectory.
func TrajectoryChart(points []fixtures.TrajectoryPoint, p theme.Palette) ChartSpec {
	colors := TrajectoryColors(p)
	byLabel := make(map[string][]Point)
	for _, pt := range points {
		byLabel[pt.Label] = append(byLabel[pt.Label], Point{X: pt.EarlyRating, Y: pt.OneYearRating})
	}
	var series []Series
	for _, seg := range fixtures.TrajectorySegments() {
		series = append(series, Series{Name: seg.Label, Color: colors[seg.Label], Points: byLabel[seg.Label]})
	}
	return ChartSpec{
		ID:     ChartIDTrajectories,
		Title:  "Product Rating Trajectories: Early to 1-Year",
		Kind:   ChartScatter,
		XAxis:  Axis{Label: "Early Rating (First 100 Reviews)", Range: &AxisRange{Min: 2, Max: 5}},
		YAxis:  Axis{Label: "1-Year Rating", Range: &AxisRange{Min: 1.5, Max: 5}},
		Series: series,
		References: []ReferenceLine{
			{Label: "No change (x = y)", From: Point{X: 2, Y: 2}, To: Point{X: 5, Y: 5}, Color: p.Dark, Dashed: true},
			{Label: "Failure threshold (4.0)", From: Point{X: 2, Y: FailureThreshold}, To: Point{X: 5, Y: FailureThreshold}, Color: p.Danger, Dashed: true},
		},
		Height:     500,
		ShowLegend: true,
	}
}

// ClusterChart plots early rating against volatility, one series per cluster.
func ClusterChart(points []fixtures.ClusterPoint, p theme.Palette) ChartSpec {
	colors := ClusterColors(p)
	byLabel := make(map[string][]Point)
	for _, pt := range points {
		byLabel[pt.Label] = append(byLabel[pt.Label], Point{X: pt.EarlyRating, Y: pt.Volatility})
	}
	var series []Series
	for _, seg := range fixtures.ClusterSegments() {
		series = append(series, Series{Name: seg.Label, Color: colors[seg.Label], Points: byLabel[seg.Label]})
	}
	return ChartSpec{
		ID:     ChartIDClusters,
		Title:  "K-Means Clustering Analysis",
		Kind:   ChartScatter,
		XAxis:  Axis{Label: "Early Avg Rating", Range: &AxisRange{Min: 2, Max: 5}},
		YAxis:  Axis{Label: "Rating Volatility (Std Dev)", Range: &AxisRange{Min: 0.2, Max: 1.9}},
		Series: series,
		References: []ReferenceLine{
			{Label: "Rating threshold (4.0)", From: Point{X: FailureThreshold, Y: 0.2}, To: Point{X: FailureThreshold, Y: 1.9}, Color: p.Dark, Dashed: true},
			{Label: "Volatility threshold (1.0)", From: Point{X: 2, Y: VolatilityThreshold}, To: Point{X: 5, Y: VolatilityThreshold}, Color: p.Warning, Dashed: true},
		},
		Height:     500,
		ShowLegend: true,
	}
}
