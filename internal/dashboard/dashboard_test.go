// internal/dashboard/dashboard_test.go
package dashboard

import (
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mwiater/prodsight/internal/fixtures"
	"github.com/mwiater/prodsight/internal/theme"
)

func buildDefault(t *testing.T) Dashboard {
	t.Helper()
	ds, err := fixtures.Build(fixtures.DefaultOptions())
	if err != nil {
		t.Fatalf("fixtures.Build error: %v", err)
	}
	return Build(ds, theme.Default())
}

func TestBuildHasFourViewsInOrder(t *testing.T) {
	d := buildDefault(t)
	var ids []string
	for _, v := range d.Views {
		ids = append(ids, v.ID)
	}
	want := []string{ViewOverview, ViewPredictivePower, ViewVolatilityWarning, ViewCategoryRisk}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Fatalf("view ids mismatch (-want +got):\n%s", diff)
	}
	if d.Header.Brand != "amazon" || d.Header.Suffix != ".com" {
		t.Fatalf("unexpected header brand: %+v", d.Header)
	}
	if !strings.Contains(d.Footer, "K-means Clustering") {
		t.Fatalf("footer missing analysis methods: %q", d.Footer)
	}
}

func TestOverviewFacts(t *testing.T) {
	d := buildDefault(t)
	v, ok := d.View(ViewOverview)
	if !ok {
		t.Fatal("overview view not found")
	}
	facts := v.Facts()
	for _, want := range []string{
		"Total Reviews: 1.5M",
		"Products Analyzed: 471",
		"Model Accuracy: 96.8%",
		"Correlation: 0.976",
		"Beauty = 3X Higher Risk: 31.7%",
	} {
		if !slices.Contains(facts, want) {
			t.Errorf("overview facts missing %q; got %v", want, facts)
		}
	}
}

func TestWarningRuleFlagsShareOfProducts(t *testing.T) {
	d := buildDefault(t)
	v, _ := d.View(ViewVolatilityWarning)
	facts := v.Facts()
	if !slices.Contains(facts, "Flags: 125 products (26.5%)") {
		t.Fatalf("expected flagged share fact, got %v", facts)
	}
}

func TestChartsAreReachableByID(t *testing.T) {
	d := buildDefault(t)
	ids := []string{
		ChartIDModelPerformance,
		ChartIDTrajectories,
		ChartIDClusters,
		ChartIDFeatureImportance,
		ChartIDAlertDistribution,
		ChartIDCategoryFailure,
		ChartIDComplaintPatterns,
	}
	charts := d.Charts()
	if len(charts) != len(ids) {
		t.Fatalf("expected %d charts, got %d", len(ids), len(charts))
	}
	for i, id := range ids {
		if charts[i].ID != id {
			t.Errorf("chart %d: expected %q, got %q", i, id, charts[i].ID)
		}
		if _, ok := d.Chart(id); !ok {
			t.Errorf("Chart(%q) not found", id)
		}
	}
	if _, ok := d.Chart("missing"); ok {
		t.Fatal("expected missing chart lookup to fail")
	}
}

func TestChartKindsAndRanges(t *testing.T) {
	d := buildDefault(t)
	cases := []struct {
		id   string
		kind ChartKind
		x, y *AxisRange
	}{
		{ChartIDModelPerformance, ChartBar, nil, &AxisRange{Min: 90, Max: 101}},
		{ChartIDFeatureImportance, ChartHorizontalBar, nil, nil},
		{ChartIDAlertDistribution, ChartPie, nil, nil},
		{ChartIDTrajectories, ChartScatter, &AxisRange{Min: 2, Max: 5}, &AxisRange{Min: 1.5, Max: 5}},
		{ChartIDClusters, ChartScatter, &AxisRange{Min: 2, Max: 5}, &AxisRange{Min: 0.2, Max: 1.9}},
	}
	for _, tc := range cases {
		c, _ := d.Chart(tc.id)
		if c.Kind != tc.kind {
			t.Errorf("%s: kind %q, want %q", tc.id, c.Kind, tc.kind)
		}
		if diff := cmp.Diff(tc.x, c.XAxis.Range); diff != "" {
			t.Errorf("%s: x range (-want +got):\n%s", tc.id, diff)
		}
		if diff := cmp.Diff(tc.y, c.YAxis.Range); diff != "" {
			t.Errorf("%s: y range (-want +got):\n%s", tc.id, diff)
		}
	}
}

func TestTrajectorySeriesFollowSegments(t *testing.T) {
	d := buildDefault(t)
	c, _ := d.Chart(ChartIDTrajectories)
	p := theme.DefaultPalette()
	want := map[string]int{
		fixtures.TrajectoryStableHigh: 340,
		fixtures.TrajectoryStableLow:  114,
		fixtures.TrajectoryRecovered:  11,
		fixtures.TrajectoryDeclined:   6,
	}
	for _, s := range c.Series {
		if len(s.Points) != want[s.Name] {
			t.Errorf("%s: %d points, want %d", s.Name, len(s.Points), want[s.Name])
		}
	}
	if c.Series[0].Color != p.Success || c.Series[1].Color != p.Danger {
		t.Fatalf("unexpected trajectory colors: %q %q", c.Series[0].Color, c.Series[1].Color)
	}
	if len(c.References) != 2 || !c.References[0].Dashed {
		t.Fatalf("expected two dashed reference lines, got %+v", c.References)
	}
}

func TestColorScale(t *testing.T) {
	s := ColorScale{From: "#000000", To: "#ffffff"}
	if got := s.Interpolate(0); got != "#000000" {
		t.Fatalf("Interpolate(0) = %q", got)
	}
	if got := s.Interpolate(2); got != "#ffffff" {
		t.Fatalf("Interpolate(2) should clamp, got %q", got)
	}
	colors := s.Colors([]float64{1, 3})
	if diff := cmp.Diff([]string{"#000000", "#ffffff"}, colors); diff != "" {
		t.Fatalf("Colors mismatch (-want +got):\n%s", diff)
	}
	if got := s.Colors([]float64{5, 5}); got[0] != "#ffffff" {
		t.Fatalf("equal values should map to the top stop, got %v", got)
	}
	if s.Colors(nil) != nil {
		t.Fatal("expected nil for empty input")
	}
}

func TestModelMetricsTableHighlightsColumnMaxima(t *testing.T) {
	table := ModelMetricsTable(fixtures.ModelPerformanceTable())
	if table.Rows[1][2].Text != "100.0%" || !table.Rows[1][2].Highlight {
		t.Fatalf("expected Random Forest precision highlighted, got %+v", table.Rows[1][2])
	}
	if table.Rows[0][2].Highlight {
		t.Fatal("non-maximum precision should not be highlighted")
	}
	if !table.Rows[2][5].Highlight {
		t.Fatalf("expected Gradient Boosting AUC highlighted, got %+v", table.Rows[2][5])
	}
}

func TestReferenceLineGeometry(t *testing.T) {
	d := buildDefault(t)
	type line struct{ From, To Point }
	cases := []struct {
		id   string
		want []line
	}{
		{ChartIDTrajectories, []line{
			{From: Point{X: 2, Y: 2}, To: Point{X: 5, Y: 5}},
			{From: Point{X: 2, Y: 4}, To: Point{X: 5, Y: 4}},
		}},
		{ChartIDClusters, []line{
			{From: Point{X: 4, Y: 0.2}, To: Point{X: 4, Y: 1.9}},
			{From: Point{X: 2, Y: 1}, To: Point{X: 5, Y: 1}},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.id, func(t *testing.T) {
			c, ok := d.Chart(tc.id)
			if !ok {
				t.Fatalf("chart %s not found", tc.id)
			}
			var got []line
			for _, r := range c.References {
				if !r.Dashed {
					t.Errorf("reference %q is not dashed", r.Label)
				}
				got = append(got, line{From: r.From, To: r.To})
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("reference lines (-want +got):\n%s", diff)
			}
		})
	}
}

func TestViewFactsCarryLiteralValues(t *testing.T) {
	d := buildDefault(t)
	cases := map[string][]string{
		ViewPredictivePower: {
			"Correlation: 0.976 (Extremely Strong)",
			"Products Stable: 73.2% (±0.1 star change)",
			"Best Model: 96.8% (Random Forest)",
		},
		ViewVolatilityWarning: {
			"Precision: 91.2%",
			"Recall: 95.0%",
			"Flags: 125 products (26.5%)",
		},
		ViewCategoryRisk: {
			"Beauty: 31.7% HIGH risk",
			"Electronics: 11.7% MEDIUM risk",
			"Pet Supplies: 11.4% LOW risk",
		},
	}
	for id, wants := range cases {
		t.Run(id, func(t *testing.T) {
			v, ok := d.View(id)
			if !ok {
				t.Fatalf("view %s not found", id)
			}
			facts := v.Facts()
			for _, want := range wants {
				if !slices.Contains(facts, want) {
					t.Errorf("facts missing %q; got %v", want, facts)
				}
			}
		})
	}
}
