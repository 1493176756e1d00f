// internal/dashboard/views.go
// Package dashboard turns fixture tables into a typed, presentation-free
// render tree: views made of cards, charts, tables and text blocks.
package dashboard

import (
	"fmt"
	"strings"

	"github.com/mwiater/prodsight/internal/fixtures"
	"github.com/mwiater/prodsight/internal/theme"
)

// View IDs in display order.
const (
	ViewOverview          = "overview"
	ViewPredictivePower   = "predictive-power"
	ViewVolatilityWarning = "volatility-warning"
	ViewCategoryRisk      = "category-risk"
)

// Build assembles the four dashboard views from ds. It has no failure path.
func Build(ds fixtures.Dataset, t theme.Theme) Dashboard {
	p := t.Palette
	return Dashboard{
		Seed:  ds.Seed,
		Theme: t,
		Header: Header{
			Brand:    "amazon",
			Suffix:   ".com",
			Title:    "Product Success Prediction Dashboard",
			Subtitle: t.Page.Subtitle,
		},
		Views: []View{
			overviewView(ds, p),
			predictivePowerView(ds, p),
			volatilityWarningView(ds, p),
			categoryRiskView(ds, p),
		},
		Footer: "Amazon Product Success Prediction | Data: 2015-2023 | Analysis: K-means Clustering, Random Forest, Gradient Boosting",
	}
}

func overviewView(ds fixtures.Dataset, p theme.Palette) View {
	return View{
		ID:    ViewOverview,
		Title: "Overview",
		Blocks: []Block{
			{Kind: BlockMetrics, Metrics: []MetricCard{
				{Label: "Total Reviews", Value: "1.5M", Color: p.Primary},
				{Label: "Products Analyzed", Value: fmt.Sprint(fixtures.TotalProducts), Color: p.Secondary},
				{Label: "Model Accuracy", Value: "96.8%", Color: p.Success},
				{Label: "Correlation", Value: "0.976", Color: p.Primary},
			}},
			{Kind: BlockInsights, Insights: []InsightCard{
				{
					Title:       "Early Reviews Highly Predictive",
					Stat:        "r = 0.976",
					Description: "First 100 reviews predict 1-year ratings with 97.6% correlation. Models achieve 96-97% accuracy.",
					Color:       p.Success,
				},
				{
					Title:       "Volatility Critical Warning",
					Stat:        "25.5%",
					Description: "Rating volatility contributes 25.5% to predictions - nearly as important as rating itself.",
					Color:       p.Warning,
				},
				{
					Title:       "Beauty = 3X Higher Risk",
					Stat:        "31.7%",
					Description: "Beauty products fail at 31.7% vs 11-12% for Electronics/Pets.",
					Color:       p.Danger,
				},
			}},
			chartBlock(ModelPerformanceChart(ds.Models, p)),
		},
	}
}

func predictivePowerView(ds fixtures.Dataset, p theme.Palette) View {
	summary := ds.Summary()
	trajectoryBullets := make([]Bullet, 0, len(summary.Trajectories))
	trajectoryNotes := map[string]string{
		fixtures.TrajectoryStableHigh: "Green (Stable High)|Products that started strong and remained successful",
		fixtures.TrajectoryStableLow:  "Red (Stable Low)|Products that started weak and failed",
		fixtures.TrajectoryRecovered:  "Blue (Recovered)|Products that improved over time",
		fixtures.TrajectoryDeclined:   "Orange (Declined)|Products that deteriorated",
	}
	for _, share := range summary.Trajectories {
		emphasis, text := splitNote(trajectoryNotes[share.Label])
		trajectoryBullets = append(trajectoryBullets, Bullet{
			Emphasis: emphasis,
			Text:     fmt.Sprintf("%s (n=%d, %.1f%%)", text, share.Count, share.Percent),
		})
	}

	clusterBullets := []Bullet{
		{Emphasis: "Cluster 0 (Elite Performers)", Text: fmt.Sprintf("%d products with high ratings and low volatility", countOf(summary.Clusters, fixtures.ClusterElite))},
		{Emphasis: "Cluster 1 (High Risk)", Text: fmt.Sprintf("%d products with lower ratings and higher inconsistency", countOf(summary.Clusters, fixtures.ClusterHighRisk))},
	}

	return View{
		ID:    ViewPredictivePower,
		Title: "Predictive Power",
		Blocks: []Block{
			{Kind: BlockBanner, Banner: &Banner{
				Title:     "Insight 1: Early Reviews Highly Predict 1-Year Success",
				Subtitle:  "Correlation of 0.976 between early (100 reviews) and 1-year ratings | 96.8% Classification Accuracy",
				From:      p.Success,
				To:        "#0d5a4a",
				TextColor: "#FFFFFF",
			}},
			{Kind: BlockStats, Stats: []StatCard{
				{Label: "Correlation", Value: "0.976", Sublabel: "Extremely Strong", Color: p.Success},
				{Label: "Products Stable", Value: "73.2%", Sublabel: "±0.1 star change", Color: p.Success},
				{Label: "Best Model", Value: "96.8%", Sublabel: "Random Forest", Color: p.Success},
			}},
			{Kind: BlockText, Text: &TextBlock{
				Heading: "Product Rating Trajectories: Early to 1-Year",
				Paragraphs: []string{
					"This scatter plot demonstrates the strong predictive relationship between early review ratings (first 100 reviews) and one-year product performance. Products are color-coded by trajectory:",
				},
				Bullets: trajectoryBullets,
				Closing: "The tight clustering around the diagonal line (r=0.976) indicates that early ratings are highly predictive of long-term success.",
				Note:    fmt.Sprintf("This visualization is based on your analysis showing %d products tracked from early reviews through one year of performance.", fixtures.TotalProducts),
			}},
			chartBlock(TrajectoryChart(ds.Trajectories, p)),
			{Kind: BlockText, Text: &TextBlock{
				Heading: "K-Means Clustering Analysis",
				Paragraphs: []string{
					"Unsupervised clustering identified two distinct product groups based on early review characteristics:",
				},
				Bullets: clusterBullets,
				Closing: "The clustering analysis reveals clear separation between successful and at-risk products using only early review metrics.",
			}},
			chartBlock(ClusterChart(ds.Clusters, p)),
			{Kind: BlockTable, Table: ptr(ModelMetricsTable(ds.Models))},
		},
	}
}

func volatilityWarningView(ds fixtures.Dataset, p theme.Palette) View {
	alertText := &TextBlock{
		Heading:    "How products are classified:",
		Paragraphs: []string{"Products are automatically flagged into three risk categories based on early review patterns:"},
		Bullets: []Bullet{
			{
				Emphasis: "RED (High Risk)",
				Text:     "Products with early_avg_rating < 4.0 AND volatility > 1.0",
				Details:  []string{"91.2% of flagged products actually fail", "Requires immediate vendor attention"},
			},
			{
				Emphasis: "YELLOW (Monitor)",
				Text:     "Products showing warning signs but not critical",
				Details:  []string{"5.1% failure rate", "Watch for trends"},
			},
			{
				Emphasis: "GREEN (Safe)",
				Text:     "Products with strong, stable early performance",
				Details:  []string{"Only 1.3% failure rate", "Low intervention needed"},
			},
		},
	}
	return View{
		ID:    ViewVolatilityWarning,
		Title: "Volatility Warning",
		Blocks: []Block{
			{Kind: BlockBanner, Banner: &Banner{
				Title:     "Insight 2: Rating Volatility is Critical Warning Signal",
				Subtitle:  "Volatility contributes 25.5% to predictions | Combined Rule: 91.2% Precision, 95% Recall",
				From:      p.Warning,
				To:        "#c99200",
				TextColor: p.Dark,
			}},
			{Kind: BlockColumns, Columns: [][]Block{
				{chartBlock(FeatureImportanceChart(ds.Features))},
				{{Kind: BlockText, Text: alertText}, chartBlock(AlertDistributionChart(ds.Alerts))},
			}},
			{Kind: BlockRule, Rule: &WarningRule{
				Title:     "Recommended Warning Rule",
				Condition: fmt.Sprintf("IF early_avg_rating < %.1f AND volatility > %.1f", FailureThreshold, VolatilityThreshold),
				Action:    "→ FLAG AS HIGH RISK",
				Stats: []RuleStat{
					{Label: "Precision", Value: "91.2%", Detail: "When we flag a product as high risk, it fails 91.2% of the time"},
					{Label: "Recall", Value: "95.0%", Detail: "We catch 95% of all products that will eventually fail"},
					{Label: "Flags", Value: flaggedSummary(ds.Alerts), Detail: "Manageable number for vendor intervention"},
				},
				Border: p.Warning,
			}},
		},
	}
}

func categoryRiskView(ds fixtures.Dataset, p theme.Palette) View {
	return View{
		ID:    ViewCategoryRisk,
		Title: "Category Risk",
		Blocks: []Block{
			{Kind: BlockBanner, Banner: &Banner{
				Title:     "Insight 3: Beauty Products Have 3X Higher Failure Risk",
				Subtitle:  "Beauty: 31.7% Failure Rate vs Electronics/Pets: ~11%",
				From:      p.Danger,
				To:        "#8b1a04",
				TextColor: "#FFFFFF",
			}},
			{Kind: BlockText, Text: &TextBlock{
				Heading: `What is "Failure Risk"?`,
				Paragraphs: []string{
					"Product failure is defined as ending with a rating below 4.0 stars after one year. On Amazon's 5-star system, products rated below 4.0 struggle to compete effectively as most customers filter for 4+ star products. The failure rate represents the percentage of products in each category that fall below this critical threshold despite launching on the platform.",
					"Beauty products face unique challenges including highly subjective preferences, skin compatibility issues, and intense competition, leading to their 3X higher failure rate compared to other categories.",
				},
				Accent: p.Danger,
			}},
			chartBlock(CategoryFailureChart(ds.Categories)),
			{Kind: BlockText, Text: &TextBlock{
				Heading: "Top 15 Complaint Patterns in Failed Products",
				Paragraphs: []string{
					"Analysis of negative reviews (sentiment < 0) from 120 failed products reveals common complaint themes. These bigrams (two-word phrases) represent the most frequent expressions of dissatisfaction:",
				},
			}},
			chartBlock(ComplaintPatternChart(ds.Complaints)),
			{Kind: BlockCategories, Categories: []CategoryCard{
				{Category: "Beauty", Rate: "31.7%", Threshold: "<3.86", Risk: "HIGH", Color: p.Danger},
				{Category: "Electronics", Rate: "11.7%", Threshold: "<3.84", Risk: "MEDIUM", Color: p.Warning},
				{Category: "Pet Supplies", Rate: "11.4%", Threshold: "Monitor", Risk: "LOW", Color: p.Success},
			}},
		},
	}
}

// ModelMetricsTable formats every metric as a percentage and highlights each column's maximum.
func ModelMetricsTable(models []fixtures.ModelPerformance) Table {
	columns := []string{"model", "accuracy", "precision", "recall", "f1", "auc"}
	values := make([][]float64, len(models))
	for i, m := range models {
		values[i] = []float64{m.Accuracy, m.Precision, m.Recall, m.F1, m.AUC}
	}
	maxima := make([]float64, len(columns)-1)
	for c := range maxima {
		for r := range values {
			if r == 0 || values[r][c] > maxima[c] {
				maxima[c] = values[r][c]
			}
		}
	}
	rows := make([][]TableCell, len(models))
	for r, m := range models {
		row := []TableCell{{Text: m.Model}}
		for c, v := range values[r] {
			row = append(row, TableCell{Text: fmt.Sprintf("%.1f%%", v), Highlight: v == maxima[c]})
		}
		rows[r] = row
	}
	return Table{Title: "Model Performance Metrics", Columns: columns, Rows: rows}
}

func flaggedSummary(alerts []fixtures.AlertDistribution) string {
	total, red := 0, 0
	for _, a := range alerts {
		total += a.Count
		if a.Tone == theme.RoleDanger {
			red += a.Count
		}
	}
	if total == 0 {
		return "0 products"
	}
	return fmt.Sprintf("%d products (%.1f%%)", red, float64(red)/float64(total)*100)
}

func chartBlock(spec ChartSpec) Block {
	return Block{Kind: BlockChart, Chart: &spec}
}

func countOf(shares []fixtures.LabelShare, label string) int {
	for _, s := range shares {
		if s.Label == label {
			return s.Count
		}
	}
	return 0
}

func splitNote(note string) (string, string) {
	emphasis, text, ok := strings.Cut(note, "|")
	if !ok {
		return "", note
	}
	return emphasis, text
}

func ptr[T any](v T) *T { return &v }
