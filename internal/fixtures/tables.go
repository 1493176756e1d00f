// internal/fixtures/tables.go
package fixtures

import "github.com/mwiater/prodsight/internal/theme"

// TotalProducts is the number of products tracked by the study.
const TotalProducts = 471

// ModelPerformanceTable returns the evaluated classifiers in reporting order.
func ModelPerformanceTable() []ModelPerformance {
	return []ModelPerformance{
		{Model: "Logistic Regression", Accuracy: 95.8, Precision: 95.9, Recall: 98.6, F1: 97.2, AUC: 99.2},
		{Model: "Random Forest", Accuracy: 96.8, Precision: 100.0, Recall: 95.8, F1: 97.8, AUC: 99.3},
		{Model: "Gradient Boosting", Accuracy: 95.8, Precision: 98.6, Recall: 95.8, F1: 97.1, AUC: 99.5},
	}
}

// FeatureImportanceTable returns the five strongest early-review features.
func FeatureImportanceTable() []FeatureImportance {
	return []FeatureImportance{
		{Feature: "early_avg_rating", Importance: 0.327},
		{Feature: "early_rating_std", Importance: 0.255},
		{Feature: "early_1star_rate", Importance: 0.133},
		{Feature: "early_5star_rate", Importance: 0.125},
		{Feature: "early_avg_sentiment", Importance: 0.046},
	}
}

// CategoryFailureTable returns failure rates per category with colors resolved from p.
func CategoryFailureTable(p theme.Palette) []CategoryFailure {
	rows := []CategoryFailure{
		{Category: "Beauty", Rate: 31.7, Tone: theme.RoleDanger},
		{Category: "Electronics", Rate: 11.7, Tone: theme.RoleWarning},
		{Category: "Pet_Supplies", Rate: 11.4, Tone: theme.RoleSuccess},
	}
	for i := range rows {
		rows[i].Color = p.Color(rows[i].Tone)
	}
	return rows
}

// AlertDistributionTable returns the RED/YELLOW/GREEN tier counts with colors resolved from p.
func AlertDistributionTable(p theme.Palette) []AlertDistribution {
	rows := []AlertDistribution{
		{Name: "RED - High Risk", Count: 125, Tone: theme.RoleDanger},
		{Name: "YELLOW - Monitor", Count: 39, Tone: theme.RoleWarning},
		{Name: "GREEN - Safe", Count: 307, Tone: theme.RoleSuccess},
	}
	for i := range rows {
		rows[i].Color = p.Color(rows[i].Tone)
	}
	return rows
}

// ComplaintPatternTable returns the top complaint bigrams, most frequent first.
func ComplaintPatternTable() []ComplaintPattern {
	return []ComplaintPattern{
		{Pattern: "waste money", Frequency: 259},
		{Pattern: "dont waste", Frequency: 125},
		{Pattern: "doesnt work", Frequency: 72},
		{Pattern: "poor quality", Frequency: 67},
		{Pattern: "stopped working", Frequency: 55},
		{Pattern: "didnt work", Frequency: 51},
		{Pattern: "disappointed product", Frequency: 40},
		{Pattern: "would recommend", Frequency: 38},
		{Pattern: "work well", Frequency: 38},
		{Pattern: "thick hair", Frequency: 33},
		{Pattern: "waste time", Frequency: 30},
		{Pattern: "nothing like", Frequency: 30},
		{Pattern: "nail polish", Frequency: 29},
		{Pattern: "dont know", Frequency: 28},
		{Pattern: "works well", Frequency: 28},
	}
}
