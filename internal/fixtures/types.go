// internal/fixtures/types.go
package fixtures

import "github.com/mwiater/prodsight/internal/theme"

// ModelPerformance is one evaluated classifier. All metrics are percentages.
type ModelPerformance struct {
	Model     string  `json:"model" yaml:"model"`
	Accuracy  float64 `json:"accuracy" yaml:"accuracy"`
	Precision float64 `json:"precision" yaml:"precision"`
	Recall    float64 `json:"recall" yaml:"recall"`
	F1        float64 `json:"f1" yaml:"f1"`
	AUC       float64 `json:"auc" yaml:"auc"`
}

// FeatureImportance is the random forest importance of one early-review feature.
type FeatureImportance struct {
	Feature    string  `json:"feature" yaml:"feature"`
	Importance float64 `json:"importance" yaml:"importance"`
}

// CategoryFailure is the share of a category's products ending below 4.0 stars.
type CategoryFailure struct {
	Category string     `json:"category" yaml:"category"`
	Rate     float64    `json:"rate" yaml:"rate"`
	Tone     theme.Role `json:"tone" yaml:"tone"`
	Color    string     `json:"color" yaml:"color"`
}

// AlertDistribution is the product count of one alert tier.
type AlertDistribution struct {
	Name  string     `json:"name" yaml:"name"`
	Count int        `json:"value" yaml:"value"`
	Tone  theme.Role `json:"tone" yaml:"tone"`
	Color string     `json:"color" yaml:"color"`
}

// ComplaintPattern is a bigram mined from negative reviews of failed products.
type ComplaintPattern struct {
	Pattern   string `json:"pattern" yaml:"pattern"`
	Frequency int    `json:"frequency" yaml:"frequency"`
}

// Trajectory labels.
const (
	TrajectoryStableHigh = "Stable High"
	TrajectoryStableLow  = "Stable Low"
	TrajectoryRecovered  = "Recovered"
	TrajectoryDeclined   = "Declined"
)

// Cluster labels.
const (
	ClusterElite    = "Elite Performers"
	ClusterHighRisk = "High Risk"
)

// TrajectoryPoint is one synthetic product's early and one-year average rating.
type TrajectoryPoint struct {
	EarlyRating   float64 `json:"early_rating" yaml:"early_rating"`
	OneYearRating float64 `json:"one_year_rating" yaml:"one_year_rating"`
	Label         string  `json:"trajectory" yaml:"trajectory"`
}

// ClusterPoint is one synthetic product placed by early rating and volatility.
type ClusterPoint struct {
	EarlyRating float64 `json:"early_rating" yaml:"early_rating"`
	Volatility  float64 `json:"volatility" yaml:"volatility"`
	Label       string  `json:"cluster" yaml:"cluster"`
}

// Dataset groups every table the dashboard consumes.
type Dataset struct {
	Seed         int64               `json:"seed" yaml:"seed"`
	Models       []ModelPerformance  `json:"model_performance" yaml:"model_performance"`
	Features     []FeatureImportance `json:"feature_importance" yaml:"feature_importance"`
	Categories   []CategoryFailure   `json:"category_failure" yaml:"category_failure"`
	Alerts       []AlertDistribution `json:"alert_distribution" yaml:"alert_distribution"`
	Complaints   []ComplaintPattern  `json:"complaint_patterns" yaml:"complaint_patterns"`
	Trajectories []TrajectoryPoint   `json:"trajectories" yaml:"trajectories"`
	Clusters     []ClusterPoint      `json:"clusters" yaml:"clusters"`
}
