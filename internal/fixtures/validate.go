// internal/fixtures/validate.go
package fixtures

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ErrInvalidFixture wraps every shape or invariant violation found by Validate.
var ErrInvalidFixture = errors.New("invalid fixture data")

// importanceTolerance bounds how far the raw importance sum may exceed one.
const importanceTolerance = 0.01

const datasetSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["model_performance", "feature_importance", "category_failure", "alert_distribution", "complaint_patterns", "trajectories", "clusters"],
  "definitions": {
    "percent": {"type": "number", "minimum": 0, "maximum": 100},
    "color": {"type": "string", "pattern": "^#[0-9A-Fa-f]{6}$"}
  },
  "properties": {
    "model_performance": {
      "type": "array", "minItems": 3, "maxItems": 3,
      "items": {
        "type": "object",
        "required": ["model", "accuracy", "precision", "recall", "f1", "auc"],
        "properties": {
          "model": {"type": "string", "minLength": 1},
          "accuracy": {"$ref": "#/definitions/percent"},
          "precision": {"$ref": "#/definitions/percent"},
          "recall": {"$ref": "#/definitions/percent"},
          "f1": {"$ref": "#/definitions/percent"},
          "auc": {"$ref": "#/definitions/percent"}
        }
      }
    },
    "feature_importance": {
      "type": "array", "minItems": 5, "maxItems": 5,
      "items": {
        "type": "object",
        "required": ["feature", "importance"],
        "properties": {
          "feature": {"type": "string", "minLength": 1},
          "importance": {"type": "number", "exclusiveMinimum": 0, "maximum": 1}
        }
      }
    },
    "category_failure": {
      "type": "array", "minItems": 3, "maxItems": 3,
      "items": {
        "type": "object",
        "required": ["category", "rate", "color"],
        "properties": {
          "category": {"type": "string", "minLength": 1},
          "rate": {"$ref": "#/definitions/percent"},
          "color": {"$ref": "#/definitions/color"}
        }
      }
    },
    "alert_distribution": {
      "type": "array", "minItems": 3, "maxItems": 3,
      "items": {
        "type": "object",
        "required": ["name", "value", "color"],
        "properties": {
          "name": {"type": "string", "pattern": "^(RED|YELLOW|GREEN) - "},
          "value": {"type": "integer", "minimum": 0},
          "color": {"$ref": "#/definitions/color"}
        }
      }
    },
    "complaint_patterns": {
      "type": "array", "minItems": 15, "maxItems": 15,
      "items": {
        "type": "object",
        "required": ["pattern", "frequency"],
        "properties": {
          "pattern": {"type": "string", "pattern": "^\\S+ \\S+$"},
          "frequency": {"type": "integer", "minimum": 1}
        }
      }
    },
    "trajectories": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["early_rating", "one_year_rating", "trajectory"],
        "properties": {
          "early_rating": {"type": "number", "minimum": 1, "maximum": 5},
          "one_year_rating": {"type": "number", "minimum": 1, "maximum": 5},
          "trajectory": {"enum": ["Stable High", "Stable Low", "Recovered", "Declined"]}
        }
      }
    },
    "clusters": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["early_rating", "volatility", "cluster"],
        "properties": {
          "early_rating": {"type": "number", "minimum": 1, "maximum": 5},
          "volatility": {"type": "number", "minimum": 0},
          "cluster": {"enum": ["Elite Performers", "High Risk"]}
        }
      }
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(datasetSchema)

// Validate checks ds against the table schema and the cross-row invariants.
func Validate(ds Dataset) error {
	if err := validateShape(ds); err != nil {
		return err
	}
	var problems []string
	problems = append(problems, modelProblems(ds.Models)...)
	problems = append(problems, importanceProblems(ds.Features)...)
	problems = append(problems, alertProblems(ds.Alerts)...)
	problems = append(problems, complaintProblems(ds.Complaints)...)
	problems = append(problems, trajectoryProblems(ds.Trajectories)...)
	problems = append(problems, clusterProblems(ds.Clusters)...)
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidFixture, strings.Join(problems, "; "))
	}
	return nil
}

func validateShape(ds Dataset) error {
	doc, err := json.Marshal(ds)
	if err != nil {
		return fmt.Errorf("marshal dataset for validation: %w", err)
	}
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}
	var details []string
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidFixture, strings.Join(details, "; "))
}

func modelProblems(models []ModelPerformance) []string {
	var out []string
	for _, m := range models {
		if m.AUC < m.F1 {
			out = append(out, fmt.Sprintf("%s auc %.1f below f1 %.1f", m.Model, m.AUC, m.F1))
		}
	}
	return out
}

func importanceProblems(features []FeatureImportance) []string {
	var out []string
	sum := 0.0
	for _, f := range features {
		sum += f.Importance
	}
	// The published list is the top five of a larger feature set, so the raw
	// sum may fall short of one but can never exceed it.
	if sum > 1+importanceTolerance {
		out = append(out, fmt.Sprintf("feature importances sum to %.3f", sum))
	}
	return out
}

func alertProblems(alerts []AlertDistribution) []string {
	total := 0
	for _, a := range alerts {
		total += a.Count
	}
	if total != TotalProducts {
		return []string{fmt.Sprintf("alert counts sum to %d, want %d", total, TotalProducts)}
	}
	return nil
}

func complaintProblems(complaints []ComplaintPattern) []string {
	for i := 1; i < len(complaints); i++ {
		if complaints[i].Frequency > complaints[i-1].Frequency {
			return []string{fmt.Sprintf("complaint %q (%d) ranks below %q (%d)",
				complaints[i].Pattern, complaints[i].Frequency, complaints[i-1].Pattern, complaints[i-1].Frequency)}
		}
	}
	return nil
}

func trajectoryProblems(points []TrajectoryPoint) []string {
	var out []string
	counts := make(map[string]int)
	bounds := make(map[string]Range)
	for _, s := range trajectorySegments {
		if s.Pairing == PairNoise {
			bounds[s.Label] = s.Clamp
		} else {
			bounds[s.Label] = s.Y
		}
	}
	for _, p := range points {
		counts[p.Label]++
		if r, ok := bounds[p.Label]; ok && !r.Contains(p.OneYearRating) {
			out = append(out, fmt.Sprintf("%s one-year rating %.3f outside [%g, %g]", p.Label, p.OneYearRating, r.Min, r.Max))
			break
		}
	}
	return append(out, countProblems("trajectory", counts, SegmentCounts(trajectorySegments))...)
}

func clusterProblems(points []ClusterPoint) []string {
	counts := make(map[string]int)
	for _, p := range points {
		counts[p.Label]++
	}
	return countProblems("cluster", counts, SegmentCounts(clusterSegments))
}

func countProblems(kind string, got, want map[string]int) []string {
	var out []string
	for _, s := range orderedLabels(kind) {
		if got[s] != want[s] {
			out = append(out, fmt.Sprintf("%s %q has %d points, want %d", kind, s, got[s], want[s]))
		}
	}
	return out
}

func orderedLabels(kind string) []string {
	segments := trajectorySegments
	if kind == "cluster" {
		segments = clusterSegments
	}
	labels := make([]string, len(segments))
	for i, s := range segments {
		labels[i] = s.Label
	}
	return labels
}
