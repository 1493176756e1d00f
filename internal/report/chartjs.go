// internal/report/chartjs.go
package report

import (
	"github.com/mwiater/prodsight/internal/dashboard"
)

// ChartConfig is the subset of a Chart.js 4 configuration the report emits.
type ChartConfig struct {
	Type    string       `json:"type"`
	Data    ChartData    `json:"data"`
	Options ChartOptions `json:"options"`
}

type ChartData struct {
	Labels   []string       `json:"labels,omitempty"`
	Datasets []ChartDataset `json:"datasets"`
}

// ChartDataset holds either category values or scatter points in Data.
type ChartDataset struct {
	Type            string `json:"type,omitempty"`
	Label           string `json:"label"`
	Data            any    `json:"data"`
	BackgroundColor any    `json:"backgroundColor,omitempty"`
	BorderColor     string `json:"borderColor,omitempty"`
	BorderWidth     int    `json:"borderWidth,omitempty"`
	BorderDash      []int  `json:"borderDash,omitempty"`
	ShowLine        bool   `json:"showLine,omitempty"`
	PointRadius     *int   `json:"pointRadius,omitempty"`
	Fill            *bool  `json:"fill,omitempty"`
}

type ChartOptions struct {
	Responsive          bool                  `json:"responsive"`
	MaintainAspectRatio bool                  `json:"maintainAspectRatio"`
	Animation           bool                  `json:"animation"`
	IndexAxis           string                `json:"indexAxis,omitempty"`
	Plugins             ChartPlugins          `json:"plugins"`
	Scales              map[string]ChartScale `json:"scales,omitempty"`
}

type ChartPlugins struct {
	Legend ChartToggle `json:"legend"`
	Title  ChartTitle  `json:"title"`
}

type ChartToggle struct {
	Display bool `json:"display"`
}

type ChartTitle struct {
	Display bool   `json:"display"`
	Text    string `json:"text,omitempty"`
}

type ChartScale struct {
	Min   *float64    `json:"min,omitempty"`
	Max   *float64    `json:"max,omitempty"`
	Title *ChartTitle `json:"title,omitempty"`
}

// ChartJSConfig converts a chart spec into a Chart.js configuration.
// Horizontal bars set indexAxis to "y"; reference lines on scatter charts
// become dashed two-point line datasets.
func ChartJSConfig(spec dashboard.ChartSpec) ChartConfig {
	cfg := ChartConfig{
		Options: ChartOptions{
			Responsive: true,
			Plugins: ChartPlugins{
				Legend: ChartToggle{Display: spec.ShowLegend},
				Title:  ChartTitle{Display: spec.Title != "", Text: spec.Title},
			},
		},
	}

	switch spec.Kind {
	case dashboard.ChartPie:
		cfg.Type = "pie"
		cfg.Data = categoryData(spec)
		return cfg
	case dashboard.ChartScatter:
		cfg.Type = "scatter"
		cfg.Data = scatterData(spec)
	case dashboard.ChartHorizontalBar:
		cfg.Type = "bar"
		cfg.Options.IndexAxis = "y"
		cfg.Data = categoryData(spec)
	default:
		cfg.Type = "bar"
		cfg.Data = categoryData(spec)
	}

	cfg.Options.Scales = map[string]ChartScale{
		"x": scaleFor(spec.XAxis),
		"y": scaleFor(spec.YAxis),
	}
	return cfg
}

func categoryData(spec dashboard.ChartSpec) ChartData {
	var data ChartData
	for i, s := range spec.Series {
		if i == 0 {
			data.Labels = s.Categories
		}
		ds := ChartDataset{Label: s.Name, Data: s.Values}
		switch {
		case len(s.Colors) > 0:
			ds.BackgroundColor = s.Colors
		case s.Color != "":
			ds.BackgroundColor = s.Color
		}
		data.Datasets = append(data.Datasets, ds)
	}
	return data
}

func scatterData(spec dashboard.ChartSpec) ChartData {
	var data ChartData
	for _, s := range spec.Series {
		points := s.Points
		if points == nil {
			points = []dashboard.Point{}
		}
		data.Datasets = append(data.Datasets, ChartDataset{
			Label:           s.Name,
			Data:            points,
			BackgroundColor: s.Color,
			BorderColor:     s.Color,
		})
	}
	noFill := false
	noPoints := 0
	for _, ref := range spec.References {
		ds := ChartDataset{
			Type:        "line",
			Label:       ref.Label,
			Data:        []dashboard.Point{ref.From, ref.To},
			BorderColor: ref.Color,
			BorderWidth: 2,
			ShowLine:    true,
			PointRadius: &noPoints,
			Fill:        &noFill,
		}
		if ref.Dashed {
			ds.BorderDash = []int{6, 4}
		}
		data.Datasets = append(data.Datasets, ds)
	}
	return data
}

func scaleFor(axis dashboard.Axis) ChartScale {
	var sc ChartScale
	if axis.Label != "" {
		sc.Title = &ChartTitle{Display: true, Text: axis.Label}
	}
	if axis.Range != nil {
		lo, hi := axis.Range.Min, axis.Range.Max
		sc.Min, sc.Max = &lo, &hi
	}
	return sc
}
