// internal/dashboard/types.go
package dashboard

import "github.com/mwiater/prodsight/internal/theme"

// ChartKind selects how a ChartSpec is drawn.
type ChartKind string

const (
	ChartBar           ChartKind = "bar"
	ChartHorizontalBar ChartKind = "hbar"
	ChartPie           ChartKind = "pie"
	ChartScatter       ChartKind = "scatter"
)

// AxisRange pins an axis to fixed bounds.
type AxisRange struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Axis describes one chart axis.
type Axis struct {
	Label string     `json:"label,omitempty" yaml:"label,omitempty"`
	Range *AxisRange `json:"range,omitempty" yaml:"range,omitempty"`
}

// Point is a scatter coordinate.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Series is one trace. Categorical charts use Categories/Values (with
// optional per-value Colors); scatter charts use Points.
type Series struct {
	Name       string    `json:"name" yaml:"name"`
	Color      string    `json:"color,omitempty" yaml:"color,omitempty"`
	Categories []string  `json:"categories,omitempty" yaml:"categories,omitempty"`
	Values     []float64 `json:"values,omitempty" yaml:"values,omitempty"`
	Colors     []string  `json:"colors,omitempty" yaml:"colors,omitempty"`
	Points     []Point   `json:"points,omitempty" yaml:"points,omitempty"`
}

// ReferenceLine is a straight guide drawn over a scatter chart.
type ReferenceLine struct {
	Label  string `json:"label" yaml:"label"`
	From   Point  `json:"from" yaml:"from"`
	To     Point  `json:"to" yaml:"to"`
	Color  string `json:"color" yaml:"color"`
	Dashed bool   `json:"dashed" yaml:"dashed"`
}

// ColorScale is a two-stop continuous scale.
type ColorScale struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// ChartSpec is a library-neutral chart description.
type ChartSpec struct {
	ID         string          `json:"id" yaml:"id"`
	Title      string          `json:"title" yaml:"title"`
	Kind       ChartKind       `json:"kind" yaml:"kind"`
	Grouped    bool            `json:"grouped,omitempty" yaml:"grouped,omitempty"`
	XAxis      Axis            `json:"x_axis" yaml:"x_axis"`
	YAxis      Axis            `json:"y_axis" yaml:"y_axis"`
	Series     []Series        `json:"series" yaml:"series"`
	Scale      *ColorScale     `json:"color_scale,omitempty" yaml:"color_scale,omitempty"`
	References []ReferenceLine `json:"references,omitempty" yaml:"references,omitempty"`
	Height     int             `json:"height" yaml:"height"`
	ShowLegend bool            `json:"show_legend" yaml:"show_legend"`
}

// MetricCard is a headline number with a colored border.
type MetricCard struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
	Color string `json:"color" yaml:"color"`
}

// InsightCard is a titled statistic with supporting text.
type InsightCard struct {
	Title       string `json:"title" yaml:"title"`
	Stat        string `json:"stat" yaml:"stat"`
	Description string `json:"description" yaml:"description"`
	Color       string `json:"color" yaml:"color"`
}

// StatCard is a centered value with a caption beneath.
type StatCard struct {
	Label    string `json:"label" yaml:"label"`
	Value    string `json:"value" yaml:"value"`
	Sublabel string `json:"sublabel" yaml:"sublabel"`
	Color    string `json:"color" yaml:"color"`
}

// CategoryCard summarizes one product category's risk.
type CategoryCard struct {
	Category  string `json:"category" yaml:"category"`
	Rate      string `json:"rate" yaml:"rate"`
	Threshold string `json:"threshold" yaml:"threshold"`
	Risk      string `json:"risk" yaml:"risk"`
	Color     string `json:"color" yaml:"color"`
}

// Banner is the gradient headline at the top of a view.
type Banner struct {
	Title     string `json:"title" yaml:"title"`
	Subtitle  string `json:"subtitle" yaml:"subtitle"`
	From      string `json:"from" yaml:"from"`
	To        string `json:"to" yaml:"to"`
	TextColor string `json:"text_color" yaml:"text_color"`
}

// Bullet is one list entry; Emphasis is rendered bold ahead of Text.
type Bullet struct {
	Emphasis string   `json:"emphasis,omitempty" yaml:"emphasis,omitempty"`
	Text     string   `json:"text" yaml:"text"`
	Details  []string `json:"details,omitempty" yaml:"details,omitempty"`
}

// TextBlock is explanatory prose.
type TextBlock struct {
	Heading    string   `json:"heading,omitempty" yaml:"heading,omitempty"`
	Paragraphs []string `json:"paragraphs,omitempty" yaml:"paragraphs,omitempty"`
	Bullets    []Bullet `json:"bullets,omitempty" yaml:"bullets,omitempty"`
	Closing    string   `json:"closing,omitempty" yaml:"closing,omitempty"`
	Note       string   `json:"note,omitempty" yaml:"note,omitempty"`
	Accent     string   `json:"accent,omitempty" yaml:"accent,omitempty"`
}

// RuleStat is one line of evidence under a warning rule.
type RuleStat struct {
	Label  string `json:"label" yaml:"label"`
	Value  string `json:"value" yaml:"value"`
	Detail string `json:"detail" yaml:"detail"`
}

// WarningRule is the recommended flagging rule and its measured quality.
type WarningRule struct {
	Title     string     `json:"title" yaml:"title"`
	Condition string     `json:"condition" yaml:"condition"`
	Action    string     `json:"action" yaml:"action"`
	Stats     []RuleStat `json:"stats" yaml:"stats"`
	Border    string     `json:"border" yaml:"border"`
}

// TableCell is one formatted cell; Highlight marks a column maximum.
type TableCell struct {
	Text      string `json:"text" yaml:"text"`
	Highlight bool   `json:"highlight,omitempty" yaml:"highlight,omitempty"`
}

// Table is a formatted grid.
type Table struct {
	Title   string        `json:"title" yaml:"title"`
	Columns []string      `json:"columns" yaml:"columns"`
	Rows    [][]TableCell `json:"rows" yaml:"rows"`
}

// BlockKind tags which field of a Block is populated.
type BlockKind string

const (
	BlockBanner     BlockKind = "banner"
	BlockMetrics    BlockKind = "metrics"
	BlockInsights   BlockKind = "insights"
	BlockStats      BlockKind = "stats"
	BlockCategories BlockKind = "categories"
	BlockChart      BlockKind = "chart"
	BlockText       BlockKind = "text"
	BlockRule       BlockKind = "rule"
	BlockTable      BlockKind = "table"
	BlockColumns    BlockKind = "columns"
)

// Block is one vertical section of a view.
type Block struct {
	Kind       BlockKind      `json:"kind" yaml:"kind"`
	Banner     *Banner        `json:"banner,omitempty" yaml:"banner,omitempty"`
	Metrics    []MetricCard   `json:"metrics,omitempty" yaml:"metrics,omitempty"`
	Insights   []InsightCard  `json:"insights,omitempty" yaml:"insights,omitempty"`
	Stats      []StatCard     `json:"stats,omitempty" yaml:"stats,omitempty"`
	Categories []CategoryCard `json:"categories,omitempty" yaml:"categories,omitempty"`
	Chart      *ChartSpec     `json:"chart,omitempty" yaml:"chart,omitempty"`
	Text       *TextBlock     `json:"text,omitempty" yaml:"text,omitempty"`
	Rule       *WarningRule   `json:"rule,omitempty" yaml:"rule,omitempty"`
	Table      *Table         `json:"table,omitempty" yaml:"table,omitempty"`
	Columns    [][]Block      `json:"columns,omitempty" yaml:"columns,omitempty"`
}

// View is one tab of the dashboard.
type View struct {
	ID     string  `json:"id" yaml:"id"`
	Title  string  `json:"title" yaml:"title"`
	Blocks []Block `json:"blocks" yaml:"blocks"`
}

// Header is the branded page header.
type Header struct {
	Brand    string `json:"brand" yaml:"brand"`
	Suffix   string `json:"suffix" yaml:"suffix"`
	Title    string `json:"title" yaml:"title"`
	Subtitle string `json:"subtitle" yaml:"subtitle"`
}

// Dashboard is the complete render tree.
type Dashboard struct {
	Seed   int64       `json:"seed" yaml:"seed"`
	Theme  theme.Theme `json:"theme" yaml:"theme"`
	Header Header      `json:"header" yaml:"header"`
	Views  []View      `json:"views" yaml:"views"`
	Footer string      `json:"footer" yaml:"footer"`
}
