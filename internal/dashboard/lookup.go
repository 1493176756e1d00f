// internal/dashboard/lookup.go
package dashboard

import "fmt"

// View returns the view with the given ID.
func (d Dashboard) View(id string) (View, bool) {
	for _, v := range d.Views {
		if v.ID == id {
			return v, true
		}
	}
	return View{}, false
}

// Charts returns every chart in view order, descending into column blocks.
func (d Dashboard) Charts() []ChartSpec {
	var out []ChartSpec
	for _, v := range d.Views {
		out = append(out, v.Charts()...)
	}
	return out
}

// Chart returns the chart with the given ID.
func (d Dashboard) Chart(id string) (ChartSpec, bool) {
	for _, c := range d.Charts() {
		if c.ID == id {
			return c, true
		}
	}
	return ChartSpec{}, false
}

// Charts returns the charts of a single view.
func (v View) Charts() []ChartSpec {
	var out []ChartSpec
	walkBlocks(v.Blocks, func(b Block) {
		if b.Kind == BlockChart && b.Chart != nil {
			out = append(out, *b.Chart)
		}
	})
	return out
}

// Facts flattens the headline numbers of a view into "Label: Value" lines.
func (v View) Facts() []string {
	var out []string
	walkBlocks(v.Blocks, func(b Block) {
		switch b.Kind {
		case BlockMetrics:
			for _, m := range b.Metrics {
				out = append(out, fmt.Sprintf("%s: %s", m.Label, m.Value))
			}
		case BlockInsights:
			for _, c := range b.Insights {
				out = append(out, fmt.Sprintf("%s: %s", c.Title, c.Stat))
			}
		case BlockStats:
			for _, s := range b.Stats {
				out = append(out, fmt.Sprintf("%s: %s (%s)", s.Label, s.Value, s.Sublabel))
			}
		case BlockCategories:
			for _, c := range b.Categories {
				out = append(out, fmt.Sprintf("%s: %s %s risk", c.Category, c.Rate, c.Risk))
			}
		case BlockRule:
			for _, s := range b.Rule.Stats {
				out = append(out, fmt.Sprintf("%s: %s", s.Label, s.Value))
			}
		}
	})
	return out
}

func walkBlocks(blocks []Block, fn func(Block)) {
	for _, b := range blocks {
		if b.Kind == BlockColumns {
			for _, col := range b.Columns {
				walkBlocks(col, fn)
			}
			continue
		}
		fn(b)
	}
}
