// internal/tui/render.go
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/prodsight/internal/dashboard"
	"github.com/mwiater/prodsight/internal/theme"
	"github.com/mwiater/prodsight/internal/util"
)

const (
	labelWidth = 24
	barWidth   = 30
)

func renderView(v dashboard.View, p theme.Palette, width int) string {
	var sections []string
	for _, b := range v.Blocks {
		if s := renderBlock(b, p, width); s != "" {
			sections = append(sections, s)
		}
	}
	return strings.Join(sections, "\n\n")
}

func renderBlock(b dashboard.Block, p theme.Palette, width int) string {
	switch b.Kind {
	case dashboard.BlockBanner:
		return renderBanner(b.Banner, width)
	case dashboard.BlockMetrics:
		cards := make([]string, len(b.Metrics))
		for i, c := range b.Metrics {
			cards[i] = card(c.Color, c.Label, c.Value, "")
		}
		return cardRow(cards, width)
	case dashboard.BlockInsights:
		cards := make([]string, len(b.Insights))
		for i, c := range b.Insights {
			cards[i] = card(c.Color, c.Title, c.Stat, util.WrapToWidth(c.Description, 30))
		}
		return cardRow(cards, width)
	case dashboard.BlockStats:
		cards := make([]string, len(b.Stats))
		for i, c := range b.Stats {
			cards[i] = card(c.Color, c.Label, c.Value, c.Sublabel)
		}
		return cardRow(cards, width)
	case dashboard.BlockCategories:
		cards := make([]string, len(b.Categories))
		for i, c := range b.Categories {
			cards[i] = card(c.Color, c.Category, c.Rate, fmt.Sprintf("Threshold %s\n%s RISK", c.Threshold, c.Risk))
		}
		return cardRow(cards, width)
	case dashboard.BlockChart:
		return renderChart(*b.Chart, width)
	case dashboard.BlockText:
		return renderText(b.Text, p, width)
	case dashboard.BlockRule:
		return renderRule(b.Rule, width)
	case dashboard.BlockTable:
		return renderTable(*b.Table)
	case dashboard.BlockColumns:
		var parts []string
		for _, col := range b.Columns {
			for _, inner := range col {
				if s := renderBlock(inner, p, width); s != "" {
					parts = append(parts, s)
				}
			}
		}
		return strings.Join(parts, "\n\n")
	}
	return ""
}

func renderBanner(b *dashboard.Banner, width int) string {
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(b.From)).
		Foreground(lipgloss.Color(b.TextColor)).
		Padding(0, 1).
		Width(max(width-2, 10))
	return style.Render(lipgloss.NewStyle().Bold(true).Render(b.Title) + "\n" + b.Subtitle)
}

func card(color, label, value, detail string) string {
	body := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render(label) + "\n" +
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color)).Render(value)
	if detail != "" {
		body += "\n" + detail
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(color)).
		Padding(0, 1).
		MarginRight(1).
		Render(body)
}

// cardRow lays cards side by side, stacking them when the row would overflow.
func cardRow(cards []string, width int) string {
	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	if lipgloss.Width(row) <= width {
		return row
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func renderText(t *dashboard.TextBlock, p theme.Palette, width int) string {
	wrap := max(width-4, 20)
	var lines []string
	if t.Heading != "" {
		lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Secondary)).Render(t.Heading))
	}
	for _, para := range t.Paragraphs {
		lines = append(lines, util.WrapToWidth(para, wrap))
	}
	for _, b := range t.Bullets {
		text := b.Text
		if b.Emphasis != "" {
			text = lipgloss.NewStyle().Bold(true).Render(b.Emphasis+":") + " " + text
		}
		lines = append(lines, "• "+text)
		for _, d := range b.Details {
			lines = append(lines, "    - "+d)
		}
	}
	if t.Closing != "" {
		lines = append(lines, util.WrapToWidth(t.Closing, wrap))
	}
	if t.Note != "" {
		lines = append(lines, lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(p.Secondary)).Render("ℹ "+util.WrapToWidth(t.Note, wrap)))
	}
	return strings.Join(lines, "\n")
}

func renderRule(r *dashboard.WarningRule, width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(r.Title))
	b.WriteString("\n" + r.Condition + "\n" + r.Action + "\n")
	for _, s := range r.Stats {
		fmt.Fprintf(&b, "\n%s %s  %s", util.PadRight(s.Label+":", 11), s.Value, s.Detail)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(r.Border)).
		Padding(0, 1).
		Width(max(width-4, 20)).
		Render(b.String())
}

func renderTable(t dashboard.Table) string {
	columns := make([]table.Column, len(t.Columns))
	for i, c := range t.Columns {
		w := 10
		if i == 0 {
			w = 22
		}
		columns[i] = table.Column{Title: c, Width: w}
	}
	rows := make([]table.Row, len(t.Rows))
	for i, r := range t.Rows {
		row := make(table.Row, len(r))
		for j, cell := range r {
			row[j] = cell.Text
			if cell.Highlight {
				row[j] += " ★"
			}
		}
		rows[i] = row
	}
	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(false),
	)
	return lipgloss.NewStyle().Bold(true).Render(t.Title) + "\n" + tbl.View()
}

// renderChart summarizes a chart as text: bars for categorical charts,
// per-series extents for scatters.
func renderChart(spec dashboard.ChartSpec, width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("▍" + spec.Title))
	b.WriteString("\n")

	switch spec.Kind {
	case dashboard.ChartScatter:
		for _, s := range spec.Series {
			b.WriteString(scatterLine(s))
		}
		for _, ref := range spec.References {
			fmt.Fprintf(&b, "  ┄ %s\n", ref.Label)
		}
	case dashboard.ChartPie:
		for _, s := range spec.Series {
			total := 0.0
			for _, v := range s.Values {
				total += v
			}
			for i, v := range s.Values {
				share := 0.0
				if total > 0 {
					share = v / total * 100
				}
				b.WriteString(barLine(s.Categories[i], v, total, colorOf(s, i), fmt.Sprintf("%.0f (%.1f%%)", v, share), width))
			}
		}
	default:
		limit := 0.0
		for _, s := range spec.Series {
			for _, v := range s.Values {
				limit = max(limit, v)
			}
		}
		for _, s := range spec.Series {
			if spec.Grouped {
				fmt.Fprintf(&b, "  %s\n", s.Name)
			}
			for i, v := range s.Values {
				b.WriteString(barLine(s.Categories[i], v, limit, colorOf(s, i), fmt.Sprintf("%g", v), width))
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func barLine(label string, value, limit float64, color, caption string, width int) string {
	bw := min(barWidth, max(width-labelWidth-16, 5))
	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(util.Bar(value, limit, bw))
	return fmt.Sprintf("  %s %s %s\n", util.PadRight(label, labelWidth), bar, caption)
}

func scatterLine(s dashboard.Series) string {
	if len(s.Points) == 0 {
		return fmt.Sprintf("  ● %s: no points\n", s.Name)
	}
	minX, maxX := s.Points[0].X, s.Points[0].X
	minY, maxY := s.Points[0].Y, s.Points[0].Y
	for _, pt := range s.Points[1:] {
		minX, maxX = min(minX, pt.X), max(maxX, pt.X)
		minY, maxY = min(minY, pt.Y), max(maxY, pt.Y)
	}
	dot := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render("●")
	return fmt.Sprintf("  %s %s: %d points, x %.2f–%.2f, y %.2f–%.2f\n",
		dot, util.PadRight(s.Name, 18), len(s.Points), minX, maxX, minY, maxY)
}

func colorOf(s dashboard.Series, i int) string {
	if i < len(s.Colors) {
		return s.Colors[i]
	}
	return s.Color
}
