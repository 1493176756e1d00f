// internal/report/report.go
// Package report renders the dashboard render tree as a standalone HTML page.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/mwiater/prodsight/internal/dashboard"
	"github.com/mwiater/prodsight/internal/theme"
)

// PageData is the view-model handed to the page template.
type PageData struct {
	Title      string
	Icon       string
	Palette    theme.Palette
	Header     dashboard.Header
	Views      []dashboard.View
	Footer     string
	Seed       int64
	ChartsJSON template.JS
}

// Generate renders d as a self-contained HTML document. Charts are embedded
// as Chart.js configurations keyed by chart ID; everything else is markup.
// The output carries no timestamps, so a fixed seed gives identical bytes.
func Generate(d dashboard.Dashboard) (string, error) {
	configs := make(map[string]ChartConfig)
	for _, spec := range d.Charts() {
		configs[spec.ID] = ChartJSConfig(spec)
	}
	payload, err := json.Marshal(configs)
	if err != nil {
		return "", fmt.Errorf("encode chart configs: %w", err)
	}

	viewModel := PageData{
		Title:      d.Theme.Page.Title,
		Icon:       d.Theme.Page.Icon,
		Palette:    d.Theme.Palette,
		Header:     d.Header,
		Views:      d.Views,
		Footer:     d.Footer,
		Seed:       d.Seed,
		ChartsJSON: template.JS(payload),
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, viewModel); err != nil {
		return "", fmt.Errorf("render dashboard page: %w", err)
	}
	return buf.String(), nil
}

var pageTemplate = template.Must(template.New("dashboard").Parse(pageTemplateHTML))

const pageTemplateHTML = `{{ define "block" }}
{{- if eq .Kind "banner" }}{{ with .Banner }}
      <div class="insight-banner" style="background: linear-gradient(135deg, {{ .From }} 0%, {{ .To }} 100%); color: {{ .TextColor }};">
        <h3>{{ .Title }}</h3>
        <p class="mb-0">{{ .Subtitle }}</p>
      </div>{{ end }}
{{- else if eq .Kind "metrics" }}
      <div class="row g-3 mb-4">{{ range .Metrics }}
        <div class="col-md-3">
          <div class="metric-card" style="border-left-color: {{ .Color }};">
            <div class="metric-label">{{ .Label }}</div>
            <div class="metric-value">{{ .Value }}</div>
          </div>
        </div>{{ end }}
      </div>
{{- else if eq .Kind "insights" }}
      <div class="row g-3 mb-4">{{ range .Insights }}
        <div class="col-md-4">
          <div class="insight-card" style="border-top-color: {{ .Color }};">
            <h5>{{ .Title }}</h5>
            <div class="insight-stat" style="color: {{ .Color }};">{{ .Stat }}</div>
            <p class="mb-0">{{ .Description }}</p>
          </div>
        </div>{{ end }}
      </div>
{{- else if eq .Kind "stats" }}
      <div class="row g-3 mb-4">{{ range .Stats }}
        <div class="col-md-4">
          <div class="stat-card">
            <div class="metric-label">{{ .Label }}</div>
            <div class="metric-value" style="color: {{ .Color }};">{{ .Value }}</div>
            <div class="stat-sublabel">{{ .Sublabel }}</div>
          </div>
        </div>{{ end }}
      </div>
{{- else if eq .Kind "categories" }}
      <div class="row g-3 mb-4">{{ range .Categories }}
        <div class="col-md-4">
          <div class="category-card" style="border-color: {{ .Color }};">
            <h5>{{ .Category }}</h5>
            <div class="metric-value" style="color: {{ .Color }};">{{ .Rate }}</div>
            <div class="stat-sublabel">Threshold: {{ .Threshold }}</div>
            <span class="badge" style="background-color: {{ .Color }};">{{ .Risk }} RISK</span>
          </div>
        </div>{{ end }}
      </div>
{{- else if eq .Kind "chart" }}{{ with .Chart }}
      <div class="chart-card mb-4">
        <div class="chart-canvas" style="height: {{ .Height }}px;">
          <canvas id="chart-{{ .ID }}" data-chart-id="{{ .ID }}" aria-label="{{ .Title }}" role="img"></canvas>
        </div>
      </div>{{ end }}
{{- else if eq .Kind "text" }}{{ with .Text }}
      <div class="text-block mb-4"{{ if .Accent }} style="border-left: 4px solid {{ .Accent }};"{{ end }}>
        {{ if .Heading }}<h4>{{ .Heading }}</h4>{{ end }}
        {{ range .Paragraphs }}<p>{{ . }}</p>
        {{ end }}{{ if .Bullets }}<ul>{{ range .Bullets }}
          <li>{{ if .Emphasis }}<strong>{{ .Emphasis }}:</strong> {{ end }}{{ .Text }}{{ if .Details }}
            <ul>{{ range .Details }}<li>{{ . }}</li>{{ end }}</ul>{{ end }}
          </li>{{ end }}
        </ul>{{ end }}
        {{ if .Closing }}<p>{{ .Closing }}</p>{{ end }}
        {{ if .Note }}<div class="alert alert-info mb-0">{{ .Note }}</div>{{ end }}
      </div>{{ end }}
{{- else if eq .Kind "rule" }}{{ with .Rule }}
      <div class="rule-card mb-4" style="border-color: {{ .Border }};">
        <h4>{{ .Title }}</h4>
        <div class="rule-condition">{{ .Condition }}</div>
        <div class="rule-action">{{ .Action }}</div>
        <div class="row g-3 mt-2">{{ range .Stats }}
          <div class="col-md-4">
            <div class="metric-label">{{ .Label }}</div>
            <div class="metric-value">{{ .Value }}</div>
            <div class="stat-sublabel">{{ .Detail }}</div>
          </div>{{ end }}
        </div>
      </div>{{ end }}
{{- else if eq .Kind "table" }}{{ with .Table }}
      <div class="card shadow-sm mb-4">
        <div class="card-header bg-white"><h5 class="mb-0">{{ .Title }}</h5></div>
        <div class="card-body">
          <div class="table-responsive">
            <table class="table table-striped table-bordered table-sm metrics-table">
              <thead class="table-light"><tr>{{ range .Columns }}<th>{{ . }}</th>{{ end }}</tr></thead>
              <tbody>{{ range .Rows }}
                <tr>{{ range . }}<td{{ if .Highlight }} class="top-performer"{{ end }}>{{ .Text }}</td>{{ end }}</tr>{{ end }}
              </tbody>
            </table>
          </div>
        </div>
      </div>{{ end }}
{{- else if eq .Kind "columns" }}
      <div class="row g-4">{{ range .Columns }}
        <div class="col-lg-6">{{ range . }}{{ template "block" . }}{{ end }}
        </div>{{ end }}
      </div>
{{- end }}
{{- end }}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Icon }} {{ .Title }}</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css">
  <style>
    :root {
      --primary: {{ .Palette.Primary }};
      --secondary: {{ .Palette.Secondary }};
      --dark: {{ .Palette.Dark }};
      --success: {{ .Palette.Success }};
      --warning: {{ .Palette.Warning }};
      --danger: {{ .Palette.Danger }};
      --light: {{ .Palette.Light }};
    }
    body {
      background-color: var(--light);
      color: var(--dark);
    }
    .brand-header {
      background-color: var(--dark);
      color: #FFFFFF;
      padding: 1.5rem 2rem;
    }
    .brand-header .brand { font-size: 2rem; font-weight: 700; color: #FFFFFF; }
    .brand-header .brand-suffix { color: var(--primary); font-size: 2rem; font-weight: 700; }
    .brand-header .subtitle { color: var(--light); opacity: 0.8; }
    .nav-tabs .nav-link { color: var(--dark); font-weight: 600; }
    .nav-tabs .nav-link.active { border-bottom: 3px solid var(--primary); }
    .metric-card, .insight-card, .stat-card, .category-card, .text-block, .chart-card, .rule-card {
      background: #FFFFFF;
      border-radius: 12px;
      padding: 1.25rem;
      box-shadow: 0 1px 3px rgba(35, 47, 62, 0.12);
      height: 100%;
    }
    .metric-card { border-left: 5px solid var(--primary); }
    .insight-card { border-top: 5px solid var(--primary); }
    .stat-card { text-align: center; }
    .category-card { border: 2px solid var(--primary); text-align: center; }
    .rule-card { border: 3px solid var(--warning); height: auto; }
    .chart-card, .text-block { height: auto; }
    .metric-label { font-size: 0.85rem; text-transform: uppercase; color: #6c757d; }
    .metric-value { font-size: 2rem; font-weight: 700; }
    .insight-stat { font-size: 1.75rem; font-weight: 700; }
    .stat-sublabel { font-size: 0.9rem; color: #6c757d; }
    .insight-banner { border-radius: 12px; padding: 1.5rem 2rem; margin-bottom: 1.5rem; }
    .rule-condition { font-family: monospace; font-size: 1.1rem; }
    .rule-action { font-weight: 700; color: var(--danger); }
    .chart-canvas { position: relative; }
    .metrics-table td.top-performer { background-color: #FFF3D6; font-weight: 600; }
    footer { color: #6c757d; text-align: center; padding: 2rem 0; }
  </style>
</head>
<body>
  <header class="brand-header">
    <span class="brand">{{ .Header.Brand }}</span><span class="brand-suffix">{{ .Header.Suffix }}</span>
    <h1 class="h3 mt-2 mb-1">{{ .Header.Title }}</h1>
    <div class="subtitle">{{ .Header.Subtitle }}</div>
  </header>
  <main class="container-fluid my-4">
    <ul class="nav nav-tabs mb-4" id="viewTabs" role="tablist">{{ range $i, $v := .Views }}
      <li class="nav-item" role="presentation">
        <button class="nav-link{{ if eq $i 0 }} active{{ end }}" id="tab-{{ $v.ID }}" data-bs-toggle="tab" data-bs-target="#view-{{ $v.ID }}" type="button" role="tab" aria-controls="view-{{ $v.ID }}">{{ $v.Title }}</button>
      </li>{{ end }}
    </ul>
    <div class="tab-content">{{ range $i, $v := .Views }}
      <section class="tab-pane fade{{ if eq $i 0 }} show active{{ end }}" id="view-{{ $v.ID }}" role="tabpanel" aria-labelledby="tab-{{ $v.ID }}">{{ range $v.Blocks }}{{ template "block" . }}{{ end }}
      </section>{{ end }}
    </div>
  </main>
  <footer>
    <div>{{ .Footer }}</div>
    <div class="small">Seed {{ .Seed }}</div>
  </footer>

  <script src="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/js/bootstrap.bundle.min.js"></script>
  <script src="https://cdn.jsdelivr.net/npm/chart.js@4.4.2/dist/chart.umd.min.js"></script>
  <script>
    var charts = {{ .ChartsJSON }};
  </script>
  <script>
    (function() {
      document.querySelectorAll('canvas[data-chart-id]').forEach(function(canvas) {
        var config = charts[canvas.getAttribute('data-chart-id')];
        if (!config) {
          return;
        }
        new Chart(canvas, config);
      });
    })();
  </script>
</body>
</html>
`
