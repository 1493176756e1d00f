// internal/chartrender/chartrender_test.go
package chartrender

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwiater/prodsight/internal/dashboard"
	"github.com/mwiater/prodsight/internal/fixtures"
	"github.com/mwiater/prodsight/internal/theme"
)

func defaultDashboard(t *testing.T) dashboard.Dashboard {
	t.Helper()
	ds, err := fixtures.Build(fixtures.DefaultOptions())
	if err != nil {
		t.Fatalf("fixtures.Build error: %v", err)
	}
	return dashboard.Build(ds, theme.Default())
}

func TestRenderEveryChartAsSVG(t *testing.T) {
	d := defaultDashboard(t)
	for _, spec := range d.Charts() {
		var buf bytes.Buffer
		if err := Render(&buf, spec, FormatSVG); err != nil {
			t.Fatalf("Render(%s) error: %v", spec.ID, err)
		}
		if !strings.Contains(buf.String(), "<svg") {
			t.Fatalf("Render(%s) did not produce an svg document", spec.ID)
		}
	}
}

func TestRenderPNGHasSignature(t *testing.T) {
	d := defaultDashboard(t)
	spec, ok := d.Chart(dashboard.ChartIDClusters)
	if !ok {
		t.Fatal("clusters chart not found")
	}
	var buf bytes.Buffer
	if err := Render(&buf, spec, FormatPNG); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Fatal("expected PNG signature")
	}
}

func TestRenderAllWritesOneFilePerChart(t *testing.T) {
	d := defaultDashboard(t)
	dir := filepath.Join(t.TempDir(), "charts")
	paths, err := RenderAll(dir, d, FormatSVG)
	if err != nil {
		t.Fatalf("RenderAll error: %v", err)
	}
	if len(paths) != len(d.Charts()) {
		t.Fatalf("expected %d files, got %d", len(d.Charts()), len(paths))
	}
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			t.Fatalf("stat %s: %v", p, err)
		}
		if info.Size() == 0 {
			t.Fatalf("%s is empty", p)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat(" PNG "); err != nil || f != FormatPNG {
		t.Fatalf("ParseFormat(PNG) = %q, %v", f, err)
	}
	if _, err := ParseFormat("gif"); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
	if FormatSVG.ContentType() != "image/svg+xml" || FormatPNG.Ext() != ".png" {
		t.Fatal("unexpected format metadata")
	}
}

func TestRenderRejectsEmptyBars(t *testing.T) {
	spec := dashboard.ChartSpec{ID: "empty", Kind: dashboard.ChartBar}
	if err := Render(&bytes.Buffer{}, spec, FormatSVG); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestAbbreviate(t *testing.T) {
	cases := map[string]string{
		"Random Forest":       "RF",
		"Logistic Regression": "LR",
		"Beauty":              "Beauty",
		"Épée Ensemble":       "ÉE",
		"ñandú rápido":        "ÑR",
	}
	for in, want := range cases {
		if got := abbreviate(in); got != want {
			t.Errorf("abbreviate(%q) = %q, want %q", in, got, want)
		}
	}
}
