// internal/tui/tui_test.go
package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwiater/prodsight/internal/dashboard"
	"github.com/mwiater/prodsight/internal/fixtures"
	"github.com/mwiater/prodsight/internal/theme"
)

func testDashboard(t *testing.T) dashboard.Dashboard {
	t.Helper()
	ds, err := fixtures.Build(fixtures.DefaultOptions())
	if err != nil {
		t.Fatalf("fixtures.Build error: %v", err)
	}
	return dashboard.Build(ds, theme.Default())
}

// TestUpdate tests the Update function of the Bubble Tea model. It verifies
// that quit keys produce a command, that window size messages are recorded,
// and that left/right keys cycle through the views, wrapping at both ends.
func TestUpdate(t *testing.T) {
	m := initialModel(testDashboard(t))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Error("Expected a quit command, but got nil")
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("Expected a quit command, but got nil")
	}

	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = newModel.(*model)
	if m.width != 120 || m.height != 40 {
		t.Errorf("Expected width 120 and height 40, got %d and %d", m.width, m.height)
	}

	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = newModel.(*model)
	if m.active != 1 {
		t.Errorf("Expected active tab 1 after right, got %d", m.active)
	}

	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = newModel.(*model)
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = newModel.(*model)
	if m.active != len(m.dash.Views)-1 {
		t.Errorf("Expected left to wrap to last tab, got %d", m.active)
	}

	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = newModel.(*model)
	if m.active != 0 {
		t.Errorf("Expected tab to wrap to first tab, got %d", m.active)
	}
}

// TestView tests the View function before and after the first window size
// message, and checks the overview tab shows its headline metrics.
func TestView(t *testing.T) {
	m := initialModel(testDashboard(t))

	if view := m.View(); view != "Initializing..." {
		t.Errorf("Expected view to be 'Initializing...', got '%s'", view)
	}

	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 200})
	m = newModel.(*model)
	view := m.View()
	for _, want := range []string{"Overview", "Total Reviews", "1.5M", "Model Performance Comparison"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected view to contain %q", want)
		}
	}
}

func TestEmptyDashboardView(t *testing.T) {
	m := initialModel(dashboard.Dashboard{})
	m.width = 80
	if view := m.View(); !strings.Contains(view, "Error") {
		t.Errorf("Expected error view, got '%s'", view)
	}
}

func TestRenderEveryView(t *testing.T) {
	d := testDashboard(t)
	for _, v := range d.Views {
		out := renderView(v, d.Theme.Palette, 120)
		if strings.TrimSpace(out) == "" {
			t.Errorf("view %s rendered empty", v.ID)
		}
	}
	predictive, _ := d.View(dashboard.ViewPredictivePower)
	out := renderView(predictive, d.Theme.Palette, 120)
	for _, want := range []string{"Stable High", "340 points", "Model Performance Metrics", "Random Forest"} {
		if !strings.Contains(out, want) {
			t.Errorf("predictive power view missing %q", want)
		}
	}
}
