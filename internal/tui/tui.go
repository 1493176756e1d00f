// internal/tui/tui.go
// Package tui provides a terminal browser for the dashboard views.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/prodsight/internal/dashboard"
)

const (
	headerHeight = 3
	footerHeight = 2
)

// model is the Bubble Tea model: one tab per dashboard view.
type model struct {
	dash          dashboard.Dashboard
	active        int
	viewport      viewport.Model
	width, height int
}

// initialModel creates a model positioned on the first view.
func initialModel(d dashboard.Dashboard) *model {
	return &model{
		dash:     d,
		viewport: viewport.New(100, 20),
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

// Update handles tab cycling, quitting, resizing and scrolling.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "right", "tab", "l":
			m.selectTab(m.active + 1)
			return m, nil
		case "left", "shift+tab", "h":
			m.selectTab(m.active - 1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-headerHeight-footerHeight, 1)
		m.refresh()
		return m, nil
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *model) selectTab(i int) {
	n := len(m.dash.Views)
	if n == 0 {
		return
	}
	m.active = (i%n + n) % n
	m.refresh()
	m.viewport.GotoTop()
}

func (m *model) refresh() {
	if len(m.dash.Views) == 0 || m.width == 0 {
		return
	}
	m.viewport.SetContent(renderView(m.dash.Views[m.active], m.dash.Theme.Palette, m.width))
}

// View renders the tab bar, the scrolled view body and a help line.
func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	if len(m.dash.Views) == 0 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1).Render("Error: dashboard has no views")
	}

	var builder strings.Builder
	builder.WriteString(m.tabBar())
	builder.WriteString("\n\n")
	builder.WriteString(m.viewport.View())
	builder.WriteString("\n")

	help := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	builder.WriteString(help.Render(fmt.Sprintf(" ←/→ switch view • ↑/↓ scroll • q quit   %3.f%%", m.viewport.ScrollPercent()*100)))
	return builder.String()
}

func (m *model) tabBar() string {
	p := m.dash.Theme.Palette
	activeStyle := lipgloss.NewStyle().Background(lipgloss.Color(p.Primary)).Foreground(lipgloss.Color(p.Dark)).Bold(true).Padding(0, 1)
	inactiveStyle := lipgloss.NewStyle().Background(lipgloss.Color(p.Dark)).Foreground(lipgloss.Color(p.Light)).Padding(0, 1)
	brand := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Primary)).Bold(true).MarginRight(1).
		Render(m.dash.Header.Brand + m.dash.Header.Suffix)

	tabs := []string{brand}
	for i, v := range m.dash.Views {
		style := inactiveStyle
		if i == m.active {
			style = activeStyle
		}
		tabs = append(tabs, style.Render(v.Title))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// Start runs the browser until the user quits or ctx is cancelled.
func Start(ctx context.Context, d dashboard.Dashboard) error {
	p := tea.NewProgram(initialModel(d), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run terminal browser: %w", err)
	}
	return nil
}
