package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rtesession/internal/config"
	"rtesession/internal/tui/state"
	configview "rtesession/internal/tui/views/config"
)

// header + blank line + status bar
const chromeHeight = 3

// ===== Layout =====

func panelWidth(width int, ratio float64) int {
	w := int(float64(width) * ratio)
	if w < 24 {
		w = 24
	}
	if w > width {
		w = width
	}
	return w
}

// layout sizes the screens for the current viewport. Nothing is resized
// until a size has been reported.
func (m *Model) layout(s state.SessionState) {
	w, h := s.ViewportWidth, s.ViewportHeight
	if w <= 0 || h <= 0 {
		return
	}
	body := h - chromeHeight
	m.editor.SetSize(w, body-1) // toolbar row

	sw, sh := w, body
	if m.cfg.Presentation == config.Panel {
		sw = panelWidth(w, m.cfg.PanelRatio) - 4 // border and padding
		sh -= 2
	}
	m.source.SetSize(sw, sh-2) // title and hint rows
}

// ===== Rendering =====

// render draws the session in the configured presentation. Whatever the
// style, exactly one screen body is drawn.
func (m *Model) render(s state.SessionState) string {
	body := m.screen(s)
	if m.showHelp {
		body = m.help.View(s)
	}
	if m.cfg.Presentation == config.Panel && s.ActiveView != state.Editor && !m.showHelp {
		body = m.panel(body, s.ViewportWidth)
	}
	status := m.status.View(s, m.toast.View())
	return lipgloss.JoinVertical(lipgloss.Left, m.header(s), "", body, status)
}

func (m *Model) screen(s state.SessionState) string {
	switch s.ActiveView {
	case state.Source:
		hints := m.styles.Faint.Render("y copy · d changes · j/k scroll · esc back")
		return m.source.View() + "\n" + hints
	case state.Config:
		return configview.View(configVM(s, m.cfg), m.styles)
	default:
		return m.editor.View() + m.toolbar.View(s.ViewportWidth)
	}
}

func (m *Model) header(s state.SessionState) string {
	switch m.cfg.Presentation {
	case config.Stack:
		return m.breadcrumb(s.ActiveView)
	case config.Panel:
		title := m.styles.Title.Render(state.Editor.String())
		if s.ActiveView != state.Editor {
			title += m.styles.Faint.Render("  ◂ " + s.ActiveView.String())
		}
		return title
	default:
		return m.tabStrip(s.ActiveView)
	}
}

func (m *Model) tabStrip(active state.View) string {
	tabs := make([]string, 0, len(state.Views))
	for _, v := range state.Views {
		if v == active {
			tabs = append(tabs, m.styles.TabOn.Render(v.String()))
			continue
		}
		tabs = append(tabs, m.styles.TabOff.Render(v.String()))
	}
	return strings.Join(tabs, " ")
}

// breadcrumb shows the stack of pushed screens; the editor is always the
// root.
func (m *Model) breadcrumb(active state.View) string {
	crumbs := []string{state.Editor.String()}
	if active != state.Editor {
		crumbs = append(crumbs, active.String())
	}
	last := len(crumbs) - 1
	crumbs[last] = m.styles.Title.Render(crumbs[last])
	return strings.Join(crumbs, m.styles.Faint.Render(" › "))
}

// panel draws body as a slide-over anchored to the right edge.
func (m *Model) panel(body string, width int) string {
	if width <= 0 {
		return m.styles.Border.Render(body)
	}
	pw := panelWidth(width, m.cfg.PanelRatio)
	box := m.styles.Border.Width(pw - 2).Render(body)
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, box)
}
