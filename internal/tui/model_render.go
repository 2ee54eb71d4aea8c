package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/msgview/internal/core/styles"
	"github.com/colonyops/msgview/internal/tui/keymap"
)

// View renders the TUI.
func (m Model) View() tea.View {
	v := tea.NewView(m.Render())
	v.AltScreen = true
	return v
}

// Render composes the screen: the active tab with its overlays.
func (m Model) Render() string {
	if m.quitting {
		return ""
	}

	w, h := m.width, m.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}

	content := m.renderTabView(w)
	if m.active == ViewBanner {
		content = m.banner.Overlay(content, w, h)
	}
	return overlayToasts(m.toasts, content, w, h)
}

func (m Model) renderTabView(width int) string {
	tabs := make([]string, 0, int(viewCount))
	for t := range viewCount {
		if t == m.active {
			tabs = append(tabs, styles.ViewSelectedStyle.Render(t.String()))
		} else {
			tabs = append(tabs, styles.ViewNormalStyle.Render(t.String()))
		}
	}
	header := strings.Join(tabs, styles.DividerStyle.Render(" │ "))
	divider := styles.DividerStyle.Render(strings.Repeat("─", max(width, 1)))

	var body, help string
	switch m.active {
	case ViewTimeline:
		body, help = m.timeline.View(), m.timeline.Help()
	case ViewSearch:
		body, help = m.search.View(), m.search.Help()
	case ViewBanner:
		body, help = m.banner.View(), m.banner.Help()
	}

	_, height := m.contentSize()
	body = lipgloss.NewStyle().Height(height).MaxHeight(height).Render(body)

	help += "  " + keymap.Help(m.keys.NextTab, m.keys.Quit)
	return lipgloss.JoinVertical(lipgloss.Left, header, divider, body, styles.HelpStyle.Render(help))
}
