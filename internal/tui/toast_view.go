package tui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/msgview/internal/core/styles"
)

type toastTickMsg time.Time

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

func renderToasts(c *ToastController) string {
	if !c.HasToasts() {
		return ""
	}

	rendered := make([]string, 0, len(c.toasts))
	for _, t := range c.toasts {
		icon, style := styles.IconNotifyInfo, styles.ToastInfoStyle
		if t.level == ToastError {
			icon, style = styles.IconNotifyError, styles.ToastErrorStyle
		}
		rendered = append(rendered, style.Width(toastWidth).Render(icon+" "+t.message))
	}
	return strings.Join(rendered, "\n")
}

// overlayToasts composites the toast stack over background in the
// lower-right corner.
func overlayToasts(c *ToastController, background string, width, height int) string {
	content := renderToasts(c)
	if content == "" {
		return background
	}

	toastLayer := lipgloss.NewLayer(content)
	toastLayer.X(max(width-lipgloss.Width(content)-1, 0)).Y(max(height-lipgloss.Height(content), 0)).Z(2)

	return lipgloss.NewCompositor(lipgloss.NewLayer(background), toastLayer).Render()
}
