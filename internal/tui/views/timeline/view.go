package timeline

import (
	"context"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/msgview/internal/core/config"
	"github.com/colonyops/msgview/internal/core/fixture"
	"github.com/colonyops/msgview/internal/core/i18n"
	"github.com/colonyops/msgview/internal/core/nav"
	"github.com/colonyops/msgview/internal/core/styles"
	"github.com/colonyops/msgview/internal/tui/components"
	"github.com/colonyops/msgview/internal/tui/keymap"
)

// DownloadDelay is how long a simulated full-body download takes.
const DownloadDelay = 800 * time.Millisecond

type downloadDoneMsg struct {
	id string
}

// View is the Bubble Tea sub-model for the timeline tab.
type View struct {
	ctrl   *Controller
	loc    i18n.Translator
	keys   keymap.KeyMap
	width  int
	height int
}

// New creates a timeline View.
func New(loc i18n.Translator, opts config.BodyConfig, keys keymap.KeyMap, navigator nav.Navigator) View {
	return View{
		ctrl: NewController(loc, opts, navigator, nil),
		loc:  loc,
		keys: keys,
	}
}

// Controller exposes the underlying controller.
func (v View) Controller() *Controller {
	return v.ctrl
}

// Load replaces the timeline entries.
func (v *View) Load(ctx context.Context, entries []fixture.Entry) {
	v.ctrl.Load(ctx, entries)
}

// SetSize updates the view dimensions.
func (v *View) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// Update handles messages for the timeline view.
func (v View) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case downloadDoneMsg:
		v.ctrl.CompleteDownload(msg.id)
	case tea.KeyPressMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v View) handleKey(msg tea.KeyPressMsg) (View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.NextFocus):
		v.ctrl.NextFocus()
	case key.Matches(msg, v.keys.PrevFocus):
		v.ctrl.PrevFocus()
	case key.Matches(msg, v.keys.Activate):
		v.ctrl.Activate(activationKey(msg))
		return v, v.downloadCmds()
	}
	return v, nil
}

// activationKey maps a pressed key to the key names affordances respond
// to, so rebound activation keys still act like a click.
func activationKey(msg tea.KeyPressMsg) string {
	switch s := msg.String(); s {
	case "space", "enter":
		return s
	default:
		return ""
	}
}

func (v View) downloadCmds() tea.Cmd {
	ids := v.ctrl.TakeDownloads()
	if len(ids) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(ids))
	for _, id := range ids {
		cmds = append(cmds, tea.Tick(DownloadDelay, func(time.Time) tea.Msg {
			return downloadDoneMsg{id: id}
		}))
	}
	return tea.Batch(cmds...)
}

// View renders the timeline, scrolled so the focused entry is visible.
func (v View) View() string {
	items := v.ctrl.Items()
	if len(items) == 0 {
		return styles.HelpStyle.Render("No messages")
	}

	width := max(v.width-2, 0)
	blocks := make([]string, len(items))
	for i, item := range items {
		blocks[i] = v.renderItem(i, item, width)
	}

	lines := strings.Split(strings.Join(blocks, "\n\n"), "\n")
	if v.height <= 0 || len(lines) <= v.height {
		return strings.Join(lines, "\n")
	}

	start := 0
	if focused := v.ctrl.FocusedItem(); focused >= 0 {
		top := 0
		for _, b := range blocks[:focused] {
			top += lipgloss.Height(b) + 1
		}
		bottom := top + lipgloss.Height(blocks[focused])
		if bottom > v.height {
			start = min(bottom-v.height, top)
		}
	}
	end := min(start+v.height, len(lines))
	return strings.Join(lines[start:end], "\n")
}

func (v View) renderItem(i int, item Item, width int) string {
	switch {
	case item.Err != nil:
		return styles.ErrorStyle.Render(item.Err.Error())
	case item.System != nil:
		return components.RenderSystemMessage(*item.System, width)
	case item.Body != nil:
		mention, affordance := v.ctrl.Focus(i)
		focus := components.BodyFocus{Mention: mention, Affordance: affordance}
		return components.RenderBody(v.loc, *item.Body, focus, width)
	}
	return ""
}

// Help returns the key help line for this view.
func (v View) Help() string {
	return keymap.Help(v.keys.NextFocus, v.keys.PrevFocus, v.keys.Activate)
}
