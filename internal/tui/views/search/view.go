package search

import (
	"context"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/msgview/internal/core/i18n"
	"github.com/colonyops/msgview/internal/core/nav"
	"github.com/colonyops/msgview/internal/core/search"
	"github.com/colonyops/msgview/internal/core/styles"
	"github.com/colonyops/msgview/internal/tui/components"
	"github.com/colonyops/msgview/internal/tui/keymap"
)

// linesPerResult is the header line plus the snippet line.
const linesPerResult = 2

// View is the Bubble Tea sub-model for the search tab.
type View struct {
	ctrl      *Controller
	loc       i18n.Translator
	keys      keymap.KeyMap
	navigator nav.Navigator
	resolver  search.Resolver
	width     int
	height    int
}

// New creates a search View.
func New(loc i18n.Translator, keys keymap.KeyMap, navigator nav.Navigator, resolver search.Resolver) View {
	return View{
		ctrl:      NewController(),
		loc:       loc,
		keys:      keys,
		navigator: navigator,
		resolver:  resolver,
	}
}

// Controller exposes the underlying controller.
func (v View) Controller() *Controller {
	return v.ctrl
}

// Load formats results relative to now and shows them.
func (v *View) Load(ctx context.Context, results []search.Result, now time.Time) {
	items := make([]search.Item, 0, len(results))
	for _, r := range results {
		items = append(items, search.Format(ctx, v.loc, r, v.resolver, now))
	}
	v.ctrl.SetItems(items)
	v.ctrl.SetSize(v.visibleResults())
}

// SetSize updates the view dimensions.
func (v *View) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.ctrl.SetSize(v.visibleResults())
}

// HasEditorFocus returns true if the filter input is active.
func (v View) HasEditorFocus() bool {
	return v.ctrl.IsFiltering()
}

// Update handles messages for the search view.
func (v View) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		if v.ctrl.IsFiltering() {
			v.handleFilterKey(msg)
			return v, nil
		}
		v.handleNormalKey(msg)
	}
	return v, nil
}

func (v View) handleFilterKey(msg tea.KeyPressMsg) {
	switch msg.String() {
	case "esc":
		v.ctrl.CancelFilter()
	case "enter":
		v.ctrl.ConfirmFilter()
	case "backspace":
		v.ctrl.DeleteFilterRune()
	default:
		for _, r := range msg.Key().Text {
			v.ctrl.AddFilterRune(r)
		}
	}
}

func (v View) handleNormalKey(msg tea.KeyPressMsg) {
	switch {
	case key.Matches(msg, v.keys.NextFocus):
		v.ctrl.MoveDown(v.visibleResults())
	case key.Matches(msg, v.keys.PrevFocus):
		v.ctrl.MoveUp(v.visibleResults())
	case key.Matches(msg, v.keys.Activate):
		if sel := v.ctrl.Selected(); sel != nil {
			sel.Open(v.navigator)
		}
	case key.Matches(msg, v.keys.Close):
		v.ctrl.CancelFilter()
	case msg.String() == "/":
		v.ctrl.StartFilter()
	}
}

func (v View) visibleResults() int {
	reserved := 1
	if v.ctrl.IsFiltering() || v.ctrl.Filter() != "" {
		reserved++
	}
	return max((v.height-reserved)/linesPerResult, 1)
}

// View renders the result list.
func (v View) View() string {
	var b strings.Builder

	if v.ctrl.IsFiltering() {
		b.WriteString(styles.CommandHeaderStyle.Render("Filter: "))
		b.WriteString(v.ctrl.Filter())
		b.WriteString("▎\n")
	} else if v.ctrl.Filter() != "" {
		b.WriteString(styles.HelpStyle.Render("Filter: " + v.ctrl.Filter()))
		b.WriteString("\n")
	}

	visible := v.ctrl.Visible()
	if len(visible) == 0 {
		if v.ctrl.Len() == 0 {
			b.WriteString(styles.HelpStyle.Render("No results"))
		} else {
			b.WriteString(styles.HelpStyle.Render("No matching results"))
		}
		return b.String()
	}

	end := min(v.ctrl.Offset()+v.visibleResults(), len(visible))
	rows := make([]string, 0, end-v.ctrl.Offset())
	for i := v.ctrl.Offset(); i < end; i++ {
		rows = append(rows, v.renderResult(visible[i], i == v.ctrl.Cursor()))
	}
	b.WriteString(strings.Join(rows, "\n"))
	return b.String()
}

func (v View) renderResult(it search.Item, selected bool) string {
	style := styles.ResultStyle
	if selected {
		style = styles.ResultSelectedStyle
	}

	header := components.RenderSegments(it.Header, components.NoFocus)
	if it.Badge != nil {
		header += " " + styles.BadgeStyle.Render(styles.IconBadge+" "+it.Badge.Name)
	}
	date := styles.ResultDateStyle.Render(it.Date)

	width := max(v.width-style.GetHorizontalFrameSize(), 1)
	top := components.SpreadRow(header, date, width)

	text := strings.ReplaceAll(components.RenderSegments(it.Body.Segments, components.NoFocus), "\n", " ")
	return style.Render(top + "\n" + ansi.Truncate(text, width, "…"))
}

// Help returns the key help line for this view.
func (v View) Help() string {
	return keymap.Help(v.keys.NextFocus, v.keys.PrevFocus, v.keys.Activate) + "  / filter"
}
