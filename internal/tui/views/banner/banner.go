// Package banner shows the announcements-only notice of a group and the
// modal listing its admins.
package banner

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/msgview/internal/core/body"
	"github.com/colonyops/msgview/internal/core/fixture"
	"github.com/colonyops/msgview/internal/core/i18n"
	"github.com/colonyops/msgview/internal/core/nav"
	"github.com/colonyops/msgview/internal/core/styles"
	"github.com/colonyops/msgview/internal/core/sysmsg"
	"github.com/colonyops/msgview/internal/tui/components"
	"github.com/colonyops/msgview/internal/tui/keymap"
)

const (
	keyBanner = "AnnouncementsOnlyGroupBanner--announcements-only"
	keyAdmins = "AnnouncementsOnlyGroupBanner--admins"
	keyModal  = "AnnouncementsOnlyGroupBanner--modal"
)

// View is the Bubble Tea sub-model for the banner tab.
type View struct {
	loc       i18n.Translator
	keys      keymap.KeyMap
	navigator nav.Navigator

	group  string
	admins []sysmsg.Participant

	focused  bool
	modal    bool
	selected int
	width    int
	height   int
}

// New creates a banner View.
func New(loc i18n.Translator, keys keymap.KeyMap, navigator nav.Navigator) View {
	return View{loc: loc, keys: keys, navigator: navigator}
}

// Load shows the given banner. A nil banner hides it and closes the modal.
func (v *View) Load(b *fixture.Banner) {
	if b == nil {
		v.group, v.admins = "", nil
		v.modal = false
		return
	}
	v.group = b.Group
	v.admins = b.Admins
	v.selected = min(v.selected, max(len(v.admins)-1, 0))
}

// SetSize updates the view dimensions.
func (v *View) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// IsModalOpen reports whether the admin list is showing.
func (v View) IsModalOpen() bool {
	return v.modal
}

// Selected returns the index of the highlighted admin.
func (v View) Selected() int {
	return v.selected
}

// Update handles messages for the banner view.
func (v View) Update(msg tea.Msg) (View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(v.admins) == 0 {
		return v, nil
	}

	if v.modal {
		v.handleModalKey(keyMsg)
		return v, nil
	}

	switch {
	case key.Matches(keyMsg, v.keys.NextFocus), key.Matches(keyMsg, v.keys.PrevFocus):
		v.focused = !v.focused
	case key.Matches(keyMsg, v.keys.Activate):
		if v.focused {
			v.modal = true
			v.selected = 0
		}
	}
	return v, nil
}

func (v *View) handleModalKey(msg tea.KeyPressMsg) {
	switch {
	case key.Matches(msg, v.keys.Close):
		v.modal = false
	case key.Matches(msg, v.keys.NextFocus):
		v.selected = (v.selected + 1) % len(v.admins)
	case key.Matches(msg, v.keys.PrevFocus):
		v.selected = (v.selected - 1 + len(v.admins)) % len(v.admins)
	case key.Matches(msg, v.keys.Activate):
		admin := v.admins[v.selected]
		v.modal = false
		v.navigator.ShowConversation(nav.ShowConversationArgs{ConversationID: admin.ID})
	}
}

// View renders the banner line.
func (v View) View() string {
	if v.group == "" {
		return styles.HelpStyle.Render("No announcements-only group")
	}

	title := styles.IconMegaphone + " " + components.RenderSegments(body.ContactName(v.group), components.NoFocus)

	// The admins placeholder is an action link with no target.
	admins := body.Segment{Kind: body.KindLink, Text: v.loc.Lookup(keyAdmins, nil)}
	var line strings.Builder
	for _, s := range v.loc.Parts(keyBanner, map[string][]body.Segment{"admins": {admins}}) {
		if s.Kind == body.KindLink && s.Href == "" {
			line.WriteString(v.button(s.Text))
			continue
		}
		line.WriteString(components.RenderSegment(s, false))
	}

	style := styles.BannerStyle
	if v.width > 0 {
		style = style.Width(v.width)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, "", style.Render(line.String()))
}

func (v View) button(label string) string {
	if v.focused {
		return styles.ButtonFocusedStyle.Render(label)
	}
	return styles.ButtonStyle.Render(label)
}

// Overlay renders the admin modal over background, if open.
func (v View) Overlay(background string, width, height int) string {
	if !v.modal {
		return background
	}

	rows := make([]string, 0, len(v.admins))
	for i, a := range v.admins {
		name := components.RenderSegments(body.ContactName(a.Title), components.NoFocus)
		if i == v.selected {
			rows = append(rows, styles.ModalButtonSelectedStyle.Render("> "+name))
		} else {
			rows = append(rows, styles.ModalButtonStyle.Render("  "+name))
		}
	}

	modal := styles.ModalStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(v.loc.Lookup(keyModal, nil)),
		"",
		strings.Join(rows, "\n"),
		"",
		styles.ModalHelpStyle.Render(keymap.Help(v.keys.NextFocus, v.keys.Activate, v.keys.Close)),
	))

	bgLayer := lipgloss.NewLayer(background)
	modalLayer := lipgloss.NewLayer(modal)
	modalLayer.X(max((width-lipgloss.Width(modal))/2, 0)).Y(max((height-lipgloss.Height(modal))/2, 0)).Z(1)

	return lipgloss.NewCompositor(bgLayer, modalLayer).Render()
}

// Help returns the key help line for this view.
func (v View) Help() string {
	return keymap.Help(v.keys.NextFocus, v.keys.Activate)
}
