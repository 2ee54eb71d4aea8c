package components

import (
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/msgview/internal/core/body"
	"github.com/colonyops/msgview/internal/core/i18n"
	"github.com/colonyops/msgview/internal/core/styles"
	"github.com/colonyops/msgview/internal/core/sysmsg"
)

// NoFocus marks a message with nothing focused.
const NoFocus = -1

// BodyFocus selects at most one focusable element of a rendered body:
// the Mention-th mention segment or the Affordance-th affordance.
type BodyFocus struct {
	Mention    int
	Affordance int
}

// Unfocused is a BodyFocus with nothing selected.
var Unfocused = BodyFocus{Mention: NoFocus, Affordance: NoFocus}

// RenderSegments styles segments for the terminal. focusMention is the
// index among mention segments to draw focused, or NoFocus.
func RenderSegments(segs []body.Segment, focusMention int) string {
	var sb strings.Builder
	mention := 0
	for _, s := range segs {
		focused := false
		if s.Kind == body.KindMention {
			focused = mention == focusMention
			mention++
		}
		sb.WriteString(RenderSegment(s, focused))
	}
	return sb.String()
}

// RenderSegment styles a single segment.
func RenderSegment(s body.Segment, focused bool) string {
	switch s.Kind {
	case body.KindNewline:
		return "\n"
	case body.KindMention:
		if focused {
			return styles.MentionFocusStyle.Render(s.Text)
		}
		return highlighted(styles.MentionStyle, s.Highlight).Render(s.Text)
	case body.KindEmoji:
		return styles.EmojiStyle(int(s.Size)).Render(s.Text)
	case body.KindLink:
		text := highlighted(styles.LinkStyle, s.Highlight).Render(s.Text)
		return ansi.SetHyperlink(s.Href) + text + ansi.ResetHyperlink()
	case body.KindContact:
		return styles.ContactStyle.Foreground(styles.ContactColor(s.Text)).Render(s.Text)
	default:
		return highlighted(styles.TextStyle, s.Highlight).Render(s.Text)
	}
}

func highlighted(style lipgloss.Style, on bool) lipgloss.Style {
	if on {
		return styles.HighlightStyle
	}
	return style
}

// RenderBody draws a message body with its author prefix and trailing
// affordances, wrapped to width when positive.
func RenderBody(loc i18n.Translator, b body.Body, focus BodyFocus, width int) string {
	var sb strings.Builder
	if len(b.Author) > 0 {
		sb.WriteString(styles.AuthorStyle.Render(RenderSegments(b.Author, NoFocus)))
		sb.WriteString(styles.DividerStyle.Render(": "))
	}
	sb.WriteString(RenderSegments(b.Segments, focus.Mention))

	for i, a := range b.Affordances {
		sb.WriteString(renderAffordance(loc, a, i == focus.Affordance))
	}

	out := sb.String()
	if width > 0 {
		out = ansi.Wrap(out, width, " ")
	}
	return out
}

func renderAffordance(loc i18n.Translator, a body.Affordance, focused bool) string {
	switch a.Kind {
	case body.AffordanceEllipsis:
		return styles.EllipsisStyle.Render(a.Label())
	case body.AffordanceDownloading:
		return " " + styles.IndicatorStyle.Render(loc.Lookup(a.LabelKey, nil))
	default:
		label := loc.Lookup(a.LabelKey, nil)
		if focused {
			return " " + styles.ButtonFocusedStyle.Render(label)
		}
		return " " + styles.ButtonStyle.Render(label)
	}
}

// RenderSystemMessage draws a system notice: the icon, then one line per
// entry, each indented under the first.
func RenderSystemMessage(m sysmsg.SystemMessage, width int) string {
	icon := styles.SystemIconStyle.Render(styles.SystemIcon(string(m.Icon)))
	indent := Pad(lipgloss.Width(icon))

	lines := make([]string, 0, len(m.Lines))
	for i, l := range m.Lines {
		text := styles.SystemMessageStyle.Render(RenderSegments(l, NoFocus))
		if width > 0 {
			text = ansi.Wrap(text, max(width-lipgloss.Width(icon), 1), " ")
		}
		prefix := indent
		if i == 0 {
			prefix = icon
		}
		lines = append(lines, prefix+strings.ReplaceAll(text, "\n", "\n"+indent))
	}
	return strings.Join(lines, "\n")
}
