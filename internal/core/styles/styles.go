// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
	ColorHighlight  color.Color
)

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	DividerStyle       lipgloss.Style
	ErrorStyle         lipgloss.Style

	// Message body styles.
	TextStyle          lipgloss.Style
	MentionStyle       lipgloss.Style
	MentionFocusStyle  lipgloss.Style
	LinkStyle          lipgloss.Style
	HighlightStyle     lipgloss.Style
	ContactStyle       lipgloss.Style
	AuthorStyle        lipgloss.Style
	EllipsisStyle      lipgloss.Style
	IndicatorStyle     lipgloss.Style
	ButtonStyle        lipgloss.Style
	ButtonFocusedStyle lipgloss.Style

	// System messages.
	SystemIconStyle    lipgloss.Style
	SystemMessageStyle lipgloss.Style

	// Search results.
	ResultStyle         lipgloss.Style
	ResultSelectedStyle lipgloss.Style
	ResultDateStyle     lipgloss.Style
	BadgeStyle          lipgloss.Style

	// Announcements-only banner.
	BannerStyle lipgloss.Style

	// TUI shared styles.
	ModalStyle               lipgloss.Style
	ModalTitleStyle          lipgloss.Style
	ModalHelpStyle           lipgloss.Style
	ModalButtonStyle         lipgloss.Style
	ModalButtonSelectedStyle lipgloss.Style

	ViewSelectedStyle lipgloss.Style
	ViewNormalStyle   lipgloss.Style
	StatusStyle       lipgloss.Style
	ToastInfoStyle    lipgloss.Style
	ToastErrorStyle   lipgloss.Style
	HelpStyle         lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error
	ColorHighlight = p.Highlight

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	ErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)

	TextStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	MentionStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Background(ColorSurface)
	MentionFocusStyle = MentionStyle.
		Underline(true).
		Bold(true)
	LinkStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Underline(true)
	HighlightStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorHighlight)
	ContactStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true)
	AuthorStyle = lipgloss.NewStyle().
		Bold(true)
	EllipsisStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	IndicatorStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)
	ButtonStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Underline(true)
	ButtonFocusedStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorPrimary).
		Bold(true)

	SystemIconStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginRight(1)
	SystemMessageStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	ResultStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(ColorBackground).
		PaddingLeft(1)
	ResultSelectedStyle = ResultStyle.
		BorderForeground(ColorPrimary)
	ResultDateStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	BadgeStyle = lipgloss.NewStyle().
		Foreground(ColorWarning)

	BannerStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Background(ColorSurface).
		Padding(0, 1)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorForeground)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)
	ModalButtonStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(ColorForeground)
	ModalButtonSelectedStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true)

	ViewSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	ViewNormalStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	StatusStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)
	ToastInfoStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSuccess).
		Padding(0, 1)
	ToastErrorStyle = ToastInfoStyle.
		BorderForeground(ColorError)
	HelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
}

// EmojiStyle returns the style for emoji of the given size class, where 0
// is normal size and 4 is the largest. Terminals cannot scale glyphs, so
// larger classes get more room around them instead.
func EmojiStyle(size int) lipgloss.Style {
	if size <= 0 {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().PaddingRight(size / 2)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
