package components

import (
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Pad returns n spaces.
func Pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// SpreadRow places left and right at opposite ends of a row of the given
// width. right is always kept whole; left is truncated when both do not fit
// with at least one space between them.
func SpreadRow(left, right string, width int) string {
	rw := lipgloss.Width(right)
	gap := width - lipgloss.Width(left) - rw
	if gap < 1 {
		left = ansi.Truncate(left, max(width-rw-1, 0), "…")
		gap = max(width-lipgloss.Width(left)-rw, 1)
	}
	return left + Pad(gap) + right
}
