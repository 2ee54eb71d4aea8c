package tui

import "github.com/colonyops/msgview/internal/core/styles"

// ViewType represents which tab is active.
type ViewType int

const (
	ViewTimeline ViewType = iota
	ViewSearch
	ViewBanner
	viewCount
)

// String returns the tab label.
func (v ViewType) String() string {
	switch v {
	case ViewTimeline:
		return "Timeline"
	case ViewSearch:
		return styles.IconSearch + " Search"
	case ViewBanner:
		return "Announcements"
	default:
		return "unknown"
	}
}

// Next returns the tab after v, wrapping around.
func (v ViewType) Next() ViewType {
	return (v + 1) % viewCount
}
