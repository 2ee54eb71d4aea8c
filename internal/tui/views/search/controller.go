// Package search is the search results tab.
package search

import (
	"strings"

	"github.com/colonyops/msgview/internal/core/body"
	"github.com/colonyops/msgview/internal/core/search"
)

// Controller manages the result list, selection and filtering.
// It contains pure data logic with no Bubble Tea dependencies.
type Controller struct {
	items      []search.Item
	cursor     int
	offset     int
	filtering  bool
	filter     string
	filterBuf  strings.Builder
	filteredAt []int // indices into items matching filter
}

// NewController creates a new search controller.
func NewController() *Controller {
	return &Controller{
		filteredAt: make([]int, 0),
	}
}

// SetItems replaces the results. Empty items are dropped.
func (c *Controller) SetItems(items []search.Item) {
	c.items = c.items[:0]
	for _, it := range items {
		if !it.Empty {
			c.items = append(c.items, it)
		}
	}
	c.applyFilter()
}

// StartFilter begins filter input mode.
func (c *Controller) StartFilter() {
	c.filtering = true
	c.filterBuf.Reset()
}

// CancelFilter cancels filtering and clears the filter.
func (c *Controller) CancelFilter() {
	c.filtering = false
	c.filter = ""
	c.filterBuf.Reset()
	c.applyFilter()
}

// ConfirmFilter keeps the filter and exits filter mode.
func (c *Controller) ConfirmFilter() {
	c.filtering = false
}

// IsFiltering returns true if filter input is active.
func (c *Controller) IsFiltering() bool {
	return c.filtering
}

// AddFilterRune adds a rune to the filter.
func (c *Controller) AddFilterRune(r rune) {
	c.filterBuf.WriteRune(r)
	c.filter = c.filterBuf.String()
	c.applyFilter()
}

// DeleteFilterRune removes the last rune from the filter.
func (c *Controller) DeleteFilterRune() {
	runes := []rune(c.filter)
	if len(runes) == 0 {
		return
	}
	c.filter = string(runes[:len(runes)-1])
	c.filterBuf.Reset()
	c.filterBuf.WriteString(c.filter)
	c.applyFilter()
}

// Filter returns the current filter text.
func (c *Controller) Filter() string {
	return c.filter
}

// MoveUp moves the cursor up one result.
func (c *Controller) MoveUp(visible int) {
	if c.cursor > 0 {
		c.cursor--
		c.clampOffset(visible)
	}
}

// MoveDown moves the cursor down one result.
func (c *Controller) MoveDown(visible int) {
	if c.cursor < len(c.filteredAt)-1 {
		c.cursor++
		c.clampOffset(visible)
	}
}

// Selected returns the selected result, or nil if none.
func (c *Controller) Selected() *search.Item {
	if c.cursor >= len(c.filteredAt) {
		return nil
	}
	return &c.items[c.filteredAt[c.cursor]]
}

// Visible returns the results matching the filter.
func (c *Controller) Visible() []search.Item {
	out := make([]search.Item, len(c.filteredAt))
	for i, idx := range c.filteredAt {
		out[i] = c.items[idx]
	}
	return out
}

// Cursor returns the current cursor position among visible results.
func (c *Controller) Cursor() int {
	return c.cursor
}

// Offset returns the current scroll offset.
func (c *Controller) Offset() int {
	return c.offset
}

// Len returns the number of results.
func (c *Controller) Len() int {
	return len(c.items)
}

// SetSize clamps the offset after a size change.
func (c *Controller) SetSize(visible int) {
	c.clampOffset(visible)
}

func (c *Controller) applyFilter() {
	c.filteredAt = c.filteredAt[:0]
	filter := strings.ToLower(c.filter)

	for i := range c.items {
		if filter == "" || matchesFilter(&c.items[i], filter) {
			c.filteredAt = append(c.filteredAt, i)
		}
	}

	if c.cursor >= len(c.filteredAt) {
		c.cursor = 0
		c.offset = 0
	}
}

func matchesFilter(it *search.Item, filter string) bool {
	return strings.Contains(strings.ToLower(body.PlainText(it.Header)), filter) ||
		strings.Contains(strings.ToLower(body.PlainText(it.Body.Segments)), filter)
}

func (c *Controller) clampOffset(visible int) {
	visible = max(visible, 1)
	if c.cursor < c.offset {
		c.offset = c.cursor
	} else if c.cursor >= c.offset+visible {
		c.offset = c.cursor - visible + 1
	}
	c.offset = min(max(c.offset, 0), max(len(c.filteredAt)-visible, 0))
}
