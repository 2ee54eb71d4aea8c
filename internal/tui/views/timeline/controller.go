// Package timeline is the conversation view: message bodies and system
// notices with keyboard focus over their mentions and actions.
package timeline

import (
	"context"
	"time"

	"github.com/colonyops/msgview/internal/core/body"
	"github.com/colonyops/msgview/internal/core/config"
	"github.com/colonyops/msgview/internal/core/fixture"
	"github.com/colonyops/msgview/internal/core/i18n"
	"github.com/colonyops/msgview/internal/core/logging"
	"github.com/colonyops/msgview/internal/core/nav"
	"github.com/colonyops/msgview/internal/core/sysmsg"
)

// Item is one rendered timeline entry. Exactly one of Body, System and Err
// is set.
type Item struct {
	ID     string
	Body   *body.Body
	System *sysmsg.SystemMessage
	Err    error
}

type targetKind int

const (
	targetMention targetKind = iota
	targetAffordance
)

// target is one focusable element: a mention or an actionable affordance
// of the item at index item.
type target struct {
	item  int
	kind  targetKind
	index int
}

// bodyState is the mutable state of a body entry.
type bodyState struct {
	entry       fixture.BodyEntry
	expanded    bool
	downloading bool
	downloaded  bool
}

// Controller holds the timeline state and focus. It contains pure data
// logic with no Bubble Tea dependencies.
type Controller struct {
	loc       i18n.Translator
	opts      config.BodyConfig
	navigator nav.Navigator
	now       func() time.Time

	ctx     context.Context
	entries []fixture.Entry
	bodies  map[string]*bodyState

	items     []Item
	targets   []target
	focus     int
	downloads []string
}

// NewController creates a timeline controller.
func NewController(loc i18n.Translator, opts config.BodyConfig, navigator nav.Navigator, now func() time.Time) *Controller {
	if now == nil {
		now = time.Now
	}
	return &Controller{
		loc:       loc,
		opts:      opts,
		navigator: navigator,
		now:       now,
		ctx:       context.Background(),
		bodies:    map[string]*bodyState{},
		focus:     -1,
	}
}

// Load replaces the timeline entries. State of bodies whose id survives the
// reload is kept.
func (c *Controller) Load(ctx context.Context, entries []fixture.Entry) {
	bodies := make(map[string]*bodyState, len(entries))
	for _, e := range entries {
		if e.Kind != fixture.KindBody || e.Body == nil {
			continue
		}
		st, ok := c.bodies[e.ID]
		if !ok {
			st = &bodyState{}
		}
		st.entry = *e.Body
		bodies[e.ID] = st
	}

	c.ctx = ctx
	c.entries = entries
	c.bodies = bodies
	c.render()
}

// Items returns the rendered entries.
func (c *Controller) Items() []Item {
	return c.items
}

// Len returns the number of entries.
func (c *Controller) Len() int {
	return len(c.items)
}

// FocusedItem returns the index of the item holding focus, or -1.
func (c *Controller) FocusedItem() int {
	if c.focus < 0 {
		return -1
	}
	return c.targets[c.focus].item
}

// Focus returns what is focused inside item i.
func (c *Controller) Focus(i int) (mention, affordance int) {
	mention, affordance = -1, -1
	if c.focus < 0 || c.targets[c.focus].item != i {
		return mention, affordance
	}
	t := c.targets[c.focus]
	if t.kind == targetMention {
		return t.index, affordance
	}
	return mention, t.index
}

// NextFocus moves focus to the next mention or action, wrapping around.
func (c *Controller) NextFocus() {
	if len(c.targets) == 0 {
		return
	}
	c.focus = (c.focus + 1) % len(c.targets)
}

// PrevFocus moves focus to the previous mention or action, wrapping around.
func (c *Controller) PrevFocus() {
	if len(c.targets) == 0 {
		return
	}
	if c.focus <= 0 {
		c.focus = len(c.targets) - 1
		return
	}
	c.focus--
}

// Activate triggers the focused element with the given key, as a click
// when key is empty. It reports whether anything happened.
func (c *Controller) Activate(key string) bool {
	if c.focus < 0 {
		return false
	}
	t := c.targets[c.focus]
	item := c.items[t.item]

	switch t.kind {
	case targetMention:
		seg, ok := nthMention(item.Body.Segments, t.index)
		if !ok {
			return false
		}
		id := seg.ConversationID
		if id == "" {
			id = seg.MentionID
		}
		c.navigator.ShowConversation(nav.ShowConversationArgs{ConversationID: id})
		return true
	default:
		a := item.Body.Affordances[t.index]
		var acted bool
		if key == "" {
			acted = a.Click()
		} else {
			acted = a.KeyDown(key)
		}
		if acted {
			c.render()
		}
		return acted
	}
}

// TakeDownloads returns the ids of bodies whose download was started since
// the last call.
func (c *Controller) TakeDownloads() []string {
	ids := c.downloads
	c.downloads = nil
	return ids
}

// CompleteDownload finishes a download started for body id.
func (c *Controller) CompleteDownload(id string) {
	st, ok := c.bodies[id]
	if !ok || !st.downloading {
		return
	}
	st.downloading = false
	st.downloaded = true
	c.render()
}

func (c *Controller) render() {
	var prev *target
	if c.focus >= 0 && c.focus < len(c.targets) {
		t := c.targets[c.focus]
		prev = &t
	}

	c.items = make([]Item, 0, len(c.entries))
	c.targets = c.targets[:0]
	for i, e := range c.entries {
		item := c.renderEntry(e)
		c.items = append(c.items, item)
		if item.Body == nil {
			continue
		}
		for m := range countMentions(item.Body.Segments) {
			c.targets = append(c.targets, target{item: i, kind: targetMention, index: m})
		}
		for a, aff := range item.Body.Affordances {
			if aff.Actionable() {
				c.targets = append(c.targets, target{item: i, kind: targetAffordance, index: a})
			}
		}
	}

	c.focus = c.restoreFocus(prev)
}

// restoreFocus keeps focus on the same element when it still exists,
// otherwise on the last target at or before the previously focused item.
func (c *Controller) restoreFocus(prev *target) int {
	if prev == nil || len(c.targets) == 0 {
		return -1
	}
	best := 0
	for i, t := range c.targets {
		if t == *prev {
			return i
		}
		if t.item <= prev.item {
			best = i
		}
	}
	return best
}

func (c *Controller) renderEntry(e fixture.Entry) Item {
	item := Item{ID: e.ID}

	switch e.Kind {
	case fixture.KindBody:
		b := c.renderBody(e.ID)
		item.Body = &b
	case fixture.KindGroup:
		n, err := e.Group.Notification()
		if err == nil {
			var m sysmsg.SystemMessage
			m, err = sysmsg.FormatGroup(c.loc, n)
			item.System = &m
		}
		item.Err = err
	case fixture.KindVerification:
		m, err := sysmsg.FormatVerification(c.loc, e.Verification.Verification())
		item.System, item.Err = &m, err
	case fixture.KindNumberChange:
		m, err := sysmsg.FormatNumberChange(c.loc, e.NumberChange.NumberChange(), c.now())
		item.System, item.Err = &m, err
	}

	if item.Err != nil {
		item.System = nil
		log := logging.For(logging.WithEntryID(c.ctx, e.ID), "timeline")
		log.Error().Err(item.Err).Msg("cannot render entry")
	}
	return item
}

func (c *Controller) renderBody(id string) body.Body {
	st, ok := c.bodies[id]
	if !ok {
		return body.Body{}
	}
	e := st.entry

	text := e.Text
	if (st.expanded || st.downloaded) && e.ExpandedText != "" {
		text = e.ExpandedText
	}

	opts := body.Options{
		DisableLinks:              c.opts.DisableLinks,
		DisableUniformEmojiSizing: c.opts.DisableJumbomoji,
		Author:                    e.Author,
		MaxLength:                 c.opts.MaxLength,
	}

	switch {
	case st.downloaded:
	case e.Attachment != nil:
		opts.Attachment = e.PendingAttachment()
		if st.downloading {
			opts.Attachment.Pending = true
		}
		opts.KickOffDownload = func() {
			st.downloading = true
			c.downloads = append(c.downloads, id)
		}
	case e.ExpandedText != "" && !st.expanded:
		opts.OnExpand = func() { st.expanded = true }
	}

	return body.Render(text, e.Ranges, opts)
}

func countMentions(segs []body.Segment) int {
	n := 0
	for _, s := range segs {
		if s.Kind == body.KindMention {
			n++
		}
	}
	return n
}

func nthMention(segs []body.Segment, n int) (body.Segment, bool) {
	for _, s := range segs {
		if s.Kind != body.KindMention {
			continue
		}
		if n == 0 {
			return s, true
		}
		n--
	}
	return body.Segment{}, false
}
