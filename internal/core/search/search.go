// Package search formats message search results into list items.
package search

import (
	"context"
	"time"

	"github.com/colonyops/msgview/internal/core/body"
	"github.com/colonyops/msgview/internal/core/i18n"
	"github.com/colonyops/msgview/internal/core/logging"
	"github.com/colonyops/msgview/internal/core/nav"
	"github.com/colonyops/msgview/internal/core/snippet"
	"github.com/colonyops/msgview/internal/core/timefmt"
)

// Badge is a profile badge a person may display.
type Badge struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Person is either side of a search result.
type Person struct {
	ID      string  `yaml:"id"`
	Title   string  `yaml:"title"`
	IsMe    bool    `yaml:"is_me"`
	IsGroup bool    `yaml:"is_group"`
	Badges  []Badge `yaml:"badges"`
}

// Result is one message matched by a search. Snippet is the matched excerpt
// with <<left>>/<<right>> around the matched terms; Body is the full text.
type Result struct {
	ID             string
	ConversationID string
	SentAt         time.Time
	Snippet        string
	Body           string
	BodyRanges     []body.Range
	From           *Person
	To             *Person
}

// Resolver picks the badge to show for a sender.
type Resolver interface {
	PreferredBadge(badges []Badge) *Badge
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(badges []Badge) *Badge

// PreferredBadge calls f(badges).
func (f ResolverFunc) PreferredBadge(badges []Badge) *Badge {
	return f(badges)
}

// FirstBadge resolves to the first badge, if any.
var FirstBadge = ResolverFunc(func(badges []Badge) *Badge {
	if len(badges) == 0 {
		return nil
	}
	return &badges[0]
})

// Item is a formatted search result.
type Item struct {
	ID             string
	ConversationID string
	// Empty is set when the result lacks a sender or recipient and nothing
	// should be drawn.
	Empty        bool
	Title        string
	Header       []body.Segment
	Body         body.Body
	Badge        *Badge
	Date         string
	IsNoteToSelf bool
	IsMe         bool
}

// Open navigates to the result's message in its conversation.
func (i Item) Open(n nav.Navigator) {
	n.ShowConversation(nav.ShowConversationArgs{
		ConversationID: i.ConversationID,
		MessageID:      i.ID,
	})
}

// Format renders r for display. Snippets that disagree with their body are
// logged and rendered as well as possible.
func Format(ctx context.Context, loc i18n.Translator, r Result, resolver Resolver, now time.Time) Item {
	item := Item{ID: r.ID, ConversationID: r.ConversationID}
	if r.From == nil || r.To == nil {
		item.Empty = true
		return item
	}

	item.Title = r.From.Title
	item.IsMe = r.From.IsMe
	item.IsNoteToSelf = r.From.IsMe && r.To.IsMe
	item.Header = header(loc, *r.From, *r.To)
	if resolver != nil {
		item.Badge = resolver.PreferredBadge(r.From.Badges)
	}
	if !r.SentAt.IsZero() {
		item.Date = timefmt.Relative(loc, r.SentAt, now)
	}

	ranges, err := snippet.Remap(r.Snippet, r.Body, r.BodyRanges)
	if err != nil {
		ctx = logging.WithMessageID(logging.WithConversationID(ctx, r.ConversationID), r.ID)
		log := logging.Component("search")
		log.Warn().Ctx(ctx).Err(err).Msg("snippet does not match message body")
	}
	item.Body = body.RenderChunks(snippet.SplitHighlights(r.Snippet), ranges, body.Options{
		DisableLinks:              true,
		DisableUniformEmojiSizing: true,
	})

	return item
}

func header(loc i18n.Translator, from, to Person) []body.Segment {
	switch {
	case from.IsMe && to.IsMe:
		return loc.Parts("noteToSelf", nil)
	case from.IsMe && to.IsGroup:
		return loc.Parts("searchResultHeader--you-to-group", map[string][]body.Segment{
			"receiverGroup": person(loc, to),
		})
	case from.IsMe:
		return loc.Parts("searchResultHeader--you-to-receiver", map[string][]body.Segment{
			"receiverContact": person(loc, to),
		})
	case to.IsGroup:
		return loc.Parts("searchResultHeader--sender-to-group", map[string][]body.Segment{
			"sender":        person(loc, from),
			"receiverGroup": person(loc, to),
		})
	default:
		return loc.Parts("searchResultHeader--sender-to-you", map[string][]body.Segment{
			"sender": person(loc, from),
		})
	}
}

func person(loc i18n.Translator, p Person) []body.Segment {
	if p.IsMe {
		return []body.Segment{body.Text(loc.Lookup("you", nil))}
	}
	return body.ContactName(p.Title)
}
