package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/samber/lo"
	"golang.org/x/term"

	"github.com/colonyops/msgview/internal/core/body"
	"github.com/colonyops/msgview/internal/core/fixture"
)

const fallbackWidth = 80

// outputWidth is the configured width, else the terminal width of stdout,
// else fallbackWidth.
func (f *Flags) outputWidth() int {
	if f.Config != nil && f.Config.TUI.Width > 0 {
		return f.Config.TUI.Width
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallbackWidth
}

func loadFixture(path string) (*fixture.Document, error) {
	if path == "" {
		return nil, fmt.Errorf("no fixture given; use --fixture")
	}
	doc, err := fixture.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load fixture: %w", err)
	}
	return doc, nil
}

type segmentJSON struct {
	Kind      string `json:"kind"`
	Text      string `json:"text"`
	Href      string `json:"href,omitempty"`
	MentionID string `json:"mention_id,omitempty"`
	Size      string `json:"size,omitempty"`
	Highlight bool   `json:"highlight,omitempty"`
}

func segmentsJSON(segs []body.Segment) []segmentJSON {
	return lo.Map(segs, func(s body.Segment, _ int) segmentJSON {
		return segmentJSON{
			Kind:      s.Kind.String(),
			Text:      s.Text,
			Href:      s.Href,
			MentionID: s.MentionID,
			Size:      s.Size.String(),
			Highlight: s.Highlight,
		}
	})
}

// parseNow reads an RFC 3339 --now flag value, defaulting to the current
// time when empty.
func parseNow(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now %q: %w", value, err)
	}
	return t, nil
}
