// Package body turns raw message text into renderable segments: mentions,
// emoji, links and line breaks, plus the affordances shown after the text.
package body

import "strings"

// Kind identifies what a segment renders as.
type Kind int

const (
	KindText Kind = iota
	KindMention
	KindEmoji
	KindLink
	KindNewline
	KindContact
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindMention:
		return "mention"
	case KindEmoji:
		return "emoji"
	case KindLink:
		return "link"
	case KindNewline:
		return "newline"
	case KindContact:
		return "contact"
	default:
		return "unknown"
	}
}

// SizeClass is the display size applied uniformly to every emoji in a body.
type SizeClass int

const (
	SizeNormal SizeClass = iota
	SizeSmall
	SizeMedium
	SizeLarge
	SizeExtraLarge
)

func (s SizeClass) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	case SizeExtraLarge:
		return "extra-large"
	default:
		return ""
	}
}

// Segment is one renderable piece of text.
type Segment struct {
	Kind           Kind
	Text           string
	Href           string    // links only
	MentionID      string    // mentions only
	ConversationID string    // mentions only
	Size           SizeClass // emoji only
	Highlight      bool      // search match
}

// Text returns a plain text segment.
func Text(s string) Segment {
	return Segment{Kind: KindText, Text: s}
}

// Contact returns a segment naming a participant.
func Contact(title string) Segment {
	return Segment{Kind: KindContact, Text: title}
}

// PlainText flattens segments to the text a reader would see.
func PlainText(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
	}
	return b.String()
}

// mergeText joins adjacent text segments that share highlighting.
func mergeText(segs []Segment) []Segment {
	out := make([]Segment, 0, len(segs))
	for _, s := range segs {
		if n := len(out); n > 0 && s.Kind == KindText && out[n-1].Kind == KindText && out[n-1].Highlight == s.Highlight {
			out[n-1].Text += s.Text
			continue
		}
		out = append(out, s)
	}
	return out
}
