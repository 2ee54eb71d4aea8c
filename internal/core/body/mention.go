package body

import "strings"

// mentionClassifier pairs the i-th placeholder it sees with the i-th
// mention range. It keeps its cursor across calls so one pipeline can be
// run over several chunks of the same text; build a fresh one per render.
type mentionClassifier struct {
	mentions []Range
	next     int
}

func (m *mentionClassifier) Classify(text string) []Piece {
	var out []Piece
	for {
		i := strings.IndexRune(text, Placeholder)
		if i < 0 {
			break
		}
		if i > 0 {
			out = append(out, Unclaimed(text[:i]))
		}
		out = append(out, m.claim())
		text = text[i+len(PlaceholderString):]
	}
	if text != "" {
		out = append(out, Unclaimed(text))
	}
	return out
}

// claim consumes the next mention range. A placeholder without a range
// stays as plain text but is still claimed so no later layer reads it.
func (m *mentionClassifier) claim() Piece {
	defer func() { m.next++ }()
	if m.next >= len(m.mentions) {
		return Claim(PlaceholderString, Text(PlaceholderString))
	}
	r := m.mentions[m.next]
	return Claim(PlaceholderString, Segment{
		Kind:           KindMention,
		Text:           "@" + r.ReplacementText,
		MentionID:      r.MentionID,
		ConversationID: r.ConversationID,
	})
}
