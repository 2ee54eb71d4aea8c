package body

import (
	"slices"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/samber/lo"
)

// Placeholder marks the position of a mention inside message text.
const Placeholder = '\uFFFC'

// PlaceholderString is Placeholder as a string.
const PlaceholderString = string(Placeholder)

// Range annotates a span of message text. Offsets are UTF-16 code units
// into the exact text the range was produced for.
type Range struct {
	Start           int    `json:"start"                      yaml:"start"`
	Length          int    `json:"length"                     yaml:"length"`
	MentionID       string `json:"mention_id,omitempty"       yaml:"mention_id"`
	ConversationID  string `json:"conversation_id,omitempty"  yaml:"conversation_id"`
	ReplacementText string `json:"replacement_text,omitempty" yaml:"replacement_text"`
}

// IsMention reports whether the range references a participant.
func (r Range) IsMention() bool {
	return r.MentionID != ""
}

// Mentions returns the mention ranges ordered by start offset.
func Mentions(ranges []Range) []Range {
	mentions := lo.Filter(ranges, func(r Range, _ int) bool { return r.IsMention() })
	slices.SortStableFunc(mentions, func(a, b Range) int { return a.Start - b.Start })
	return mentions
}

// ReplaceMentions swaps the text covered by each mention range for a single
// Placeholder. Ranges are applied from the end of the text backwards so the
// offsets of earlier ranges stay valid.
func ReplaceMentions(text string, ranges []Range) string {
	mentions := Mentions(ranges)
	for i := len(mentions) - 1; i >= 0; i-- {
		r := mentions[i]
		if r.Start < 0 || r.Length < 0 {
			continue
		}
		if r.Start > UTF16Len(text) {
			continue
		}
		start := UTF16ToByte(text, r.Start)
		end := UTF16ToByte(text, r.Start+r.Length)
		text = text[:start] + PlaceholderString + text[end:]
	}
	return text
}

// UTF16Len returns the length of s in UTF-16 code units.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		n += runeUnits(r)
	}
	return n
}

// UTF16ToByte converts a UTF-16 offset into s to a byte offset. Offsets
// that land inside a surrogate pair resolve to the start of that rune and
// offsets past the end clamp to len(s).
func UTF16ToByte(s string, offset int) int {
	if offset <= 0 {
		return 0
	}
	units := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		next := units + runeUnits(r)
		if next > offset {
			return i
		}
		units = next
		i += size
		if units == offset {
			return i
		}
	}
	return len(s)
}

// ByteToUTF16 converts a byte offset into s to a UTF-16 offset.
func ByteToUTF16(s string, offset int) int {
	if offset > len(s) {
		offset = len(s)
	}
	return UTF16Len(s[:offset])
}

func runeUnits(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}
