package snippet

import (
	"strings"

	"github.com/colonyops/msgview/internal/core/body"
)

// SplitHighlights cuts a snippet into plain and highlighted chunks. An
// unterminated highlight runs to the end of the snippet and a stray closing
// sentinel is dropped.
func SplitHighlights(snippet string) []body.Chunk {
	var chunks []body.Chunk
	add := func(text string, highlight bool) {
		if text != "" {
			chunks = append(chunks, body.Chunk{Text: text, Highlight: highlight})
		}
	}

	rest := snippet
	for rest != "" {
		open := strings.Index(rest, HighlightLeft)
		if open < 0 {
			add(strings.ReplaceAll(rest, HighlightRight, ""), false)
			break
		}
		add(strings.ReplaceAll(rest[:open], HighlightRight, ""), false)
		rest = rest[open+len(HighlightLeft):]

		end := strings.Index(rest, HighlightRight)
		if end < 0 {
			add(strings.ReplaceAll(rest, HighlightLeft, ""), true)
			break
		}
		add(strings.ReplaceAll(rest[:end], HighlightLeft, ""), true)
		rest = rest[end+len(HighlightRight):]
	}
	return chunks
}
