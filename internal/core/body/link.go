package body

import (
	"strings"

	"mvdan.cc/xurls/v2"
)

// linkPattern matches URLs with or without a scheme. A compiled regexp
// holds no per-match state, so sharing it between renders is safe.
var linkPattern = xurls.Relaxed()

func classifyLinks(text string) []Piece {
	locs := linkPattern.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return []Piece{Unclaimed(text)}
	}

	out := make([]Piece, 0, 2*len(locs)+1)
	pos := 0
	for _, loc := range locs {
		if loc[0] > pos {
			out = append(out, Unclaimed(text[pos:loc[0]]))
		}
		match := text[loc[0]:loc[1]]
		out = append(out, Claim(match, Segment{Kind: KindLink, Text: match, Href: href(match)}))
		pos = loc[1]
	}
	if pos < len(text) {
		out = append(out, Unclaimed(text[pos:]))
	}
	return out
}

// href returns the navigable form of a detected link.
func href(match string) string {
	switch {
	case strings.Contains(match, "://"), strings.HasPrefix(strings.ToLower(match), "mailto:"):
		return match
	case strings.Contains(match, "@") && !strings.Contains(match, "/"):
		return "mailto:" + match
	default:
		return "https://" + match
	}
}
