package body

import "strings"

func classifyNewlines(text string) []Piece {
	lines := strings.Split(text, "\n")
	out := make([]Piece, 0, 2*len(lines))
	for i, line := range lines {
		if i > 0 {
			out = append(out, Claim("\n", Segment{Kind: KindNewline, Text: "\n"}))
		}
		if line != "" {
			out = append(out, Unclaimed(line))
		}
	}
	return out
}
