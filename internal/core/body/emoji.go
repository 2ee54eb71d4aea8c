package body

import (
	"strings"

	"github.com/rivo/uniseg"
)

const (
	variationText  = '\uFE0E'
	variationEmoji = '\uFE0F'
	keycap         = '\u20E3'
	zwj            = '\u200D'
)

type runeRange struct{ lo, hi rune }

// emojiPresentation lists the BMP code points with Emoji_Presentation=Yes,
// which render as emoji without a variation selector.
var emojiPresentation = []runeRange{
	{0x231A, 0x231B}, {0x23E9, 0x23EC}, {0x23F0, 0x23F0}, {0x23F3, 0x23F3},
	{0x25FD, 0x25FE}, {0x2614, 0x2615}, {0x2648, 0x2653}, {0x267F, 0x267F},
	{0x2693, 0x2693}, {0x26A1, 0x26A1}, {0x26AA, 0x26AB}, {0x26BD, 0x26BE},
	{0x26C4, 0x26C5}, {0x26CE, 0x26CE}, {0x26D4, 0x26D4}, {0x26EA, 0x26EA},
	{0x26F2, 0x26F3}, {0x26F5, 0x26F5}, {0x26FA, 0x26FA}, {0x26FD, 0x26FD},
	{0x2705, 0x2705}, {0x270A, 0x270B}, {0x2728, 0x2728}, {0x274C, 0x274C},
	{0x274E, 0x274E}, {0x2753, 0x2755}, {0x2757, 0x2757}, {0x2795, 0x2797},
	{0x27B0, 0x27B0}, {0x27BF, 0x27BF}, {0x2B1B, 0x2B1C}, {0x2B50, 0x2B50},
	{0x2B55, 0x2B55},
}

func hasEmojiPresentation(r rune) bool {
	for _, rr := range emojiPresentation {
		if r >= rr.lo && r <= rr.hi {
			return true
		}
	}
	return false
}

// IsEmoji reports whether a grapheme cluster displays as an emoji.
func IsEmoji(cluster string) bool {
	if cluster == "" || strings.ContainsRune(cluster, variationText) {
		return false
	}
	if strings.ContainsRune(cluster, keycap) {
		return true
	}

	first := []rune(cluster)[0]
	switch {
	case first >= 0x1F1E6 && first <= 0x1F1FF: // regional indicators
		return true
	case first >= 0x1F000 && first <= 0x1FAFF:
		return true
	case hasEmojiPresentation(first):
		return true
	case isTextDefaultSymbol(first):
		return strings.ContainsRune(cluster, variationEmoji) || strings.ContainsRune(cluster, zwj)
	}
	return false
}

// isTextDefaultSymbol covers symbol blocks whose members default to text
// presentation and only become emoji with U+FE0F.
func isTextDefaultSymbol(r rune) bool {
	switch {
	case r == 0x00A9, r == 0x00AE, r == 0x203C, r == 0x2049, r == 0x2122, r == 0x2139:
		return true
	case r >= 0x2194 && r <= 0x21AA:
		return true
	case r >= 0x2300 && r <= 0x23FF:
		return true
	case r >= 0x25AA && r <= 0x25FE:
		return true
	case r >= 0x2600 && r <= 0x27BF:
		return true
	case r >= 0x2934 && r <= 0x2935:
		return true
	case r >= 0x2B00 && r <= 0x2BFF:
		return true
	case r == 0x3030, r == 0x303D, r == 0x3297, r == 0x3299:
		return true
	}
	return false
}

// maxJumboEmoji is the largest emoji-only message that still gets an
// enlarged size class.
const maxJumboEmoji = 4

// SizeClassOf decides the uniform emoji size for a whole text. Only text
// made of at most four emoji (whitespace aside) is enlarged, and fewer emoji
// render larger.
func SizeClassOf(text string) SizeClass {
	count := 0
	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if strings.TrimSpace(cluster) == "" {
			continue
		}
		if !IsEmoji(cluster) {
			return SizeNormal
		}
		count++
		if count > maxJumboEmoji {
			return SizeNormal
		}
	}

	switch count {
	case 1:
		return SizeExtraLarge
	case 2:
		return SizeLarge
	case 3:
		return SizeMedium
	case 4:
		return SizeSmall
	default:
		return SizeNormal
	}
}

type emojiClassifier struct {
	size SizeClass
}

func (e emojiClassifier) Classify(text string) []Piece {
	var out []Piece
	plainStart, pos := 0, 0
	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if IsEmoji(cluster) {
			if pos > plainStart {
				out = append(out, Unclaimed(text[plainStart:pos]))
			}
			out = append(out, Claim(cluster, Segment{Kind: KindEmoji, Text: cluster, Size: e.size}))
			plainStart = pos + len(cluster)
		}
		pos += len(cluster)
	}
	if plainStart < len(text) {
		out = append(out, Unclaimed(text[plainStart:]))
	}
	return out
}
