package body

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// BMP code points with Emoji_Presentation=Yes (Unicode emoji-data.txt).
var bmpEmojiPresentation = []rune{
	0x231A, 0x231B, 0x23E9, 0x23EA, 0x23EB, 0x23EC, 0x23F0, 0x23F3, 0x25FD, 0x25FE,
	0x2614, 0x2615,
	0x2648, 0x2649, 0x264A, 0x264B, 0x264C, 0x264D, 0x264E, 0x264F, 0x2650, 0x2651, 0x2652, 0x2653,
	0x267F, 0x2693, 0x26A1, 0x26AA, 0x26AB, 0x26BD, 0x26BE, 0x26C4, 0x26C5, 0x26CE,
	0x26D4, 0x26EA, 0x26F2, 0x26F3, 0x26F5, 0x26FA, 0x26FD, 0x2705, 0x270A, 0x270B,
	0x2728, 0x274C, 0x274E, 0x2753, 0x2754, 0x2755, 0x2757, 0x2795, 0x2796, 0x2797,
	0x27B0, 0x27BF, 0x2B1B, 0x2B1C, 0x2B50, 0x2B55,
}

func TestIsEmoji_BMPEmojiPresentation(t *testing.T) {
	for _, r := range bmpEmojiPresentation {
		t.Run(fmt.Sprintf("U+%04X", r), func(t *testing.T) {
			assert.True(t, IsEmoji(string(r)))
			assert.Equal(t, SizeExtraLarge, SizeClassOf(string(r)))
		})
	}
}

func TestIsEmoji(t *testing.T) {
	tests := []struct {
		name    string
		cluster string
		want    bool
	}{
		{"zodiac", "♈", true},
		{"zodiac with text selector", "♈︎", false},
		{"text default symbol", "☀", false},
		{"text default symbol with emoji selector", "☀️", true},
		{"keycap", "#️⃣", true},
		{"regional indicator pair", "🇩🇪", true},
		{"supplementary plane", "😀", true},
		{"letter", "a", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmoji(tt.cluster))
		})
	}
}

func TestRender_ZodiacOnlyIsEnlarged(t *testing.T) {
	b := Render("♈ ♓", nil, Options{})

	assert.Equal(t, SizeLarge, b.Size)
	assert.Equal(t, []Kind{KindEmoji, KindText, KindEmoji}, kinds(b.Segments))
}
