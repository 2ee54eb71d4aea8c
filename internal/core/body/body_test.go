package body

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(segs []Segment) []Kind {
	out := make([]Kind, len(segs))
	for i, s := range segs {
		out[i] = s.Kind
	}
	return out
}

func TestRender_MentionThenLink(t *testing.T) {
	text := "@mention https://example.com"
	ranges := []Range{{Start: 0, Length: 8, MentionID: "u1", ReplacementText: "Alice"}}

	b := Render(text, ranges, Options{})

	require.Len(t, b.Segments, 3)
	assert.Equal(t, []Kind{KindMention, KindText, KindLink}, kinds(b.Segments))
	assert.Equal(t, "@Alice", b.Segments[0].Text)
	assert.Equal(t, "u1", b.Segments[0].MentionID)
	assert.Equal(t, " ", b.Segments[1].Text)
	assert.Equal(t, "https://example.com", b.Segments[2].Text)
	assert.Equal(t, "https://example.com", b.Segments[2].Href)
	assert.Empty(t, b.Affordances)
}

func TestRender_DisableLinks(t *testing.T) {
	b := Render("go to https://example.com", nil, Options{DisableLinks: true})

	require.Len(t, b.Segments, 1)
	assert.Equal(t, KindText, b.Segments[0].Kind)
	assert.Equal(t, "go to https://example.com", b.Segments[0].Text)
}

func TestRender_LinkWithoutScheme(t *testing.T) {
	b := Render("visit example.com today", nil, Options{})

	require.Len(t, b.Segments, 3)
	assert.Equal(t, KindLink, b.Segments[1].Kind)
	assert.Equal(t, "example.com", b.Segments[1].Text)
	assert.Equal(t, "https://example.com", b.Segments[1].Href)
}

func TestRender_Newlines(t *testing.T) {
	b := Render("first\nsecond\n\nthird", nil, Options{DisableLinks: true})

	assert.Equal(t,
		[]Kind{KindText, KindNewline, KindText, KindNewline, KindNewline, KindText},
		kinds(b.Segments),
	)
	assert.Equal(t, "first\nsecond\n\nthird", PlainText(b.Segments))
}

func TestRender_MentionsPairInStartOrder(t *testing.T) {
	text := PlaceholderString + " and " + PlaceholderString
	ranges := []Range{
		{Start: 6, Length: 1, MentionID: "b", ReplacementText: "Bob"},
		{Start: 0, Length: 1, MentionID: "a", ReplacementText: "Alice"},
	}

	b := Render(text, ranges, Options{})

	require.Len(t, b.Segments, 3)
	assert.Equal(t, "@Alice", b.Segments[0].Text)
	assert.Equal(t, " and ", b.Segments[1].Text)
	assert.Equal(t, "@Bob", b.Segments[2].Text)
}

func TestRender_MentionAfterSurrogatePair(t *testing.T) {
	// The emoji takes two UTF-16 units, so "@Bob" starts at 3.
	text := "😀 @Bob hi"
	ranges := []Range{{Start: 3, Length: 4, MentionID: "b", ConversationID: "c-b", ReplacementText: "Bob"}}

	b := Render(text, ranges, Options{})

	assert.Equal(t, []Kind{KindEmoji, KindText, KindMention, KindText}, kinds(b.Segments))
	assert.Equal(t, SizeNormal, b.Segments[0].Size)
	assert.Equal(t, "@Bob", b.Segments[2].Text)
	assert.Equal(t, "c-b", b.Segments[2].ConversationID)
	assert.Equal(t, " hi", b.Segments[3].Text)
}

func TestRender_PlaceholderWithoutRangeStaysText(t *testing.T) {
	b := Render("a"+PlaceholderString+"b", nil, Options{})

	require.Len(t, b.Segments, 1)
	assert.Equal(t, KindText, b.Segments[0].Kind)
	assert.Equal(t, "a"+PlaceholderString+"b", b.Segments[0].Text)
}

func TestRender_EmojiSizing(t *testing.T) {
	t.Run("single emoji is extra large", func(t *testing.T) {
		b := Render("😀", nil, Options{})
		require.Len(t, b.Segments, 1)
		assert.Equal(t, KindEmoji, b.Segments[0].Kind)
		assert.Equal(t, SizeExtraLarge, b.Segments[0].Size)
		assert.Equal(t, SizeExtraLarge, b.Size)
	})

	t.Run("uniform sizing disabled", func(t *testing.T) {
		b := Render("😀", nil, Options{DisableUniformEmojiSizing: true})
		require.Len(t, b.Segments, 1)
		assert.Equal(t, SizeNormal, b.Segments[0].Size)
	})

	t.Run("emoji inside text stays normal", func(t *testing.T) {
		b := Render("hi 😀", nil, Options{})
		assert.Equal(t, []Kind{KindText, KindEmoji}, kinds(b.Segments))
		assert.Equal(t, SizeNormal, b.Segments[1].Size)
	})
}

func TestRender_Author(t *testing.T) {
	b := Render("hello", nil, Options{Author: "Ann 🎉"})

	assert.Equal(t, []Kind{KindText, KindEmoji}, kinds(b.Author))
	assert.Equal(t, "Ann 🎉", PlainText(b.Author))
}

func TestRender_MaxLength(t *testing.T) {
	b := Render("hello world", nil, Options{MaxLength: 6})

	assert.True(t, b.Truncated)
	assert.Equal(t, "hello", PlainText(b.Segments))
	require.Len(t, b.Affordances, 1)
	assert.Equal(t, AffordanceEllipsis, b.Affordances[0].Kind)
	assert.Equal(t, "...", b.Affordances[0].Label())
}

func TestRenderChunks_HighlightAndMentions(t *testing.T) {
	chunks := []Chunk{
		{Text: "see "},
		{Text: PlaceholderString, Highlight: true},
		{Text: " now"},
	}
	ranges := []Range{{Start: 12, Length: 1, MentionID: "a", ReplacementText: "Al"}}

	b := RenderChunks(chunks, ranges, Options{})

	require.Len(t, b.Segments, 3)
	assert.Equal(t, "see ", b.Segments[0].Text)
	assert.False(t, b.Segments[0].Highlight)
	assert.Equal(t, KindMention, b.Segments[1].Kind)
	assert.Equal(t, "@Al", b.Segments[1].Text)
	assert.True(t, b.Segments[1].Highlight)
	assert.Equal(t, " now", b.Segments[2].Text)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		limit     int
		want      string
		truncated bool
	}{
		{name: "no limit", text: "hello", limit: 0, want: "hello"},
		{name: "exact length", text: "hello", limit: 5, want: "hello"},
		{name: "cut", text: "hello", limit: 3, want: "hel", truncated: true},
		{name: "trailing space trimmed", text: "hi there", limit: 3, want: "hi", truncated: true},
		{name: "grapheme boundary", text: "👩‍💻👩‍💻", limit: 1, want: "👩‍💻", truncated: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := Truncate(tt.text, tt.limit)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.truncated, truncated)
		})
	}
}

func TestPipeline_EarlierClassifierWins(t *testing.T) {
	claimX := ClassifierFunc(func(text string) []Piece {
		if text == "x" {
			return []Piece{Claim(text, Segment{Kind: KindMention, Text: "X"})}
		}
		return []Piece{Unclaimed(text)}
	})
	seen := []string{}
	record := ClassifierFunc(func(text string) []Piece {
		seen = append(seen, text)
		return []Piece{Unclaimed(text)}
	})

	segs := Pipeline{claimX, record}.Run("x")

	require.Len(t, segs, 1)
	assert.Equal(t, "X", segs[0].Text)
	assert.Empty(t, seen, "claimed spans never reach later classifiers")
}
