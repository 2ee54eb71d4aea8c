package snippet

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/msgview/internal/core/body"
)

const ph = body.PlaceholderString

func TestCore(t *testing.T) {
	tests := []struct {
		snippet string
		want    string
	}{
		{"...abc...", "abc"},
		{"…abc…", "abc"},
		{"xabcx", "abc"},
		{"...abcx", "abc"},
		{"<<left>>ab<<right>>c", "b"},
		{"a.b", "."},
		{"a", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.snippet, func(t *testing.T) {
			assert.Equal(t, tt.want, Core(tt.snippet))
		})
	}
}

func TestRemap(t *testing.T) {
	t.Run("marker offset counts the raw snippet", func(t *testing.T) {
		text := "hey " + ph + ", lunch at noon?"
		ranges := []body.Range{{Start: 4, Length: 1, MentionID: "a", ReplacementText: "Alice"}}
		snippet := "...<<left>>hey<<right>> " + ph + ", lunch..."

		got, err := Remap(snippet, text, ranges)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 24, got[0].Start)
		assert.Equal(t, "a", got[0].MentionID)
		assert.Equal(t, "Alice", got[0].ReplacementText)
		assert.Equal(t, 4, ranges[0].Start, "input ranges are not modified")
	})

	t.Run("offsets are utf-16 units", func(t *testing.T) {
		text := "😀 " + ph + " ok"
		ranges := []body.Range{{Start: 3, Length: 1, MentionID: "a"}}

		got, err := Remap(text, text, ranges)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 3, got[0].Start)
	})

	t.Run("ranges past the snippet are dropped", func(t *testing.T) {
		text := ph + " one two three " + ph
		ranges := []body.Range{
			{Start: 0, Length: 1, MentionID: "a"},
			{Start: 16, Length: 1, MentionID: "b"},
		}

		got, err := Remap(ph+" one tw", text, ranges)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "a", got[0].MentionID)
		assert.Equal(t, 0, got[0].Start)
	})

	t.Run("empty ranges", func(t *testing.T) {
		got, err := Remap("..."+ph+"...", ph, nil)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("snippet missing from body", func(t *testing.T) {
		ranges := []body.Range{{Start: 0, Length: 1, MentionID: "a"}}

		got, err := Remap("x"+ph+"yz", "completely different", ranges)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSnippetNotFound)
		assert.ErrorIs(t, err, ErrInconsistent)
		require.Len(t, got, 1, "matching continues from index zero")
		assert.Equal(t, 1, got[0].Start)
	})

	t.Run("more markers than ranges", func(t *testing.T) {
		text := "a" + ph + " b" + ph + " c"
		ranges := []body.Range{{Start: 1, Length: 1, MentionID: "a"}}

		got, err := Remap(text, text, ranges)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMarkerWithoutRange)
		assert.ErrorIs(t, err, ErrInconsistent)
		assert.NotErrorIs(t, err, ErrSnippetNotFound)
		require.Len(t, got, 1)
		assert.Equal(t, 1, got[0].Start)
	})
}

func TestRemap_Properties(t *testing.T) {
	text := ph + " and " + ph + " met " + ph + " at 😀 " + ph
	ranges := []body.Range{
		{Start: 0, Length: 1, MentionID: "a"},
		{Start: 6, Length: 1, MentionID: "b"},
		{Start: 12, Length: 1, MentionID: "c"},
		{Start: 20, Length: 1, MentionID: "d"},
	}

	snippets := []string{
		text,
		"..." + ph + " and " + ph + "...",
		"...<<left>>met<<right>> " + ph + " at 😀 " + ph,
		"x and " + ph + " met" + ph + ph + ph + ph,
	}

	for _, s := range snippets {
		t.Run(s, func(t *testing.T) {
			got, _ := Remap(s, text, ranges)

			markers := 0
			for _, r := range s {
				if r == body.Placeholder {
					markers++
				}
			}
			assert.LessOrEqual(t, len(got), markers)
			assert.True(t, slices.IsSortedFunc(got, func(a, b body.Range) int {
				return a.Start - b.Start
			}))
			for _, r := range got {
				assert.Equal(t, body.Placeholder, []rune(s)[runeIndexAtUTF16(s, r.Start)])
			}
		})
	}
}

func runeIndexAtUTF16(s string, offset int) int {
	units := 0
	for i, r := range []rune(s) {
		if units == offset {
			return i
		}
		if r >= 0x10000 {
			units += 2
		} else {
			units++
		}
	}
	return -1
}
