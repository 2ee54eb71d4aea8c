package search

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/msgview/internal/core/body"
	"github.com/colonyops/msgview/internal/core/i18n"
	"github.com/colonyops/msgview/internal/core/logging"
	"github.com/colonyops/msgview/internal/core/nav"
)

var now = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf).Hook(logging.ContextHook{})
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func TestFormat_Headers(t *testing.T) {
	loc := i18n.Default()
	me := &Person{ID: "me", Title: "Me", IsMe: true}
	ann := &Person{ID: "ann", Title: "Ann"}
	club := &Person{ID: "club", Title: "Book Club", IsGroup: true}

	tests := []struct {
		name     string
		from, to *Person
		want     string
	}{
		{"note to self", me, me, "Note to Self"},
		{"you to group", me, club, "You in Book Club"},
		{"you to contact", me, ann, "You to Ann"},
		{"sender to group", ann, club, "Ann in Book Club"},
		{"sender to you", ann, me, "Ann to You"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := Format(context.Background(), loc, Result{
				ID:      "m1",
				Snippet: "hello",
				Body:    "hello",
				From:    tt.from,
				To:      tt.to,
			}, FirstBadge, now)

			assert.False(t, item.Empty)
			assert.Equal(t, tt.want, body.PlainText(item.Header))
		})
	}
}

func TestFormat_MissingPeople(t *testing.T) {
	item := Format(context.Background(), i18n.Default(), Result{ID: "m1", ConversationID: "c1"}, nil, now)

	assert.True(t, item.Empty)
	assert.Empty(t, item.Header)
	assert.Equal(t, "c1", item.ConversationID)
}

func TestFormat_Body(t *testing.T) {
	buf := captureLogs(t)
	ph := body.PlaceholderString

	item := Format(context.Background(), i18n.Default(), Result{
		ID:             "m1",
		ConversationID: "c1",
		SentAt:         now.Add(-2 * time.Hour),
		Snippet:        "...ask " + ph + " about <<left>>lunch<<right>> today...",
		Body:           "Please ask " + ph + " about lunch today, thanks",
		BodyRanges:     []body.Range{{Start: 11, Length: 1, MentionID: "u2", ReplacementText: "Bo"}},
		From:           &Person{Title: "Ann", Badges: []Badge{{ID: "b1"}, {ID: "b2"}}},
		To:             &Person{IsMe: true},
	}, FirstBadge, now)

	assert.Empty(t, buf.String(), "consistent snippets log nothing")
	assert.Equal(t, "2h", item.Date)
	require.NotNil(t, item.Badge)
	assert.Equal(t, "b1", item.Badge.ID)

	segs := item.Body.Segments
	assert.Equal(t, "...ask @Bo about lunch today...", body.PlainText(segs))
	require.Len(t, segs, 5)
	assert.Equal(t, body.KindMention, segs[1].Kind)
	assert.Equal(t, "u2", segs[1].MentionID)
	assert.Equal(t, "lunch", segs[3].Text)
	assert.True(t, segs[3].Highlight)
	assert.False(t, segs[4].Highlight)
}

func TestFormat_InconsistentSnippetIsLogged(t *testing.T) {
	buf := captureLogs(t)
	ph := body.PlaceholderString

	item := Format(context.Background(), i18n.Default(), Result{
		ID:             "m9",
		ConversationID: "c9",
		Snippet:        "x" + ph + " and " + ph + "y",
		Body:           "unrelated",
		BodyRanges:     []body.Range{{Start: 0, Length: 1, MentionID: "u1", ReplacementText: "Al"}},
		From:           &Person{Title: "Ann"},
		To:             &Person{IsMe: true},
	}, nil, now)

	assert.Equal(t, "x@Al and "+ph+"y", body.PlainText(item.Body.Segments))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.SplitN(buf.Bytes(), []byte("\n"), 2)[0], &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "search", entry["cmp"])
	assert.Equal(t, "c9", entry["conversation_id"])
	assert.Equal(t, "m9", entry["message_id"])
}

func TestItem_Open(t *testing.T) {
	var got []nav.ShowConversationArgs
	n := nav.NavigatorFunc(func(args nav.ShowConversationArgs) { got = append(got, args) })

	Item{ID: "m1", ConversationID: "c1"}.Open(n)

	assert.Equal(t, []nav.ShowConversationArgs{{ConversationID: "c1", MessageID: "m1"}}, got)
}
