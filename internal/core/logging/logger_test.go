package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureGlobal(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestComponent(t *testing.T) {
	buf := captureGlobal(t)

	logger := Component("snippet")
	logger.Warn().Msg("no match")

	entry := decode(t, buf)
	assert.Equal(t, "snippet", entry["cmp"])
	assert.Equal(t, "no match", entry["message"])
	assert.Equal(t, "warn", entry["level"])
}

func TestFor(t *testing.T) {
	buf := captureGlobal(t)

	ctx := WithEntryID(WithConversationID(context.Background(), "conv-1"), "e1")
	logger := For(ctx, "timeline")
	logger.Error().Msg("cannot render entry")

	entry := decode(t, buf)
	assert.Equal(t, "timeline", entry["cmp"])
	assert.Equal(t, "conv-1", entry["conversation_id"])
	assert.Equal(t, "e1", entry["entry_id"])
	assert.NotContains(t, entry, "message_id")
}
