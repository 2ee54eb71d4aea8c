package logging

import "context"

type contextKey string

// Context keys double as the log field names they populate.
const (
	conversationIDKey contextKey = "conversation_id"
	messageIDKey      contextKey = "message_id"
	entryIDKey        contextKey = "entry_id"
)

var fieldKeys = []contextKey{conversationIDKey, messageIDKey, entryIDKey}

// WithConversationID adds a conversation ID to the context.
func WithConversationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, conversationIDKey, id)
}

// WithMessageID adds a message ID to the context.
func WithMessageID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, messageIDKey, id)
}

// WithEntryID adds the id of the fixture entry being rendered.
func WithEntryID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, entryIDKey, id)
}

// GetConversationID returns the conversation ID, or "" when unset.
func GetConversationID(ctx context.Context) string {
	return value(ctx, conversationIDKey)
}

// GetMessageID returns the message ID, or "" when unset.
func GetMessageID(ctx context.Context) string {
	return value(ctx, messageIDKey)
}

// GetEntryID returns the entry ID, or "" when unset.
func GetEntryID(ctx context.Context) string {
	return value(ctx, entryIDKey)
}

func value(ctx context.Context, key contextKey) string {
	id, _ := ctx.Value(key).(string)
	return id
}

// fields calls fn for every id set on ctx.
func fields(ctx context.Context, fn func(key, value string)) {
	for _, k := range fieldKeys {
		if v := value(ctx, k); v != "" {
			fn(string(k), v)
		}
	}
}
