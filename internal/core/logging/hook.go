package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook copies the conversation, message and entry ids of an event's
// context onto the event. Install it on the global logger; events opt in
// with Ctx.
type ContextHook struct{}

func (ContextHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	ctx := e.GetCtx()
	if ctx == nil || ctx == context.Background() {
		return
	}
	fields(ctx, func(key, value string) { e.Str(key, value) })
}
