// Package logging holds the zerolog helpers shared by every package: a
// per-component logger and the ids carried on a context.
package logging

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component returns the global logger tagged with cmp=name.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}

// For is Component with the ids of ctx already attached, for loggers that
// are handed to code which does not pass a context to each event.
func For(ctx context.Context, name string) zerolog.Logger {
	c := log.With().Str("cmp", name)
	fields(ctx, func(key, value string) { c = c.Str(key, value) })
	return c.Logger()
}
