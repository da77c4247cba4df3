// Package lgctx carries a lager logger through a context.Context so that
// collaborators with context-only signatures (the breach oracle) can still
// log inside the caller's session.
package lgctx

import (
	"context"

	"code.cloudfoundry.org/lager"
)

type loggerKey struct{}

func NewContext(ctx context.Context, logger lager.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext never returns nil. Without a logger in the context the returned
// logger discards everything.
func FromContext(ctx context.Context) lager.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(lager.Logger); ok && logger != nil {
		return logger
	}

	return NewNullLogger()
}

func WithSession(ctx context.Context, task string, data ...lager.Data) lager.Logger {
	return FromContext(ctx).Session(task, data...)
}

func WithData(ctx context.Context, data lager.Data) lager.Logger {
	return FromContext(ctx).WithData(data)
}
