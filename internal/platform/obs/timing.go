package obs

import (
	"context"
	"log/slog"
	"time"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// WithRequestID returns a copy of ctx carrying the request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// RequestID returns the request id stored in ctx, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Time starts a timer for the named operation. Call the returned func
// (usually deferred) with a pointer to the operation's error.
func Time(ctx context.Context, logger *slog.Logger, name string) func(errp *error) {
	start := time.Now()

	if logger == nil {
		logger = slog.Default()
	}
	reqID := RequestID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			logger.LogAttrs(ctx, slog.LevelWarn, "operation failed",
				slog.String("req_id", reqID),
				slog.String("op", name),
				slog.Int64("dur_ms", dur.Milliseconds()),
				slog.Any("err", *errp),
			)
			return
		}
		logger.LogAttrs(ctx, slog.LevelInfo, "operation done",
			slog.String("req_id", reqID),
			slog.String("op", name),
			slog.Int64("dur_ms", dur.Milliseconds()),
		)
	}
}
