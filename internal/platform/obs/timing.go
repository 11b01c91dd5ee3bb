package obs

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// WithRequestID returns a child context carrying the request id used by Time.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Time logs the duration of an operation once the returned func is called.
// Pass a pointer to the named error result to log failures at WARN.
func Time(ctx context.Context, log logrus.FieldLogger, name string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		entry := log.WithFields(logrus.Fields{
			"req_id": RequestID(ctx),
			"op":     name,
			"dur_ms": time.Since(start).Milliseconds(),
		})

		if errp != nil && *errp != nil {
			entry.WithError(*errp).Warn("operation failed")
			return
		}
		entry.Debug("operation finished")
	}
}
