package mongo

import (
	"context"
	"time"
)

// WithTimeout bounds a single store call by timeout without extending an
// earlier deadline already carried by ctx.
func WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	deadline, hasDeadline := ctx.Deadline()
	if hasDeadline && time.Until(deadline) < timeout {
		return context.WithDeadline(ctx, deadline)
	}
	return context.WithTimeout(ctx, timeout)
}
