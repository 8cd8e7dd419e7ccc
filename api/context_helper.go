package api

import (
	"context"
	"time"
)

// DefaultMailTimeout bounds a contact relay when no timeout is configured
const DefaultMailTimeout = 15 * time.Second

// WithMailTimeout creates a context bounded by timeout, or DefaultMailTimeout when
// timeout is not positive
func WithMailTimeout(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	if timeout <= 0 {
		timeout = DefaultMailTimeout
	}
	return context.WithTimeout(parent, timeout)
}
