package platform

import (
	"context"
	"os/signal"
)

// NewShutdownContext returns a context canceled when the process receives
// one of the platform's termination signals.
func NewShutdownContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}
