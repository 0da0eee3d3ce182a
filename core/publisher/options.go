package publisher

import (
	"log/slog"
	"time"
)

// Option configures a Publisher.
type Option func(*Publisher)

// WithQueueSize sets the queue capacity. Values below one are ignored.
// The size applies from the next Activate.
func WithQueueSize(n int) Option {
	return func(p *Publisher) {
		if n > 0 {
			p.queueSize = n
		}
	}
}

// WithShutdownTimeout bounds how long Deactivate waits for the worker to exit.
func WithShutdownTimeout(d time.Duration) Option {
	return func(p *Publisher) {
		if d > 0 {
			p.shutdownTimeout = d
		}
	}
}

// WithSendTimeout bounds a single send. Zero keeps the default.
func WithSendTimeout(d time.Duration) Option {
	return func(p *Publisher) {
		if d > 0 {
			p.sendTimeout = d
		}
	}
}

// WithLogger sets the logger for drop and send-failure diagnostics.
// Do not pass a logger whose handler feeds this same publisher.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		if logger != nil {
			p.logger = logger
		}
	}
}
