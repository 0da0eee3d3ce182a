package c2w

import (
	"log/slog"
	"time"
)

// Option configures a Client.
type Option func(*Client)

// WithPollInterval sets how often WaitForResponse polls. Zero keeps the default.
func WithPollInterval(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.pollInterval = d
		}
	}
}

// WithLogger sets the client logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}
