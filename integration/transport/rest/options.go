package rest

import (
	"log/slog"
	"net/http"
)

// Option configures a Transport.
type Option func(*Transport)

// WithHTTPClient replaces the client built by Start. Proxy, CA and tracing
// settings are then ignored.
func WithHTTPClient(c *http.Client) Option {
	return func(t *Transport) {
		if c != nil {
			t.customClient = c
		}
	}
}

// WithLogger sets the transport logger. Requests are logged at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Transport) {
		if logger != nil {
			t.logger = logger
		}
	}
}
