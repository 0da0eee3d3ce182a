// Package health provides HTTP handlers for process health monitoring.
//
// Handlers:
//   - Liveness: Process is running (no dependency checks)
//   - Readiness: All checks pass, e.g. the publisher worker is running
//   - NoContent: Returns 204 for minimal overhead
//
// Usage:
//
//	mux.HandleFunc("GET /health/live", health.Liveness)
//	mux.Handle("GET /health/ready", health.Readiness(logger, pub.Healthcheck))
//	mux.HandleFunc("GET /ping", health.NoContent)
//
// Checks must follow the func(context.Context) error signature, which
// publisher.Publisher.Healthcheck satisfies.
package health
