// Package logger provides structured logging utilities built on log/slog.
//
// New builds a *slog.Logger from functional options; the attribute helpers give
// every component of the client the same keys for the same facts (message ids,
// topics, queue sizes, errors).
//
//	log := logger.New(
//		logger.WithProduction("billing"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
//	pub := publisher.New(client, publisher.WithLogger(log))
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for nil or empty input, which slog drops, so
// they can be used without nil checks:
//
//	log.Error("send failed",
//		logger.Error(err),
//		logger.Topic(evt.Topic),
//		logger.EventID(evt.ID.String()),
//	)
//
//	log.Warn("event dropped",
//		logger.QueueSize(q.Len()),
//		logger.QueueCapacity(q.Cap()),
//	)
package logger
