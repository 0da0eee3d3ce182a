// Package appender forwards log records to Corp2World.
//
// Handler is a log/slog handler that turns every enabled record into a
// publisher event and submits it without blocking. Records are dropped when
// the publisher queue is full; the publisher counts and logs those drops.
//
//	pub, _ := publisher.New(client, publisher.WithLogger(appLogger))
//	_ = pub.Activate(ctx)
//	defer pub.Deactivate(context.Background())
//
//	log := slog.New(appender.New(pub, appender.WithLevel(slog.LevelError)))
//	log.Error("payment gateway down", "c2w.channel", "ops", "gateway", "stripe")
//
// Attributes whose key starts with "c2w." become message properties (without
// the prefix) and are left out of the message text. This holds inside
// groups too; the group name is not part of the property name:
//
//	log.WithGroup("req").Info("handled", "c2w.order", "o-17")
//	// property order=o-17
//
// The topic is either a constant (WithTopic) or a text/template evaluated
// per record (NewWithPattern) with fields Level, Message, Time and Attrs:
//
//	h, err := appender.NewWithPattern(pub, "[{{.Level}}] {{.Message}}")
//
// Never use a logger built on this handler as the publisher's own logger:
// publisher diagnostics would be fed back into the queue they describe.
package appender
