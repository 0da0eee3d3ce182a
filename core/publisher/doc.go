// Package publisher delivers messages to the Corp2World service asynchronously
// without blocking the goroutine that produces them.
//
// A Publisher owns a bounded FIFO queue (core/queue) and exactly one worker
// goroutine. Submit is non-blocking: when the queue is full the event is
// dropped, counted in Stats().Dropped and reported with a warning log record.
// The worker sends events one at a time, in submission order. A failed send is
// logged and counted, never retried, and never stops the worker.
//
// # Lifecycle
//
//	pub, _ := publisher.New(transport,
//		publisher.WithQueueSize(1000),
//		publisher.WithLogger(log),
//	)
//
//	if err := pub.Activate(ctx); err != nil { // starts transport + worker once
//		return err
//	}
//	pub.Submit(publisher.NewEvent("Nightly import", "12034 rows", nil))
//	_ = pub.Deactivate(ctx) // stops worker, then transport
//
// Activate and Deactivate are idempotent and safe to call concurrently.
// Submit before Activate or after Deactivate is a no-op that returns false.
// Deactivate interrupts a worker blocked on an empty queue immediately; a send
// already in flight completes, and no further send starts.
//
// # errgroup
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(pub.Run(ctx))
//
// # Observability
//
// Stats returns submitted, dropped, rejected, abandoned, sent and failed
// counters plus the queue depth; pkg/metrics exports them to Prometheus.
package publisher
