// Package queue provides a bounded, channel-backed FIFO queue for handing
// values from many producers to a single consumer.
//
//	q, err := queue.New[publisher.Event](1000)
//	if err != nil {
//		return err
//	}
//
//	// Producers never block.
//	if !q.TryEnqueue(evt) {
//		// full: drop and count
//	}
//
//	// The consumer blocks until a value arrives or ctx is done.
//	evt, err := q.Dequeue(ctx)
//
// Close stops new enqueues. Dequeue keeps returning buffered values and then
// returns ErrClosed.
package queue
