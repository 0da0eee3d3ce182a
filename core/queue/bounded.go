package queue

import (
	"context"
	"sync"
)

// DefaultCapacity is the capacity used when none is configured.
const DefaultCapacity = 1000

// Bounded is a fixed-capacity FIFO buffer between many producers and one consumer.
// Producers never block: TryEnqueue reports false when the buffer is full.
// The consumer blocks in Dequeue until an item arrives, the context is done,
// or the queue is closed.
type Bounded[T any] struct {
	ch chan T

	mu     sync.RWMutex
	closed bool
}

// New creates a queue that holds at most capacity items.
func New[T any](capacity int) (*Bounded[T], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Bounded[T]{ch: make(chan T, capacity)}, nil
}

// TryEnqueue stores v if there is room. It returns false without waiting when the
// queue is full or closed.
func (q *Bounded[T]) TryEnqueue(v T) bool {
	// The read lock keeps Close from closing the channel under a concurrent send.
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return false
	}

	select {
	case q.ch <- v:
		return true
	default:
		return false
	}
}

// Dequeue removes the oldest item, blocking while the queue is empty.
// It returns ctx.Err() when ctx is done first, and ErrClosed when the queue has
// been closed and no items remain.
func (q *Bounded[T]) Dequeue(ctx context.Context) (T, error) {
	var zero T

	// An already-cancelled context wins over buffered items.
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case v, ok := <-q.ch:
		if !ok {
			return zero, ErrClosed
		}
		return v, nil
	}
}

// Len returns the number of queued items.
func (q *Bounded[T]) Len() int {
	return len(q.ch)
}

// Cap returns the queue capacity.
func (q *Bounded[T]) Cap() int {
	return cap(q.ch)
}

// Close stops accepting items. Items already queued can still be dequeued.
// Close is idempotent.
func (q *Bounded[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	close(q.ch)
}

// Closed reports whether Close has been called.
func (q *Bounded[T]) Closed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}
