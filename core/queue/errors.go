package queue

import "errors"

var (
	// ErrClosed is returned by Dequeue once the queue is closed and drained.
	ErrClosed = errors.New("queue is closed")

	// ErrInvalidCapacity is returned when a queue is created with capacity below one.
	ErrInvalidCapacity = errors.New("queue capacity must be at least 1")
)
