package queue_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/corp2world/c2w-go/core/queue"
)

func TestNew(t *testing.T) {
	t.Parallel()

	for _, capacity := range []int{0, -1} {
		q, err := queue.New[int](capacity)
		assert.ErrorIs(t, err, queue.ErrInvalidCapacity)
		assert.Nil(t, q)
	}

	q, err := queue.New[int](queue.DefaultCapacity)
	require.NoError(t, err)
	assert.Equal(t, queue.DefaultCapacity, q.Cap())
	assert.Equal(t, 0, q.Len())
}

func TestBounded_CapacityInvariant(t *testing.T) {
	t.Parallel()

	const capacity = 5
	q, err := queue.New[int](capacity)
	require.NoError(t, err)

	for i := range capacity {
		require.True(t, q.TryEnqueue(i), "enqueue %d", i)
	}

	assert.False(t, q.TryEnqueue(capacity), "enqueue beyond capacity must be rejected")
	assert.Equal(t, capacity, q.Len())
}

func TestBounded_FIFO(t *testing.T) {
	t.Parallel()

	q, err := queue.New[string](10)
	require.NoError(t, err)

	in := []string{"e1", "e2", "e3", "e4"}
	for _, v := range in {
		require.True(t, q.TryEnqueue(v))
	}

	ctx := context.Background()
	for _, want := range in {
		got, err := q.Dequeue(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestBounded_TryEnqueueDoesNotBlockWhenFull(t *testing.T) {
	t.Parallel()

	q, err := queue.New[int](1)
	require.NoError(t, err)
	require.True(t, q.TryEnqueue(1))

	done := make(chan bool, 1)
	go func() {
		done <- q.TryEnqueue(2)
	}()

	select {
	case ok := <-done:
		assert.False(t, ok)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("TryEnqueue blocked on a full queue")
	}
}

func TestBounded_DequeueBlocksUntilItem(t *testing.T) {
	t.Parallel()

	q, err := queue.New[int](1)
	require.NoError(t, err)

	got := make(chan int, 1)
	go func() {
		v, err := q.Dequeue(context.Background())
		if err == nil {
			got <- v
		}
	}()

	select {
	case <-got:
		t.Fatal("Dequeue returned before anything was enqueued")
	case <-time.After(50 * time.Millisecond):
	}

	require.True(t, q.TryEnqueue(7))

	select {
	case v := <-got:
		assert.Equal(t, 7, v)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for Dequeue")
	}
}

func TestBounded_DequeueCancelled(t *testing.T) {
	t.Parallel()

	t.Run("cancel interrupts a blocked dequeue", func(t *testing.T) {
		t.Parallel()

		q, err := queue.New[int](1)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() {
			_, err := q.Dequeue(ctx)
			errCh <- err
		}()

		time.Sleep(20 * time.Millisecond)
		cancel()

		select {
		case err := <-errCh:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(time.Second):
			t.Fatal("Dequeue was not interrupted")
		}
	})

	t.Run("cancelled context wins over queued items", func(t *testing.T) {
		t.Parallel()

		q, err := queue.New[int](2)
		require.NoError(t, err)
		require.True(t, q.TryEnqueue(1))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = q.Dequeue(ctx)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, q.Len())
	})
}

func TestBounded_Close(t *testing.T) {
	t.Parallel()

	q, err := queue.New[int](3)
	require.NoError(t, err)
	require.True(t, q.TryEnqueue(1))
	require.True(t, q.TryEnqueue(2))

	q.Close()
	q.Close()
	assert.True(t, q.Closed())

	assert.False(t, q.TryEnqueue(3), "closed queue must reject items")

	ctx := context.Background()
	v, err := q.Dequeue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	v, err = q.Dequeue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = q.Dequeue(ctx)
	assert.ErrorIs(t, err, queue.ErrClosed)
}

func TestBounded_ConcurrentProducers(t *testing.T) {
	t.Parallel()

	const (
		capacity  = 100
		producers = 20
		perWorker = 50
	)

	q, err := queue.New[int](capacity)
	require.NoError(t, err)

	var accepted atomic.Int64
	var g errgroup.Group
	for p := range producers {
		g.Go(func() error {
			for i := range perWorker {
				if q.TryEnqueue(p*perWorker + i) {
					accepted.Add(1)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int64(capacity), accepted.Load())
	assert.Equal(t, capacity, q.Len())
}
