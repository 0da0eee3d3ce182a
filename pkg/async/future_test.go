package async_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corp2world/c2w-go/pkg/async"
)

func double(ctx context.Context, n int) (int, error) {
	return n * 2, nil
}

func TestAsync(t *testing.T) {
	t.Parallel()

	t.Run("returns value", func(t *testing.T) {
		t.Parallel()

		f := async.Async(context.Background(), 21, double)
		v, err := f.Await()
		require.NoError(t, err)
		assert.Equal(t, 42, v)
		assert.True(t, f.IsComplete())
	})

	t.Run("propagates error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		f := async.Async(context.Background(), "x", func(ctx context.Context, s string) (string, error) {
			return "", boom
		})
		_, err := f.Await()
		assert.ErrorIs(t, err, boom)
	})

	t.Run("pre-cancelled context skips the call", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var called atomic.Bool
		f := async.Async(ctx, 1, func(ctx context.Context, n int) (int, error) {
			called.Store(true)
			return n, nil
		})
		_, err := f.Await()
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called.Load())
	})
}

func TestFuture_AwaitWithTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	defer close(release)

	f := async.Async(context.Background(), 1, func(ctx context.Context, n int) (int, error) {
		<-release
		return n, nil
	})

	assert.False(t, f.IsComplete())
	_, err := f.AwaitWithTimeout(20 * time.Millisecond)
	assert.ErrorIs(t, err, async.ErrTimeout)
}

func TestFuture_AwaitContext(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	defer close(release)

	f := async.Async(context.Background(), 1, func(ctx context.Context, n int) (int, error) {
		<-release
		return n, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := f.AwaitContext(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWaitAll(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	values, err := async.WaitAll(
		async.Async(ctx, 1, double),
		async.Async(ctx, 2, double),
		async.Async(ctx, 3, double),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 6}, values)

	boom := errors.New("boom")
	_, err = async.WaitAll(
		async.Async(ctx, 1, double),
		async.Async(ctx, 2, func(ctx context.Context, n int) (int, error) { return 0, boom }),
	)
	assert.ErrorIs(t, err, boom)
}

func TestWaitAny(t *testing.T) {
	t.Parallel()

	t.Run("first to finish wins", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		slow := async.Async(ctx, 1, func(ctx context.Context, n int) (int, error) {
			time.Sleep(200 * time.Millisecond)
			return n, nil
		})
		fast := async.Async(ctx, 2, double)

		index, v, err := async.WaitAny(slow, fast)
		require.NoError(t, err)
		assert.Equal(t, 1, index)
		assert.Equal(t, 4, v)
	})

	t.Run("no futures", func(t *testing.T) {
		t.Parallel()

		index, _, err := async.WaitAny[int]()
		assert.Equal(t, -1, index)
		assert.ErrorIs(t, err, async.ErrNoFutures)
	})
}
