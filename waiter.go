package c2w

import (
	"context"
	"time"

	"github.com/corp2world/c2w-go/message"
)

// WaitForResponse polls f every interval until at least one response for
// messageID is available or timeout elapses. It returns an empty slice and a
// nil error on timeout. A timeout of zero or less performs exactly one fetch.
// Fetch errors are returned immediately. Cancelling ctx ends the wait with
// ctx.Err().
func WaitForResponse(ctx context.Context, f ResponseFetcher, messageID int64, timeout, interval time.Duration) ([]message.Response, error) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	deadline := time.Now().Add(timeout)

	for {
		responses, err := f.FetchResponses(ctx, messageID)
		if err != nil {
			return nil, err
		}
		if len(responses) > 0 {
			return responses, nil
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return []message.Response{}, nil
		}

		timer := time.NewTimer(min(interval, remaining))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}
