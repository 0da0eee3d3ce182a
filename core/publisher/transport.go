package publisher

import (
	"context"

	"github.com/corp2world/c2w-go/message"
)

// Sender delivers a single message. Implementations must be safe to call
// repeatedly once started.
type Sender interface {
	Send(ctx context.Context, msg *message.Message) (*message.Result, error)
}

// Lifecycle is the start/stop contract of a transport. Both calls must be
// idempotent and Stop must not fail when the transport was never started.
type Lifecycle interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// Transport is what the publisher forwards events to.
// c2w.Client and the transports under integration/transport implement it.
type Transport interface {
	Sender
	Lifecycle
}
