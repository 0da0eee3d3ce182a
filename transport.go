package c2w

import (
	"context"

	"github.com/corp2world/c2w-go/message"
)

// Transport delivers messages to the service and reads user responses.
type Transport interface {
	Start(ctx context.Context) error
	Send(ctx context.Context, msg *message.Message) (*message.Result, error)
	FetchResponses(ctx context.Context, messageID int64) ([]message.Response, error)
	Stop(ctx context.Context) error
}

// ResponseFetcher reads the responses recorded so far for a message.
// An empty slice means no user has responded yet.
type ResponseFetcher interface {
	FetchResponses(ctx context.Context, messageID int64) ([]message.Response, error)
}
