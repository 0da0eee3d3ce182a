package c2w

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/corp2world/c2w-go/core/logger"
	"github.com/corp2world/c2w-go/message"
	"github.com/corp2world/c2w-go/pkg/async"
)

// Client is the service facade over a Transport. It is safe for concurrent use.
type Client struct {
	transport    Transport
	logger       *slog.Logger
	pollInterval time.Duration

	mu      sync.Mutex
	started bool
}

// New creates a client. The transport is started lazily on first use or by Start.
func New(t Transport, opts ...Option) (*Client, error) {
	if t == nil {
		return nil, ErrTransportNil
	}

	c := &Client{
		transport:    t,
		logger:       logger.Discard(),
		pollInterval: DefaultPollInterval,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// NewFromConfig creates a client from configuration. Options override config values.
func NewFromConfig(cfg Config, t Transport, opts ...Option) (*Client, error) {
	allOpts := append([]Option{WithPollInterval(cfg.PollInterval)}, opts...)
	return New(t, allOpts...)
}

// Start starts the transport. Repeated calls are no-ops.
func (c *Client) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return nil
	}

	if err := c.transport.Start(ctx); err != nil {
		c.logger.ErrorContext(ctx, "cannot start transport",
			logger.Component("client"),
			logger.Error(err))
		return errors.Join(ErrStartFailed, err)
	}
	c.started = true

	c.logger.InfoContext(ctx, "client started", logger.Component("client"))
	return nil
}

// Stop stops the transport. Stopping a client that was never started, or
// stopping twice, is a no-op.
func (c *Client) Stop(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started {
		return nil
	}
	c.started = false

	if err := c.transport.Stop(ctx); err != nil {
		c.logger.WarnContext(ctx, "error while stopping transport",
			logger.Component("client"),
			logger.Error(err))
		return errors.Join(ErrStopFailed, err)
	}

	c.logger.InfoContext(ctx, "client stopped", logger.Component("client"))
	return nil
}

// Send delivers msg and returns the service result. A non-OK status is
// reported in the result, not as an error.
func (c *Client) Send(ctx context.Context, msg *message.Message) (*message.Result, error) {
	if err := c.Start(ctx); err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := c.transport.Send(ctx, msg)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, ErrEmptyResult
	}

	id, _ := res.MessageID()
	c.logger.DebugContext(ctx, "message sent",
		logger.Component("client"),
		logger.Topic(msg.Topic),
		logger.ResultStatus(res.Status.String()),
		logger.MessageID(id),
		logger.Elapsed(start))

	return res, nil
}

// FetchResponses returns the responses recorded so far for messageID.
func (c *Client) FetchResponses(ctx context.Context, messageID int64) ([]message.Response, error) {
	if err := c.Start(ctx); err != nil {
		return nil, err
	}
	return c.transport.FetchResponses(ctx, messageID)
}

// WaitForResponse polls for user responses to a dialog message until at least
// one arrives or timeout elapses. See the package-level WaitForResponse.
func (c *Client) WaitForResponse(ctx context.Context, messageID int64, timeout time.Duration) ([]message.Response, error) {
	c.logger.DebugContext(ctx, "waiting for message response",
		logger.Component("client"),
		logger.MessageID(messageID),
		logger.Timeout(timeout))

	poller := &attemptLogger{client: c}
	responses, err := WaitForResponse(ctx, poller, messageID, timeout, c.pollInterval)
	if err != nil {
		c.logger.ErrorContext(ctx, "cannot get message response",
			logger.Component("client"),
			logger.MessageID(messageID),
			logger.Attempt(poller.attempts),
			logger.Error(err))
		return nil, err
	}

	c.logger.DebugContext(ctx, "message response wait finished",
		logger.Component("client"),
		logger.MessageID(messageID),
		logger.Attempt(poller.attempts),
		logger.Count("responses", len(responses)))
	return responses, nil
}

// attemptLogger logs every poll made by WaitForResponse. The waiter polls
// sequentially, so attempts needs no locking.
type attemptLogger struct {
	client   *Client
	attempts int
}

func (a *attemptLogger) FetchResponses(ctx context.Context, messageID int64) ([]message.Response, error) {
	a.attempts++
	a.client.logger.DebugContext(ctx, "polling message responses",
		logger.Component("client"),
		logger.MessageID(messageID),
		logger.Attempt(a.attempts))
	return a.client.FetchResponses(ctx, messageID)
}

// WaitForResponseAsync runs WaitForResponse in the background.
func (c *Client) WaitForResponseAsync(ctx context.Context, messageID int64, timeout time.Duration) *async.Future[[]message.Response] {
	return async.Async(ctx, messageID, func(ctx context.Context, id int64) ([]message.Response, error) {
		return c.WaitForResponse(ctx, id, timeout)
	})
}
