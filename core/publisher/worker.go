package publisher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/corp2world/c2w-go/core/logger"
	"github.com/corp2world/c2w-go/core/queue"
)

// run is the worker loop. It exits when the state leaves Running, when ctx is
// cancelled (interrupting a blocked Dequeue) or when the queue is closed.
func (p *Publisher) run(ctx context.Context, q *queue.Bounded[Event], done chan struct{}) {
	defer close(done)

	p.logger.DebugContext(ctx, "publisher worker started", logger.Component("publisher"))

	for p.State() == StateRunning {
		evt, err := q.Dequeue(ctx)
		if err != nil {
			if !errors.Is(err, context.Canceled) && !errors.Is(err, queue.ErrClosed) {
				p.logger.ErrorContext(ctx, "publisher worker dequeue failed",
					logger.Component("publisher"),
					logger.Error(err))
			}
			break
		}

		// Deactivate may have started while we were blocked.
		if p.State() != StateRunning {
			p.abandoned.Add(1)
			break
		}

		if err := p.publish(evt); err != nil {
			p.failed.Add(1)
			p.logger.Error("cannot send message",
				logger.Component("publisher"),
				logger.EventID(evt.ID.String()),
				logger.Topic(evt.Topic),
				logger.ErrorKind(err),
				logger.Error(err))
		} else {
			p.sent.Add(1)
		}
		p.lastActivityAt.Store(time.Now().UnixMilli())
	}

	p.logger.Debug("publisher worker terminated", logger.Component("publisher"))
}

// publish sends one event. Transport errors, ERROR results and panics are all
// returned as errors so the loop can log them and move on.
func (p *Publisher) publish(evt Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errSenderPanicked, r)
		}
	}()

	ctx := context.Background()
	if p.sendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.sendTimeout)
		defer cancel()
	}

	start := time.Now()
	res, err := p.transport.Send(ctx, evt.Message())
	if err != nil {
		return err
	}
	if !res.OK() {
		if res == nil {
			return errEmptyResult
		}
		return fmt.Errorf("%w: %v", errResultNotOK, res.Response)
	}

	id, _ := res.MessageID()
	p.logger.Debug("message sent",
		logger.Component("publisher"),
		logger.EventID(evt.ID.String()),
		logger.MessageID(id),
		logger.Duration(time.Since(start)))

	return nil
}
