package publisher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/corp2world/c2w-go/core/logger"
	"github.com/corp2world/c2w-go/core/queue"
)

// Publisher forwards events to a transport asynchronously.
// Producers call Submit, which never blocks; a single worker goroutine drains
// the bounded queue and sends events one at a time in submission order.
// When the queue is full the event is dropped and counted.
//
// Example:
//
//	pub, err := publisher.New(client, publisher.WithQueueSize(500))
//	if err != nil {
//		return err
//	}
//	if err := pub.Activate(ctx); err != nil {
//		return err
//	}
//	defer pub.Deactivate(context.Background())
//
//	pub.Submit(publisher.NewEvent("Backup finished", "42 GB in 3m", nil))
type Publisher struct {
	transport Transport
	logger    *slog.Logger

	queueSize       int
	shutdownTimeout time.Duration
	sendTimeout     time.Duration

	// mu serializes Activate and Deactivate.
	mu               sync.Mutex
	transportStarted bool
	cancel           context.CancelFunc
	done             chan struct{}

	state atomic.Int32
	queue atomic.Pointer[queue.Bounded[Event]]

	submitted      atomic.Int64
	dropped        atomic.Int64
	rejected       atomic.Int64
	abandoned      atomic.Int64
	sent           atomic.Int64
	failed         atomic.Int64
	lastActivityAt atomic.Int64
}

// Stats is a point-in-time snapshot of publisher counters.
type Stats struct {
	Submitted int64 // accepted into the queue
	Dropped   int64 // rejected because the queue was full
	Rejected  int64 // submitted while the publisher was not running
	Abandoned int64 // still queued when the publisher was deactivated
	Sent      int64 // acknowledged with status OK
	Failed    int64 // transport error, ERROR status or panic
	QueueLen  int
	QueueCap  int
	State     State
	// LastActivityAt is the time of the last finished send attempt.
	LastActivityAt time.Time
}

// New creates a stopped publisher. Call Activate to start it.
func New(t Transport, opts ...Option) (*Publisher, error) {
	if t == nil {
		return nil, ErrTransportNil
	}

	def := DefaultConfig()
	p := &Publisher{
		transport:       t,
		logger:          logger.Discard(),
		queueSize:       def.QueueSize,
		shutdownTimeout: def.ShutdownTimeout,
		sendTimeout:     def.SendTimeout,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// NewFromConfig creates a publisher from configuration. Options override config values.
func NewFromConfig(cfg Config, t Transport, opts ...Option) (*Publisher, error) {
	allOpts := append([]Option{
		WithQueueSize(cfg.QueueSize),
		WithShutdownTimeout(cfg.ShutdownTimeout),
		WithSendTimeout(cfg.SendTimeout),
	}, opts...)

	return New(t, allOpts...)
}

// State returns the current lifecycle state.
func (p *Publisher) State() State {
	return State(p.state.Load())
}

// Activate starts the transport, sizes the queue and starts the worker.
// It is idempotent: concurrent and repeated calls start the transport and the
// worker once. If the transport fails to start the publisher stays disabled.
// A worker left behind by a timed out Deactivate is waited for first; if ctx
// ends before it exits, Activate returns ErrWorkerBusy.
func (p *Publisher) Activate(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.State() == StateRunning {
		return nil
	}

	if err := p.awaitPreviousWorker(ctx); err != nil {
		return err
	}

	if !p.transportStarted {
		if err := p.transport.Start(ctx); err != nil {
			p.logger.ErrorContext(ctx, "cannot start transport, publisher disabled",
				logger.Component("publisher"),
				logger.Error(err))
			return errors.Join(ErrTransportStart, err)
		}
		p.transportStarted = true
	}

	q, err := queue.New[Event](p.queueSize)
	if err != nil {
		return err
	}
	p.queue.Store(q)

	workerCtx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan struct{})
	p.state.Store(int32(StateRunning))

	go p.run(workerCtx, q, p.done)

	p.logger.InfoContext(ctx, "publisher activated",
		logger.Component("publisher"),
		logger.QueueCapacity(q.Cap()))

	return nil
}

// awaitPreviousWorker blocks until the worker of the previous activation has
// exited. At most one worker goroutine is ever live.
func (p *Publisher) awaitPreviousWorker(ctx context.Context) error {
	if p.done == nil {
		return nil
	}

	select {
	case <-p.done:
		return nil
	default:
	}

	p.logger.WarnContext(ctx, "waiting for previous publisher worker to exit",
		logger.Component("publisher"))

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return errors.Join(ErrWorkerBusy, ctx.Err())
	}
}

// Submit queues evt for asynchronous delivery and reports whether it was accepted.
// It never blocks. Events are dropped when the queue is full or the publisher
// is not running; both cases are counted in Stats.
func (p *Publisher) Submit(evt Event) bool {
	if p.State() != StateRunning {
		p.rejected.Add(1)
		return false
	}

	q := p.queue.Load()
	if q == nil {
		p.rejected.Add(1)
		return false
	}

	if q.TryEnqueue(evt) {
		p.submitted.Add(1)
		return true
	}

	if q.Closed() {
		p.rejected.Add(1)
		return false
	}

	p.dropped.Add(1)
	p.logger.Warn("publisher queue is full, event dropped",
		logger.Component("publisher"),
		logger.EventID(evt.ID.String()),
		logger.Topic(evt.Topic),
		logger.QueueCapacity(q.Cap()))
	return false
}

// Deactivate stops the worker and the transport. A send in flight is allowed
// to finish; no new send starts once Deactivate has been called, even if
// events are still queued. Calling Deactivate on a publisher that was never
// activated, or twice, is safe. When the worker does not exit in time the
// error wraps ErrShutdownTimeout and the next Activate waits for it.
func (p *Publisher) Deactivate(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error

	if p.State() == StateRunning {
		p.state.Store(int32(StateStopping))
		p.cancel()

		if err := p.waitWorker(ctx); err != nil {
			errs = append(errs, err)
		}

		if q := p.queue.Load(); q != nil {
			q.Close()
			if n := q.Len(); n > 0 {
				p.abandoned.Add(int64(n))
				p.logger.WarnContext(ctx, "publisher deactivated with queued events",
					logger.Component("publisher"),
					logger.QueueSize(n))
			}
		}

		// p.done is kept so the next Activate can wait for a worker
		// that outlived the shutdown timeout.
		p.cancel = nil
		p.state.Store(int32(StateStopped))
	}

	if p.transportStarted {
		if err := p.transport.Stop(ctx); err != nil {
			p.logger.WarnContext(ctx, "error while stopping transport",
				logger.Component("publisher"),
				logger.Error(err))
			errs = append(errs, errors.Join(ErrTransportStop, err))
		}
		p.transportStarted = false
	}

	if len(errs) > 0 {
		p.logger.WarnContext(ctx, "publisher deactivated with errors",
			logger.Component("publisher"),
			logger.Errors(errs...))
	}

	return errors.Join(errs...)
}

func (p *Publisher) waitWorker(ctx context.Context) error {
	timer := time.NewTimer(p.shutdownTimeout)
	defer timer.Stop()

	select {
	case <-p.done:
		return nil
	case <-timer.C:
		p.logger.WarnContext(ctx, "publisher worker did not stop in time, a send may still be in flight",
			logger.Component("publisher"),
			logger.Timeout(p.shutdownTimeout))
		return fmt.Errorf("%w after %s", ErrShutdownTimeout, p.shutdownTimeout)
	case <-ctx.Done():
		return errors.Join(ErrShutdownTimeout, ctx.Err())
	}
}

// Run provides errgroup compatibility. The returned function activates the
// publisher, blocks until ctx is cancelled and then deactivates it.
func (p *Publisher) Run(ctx context.Context) func() error {
	return func() error {
		if err := p.Activate(ctx); err != nil {
			return err
		}

		<-ctx.Done()

		stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.shutdownTimeout+time.Second)
		defer cancel()
		return p.Deactivate(stopCtx)
	}
}

// Stats returns current counters.
func (p *Publisher) Stats() Stats {
	s := Stats{
		Submitted: p.submitted.Load(),
		Dropped:   p.dropped.Load(),
		Rejected:  p.rejected.Load(),
		Abandoned: p.abandoned.Load(),
		Sent:      p.sent.Load(),
		Failed:    p.failed.Load(),
		State:     p.State(),
	}

	if q := p.queue.Load(); q != nil {
		s.QueueLen = q.Len()
		s.QueueCap = q.Cap()
	}

	if ts := p.lastActivityAt.Load(); ts > 0 {
		s.LastActivityAt = time.UnixMilli(ts)
	}

	return s
}

// Healthcheck returns nil while the worker is running.
func (p *Publisher) Healthcheck(ctx context.Context) error {
	if p.State() != StateRunning {
		return errors.Join(ErrHealthcheckFailed, ErrNotRunning)
	}
	return nil
}
