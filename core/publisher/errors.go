package publisher

import "errors"

var (
	// ErrTransportNil is returned when a publisher is created without a transport.
	ErrTransportNil = errors.New("publisher transport is nil")

	// ErrTransportStart is returned by Activate when the transport fails to start.
	// The publisher stays disabled until a later Activate succeeds.
	ErrTransportStart = errors.New("failed to start publisher transport")

	// ErrTransportStop wraps errors returned by the transport on Deactivate.
	ErrTransportStop = errors.New("failed to stop publisher transport")

	// ErrShutdownTimeout is returned when the worker does not exit in time.
	ErrShutdownTimeout = errors.New("publisher shutdown timeout exceeded")

	// ErrWorkerBusy is returned by Activate when the worker of a previous
	// activation is still sending and ctx ends before it exits.
	ErrWorkerBusy = errors.New("previous publisher worker is still running")

	// ErrNotRunning is reported by Healthcheck when the worker is not running.
	ErrNotRunning = errors.New("publisher is not running")

	// ErrHealthcheckFailed wraps every healthcheck failure.
	ErrHealthcheckFailed = errors.New("publisher healthcheck failed")
)

var (
	errSenderPanicked = errors.New("sender panicked")
	errResultNotOK    = errors.New("service returned ERROR status")
	errEmptyResult    = errors.New("transport returned no result")
)
