package c2w

import "errors"

var (
	// ErrTransportNil is returned by New when no transport is given.
	ErrTransportNil = errors.New("c2w: transport is nil")

	// ErrStartFailed wraps transport start errors.
	ErrStartFailed = errors.New("c2w: failed to start transport")

	// ErrEmptyResult is returned when a transport reports neither a result nor an error.
	ErrEmptyResult = errors.New("c2w: transport returned no result")

	// ErrStopFailed wraps transport stop errors.
	ErrStopFailed = errors.New("c2w: failed to stop transport")
)
