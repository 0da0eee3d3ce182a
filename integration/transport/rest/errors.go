package rest

import "errors"

var (
	ErrInvalidConfig    = errors.New("rest: invalid configuration")
	ErrSendFailed       = errors.New("rest: failed to send message")
	ErrFetchFailed      = errors.New("rest: failed to fetch message responses")
	ErrUnexpectedStatus = errors.New("rest: unexpected response status")
	ErrMissingStatus    = errors.New("rest: result has no status")
)
