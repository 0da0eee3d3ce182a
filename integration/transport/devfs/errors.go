package devfs

import "errors"

var (
	ErrStoreFailed = errors.New("devfs: failed to store message")
	ErrReadFailed  = errors.New("devfs: failed to read responses")
)
