package message

import "errors"

var (
	// ErrInvalidStatus is returned when a result status is neither OK nor ERROR.
	ErrInvalidStatus = errors.New("invalid result status")

	// ErrInvalidMessageID is returned when a result carries no usable message id.
	ErrInvalidMessageID = errors.New("invalid message id")
)
