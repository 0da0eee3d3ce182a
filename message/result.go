package message

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// PropertyMessageID is the result property holding the id assigned to a sent message.
const PropertyMessageID = "messageId"

// Status is the outcome of a call to the service.
// The zero value is StatusUnknown, so a result decoded without a status is never OK.
type Status int

const (
	StatusUnknown Status = iota
	StatusOK
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusUnknown:
		return "UNKNOWN"
	case StatusOK:
		return "OK"
	case StatusError:
		return "ERROR"
	}
	return "Status(" + strconv.Itoa(int(s)) + ")"
}

// MarshalJSON encodes the status as its wire name. StatusUnknown has none.
func (s Status) MarshalJSON() ([]byte, error) {
	switch s {
	case StatusOK, StatusError:
		return json.Marshal(s.String())
	}
	return nil, fmt.Errorf("%w: %d", ErrInvalidStatus, int(s))
}

// UnmarshalJSON decodes "OK" or "ERROR".
func (s *Status) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}
	switch name {
	case "OK":
		*s = StatusOK
	case "ERROR":
		*s = StatusError
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStatus, name)
	}
	return nil
}

// Result is what the service returns for a send call.
type Result struct {
	Status     Status     `json:"status"`
	Response   any        `json:"response,omitempty"`
	Properties Properties `json:"properties,omitempty"`
}

// NewResult builds a result without properties.
func NewResult(status Status, response any) *Result {
	return &Result{Status: status, Response: response}
}

// OK reports whether the call succeeded.
func (r *Result) OK() bool {
	return r != nil && r.Status == StatusOK
}

// SetProperty sets a result property, allocating the bag on first use.
func (r *Result) SetProperty(name, value string) {
	if r.Properties == nil {
		r.Properties = make(Properties)
	}
	r.Properties.Set(name, value)
}

// MessageID returns the server-assigned id of the sent message.
func (r *Result) MessageID() (int64, error) {
	if r == nil {
		return 0, ErrInvalidMessageID
	}
	raw, ok := r.Properties[PropertyMessageID]
	if !ok || raw == "" {
		return 0, ErrInvalidMessageID
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMessageID, raw)
	}
	return id, nil
}
