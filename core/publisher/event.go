package publisher

import (
	"maps"
	"time"

	"github.com/google/uuid"

	"github.com/corp2world/c2w-go/message"
)

// Event is an outbound message waiting in the publisher queue.
// It is immutable once created: NewEvent copies the property map.
type Event struct {
	ID         uuid.UUID
	Topic      string
	Text       string
	Properties map[string]string
	CreatedAt  time.Time
}

// NewEvent creates an event with a fresh id.
func NewEvent(topic, text string, props map[string]string) Event {
	return Event{
		ID:         uuid.New(),
		Topic:      topic,
		Text:       text,
		Properties: maps.Clone(props),
		CreatedAt:  time.Now(),
	}
}

// Message converts the event into the message sent to the service.
func (e Event) Message() *message.Message {
	msg := message.New(e.Topic, e.Text)
	if !e.CreatedAt.IsZero() {
		msg.Timestamp = e.CreatedAt.UnixMilli()
	}
	if len(e.Properties) > 0 {
		msg.Properties = message.Properties(maps.Clone(e.Properties))
	}
	return msg
}
