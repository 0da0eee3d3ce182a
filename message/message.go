package message

import "time"

// NoExpiration is the TTL value meaning the message never expires.
const NoExpiration int64 = -1

// Message is a single notification sent through the Corp2World service.
// Topic and Text are the content; the remaining fields control routing and
// scheduling. Fields marked as populated by the service are returned in
// results and should be left empty when sending.
type Message struct {
	// Populated by the service.
	ID         int64  `json:"id,omitempty"`
	CustomerID int64  `json:"customerId,omitempty"`
	DateTime   string `json:"dateTime,omitempty"`
	ClientIP   string `json:"clientIp,omitempty"`

	Topic string `json:"topic"`
	Text  string `json:"text"`

	// Timestamp is the creation time in milliseconds since the Unix epoch.
	Timestamp int64 `json:"timestamp"`
	// TTL is the time-to-live in seconds, NoExpiration by default.
	TTL int64 `json:"ttl"`

	Deliveries []Delivery `json:"deliveries,omitempty"`

	// ChannelRecipients maps a channel type id to explicit recipient addresses.
	// Used by customer channels configured to take recipients from the message.
	ChannelRecipients map[int64][]string `json:"channelRecipients,omitempty"`

	// DeliveryTime schedules delivery in the future (milliseconds since the Unix epoch).
	DeliveryTime int64 `json:"deliveryTime,omitempty"`

	// Test messages exercise channel settings without reaching the actual channel.
	Test bool `json:"test"`

	DialogOptions []string   `json:"dialogOptions,omitempty"`
	Properties    Properties `json:"properties,omitempty"`
}

// New creates a message stamped with the current time and no expiration.
func New(topic, text string) *Message {
	return &Message{
		Topic:     topic,
		Text:      text,
		Timestamp: time.Now().UnixMilli(),
		TTL:       NoExpiration,
	}
}

// SetProperty sets a message property, allocating the bag on first use.
func (m *Message) SetProperty(name, value string) {
	if m.Properties == nil {
		m.Properties = make(Properties)
	}
	m.Properties.Set(name, value)
}

// AddRecipients appends recipients for the given channel type.
func (m *Message) AddRecipients(channelTypeID int64, recipients ...string) {
	if len(recipients) == 0 {
		return
	}
	if m.ChannelRecipients == nil {
		m.ChannelRecipients = make(map[int64][]string)
	}
	m.ChannelRecipients[channelTypeID] = append(m.ChannelRecipients[channelTypeID], recipients...)
}

// AddDialogOption turns the message into a dialog and adds an answer option.
func (m *Message) AddDialogOption(option string) {
	m.DialogOptions = append(m.DialogOptions, option)
}

// IsDialog reports whether recipients are asked to pick one of the dialog options.
func (m *Message) IsDialog() bool {
	return len(m.DialogOptions) > 0
}

// CreatedAt returns Timestamp as time.Time.
func (m *Message) CreatedAt() time.Time {
	return time.UnixMilli(m.Timestamp)
}
