package message

import "time"

// Response is a user's answer to a dialog message.
type Response struct {
	MessageID int64 `json:"messageId"`
	// Timestamp is the response time in milliseconds since the Unix epoch.
	Timestamp       int64      `json:"timestamp"`
	RespondedOption string     `json:"respondedOption"`
	UserID          string     `json:"userId"`
	ChannelID       int        `json:"channelId"`
	Properties      Properties `json:"properties,omitempty"`
}

// RespondedAt returns Timestamp as time.Time.
func (r Response) RespondedAt() time.Time {
	return time.UnixMilli(r.Timestamp)
}
