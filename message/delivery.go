package message

// DeliveryStatus is the state of a single message delivery on a customer channel.
type DeliveryStatus string

const (
	DeliveredOK                 DeliveryStatus = "DELIVERED_OK"
	DeliveredError              DeliveryStatus = "DELIVERED_ERROR"
	DeliveredErrorReviewed      DeliveryStatus = "DELIVERED_ERROR_REVIEWED"
	NotDeliveredLimited         DeliveryStatus = "NOT_DELIVERED_LIMITED"
	NotDeliveredLimitedReviewed DeliveryStatus = "NOT_DELIVERED_LIMITED_REVIEWED"
	GroupedPending              DeliveryStatus = "GROUPED_PENDING"
	GroupedReviewed             DeliveryStatus = "GROUPED_REVIEWED"
	InProgress                  DeliveryStatus = "IN_PROGRESS"
)

// Valid reports whether s is one of the statuses known to the service.
func (s DeliveryStatus) Valid() bool {
	switch s {
	case DeliveredOK, DeliveredError, DeliveredErrorReviewed,
		NotDeliveredLimited, NotDeliveredLimitedReviewed,
		GroupedPending, GroupedReviewed, InProgress:
		return true
	}
	return false
}

// Delivery describes how a message was delivered through one customer channel.
// All fields are populated by the service.
type Delivery struct {
	DeliveryID        int64          `json:"deliveryId"`
	MessageID         int64          `json:"messageId"`
	CustomerChannelID int64          `json:"customerChannelId"`
	Status            DeliveryStatus `json:"status"`
	DeliveryTime      int64          `json:"deliveryTime"`
	DeliveryDateTime  string         `json:"deliveryDateTime,omitempty"`
	Note              string         `json:"note,omitempty"`
	// Recipients is set for channels that deliver to a group, e.g. email.
	Recipients []string `json:"recipients,omitempty"`
}
