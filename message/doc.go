// Package message defines the data model exchanged with the Corp2World service:
// outgoing messages, their deliveries, user responses to dialog messages and the
// result of a send call.
//
// All types marshal to the JSON shape the service expects (camelCase field names).
// Fields documented as populated by the service are ignored when sending.
//
// # Basic Usage
//
//	msg := message.New("Disk almost full", "/var is at 91%")
//	msg.SetProperty("host", "db-1")
//	msg.AddRecipients(1, "ops@example.com")
//	msg.AddDialogOption("Acknowledge")
//	msg.AddDialogOption("Escalate")
//
//	res, err := client.Send(ctx, msg)
//	if err != nil {
//		return err
//	}
//	id, err := res.MessageID()
package message
