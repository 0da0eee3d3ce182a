// Package devfs provides a transport for local development that never talks
// to the network.
//
// Send stores every message as <id>_<topic>.json in the configured directory
// and returns an OK result carrying the assigned message id. FetchResponses
// reads <id>.responses.json from the same directory, so a developer can
// answer a dialog message by dropping a JSON array of responses next to it:
//
//	[{"messageId": 3, "respondedOption": "yes", "userId": "me", "channelId": 1}]
//
// Message ids continue from the highest id already present in the directory.
package devfs
