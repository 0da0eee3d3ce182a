package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/corp2world/c2w-go/message"
)

// buildMessage creates a message from the topic, the text and the optional
// arguments:
//
//	<channelTypeId>=r1,r2   explicit recipients for a channel type
//	p_<name>=<value>        message property
//	test                    test message
//	d_<option>              dialog option
//
// Arguments that cannot be parsed are returned as warnings and skipped.
func buildMessage(topic, text string, args []string) (*message.Message, []string) {
	msg := message.New(topic, text)
	var warnings []string

	for _, arg := range args {
		switch {
		case strings.Contains(arg, "="):
			key, value, _ := strings.Cut(arg, "=")
			if name, ok := strings.CutPrefix(key, "p_"); ok {
				msg.SetProperty(name, value)
				continue
			}

			channelTypeID, err := strconv.ParseInt(key, 10, 64)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("cannot parse channel type id: %s", key))
				continue
			}
			var recipients []string
			for r := range strings.SplitSeq(value, ",") {
				if r = strings.TrimSpace(r); r != "" {
					recipients = append(recipients, r)
				}
			}
			if len(recipients) > 0 {
				msg.AddRecipients(channelTypeID, recipients...)
			}

		case strings.EqualFold(arg, "test"):
			msg.Test = true

		case strings.HasPrefix(arg, "d_"):
			msg.AddDialogOption(strings.TrimPrefix(arg, "d_"))

		default:
			warnings = append(warnings, fmt.Sprintf("ignoring argument: %s", arg))
		}
	}

	return msg, warnings
}
