package logger

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"
)

// Helpers return the empty Attr for nil or empty values; slog skips it.

// Error creates an attribute for a single error under the key "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ErrorKind records the dynamic type of err, e.g. "*url.Error".
func ErrorKind(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("error_kind", fmt.Sprintf("%T", err))
}

// Errors groups the non-nil errors under "errors", keyed by position.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed logs the time since start.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// Timeout creates an attribute for a configured timeout.
func Timeout(d time.Duration) slog.Attr {
	return slog.Duration("timeout", d)
}

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// MessageID is the server-assigned id of a sent message.
func MessageID(id int64) slog.Attr {
	if id == 0 {
		return slog.Attr{}
	}
	return slog.Int64("message_id", id)
}

// EventID is the client-side id of a queued event.
func EventID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("event_id", id)
}

// Topic creates an attribute for a message topic.
func Topic(topic string) slog.Attr {
	return slog.String("topic", topic)
}

// ResultStatus records the status of a send result.
func ResultStatus(status string) slog.Attr {
	if status == "" {
		return slog.Attr{}
	}
	return slog.String("result_status", status)
}

// QueueSize records the number of queued events.
func QueueSize(n int) slog.Attr {
	return slog.Int("queue_size", n)
}

// QueueCapacity records the maximum number of queued events.
func QueueCapacity(n int) slog.Attr {
	return slog.Int("queue_capacity", n)
}

// RequestID creates an attribute for outgoing request ids.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Method creates an attribute for HTTP methods.
func Method(method string) slog.Attr {
	return slog.String("method", method)
}

// URL creates an attribute for a request URL.
func URL(u string) slog.Attr {
	return slog.String("url", u)
}

// StatusCode creates an attribute for HTTP status codes.
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

// Count creates a generic counter attribute.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Attempt records a 1-based attempt number, e.g. a response poll.
func Attempt(n int) slog.Attr {
	return slog.Int("attempt", n)
}
