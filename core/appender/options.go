package appender

import (
	"log/slog"
	"text/template"
)

// Option configures a Handler.
type Option func(*Handler)

// WithLevel sets the minimum level forwarded. Default is Info.
func WithLevel(level slog.Leveler) Option {
	return func(h *Handler) {
		if level != nil {
			h.level = level
		}
	}
}

// WithTopic sets a constant topic. Empty keeps DefaultTopic.
func WithTopic(topic string) Option {
	return func(h *Handler) {
		if topic != "" {
			h.topic = topic
		}
	}
}

// WithTopicTemplate renders the topic per record from tmpl, executed
// against TopicData. A failing or empty rendering falls back to the constant topic.
func WithTopicTemplate(tmpl *template.Template) Option {
	return func(h *Handler) {
		if tmpl != nil {
			h.topicTmpl = tmpl
		}
	}
}

// WithJSONLayout renders the message text as JSON instead of key=value text.
func WithJSONLayout() Option {
	return func(h *Handler) {
		h.jsonLayout = true
	}
}
