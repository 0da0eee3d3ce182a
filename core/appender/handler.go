package appender

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"maps"
	"strings"
	"text/template"
	"time"

	"github.com/corp2world/c2w-go/core/publisher"
)

const (
	// DefaultTopic is used when no topic or pattern is configured.
	DefaultTopic = "Message from slog handler"

	// PropertyPrefix marks attributes that become message properties.
	PropertyPrefix = "c2w."
)

// Submitter accepts events without blocking. *publisher.Publisher implements it.
type Submitter interface {
	Submit(evt publisher.Event) bool
}

// TopicData is the value a topic pattern is executed against.
type TopicData struct {
	Level   string
	Message string
	Time    time.Time
	Attrs   map[string]any
}

// Handler is a slog.Handler submitting records to a publisher.
type Handler struct {
	sub        Submitter
	level      slog.Leveler
	topic      string
	topicTmpl  *template.Template
	jsonLayout bool

	// props holds every c2w. attribute WithAttrs added, grouped or not;
	// attrs holds the other attributes added outside any group.
	props map[string]string
	attrs map[string]any
	// ops replays WithAttrs/WithGroup calls on the layout handler.
	ops   []func(slog.Handler) slog.Handler
	inGrp bool
}

// New creates a handler submitting to sub.
func New(sub Submitter, opts ...Option) *Handler {
	h := &Handler{
		sub:   sub,
		level: slog.LevelInfo,
		topic: DefaultTopic,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// NewWithPattern creates a handler whose topic is rendered from a text/template pattern.
func NewWithPattern(sub Submitter, pattern string, opts ...Option) (*Handler, error) {
	tmpl, err := template.New("topic").Option("missingkey=zero").Parse(pattern)
	if err != nil {
		return nil, err
	}
	return New(sub, append(opts, WithTopicTemplate(tmpl))...), nil
}

// Enabled reports whether level is at or above the configured minimum.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle renders r and submits it. It never blocks on the publisher.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	if h.sub == nil {
		return nil
	}

	props := maps.Clone(h.props)
	attrs := maps.Clone(h.attrs)
	if attrs == nil {
		attrs = make(map[string]any)
	}
	r.Attrs(func(a slog.Attr) bool {
		if name, ok := strings.CutPrefix(a.Key, PropertyPrefix); ok {
			if props == nil {
				props = make(map[string]string)
			}
			props[name] = a.Value.Resolve().String()
			return true
		}
		if !h.inGrp {
			attrs[a.Key] = a.Value.Resolve().Any()
		}
		return true
	})

	text, err := h.render(ctx, r)
	if err != nil {
		return err
	}

	h.sub.Submit(publisher.NewEvent(h.topicFor(r, attrs), text, props))
	return nil
}

// WithAttrs returns a handler that adds attrs to every record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	h2 := h.clone()
	for _, a := range attrs {
		if name, ok := strings.CutPrefix(a.Key, PropertyPrefix); ok {
			if h2.props == nil {
				h2.props = make(map[string]string)
			}
			h2.props[name] = a.Value.Resolve().String()
			continue
		}
		if h2.inGrp {
			continue
		}
		if h2.attrs == nil {
			h2.attrs = make(map[string]any)
		}
		h2.attrs[a.Key] = a.Value.Resolve().Any()
	}
	h2.ops = append(h2.ops, func(inner slog.Handler) slog.Handler {
		return inner.WithAttrs(attrs)
	})
	return h2
}

// WithGroup returns a handler that nests later attributes under name.
// Grouped c2w. attributes still become message properties under their
// unqualified name; other grouped attributes are not visible to topic patterns.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	h2 := h.clone()
	h2.inGrp = true
	h2.ops = append(h2.ops, func(inner slog.Handler) slog.Handler {
		return inner.WithGroup(name)
	})
	return h2
}

func (h *Handler) clone() *Handler {
	h2 := *h
	h2.props = maps.Clone(h.props)
	h2.attrs = maps.Clone(h.attrs)
	h2.ops = append([]func(slog.Handler) slog.Handler(nil), h.ops...)
	return &h2
}

// render formats r with the layout handler, without the trailing newline.
func (h *Handler) render(ctx context.Context, r slog.Record) (string, error) {
	var buf bytes.Buffer
	inner := h.layout(&buf)
	for _, op := range h.ops {
		inner = op(inner)
	}
	if err := inner.Handle(ctx, r); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

func (h *Handler) layout(w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug - 4,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if strings.HasPrefix(a.Key, PropertyPrefix) {
				return slog.Attr{}
			}
			return a
		},
	}
	if h.jsonLayout {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func (h *Handler) topicFor(r slog.Record, attrs map[string]any) string {
	if h.topicTmpl == nil {
		return h.topic
	}

	var buf bytes.Buffer
	err := h.topicTmpl.Execute(&buf, TopicData{
		Level:   r.Level.String(),
		Message: r.Message,
		Time:    r.Time,
		Attrs:   attrs,
	})
	if err != nil || buf.Len() == 0 {
		return h.topic
	}
	return buf.String()
}
