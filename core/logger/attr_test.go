package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corp2world/c2w-go/core/logger"
)

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestErrorKind(t *testing.T) {
	t.Parallel()
	err := &url.Error{Op: "Post", URL: "https://x", Err: errors.New("refused")}
	attr := logger.ErrorKind(err)
	assert.Equal(t, "error_kind", attr.Key)
	assert.Equal(t, "*url.Error", attr.Value.String())

	assert.True(t, logger.ErrorKind(nil).Equal(slog.Attr{}))
}

func TestErrors(t *testing.T) {
	t.Parallel()
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "0", g[0].Key)
	assert.Equal(t, "2", g[1].Key)

	assert.True(t, logger.Errors(nil, nil).Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		attr  slog.Attr
		key   string
		value any
	}{
		{"message id", logger.MessageID(42), "message_id", int64(42)},
		{"event id", logger.EventID("e-1"), "event_id", "e-1"},
		{"topic", logger.Topic("alerts"), "topic", "alerts"},
		{"result status", logger.ResultStatus("ERROR"), "result_status", "ERROR"},
		{"queue size", logger.QueueSize(3), "queue_size", int64(3)},
		{"queue capacity", logger.QueueCapacity(1000), "queue_capacity", int64(1000)},
		{"request id", logger.RequestID("r-1"), "request_id", "r-1"},
		{"status code", logger.StatusCode(502), "status_code", int64(502)},
		{"attempt", logger.Attempt(2), "attempt", int64(2)},
		{"timeout", logger.Timeout(time.Second), "timeout", time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.value, tt.attr.Value.Any())
		})
	}

	assert.True(t, logger.MessageID(0).Equal(slog.Attr{}))
	assert.True(t, logger.EventID("").Equal(slog.Attr{}))
	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
	assert.True(t, logger.ResultStatus("").Equal(slog.Attr{}))
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json production logger", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithProduction("svc"), logger.WithOutput(&buf))
		log.Debug("hidden")
		log.Info("visible", logger.Topic("t"))

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "visible", rec["msg"])
		assert.Equal(t, "svc", rec["service"])
		assert.Equal(t, "production", rec["env"])
		assert.Equal(t, "t", rec["topic"])
	})

	t.Run("text logger with level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithTextFormatter(),
			logger.WithLevel(slog.LevelWarn),
			logger.WithOutput(&buf),
			logger.WithAttr(slog.String("component", "test")),
		)
		log.Info("hidden")
		log.Warn("shown")

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "msg=shown")
		assert.Contains(t, out, "component=test")
	})

	t.Run("discard logger", func(t *testing.T) {
		t.Parallel()
		assert.NotPanics(t, func() {
			logger.Discard().Error("nothing")
		})
	})
}
