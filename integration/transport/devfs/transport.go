package devfs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/corp2world/c2w-go/core/logger"
	"github.com/corp2world/c2w-go/message"
)

const responsesSuffix = ".responses.json"

// Transport writes messages to a directory instead of sending them.
type Transport struct {
	dir    string
	logger *slog.Logger

	mu     sync.Mutex
	nextID int64
	ready  bool
}

// Option configures a Transport.
type Option func(*Transport)

// WithLogger sets the transport logger.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Transport) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// New creates a development transport storing messages under dir.
func New(dir string, opts ...Option) *Transport {
	t := &Transport{dir: dir, logger: logger.Discard()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start creates the directory and picks up the highest stored message id.
func (t *Transport) Start(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.start(ctx)
}

func (t *Transport) start(ctx context.Context) error {
	if t.ready {
		return nil
	}

	if err := os.MkdirAll(t.dir, 0o755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrStoreFailed, err)
	}

	entries, err := os.ReadDir(t.dir)
	if err != nil {
		return fmt.Errorf("%w: failed to list directory: %v", ErrStoreFailed, err)
	}
	for _, e := range entries {
		if e.IsDir() || strings.HasSuffix(e.Name(), responsesSuffix) {
			continue
		}
		prefix, _, ok := strings.Cut(e.Name(), "_")
		if !ok {
			continue
		}
		if id, err := strconv.ParseInt(prefix, 10, 64); err == nil && id > t.nextID {
			t.nextID = id
		}
	}

	t.ready = true
	t.logger.InfoContext(ctx, "devfs transport started",
		logger.Component("devfs"),
		slog.String("dir", t.dir),
		logger.MessageID(t.nextID))
	return nil
}

// Stop is a no-op.
func (t *Transport) Stop(ctx context.Context) error {
	return nil
}

// Send stores msg as JSON and returns an OK result with the assigned message id.
func (t *Transport) Send(ctx context.Context, msg *message.Message) (*message.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrStoreFailed, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.start(ctx); err != nil {
		return nil, err
	}

	id := t.nextID + 1
	stored := *msg
	stored.ID = id

	data, err := json.MarshalIndent(&stored, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal message: %v", ErrStoreFailed, err)
	}

	path := filepath.Join(t.dir, fmt.Sprintf("%d_%s.json", id, sanitizeFilename(msg.Topic)))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("%w: failed to write file: %v", ErrStoreFailed, err)
	}
	t.nextID = id

	t.logger.DebugContext(ctx, "message stored",
		logger.Component("devfs"),
		logger.MessageID(id),
		logger.Topic(msg.Topic),
		slog.String("path", path))

	res := message.NewResult(message.StatusOK, "stored")
	res.SetProperty(message.PropertyMessageID, strconv.FormatInt(id, 10))
	return res, nil
}

// ResponsesPath returns the file FetchResponses reads for messageID.
func (t *Transport) ResponsesPath(messageID int64) string {
	return filepath.Join(t.dir, strconv.FormatInt(messageID, 10)+responsesSuffix)
}

// FetchResponses reads the responses file for messageID. A missing file means no responses yet.
func (t *Transport) FetchResponses(ctx context.Context, messageID int64) ([]message.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrReadFailed, err)
	}

	data, err := os.ReadFile(t.ResponsesPath(messageID))
	if errors.Is(err, fs.ErrNotExist) {
		return []message.Response{}, nil
	}
	if err != nil {
		return nil, errors.Join(ErrReadFailed, err)
	}

	var responses []message.Response
	if err := json.Unmarshal(data, &responses); err != nil {
		return nil, errors.Join(ErrReadFailed, err)
	}
	if responses == nil {
		responses = []message.Response{}
	}
	return responses, nil
}

// sanitizeRegex removes filesystem-unsafe characters from filenames
var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename converts a topic into a short, safe, lower-case file name part.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "message"
	}
	return strings.ToLower(s)
}
