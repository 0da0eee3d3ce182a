package rest

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/corp2world/c2w-go/core/logger"
	"github.com/corp2world/c2w-go/message"
)

const (
	pathPostMessage = "/message/post"
	pathGetResponse = "/message/response"

	headerRequestID = "X-Request-ID"

	// maxErrorBody bounds how much of an unexpected response body is drained.
	maxErrorBody = 64 << 10
)

// Transport talks to the Corp2World REST API over HTTP(S).
// It is safe for concurrent use.
type Transport struct {
	cfg          Config
	baseURL      string
	logger       *slog.Logger
	customClient *http.Client

	mu      sync.RWMutex
	client  *http.Client
	started bool
}

// New validates cfg and creates a transport. Zero optional fields take their defaults.
func New(cfg Config, opts ...Option) (*Transport, error) {
	cfg = cfg.withDefaults()

	if cfg.Token == "" {
		return nil, fmt.Errorf("%w: Token is required", ErrInvalidConfig)
	}
	if cfg.Key == "" {
		return nil, fmt.Errorf("%w: Key is required", ErrInvalidConfig)
	}
	u, err := url.Parse(cfg.ServiceURL)
	if err != nil {
		return nil, fmt.Errorf("%w: ServiceURL: %v", ErrInvalidConfig, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: ServiceURL must use http or https", ErrInvalidConfig)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: ServiceURL host is required", ErrInvalidConfig)
	}
	if cfg.ProxyPort <= 0 || cfg.ProxyPort > 65535 {
		return nil, fmt.Errorf("%w: ProxyPort must be between 1 and 65535", ErrInvalidConfig)
	}
	if cfg.MaxConns < 0 {
		return nil, fmt.Errorf("%w: MaxConns must not be negative", ErrInvalidConfig)
	}
	if cfg.HTTPTimeout < 0 {
		return nil, fmt.Errorf("%w: HTTPTimeout must not be negative", ErrInvalidConfig)
	}

	t := &Transport{
		cfg:     cfg,
		baseURL: strings.TrimRight(u.String(), "/"),
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// MustNew is like New but panics on invalid config.
func MustNew(cfg Config, opts ...Option) *Transport {
	t, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Start builds the HTTP client. Repeated calls are no-ops.
func (t *Transport) Start(ctx context.Context) error {
	_, err := t.start(ctx)
	return err
}

func (t *Transport) start(ctx context.Context) (*http.Client, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return t.client, nil
	}

	client := t.customClient
	if client == nil {
		rt, err := t.roundTripper()
		if err != nil {
			return nil, err
		}
		client = &http.Client{Transport: rt, Timeout: t.cfg.HTTPTimeout}
	}

	t.client = client
	t.started = true

	t.logger.InfoContext(ctx, "rest transport started",
		logger.Component("rest"),
		logger.URL(t.baseURL))
	return client, nil
}

func (t *Transport) roundTripper() (http.RoundTripper, error) {
	base := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxConnsPerHost:       t.cfg.MaxConns,
		MaxIdleConnsPerHost:   t.cfg.MaxConns,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: time.Second,
	}

	if t.cfg.ProxyHost != "" {
		proxyURL := &url.URL{
			Scheme: "http",
			Host:   net.JoinHostPort(t.cfg.ProxyHost, strconv.Itoa(t.cfg.ProxyPort)),
		}
		if t.cfg.ProxyUser != "" {
			proxyURL.User = url.UserPassword(t.cfg.ProxyUser, t.cfg.ProxyPassword)
		}
		base.Proxy = http.ProxyURL(proxyURL)
	}

	if t.cfg.CAFile != "" {
		pem, err := os.ReadFile(t.cfg.CAFile)
		if err != nil {
			return nil, fmt.Errorf("%w: CAFile: %v", ErrInvalidConfig, err)
		}
		pool, err := x509.SystemCertPool()
		if err != nil || pool == nil {
			pool = x509.NewCertPool()
		}
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("%w: CAFile contains no PEM certificates", ErrInvalidConfig)
		}
		base.TLSClientConfig = &tls.Config{RootCAs: pool, MinVersion: tls.VersionTLS12}
	}

	if t.cfg.Tracing {
		return otelhttp.NewTransport(base), nil
	}
	return base, nil
}

// Stop releases idle connections. Stopping a transport that was never started is a no-op.
func (t *Transport) Stop(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.started {
		return nil
	}
	t.client.CloseIdleConnections()
	t.client = nil
	t.started = false

	t.logger.InfoContext(ctx, "rest transport stopped", logger.Component("rest"))
	return nil
}

func (t *Transport) httpClient(ctx context.Context) (*http.Client, error) {
	t.mu.RLock()
	client := t.client
	t.mu.RUnlock()
	if client != nil {
		return client, nil
	}
	return t.start(ctx)
}

// Send posts msg to the service. A non-200 reply is not an error: it yields a
// result with status ERROR and the HTTP status line as the response.
func (t *Transport) Send(ctx context.Context, msg *message.Message) (*message.Result, error) {
	client, err := t.httpClient(ctx)
	if err != nil {
		return nil, errors.Join(ErrSendFailed, err)
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return nil, errors.Join(ErrSendFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+pathPostMessage, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Join(ErrSendFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.do(client, req)
	if err != nil {
		return nil, errors.Join(ErrSendFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		return message.NewResult(message.StatusError, resp.Status), nil
	}

	var res message.Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, errors.Join(ErrSendFailed, fmt.Errorf("decode result: %w", err))
	}
	if res.Status == message.StatusUnknown {
		return nil, errors.Join(ErrSendFailed, ErrMissingStatus)
	}
	return &res, nil
}

// FetchResponses returns the responses recorded so far for messageID.
// 204 and 404 replies mean no responses yet.
func (t *Transport) FetchResponses(ctx context.Context, messageID int64) ([]message.Response, error) {
	client, err := t.httpClient(ctx)
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, err)
	}

	q := url.Values{}
	q.Set("messageId", strconv.FormatInt(messageID, 10))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+pathGetResponse+"?"+q.Encode(), nil)
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, err)
	}

	resp, err := t.do(client, req)
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNoContent, http.StatusNotFound:
		return []message.Response{}, nil
	default:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	var responses []message.Response
	if err := json.NewDecoder(resp.Body).Decode(&responses); err != nil {
		if errors.Is(err, io.EOF) {
			return []message.Response{}, nil
		}
		return nil, errors.Join(ErrFetchFailed, fmt.Errorf("decode responses: %w", err))
	}
	if responses == nil {
		responses = []message.Response{}
	}
	return responses, nil
}

// do adds authentication and tracing headers and logs the exchange.
func (t *Transport) do(client *http.Client, req *http.Request) (*http.Response, error) {
	requestID := uuid.NewString()
	req.SetBasicAuth(t.cfg.Token, t.cfg.Key)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerRequestID, requestID)

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		t.logger.ErrorContext(req.Context(), "request failed",
			logger.Component("rest"),
			logger.Method(req.Method),
			logger.URL(req.URL.Path),
			logger.RequestID(requestID),
			logger.Elapsed(start),
			logger.Error(err))
		return nil, err
	}

	t.logger.DebugContext(req.Context(), "request finished",
		logger.Component("rest"),
		logger.Method(req.Method),
		logger.URL(req.URL.Path),
		logger.RequestID(requestID),
		logger.StatusCode(resp.StatusCode),
		logger.Elapsed(start))
	return resp, nil
}
