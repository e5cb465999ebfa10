package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const (
	ContentTypeHeader = "Content-Type"
	ContentTypeJSON   = "application/json"
)

// Response is the envelope of a successful call
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the JSON body into dest, an empty body leaves dest untouched
func (r *Response) Decode(dest interface{}) error {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}
	return json.Unmarshal(r.Body, dest)
}

// Dispatcher is the configured entry point for all outbound calls
type Dispatcher struct {
	baseURL *url.URL
	client  *http.Client
	header  http.Header
	source  oauth2.TokenSource
	logger  *zap.Logger
}

// BaseURL returns configured base URL
func (d *Dispatcher) BaseURL() string {
	return d.baseURL.String()
}

// Get sends GET request
func (d *Dispatcher) Get(ctx context.Context, path string) (*Response, error) {
	return d.Do(ctx, http.MethodGet, path, nil)
}

// Post sends POST request with JSON encoded body
func (d *Dispatcher) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return d.Do(ctx, http.MethodPost, path, body)
}

// Do sends a request to path resolved against the base URL. body is sent as is when
// it is []byte, otherwise it is JSON encoded; nil means no body.
func (d *Dispatcher) Do(ctx context.Context, method, path string, body interface{}) (*Response, error) {
	payload, err := encodeBody(body)
	if err != nil {
		return nil, err
	}
	URL := d.resolve(path)
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, URL, reader)
	if err != nil {
		return nil, err
	}
	for key, values := range d.header {
		req.Header[key] = append([]string(nil), values...)
	}

	started := time.Now()
	resp, err := d.client.Do(req)
	if err != nil {
		d.logger.Debug("request failed", zap.String("method", method), zap.String("url", URL), zap.Error(err))
		var sourceErr *TokenSourceError
		if errors.As(err, &sourceErr) {
			return nil, sourceErr.Err
		}
		return nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	d.logger.Debug("request completed",
		zap.String("method", method),
		zap.String("url", URL),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(started)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status, Body: string(data)}
	}
	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       data,
	}, nil
}

// resolve joins base URL and path, absolute URLs are used unchanged
func (d *Dispatcher) resolve(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	base := strings.TrimRight(d.baseURL.String(), "/")
	if path == "" {
		return base
	}
	return base + "/" + strings.TrimLeft(path, "/")
}

func encodeBody(body interface{}) ([]byte, error) {
	switch actual := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return actual, nil
	case json.RawMessage:
		return actual, nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return data, nil
}

// New creates a dispatcher for baseURL
func New(baseURL string, options ...Option) (*Dispatcher, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL was empty")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: expected absolute URL", baseURL)
	}
	ret := &Dispatcher{
		baseURL: parsed,
		header:  http.Header{},
		logger:  zap.NewNop(),
	}
	ret.header.Set(ContentTypeHeader, ContentTypeJSON)
	for _, opt := range options {
		opt(ret)
	}
	client := &http.Client{}
	if ret.client != nil {
		copied := *ret.client
		client = &copied
	}
	client.Transport = NewRoundTripper(ret.source, client.Transport)
	ret.client = client
	return ret, nil
}
