package transport

import (
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

type Option func(*Dispatcher)

// WithTokenSource sets the session token accessor consulted before every request
func WithTokenSource(source oauth2.TokenSource) Option {
	return func(d *Dispatcher) {
		d.source = source
	}
}

// WithHTTPClient sets the http client, its transport gets wrapped with RoundTripper
func WithHTTPClient(client *http.Client) Option {
	return func(d *Dispatcher) {
		d.client = client
	}
}

// WithHeader adds a default header sent with every request
func WithHeader(key, value string) Option {
	return func(d *Dispatcher) {
		d.header.Set(key, value)
	}
}

// WithLogger sets logger
func WithLogger(logger *zap.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}
