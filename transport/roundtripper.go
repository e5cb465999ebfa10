package transport

import (
	"net/http"

	"golang.org/x/oauth2"
)

// RoundTripper attaches the session bearer token to outgoing requests
type RoundTripper struct {
	source    oauth2.TokenSource
	transport http.RoundTripper
}

func (r *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if r.source == nil {
		return r.transport.RoundTrip(req)
	}
	token, err := r.source.Token()
	if err != nil {
		if req.Body != nil {
			_ = req.Body.Close()
		}
		return nil, &TokenSourceError{Err: err}
	}
	if token == nil || token.AccessToken == "" {
		return r.transport.RoundTrip(req)
	}
	// the caller's request must not be modified
	authorized := req.Clone(req.Context())
	token.SetAuthHeader(authorized)
	return r.transport.RoundTrip(authorized)
}

// NewRoundTripper creates a RoundTripper reading tokens from source, base defaults to http.DefaultTransport
func NewRoundTripper(source oauth2.TokenSource, base http.RoundTripper) *RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &RoundTripper{source: source, transport: base}
}
