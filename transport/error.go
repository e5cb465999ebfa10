package transport

import "fmt"

// HTTPError represents a non-2xx response
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
}

func (h *HTTPError) Error() string {
	return fmt.Sprintf("http error: %d: %s: %s", h.StatusCode, h.Status, h.Body)
}

// TokenSourceError reports a failure to obtain the bearer token, the request was not sent
type TokenSourceError struct {
	Err error
}

func (t *TokenSourceError) Error() string {
	return fmt.Sprintf("failed to get token: %v", t.Err)
}

func (t *TokenSourceError) Unwrap() error {
	return t.Err
}
