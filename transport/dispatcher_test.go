package transport

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

type capturedRequest struct {
	method        string
	path          string
	authorization []string
	contentType   string
	body          string
}

func newCaptureServer(t *testing.T, status int, response string) (*httptest.Server, *capturedRequest) {
	captured := &capturedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		captured.method = r.Method
		captured.path = r.URL.Path
		captured.authorization = r.Header.Values("Authorization")
		captured.contentType = r.Header.Get("Content-Type")
		captured.body = string(data)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)
	return server, captured
}

type failingSource struct{ err error }

func (f *failingSource) Token() (*oauth2.Token, error) { return nil, f.err }

func TestDispatcher_AuthorizationHeader(t *testing.T) {
	var testCases = []struct {
		description string
		source      oauth2.TokenSource
		expect      []string
	}{
		{
			description: "token present",
			source:      oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "abc123"}),
			expect:      []string{"Bearer abc123"},
		},
		{
			description: "empty token",
			source:      oauth2.StaticTokenSource(&oauth2.Token{}),
		},
		{
			description: "no token source",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			server, captured := newCaptureServer(t, http.StatusOK, `{"ok":true}`)
			dispatcher, err := New(server.URL, WithTokenSource(testCase.source))
			require.NoError(t, err)

			resp, err := dispatcher.Get(context.Background(), "/profiles")
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, testCase.expect, captured.authorization)
			assert.Equal(t, ContentTypeJSON, captured.contentType)
		})
	}
}

func TestDispatcher_Post(t *testing.T) {
	server, captured := newCaptureServer(t, http.StatusCreated, `{"id":7}`)
	dispatcher, err := New(server.URL+"/api/v1/", WithHeader("X-Client", "authsession"))
	require.NoError(t, err)

	resp, err := dispatcher.Post(context.Background(), "/authentication/sign-up", map[string]string{"username": "alice"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, captured.method)
	assert.Equal(t, "/api/v1/authentication/sign-up", captured.path)
	assert.JSONEq(t, `{"username":"alice"}`, captured.body)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var out struct {
		ID int `json:"id"`
	}
	require.NoError(t, resp.Decode(&out))
	assert.Equal(t, 7, out.ID)
}

func TestDispatcher_HTTPError(t *testing.T) {
	server, _ := newCaptureServer(t, http.StatusUnauthorized, `{"message":"bad credentials"}`)
	dispatcher, err := New(server.URL)
	require.NoError(t, err)

	_, err = dispatcher.Post(context.Background(), "/authentication/sign-in", nil)
	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
	assert.Contains(t, httpErr.Body, "bad credentials")
}

func TestDispatcher_TokenSourceError(t *testing.T) {
	server, captured := newCaptureServer(t, http.StatusOK, `{}`)
	sourceErr := errors.New("session unavailable")
	dispatcher, err := New(server.URL, WithTokenSource(&failingSource{err: sourceErr}))
	require.NoError(t, err)

	_, err = dispatcher.Get(context.Background(), "/profiles")
	assert.Equal(t, sourceErr, err)
	assert.Empty(t, captured.method, "request should not reach the server")

	_, err = NewRoundTripper(&failingSource{err: sourceErr}, nil).RoundTrip(httptest.NewRequest(http.MethodGet, server.URL, nil))
	var tokenErr *TokenSourceError
	require.ErrorAs(t, err, &tokenErr)
	assert.ErrorIs(t, err, sourceErr)
}

func TestNew_InvalidBaseURL(t *testing.T) {
	for _, baseURL := range []string{"", "localhost:8080", "://bad"} {
		_, err := New(baseURL)
		assert.Error(t, err, baseURL)
	}
}

func TestRoundTripper_DoesNotMutateRequest(t *testing.T) {
	server, captured := newCaptureServer(t, http.StatusOK, `{}`)
	rt := NewRoundTripper(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "abc123"}), nil)
	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, []string{"Bearer abc123"}, captured.authorization)
	assert.Empty(t, req.Header.Get("Authorization"))
}
