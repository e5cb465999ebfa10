package authsession

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/authsession/auth"
	"github.com/viant/authsession/auth/mock"
	"github.com/viant/authsession/config"
	"github.com/viant/authsession/session"
	"github.com/viant/authsession/storage"
)

func TestNewClient_SessionSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	server, err := mock.NewHTTPTestServer(mock.WithUser("alice", "x", "admin"))
	require.NoError(t, err)
	defer server.Close()
	options := &ClientOptions{
		BaseURL: server.URL,
		Storage: filepath.Join(t.TempDir(), "storage.json"),
	}

	first, err := NewClient(ctx, options)
	require.NoError(t, err)
	assert.False(t, first.Store().IsAuthenticated())
	require.NoError(t, first.SignIn(ctx, &auth.SignInRequest{Username: "alice", Password: "x"}))
	assert.Equal(t, "alice", first.Store().CurrentUsername())

	second, err := NewClient(ctx, &ClientOptions{BaseURL: server.URL, Storage: options.Storage})
	require.NoError(t, err)
	assert.True(t, second.Store().IsAuthenticated())
	assert.Equal(t, first.Store().UserToken(), second.Store().UserToken())
	assert.Equal(t, session.GuestUsername, second.Store().CurrentUsername())

	resp, err := second.Dispatcher.Get(ctx, "/profile")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, second.SignOut(ctx))
	third, err := NewClient(ctx, &ClientOptions{BaseURL: server.URL, Storage: options.Storage})
	require.NoError(t, err)
	assert.False(t, third.Store().IsAuthenticated())
}

func TestNewClient_Options(t *testing.T) {
	ctx := context.Background()
	var header http.Header
	server, err := mock.NewHTTPTestServer(mock.WithUser("alice", "x", "admin"))
	require.NoError(t, err)
	defer server.Close()
	server.ProfileHandler = func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Clone()
		_, _ = w.Write([]byte(`{}`))
	}
	t.Setenv(config.BaseURLEnv, server.URL)

	slots := storage.NewMemory()
	client, err := NewClient(ctx, &ClientOptions{
		SessionStorage: slots,
		EnvFiles:       []string{filepath.Join(t.TempDir(), "missing.env")},
		Headers:        map[string]string{"X-Client": "authsession"},
	})
	require.NoError(t, err)
	assert.Equal(t, server.URL, client.Dispatcher.BaseURL())
	assert.Same(t, slots, client.Storage)

	require.NoError(t, client.SignIn(ctx, &auth.SignInRequest{Username: "alice", Password: "x"}))
	_, err = client.Dispatcher.Get(ctx, "/profile")
	require.NoError(t, err)
	assert.Equal(t, "authsession", header.Get("X-Client"))
	assert.Equal(t, "application/json", header.Get("Content-Type"))
	assert.Equal(t, "Bearer "+client.Store().UserToken(), header.Get("Authorization"))
}

func TestNewClient_MissingBaseURL(t *testing.T) {
	t.Setenv(config.BaseURLEnv, "")
	_, err := NewClient(context.Background(), &ClientOptions{
		SessionStorage: storage.NewMemory(),
		EnvFiles:       []string{filepath.Join(t.TempDir(), "missing.env")},
	})
	assert.Error(t, err)
}
