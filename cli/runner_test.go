package cli

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/authsession/auth/mock"
	"github.com/viant/authsession/transport"
)

func TestRun(t *testing.T) {
	server, err := mock.NewHTTPTestServer()
	require.NoError(t, err)
	defer server.Close()
	storagePath := filepath.Join(t.TempDir(), "storage.json")
	global := []string{"--url", server.URL, "--storage", storagePath}

	var testCases = []struct {
		description string
		args        []string
		expect      string
		expectErr   bool
	}{
		{description: "anonymous whoami", args: []string{"whoami"}, expect: "user: Guest\nauthenticated: false\n"},
		{description: "anonymous call", args: []string{"call", "/profile"}, expectErr: true},
		{description: "sign up", args: []string{"signup", "-n", "bob", "-p", "secret", "-r", "editor"}, expect: "signed up bob\n"},
		{description: "sign up does not sign in", args: []string{"whoami"}, expect: "user: Guest\nauthenticated: false\n"},
		{description: "wrong password", args: []string{"signin", "-n", "bob", "-p", "nope"}, expectErr: true},
		{description: "sign in", args: []string{"signin", "-n", "bob", "-p", "secret"}, expect: "signed in as bob (editor)\n"},
		{description: "token restored", args: []string{"whoami"}, expect: "user: Guest\nauthenticated: true\n"},
		{description: "sign out", args: []string{"signout"}, expect: "signed out\n"},
		{description: "signed out whoami", args: []string{"whoami"}, expect: "user: Guest\nauthenticated: false\n"},
		{description: "missing command", args: []string{}, expectErr: true},
	}

	for _, testCase := range testCases {
		buffer := &bytes.Buffer{}
		err := run(context.Background(), append(append([]string{}, global...), testCase.args...), buffer)
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, buffer.String(), testCase.description)
	}
}

func TestRun_Call(t *testing.T) {
	server, err := mock.NewHTTPTestServer(mock.WithUser("alice", "x", "admin"))
	require.NoError(t, err)
	defer server.Close()
	global := []string{"--url", server.URL, "--storage", "mem://localhost/authctl/" + t.Name()}
	ctx := context.Background()

	require.NoError(t, run(ctx, append(global, "signin", "-n", "alice", "-p", "x"), &bytes.Buffer{}))

	buffer := &bytes.Buffer{}
	require.NoError(t, run(ctx, append(global, "call", "/profile"), buffer))
	assert.Contains(t, buffer.String(), `"username":"alice"`)

	buffer = &bytes.Buffer{}
	require.NoError(t, run(ctx, append(global, "call", "-X", "post", "-d", `{"username":"carol","password":"pw"}`, "/authentication/sign-up"), buffer))
	assert.Contains(t, buffer.String(), `"username":"carol"`)
	assert.True(t, server.HasUser("carol"))

	err = run(ctx, append(global, "call", "/missing"), &bytes.Buffer{})
	var httpErr *transport.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
}

func TestRun_Help(t *testing.T) {
	err := run(context.Background(), []string{"--help"}, &bytes.Buffer{})
	var flagsErr *flags.Error
	require.True(t, errors.As(err, &flagsErr))
	assert.Equal(t, flags.ErrHelp, flagsErr.Type)
}
