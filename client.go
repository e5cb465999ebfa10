package authsession

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/viant/authsession/auth"
	"github.com/viant/authsession/config"
	"github.com/viant/authsession/session"
	"github.com/viant/authsession/storage"
	"github.com/viant/authsession/transport"
)

// ClientOptions defines options for configuring an authentication client.
type ClientOptions struct {
	BaseURL    string            `yaml:"baseURL,omitempty" json:"baseURL,omitempty" short:"u" long:"url" description:"API base URL, defaults to API_BASE_URL"`
	Storage    string            `yaml:"storage,omitempty" json:"storage,omitempty" short:"s" long:"storage" description:"session storage: file path or afs URL (file://, mem://)"`
	EnvFiles   []string          `yaml:"envFiles,omitempty" json:"envFiles,omitempty" short:"e" long:"env" description:"dotenv file"`
	SignInPath string            `yaml:"signInPath,omitempty" json:"signInPath,omitempty"`
	SignUpPath string            `yaml:"signUpPath,omitempty" json:"signUpPath,omitempty"`
	Headers    map[string]string `yaml:"headers,omitempty" json:"headers,omitempty"`

	// SessionStorage, if set, is used instead of opening Storage
	SessionStorage storage.Storage `yaml:"-" json:"-" no-flag:"true"`
	HTTPClient     *http.Client    `yaml:"-" json:"-" no-flag:"true"`
	Logger         *zap.Logger     `yaml:"-" json:"-" no-flag:"true"`
}

// Init sets defaults
func (c *ClientOptions) Init() {
	if c.SignInPath == "" {
		c.SignInPath = auth.SignInPath
	}
	if c.SignUpPath == "" {
		c.SignUpPath = auth.SignUpPath
	}
	if c.Storage == "" && c.SessionStorage == nil {
		c.Storage = DefaultStorageLocation()
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
}

// DefaultStorageLocation returns JSON storage file under user config directory
func DefaultStorageLocation() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "authsession", "storage.json")
}

// Client represents a configured authentication session
type Client struct {
	*session.Manager
	Dispatcher *transport.Dispatcher
	Auth       *auth.Service
	Storage    storage.Storage
}

// NewClient creates a client: it opens the storage, restores the session token and
// wires the dispatcher to read tokens from the session store.
func NewClient(ctx context.Context, options *ClientOptions) (*Client, error) {
	if options == nil {
		options = &ClientOptions{}
	}
	options.Init()
	if options.BaseURL == "" {
		cfg, err := config.Load(options.EnvFiles...)
		if err != nil {
			return nil, err
		}
		options.BaseURL = cfg.BaseURL
	}

	slots := options.SessionStorage
	if slots == nil {
		var err error
		if slots, err = storage.Open(options.Storage); err != nil {
			return nil, err
		}
	}
	store, err := session.Load(ctx, slots)
	if err != nil {
		return nil, err
	}

	transportOpts := []transport.Option{
		transport.WithTokenSource(store.TokenSource()),
		transport.WithLogger(options.Logger),
	}
	if options.HTTPClient != nil {
		transportOpts = append(transportOpts, transport.WithHTTPClient(options.HTTPClient))
	}
	for key, value := range options.Headers {
		transportOpts = append(transportOpts, transport.WithHeader(key, value))
	}
	dispatcher, err := transport.New(options.BaseURL, transportOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create dispatcher: %w", err)
	}
	service := auth.New(dispatcher, auth.WithSignInPath(options.SignInPath), auth.WithSignUpPath(options.SignUpPath))
	return &Client{
		Manager:    session.NewManager(store, service, slots, session.WithLogger(options.Logger)),
		Dispatcher: dispatcher,
		Auth:       service,
		Storage:    slots,
	}, nil
}
