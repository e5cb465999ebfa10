package mock

import (
	"crypto/rand"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

type account struct {
	ID       string
	Username string
	Password string
	Role     string
}

// AuthenticationService simulates the authentication API
type AuthenticationService struct {
	Secret      []byte
	Issuer      string
	TokenTTL    time.Duration
	DefaultRole string
	// SignInHandler overrides /authentication/sign-in
	SignInHandler func(w http.ResponseWriter, r *http.Request)
	// SignUpHandler overrides /authentication/sign-up
	SignUpHandler  func(w http.ResponseWriter, r *http.Request)
	ProfileHandler func(w http.ResponseWriter, r *http.Request)

	mux      sync.RWMutex
	accounts map[string]*account
}

type Option func(*AuthenticationService)

// WithUser registers an account upfront
func WithUser(username, password, role string) Option {
	return func(s *AuthenticationService) {
		s.AddUser(username, password, role)
	}
}

// AddUser registers an account and returns its id
func (s *AuthenticationService) AddUser(username, password, role string) string {
	s.mux.Lock()
	defer s.mux.Unlock()
	if role == "" {
		role = s.DefaultRole
	}
	acc := &account{ID: uuid.NewString(), Username: username, Password: password, Role: role}
	s.accounts[username] = acc
	return acc.ID
}

// HasUser returns true if username was registered
func (s *AuthenticationService) HasUser(username string) bool {
	s.mux.RLock()
	defer s.mux.RUnlock()
	_, ok := s.accounts[username]
	return ok
}

func (s *AuthenticationService) lookup(username string) (*account, bool) {
	s.mux.RLock()
	defer s.mux.RUnlock()
	acc, ok := s.accounts[username]
	return acc, ok
}

// NewAuthenticationService creates a new mock authentication API
func NewAuthenticationService(opts ...Option) (*AuthenticationService, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate signing secret: %v", err)
	}
	service := &AuthenticationService{
		Secret:      secret,
		Issuer:      "authsession-mock",
		TokenTTL:    time.Hour,
		DefaultRole: "user",
		accounts:    map[string]*account{},
	}
	for _, opt := range opts {
		opt(service)
	}
	return service, nil
}

// Register registers HTTP handlers for all mock endpoints onto the given ServeMux.
func (s *AuthenticationService) Register(mux *http.ServeMux) {
	mux.Handle("/", &Handler{Service: s})
}

// Handler returns an http.Handler for all mock endpoints, suitable for any HTTP server.
func (s *AuthenticationService) Handler() http.Handler {
	mux := http.NewServeMux()
	s.Register(mux)
	return mux
}
