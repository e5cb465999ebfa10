package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/viant/authsession/auth"
	"github.com/viant/authsession/storage"
	"golang.org/x/oauth2"
)

// Store holds authentication state of the running client
type Store struct {
	mux    sync.RWMutex
	update sync.Mutex
	state  State
}

// SetUser sets id, role and user profile, nil clears them
func (s *Store) SetUser(user *User) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.state.SetUser(user)
}

// SetToken replaces the token, persistence is up to the caller
func (s *Store) SetToken(token string) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.state.SetToken(token)
}

// Clear resets all state, persistence is up to the caller
func (s *Store) Clear() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.state.Clear()
}

// Update applies fn to a working copy of the state, the copy replaces the state only if fn
// succeeds. Updates run one at a time; readers wait only for the final swap, so fn may do
// slow I/O without stalling requests that read the token.
func (s *Store) Update(fn func(state *State) error) error {
	s.update.Lock()
	defer s.update.Unlock()
	s.mux.RLock()
	working := s.state.clone()
	s.mux.RUnlock()
	if err := fn(&working); err != nil {
		return err
	}
	s.mux.Lock()
	s.state = working
	s.mux.Unlock()
	return nil
}

// IsAuthenticated returns true when a token is present
func (s *Store) IsAuthenticated() bool {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.state.Token != ""
}

// CurrentUser returns a copy of the user profile or nil
func (s *Store) CurrentUser() *User {
	s.mux.RLock()
	defer s.mux.RUnlock()
	if s.state.User == nil {
		return nil
	}
	profile := *s.state.User
	return &profile
}

// CurrentUsername returns profile username or GuestUsername
func (s *Store) CurrentUsername() string {
	s.mux.RLock()
	defer s.mux.RUnlock()
	if s.state.User == nil || s.state.User.Username == "" {
		return GuestUsername
	}
	return s.state.User.Username
}

func (s *Store) UserID() auth.ID {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.state.ID
}

func (s *Store) UserRole() string {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.state.Role
}

func (s *Store) UserToken() string {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.state.Token
}

// TokenSource returns the store as an oauth2.TokenSource, the token is empty when signed out
func (s *Store) TokenSource() oauth2.TokenSource {
	return &tokenSource{store: s}
}

type tokenSource struct {
	store *Store
}

func (t *tokenSource) Token() (*oauth2.Token, error) {
	return &oauth2.Token{AccessToken: t.store.UserToken(), TokenType: "Bearer"}, nil
}

// NewStore creates a store
func NewStore(options ...Option) *Store {
	ret := &Store{}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// Load creates a store with the token read from the persistent slot, other fields start empty
func Load(ctx context.Context, slots storage.Storage, options ...Option) (*Store, error) {
	token, ok, err := slots.GetItem(ctx, storage.TokenKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read session token: %w", err)
	}
	ret := NewStore(options...)
	if ok {
		ret.state.SetToken(token)
	}
	return ret, nil
}
