package session

import (
	"context"
	"encoding/json"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/viant/authsession/auth"
	"github.com/viant/authsession/storage"
	"go.uber.org/zap"
)

// Authenticator calls the authentication endpoints
type Authenticator interface {
	SignIn(ctx context.Context, request *auth.SignInRequest) (*auth.SignInEnvelope, error)
	SignUp(ctx context.Context, request *auth.SignUpRequest) (json.RawMessage, error)
}

// Manager runs sign-in, sign-up and sign-out against the store and its persistent slot
type Manager struct {
	store         *Store
	authenticator Authenticator
	storage       storage.Storage
	logger        *zap.Logger
}

// Store returns session store
func (m *Manager) Store() *Store {
	return m.store
}

// SignIn authenticates credentials, then commits user, token and the persisted token slot.
// Any failure leaves the previous session untouched.
func (m *Manager) SignIn(ctx context.Context, request *auth.SignInRequest) error {
	envelope, err := m.authenticator.SignIn(ctx, request)
	if err != nil {
		m.logger.Debug("sign-in failed", zap.Error(err))
		return err
	}
	if envelope == nil || envelope.Data == nil {
		return ErrIncompleteUserData
	}
	data := envelope.Data
	if err = validateUserData(data); err != nil {
		return fmt.Errorf("%w: %v", ErrIncompleteUserData, err)
	}
	err = m.store.Update(func(state *State) error {
		state.SetUser(&User{ID: data.ID, Role: data.Role, Username: data.Username})
		state.SetToken(data.Token)
		if err := m.storage.SetItem(ctx, storage.TokenKey, data.Token); err != nil {
			return fmt.Errorf("failed to persist session token: %w", err)
		}
		return nil
	})
	if err != nil {
		m.logger.Warn("sign-in rolled back", zap.String("username", data.Username), zap.Error(err))
		return err
	}
	m.logger.Info("signed in", zap.String("username", data.Username), zap.String("role", data.Role))
	return nil
}

// SignUp registers an account, the session is not signed in
func (m *Manager) SignUp(ctx context.Context, request *auth.SignUpRequest) error {
	_, err := m.authenticator.SignUp(ctx, request)
	return err
}

// SignOut clears the session and removes the persisted token slot
func (m *Manager) SignOut(ctx context.Context) error {
	m.store.Clear()
	if err := m.storage.RemoveItem(ctx, storage.TokenKey); err != nil {
		return fmt.Errorf("failed to remove session token: %w", err)
	}
	m.logger.Info("signed out")
	return nil
}

// ClearAuth clears the session without touching persistent storage
func (m *Manager) ClearAuth() {
	m.store.Clear()
	m.logger.Debug("session cleared")
}

func validateUserData(data *auth.SignInResponse) error {
	return validation.ValidateStruct(data,
		validation.Field(&data.ID, validation.Required),
		validation.Field(&data.Role, validation.Required),
		validation.Field(&data.Token, validation.Required),
	)
}

// NewManager creates a manager
func NewManager(store *Store, authenticator Authenticator, slots storage.Storage, options ...ManagerOption) *Manager {
	ret := &Manager{
		store:         store,
		authenticator: authenticator,
		storage:       slots,
		logger:        zap.NewNop(),
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
