package session

import "go.uber.org/zap"

type Option func(*Store)

// WithToken sets initial token
func WithToken(token string) Option {
	return func(s *Store) {
		s.state.SetToken(token)
	}
}

// WithUser sets initial user
func WithUser(user *User) Option {
	return func(s *Store) {
		s.state.SetUser(user)
	}
}

type ManagerOption func(*Manager)

// WithLogger sets manager logger
func WithLogger(logger *zap.Logger) ManagerOption {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}
