package auth

type Option func(*Service)

// WithSignInPath overrides sign-in endpoint path
func WithSignInPath(path string) Option {
	return func(s *Service) {
		s.signInPath = path
	}
}

// WithSignUpPath overrides sign-up endpoint path
func WithSignUpPath(path string) Option {
	return func(s *Service) {
		s.signUpPath = path
	}
}
