package auth

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/authsession/transport"
)

const (
	SignInPath = "/authentication/sign-in"
	SignUpPath = "/authentication/sign-up"
)

// Dispatcher sends outbound requests
type Dispatcher interface {
	Post(ctx context.Context, path string, body interface{}) (*transport.Response, error)
}

// Service calls the authentication endpoints
type Service struct {
	dispatcher Dispatcher
	signInPath string
	signUpPath string
}

// SignIn posts credentials and returns the response envelope
func (s *Service) SignIn(ctx context.Context, request *SignInRequest) (*SignInEnvelope, error) {
	resp, err := s.dispatcher.Post(ctx, s.signInPath, request)
	if err != nil {
		return nil, err
	}
	var data *SignInResponse
	if err = resp.Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidServerResponse, err)
	}
	if data == nil {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidServerResponse)
	}
	if err = data.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidServerResponse, err)
	}
	return &SignInEnvelope{Response: resp, Data: data}, nil
}

// SignUp posts registration data and returns the raw payload
func (s *Service) SignUp(ctx context.Context, request *SignUpRequest) (json.RawMessage, error) {
	resp, err := s.dispatcher.Post(ctx, s.signUpPath, request)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(resp.Body), nil
}

// New creates authentication service
func New(dispatcher Dispatcher, options ...Option) *Service {
	ret := &Service{
		dispatcher: dispatcher,
		signInPath: SignInPath,
		signUpPath: SignUpPath,
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
