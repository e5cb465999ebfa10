package auth

import "errors"

// ErrInvalidServerResponse is returned when a sign-in payload carries no usable token
var ErrInvalidServerResponse = errors.New("invalid server response")
