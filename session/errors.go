package session

import "errors"

// ErrIncompleteUserData is returned when a sign-in payload lacks id, role or token
var ErrIncompleteUserData = errors.New("incomplete user data in server response")
