// Package auth shapes sign-in and sign-up requests and validates their responses
// before they reach the session store.
//
// SignIn returns the full response envelope (status, headers and decoded payload)
// and rejects payloads without a token with ErrInvalidServerResponse. SignUp returns
// only the payload and performs no validation. Transport failures are returned unchanged.
package auth
