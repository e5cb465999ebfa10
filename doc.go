// Package authsession provides a client-side authentication session for HTTP APIs.
//
// The package glues together the building blocks found in its sub-packages:
//   - session – authentication state, getters and the sign-in/sign-up/sign-out actions,
//   - auth – calls to the sign-in and sign-up endpoints with response validation,
//   - transport – the shared request dispatcher that attaches `Authorization: Bearer` headers,
//   - storage – persistent key-value slots (JSON file, viant/afs URL or memory).
//
// NewClient accepts an option structure that can be populated from CLI flags or
// configuration files and returns a Client whose dispatcher, authentication service
// and session store all share the same state.
//
// Example:
//
//	cli, _ := authsession.NewClient(ctx, &authsession.ClientOptions{BaseURL: "https://api.example.com"})
//	_ = cli.SignIn(ctx, &auth.SignInRequest{Username: "alice", Password: "secret"})
//	resp, _ := cli.Dispatcher.Get(ctx, "/profile")
package authsession
