// Package session holds the client's authentication state and the actions that change it.
//
// Store is the single source of truth for the running client: it keeps the user
// profile, id, role and bearer token and exposes read-only projections of them.
// It also acts as the oauth2.TokenSource handed to the request dispatcher, so
// outgoing calls pick up the current token without reaching into global state.
//
// Manager composes the store with the authentication service and a persistent
// storage slot:
//
//	store, _ := session.Load(ctx, slots)
//	dispatcher, _ := transport.New(baseURL, transport.WithTokenSource(store.TokenSource()))
//	manager := session.NewManager(store, auth.New(dispatcher), slots)
//	err := manager.SignIn(ctx, &auth.SignInRequest{Username: "alice", Password: "x"})
//
// A successful sign-in commits user and token together with the persisted "token"
// slot; when the slot cannot be written the in-memory state is left as it was.
package session
