// Package cli implements the authctl command line front-end.
//
// Each invocation restores the session token from persistent storage, runs one
// action (signin, signup, signout, whoami or an authenticated call) and exits:
//
//	authctl signin -n alice -p secret
//	authctl call /profile
//	authctl signout
package cli
