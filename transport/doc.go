// Package transport implements the shared outbound request entry point.
//
// A Dispatcher is built once per process with a fixed base URL and default headers.
// Its HTTP client routes every request through RoundTripper, which asks an injected
// oauth2.TokenSource for the current session token and, when one is present, sets
// `Authorization: Bearer <token>`. Errors are never caught or transformed: network
// failures surface as returned by net/http and non-2xx answers as *HTTPError.
package transport
