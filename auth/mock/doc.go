// Package mock provides an in-process authentication API that facilitates testing
// of the sign-in/sign-up flow without a real backend.
//
// Accounts live in memory, sign-in answers with a signed JWT bearer token and
// /profile serves as an authenticated endpoint that checks it.
package mock
