// Package storage defines the persistent key-value slots that back a session.
//
// The Storage interface mirrors a browser local storage: string keys hold raw string
// values that survive process restarts. Three implementations are provided:
//   - Memory keeps slots in-process and is meant for tests or throw-away sessions,
//   - File keeps all slots in a single JSON document on the local disk,
//   - AFS stores one object per key under any github.com/viant/afs URL.
package storage
