// Package session holds the one piece of cross-screen client state: the
// bearer token, persisted in device-local storage.
package session

import "errors"

// ErrNoToken means no usable credential is stored; callers redirect to login.
var ErrNoToken = errors.New("no session token")

// Provider is the injectable accessor API-calling collaborators depend on,
// so tests can swap in a fake instead of ambient storage lookups.
type Provider interface {
	Token() (string, error)
	SetToken(raw string) error
	Clear() error
}
