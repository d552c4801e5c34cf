// Package screen holds the per-screen controllers: each one owns the state a
// single screen renders from, fetches it from the backend, and applies the
// lifecycle rules for action visibility. One logical thread of control per
// screen; the session token is the only state shared across screens.
package screen

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrStale marks a load whose result arrived after the screen moved on (the
// identifying parameter changed). Callers drop it without touching state.
var ErrStale = errors.New("stale response discarded")

// guard stamps each load with a generation so a superseded in-flight fetch
// cannot clobber newer state.
type guard struct {
	mu      sync.Mutex
	current uuid.UUID
}

func (g *guard) begin() uuid.UUID {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.current = uuid.New()
	return g.current
}

func (g *guard) active(id uuid.UUID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current == id
}

// ValidationError is a client-side pre-submit failure; the request was never
// sent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
