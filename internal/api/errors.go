package api

import "errors"

var (
	// ErrNoSession means no usable token was stored; the caller should send
	// the user to login before issuing requests.
	ErrNoSession = errors.New("not logged in")

	// ErrUnauthenticated means the server rejected the token. The stored
	// token has already been cleared when this is returned.
	ErrUnauthenticated = errors.New("session expired, please log in again")
)

// fallbackMessage stands in when a failed envelope carries no message.
const fallbackMessage = "request failed"

// APIError is a server-rejected request: the envelope said success:false.
// Message is surfaced verbatim to the user.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }
