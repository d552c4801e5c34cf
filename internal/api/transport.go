package api

import (
	"net/http"

	"campus-services-client/internal/session"
)

// bearerTransport sets Authorization: Bearer <token> on every outgoing
// request that has a stored session. Requests without a session go out bare;
// the server decides what is open.
type bearerTransport struct {
	base    http.RoundTripper
	session session.Provider
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	tok, err := t.session.Token()
	if err != nil || tok == "" {
		return t.base.RoundTrip(req)
	}
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+tok)
	return t.base.RoundTrip(clone)
}
