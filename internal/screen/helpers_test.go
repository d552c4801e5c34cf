package screen_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"campus-services-client/internal/api"
	"campus-services-client/internal/session"
)

type fakeSession struct {
	mu  sync.Mutex
	tok string
}

func (f *fakeSession) Token() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.tok == "" {
		return "", session.ErrNoToken
	}
	return f.tok, nil
}

func (f *fakeSession) SetToken(raw string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tok = raw
	return nil
}

func (f *fakeSession) Clear() error { return f.SetToken("") }

func newTestClient(t *testing.T, h http.Handler) *api.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return api.New(srv.URL, api.DefaultEndpoints(), &fakeSession{tok: "test-token"}, 5*time.Second, zap.NewNop())
}

func writeOK(w http.ResponseWriter, data any) {
	_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
}

func jsonDecode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func writeFail(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": message})
}
