package inviteflow

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/aussiebroadwan/eventplanner/pkg/eventsdk"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// recorder counts requests per "METHOD path" pattern.
type recorder struct {
	calls map[string]*atomic.Int32
}

func newServer(t *testing.T, routes map[string]http.HandlerFunc) (*eventsdk.SDKClient, *recorder) {
	t.Helper()

	rec := &recorder{calls: map[string]*atomic.Int32{}}
	mux := http.NewServeMux()
	for pattern, h := range routes {
		counter := &atomic.Int32{}
		rec.calls[pattern] = counter
		mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
			counter.Add(1)
			h(w, r)
		})
	}

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return eventsdk.NewSDKClient(srv.URL), rec
}

func (r *recorder) count(pattern string) int {
	c, ok := r.calls[pattern]
	if !ok {
		return 0
	}
	return int(c.Load())
}
