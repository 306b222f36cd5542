package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aussiebroadwan/eventplanner/internal/api/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestHTTPMiddlewareRecordsPattern(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /events/{id}/{$}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := metrics.HTTPMiddleware(mux)

	before := testutil.CollectAndCount(metrics.APILatency)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events/abc/", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)

	require.Equal(t, before+1, testutil.CollectAndCount(metrics.APILatency))
}

func TestHandlerExposesCounters(t *testing.T) {
	metrics.InvitationsIssued.WithLabelValues(metrics.KindOrg).Inc()

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), "eventplanner_invitations_issued_total"))
}
