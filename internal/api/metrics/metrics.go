package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Invitation kinds used as the "kind" label.
const (
	KindOrg      = "organization"
	KindAttendee = "attendee"
)

var (
	// InvitationsIssued counts invitations created, by kind.
	InvitationsIssued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventplanner_invitations_issued_total",
			Help: "Total number of invitations issued",
		},
		[]string{"kind"},
	)

	// InvitationTransitions counts status changes out of pending, by kind and
	// target status.
	InvitationTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventplanner_invitation_transitions_total",
			Help: "Total number of invitation status transitions",
		},
		[]string{"kind", "status"},
	)

	// InvitationVerifications counts token verifications by kind and result
	// (valid|invalid|expired|used).
	InvitationVerifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventplanner_invitation_verifications_total",
			Help: "Total number of invitation token verifications",
		},
		[]string{"kind", "result"},
	)

	// NotificationFailures counts invitation emails that could not be sent.
	NotificationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventplanner_notification_failures_total",
			Help: "Total number of invitation emails that failed to send",
		},
		[]string{"kind"},
	)

	// HousekeepingExpired counts rows moved to expired by the cleanup job.
	HousekeepingExpired = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventplanner_housekeeping_expired_total",
			Help: "Total number of invitations marked expired by housekeeping",
		},
		[]string{"kind"},
	)

	// APILatency measures HTTP request latencies.
	APILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eventplanner_api_latency_seconds",
			Help:    "API endpoint latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Handler exposes the default registry.
func Handler() http.Handler { return promhttp.Handler() }

// HTTPMiddleware records APILatency. It must wrap the ServeMux directly so
// the matched route pattern is visible after the request is served.
func HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		path := r.Pattern
		if path == "" {
			path = "unmatched"
		}
		APILatency.WithLabelValues(r.Method, path, strconv.Itoa(rec.status)).
			Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter { return r.ResponseWriter }
