package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/eventplanner/internal/api/domain"
	"github.com/aussiebroadwan/eventplanner/internal/api/metrics"
	"github.com/aussiebroadwan/eventplanner/internal/api/service"
	"github.com/aussiebroadwan/eventplanner/internal/api/store"
	"github.com/aussiebroadwan/eventplanner/pkg/httpx"
	"github.com/aussiebroadwan/eventplanner/pkg/jwtx"
	"github.com/aussiebroadwan/eventplanner/pkg/slogx"

	_ "github.com/aussiebroadwan/eventplanner/api/docs" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer       *jwtx.Signer
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	limits       httpx.RateLimitProfiles

	store                     store.Store
	AuthService               *service.AuthService
	OrgInvitationService      *service.OrgInvitationService
	EventService              *service.EventService
	AttendeeInvitationService *service.AttendeeInvitationService
	MemberService             *service.MemberService
}

func NewRouter(
	signer *jwtx.Signer,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	limits httpx.RateLimitProfiles,
	corsOrigins []string,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		signer:       signer,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		limits:       limits,
	}

	// Outermost first. metrics must sit directly on the mux to see r.Pattern.
	r.middlewares = []httpx.Middleware{
		httpx.CORS(corsOrigins),
		slogx.HTTPMiddleware(r.logger),
		metrics.HTTPMiddleware,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerOrgInvitations()
	r.registerMembers()
	r.registerEvents()
	r.registerAttendeeInvitations()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Event Planner API
//	@version		0.1.0
//	@description	REST API behind the event planner web client: accounts, organization membership invitations,
//	@description	events and attendee invitations.
//	@description
//	@description				Access tokens are EdDSA signed JWTs. Refresh tokens are opaque and rotated on every use.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/eventplanner
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured requires a bearer token and rate limits by user.
func (r *Router) secured(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) public(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h, httpx.RateLimitByIP(limit))
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// Credential endpoints - strict rate limit by IP
	r.Mux.Handle("POST /auth/register/owner/{$}", r.public(h.HandleRegisterOwner, r.limits.Strict))
	r.Mux.Handle("POST /auth/login/{$}", r.public(h.HandleLogin, r.limits.Strict))
	r.Mux.Handle("POST /auth/refresh/{$}", r.public(h.HandleRefresh, r.limits.Moderate))
	r.Mux.Handle("POST /auth/logout/{$}", r.public(h.HandleLogout, r.limits.Moderate))

	r.Mux.Handle("GET /auth/me/{$}", r.secured(h.HandleMe, r.limits.Lenient))
}

func (r *Router) registerOrgInvitations() {
	h := &OrgInvitationHandler{InvitationService: r.OrgInvitationService}

	// Management - owner only, checked against the database by the service
	r.Mux.Handle("POST /organizations/{id}/invitations/{$}",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole(string(domain.RoleOwner)),
			httpx.RateLimitByUser(r.limits.Moderate),
		),
	)
	r.Mux.Handle("GET /organizations/{id}/invitations/{$}", r.secured(h.HandleList, r.limits.Lenient))
	r.Mux.Handle("POST /invitations/{id}/resend/{$}", r.secured(h.HandleResend, r.limits.Moderate))
	r.Mux.Handle("DELETE /invitations/{id}/{$}", r.secured(h.HandleCancel, r.limits.Moderate))

	// Public token endpoints
	r.Mux.Handle("GET /invitations/{token}/{$}", r.public(h.HandleVerify, r.limits.Public))
	r.Mux.Handle("POST /invitations/accept/{$}", r.public(h.HandleAccept, r.limits.Strict))
}

func (r *Router) registerEvents() {
	h := &EventsHandler{EventService: r.EventService}

	r.Mux.Handle("POST /events/{$}", r.secured(h.HandleCreate, r.limits.Moderate))
	r.Mux.Handle("GET /events/{$}", r.secured(h.HandleList, r.limits.Lenient))
	r.Mux.Handle("GET /events/{id}/{$}", r.secured(h.HandleGet, r.limits.Lenient))
	r.Mux.Handle("PUT /events/{id}/{$}", r.secured(h.HandleUpdate, r.limits.Moderate))
	r.Mux.Handle("DELETE /events/{id}/{$}", r.secured(h.HandleDelete, r.limits.Moderate))
}

func (r *Router) registerMembers() {
	h := &MembersHandler{MemberService: r.MemberService}

	r.Mux.Handle("GET /organizations/{id}/members/{$}", r.secured(h.HandleList, r.limits.Lenient))
	r.Mux.Handle("DELETE /members/{id}/{$}",
		httpx.Chain(http.HandlerFunc(h.HandleRemove),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole(string(domain.RoleOwner)),
			httpx.RateLimitByUser(r.limits.Moderate),
		),
	)
}

func (r *Router) registerAttendeeInvitations() {
	h := &AttendeeInvitationHandler{InvitationService: r.AttendeeInvitationService}

	r.Mux.Handle("POST /events/{id}/invitations/{$}", r.secured(h.HandleBulkCreate, r.limits.Moderate))
	r.Mux.Handle("GET /events/{id}/invitations/{$}", r.secured(h.HandleList, r.limits.Lenient))
	r.Mux.Handle("GET /events/{id}/invitations/stats/{$}", r.secured(h.HandleStats, r.limits.Lenient))
	r.Mux.Handle("POST /events/{id}/invitations/{invitation_id}/resend/{$}", r.secured(h.HandleResend, r.limits.Moderate))
	r.Mux.Handle("DELETE /events/{id}/invitations/{invitation_id}/{$}", r.secured(h.HandleCancel, r.limits.Moderate))

	r.Mux.Handle("GET /attendee-invitations/verify/{token}/{$}", r.public(h.HandleVerify, r.limits.Public))
	r.Mux.Handle("POST /attendee-invitations/accept/{$}", r.public(h.HandleAccept, r.limits.Strict))
	r.Mux.Handle("POST /attendee-invitations/reject/{$}", r.public(h.HandleReject, r.limits.Strict))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez", r.public(LivezHandler(r.startTime, r.buildVersion), r.limits.Lenient))
	r.Mux.Handle("GET /readyz", r.public(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.signer), r.limits.Lenient))
	r.Mux.Handle("GET /metrics", metrics.Handler())
}
