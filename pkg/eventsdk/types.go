package eventsdk

import "time"

// ============================================================================
// Error Types
// ============================================================================

// ErrorResponse is the error body returned by every endpoint. Client code
// should use APIError from errors.go instead.
type ErrorResponse struct {
	// Message is a human readable description, safe to show to end users
	Message string `json:"message"`

	// Code is a stable machine readable error code (e.g. "invitation_expired")
	Code string `json:"code"`

	// Details maps request fields to validation messages
	Details map[string]string `json:"details,omitempty"`

	// Status is the invitation's current status on invitation_not_pending
	Status string `json:"status,omitempty"`

	// ExpiredAt is set on invitation_expired
	ExpiredAt *time.Time `json:"expired_at,omitempty"`

	// IsExpired is set on invitation_expired
	IsExpired bool `json:"is_expired,omitempty"`
}

// ============================================================================
// Auth Types
// ============================================================================

// UserResponse is the public view of an account.
type UserResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	Role           string    `json:"role"`
	OrganizationID string    `json:"organization_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// AuthResponse is returned by registration, login and organization
// invitation acceptance.
type AuthResponse struct {
	User UserResponse `json:"user"`

	// Token is the short lived bearer access token
	Token string `json:"token"`

	// RefreshToken is the opaque token exchanged at POST /auth/refresh/
	RefreshToken string `json:"refresh_token"`

	// ExpiresIn is the access token lifetime in seconds
	ExpiresIn int `json:"expires_in"`
}

// OrganizationInput names the organization created with its owner.
type OrganizationInput struct {
	Name string `json:"name" validate:"required,min=2,max=100,singleline"`
}

// RegisterOwnerRequest creates an organization and its owner account.
type RegisterOwnerRequest struct {
	FullName     string            `json:"full_name" validate:"required,min=2,max=100,singleline"`
	Email        string            `json:"email" validate:"required,email"`
	Password     string            `json:"password" validate:"required,min=8,max=128"`
	Organization OrganizationInput `json:"organization"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshResponse carries a rotated token pair. The refresh token sent in
// the request is revoked.
type RefreshResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ============================================================================
// Organization Invitation Types
// ============================================================================

// InviteMemberRequest invites an email address into an organization.
type InviteMemberRequest struct {
	Email string `json:"email" validate:"required,email"`

	// Role is ORG_ADMIN or MEMBER
	Role string `json:"role" validate:"required,oneof=ORG_ADMIN MEMBER"`
}

// Invitation is the management view of an organization invitation. Status
// is the effective status, so a pending invitation past its expiry reads as
// expired.
type Invitation struct {
	ID               string     `json:"id"`
	Email            string     `json:"email"`
	Role             string     `json:"role"`
	OrganizationID   string     `json:"organization_id"`
	OrganizationName string     `json:"organization_name"`
	InvitedBy        string     `json:"invited_by"`
	InvitedByName    string     `json:"invited_by_name"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	ExpiresAt        time.Time  `json:"expires_at"`
	AcceptedAt       *time.Time `json:"accepted_at,omitempty"`
}

// InvitationDetails is the public view returned by GET /invitations/{token}/.
// It carries enough to render the acceptance screen without further calls.
type InvitationDetails struct {
	Email            string     `json:"email"`
	Role             string     `json:"role"`
	OrganizationName string     `json:"organization_name"`
	InvitedBy        string     `json:"invited_by"`
	Status           string     `json:"status"`
	ExpiresAt        time.Time  `json:"expires_at"`
	ExpiredAt        *time.Time `json:"expired_at,omitempty"`
	IsExpired        bool       `json:"is_expired"`
}

// AcceptInvitationRequest redeems an organization invitation and creates
// the member's account.
type AcceptInvitationRequest struct {
	Token    string `json:"token" validate:"required"`
	FullName string `json:"full_name" validate:"required,min=2,max=100,singleline"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// ============================================================================
// Event Types
// ============================================================================

type EventRequest struct {
	Name         string    `json:"name" validate:"required,max=200,singleline"`
	Description  string    `json:"description" validate:"max=5000"`
	StartAt      time.Time `json:"start_at" validate:"required"`
	VenueName    string    `json:"venue_name" validate:"max=200,singleline"`
	VenueAddress string    `json:"venue_address" validate:"max=500,singleline"`

	// Capacity of zero means unlimited
	Capacity int `json:"capacity" validate:"gte=0"`
}

type Event struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	StartAt        time.Time `json:"start_at"`
	VenueName      string    `json:"venue_name"`
	VenueAddress   string    `json:"venue_address"`
	Capacity       int       `json:"capacity"`
	CreatedBy      string    `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
}

// ============================================================================
// Attendee Invitation Types
// ============================================================================

// InviteAttendeesRequest invites up to 100 addresses to an event.
type InviteAttendeesRequest struct {
	Emails         []string `json:"emails"`
	FullName       string   `json:"full_name,omitempty" validate:"max=100,singleline"`
	Message        string   `json:"message,omitempty" validate:"max=2000"`
	IsVIP          bool     `json:"is_vip"`
	BypassCapacity bool     `json:"bypass_capacity"`
}

// InviteAttendeesResponse summarises a bulk invitation. Errors has one entry
// per skipped or partially failed address, prefixed with the address.
type InviteAttendeesResponse struct {
	SentCount      int      `json:"sent_count"`
	SkippedCount   int      `json:"skipped_count"`
	TotalAttempted int      `json:"total_attempted"`
	Errors         []string `json:"errors"`
}

// AttendeeInvitation is the management view of an attendee invitation.
type AttendeeInvitation struct {
	ID             string     `json:"id"`
	EventID        string     `json:"event_id"`
	Email          string     `json:"email"`
	FullName       string     `json:"full_name,omitempty"`
	Message        string     `json:"message,omitempty"`
	IsVIP          bool       `json:"is_vip"`
	BypassCapacity bool       `json:"bypass_capacity"`
	InvitedBy      string     `json:"invited_by"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	ExpiresAt      time.Time  `json:"expires_at"`
	RespondedAt    *time.Time `json:"responded_at,omitempty"`
	RejectReason   string     `json:"reject_reason,omitempty"`
}

// AttendeeInvitationDetails is the public view returned by
// GET /attendee-invitations/verify/{token}/ with the event denormalized.
type AttendeeInvitationDetails struct {
	Email            string     `json:"email"`
	FullName         string     `json:"full_name,omitempty"`
	Message          string     `json:"message,omitempty"`
	IsVIP            bool       `json:"is_vip"`
	Status           string     `json:"status"`
	ExpiresAt        time.Time  `json:"expires_at"`
	EventName        string     `json:"event_name"`
	EventDescription string     `json:"event_description,omitempty"`
	EventDate        string     `json:"event_date"`
	EventTime        string     `json:"event_time"`
	VenueName        string     `json:"venue_name,omitempty"`
	VenueAddress     string     `json:"venue_address,omitempty"`
	InviterName      string     `json:"inviter_name"`
	OrganizationName string     `json:"organization_name"`
	CanAccept        bool       `json:"can_accept"`
	IsExpired        bool       `json:"is_expired"`
	ExpiredAt        *time.Time `json:"expired_at,omitempty"`
}

// AttendeeData is what the guest fills in on the acceptance screen.
type AttendeeData struct {
	FullName string `json:"full_name" validate:"required,min=2,max=100,singleline"`
	Phone    string `json:"phone,omitempty" validate:"max=32,singleline"`
}

type AcceptAttendeeInvitationRequest struct {
	Token        string       `json:"token" validate:"required"`
	AttendeeData AttendeeData `json:"attendee_data"`
}

type Attendee struct {
	ID           string    `json:"id"`
	EventID      string    `json:"event_id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	Phone        string    `json:"phone,omitempty"`
	Status       string    `json:"status"`
	RegisteredAt time.Time `json:"registered_at"`
}

type AcceptAttendeeInvitationResponse struct {
	Attendee  Attendee `json:"attendee"`
	EventName string   `json:"event_name"`
}

type RejectAttendeeInvitationRequest struct {
	Token  string `json:"token" validate:"required"`
	Reason string `json:"reason,omitempty" validate:"max=500"`
}

// InvitationStats summarises an event's invitations by effective status.
type InvitationStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
	Expired  int `json:"expired"`
	Canceled int `json:"canceled"`

	// ResponseRate is (accepted + rejected) / total as a percentage with one decimal
	ResponseRate float64 `json:"response_rate"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the health check response from /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}
