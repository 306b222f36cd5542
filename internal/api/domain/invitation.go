package domain

import "time"

// InvitationStatus is the lifecycle state of an invitation. Both invitation
// kinds share it; only attendee invitations can be rejected.
type InvitationStatus string

const (
	StatusPending  InvitationStatus = "pending"
	StatusAccepted InvitationStatus = "accepted"
	StatusExpired  InvitationStatus = "expired"
	StatusCanceled InvitationStatus = "canceled"
	StatusRejected InvitationStatus = "rejected"
)

// Valid reports whether s is a known status.
func (s InvitationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusExpired, StatusCanceled, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether s can never change again.
func (s InvitationStatus) Terminal() bool {
	return s.Valid() && s != StatusPending
}

// CanTransition encodes the invitation state machine: every transition leaves
// pending, and nothing leaves a terminal state.
//
//	pending --accept--> accepted
//	pending --cancel--> canceled
//	pending --reject--> rejected
//	pending --time passes expires_at--> expired
func CanTransition(from, to InvitationStatus) bool {
	return from == StatusPending && to.Terminal()
}

// EffectiveStatus folds wall clock expiry into a stored status. A pending
// record past its expiry is expired even if nothing has rewritten it yet.
func EffectiveStatus(stored InvitationStatus, expiresAt, now time.Time) InvitationStatus {
	if stored == StatusPending && now.After(expiresAt) {
		return StatusExpired
	}
	return stored
}

// OrgRole is a user's role inside their organization.
type OrgRole string

const (
	RoleOwner  OrgRole = "ORG_OWNER"
	RoleAdmin  OrgRole = "ORG_ADMIN"
	RoleMember OrgRole = "MEMBER"
)

// Invitable reports whether the role may be granted through an invitation.
// Ownership is never handed out this way.
func (r OrgRole) Invitable() bool {
	return r == RoleAdmin || r == RoleMember
}

// ManagesEvents reports whether the role may edit or delete events.
func (r OrgRole) ManagesEvents() bool {
	return r == RoleOwner || r == RoleAdmin
}

// Invitation grants one-time rights to join an organization.
type Invitation struct {
	ID             string
	Email          string
	Role           OrgRole
	Token          string
	OrganizationID string
	InvitedBy      string
	Status         InvitationStatus
	CreatedAt      time.Time
	ExpiresAt      time.Time
	AcceptedAt     *time.Time
	AcceptedBy     string

	// Filled on reads that join the organization and inviter.
	OrganizationName string
	InviterName      string
}

// EffectiveStatus returns the status as of now.
func (i Invitation) EffectiveStatus(now time.Time) InvitationStatus {
	return EffectiveStatus(i.Status, i.ExpiresAt, now)
}

// IsExpired reports whether the invitation expired without being used.
func (i Invitation) IsExpired(now time.Time) bool {
	return i.EffectiveStatus(now) == StatusExpired
}
