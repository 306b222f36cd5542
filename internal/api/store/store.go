package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/eventplanner/internal/api/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
	// ErrConflict is returned by conditional updates that matched no row,
	// usually because another writer changed the status first.
	ErrConflict = errors.New("store: conflict")
)

// Store is the root data access interface. Drivers implement it and expose
// the tables as sub-repositories so a transaction can only ever reach repos
// bound to that transaction.
type Store interface {
	Users() Users
	Organizations() Organizations
	Events() Events
	Attendees() Attendees
	Invitations() Invitations
	AttendeeInvitations() AttendeeInvitations
	RefreshTokens() RefreshTokens

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise. Prefer it over Tx.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a user; a taken email yields ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error
	GetUserByID(ctx context.Context, id string) (domain.User, error)
	// GetUserByEmail matches case-insensitively.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// ListUsersByOrganization returns members oldest first.
	ListUsersByOrganization(ctx context.Context, orgID string) ([]domain.User, error)

	// DeleteUser removes a user and their refresh tokens. Events and
	// invitations they created are handed to successorID; invitations they
	// accepted keep their row but drop the link. Run it inside a transaction.
	DeleteUser(ctx context.Context, id, successorID string) error
}

type Organizations interface {
	// CreateOrganization inserts an organization; a taken slug yields ErrAlreadyExists.
	CreateOrganization(ctx context.Context, o domain.Organization) error
	GetOrganizationByID(ctx context.Context, id string) (domain.Organization, error)
}

type Events interface {
	CreateEvent(ctx context.Context, e domain.Event) error
	GetEventByID(ctx context.Context, id string) (domain.Event, error)
	// ListEventsByOrganization returns events ordered by start time.
	ListEventsByOrganization(ctx context.Context, orgID string) ([]domain.Event, error)

	// UpdateEvent overwrites the editable columns. Owner, creator and
	// created_at never change.
	UpdateEvent(ctx context.Context, e domain.Event) error

	// DeleteEvent removes an event with its attendees and attendee
	// invitations. Run it inside a transaction.
	DeleteEvent(ctx context.Context, id string) error
}

type Attendees interface {
	// CreateAttendee registers a guest; registering the same email twice for
	// an event yields ErrAlreadyExists.
	CreateAttendee(ctx context.Context, a domain.Attendee) error
	GetAttendeeByEventAndEmail(ctx context.Context, eventID, email string) (domain.Attendee, error)
	CountEventAttendees(ctx context.Context, eventID string) (int, error)
}

type Invitations interface {
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	// GetInvitationByID and GetInvitationByToken join the organization name
	// and the inviter's name onto the result.
	GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error)
	GetInvitationByToken(ctx context.Context, token string) (domain.Invitation, error)

	// ListInvitationsByOrganization returns invitations newest first.
	ListInvitationsByOrganization(ctx context.Context, orgID string) ([]domain.Invitation, error)

	// GetLivePendingInvitationByEmail returns a stored-pending invitation
	// for the email that has not yet expired at now.
	GetLivePendingInvitationByEmail(ctx context.Context, orgID, email string, now time.Time) (domain.Invitation, error)

	// TransitionInvitation moves a pending invitation to status. The update
	// only matches rows still pending, so a lost race yields ErrConflict.
	// For StatusAccepted, at and by are recorded as accepted_at/accepted_by.
	TransitionInvitation(ctx context.Context, id string, status domain.InvitationStatus, at time.Time, by string) error

	// ExpireStaleInvitations writes status expired onto pending rows whose
	// expiry passed, returning the number of rows changed.
	ExpireStaleInvitations(ctx context.Context, now time.Time) (int64, error)
}

type AttendeeInvitations interface {
	CreateAttendeeInvitation(ctx context.Context, inv domain.AttendeeInvitation) error
	GetAttendeeInvitationByID(ctx context.Context, id string) (domain.AttendeeInvitation, error)
	GetAttendeeInvitationByToken(ctx context.Context, token string) (domain.AttendeeInvitation, error)

	// ListAttendeeInvitationsByEvent returns invitations newest first.
	ListAttendeeInvitationsByEvent(ctx context.Context, eventID string) ([]domain.AttendeeInvitation, error)

	GetLivePendingAttendeeInvitationByEmail(ctx context.Context, eventID, email string, now time.Time) (domain.AttendeeInvitation, error)

	// RespondAttendeeInvitation moves a pending invitation to a terminal
	// status, recording responded_at plus the attendee id (accept) or the
	// reason (reject). Rows no longer pending yield ErrConflict.
	RespondAttendeeInvitation(ctx context.Context, id string, status domain.InvitationStatus, at time.Time, attendeeID, reason string) error

	ExpireStaleAttendeeInvitations(ctx context.Context, now time.Time) (int64, error)
}

type RefreshTokens interface {
	CreateRefreshToken(ctx context.Context, t domain.RefreshToken) error

	// GetRefreshTokenByHash looks a token up by its fingerprint.
	GetRefreshTokenByHash(ctx context.Context, hash string) (domain.RefreshToken, error)

	RevokeRefreshToken(ctx context.Context, id string) error

	// DeleteExpiredRefreshTokens removes expired or revoked tokens.
	DeleteExpiredRefreshTokens(ctx context.Context, now time.Time) (int64, error)
}
