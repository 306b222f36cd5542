package service

import (
	"errors"
	"time"
)

// Invitation lifecycle errors shared by both invitation kinds.
var (
	ErrInvitationNotFound   = errors.New("invitation not found")
	ErrInvitationExpired    = errors.New("invitation has expired")
	ErrInvitationNotPending = errors.New("invitation is no longer pending")
	ErrDuplicateInvitation  = errors.New("a pending invitation already exists for this email")
	ErrInvalidRole          = errors.New("role cannot be granted by invitation")
	ErrNotificationFailed   = errors.New("invitation email could not be sent")
)

var (
	ErrForbidden          = errors.New("forbidden")
	ErrAlreadyMember      = errors.New("a user with this email already exists")
	ErrEmailTaken         = errors.New("email already registered")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrInvalidFullName    = errors.New("full name must be at least 2 characters")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidRefresh     = errors.New("invalid_refresh_token")
	ErrMultiline          = errors.New("value must be a single line")
)

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrEventFull         = errors.New("event is at full capacity")
	ErrTooManyRecipients = errors.New("too many recipients")
	ErrNoRecipients      = errors.New("no recipients")
	ErrAlreadyRegistered = errors.New("already registered for this event")
)

// ErrCapacityBelowAttendees rejects shrinking an event below the guests
// already registered.
var ErrCapacityBelowAttendees = errors.New("capacity is below the registered attendees")

var (
	ErrMemberNotFound    = errors.New("member not found")
	ErrCannotRemoveOwner = errors.New("the organization owner cannot be removed")
)

// FieldError rejects one input field. It wraps the sentinel describing the
// failure so callers can still match on it with errors.Is.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Err.Error() }

func (e *FieldError) Unwrap() error { return e.Err }

const (
	// MinPasswordLength applies to every password set through the API.
	MinPasswordLength = 8
	// MinFullNameLength is counted in runes after trimming.
	MinFullNameLength = 2
	// MaxBulkRecipients bounds one bulk attendee invitation request.
	MaxBulkRecipients = 100
	// DefaultInvitationTTL is the lifetime of a new invitation of either kind.
	DefaultInvitationTTL = 7 * 24 * time.Hour
)
