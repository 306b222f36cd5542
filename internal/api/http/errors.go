package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/aussiebroadwan/eventplanner/internal/api/service"
	"github.com/aussiebroadwan/eventplanner/pkg/eventsdk"
	"github.com/aussiebroadwan/eventplanner/pkg/httpx"
	"github.com/aussiebroadwan/eventplanner/pkg/idx"
	"github.com/aussiebroadwan/eventplanner/pkg/slogx"
	"github.com/aussiebroadwan/eventplanner/pkg/validate"
)

// decodeRequest reads and validates a JSON body, writing the 400 itself on
// failure.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := httpx.DecodeJSON(w, r, dst); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeValidation(w, err)
		return false
	}
	return true
}

func writeValidation(w http.ResponseWriter, err error) {
	resp := eventsdk.ErrorResponse{
		Message: "Please correct the highlighted fields.",
		Code:    "validation_error",
	}
	if ve, ok := validate.AsErrors(err); ok {
		resp.Details = ve.Messages()
	}
	httpx.WriteJSON(w, http.StatusBadRequest, resp)
}

func writeFieldError(w http.ResponseWriter, field, message string) {
	httpx.WriteJSON(w, http.StatusBadRequest, eventsdk.ErrorResponse{
		Message: message,
		Code:    "validation_error",
		Details: map[string]string{field: message},
	})
}

// writeExpired reports an expired invitation along with when it expired so
// the client can show the "request a new invitation" state.
func writeExpired(w http.ResponseWriter, expiresAt time.Time) {
	resp := eventsdk.ErrorResponse{
		Message:   "This invitation has expired. Please ask for a new one.",
		Code:      "invitation_expired",
		IsExpired: true,
	}
	if !expiresAt.IsZero() {
		resp.ExpiredAt = &expiresAt
	}
	httpx.WriteJSON(w, http.StatusGone, resp)
}

func writeNotPending(w http.ResponseWriter, status string) {
	httpx.WriteJSON(w, http.StatusConflict, eventsdk.ErrorResponse{
		Message: "This invitation has already been used or canceled.",
		Code:    "invitation_not_pending",
		Status:  status,
	})
}

func fieldMessage(err error) string {
	if errors.Is(err, service.ErrMultiline) {
		return "Must not contain line breaks."
	}
	return "Invalid value."
}

// pathID reads a ULID path value. Anything that does not parse cannot name a
// stored record, so notFound is written without touching the store.
func pathID(w http.ResponseWriter, r *http.Request, name string, notFound error) (string, bool) {
	id, err := idx.Parse(r.PathValue(name))
	if err != nil {
		writeServiceError(w, r, "parse "+name, notFound)
		return "", false
	}
	return id.String(), true
}

// writeServiceError maps service sentinels onto the error taxonomy. op is
// only used for the server side log line.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var fe *service.FieldError
	switch {
	case errors.As(err, &fe):
		writeFieldError(w, fe.Field, fieldMessage(fe.Err))
	case errors.Is(err, service.ErrInvitationNotFound):
		httpx.WriteError(w, http.StatusNotFound, "invitation_not_found", "Invitation not found or invalid.")
	case errors.Is(err, service.ErrInvitationExpired):
		writeExpired(w, time.Time{})
	case errors.Is(err, service.ErrInvitationNotPending):
		writeNotPending(w, "")
	case errors.Is(err, service.ErrEventNotFound):
		httpx.WriteError(w, http.StatusNotFound, "event_not_found", "Event not found.")
	case errors.Is(err, service.ErrMemberNotFound):
		httpx.WriteError(w, http.StatusNotFound, "member_not_found", "Member not found.")
	case errors.Is(err, service.ErrCannotRemoveOwner):
		httpx.WriteError(w, http.StatusConflict, "conflict", "The organization owner cannot be removed.")
	case errors.Is(err, service.ErrCapacityBelowAttendees):
		httpx.WriteError(w, http.StatusConflict, "conflict", "Capacity cannot be lower than the number of registered attendees.")
	case errors.Is(err, service.ErrEventFull):
		httpx.WriteError(w, http.StatusConflict, "event_full", "This event has reached full capacity.")
	case errors.Is(err, service.ErrAlreadyMember):
		httpx.WriteError(w, http.StatusConflict, "conflict", "A user with this email already exists.")
	case errors.Is(err, service.ErrDuplicateInvitation):
		httpx.WriteError(w, http.StatusConflict, "conflict", "A pending invitation already exists for this email.")
	case errors.Is(err, service.ErrEmailTaken):
		httpx.WriteError(w, http.StatusConflict, "conflict", "This email is already registered.")
	case errors.Is(err, service.ErrAlreadyRegistered):
		httpx.WriteError(w, http.StatusConflict, "conflict", "You are already registered for this event.")
	case errors.Is(err, service.ErrForbidden):
		httpx.WriteError(w, http.StatusForbidden, "forbidden", "You do not have permission to perform this action.")
	case errors.Is(err, service.ErrWeakPassword):
		writeFieldError(w, "password", "Password must be at least 8 characters long.")
	case errors.Is(err, service.ErrInvalidFullName):
		writeFieldError(w, "full_name", "Full name must be at least 2 characters.")
	case errors.Is(err, service.ErrInvalidRole):
		writeFieldError(w, "role", "Role must be ORG_ADMIN or MEMBER.")
	case errors.Is(err, service.ErrNoRecipients):
		writeFieldError(w, "emails", "At least one email address is required.")
	case errors.Is(err, service.ErrTooManyRecipients):
		writeFieldError(w, "emails", "At most 100 email addresses can be invited at once.")
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password.")
	case errors.Is(err, service.ErrInvalidRefresh):
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_refresh_token", "Refresh token is invalid or expired.")
	case errors.Is(err, service.ErrNotificationFailed):
		httpx.WriteError(w, http.StatusBadGateway, "notification_failed", "The invitation email could not be sent. Please try again.")
	default:
		slogx.FromContext(r.Context()).Error("request failed", "op", op, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Something went wrong. Please try again.")
	}
}
