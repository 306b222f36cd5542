package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/eventplanner/internal/api/service"
	"github.com/aussiebroadwan/eventplanner/pkg/eventsdk"
	"github.com/aussiebroadwan/eventplanner/pkg/httpx"
)

type AttendeeInvitationHandler struct {
	InvitationService *service.AttendeeInvitationService
}

// HandleBulkCreate godoc
//
//	@Summary		Invite Attendees
//	@Description	Invite up to 100 email addresses to an event. Addresses are de-duplicated case-insensitively and
//	@Description	addresses that already hold a pending invitation or are registered are skipped.
//	@Tags			Attendee Invitations
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Event ID"
//	@Param			request	body		eventsdk.InviteAttendeesRequest	true	"Recipients"
//	@Success		201		{object}	eventsdk.InviteAttendeesResponse
//	@Failure		400		{object}	eventsdk.ErrorResponse	"validation_error"
//	@Failure		404		{object}	eventsdk.ErrorResponse	"event_not_found"
//	@Security		BearerAuth
//	@Router			/events/{id}/invitations/ [post].
func (h *AttendeeInvitationHandler) HandleBulkCreate(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "id", service.ErrEventNotFound)
	if !ok {
		return
	}
	var req eventsdk.InviteAttendeesRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	res, err := h.InvitationService.SendBulk(r.Context(), httpx.UserID(r.Context()), eventID, service.BulkInviteInput{
		Emails:         req.Emails,
		FullName:       req.FullName,
		Message:        req.Message,
		IsVIP:          req.IsVIP,
		BypassCapacity: req.BypassCapacity,
	})
	if err != nil {
		writeServiceError(w, r, "invite attendees", err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, eventsdk.InviteAttendeesResponse{
		SentCount:      res.SentCount,
		SkippedCount:   res.SkippedCount,
		TotalAttempted: res.TotalAttempted,
		Errors:         res.Errors,
	})
}

// HandleList godoc
//
//	@Summary	List Attendee Invitations
//	@Tags		Attendee Invitations
//	@Produce	json
//	@Param		id	path		string	true	"Event ID"
//	@Success	200	{array}		eventsdk.AttendeeInvitation
//	@Failure	404	{object}	eventsdk.ErrorResponse	"event_not_found"
//	@Security	BearerAuth
//	@Router		/events/{id}/invitations/ [get].
func (h *AttendeeInvitationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "id", service.ErrEventNotFound)
	if !ok {
		return
	}
	invs, err := h.InvitationService.List(r.Context(), httpx.UserID(r.Context()), eventID)
	if err != nil {
		writeServiceError(w, r, "list attendee invitations", err)
		return
	}

	out := make([]eventsdk.AttendeeInvitation, 0, len(invs))
	for _, inv := range invs {
		out = append(out, toAttendeeInvitation(inv))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleStats godoc
//
//	@Summary	Attendee Invitation Statistics
//	@Tags		Attendee Invitations
//	@Produce	json
//	@Param		id	path		string	true	"Event ID"
//	@Success	200	{object}	eventsdk.InvitationStats
//	@Failure	404	{object}	eventsdk.ErrorResponse	"event_not_found"
//	@Security	BearerAuth
//	@Router		/events/{id}/invitations/stats/ [get].
func (h *AttendeeInvitationHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "id", service.ErrEventNotFound)
	if !ok {
		return
	}
	stats, err := h.InvitationService.Stats(r.Context(), httpx.UserID(r.Context()), eventID)
	if err != nil {
		writeServiceError(w, r, "attendee invitation stats", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toStats(stats))
}

// HandleResend godoc
//
//	@Summary	Resend Attendee Invitation
//	@Tags		Attendee Invitations
//	@Produce	json
//	@Param		id				path		string	true	"Event ID"
//	@Param		invitation_id	path		string	true	"Invitation ID"
//	@Success	200				{object}	eventsdk.AttendeeInvitation
//	@Failure	404				{object}	eventsdk.ErrorResponse	"invitation_not_found"
//	@Failure	409				{object}	eventsdk.ErrorResponse	"invitation_not_pending"
//	@Failure	410				{object}	eventsdk.ErrorResponse	"invitation_expired"
//	@Failure	502				{object}	eventsdk.ErrorResponse	"notification_failed"
//	@Security	BearerAuth
//	@Router		/events/{id}/invitations/{invitation_id}/resend/ [post].
func (h *AttendeeInvitationHandler) HandleResend(w http.ResponseWriter, r *http.Request) {
	eventID, invitationID, ok := attendeeInvitationPath(w, r)
	if !ok {
		return
	}
	inv, err := h.InvitationService.Resend(r.Context(), httpx.UserID(r.Context()), eventID, invitationID)
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, toAttendeeInvitation(inv))
	case errors.Is(err, service.ErrInvitationExpired):
		writeExpired(w, inv.ExpiresAt)
	case errors.Is(err, service.ErrInvitationNotPending):
		writeNotPending(w, string(inv.Status))
	default:
		writeServiceError(w, r, "resend attendee invitation", err)
	}
}

// HandleCancel godoc
//
//	@Summary	Cancel Attendee Invitation
//	@Tags		Attendee Invitations
//	@Param		id				path	string	true	"Event ID"
//	@Param		invitation_id	path	string	true	"Invitation ID"
//	@Success	204
//	@Failure	404	{object}	eventsdk.ErrorResponse	"invitation_not_found"
//	@Failure	409	{object}	eventsdk.ErrorResponse	"invitation_not_pending"
//	@Security	BearerAuth
//	@Router		/events/{id}/invitations/{invitation_id}/ [delete].
func (h *AttendeeInvitationHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	eventID, invitationID, ok := attendeeInvitationPath(w, r)
	if !ok {
		return
	}
	err := h.InvitationService.Cancel(r.Context(), httpx.UserID(r.Context()), eventID, invitationID)
	if err != nil {
		writeServiceError(w, r, "cancel attendee invitation", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleVerify godoc
//
//	@Summary		Verify Attendee Invitation
//	@Description	Look up an attendee invitation by token together with the event it is for. Read-only.
//	@Description	can_accept is false when the invitation is no longer pending or the event is full.
//	@Tags			Attendee Invitations
//	@Produce		json
//	@Param			token	path		string	true	"Invitation token"
//	@Success		200		{object}	eventsdk.AttendeeInvitationDetails
//	@Failure		404		{object}	eventsdk.ErrorResponse	"invitation_not_found"
//	@Failure		409		{object}	eventsdk.ErrorResponse	"invitation_not_pending"
//	@Failure		410		{object}	eventsdk.ErrorResponse	"invitation_expired"
//	@Router			/attendee-invitations/verify/{token}/ [get].
func (h *AttendeeInvitationHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	view, err := h.InvitationService.Verify(r.Context(), r.PathValue("token"))
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, toAttendeeInvitationDetails(view))
	case errors.Is(err, service.ErrInvitationExpired):
		writeExpired(w, view.Invitation.ExpiresAt)
	case errors.Is(err, service.ErrInvitationNotPending):
		writeNotPending(w, string(view.Invitation.Status))
	default:
		writeServiceError(w, r, "verify attendee invitation", err)
	}
}

// HandleAccept godoc
//
//	@Summary		Accept Attendee Invitation
//	@Description	Register for the event. Capacity is enforced unless the invitation bypasses it.
//	@Tags			Attendee Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		eventsdk.AcceptAttendeeInvitationRequest	true	"Token and attendee details"
//	@Success		201		{object}	eventsdk.AcceptAttendeeInvitationResponse
//	@Failure		400		{object}	eventsdk.ErrorResponse	"validation_error"
//	@Failure		404		{object}	eventsdk.ErrorResponse	"invitation_not_found"
//	@Failure		409		{object}	eventsdk.ErrorResponse	"invitation_not_pending, event_full, conflict"
//	@Failure		410		{object}	eventsdk.ErrorResponse	"invitation_expired"
//	@Router			/attendee-invitations/accept/ [post].
func (h *AttendeeInvitationHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	var req eventsdk.AcceptAttendeeInvitationRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	res, err := h.InvitationService.Accept(r.Context(), service.AttendeeAcceptInput{
		Token:    req.Token,
		FullName: req.AttendeeData.FullName,
		Phone:    req.AttendeeData.Phone,
	})
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusCreated, eventsdk.AcceptAttendeeInvitationResponse{
			Attendee:  toAttendee(res.Attendee),
			EventName: res.Event.Name,
		})
	case errors.Is(err, service.ErrInvitationExpired):
		writeExpired(w, res.Invitation.ExpiresAt)
	case errors.Is(err, service.ErrInvitationNotPending):
		writeNotPending(w, string(res.Invitation.Status))
	case errors.Is(err, service.ErrInvalidFullName):
		writeFieldError(w, "attendee_data.full_name", "Full name must be at least 2 characters.")
	default:
		writeServiceError(w, r, "accept attendee invitation", err)
	}
}

// HandleReject godoc
//
//	@Summary	Reject Attendee Invitation
//	@Tags		Attendee Invitations
//	@Accept		json
//	@Param		request	body	eventsdk.RejectAttendeeInvitationRequest	true	"Token and optional reason"
//	@Success	204
//	@Failure	404	{object}	eventsdk.ErrorResponse	"invitation_not_found"
//	@Failure	409	{object}	eventsdk.ErrorResponse	"invitation_not_pending"
//	@Failure	410	{object}	eventsdk.ErrorResponse	"invitation_expired"
//	@Router		/attendee-invitations/reject/ [post].
func (h *AttendeeInvitationHandler) HandleReject(w http.ResponseWriter, r *http.Request) {
	var req eventsdk.RejectAttendeeInvitationRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if err := h.InvitationService.Reject(r.Context(), req.Token, req.Reason); err != nil {
		writeServiceError(w, r, "reject attendee invitation", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func attendeeInvitationPath(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	eventID, ok := pathID(w, r, "id", service.ErrEventNotFound)
	if !ok {
		return "", "", false
	}
	invitationID, ok := pathID(w, r, "invitation_id", service.ErrInvitationNotFound)
	if !ok {
		return "", "", false
	}
	return eventID, invitationID, true
}
