package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/eventplanner/internal/api/domain"
	"github.com/aussiebroadwan/eventplanner/internal/api/service"
	"github.com/aussiebroadwan/eventplanner/pkg/eventsdk"
	"github.com/aussiebroadwan/eventplanner/pkg/httpx"
)

type OrgInvitationHandler struct {
	InvitationService *service.OrgInvitationService
}

// HandleCreate godoc
//
//	@Summary		Invite Member
//	@Description	Invite an email address to join the organization. Only the organization owner may invite.
//	@Description	The invitation email is sent immediately; a delivery failure is logged and the invitation can be resent.
//	@Tags			Organization Invitations
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Organization ID"
//	@Param			request	body		eventsdk.InviteMemberRequest	true	"Invitee"
//	@Success		201		{object}	eventsdk.Invitation
//	@Failure		400		{object}	eventsdk.ErrorResponse	"validation_error"
//	@Failure		403		{object}	eventsdk.ErrorResponse	"forbidden"
//	@Failure		409		{object}	eventsdk.ErrorResponse	"conflict"
//	@Security		BearerAuth
//	@Router			/organizations/{id}/invitations/ [post].
func (h *OrgInvitationHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	orgID, ok := pathID(w, r, "id", service.ErrForbidden)
	if !ok {
		return
	}
	var req eventsdk.InviteMemberRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	inv, err := h.InvitationService.Issue(r.Context(),
		httpx.UserID(r.Context()),
		orgID,
		req.Email,
		domain.OrgRole(req.Role),
	)
	if err != nil {
		writeServiceError(w, r, "issue invitation", err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toInvitation(inv))
}

// HandleList godoc
//
//	@Summary		List Invitations
//	@Description	List the organization's invitations newest first. Status reflects expiry.
//	@Tags			Organization Invitations
//	@Produce		json
//	@Param			id		path		string	true	"Organization ID"
//	@Param			status	query		string	false	"Filter by status"	Enums(pending, accepted, expired, canceled)
//	@Success		200		{array}		eventsdk.Invitation
//	@Failure		403		{object}	eventsdk.ErrorResponse	"forbidden"
//	@Security		BearerAuth
//	@Router			/organizations/{id}/invitations/ [get].
func (h *OrgInvitationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	orgID, ok := pathID(w, r, "id", service.ErrForbidden)
	if !ok {
		return
	}
	status := domain.InvitationStatus(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		writeFieldError(w, "status", "Unknown invitation status.")
		return
	}

	invs, err := h.InvitationService.List(r.Context(), httpx.UserID(r.Context()), orgID, status)
	if err != nil {
		writeServiceError(w, r, "list invitations", err)
		return
	}

	out := make([]eventsdk.Invitation, 0, len(invs))
	for _, inv := range invs {
		out = append(out, toInvitation(inv))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleVerify godoc
//
//	@Summary		Verify Invitation
//	@Description	Look up an invitation by token. Read-only.
//	@Tags			Organization Invitations
//	@Produce		json
//	@Param			token	path		string	true	"Invitation token"
//	@Success		200		{object}	eventsdk.InvitationDetails
//	@Failure		404		{object}	eventsdk.ErrorResponse	"invitation_not_found"
//	@Failure		409		{object}	eventsdk.ErrorResponse	"invitation_not_pending"
//	@Failure		410		{object}	eventsdk.ErrorResponse	"invitation_expired"
//	@Router			/invitations/{token}/ [get].
func (h *OrgInvitationHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	inv, err := h.InvitationService.Verify(r.Context(), r.PathValue("token"))
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, toInvitationDetails(inv))
	case errors.Is(err, service.ErrInvitationExpired):
		writeExpired(w, inv.ExpiresAt)
	case errors.Is(err, service.ErrInvitationNotPending):
		writeNotPending(w, string(inv.Status))
	default:
		writeServiceError(w, r, "verify invitation", err)
	}
}

// HandleAccept godoc
//
//	@Summary		Accept Invitation
//	@Description	Redeem an invitation token, creating the member's account. Expiry is checked against expires_at at the time of the request.
//	@Tags			Organization Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		eventsdk.AcceptInvitationRequest	true	"Token and account details"
//	@Success		201		{object}	eventsdk.AuthResponse				"user, token, refresh_token"
//	@Failure		400		{object}	eventsdk.ErrorResponse				"validation_error"
//	@Failure		404		{object}	eventsdk.ErrorResponse				"invitation_not_found"
//	@Failure		409		{object}	eventsdk.ErrorResponse				"invitation_not_pending, conflict"
//	@Failure		410		{object}	eventsdk.ErrorResponse				"invitation_expired"
//	@Router			/invitations/accept/ [post].
func (h *OrgInvitationHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	var req eventsdk.AcceptInvitationRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	res, err := h.InvitationService.Accept(r.Context(), service.AcceptInput{
		Token:    req.Token,
		FullName: req.FullName,
		Password: req.Password,
	})
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusCreated, toAuthResponse(res.User, res.Tokens))
	case errors.Is(err, service.ErrInvitationExpired):
		writeExpired(w, res.Invitation.ExpiresAt)
	case errors.Is(err, service.ErrInvitationNotPending):
		writeNotPending(w, string(res.Invitation.Status))
	default:
		writeServiceError(w, r, "accept invitation", err)
	}
}

// HandleResend godoc
//
//	@Summary		Resend Invitation
//	@Description	Email a pending invitation again. The token and expiry are unchanged.
//	@Tags			Organization Invitations
//	@Produce		json
//	@Param			id	path		string	true	"Invitation ID"
//	@Success		200	{object}	eventsdk.Invitation
//	@Failure		404	{object}	eventsdk.ErrorResponse	"invitation_not_found"
//	@Failure		409	{object}	eventsdk.ErrorResponse	"invitation_not_pending"
//	@Failure		410	{object}	eventsdk.ErrorResponse	"invitation_expired"
//	@Failure		502	{object}	eventsdk.ErrorResponse	"notification_failed"
//	@Security		BearerAuth
//	@Router			/invitations/{id}/resend/ [post].
func (h *OrgInvitationHandler) HandleResend(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", service.ErrInvitationNotFound)
	if !ok {
		return
	}
	inv, err := h.InvitationService.Resend(r.Context(), httpx.UserID(r.Context()), id)
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, toInvitation(inv))
	case errors.Is(err, service.ErrInvitationExpired):
		writeExpired(w, inv.ExpiresAt)
	case errors.Is(err, service.ErrInvitationNotPending):
		writeNotPending(w, string(inv.Status))
	default:
		writeServiceError(w, r, "resend invitation", err)
	}
}

// HandleCancel godoc
//
//	@Summary		Cancel Invitation
//	@Description	Cancel a pending invitation. Canceled invitations can no longer be accepted.
//	@Tags			Organization Invitations
//	@Param			id	path	string	true	"Invitation ID"
//	@Success		204
//	@Failure		404	{object}	eventsdk.ErrorResponse	"invitation_not_found"
//	@Failure		409	{object}	eventsdk.ErrorResponse	"invitation_not_pending"
//	@Security		BearerAuth
//	@Router			/invitations/{id}/ [delete].
func (h *OrgInvitationHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", service.ErrInvitationNotFound)
	if !ok {
		return
	}
	if err := h.InvitationService.Cancel(r.Context(), httpx.UserID(r.Context()), id); err != nil {
		writeServiceError(w, r, "cancel invitation", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
