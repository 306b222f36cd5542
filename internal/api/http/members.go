package http

import (
	"net/http"

	"github.com/aussiebroadwan/eventplanner/internal/api/service"
	"github.com/aussiebroadwan/eventplanner/pkg/eventsdk"
	"github.com/aussiebroadwan/eventplanner/pkg/httpx"
)

type MembersHandler struct {
	MemberService *service.MemberService
}

// HandleList godoc
//
//	@Summary		List Members
//	@Description	List the people in an organization, oldest first
//	@Tags			Members
//	@Produce		json
//	@Param			id	path		string	true	"Organization ID"
//	@Success		200	{array}		eventsdk.UserResponse
//	@Failure		403	{object}	eventsdk.ErrorResponse	"forbidden"
//	@Security		BearerAuth
//	@Router			/organizations/{id}/members/ [get].
func (h *MembersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	orgID, ok := pathID(w, r, "id", service.ErrForbidden)
	if !ok {
		return
	}

	users, err := h.MemberService.List(r.Context(), httpx.UserID(r.Context()), orgID)
	if err != nil {
		writeServiceError(w, r, "list members", err)
		return
	}

	out := make([]eventsdk.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUser(u))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleRemove godoc
//
//	@Summary		Remove Member
//	@Description	Remove a member from the caller's organization. Owner only; the owner cannot be removed.
//	@Tags			Members
//	@Param			id	path	string	true	"User ID"
//	@Success		204
//	@Failure		403	{object}	eventsdk.ErrorResponse	"forbidden"
//	@Failure		404	{object}	eventsdk.ErrorResponse	"member_not_found"
//	@Failure		409	{object}	eventsdk.ErrorResponse	"conflict"
//	@Security		BearerAuth
//	@Router			/members/{id}/ [delete].
func (h *MembersHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", service.ErrMemberNotFound)
	if !ok {
		return
	}
	if err := h.MemberService.Remove(r.Context(), httpx.UserID(r.Context()), id); err != nil {
		writeServiceError(w, r, "remove member", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
