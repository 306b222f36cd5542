package http

import (
	"net/http"

	"github.com/aussiebroadwan/eventplanner/internal/api/service"
	"github.com/aussiebroadwan/eventplanner/pkg/eventsdk"
	"github.com/aussiebroadwan/eventplanner/pkg/httpx"
)

type EventsHandler struct {
	EventService *service.EventService
}

// HandleCreate godoc
//
//	@Summary		Create Event
//	@Tags			Events
//	@Accept			json
//	@Produce		json
//	@Param			request	body		eventsdk.EventRequest	true	"Event"
//	@Success		201		{object}	eventsdk.Event
//	@Failure		400		{object}	eventsdk.ErrorResponse	"validation_error"
//	@Security		BearerAuth
//	@Router			/events/ [post].
func (h *EventsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req eventsdk.EventRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	ev, err := h.EventService.Create(r.Context(), httpx.UserID(r.Context()), toEventInput(req))
	if err != nil {
		writeServiceError(w, r, "create event", err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toEvent(ev))
}

// HandleList godoc
//
//	@Summary		List Events
//	@Description	List the events of the caller's organization
//	@Tags			Events
//	@Produce		json
//	@Success		200	{array}	eventsdk.Event
//	@Security		BearerAuth
//	@Router			/events/ [get].
func (h *EventsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	events, err := h.EventService.List(r.Context(), httpx.UserID(r.Context()))
	if err != nil {
		writeServiceError(w, r, "list events", err)
		return
	}

	out := make([]eventsdk.Event, 0, len(events))
	for _, ev := range events {
		out = append(out, toEvent(ev))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary	Get Event
//	@Tags		Events
//	@Produce	json
//	@Param		id	path		string	true	"Event ID"
//	@Success	200	{object}	eventsdk.Event
//	@Failure	404	{object}	eventsdk.ErrorResponse	"event_not_found"
//	@Security	BearerAuth
//	@Router		/events/{id}/ [get].
func (h *EventsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", service.ErrEventNotFound)
	if !ok {
		return
	}
	ev, err := h.EventService.Get(r.Context(), httpx.UserID(r.Context()), id)
	if err != nil {
		writeServiceError(w, r, "get event", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toEvent(ev))
}

// HandleUpdate godoc
//
//	@Summary		Update Event
//	@Description	Replace the editable fields of an event. Owners and admins only.
//	@Tags			Events
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Event ID"
//	@Param			request	body		eventsdk.EventRequest	true	"Event"
//	@Success		200		{object}	eventsdk.Event
//	@Failure		400		{object}	eventsdk.ErrorResponse	"validation_error"
//	@Failure		403		{object}	eventsdk.ErrorResponse	"forbidden"
//	@Failure		404		{object}	eventsdk.ErrorResponse	"event_not_found"
//	@Failure		409		{object}	eventsdk.ErrorResponse	"conflict"
//	@Security		BearerAuth
//	@Router			/events/{id}/ [put].
func (h *EventsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", service.ErrEventNotFound)
	if !ok {
		return
	}
	var req eventsdk.EventRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	ev, err := h.EventService.Update(r.Context(), httpx.UserID(r.Context()), id, toEventInput(req))
	if err != nil {
		writeServiceError(w, r, "update event", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toEvent(ev))
}

// HandleDelete godoc
//
//	@Summary		Delete Event
//	@Description	Delete an event together with its attendees and attendee invitations. Owners and admins only.
//	@Tags			Events
//	@Param			id	path	string	true	"Event ID"
//	@Success		204
//	@Failure		403	{object}	eventsdk.ErrorResponse	"forbidden"
//	@Failure		404	{object}	eventsdk.ErrorResponse	"event_not_found"
//	@Security		BearerAuth
//	@Router			/events/{id}/ [delete].
func (h *EventsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", service.ErrEventNotFound)
	if !ok {
		return
	}
	if err := h.EventService.Delete(r.Context(), httpx.UserID(r.Context()), id); err != nil {
		writeServiceError(w, r, "delete event", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
