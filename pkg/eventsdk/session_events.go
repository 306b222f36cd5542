package eventsdk

import (
	"context"
	"net/http"
)

// ============================================================================
// Events
// ============================================================================

func (s *Session) CreateEvent(ctx context.Context, req EventRequest) (*Event, error) {
	var out Event
	if err := s.do(ctx, http.MethodPost, "/events/", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListEvents lists the events of the caller's organization.
func (s *Session) ListEvents(ctx context.Context) ([]Event, error) {
	var out []Event
	if err := s.do(ctx, http.MethodGet, "/events/", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) GetEvent(ctx context.Context, id string) (*Event, error) {
	var out Event
	if err := s.do(ctx, http.MethodGet, "/events/"+seg(id)+"/", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateEvent replaces the editable fields of an event. Owners and admins
// only; lowering a limited capacity below the registered guests conflicts.
func (s *Session) UpdateEvent(ctx context.Context, id string, req EventRequest) (*Event, error) {
	var out Event
	if err := s.do(ctx, http.MethodPut, "/events/"+seg(id)+"/", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteEvent removes an event with its attendees and attendee invitations.
func (s *Session) DeleteEvent(ctx context.Context, id string) error {
	return s.do(ctx, http.MethodDelete, "/events/"+seg(id)+"/", nil, nil, http.StatusNoContent)
}

// ============================================================================
// Attendee Invitations
// ============================================================================

// InviteAttendees invites up to 100 addresses at once. Duplicates and
// invalid addresses are skipped and reported in Errors.
func (s *Session) InviteAttendees(ctx context.Context, eventID string, req InviteAttendeesRequest) (*InviteAttendeesResponse, error) {
	var out InviteAttendeesResponse
	if err := s.do(ctx, http.MethodPost, "/events/"+seg(eventID)+"/invitations/", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) ListAttendeeInvitations(ctx context.Context, eventID string) ([]AttendeeInvitation, error) {
	var out []AttendeeInvitation
	if err := s.do(ctx, http.MethodGet, "/events/"+seg(eventID)+"/invitations/", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) AttendeeInvitationStats(ctx context.Context, eventID string) (*InvitationStats, error) {
	var out InvitationStats
	if err := s.do(ctx, http.MethodGet, "/events/"+seg(eventID)+"/invitations/stats/", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) ResendAttendeeInvitation(ctx context.Context, eventID, invitationID string) (*AttendeeInvitation, error) {
	var out AttendeeInvitation
	path := "/events/" + seg(eventID) + "/invitations/" + seg(invitationID) + "/resend/"
	if err := s.do(ctx, http.MethodPost, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) CancelAttendeeInvitation(ctx context.Context, eventID, invitationID string) error {
	path := "/events/" + seg(eventID) + "/invitations/" + seg(invitationID) + "/"
	return s.do(ctx, http.MethodDelete, path, nil, nil, http.StatusNoContent)
}
