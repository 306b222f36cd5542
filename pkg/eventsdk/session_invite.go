package eventsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Organization membership invitations. Issuing requires the owner role.

// InviteMember invites someone to join an organization.
func (s *Session) InviteMember(ctx context.Context, orgID string, req InviteMemberRequest) (*Invitation, error) {
	var out Invitation
	path := "/organizations/" + seg(orgID) + "/invitations/"
	if err := s.do(ctx, http.MethodPost, path, req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListInvitations lists an organization's invitations, optionally filtered
// by status ("pending", "accepted", "expired", "canceled").
func (s *Session) ListInvitations(ctx context.Context, orgID, status string) ([]Invitation, error) {
	path := "/organizations/" + seg(orgID) + "/invitations/"
	if status != "" {
		path += "?" + url.Values{"status": {status}}.Encode()
	}

	var out []Invitation
	if err := s.do(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// ResendInvitation emails a pending invitation again. Token and expiry do
// not change.
func (s *Session) ResendInvitation(ctx context.Context, id string) (*Invitation, error) {
	var out Invitation
	if err := s.do(ctx, http.MethodPost, "/invitations/"+seg(id)+"/resend/", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelInvitation cancels a pending invitation.
func (s *Session) CancelInvitation(ctx context.Context, id string) error {
	return s.do(ctx, http.MethodDelete, "/invitations/"+seg(id)+"/", nil, nil, http.StatusNoContent)
}
