package eventsdk

import (
	"context"
	"net/http"
)

// ListMembers lists the people in an organization, oldest first.
func (s *Session) ListMembers(ctx context.Context, orgID string) ([]UserResponse, error) {
	var out []UserResponse
	if err := s.do(ctx, http.MethodGet, "/organizations/"+seg(orgID)+"/members/", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveMember removes a member from the caller's organization. Owner only.
// Events and invitations the member created pass to the owner.
func (s *Session) RemoveMember(ctx context.Context, id string) error {
	return s.do(ctx, http.MethodDelete, "/members/"+seg(id)+"/", nil, nil, http.StatusNoContent)
}
