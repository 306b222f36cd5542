package eventsdk

import (
	"context"
	"net/http"
)

// Me fetches the signed-in user and stores the profile alongside the tokens.
func (s *Session) Me(ctx context.Context) (*UserResponse, error) {
	var out UserResponse
	if err := s.do(ctx, http.MethodGet, "/auth/me/", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.creds != nil {
		creds := *s.creds
		creds.User = &out
		if err := s.store.Save(creds); err == nil {
			s.creds = &creds
		}
	}
	s.mu.Unlock()

	return &out, nil
}
