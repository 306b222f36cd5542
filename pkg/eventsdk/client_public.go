package eventsdk

import (
	"context"
	"net/http"
)

// ============================================================================
// Organization Invitations
// ============================================================================

// VerifyInvitation looks up an organization invitation by token. Expired and
// used invitations come back as *APIError (410 and 409).
func (c *SDKClient) VerifyInvitation(ctx context.Context, token string) (*InvitationDetails, error) {
	var out InvitationDetails
	if err := c.call(ctx, http.MethodGet, "/invitations/"+seg(token)+"/", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// AcceptInvitation redeems an organization invitation. The response carries
// tokens for the newly created account; Session.Adopt signs it in.
func (c *SDKClient) AcceptInvitation(ctx context.Context, req AcceptInvitationRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.call(ctx, http.MethodPost, "/invitations/accept/", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ============================================================================
// Attendee Invitations
// ============================================================================

// VerifyAttendeeInvitation looks up an attendee invitation and its event.
func (c *SDKClient) VerifyAttendeeInvitation(ctx context.Context, token string) (*AttendeeInvitationDetails, error) {
	var out AttendeeInvitationDetails
	if err := c.call(ctx, http.MethodGet, "/attendee-invitations/verify/"+seg(token)+"/", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// AcceptAttendeeInvitation registers the invitee for the event.
func (c *SDKClient) AcceptAttendeeInvitation(ctx context.Context, req AcceptAttendeeInvitationRequest) (*AcceptAttendeeInvitationResponse, error) {
	var out AcceptAttendeeInvitationResponse
	if err := c.call(ctx, http.MethodPost, "/attendee-invitations/accept/", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// RejectAttendeeInvitation declines an attendee invitation.
func (c *SDKClient) RejectAttendeeInvitation(ctx context.Context, req RejectAttendeeInvitationRequest) error {
	return c.call(ctx, http.MethodPost, "/attendee-invitations/reject/", req, nil, http.StatusNoContent)
}

// ============================================================================
// Accounts
// ============================================================================

// Login exchanges credentials for tokens. Most callers want Session.Login,
// which also persists them.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	req := LoginRequest{Email: email, Password: password}
	if err := c.call(ctx, http.MethodPost, "/auth/login/", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// RegisterOwner creates an organization and its owner account.
func (c *SDKClient) RegisterOwner(ctx context.Context, req RegisterOwnerRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.call(ctx, http.MethodPost, "/auth/register/owner/", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// Refresh rotates a refresh token.
func (c *SDKClient) Refresh(ctx context.Context, refreshToken string) (*RefreshResponse, error) {
	var out RefreshResponse
	req := RefreshRequest{RefreshToken: refreshToken}
	if err := c.call(ctx, http.MethodPost, "/auth/refresh/", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout revokes a refresh token.
func (c *SDKClient) Logout(ctx context.Context, refreshToken string) error {
	req := LogoutRequest{RefreshToken: refreshToken}
	return c.call(ctx, http.MethodPost, "/auth/logout/", req, nil, http.StatusNoContent)
}

// ============================================================================
// Health
// ============================================================================

// GetLiveness checks whether the API process is up.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.call(ctx, http.MethodGet, "/livez", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetReadiness checks whether the API can serve requests.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.call(ctx, http.MethodGet, "/readyz", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
