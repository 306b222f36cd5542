package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/eventplanner/internal/api/service"
	"github.com/aussiebroadwan/eventplanner/internal/api/store"
	"github.com/aussiebroadwan/eventplanner/pkg/eventsdk"
	"github.com/aussiebroadwan/eventplanner/pkg/httpx"
)

type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleRegisterOwner godoc
//
//	@Summary		Register Organization Owner
//	@Description	Create an organization together with its owner account and sign the owner in
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		eventsdk.RegisterOwnerRequest	true	"Owner and organization"
//	@Success		201		{object}	eventsdk.AuthResponse			"user, token, refresh_token"
//	@Failure		400		{object}	eventsdk.ErrorResponse			"validation_error"
//	@Failure		409		{object}	eventsdk.ErrorResponse			"conflict"
//	@Failure		500		{object}	eventsdk.ErrorResponse			"server_error"
//	@Router			/auth/register/owner/ [post].
func (h *AuthHandler) HandleRegisterOwner(w http.ResponseWriter, r *http.Request) {
	var req eventsdk.RegisterOwnerRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	user, tokens, err := h.AuthService.RegisterOwner(r.Context(), service.RegisterOwnerInput{
		FullName:         req.FullName,
		Email:            req.Email,
		Password:         req.Password,
		OrganizationName: req.Organization.Name,
	})
	if err != nil {
		writeServiceError(w, r, "register owner", err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toAuthResponse(user, tokens))
}

// HandleLogin godoc
//
//	@Summary		Login
//	@Description	Exchange email and password for an access and refresh token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		eventsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	eventsdk.AuthResponse	"user, token, refresh_token"
//	@Failure		400		{object}	eventsdk.ErrorResponse	"validation_error"
//	@Failure		401		{object}	eventsdk.ErrorResponse	"invalid_credentials"
//	@Router			/auth/login/ [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req eventsdk.LoginRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	user, tokens, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, "login", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAuthResponse(user, tokens))
}

// HandleRefresh godoc
//
//	@Summary		Refresh Tokens
//	@Description	Rotate a refresh token. The presented refresh token is revoked and a new pair is returned.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		eventsdk.RefreshRequest		true	"Refresh token"
//	@Success		200		{object}	eventsdk.RefreshResponse	"token, refresh_token"
//	@Failure		401		{object}	eventsdk.ErrorResponse		"invalid_refresh_token"
//	@Router			/auth/refresh/ [post].
func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	var req eventsdk.RefreshRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	tokens, err := h.AuthService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeServiceError(w, r, "refresh", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, eventsdk.RefreshResponse{
		Token:        tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    int(tokens.ExpiresIn.Seconds()),
	})
}

// HandleLogout godoc
//
//	@Summary		Logout
//	@Description	Revoke a refresh token. Unknown or already revoked tokens are accepted.
//	@Tags			Auth
//	@Accept			json
//	@Param			request	body	eventsdk.LogoutRequest	true	"Refresh token"
//	@Success		204
//	@Router			/auth/logout/ [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	var req eventsdk.LogoutRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if err := h.AuthService.Logout(r.Context(), req.RefreshToken); err != nil {
		writeServiceError(w, r, "logout", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleMe godoc
//
//	@Summary		Current User
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	eventsdk.UserResponse
//	@Failure		401	{object}	eventsdk.ErrorResponse	"unauthorized"
//	@Security		BearerAuth
//	@Router			/auth/me/ [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthService.Me(r.Context(), httpx.UserID(r.Context()))
	if errors.Is(err, store.ErrNotFound) {
		// Token outlived the account
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "Authentication credentials were not provided or are invalid.")
		return
	}
	if err != nil {
		writeServiceError(w, r, "me", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(user))
}
