package eventsdk

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// Session holds the signed-in user's tokens and performs authenticated calls.
// All Session methods attach the bearer token and recover from a 401 with a
// single refresh.
type Session struct {
	client *SDKClient
	store  SessionStore

	mu    sync.RWMutex
	creds *Credentials
}

// Open restores persisted credentials from store. A session with nothing
// persisted is returned unauthenticated. When the stored record has tokens
// but no user profile, the profile is fetched with Me.
func Open(ctx context.Context, client *SDKClient, store SessionStore) (*Session, error) {
	if store == nil {
		store = &MemoryStore{}
	}
	s := &Session{client: client, store: store}

	creds, err := store.Load()
	if err != nil {
		return nil, err
	}
	if creds == nil || creds.Token == "" {
		return s, nil
	}
	s.creds = creds

	if creds.User == nil {
		if _, err := s.Me(ctx); err != nil && !errors.Is(err, ErrSessionExpired) {
			return nil, err
		}
	}
	return s, nil
}

// Authenticated reports whether the session holds a token.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds != nil && s.creds.Token != ""
}

// User returns the signed-in user, or nil.
func (s *Session) User() *UserResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.creds == nil || s.creds.User == nil {
		return nil
	}
	u := *s.creds.User
	return &u
}

// Client returns the transport the session uses for public calls.
func (s *Session) Client() *SDKClient { return s.client }

// Login signs in with a password and persists the tokens.
func (s *Session) Login(ctx context.Context, email, password string) (*UserResponse, error) {
	auth, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.Adopt(auth); err != nil {
		return nil, err
	}
	return &auth.User, nil
}

// Adopt signs the session in with tokens obtained elsewhere, e.g. from owner
// registration or an accepted organization invitation.
func (s *Session) Adopt(auth *AuthResponse) error {
	user := auth.User
	creds := Credentials{
		Token:        auth.Token,
		RefreshToken: auth.RefreshToken,
		ExpiresAt:    expiry(auth.ExpiresIn),
		User:         &user,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Save(creds); err != nil {
		return err
	}
	s.creds = &creds
	return nil
}

// Logout revokes the refresh token when possible and always clears local
// state. The revoke error is returned only for information; the session is
// signed out either way.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	creds := s.creds
	s.creds = nil
	clearErr := s.store.Clear()
	s.mu.Unlock()

	var revokeErr error
	if creds != nil && creds.RefreshToken != "" {
		revokeErr = s.client.Logout(ctx, creds.RefreshToken)
	}
	return errors.Join(clearErr, revokeErr)
}

// clearLocked drops credentials after an unrecoverable 401. Caller holds mu.
func (s *Session) clearLocked() {
	s.creds = nil
	_ = s.store.Clear()
}

func (s *Session) token() (string, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.creds == nil || s.creds.Token == "" {
		return "", "", ErrNotAuthenticated
	}
	return s.creds.Token, s.creds.RefreshToken, nil
}

// refresh rotates the tokens. stale is the access token that was rejected;
// if another goroutine already replaced it the refresh is skipped.
func (s *Session) refresh(ctx context.Context, stale string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.creds == nil {
		return ErrSessionExpired
	}
	if s.creds.Token != stale {
		return nil
	}
	if s.creds.RefreshToken == "" {
		s.clearLocked()
		return ErrSessionExpired
	}

	resp, err := s.client.Refresh(ctx, s.creds.RefreshToken)
	if err != nil {
		if errors.Is(err, ErrNetwork) || errors.Is(err, context.Canceled) {
			// Tokens may still be good once the network is back.
			return err
		}
		s.clearLocked()
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}

	creds := *s.creds
	creds.Token = resp.Token
	creds.RefreshToken = resp.RefreshToken
	creds.ExpiresAt = expiry(resp.ExpiresIn)
	if err := s.store.Save(creds); err != nil {
		return err
	}
	s.creds = &creds
	return nil
}

// do performs an authenticated request and decodes the answer into target.
// A 401 triggers exactly one refresh and one retry.
func (s *Session) do(ctx context.Context, method, path string, payload, target any, expectedStatus int) error {
	body, err := encodeBody(payload)
	if err != nil {
		return err
	}

	token, _, err := s.token()
	if err != nil {
		return err
	}

	resp, err := s.client.doRequest(ctx, method, path, body, token)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()

		if err := s.refresh(ctx, token); err != nil {
			return err
		}
		token, _, err = s.token()
		if err != nil {
			return err
		}
		resp, err = s.client.doRequest(ctx, method, path, body, token)
		if err != nil {
			return err
		}
	}

	return decodeJSON(resp, target, expectedStatus)
}

func expiry(expiresIn int) time.Time {
	if expiresIn <= 0 {
		return time.Time{}
	}
	return time.Now().Add(time.Duration(expiresIn) * time.Second).UTC()
}
