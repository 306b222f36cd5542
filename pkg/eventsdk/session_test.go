package eventsdk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeAPI accepts access tokens equal to valid and rotates tokens on refresh.
type fakeAPI struct {
	valid        atomic.Value // string
	refreshToken atomic.Value // string
	refreshOK    atomic.Bool
	refreshCalls atomic.Int32
	logoutCalls  atomic.Int32
	deleted      atomic.Value // string
}

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	t.Helper()

	f := &fakeAPI{}
	f.valid.Store("access-1")
	f.refreshToken.Store("refresh-1")
	f.refreshOK.Store(true)
	f.deleted.Store("")

	mux := http.NewServeMux()
	authed := func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer "+f.valid.Load().(string) {
				writeJSON(w, http.StatusUnauthorized, ErrorResponse{Message: "Authentication credentials were not provided or are invalid.", Code: ErrorCodeUnauthorized})
				return
			}
			h(w, r)
		}
	}

	mux.HandleFunc("POST /auth/login/", func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "password123" {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Message: "Invalid email or password.", Code: ErrorCodeInvalidCredentials})
			return
		}
		writeJSON(w, http.StatusOK, AuthResponse{
			User:         UserResponse{ID: "u1", Email: req.Email, OrganizationID: "org1", Role: "ORG_OWNER"},
			Token:        f.valid.Load().(string),
			RefreshToken: f.refreshToken.Load().(string),
			ExpiresIn:    900,
		})
	})
	mux.HandleFunc("POST /auth/refresh/", func(w http.ResponseWriter, r *http.Request) {
		f.refreshCalls.Add(1)
		var req RefreshRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if !f.refreshOK.Load() || req.RefreshToken != f.refreshToken.Load().(string) {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Message: "Refresh token is invalid or expired.", Code: ErrorCodeInvalidRefreshToken})
			return
		}
		f.valid.Store("access-2")
		f.refreshToken.Store("refresh-2")
		writeJSON(w, http.StatusOK, RefreshResponse{Token: "access-2", RefreshToken: "refresh-2", ExpiresIn: 900})
	})
	mux.HandleFunc("POST /auth/logout/", func(w http.ResponseWriter, r *http.Request) {
		f.logoutCalls.Add(1)
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /auth/me/", authed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, UserResponse{ID: "u1", Email: "owner@example.com", OrganizationID: "org1"})
	}))
	mux.HandleFunc("GET /organizations/{id}/invitations/", authed(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "pending", r.URL.Query().Get("status"))
		writeJSON(w, http.StatusOK, []Invitation{{ID: "1", Email: "a@example.com", Status: "pending"}})
	}))
	mux.HandleFunc("DELETE /invitations/{id}/", authed(func(w http.ResponseWriter, r *http.Request) {
		f.deleted.Store(r.PathValue("id"))
		w.WriteHeader(http.StatusNoContent)
	}))
	mux.HandleFunc("POST /events/{id}/invitations/", authed(func(w http.ResponseWriter, r *http.Request) {
		var req InviteAttendeesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		writeJSON(w, http.StatusCreated, InviteAttendeesResponse{SentCount: len(req.Emails), TotalAttempted: len(req.Emails), Errors: []string{}})
	}))

	mux.HandleFunc("GET /organizations/{id}/members/", authed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []UserResponse{{ID: "u1", Role: "ORG_OWNER"}, {ID: "u2", Role: "MEMBER"}})
	}))
	mux.HandleFunc("DELETE /members/{id}/", authed(func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") == "u1" {
			writeJSON(w, http.StatusConflict, ErrorResponse{Message: "The organization owner cannot be removed.", Code: "conflict"})
			return
		}
		f.deleted.Store(r.PathValue("id"))
		w.WriteHeader(http.StatusNoContent)
	}))
	mux.HandleFunc("PUT /events/{id}/", authed(func(w http.ResponseWriter, r *http.Request) {
		var req EventRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		writeJSON(w, http.StatusOK, Event{ID: r.PathValue("id"), Name: req.Name, Capacity: req.Capacity})
	}))
	mux.HandleFunc("DELETE /events/{id}/", authed(func(w http.ResponseWriter, r *http.Request) {
		f.deleted.Store(r.PathValue("id"))
		w.WriteHeader(http.StatusNoContent)
	}))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return f, srv
}

func TestSessionLoginPersists(t *testing.T) {
	t.Parallel()

	_, srv := newFakeAPI(t)
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	ctx := context.Background()

	session, err := Open(ctx, NewSDKClient(srv.URL), store)
	require.NoError(t, err)
	require.False(t, session.Authenticated())

	_, err = session.ListInvitations(ctx, "org1", "pending")
	require.ErrorIs(t, err, ErrNotAuthenticated)

	user, err := session.Login(ctx, "owner@example.com", "password123")
	require.NoError(t, err)
	require.Equal(t, "org1", user.OrganizationID)

	// A fresh process sees the same session.
	reopened, err := Open(ctx, NewSDKClient(srv.URL), store)
	require.NoError(t, err)
	require.True(t, reopened.Authenticated())
	require.Equal(t, "u1", reopened.User().ID)

	invs, err := reopened.ListInvitations(ctx, "org1", "pending")
	require.NoError(t, err)
	require.Len(t, invs, 1)
}

func TestSessionLoginFailureKeepsServerMessage(t *testing.T) {
	t.Parallel()

	_, srv := newFakeAPI(t)
	session, err := Open(context.Background(), NewSDKClient(srv.URL), &MemoryStore{})
	require.NoError(t, err)

	_, err = session.Login(context.Background(), "owner@example.com", "wrong")
	require.Error(t, err)
	require.Equal(t, "Invalid email or password.", err.Error())
	require.False(t, session.Authenticated())
}

func TestSessionRefreshesOnceOn401(t *testing.T) {
	t.Parallel()

	api, srv := newFakeAPI(t)
	store := &MemoryStore{}
	ctx := context.Background()

	session, err := Open(ctx, NewSDKClient(srv.URL), store)
	require.NoError(t, err)
	_, err = session.Login(ctx, "owner@example.com", "password123")
	require.NoError(t, err)

	// The stored access token is no longer accepted; refresh issues access-2.
	api.valid.Store("revoked")

	err = session.CancelInvitation(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, "1", api.deleted.Load())
	require.EqualValues(t, 1, api.refreshCalls.Load())

	creds, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, "access-2", creds.Token)
	require.Equal(t, "refresh-2", creds.RefreshToken)
	require.Equal(t, "u1", creds.User.ID)
}

func TestSessionClearedWhenRefreshFails(t *testing.T) {
	t.Parallel()

	api, srv := newFakeAPI(t)
	store := &MemoryStore{}
	ctx := context.Background()

	session, err := Open(ctx, NewSDKClient(srv.URL), store)
	require.NoError(t, err)
	_, err = session.Login(ctx, "owner@example.com", "password123")
	require.NoError(t, err)

	api.valid.Store("something-else")
	api.refreshOK.Store(false)

	_, err = session.ListInvitations(ctx, "org1", "pending")
	require.ErrorIs(t, err, ErrSessionExpired)
	require.EqualValues(t, 1, api.refreshCalls.Load())
	require.False(t, session.Authenticated())

	creds, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, creds)
}

func TestSessionLogoutAlwaysClears(t *testing.T) {
	t.Parallel()

	api, srv := newFakeAPI(t)
	store := NewFileStore(filepath.Join(t.TempDir(), "nested", "session.json"))
	ctx := context.Background()

	session, err := Open(ctx, NewSDKClient(srv.URL), store)
	require.NoError(t, err)
	_, err = session.Login(ctx, "owner@example.com", "password123")
	require.NoError(t, err)

	require.NoError(t, session.Logout(ctx))
	require.EqualValues(t, 1, api.logoutCalls.Load())
	require.False(t, session.Authenticated())
	require.Nil(t, session.User())

	creds, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, creds)

	t.Run("server unreachable", func(t *testing.T) {
		mem := &MemoryStore{}
		require.NoError(t, mem.Save(Credentials{Token: "t", RefreshToken: "r", User: &UserResponse{ID: "u1"}}))

		dead := httptest.NewServer(http.NotFoundHandler())
		deadURL := dead.URL
		dead.Close()

		s, err := Open(ctx, NewSDKClient(deadURL), mem)
		require.NoError(t, err)
		err = s.Logout(ctx)
		require.True(t, errors.Is(err, ErrNetwork))
		require.False(t, s.Authenticated())

		creds, err := mem.Load()
		require.NoError(t, err)
		require.Nil(t, creds)
	})
}

func TestOpenFetchesMissingProfile(t *testing.T) {
	t.Parallel()

	_, srv := newFakeAPI(t)
	store := &MemoryStore{}
	require.NoError(t, store.Save(Credentials{Token: "access-1", RefreshToken: "refresh-1"}))

	session, err := Open(context.Background(), NewSDKClient(srv.URL), store)
	require.NoError(t, err)
	require.Equal(t, "owner@example.com", session.User().Email)
}

func TestInviteAttendees(t *testing.T) {
	t.Parallel()

	_, srv := newFakeAPI(t)
	ctx := context.Background()
	session, err := Open(ctx, NewSDKClient(srv.URL), &MemoryStore{})
	require.NoError(t, err)
	_, err = session.Login(ctx, "owner@example.com", "password123")
	require.NoError(t, err)

	out, err := session.InviteAttendees(ctx, "ev1", InviteAttendeesRequest{Emails: []string{"a@example.com", "b@example.com"}})
	require.NoError(t, err)
	require.Equal(t, 2, out.SentCount)
}

func TestMembersAndEventEditing(t *testing.T) {
	t.Parallel()

	api, srv := newFakeAPI(t)
	ctx := context.Background()
	session, err := Open(ctx, NewSDKClient(srv.URL), &MemoryStore{})
	require.NoError(t, err)
	_, err = session.Login(ctx, "owner@example.com", "password123")
	require.NoError(t, err)

	members, err := session.ListMembers(ctx, "org1")
	require.NoError(t, err)
	require.Len(t, members, 2)

	require.NoError(t, session.RemoveMember(ctx, "u2"))
	require.Equal(t, "u2", api.deleted.Load())

	err = session.RemoveMember(ctx, "u1")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusConflict, apiErr.StatusCode)

	ev, err := session.UpdateEvent(ctx, "ev1", EventRequest{Name: "Renamed", Capacity: 5})
	require.NoError(t, err)
	require.Equal(t, "Renamed", ev.Name)
	require.Equal(t, 5, ev.Capacity)

	require.NoError(t, session.DeleteEvent(ctx, "ev1"))
	require.Equal(t, "ev1", api.deleted.Load())
}
