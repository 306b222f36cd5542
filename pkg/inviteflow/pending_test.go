package inviteflow

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/aussiebroadwan/eventplanner/pkg/eventsdk"
	"github.com/stretchr/testify/require"
)

const (
	listRoute   = "GET /organizations/{id}/invitations/"
	cancelRoute = "DELETE /invitations/{id}/"
	resendRoute = "POST /invitations/{id}/resend/"
)

func pendingFixture(now time.Time) []eventsdk.Invitation {
	return []eventsdk.Invitation{
		{ID: "1", Email: "a@example.com", Role: "MEMBER", Status: "pending", ExpiresAt: now.Add(3 * 24 * time.Hour)},
		{ID: "2", Email: "b@example.com", Role: "ORG_ADMIN", Status: "pending", ExpiresAt: now.Add(5 * time.Hour)},
	}
}

func openSession(t *testing.T, client *eventsdk.SDKClient) *eventsdk.Session {
	t.Helper()

	store := &eventsdk.MemoryStore{}
	require.NoError(t, store.Save(eventsdk.Credentials{
		Token:        "access",
		RefreshToken: "refresh",
		User:         &eventsdk.UserResponse{ID: "u1", OrganizationID: "org1", Role: "ORG_OWNER"},
	}))

	session, err := eventsdk.Open(context.Background(), client, store)
	require.NoError(t, err)
	return session
}

func TestPendingListCancelScenario(t *testing.T) {
	t.Parallel()

	now := time.Now()
	entered := make(chan struct{})
	release := make(chan struct{})

	client, rec := newServer(t, map[string]http.HandlerFunc{
		listRoute: func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "org1", r.PathValue("id"))
			require.Equal(t, "pending", r.URL.Query().Get("status"))
			require.Equal(t, "Bearer access", r.Header.Get("Authorization"))
			writeJSON(w, http.StatusOK, pendingFixture(now))
		},
		cancelRoute: func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "1", r.PathValue("id"))
			close(entered)
			<-release
			w.WriteHeader(http.StatusNoContent)
		},
	})

	list := NewPendingList(context.Background(), openSession(t, client), "org1")
	t.Cleanup(list.Close)

	view, err := list.Load()
	require.NoError(t, err)
	require.Equal(t, PhaseReady, view.Phase)
	require.Len(t, view.Items, 2)

	type cancelResult struct {
		view PendingView
		err  error
	}
	result := make(chan cancelResult, 1)
	go func() {
		v, err := list.Cancel("1")
		result <- cancelResult{v, err}
	}()

	// Removed before the DELETE has answered.
	<-entered
	during := list.View()
	require.Len(t, during.Items, 1)
	require.Equal(t, "2", during.Items[0].ID)

	close(release)
	after := <-result
	require.NoError(t, after.err)
	require.Len(t, after.view.Items, 1)
	require.Empty(t, after.view.Notices)
	require.Equal(t, 1, rec.count(cancelRoute))
}

func TestPendingListCancelFailure(t *testing.T) {
	t.Parallel()

	now := time.Now()

	tests := []struct {
		name       string
		status     int
		wantNotice bool
	}{
		{name: "server error keeps row removed and reports", status: http.StatusInternalServerError, wantNotice: true},
		{name: "not found counts as gone", status: http.StatusNotFound},
		{name: "not pending counts as gone", status: http.StatusConflict},
		{name: "expired counts as gone", status: http.StatusGone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newServer(t, map[string]http.HandlerFunc{
				listRoute: func(w http.ResponseWriter, r *http.Request) {
					writeJSON(w, http.StatusOK, pendingFixture(now))
				},
				cancelRoute: func(w http.ResponseWriter, r *http.Request) {
					writeJSON(w, tt.status, eventsdk.ErrorResponse{Message: "Something broke.", Code: "x"})
				},
			})

			list := NewPendingList(context.Background(), openSession(t, client), "org1")
			_, err := list.Load()
			require.NoError(t, err)

			view, err := list.Cancel("1")
			require.NoError(t, err)
			require.Len(t, view.Items, 1)

			if tt.wantNotice {
				require.Len(t, view.Notices, 1)
				require.Contains(t, view.Notices[0], "a@example.com")
				require.Contains(t, view.Notices[0], "Something broke.")
			} else {
				require.Empty(t, view.Notices)
			}
		})
	}
}

func TestPendingListResendKeepsTokenAndExpiry(t *testing.T) {
	t.Parallel()

	now := time.Now()
	fixture := pendingFixture(now)

	client, rec := newServer(t, map[string]http.HandlerFunc{
		listRoute: func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, fixture)
		},
		resendRoute: func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, fixture[1])
		},
	})

	list := NewPendingList(context.Background(), openSession(t, client), "org1")
	_, err := list.Load()
	require.NoError(t, err)

	view, err := list.Resend("2")
	require.NoError(t, err)
	require.Len(t, view.Items, 2)
	require.Equal(t, fixture[1].ExpiresAt.Unix(), view.Items[1].ExpiresAt.Unix())
	require.Equal(t, []string{"Invitation resent to b@example.com."}, view.Notices)
	require.Equal(t, 1, rec.count(resendRoute))

	// Unknown rows are ignored without a request.
	_, err = list.Resend("42")
	require.NoError(t, err)
	require.Equal(t, 1, rec.count(resendRoute))
}

func TestPendingListTimeLeft(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	client, _ := newServer(t, map[string]http.HandlerFunc{
		listRoute: func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, pendingFixture(now))
		},
	})

	list := NewPendingList(context.Background(), openSession(t, client), "org1")
	list.Now = func() time.Time { return now }

	view, err := list.Load()
	require.NoError(t, err)
	require.Equal(t, "3 days left", view.Items[0].TimeLeft)
	require.Equal(t, "5 hours left", view.Items[1].TimeLeft)
}
