package eventsdk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNewSDKClient(t *testing.T) {
	t.Parallel()

	require.Equal(t, "https://api.example.com", NewSDKClient("https://api.example.com/").BaseURL)
	require.Equal(t, DefaultBaseURL, NewSDKClient("").BaseURL)
}

func TestVerifyInvitation(t *testing.T) {
	t.Parallel()

	expiredAt := time.Date(2024, 3, 8, 10, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		switch r.URL.Path {
		case "/invitations/good/":
			writeJSON(w, http.StatusOK, InvitationDetails{
				Email:            "new@example.com",
				Role:             "MEMBER",
				OrganizationName: "Acme",
				Status:           "pending",
			})
		case "/invitations/abc123/":
			writeJSON(w, http.StatusGone, ErrorResponse{
				Message:   "This invitation has expired. Please ask for a new one.",
				Code:      ErrorCodeInvitationExpired,
				IsExpired: true,
				ExpiredAt: &expiredAt,
			})
		case "/invitations/used/":
			writeJSON(w, http.StatusConflict, ErrorResponse{
				Message: "This invitation has already been used or canceled.",
				Code:    ErrorCodeInvitationNotPending,
				Status:  "accepted",
			})
		default:
			writeJSON(w, http.StatusNotFound, ErrorResponse{Message: "Invitation not found or invalid.", Code: ErrorCodeInvitationNotFound})
		}
	}))
	t.Cleanup(srv.Close)

	client := NewSDKClient(srv.URL)
	ctx := context.Background()

	t.Run("pending", func(t *testing.T) {
		details, err := client.VerifyInvitation(ctx, "good")
		require.NoError(t, err)
		require.Equal(t, "Acme", details.OrganizationName)
	})

	t.Run("expired", func(t *testing.T) {
		_, err := client.VerifyInvitation(ctx, "abc123")
		require.True(t, IsExpired(err))

		apiErr, ok := AsAPIError(err)
		require.True(t, ok)
		require.Equal(t, ErrorCodeInvitationExpired, apiErr.Code)
		require.Equal(t, expiredAt, apiErr.ExpiredAt.UTC())
	})

	t.Run("used", func(t *testing.T) {
		_, err := client.VerifyInvitation(ctx, "used")
		require.True(t, IsConflict(err))
		require.Equal(t, "This invitation has already been used or canceled.", err.Error())

		apiErr, _ := AsAPIError(err)
		require.Equal(t, "accepted", apiErr.Status)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := client.VerifyInvitation(ctx, "nope")
		require.True(t, IsNotFound(err))
		require.False(t, IsExpired(err))
	})
}

func TestAcceptAttendeeInvitationSendsBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/attendee-invitations/accept/", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Empty(t, r.Header.Get("Authorization"))

		var req AcceptAttendeeInvitationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "tok", req.Token)
		require.Equal(t, "Jane Doe", req.AttendeeData.FullName)
		require.Equal(t, "555-1234", req.AttendeeData.Phone)

		writeJSON(w, http.StatusCreated, AcceptAttendeeInvitationResponse{
			Attendee:  Attendee{ID: "a1", FullName: req.AttendeeData.FullName},
			EventName: "Launch Party",
		})
	}))
	t.Cleanup(srv.Close)

	out, err := NewSDKClient(srv.URL).AcceptAttendeeInvitation(context.Background(), AcceptAttendeeInvitationRequest{
		Token:        "tok",
		AttendeeData: AttendeeData{FullName: "Jane Doe", Phone: "555-1234"},
	})
	require.NoError(t, err)
	require.Equal(t, "Launch Party", out.EventName)
}

func TestNonJSONErrorBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	_, err := NewSDKClient(srv.URL).GetLiveness(context.Background())
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, ErrorCodeServerError, apiErr.Code)
	require.Equal(t, "HTTP 502: Bad Gateway", err.Error())
}

func TestNetworkErrorIsWrapped(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewSDKClient(url).VerifyInvitation(context.Background(), "tok")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNetwork))
	_, ok := AsAPIError(err)
	require.False(t, ok)
}
