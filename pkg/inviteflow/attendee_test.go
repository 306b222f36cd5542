package inviteflow

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/aussiebroadwan/eventplanner/pkg/eventsdk"
	"github.com/stretchr/testify/require"
)

const (
	attendeeVerifyRoute = "GET /attendee-invitations/verify/{token}/"
	attendeeAcceptRoute = "POST /attendee-invitations/accept/"
	attendeeRejectRoute = "POST /attendee-invitations/reject/"
)

func attendeeDetails(canAccept bool) eventsdk.AttendeeInvitationDetails {
	return eventsdk.AttendeeInvitationDetails{
		Email:            "jane@example.com",
		Status:           "pending",
		ExpiresAt:        time.Now().Add(48 * time.Hour),
		EventName:        "Launch Party",
		EventDate:        "2030-06-01",
		EventTime:        "18:30",
		InviterName:      "John Doe",
		OrganizationName: "TechCorp Events",
		CanAccept:        canAccept,
	}
}

func TestAttendeeAcceptanceScenario(t *testing.T) {
	t.Parallel()

	client, rec := newServer(t, map[string]http.HandlerFunc{
		attendeeVerifyRoute: func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, attendeeDetails(true))
		},
		attendeeAcceptRoute: func(w http.ResponseWriter, r *http.Request) {
			var req eventsdk.AcceptAttendeeInvitationRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "tok", req.Token)
			require.Equal(t, "Jane Doe", req.AttendeeData.FullName)
			require.Equal(t, "555-1234", req.AttendeeData.Phone)

			writeJSON(w, http.StatusCreated, eventsdk.AcceptAttendeeInvitationResponse{
				Attendee:  eventsdk.Attendee{ID: "a1", FullName: "Jane Doe", Phone: "555-1234", Status: "registered"},
				EventName: "Launch Party",
			})
		},
	})

	flow := NewAttendeeAcceptance(context.Background(), client)
	t.Cleanup(flow.Close)

	view, err := flow.Load("tok")
	require.NoError(t, err)
	require.Equal(t, PhaseReady, view.Phase)

	view, err = flow.Submit(AttendeeAcceptInput{FullName: "Jane Doe", Phone: "555-1234"})
	require.NoError(t, err)
	require.Equal(t, PhaseAccepted, view.Phase)
	require.Equal(t, "Launch Party", view.Result.EventName)
	require.Equal(t, "Launch Party", view.EventName())
	require.Contains(t, view.Message, "Launch Party")
	require.Equal(t, 1, rec.count(attendeeAcceptRoute))
}

func TestAttendeeAcceptanceRequiresName(t *testing.T) {
	t.Parallel()

	client, rec := newServer(t, map[string]http.HandlerFunc{
		attendeeVerifyRoute: func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, attendeeDetails(true))
		},
		attendeeAcceptRoute: func(w http.ResponseWriter, r *http.Request) {
			t.Error("accept must not be called when the form is invalid")
		},
	})

	flow := NewAttendeeAcceptance(context.Background(), client)
	_, err := flow.Load("tok")
	require.NoError(t, err)

	view, err := flow.Submit(AttendeeAcceptInput{Phone: "555-1234"})
	require.NoError(t, err)
	require.Equal(t, PhaseReady, view.Phase)
	require.Equal(t, "This field is required.", view.FieldErrors["full_name"])
	require.Equal(t, 0, rec.count(attendeeAcceptRoute))
}

func TestAttendeeAcceptanceUnavailable(t *testing.T) {
	t.Parallel()

	client, _ := newServer(t, map[string]http.HandlerFunc{
		attendeeVerifyRoute: func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, attendeeDetails(false))
		},
	})

	flow := NewAttendeeAcceptance(context.Background(), client)
	view, err := flow.Load("tok")
	require.NoError(t, err)
	require.Equal(t, PhaseUnavailable, view.Phase)
	require.False(t, view.Phase.ShowsForm())

	_, err = flow.Submit(AttendeeAcceptInput{FullName: "Jane Doe"})
	require.ErrorIs(t, err, ErrNotReady)
}

func TestAttendeeAcceptanceEventFull(t *testing.T) {
	t.Parallel()

	client, _ := newServer(t, map[string]http.HandlerFunc{
		attendeeVerifyRoute: func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, attendeeDetails(true))
		},
		attendeeAcceptRoute: func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusConflict, eventsdk.ErrorResponse{Message: "This event has reached its capacity.", Code: eventsdk.ErrorCodeEventFull})
		},
	})

	flow := NewAttendeeAcceptance(context.Background(), client)
	_, err := flow.Load("tok")
	require.NoError(t, err)

	view, err := flow.Submit(AttendeeAcceptInput{FullName: "Jane Doe"})
	require.NoError(t, err)
	require.Equal(t, PhaseUnavailable, view.Phase)
	require.Equal(t, "This event has reached its capacity.", view.Message)
}

func TestAttendeeAcceptanceServerFieldErrors(t *testing.T) {
	t.Parallel()

	client, _ := newServer(t, map[string]http.HandlerFunc{
		attendeeVerifyRoute: func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, attendeeDetails(true))
		},
		attendeeAcceptRoute: func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusBadRequest, eventsdk.ErrorResponse{
				Message: "Full name is required.",
				Code:    eventsdk.ErrorCodeValidation,
				Details: map[string]string{"attendee_data.full_name": "Full name is required."},
			})
		},
	})

	flow := NewAttendeeAcceptance(context.Background(), client)
	_, err := flow.Load("tok")
	require.NoError(t, err)

	view, err := flow.Submit(AttendeeAcceptInput{FullName: "Jo"})
	require.NoError(t, err)
	require.Equal(t, PhaseReady, view.Phase)
	require.Equal(t, "Full name is required.", view.FieldErrors["full_name"])
}

func TestAttendeeReject(t *testing.T) {
	t.Parallel()

	client, rec := newServer(t, map[string]http.HandlerFunc{
		attendeeVerifyRoute: func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, attendeeDetails(true))
		},
		attendeeRejectRoute: func(w http.ResponseWriter, r *http.Request) {
			var req eventsdk.RejectAttendeeInvitationRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "busy that night", req.Reason)
			w.WriteHeader(http.StatusNoContent)
		},
	})

	flow := NewAttendeeAcceptance(context.Background(), client)
	_, err := flow.Load("tok")
	require.NoError(t, err)

	view, err := flow.Reject(" busy that night ")
	require.NoError(t, err)
	require.Equal(t, PhaseRejected, view.Phase)
	require.Equal(t, 1, rec.count(attendeeRejectRoute))

	_, err = flow.Reject("again")
	require.ErrorIs(t, err, ErrNotReady)
}

func TestAttendeeAcceptanceNetworkErrorAllowsRetry(t *testing.T) {
	t.Parallel()

	client := eventsdk.NewSDKClient("http://127.0.0.1:1")
	flow := NewAttendeeAcceptance(context.Background(), client)

	view, err := flow.Load("tok")
	require.NoError(t, err)
	require.Equal(t, PhaseError, view.Phase)
	require.Equal(t, "Network error. Please try again.", view.Message)
	require.False(t, view.Phase.Terminal())
}
