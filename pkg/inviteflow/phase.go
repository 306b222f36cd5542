package inviteflow

import (
	"context"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/eventplanner/pkg/eventsdk"
)

// Phase is the state a screen is in.
type Phase string

const (
	PhaseLoading     Phase = "loading"
	PhaseReady       Phase = "ready" // form shown
	PhaseSubmitting  Phase = "submitting"
	PhaseInvalid     Phase = "invalid"
	PhaseExpired     Phase = "expired"
	PhaseUsed        Phase = "used"
	PhaseUnavailable Phase = "unavailable" // attendee invitation that cannot be accepted, e.g. event full
	PhaseAccepted    Phase = "accepted"
	PhaseRejected    Phase = "rejected"
	PhaseError       Phase = "error" // network or server failure, retry allowed
)

// Title is the heading a renderer shows for the phase.
func (p Phase) Title() string {
	switch p {
	case PhaseLoading:
		return "Loading Invitation"
	case PhaseReady, PhaseSubmitting:
		return "Accept Invitation"
	case PhaseInvalid:
		return "Invalid Invitation"
	case PhaseExpired:
		return "Invitation Expired"
	case PhaseUsed:
		return "Invitation Already Used"
	case PhaseUnavailable:
		return "Invitation Unavailable"
	case PhaseAccepted:
		return "Invitation Accepted"
	case PhaseRejected:
		return "Invitation Declined"
	default:
		return "Something Went Wrong"
	}
}

// ShowsForm reports whether the accept form should be rendered.
func (p Phase) ShowsForm() bool {
	return p == PhaseReady || p == PhaseSubmitting
}

// Terminal phases never leave their state; retrying makes no sense.
func (p Phase) Terminal() bool {
	switch p {
	case PhaseInvalid, PhaseExpired, PhaseUsed, PhaseAccepted, PhaseRejected:
		return true
	}
	return false
}

const (
	msgInvalid = "This invitation link is invalid or has expired."
	msgExpired = "This invitation has expired. Please request a new invitation."
	msgNetwork = "Network error. Please try again."
	msgUsed    = "This invitation has already been used."
	msgFull    = "This event is full."
)

// outcome is a classified request failure.
type outcome struct {
	phase   Phase
	message string
	fields  map[string]string
}

// classify maps an API failure onto a phase. Validation failures keep the
// form up (PhaseReady) with the server's field messages.
func classify(err error) outcome {
	if errors.Is(err, eventsdk.ErrNetwork) {
		return outcome{phase: PhaseError, message: msgNetwork}
	}

	apiErr, ok := eventsdk.AsAPIError(err)
	if !ok {
		return outcome{phase: PhaseError, message: msgNetwork}
	}

	switch {
	case eventsdk.IsExpired(err):
		return outcome{phase: PhaseExpired, message: msgExpired}
	case apiErr.StatusCode == http.StatusNotFound:
		return outcome{phase: PhaseInvalid, message: msgInvalid}
	case apiErr.Code == eventsdk.ErrorCodeEventFull:
		return outcome{phase: PhaseUnavailable, message: orDefault(apiErr.Message, msgFull)}
	case apiErr.StatusCode == http.StatusConflict:
		return outcome{phase: PhaseUsed, message: orDefault(apiErr.Message, msgUsed)}
	case apiErr.StatusCode == http.StatusBadRequest:
		return outcome{phase: PhaseReady, message: apiErr.Message, fields: apiErr.Details}
	default:
		return outcome{phase: PhaseError, message: apiErr.Error()}
	}
}

// closedErr reports ErrClosed when the lifetime ended while a request was in
// flight. The result is dropped; nobody is left to show it.
func closedErr(ctx context.Context) error {
	if ctx.Err() != nil {
		return ErrClosed
	}
	return nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
