package inviteflow

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/eventplanner/pkg/eventsdk"
	"github.com/aussiebroadwan/eventplanner/pkg/slogx"
	"github.com/aussiebroadwan/eventplanner/pkg/validate"
)

// AttendeeInvitationAPI is the part of eventsdk.SDKClient the attendee
// screen uses.
type AttendeeInvitationAPI interface {
	VerifyAttendeeInvitation(ctx context.Context, token string) (*eventsdk.AttendeeInvitationDetails, error)
	AcceptAttendeeInvitation(ctx context.Context, req eventsdk.AcceptAttendeeInvitationRequest) (*eventsdk.AcceptAttendeeInvitationResponse, error)
	RejectAttendeeInvitation(ctx context.Context, req eventsdk.RejectAttendeeInvitationRequest) error
}

// AttendeeAcceptInput is the RSVP form.
type AttendeeAcceptInput struct {
	FullName string `json:"full_name" validate:"required,min=2,max=100"`
	Phone    string `json:"phone" validate:"max=32"`
}

type AttendeeView struct {
	Phase      Phase
	Invitation *eventsdk.AttendeeInvitationDetails

	// Result is set once accepted.
	Result *eventsdk.AcceptAttendeeInvitationResponse

	Message     string
	FieldErrors map[string]string
}

// EventName is the name to show, preferring the accept response.
func (v AttendeeView) EventName() string {
	if v.Result != nil && v.Result.EventName != "" {
		return v.Result.EventName
	}
	if v.Invitation != nil {
		return v.Invitation.EventName
	}
	return ""
}

// AttendeeAcceptance is the event RSVP screen.
type AttendeeAcceptance struct {
	api  AttendeeInvitationAPI
	life *Lifetime
	Now  func() time.Time

	mu    sync.Mutex
	token string
	view  AttendeeView
}

func NewAttendeeAcceptance(parent context.Context, api AttendeeInvitationAPI) *AttendeeAcceptance {
	return &AttendeeAcceptance{
		api:  api,
		life: NewLifetime(parent),
		Now:  time.Now,
		view: AttendeeView{Phase: PhaseLoading},
	}
}

func (f *AttendeeAcceptance) View() AttendeeView {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.view
}

func (f *AttendeeAcceptance) Close() { f.life.Close() }

// Load verifies token. The form is only offered when the server says the
// invitation can be accepted.
func (f *AttendeeAcceptance) Load(token string) (AttendeeView, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return f.set(AttendeeView{Phase: PhaseInvalid, Message: msgInvalid}), nil
	}

	ctx, done, err := f.life.begin()
	if err != nil {
		return f.View(), err
	}
	defer done()

	f.mu.Lock()
	f.token = token
	f.view = AttendeeView{Phase: PhaseLoading}
	f.mu.Unlock()

	details, err := f.api.VerifyAttendeeInvitation(ctx, token)
	if cerr := closedErr(ctx); cerr != nil {
		return f.View(), cerr
	}
	if err != nil {
		slogx.FromContext(ctx).Debug("verify attendee invitation failed", "error", err)
		o := classify(err)
		if o.phase == PhaseReady {
			o = outcome{phase: PhaseInvalid, message: msgInvalid}
		}
		return f.set(AttendeeView{Phase: o.phase, Message: o.message}), nil
	}

	view := AttendeeView{Phase: PhaseReady, Invitation: details}
	now := f.Now()
	switch {
	case details.IsExpired || details.Status == "expired",
		details.ExpiredAt != nil && details.ExpiredAt.Before(now),
		!details.ExpiresAt.IsZero() && details.ExpiresAt.Before(now):
		view.Phase, view.Message = PhaseExpired, msgExpired
	case details.Status != "" && details.Status != "pending":
		view.Phase, view.Message = PhaseUsed, "You have already responded to this invitation."
	case !details.CanAccept:
		view.Phase, view.Message = PhaseUnavailable, "This invitation can no longer be accepted."
	}
	return f.set(view), nil
}

// Submit validates locally, then registers the attendee with a single POST.
func (f *AttendeeAcceptance) Submit(in AttendeeAcceptInput) (AttendeeView, error) {
	token, err := f.ready()
	if err != nil {
		return f.View(), err
	}

	if err := validate.Struct(in); err != nil {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.view.Message = "Please correct the highlighted fields."
		f.view.FieldErrors = nil
		if ve, ok := validate.AsErrors(err); ok {
			f.view.FieldErrors = ve.Messages()
		}
		return f.view, nil
	}

	ctx, done, err := f.life.begin()
	if err != nil {
		return f.View(), err
	}
	defer done()
	f.submitting()

	res, err := f.api.AcceptAttendeeInvitation(ctx, eventsdk.AcceptAttendeeInvitationRequest{
		Token: token,
		AttendeeData: eventsdk.AttendeeData{
			FullName: strings.TrimSpace(in.FullName),
			Phone:    strings.TrimSpace(in.Phone),
		},
	})
	if cerr := closedErr(ctx); cerr != nil {
		return f.View(), cerr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		slogx.FromContext(ctx).Debug("accept attendee invitation failed", "error", err)
		f.fail(err)
		return f.view, nil
	}

	f.view.Phase = PhaseAccepted
	f.view.Result = res
	f.view.Message = "You're registered for " + f.view.EventName() + "."
	return f.view, nil
}

// Reject declines the invitation. A guest may decline an invitation that
// can no longer be accepted, such as one to a full event.
func (f *AttendeeAcceptance) Reject(reason string) (AttendeeView, error) {
	token, err := f.ready(PhaseUnavailable)
	if err != nil {
		return f.View(), err
	}

	ctx, done, err := f.life.begin()
	if err != nil {
		return f.View(), err
	}
	defer done()
	f.submitting()

	err = f.api.RejectAttendeeInvitation(ctx, eventsdk.RejectAttendeeInvitationRequest{
		Token:  token,
		Reason: strings.TrimSpace(reason),
	})
	if cerr := closedErr(ctx); cerr != nil {
		return f.View(), cerr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		slogx.FromContext(ctx).Debug("reject attendee invitation failed", "error", err)
		f.fail(err)
		return f.view, nil
	}

	f.view.Phase = PhaseRejected
	f.view.Message = "You have declined the invitation."
	return f.view, nil
}

// ready returns the token when the view is in PhaseReady or one of also.
func (f *AttendeeAcceptance) ready(also ...Phase) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch f.view.Phase {
	case PhaseReady:
		return f.token, nil
	case PhaseSubmitting:
		return "", ErrBusy
	}
	if slices.Contains(also, f.view.Phase) {
		return f.token, nil
	}
	return "", ErrNotReady
}

func (f *AttendeeAcceptance) submitting() {
	f.mu.Lock()
	f.view.Phase = PhaseSubmitting
	f.view.FieldErrors = nil
	f.view.Message = ""
	f.mu.Unlock()
}

// fail applies a classified error. Caller holds mu.
func (f *AttendeeAcceptance) fail(err error) {
	o := classify(err)
	f.view.Phase = o.phase
	f.view.Message = o.message
	f.view.FieldErrors = trimFieldPrefix(o.fields, "attendee_data.")
	if o.phase == PhaseError {
		f.view.Phase = PhaseReady
	}
}

// trimFieldPrefix strips the request envelope from server field names so
// they match the form's own.
func trimFieldPrefix(fields map[string]string, prefix string) map[string]string {
	if len(fields) == 0 {
		return nil
	}
	out := make(map[string]string, len(fields))
	for k, v := range fields {
		out[strings.TrimPrefix(k, prefix)] = v
	}
	return out
}

func (f *AttendeeAcceptance) set(v AttendeeView) AttendeeView {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.view = v
	return v
}
