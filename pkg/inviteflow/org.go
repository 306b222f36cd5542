package inviteflow

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/eventplanner/pkg/eventsdk"
	"github.com/aussiebroadwan/eventplanner/pkg/slogx"
	"github.com/aussiebroadwan/eventplanner/pkg/validate"
)

// OrgInvitationAPI is the part of eventsdk.SDKClient the organization
// acceptance screen uses.
type OrgInvitationAPI interface {
	VerifyInvitation(ctx context.Context, token string) (*eventsdk.InvitationDetails, error)
	AcceptInvitation(ctx context.Context, req eventsdk.AcceptInvitationRequest) (*eventsdk.AuthResponse, error)
}

// OrgAcceptInput is the join form.
type OrgAcceptInput struct {
	FullName        string `json:"full_name" validate:"required,min=2,max=100"`
	Password        string `json:"password" validate:"required,min=8,max=128"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// OrgView is what the organization acceptance screen renders.
type OrgView struct {
	Phase      Phase
	Invitation *eventsdk.InvitationDetails

	// Auth is set once accepted; it signs the new member in.
	Auth *eventsdk.AuthResponse

	// Message is the panel text for every phase except PhaseReady without
	// errors. Server conflict messages are passed through unchanged.
	Message     string
	FieldErrors map[string]string
}

// OrgAcceptance is the "join organization" screen.
type OrgAcceptance struct {
	api  OrgInvitationAPI
	life *Lifetime

	// Now is the local clock used for the client side expiry check.
	Now func() time.Time

	mu    sync.Mutex
	token string
	view  OrgView
}

func NewOrgAcceptance(parent context.Context, api OrgInvitationAPI) *OrgAcceptance {
	return &OrgAcceptance{
		api:  api,
		life: NewLifetime(parent),
		Now:  time.Now,
		view: OrgView{Phase: PhaseLoading},
	}
}

func (f *OrgAcceptance) View() OrgView {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.view
}

// Close aborts any request in flight.
func (f *OrgAcceptance) Close() { f.life.Close() }

// Load verifies token. An empty token is invalid without asking the server.
func (f *OrgAcceptance) Load(token string) (OrgView, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return f.set(OrgView{Phase: PhaseInvalid, Message: msgInvalid}), nil
	}

	ctx, done, err := f.life.begin()
	if err != nil {
		return f.View(), err
	}
	defer done()

	f.mu.Lock()
	f.token = token
	f.view = OrgView{Phase: PhaseLoading}
	f.mu.Unlock()

	details, err := f.api.VerifyInvitation(ctx, token)
	if cerr := closedErr(ctx); cerr != nil {
		return f.View(), cerr
	}
	if err != nil {
		slogx.FromContext(ctx).Debug("verify invitation failed", "error", err)
		o := classify(err)
		if o.phase == PhaseReady {
			o = outcome{phase: PhaseInvalid, message: msgInvalid}
		}
		return f.set(OrgView{Phase: o.phase, Message: o.message}), nil
	}

	view := OrgView{Phase: PhaseReady, Invitation: details}
	switch {
	case f.expired(details):
		view.Phase, view.Message = PhaseExpired, msgExpired
	case details.Status != "" && details.Status != "pending":
		view.Phase, view.Message = PhaseUsed, msgUsed
	}
	return f.set(view), nil
}

// expired trusts the server flag and also the local clock; the status field
// can lag behind wall-clock expiry.
func (f *OrgAcceptance) expired(d *eventsdk.InvitationDetails) bool {
	now := f.Now()
	if d.IsExpired || d.Status == "expired" {
		return true
	}
	if d.ExpiredAt != nil && d.ExpiredAt.Before(now) {
		return true
	}
	return !d.ExpiresAt.IsZero() && d.ExpiresAt.Before(now)
}

// Submit validates the form locally and only then calls the API. Local
// failures leave the flow in PhaseReady with FieldErrors.
func (f *OrgAcceptance) Submit(in OrgAcceptInput) (OrgView, error) {
	f.mu.Lock()
	phase, token := f.view.Phase, f.token
	f.mu.Unlock()
	if phase == PhaseSubmitting {
		return f.View(), ErrBusy
	}
	if phase != PhaseReady {
		return f.View(), ErrNotReady
	}

	if err := validate.Struct(in); err != nil {
		return f.withFieldErrors(err), nil
	}

	ctx, done, err := f.life.begin()
	if err != nil {
		return f.View(), err
	}
	defer done()

	f.mu.Lock()
	f.view.Phase = PhaseSubmitting
	f.view.FieldErrors = nil
	f.view.Message = ""
	f.mu.Unlock()

	auth, err := f.api.AcceptInvitation(ctx, eventsdk.AcceptInvitationRequest{
		Token:    token,
		FullName: strings.TrimSpace(in.FullName),
		Password: in.Password,
	})
	if cerr := closedErr(ctx); cerr != nil {
		return f.View(), cerr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		slogx.FromContext(ctx).Debug("accept invitation failed", "error", err)
		o := classify(err)
		f.view.Phase = o.phase
		f.view.Message = o.message
		f.view.FieldErrors = o.fields
		if o.phase == PhaseError {
			// Retry allowed from the same form.
			f.view.Phase = PhaseReady
		}
		return f.view, nil
	}

	f.view.Phase = PhaseAccepted
	f.view.Auth = auth
	f.view.Message = "Welcome to " + f.orgName() + "."
	return f.view, nil
}

func (f *OrgAcceptance) orgName() string {
	if f.view.Invitation != nil && f.view.Invitation.OrganizationName != "" {
		return f.view.Invitation.OrganizationName
	}
	return "the organization"
}

func (f *OrgAcceptance) withFieldErrors(err error) OrgView {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.view.Message = "Please correct the highlighted fields."
	f.view.FieldErrors = nil
	if ve, ok := validate.AsErrors(err); ok {
		f.view.FieldErrors = ve.Messages()
	}
	return f.view
}

func (f *OrgAcceptance) set(v OrgView) OrgView {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.view = v
	return v
}
