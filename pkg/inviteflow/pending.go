package inviteflow

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/aussiebroadwan/eventplanner/pkg/eventsdk"
	"github.com/aussiebroadwan/eventplanner/pkg/slogx"
)

// PendingAPI is the part of eventsdk.Session the pending list uses.
type PendingAPI interface {
	ListInvitations(ctx context.Context, orgID, status string) ([]eventsdk.Invitation, error)
	ResendInvitation(ctx context.Context, id string) (*eventsdk.Invitation, error)
	CancelInvitation(ctx context.Context, id string) error
}

// PendingItem is one row of the pending list.
type PendingItem struct {
	eventsdk.Invitation
	TimeLeft string
}

type PendingView struct {
	Phase   Phase
	Items   []PendingItem
	Notices []string
	Message string
}

// PendingList manages an organization's pending invitations.
//
// Cancel removes the row before the DELETE completes and does not put it
// back if the request fails; a notice is recorded instead.
type PendingList struct {
	api   PendingAPI
	orgID string
	life  *Lifetime
	Now   func() time.Time

	mu      sync.Mutex
	phase   Phase
	message string
	items   []eventsdk.Invitation
	notices []string
}

func NewPendingList(parent context.Context, api PendingAPI, orgID string) *PendingList {
	return &PendingList{
		api:   api,
		orgID: orgID,
		life:  NewLifetime(parent),
		Now:   time.Now,
		phase: PhaseLoading,
	}
}

func (p *PendingList) Close() { p.life.Close() }

func (p *PendingList) View() PendingView {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.viewLocked()
}

func (p *PendingList) viewLocked() PendingView {
	now := p.Now()
	items := make([]PendingItem, 0, len(p.items))
	for _, inv := range p.items {
		items = append(items, PendingItem{Invitation: inv, TimeLeft: TimeRemaining(inv, now)})
	}
	return PendingView{
		Phase:   p.phase,
		Items:   items,
		Notices: append([]string(nil), p.notices...),
		Message: p.message,
	}
}

// Load fetches the pending invitations.
func (p *PendingList) Load() (PendingView, error) {
	ctx, done, err := p.life.begin()
	if err != nil {
		return p.View(), err
	}
	defer done()

	invs, err := p.api.ListInvitations(ctx, p.orgID, "pending")
	if cerr := closedErr(ctx); cerr != nil {
		return p.View(), cerr
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		slogx.FromContext(ctx).Debug("list invitations failed", "error", err)
		p.phase = PhaseError
		p.message = failureMessage(err)
		return p.viewLocked(), nil
	}

	p.phase = PhaseReady
	p.message = ""
	p.items = invs
	return p.viewLocked(), nil
}

// Resend emails the invitation again. The row is refreshed from the
// response; a row the server no longer considers pending is dropped.
func (p *PendingList) Resend(id string) (PendingView, error) {
	inv, ok := p.find(id)
	if !ok {
		return p.View(), nil
	}

	ctx, done, err := p.life.begin()
	if err != nil {
		return p.View(), err
	}
	defer done()

	updated, err := p.api.ResendInvitation(ctx, id)
	if cerr := closedErr(ctx); cerr != nil {
		return p.View(), cerr
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		slogx.FromContext(ctx).Debug("resend invitation failed", "id", id, "error", err)
		p.notices = append(p.notices, fmt.Sprintf("Could not resend the invitation to %s: %s", inv.Email, failureMessage(err)))
		if gone(err) {
			p.removeLocked(id)
		}
		return p.viewLocked(), nil
	}

	for i := range p.items {
		if p.items[i].ID == id {
			p.items[i] = *updated
		}
	}
	p.notices = append(p.notices, "Invitation resent to "+inv.Email+".")
	return p.viewLocked(), nil
}

// Cancel removes the row immediately and then issues the DELETE. A 404, 409
// or 410 means the invitation is already gone and is not reported.
func (p *PendingList) Cancel(id string) (PendingView, error) {
	inv, ok := p.find(id)
	if !ok {
		return p.View(), nil
	}

	ctx, done, err := p.life.begin()
	if err != nil {
		return p.View(), err
	}
	defer done()

	p.mu.Lock()
	p.removeLocked(id)
	p.mu.Unlock()

	err = p.api.CancelInvitation(ctx, id)
	if cerr := closedErr(ctx); cerr != nil {
		return p.View(), cerr
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil && !gone(err) {
		slogx.FromContext(ctx).Debug("cancel invitation failed", "id", id, "error", err)
		p.notices = append(p.notices, fmt.Sprintf("Could not cancel the invitation to %s: %s", inv.Email, failureMessage(err)))
	}
	return p.viewLocked(), nil
}

func (p *PendingList) find(id string) (eventsdk.Invitation, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, inv := range p.items {
		if inv.ID == id {
			return inv, true
		}
	}
	return eventsdk.Invitation{}, false
}

func (p *PendingList) removeLocked(id string) {
	kept := p.items[:0]
	for _, inv := range p.items {
		if inv.ID != id {
			kept = append(kept, inv)
		}
	}
	p.items = kept
}

// gone reports errors meaning the invitation is no longer pending.
func gone(err error) bool {
	apiErr, ok := eventsdk.AsAPIError(err)
	if !ok {
		return false
	}
	switch apiErr.StatusCode {
	case http.StatusNotFound, http.StatusConflict, http.StatusGone:
		return true
	}
	return false
}

func failureMessage(err error) string {
	if apiErr, ok := eventsdk.AsAPIError(err); ok {
		return apiErr.Error()
	}
	if errors.Is(err, eventsdk.ErrNetwork) {
		return msgNetwork
	}
	return err.Error()
}
