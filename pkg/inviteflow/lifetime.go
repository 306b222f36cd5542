// Package inviteflow drives the invitation screens of a client: verifying and
// accepting organization and attendee invitations, and managing the pending
// list. Rendering is left to the caller; every flow exposes a View describing
// what to show.
package inviteflow

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrBusy is returned when a flow already has a request in flight.
	ErrBusy = errors.New("inviteflow: a request is already in progress")

	// ErrClosed is returned once the flow's lifetime has ended.
	ErrClosed = errors.New("inviteflow: flow closed")

	// ErrNotReady is returned by Submit when the form is not being shown.
	ErrNotReady = errors.New("inviteflow: invitation cannot be submitted in its current state")
)

// Lifetime ties a flow's requests to the screen that owns them. Close cancels
// whatever is in flight.
type Lifetime struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu   sync.Mutex
	busy bool
}

func NewLifetime(parent context.Context) *Lifetime {
	ctx, cancel := context.WithCancel(parent)
	return &Lifetime{ctx: ctx, cancel: cancel}
}

// Context is cancelled by Close.
func (l *Lifetime) Context() context.Context { return l.ctx }

// Close cancels outstanding requests. It is safe to call more than once.
func (l *Lifetime) Close() { l.cancel() }

// Closed reports whether Close was called or the parent ended.
func (l *Lifetime) Closed() bool { return l.ctx.Err() != nil }

// begin reserves the single request slot. The returned func releases it.
func (l *Lifetime) begin() (context.Context, func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.ctx.Err() != nil {
		return nil, nil, ErrClosed
	}
	if l.busy {
		return nil, nil, ErrBusy
	}
	l.busy = true

	return l.ctx, func() {
		l.mu.Lock()
		l.busy = false
		l.mu.Unlock()
	}, nil
}
