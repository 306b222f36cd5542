package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/eventplanner/internal/api/domain"
	"github.com/aussiebroadwan/eventplanner/internal/api/metrics"
	"github.com/aussiebroadwan/eventplanner/internal/api/notify"
	"github.com/aussiebroadwan/eventplanner/internal/api/store"
	"github.com/aussiebroadwan/eventplanner/pkg/cryptox"
	"github.com/aussiebroadwan/eventplanner/pkg/idx"
	"github.com/aussiebroadwan/eventplanner/pkg/slogx"
	"github.com/aussiebroadwan/eventplanner/pkg/validate"
)

// AttendeeInvitationService manages an event's guest list invitations. Any
// member of the event's organization may manage them; verify, accept and
// reject are public and keyed by token.
type AttendeeInvitationService struct {
	Store    store.Store
	Notifier notify.Notifier
	TTL      time.Duration
	Now      func() time.Time
}

type BulkInviteInput struct {
	Emails         []string
	FullName       string
	Message        string
	IsVIP          bool
	BypassCapacity bool
}

type BulkInviteResult struct {
	SentCount      int
	SkippedCount   int
	TotalAttempted int
	Errors         []string
}

// AttendeeInvitationView is an invitation plus everything the acceptance
// screen shows.
type AttendeeInvitationView struct {
	Invitation domain.AttendeeInvitation
	Snapshot   domain.EventSnapshot
	CanAccept  bool
}

type AttendeeAcceptInput struct {
	Token    string
	FullName string
	Phone    string
}

type AttendeeAcceptResult struct {
	Attendee   domain.Attendee
	Event      domain.Event
	Invitation domain.AttendeeInvitation
}

// SendBulk invites every address in in.Emails. Addresses are de-duplicated
// case-insensitively; ones that already hold a live pending invitation or
// are registered for the event are skipped and reported in Errors.
func (s *AttendeeInvitationService) SendBulk(
	ctx context.Context,
	actorID, eventID string,
	in BulkInviteInput,
) (BulkInviteResult, error) {
	log := slogx.FromContext(ctx)
	ts := now(s.Now)

	// 1. Bounds
	if len(in.Emails) == 0 {
		return BulkInviteResult{}, ErrNoRecipients
	}
	if len(in.Emails) > MaxBulkRecipients {
		return BulkInviteResult{}, ErrTooManyRecipients
	}
	if err := checkSingleLine("full_name", in.FullName); err != nil {
		return BulkInviteResult{}, err
	}

	// 2. Caller must belong to the event's organization
	ev, actor, err := loadManagedEvent(ctx, s.Store, actorID, eventID)
	if err != nil {
		return BulkInviteResult{}, err
	}

	res := BulkInviteResult{TotalAttempted: len(in.Emails), Errors: []string{}}
	skip := func(email, reason string) {
		res.SkippedCount++
		res.Errors = append(res.Errors, email+": "+reason)
	}

	// 3. Create invitations in one transaction
	var created []domain.AttendeeInvitation
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		seen := make(map[string]struct{}, len(in.Emails))
		for _, raw := range in.Emails {
			email := normalizeEmail(raw)
			if _, dup := seen[email]; dup {
				skip(email, "Duplicate address in request")
				continue
			}
			seen[email] = struct{}{}

			if validate.Var(email, "required,email") != nil {
				skip(raw, "Invalid email address")
				continue
			}

			taken, err := invitedOrRegistered(ctx, tx, eventID, email, ts)
			if err != nil {
				return err
			}
			if taken {
				skip(email, "Already invited or registered")
				continue
			}

			token, err := cryptox.GenerateToken(cryptox.TokenSize256)
			if err != nil {
				return err
			}
			inv := domain.AttendeeInvitation{
				ID:             idx.NewAt(ts).String(),
				EventID:        eventID,
				Email:          email,
				FullName:       strings.TrimSpace(in.FullName),
				Token:          token,
				InvitedBy:      actor.ID,
				Message:        strings.TrimSpace(in.Message),
				IsVIP:          in.IsVIP,
				BypassCapacity: in.BypassCapacity,
				Status:         domain.StatusPending,
				CreatedAt:      ts,
				ExpiresAt:      ts.Add(ttlOrDefault(s.TTL)),
			}
			if err := tx.AttendeeInvitations().CreateAttendeeInvitation(ctx, inv); err != nil {
				return err
			}
			created = append(created, inv)
		}
		return nil
	})
	if err != nil {
		log.Error("failed to create attendee invitations",
			slog.String("event_id", eventID),
			slog.Any("error", err),
		)
		return BulkInviteResult{}, err
	}
	res.SentCount = len(created)
	metrics.InvitationsIssued.WithLabelValues(metrics.KindAttendee).Add(float64(len(created)))

	// 4. Email after commit; a failure leaves the invitation resendable
	if len(created) > 0 {
		snap, err := s.snapshot(ctx, s.Store, ev, actor.ID)
		if err != nil {
			return res, err
		}
		for _, inv := range created {
			if err := s.Notifier.AttendeeInvitation(ctx, inv, snap); err != nil {
				metrics.NotificationFailures.WithLabelValues(metrics.KindAttendee).Inc()
				res.Errors = append(res.Errors, inv.Email+": Invitation created but the email could not be sent")
			}
		}
	}

	log.Info("attendee invitations sent",
		slog.String("event_id", eventID),
		slog.Int("sent", res.SentCount),
		slog.Int("skipped", res.SkippedCount),
	)
	return res, nil
}

// List returns the event's invitations newest first with effective statuses.
func (s *AttendeeInvitationService) List(ctx context.Context, actorID, eventID string) ([]domain.AttendeeInvitation, error) {
	if _, _, err := loadManagedEvent(ctx, s.Store, actorID, eventID); err != nil {
		return nil, err
	}

	invs, err := s.Store.AttendeeInvitations().ListAttendeeInvitationsByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	ts := now(s.Now)
	for i := range invs {
		invs[i].Status = invs[i].EffectiveStatus(ts)
	}
	return invs, nil
}

func (s *AttendeeInvitationService) Stats(ctx context.Context, actorID, eventID string) (domain.InvitationStats, error) {
	if _, _, err := loadManagedEvent(ctx, s.Store, actorID, eventID); err != nil {
		return domain.InvitationStats{}, err
	}

	invs, err := s.Store.AttendeeInvitations().ListAttendeeInvitationsByEvent(ctx, eventID)
	if err != nil {
		return domain.InvitationStats{}, err
	}
	return domain.ComputeInvitationStats(invs, now(s.Now)), nil
}

// Resend emails an effective-pending invitation again with its original
// token and expiry.
func (s *AttendeeInvitationService) Resend(ctx context.Context, actorID, eventID, invitationID string) (domain.AttendeeInvitation, error) {
	ev, inv, err := s.loadManaged(ctx, actorID, eventID, invitationID)
	if err != nil {
		return inv, err
	}

	snap, err := s.snapshot(ctx, s.Store, ev, inv.InvitedBy)
	if err != nil {
		return inv, err
	}
	if err := s.Notifier.AttendeeInvitation(ctx, inv, snap); err != nil {
		metrics.NotificationFailures.WithLabelValues(metrics.KindAttendee).Inc()
		return inv, fmt.Errorf("%w: %v", ErrNotificationFailed, err)
	}

	slogx.FromContext(ctx).Info("attendee invitation resent", slog.String("invitation_id", inv.ID))
	return inv, nil
}

// Cancel revokes a pending invitation.
func (s *AttendeeInvitationService) Cancel(ctx context.Context, actorID, eventID, invitationID string) error {
	_, inv, err := s.loadManaged(ctx, actorID, eventID, invitationID)
	if err != nil {
		return err
	}
	return s.respond(ctx, s.Store, inv, domain.StatusCanceled, now(s.Now), "", "")
}

// Verify resolves a token without changing anything. The view is returned
// alongside ErrInvitationExpired and ErrInvitationNotPending.
func (s *AttendeeInvitationService) Verify(ctx context.Context, token string) (AttendeeInvitationView, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		metrics.InvitationVerifications.WithLabelValues(metrics.KindAttendee, "invalid").Inc()
		return AttendeeInvitationView{}, ErrInvitationNotFound
	}

	inv, err := s.Store.AttendeeInvitations().GetAttendeeInvitationByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			metrics.InvitationVerifications.WithLabelValues(metrics.KindAttendee, "invalid").Inc()
			return AttendeeInvitationView{}, ErrInvitationNotFound
		}
		return AttendeeInvitationView{}, err
	}

	ev, err := s.Store.Events().GetEventByID(ctx, inv.EventID)
	if err != nil {
		return AttendeeInvitationView{}, err
	}
	snap, err := s.snapshot(ctx, s.Store, ev, inv.InvitedBy)
	if err != nil {
		return AttendeeInvitationView{}, err
	}

	ts := now(s.Now)
	view := AttendeeInvitationView{
		Invitation: inv,
		Snapshot:   snap,
		CanAccept:  inv.CanAccept(ts, snap),
	}
	view.Invitation.Status = inv.EffectiveStatus(ts)

	err = pendingErr(view.Invitation.Status)
	metrics.InvitationVerifications.WithLabelValues(metrics.KindAttendee, verifyResult(err)).Inc()
	return view, err
}

// Accept registers the guest and marks the invitation accepted in one
// transaction. Capacity is checked inside the transaction unless the
// invitation bypasses it.
func (s *AttendeeInvitationService) Accept(ctx context.Context, in AttendeeAcceptInput) (AttendeeAcceptResult, error) {
	log := slogx.FromContext(ctx)
	ts := now(s.Now)

	fullName, err := checkFullName(in.FullName)
	if err != nil {
		return AttendeeAcceptResult{}, err
	}
	if err := checkSingleLine("phone", in.Phone); err != nil {
		return AttendeeAcceptResult{}, err
	}
	token := strings.TrimSpace(in.Token)
	if token == "" {
		return AttendeeAcceptResult{}, ErrInvitationNotFound
	}

	var res AttendeeAcceptResult
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		inv, err := tx.AttendeeInvitations().GetAttendeeInvitationByToken(ctx, token)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvitationNotFound
			}
			return err
		}
		inv.Status = inv.EffectiveStatus(ts)
		res.Invitation = inv
		if err := pendingErr(inv.Status); err != nil {
			return err
		}

		ev, err := tx.Events().GetEventByID(ctx, inv.EventID)
		if err != nil {
			return err
		}
		res.Event = ev

		if !inv.BypassCapacity && ev.Capacity > 0 {
			registered, err := tx.Attendees().CountEventAttendees(ctx, ev.ID)
			if err != nil {
				return err
			}
			if registered >= ev.Capacity {
				return ErrEventFull
			}
		}

		att := domain.Attendee{
			ID:           idx.NewAt(ts).String(),
			EventID:      ev.ID,
			Email:        inv.Email,
			FullName:     fullName,
			Phone:        strings.TrimSpace(in.Phone),
			Status:       domain.AttendeeConfirmed,
			InvitationID: inv.ID,
			RegisteredAt: ts,
		}
		if err := tx.Attendees().CreateAttendee(ctx, att); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrAlreadyRegistered
			}
			return err
		}

		if err := s.respond(ctx, tx, inv, domain.StatusAccepted, ts, att.ID, ""); err != nil {
			return err
		}

		res.Attendee = att
		res.Invitation.Status = domain.StatusAccepted
		res.Invitation.RespondedAt = &ts
		res.Invitation.AttendeeID = att.ID
		return nil
	})
	if err != nil {
		return res, err
	}

	log.Info("attendee invitation accepted",
		slog.String("invitation_id", res.Invitation.ID),
		slog.String("attendee_id", res.Attendee.ID),
		slog.String("event_id", res.Event.ID),
	)
	return res, nil
}

// Reject declines a pending invitation. The reason is optional.
func (s *AttendeeInvitationService) Reject(ctx context.Context, token, reason string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrInvitationNotFound
	}

	inv, err := s.Store.AttendeeInvitations().GetAttendeeInvitationByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvitationNotFound
		}
		return err
	}
	inv.Status = inv.EffectiveStatus(now(s.Now))
	if err := pendingErr(inv.Status); err != nil {
		return err
	}
	return s.respond(ctx, s.Store, inv, domain.StatusRejected, now(s.Now), "", strings.TrimSpace(reason))
}

func (s *AttendeeInvitationService) respond(
	ctx context.Context,
	st store.Store,
	inv domain.AttendeeInvitation,
	to domain.InvitationStatus,
	at time.Time,
	attendeeID, reason string,
) error {
	if !domain.CanTransition(inv.Status, to) {
		return ErrInvitationNotPending
	}
	if err := st.AttendeeInvitations().RespondAttendeeInvitation(ctx, inv.ID, to, at, attendeeID, reason); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return ErrInvitationNotPending
		}
		return err
	}

	metrics.InvitationTransitions.WithLabelValues(metrics.KindAttendee, string(to)).Inc()
	slogx.FromContext(ctx).Info("attendee invitation status changed",
		slog.String("invitation_id", inv.ID),
		slog.String("status", string(to)),
	)
	return nil
}

func (s *AttendeeInvitationService) loadManaged(
	ctx context.Context,
	actorID, eventID, invitationID string,
) (domain.Event, domain.AttendeeInvitation, error) {
	ev, _, err := loadManagedEvent(ctx, s.Store, actorID, eventID)
	if err != nil {
		return domain.Event{}, domain.AttendeeInvitation{}, err
	}

	inv, err := s.Store.AttendeeInvitations().GetAttendeeInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Event{}, domain.AttendeeInvitation{}, ErrInvitationNotFound
		}
		return domain.Event{}, domain.AttendeeInvitation{}, err
	}
	if inv.EventID != ev.ID {
		return domain.Event{}, domain.AttendeeInvitation{}, ErrInvitationNotFound
	}

	inv.Status = inv.EffectiveStatus(now(s.Now))
	return ev, inv, pendingErr(inv.Status)
}

func (s *AttendeeInvitationService) snapshot(
	ctx context.Context,
	st store.Store,
	ev domain.Event,
	inviterID string,
) (domain.EventSnapshot, error) {
	snap := domain.EventSnapshot{Event: ev}

	registered, err := st.Attendees().CountEventAttendees(ctx, ev.ID)
	if err != nil {
		return snap, err
	}
	snap.Registered = registered

	if org, err := st.Organizations().GetOrganizationByID(ctx, ev.OrganizationID); err == nil {
		snap.OrganizationName = org.Name
	} else if !errors.Is(err, store.ErrNotFound) {
		return snap, err
	}
	if inviter, err := st.Users().GetUserByID(ctx, inviterID); err == nil {
		snap.InviterName = inviter.FullName
	} else if !errors.Is(err, store.ErrNotFound) {
		return snap, err
	}
	return snap, nil
}

func invitedOrRegistered(ctx context.Context, tx store.Tx, eventID, email string, ts time.Time) (bool, error) {
	_, err := tx.AttendeeInvitations().GetLivePendingAttendeeInvitationByEmail(ctx, eventID, email, ts)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return false, err
	}

	_, err = tx.Attendees().GetAttendeeByEventAndEmail(ctx, eventID, email)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return false, err
	}
	return false, nil
}
