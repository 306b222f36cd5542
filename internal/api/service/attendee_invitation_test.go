package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aussiebroadwan/eventplanner/internal/api/domain"
	"github.com/stretchr/testify/require"
)

func TestSendBulkAttendeeInvitations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.registerOwner(t, "owner@example.com")
	ev := f.createEvent(t, owner.ID, 0)

	res, err := f.attInvs.SendBulk(ctx, owner.ID, ev.ID, BulkInviteInput{
		Emails:  []string{"a@example.com", "A@example.com", "b@example.com", "not-an-email"},
		Message: "See you there",
		IsVIP:   true,
	})
	require.NoError(t, err)
	require.Equal(t, 2, res.SentCount)
	require.Equal(t, 2, res.SkippedCount)
	require.Equal(t, 4, res.TotalAttempted)
	require.Len(t, res.Errors, 2)
	require.Len(t, f.notifier.attendee, 2)

	// Second round skips the live pending ones.
	res, err = f.attInvs.SendBulk(ctx, owner.ID, ev.ID, BulkInviteInput{Emails: []string{"b@example.com", "c@example.com"}})
	require.NoError(t, err)
	require.Equal(t, 1, res.SentCount)
	require.Equal(t, 1, res.SkippedCount)
	require.Equal(t, []string{"b@example.com: Already invited or registered"}, res.Errors)

	list, err := f.attInvs.List(ctx, owner.ID, ev.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "c@example.com", list[0].Email)

	t.Run("bounds", func(t *testing.T) {
		_, err := f.attInvs.SendBulk(ctx, owner.ID, ev.ID, BulkInviteInput{})
		require.ErrorIs(t, err, ErrNoRecipients)

		many := make([]string, MaxBulkRecipients+1)
		for i := range many {
			many[i] = fmt.Sprintf("guest%d@example.com", i)
		}
		_, err = f.attInvs.SendBulk(ctx, owner.ID, ev.ID, BulkInviteInput{Emails: many})
		require.ErrorIs(t, err, ErrTooManyRecipients)
	})

	t.Run("other organizations cannot see the event", func(t *testing.T) {
		other := f.registerOwner(t, "other@example.com")
		_, err := f.attInvs.SendBulk(ctx, other.ID, ev.ID, BulkInviteInput{Emails: []string{"x@example.com"}})
		require.ErrorIs(t, err, ErrEventNotFound)
	})
}

func TestAttendeeVerifyAcceptReject(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.registerOwner(t, "owner@example.com")
	ev := f.createEvent(t, owner.ID, 1)

	_, err := f.attInvs.SendBulk(ctx, owner.ID, ev.ID, BulkInviteInput{
		Emails: []string{"jane@example.com", "joe@example.com", "vip@example.com"},
	})
	require.NoError(t, err)
	tokens := map[string]string{}
	for _, inv := range f.notifier.attendee {
		tokens[inv.Email] = inv.Token
	}

	view, err := f.attInvs.Verify(ctx, tokens["jane@example.com"])
	require.NoError(t, err)
	require.True(t, view.CanAccept)
	require.Equal(t, "Launch Party", view.Snapshot.Event.Name)
	require.Equal(t, "Acme Events", view.Snapshot.OrganizationName)
	require.Equal(t, "Olivia Owner", view.Snapshot.InviterName)

	res, err := f.attInvs.Accept(ctx, AttendeeAcceptInput{Token: tokens["jane@example.com"], FullName: "Jane Doe", Phone: "555-1234"})
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", res.Attendee.FullName)
	require.Equal(t, "555-1234", res.Attendee.Phone)
	require.Equal(t, "Launch Party", res.Event.Name)

	_, err = f.attInvs.Accept(ctx, AttendeeAcceptInput{Token: tokens["jane@example.com"], FullName: "Jane Doe"})
	require.ErrorIs(t, err, ErrInvitationNotPending)

	t.Run("full event", func(t *testing.T) {
		view, err := f.attInvs.Verify(ctx, tokens["joe@example.com"])
		require.NoError(t, err)
		require.False(t, view.CanAccept)

		_, err = f.attInvs.Accept(ctx, AttendeeAcceptInput{Token: tokens["joe@example.com"], FullName: "Joe Bloggs"})
		require.ErrorIs(t, err, ErrEventFull)
	})

	t.Run("reject", func(t *testing.T) {
		require.NoError(t, f.attInvs.Reject(ctx, tokens["joe@example.com"], "Out of town"))
		require.ErrorIs(t, f.attInvs.Reject(ctx, tokens["joe@example.com"], ""), ErrInvitationNotPending)
		require.ErrorIs(t, f.attInvs.Reject(ctx, "missing", ""), ErrInvitationNotFound)
	})

	t.Run("expired", func(t *testing.T) {
		f.advance(DefaultInvitationTTL + time.Second)
		view, err := f.attInvs.Verify(ctx, tokens["vip@example.com"])
		require.ErrorIs(t, err, ErrInvitationExpired)
		require.False(t, view.CanAccept)

		_, err = f.attInvs.Accept(ctx, AttendeeAcceptInput{Token: tokens["vip@example.com"], FullName: "Vera VIP"})
		require.ErrorIs(t, err, ErrInvitationExpired)
	})

	stats, err := f.attInvs.Stats(ctx, owner.ID, ev.ID)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationStats{
		Total:        3,
		Accepted:     1,
		Rejected:     1,
		Expired:      1,
		ResponseRate: 66.7,
	}, stats)
}

func TestAttendeeBypassCapacity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.registerOwner(t, "owner@example.com")
	ev := f.createEvent(t, owner.ID, 1)

	_, err := f.attInvs.SendBulk(ctx, owner.ID, ev.ID, BulkInviteInput{Emails: []string{"first@example.com"}})
	require.NoError(t, err)
	_, err = f.attInvs.SendBulk(ctx, owner.ID, ev.ID, BulkInviteInput{Emails: []string{"vip@example.com"}, IsVIP: true, BypassCapacity: true})
	require.NoError(t, err)

	_, err = f.attInvs.Accept(ctx, AttendeeAcceptInput{Token: f.notifier.attendee[0].Token, FullName: "First Guest"})
	require.NoError(t, err)

	_, err = f.attInvs.Accept(ctx, AttendeeAcceptInput{Token: f.notifier.attendee[1].Token, FullName: "Vera VIP"})
	require.NoError(t, err)

	n, err := f.store.Attendees().CountEventAttendees(ctx, ev.ID)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	// Registered guests are skipped by later invitations.
	res, err := f.attInvs.SendBulk(ctx, owner.ID, ev.ID, BulkInviteInput{Emails: []string{"first@example.com"}})
	require.NoError(t, err)
	require.Equal(t, 1, res.SkippedCount)
}

func TestAttendeeResendAndCancel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.registerOwner(t, "owner@example.com")
	ev := f.createEvent(t, owner.ID, 0)

	_, err := f.attInvs.SendBulk(ctx, owner.ID, ev.ID, BulkInviteInput{Emails: []string{"guest@example.com"}})
	require.NoError(t, err)
	inv := f.notifier.attendee[0]

	resent, err := f.attInvs.Resend(ctx, owner.ID, ev.ID, inv.ID)
	require.NoError(t, err)
	require.Equal(t, inv.Token, resent.Token)
	require.Equal(t, inv.ExpiresAt, resent.ExpiresAt)

	require.NoError(t, f.attInvs.Cancel(ctx, owner.ID, ev.ID, inv.ID))
	require.ErrorIs(t, f.attInvs.Cancel(ctx, owner.ID, ev.ID, inv.ID), ErrInvitationNotPending)

	_, err = f.attInvs.Resend(ctx, owner.ID, ev.ID, inv.ID)
	require.ErrorIs(t, err, ErrInvitationNotPending)

	_, err = f.attInvs.Resend(ctx, owner.ID, "other-event", inv.ID)
	require.ErrorIs(t, err, ErrEventNotFound)
}

func TestHousekeepingRunOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.registerOwner(t, "owner@example.com")
	ev := f.createEvent(t, owner.ID, 0)

	inv, err := f.orgInvs.Issue(ctx, owner.ID, owner.OrganizationID, "new@example.com", domain.RoleMember)
	require.NoError(t, err)
	_, err = f.attInvs.SendBulk(ctx, owner.ID, ev.ID, BulkInviteInput{Emails: []string{"guest@example.com"}})
	require.NoError(t, err)

	require.NoError(t, f.housekeep.RunOnce(ctx))
	stored, err := f.store.Invitations().GetInvitationByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, stored.Status)

	f.advance(DefaultInvitationTTL + time.Second)
	require.NoError(t, f.housekeep.RunOnce(ctx))

	stored, err = f.store.Invitations().GetInvitationByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusExpired, stored.Status)

	att, err := f.store.AttendeeInvitations().GetAttendeeInvitationByID(ctx, f.notifier.attendee[0].ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusExpired, att.Status)

	// Expiry written by housekeeping reads the same as derived expiry.
	_, err = f.orgInvs.Verify(ctx, inv.Token)
	require.ErrorIs(t, err, ErrInvitationExpired)
}
