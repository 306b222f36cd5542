package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/eventplanner/internal/api/domain"
	"github.com/stretchr/testify/require"
)

func TestIssueInvitation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.registerOwner(t, "owner@example.com")

	inv, err := f.orgInvs.Issue(ctx, owner.ID, owner.OrganizationID, " New@Example.com ", domain.RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, "new@example.com", inv.Email)
	require.Equal(t, domain.StatusPending, inv.Status)
	require.Equal(t, f.now.Add(DefaultInvitationTTL), inv.ExpiresAt)
	require.Equal(t, "Acme Events", inv.OrganizationName)
	require.Equal(t, "Olivia Owner", inv.InviterName)
	require.Len(t, inv.Token, 43)
	require.Len(t, f.notifier.org, 1)

	t.Run("live pending invitation blocks a second one", func(t *testing.T) {
		_, err := f.orgInvs.Issue(ctx, owner.ID, owner.OrganizationID, "new@example.com", domain.RoleMember)
		require.ErrorIs(t, err, ErrDuplicateInvitation)
	})

	t.Run("existing user", func(t *testing.T) {
		_, err := f.orgInvs.Issue(ctx, owner.ID, owner.OrganizationID, "owner@example.com", domain.RoleMember)
		require.ErrorIs(t, err, ErrAlreadyMember)
	})

	t.Run("owner role cannot be invited", func(t *testing.T) {
		_, err := f.orgInvs.Issue(ctx, owner.ID, owner.OrganizationID, "x@example.com", domain.RoleOwner)
		require.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("other organization is forbidden", func(t *testing.T) {
		other := f.registerOwner(t, "other@example.com")
		_, err := f.orgInvs.Issue(ctx, other.ID, owner.OrganizationID, "x@example.com", domain.RoleMember)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("expired invitation no longer blocks", func(t *testing.T) {
		f.advance(DefaultInvitationTTL + time.Second)
		again, err := f.orgInvs.Issue(ctx, owner.ID, owner.OrganizationID, "new@example.com", domain.RoleMember)
		require.NoError(t, err)
		require.NotEqual(t, inv.Token, again.Token)
	})

	t.Run("email failure keeps the invitation", func(t *testing.T) {
		f.notifier.fail = errSMTPDown
		defer func() { f.notifier.fail = nil }()

		created, err := f.orgInvs.Issue(ctx, owner.ID, owner.OrganizationID, "flaky@example.com", domain.RoleMember)
		require.NoError(t, err)
		_, err = f.orgInvs.Verify(ctx, created.Token)
		require.NoError(t, err)
	})
}

func TestVerifyInvitation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.registerOwner(t, "owner@example.com")
	inv, err := f.orgInvs.Issue(ctx, owner.ID, owner.OrganizationID, "new@example.com", domain.RoleMember)
	require.NoError(t, err)

	_, err = f.orgInvs.Verify(ctx, "")
	require.ErrorIs(t, err, ErrInvitationNotFound)

	_, err = f.orgInvs.Verify(ctx, "does-not-exist")
	require.ErrorIs(t, err, ErrInvitationNotFound)

	got, err := f.orgInvs.Verify(ctx, inv.Token)
	require.NoError(t, err)
	require.Equal(t, "new@example.com", got.Email)
	require.Equal(t, domain.RoleMember, got.Role)

	// One second past expiry reads as expired but nothing is written.
	f.advance(DefaultInvitationTTL + time.Second)
	got, err = f.orgInvs.Verify(ctx, inv.Token)
	require.ErrorIs(t, err, ErrInvitationExpired)
	require.Equal(t, domain.StatusExpired, got.Status)
	require.Equal(t, inv.ExpiresAt, got.ExpiresAt)

	stored, err := f.store.Invitations().GetInvitationByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, stored.Status)
}

func TestAcceptInvitation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.registerOwner(t, "owner@example.com")
	inv, err := f.orgInvs.Issue(ctx, owner.ID, owner.OrganizationID, "new@example.com", domain.RoleAdmin)
	require.NoError(t, err)

	t.Run("local validation", func(t *testing.T) {
		_, err := f.orgInvs.Accept(ctx, AcceptInput{Token: inv.Token, FullName: "New Person", Password: "short"})
		require.ErrorIs(t, err, ErrWeakPassword)

		_, err = f.orgInvs.Accept(ctx, AcceptInput{Token: inv.Token, FullName: " N ", Password: "long enough"})
		require.ErrorIs(t, err, ErrInvalidFullName)
	})

	res, err := f.orgInvs.Accept(ctx, AcceptInput{Token: inv.Token, FullName: "New Person", Password: "long enough"})
	require.NoError(t, err)
	require.Equal(t, "new@example.com", res.User.Email)
	require.Equal(t, domain.RoleAdmin, res.User.Role)
	require.Equal(t, owner.OrganizationID, res.User.OrganizationID)
	require.NotNil(t, res.Tokens)
	require.Equal(t, domain.StatusAccepted, res.Invitation.Status)

	stored, err := f.store.Invitations().GetInvitationByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusAccepted, stored.Status)
	require.Equal(t, res.User.ID, stored.AcceptedBy)

	_, _, err = f.auth.Login(ctx, "new@example.com", "long enough")
	require.NoError(t, err)

	t.Run("tokens are single use", func(t *testing.T) {
		again, err := f.orgInvs.Accept(ctx, AcceptInput{Token: inv.Token, FullName: "New Person", Password: "long enough"})
		require.ErrorIs(t, err, ErrInvitationNotPending)
		require.Equal(t, domain.StatusAccepted, again.Invitation.Status)
	})

	t.Run("expired", func(t *testing.T) {
		late, err := f.orgInvs.Issue(ctx, owner.ID, owner.OrganizationID, "late@example.com", domain.RoleMember)
		require.NoError(t, err)
		f.advance(DefaultInvitationTTL + time.Second)

		res, err := f.orgInvs.Accept(ctx, AcceptInput{Token: late.Token, FullName: "Late Person", Password: "long enough"})
		require.ErrorIs(t, err, ErrInvitationExpired)
		require.Equal(t, late.ExpiresAt, res.Invitation.ExpiresAt)

		_, err = f.store.Users().GetUserByEmail(ctx, "late@example.com")
		require.Error(t, err)
	})
}

func TestAcceptInvitationConcurrent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.registerOwner(t, "owner@example.com")
	inv, err := f.orgInvs.Issue(ctx, owner.ID, owner.OrganizationID, "race@example.com", domain.RoleMember)
	require.NoError(t, err)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for range 3 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.orgInvs.Accept(ctx, AcceptInput{Token: inv.Token, FullName: "Racer", Password: "long enough"})
			if err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 1, wins)
}

func TestResendInvitation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.registerOwner(t, "owner@example.com")
	inv, err := f.orgInvs.Issue(ctx, owner.ID, owner.OrganizationID, "new@example.com", domain.RoleMember)
	require.NoError(t, err)

	f.advance(time.Hour)
	resent, err := f.orgInvs.Resend(ctx, owner.ID, inv.ID)
	require.NoError(t, err)
	require.Equal(t, inv.Token, resent.Token)
	require.Equal(t, inv.ExpiresAt, resent.ExpiresAt)
	require.Len(t, f.notifier.org, 2)
	require.Equal(t, inv.Token, f.notifier.org[1].Token)

	t.Run("email failure is reported and changes nothing", func(t *testing.T) {
		f.notifier.fail = errSMTPDown
		defer func() { f.notifier.fail = nil }()

		_, err := f.orgInvs.Resend(ctx, owner.ID, inv.ID)
		require.ErrorIs(t, err, ErrNotificationFailed)

		stored, err := f.store.Invitations().GetInvitationByID(ctx, inv.ID)
		require.NoError(t, err)
		require.Equal(t, domain.StatusPending, stored.Status)
		require.Equal(t, inv.Token, stored.Token)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := f.orgInvs.Resend(ctx, owner.ID, "nope")
		require.ErrorIs(t, err, ErrInvitationNotFound)
	})

	t.Run("expired cannot be resent", func(t *testing.T) {
		f.advance(DefaultInvitationTTL)
		_, err := f.orgInvs.Resend(ctx, owner.ID, inv.ID)
		require.ErrorIs(t, err, ErrInvitationExpired)
	})
}

func TestCancelAndListInvitations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.registerOwner(t, "owner@example.com")

	a, err := f.orgInvs.Issue(ctx, owner.ID, owner.OrganizationID, "a@example.com", domain.RoleMember)
	require.NoError(t, err)
	f.advance(time.Second)
	b, err := f.orgInvs.Issue(ctx, owner.ID, owner.OrganizationID, "b@example.com", domain.RoleMember)
	require.NoError(t, err)

	require.NoError(t, f.orgInvs.Cancel(ctx, owner.ID, a.ID))
	require.ErrorIs(t, f.orgInvs.Cancel(ctx, owner.ID, a.ID), ErrInvitationNotPending)

	_, err = f.orgInvs.Accept(ctx, AcceptInput{Token: a.Token, FullName: "Alice", Password: "long enough"})
	require.ErrorIs(t, err, ErrInvitationNotPending)

	all, err := f.orgInvs.List(ctx, owner.ID, owner.OrganizationID, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, b.ID, all[0].ID, "newest first")
	require.Equal(t, domain.StatusCanceled, all[1].Status)

	pending, err := f.orgInvs.List(ctx, owner.ID, owner.OrganizationID, domain.StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, b.ID, pending[0].ID)

	f.advance(DefaultInvitationTTL + time.Second)
	pending, err = f.orgInvs.List(ctx, owner.ID, owner.OrganizationID, domain.StatusPending)
	require.NoError(t, err)
	require.Empty(t, pending)

	t.Run("members cannot manage", func(t *testing.T) {
		_, err := f.orgInvs.List(ctx, "someone-else", owner.OrganizationID, "")
		require.ErrorIs(t, err, ErrForbidden)
	})
}
