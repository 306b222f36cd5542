package domain_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/eventplanner/internal/api/domain"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	t.Parallel()

	all := []domain.InvitationStatus{
		domain.StatusPending,
		domain.StatusAccepted,
		domain.StatusExpired,
		domain.StatusCanceled,
		domain.StatusRejected,
	}

	for _, from := range all {
		for _, to := range all {
			want := from == domain.StatusPending && to != domain.StatusPending
			require.Equal(t, want, domain.CanTransition(from, to), "%s -> %s", from, to)
		}
	}

	require.False(t, domain.CanTransition(domain.StatusPending, "bogus"))
}

func TestEffectiveStatus(t *testing.T) {
	t.Parallel()

	expires := time.Date(2024, 3, 8, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		stored domain.InvitationStatus
		now    time.Time
		want   domain.InvitationStatus
	}{
		{"pending before expiry", domain.StatusPending, expires.Add(-time.Second), domain.StatusPending},
		{"pending at expiry instant", domain.StatusPending, expires, domain.StatusPending},
		{"pending after expiry", domain.StatusPending, expires.Add(time.Second), domain.StatusExpired},
		{"accepted after expiry stays accepted", domain.StatusAccepted, expires.Add(time.Hour), domain.StatusAccepted},
		{"canceled stays canceled", domain.StatusCanceled, expires.Add(time.Hour), domain.StatusCanceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := domain.Invitation{Status: tt.stored, ExpiresAt: expires}
			require.Equal(t, tt.want, inv.EffectiveStatus(tt.now))
			require.Equal(t, tt.want == domain.StatusExpired, inv.IsExpired(tt.now))
		})
	}
}

func TestOrgRoleInvitable(t *testing.T) {
	require.True(t, domain.RoleAdmin.Invitable())
	require.True(t, domain.RoleMember.Invitable())
	require.False(t, domain.RoleOwner.Invitable())
	require.False(t, domain.OrgRole("SUPERUSER").Invitable())
}

func TestOrgRoleManagesEvents(t *testing.T) {
	require.True(t, domain.RoleOwner.ManagesEvents())
	require.True(t, domain.RoleAdmin.ManagesEvents())
	require.False(t, domain.RoleMember.ManagesEvents())
}

func TestAttendeeCanAccept(t *testing.T) {
	t.Parallel()

	now := time.Now()
	pending := domain.AttendeeInvitation{Status: domain.StatusPending, ExpiresAt: now.Add(time.Hour)}
	full := domain.EventSnapshot{Event: domain.Event{Capacity: 2}, Registered: 2}
	open := domain.EventSnapshot{Event: domain.Event{Capacity: 2}, Registered: 1}
	unlimited := domain.EventSnapshot{Event: domain.Event{Capacity: 0}, Registered: 500}

	require.True(t, pending.CanAccept(now, open))
	require.True(t, pending.CanAccept(now, unlimited))
	require.False(t, pending.CanAccept(now, full))

	vip := pending
	vip.BypassCapacity = true
	require.True(t, vip.CanAccept(now, full))

	expired := pending
	expired.ExpiresAt = now.Add(-time.Minute)
	require.False(t, expired.CanAccept(now, open))

	accepted := pending
	accepted.Status = domain.StatusAccepted
	require.False(t, accepted.CanAccept(now, open))
}

func TestComputeInvitationStats(t *testing.T) {
	t.Parallel()

	now := time.Now()
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	invs := []domain.AttendeeInvitation{
		{Status: domain.StatusPending, ExpiresAt: future},
		{Status: domain.StatusPending, ExpiresAt: past},
		{Status: domain.StatusAccepted, ExpiresAt: past},
		{Status: domain.StatusRejected, ExpiresAt: future},
		{Status: domain.StatusCanceled, ExpiresAt: future},
		{Status: domain.StatusAccepted, ExpiresAt: future},
	}

	s := domain.ComputeInvitationStats(invs, now)
	require.Equal(t, domain.InvitationStats{
		Total:        6,
		Pending:      1,
		Accepted:     2,
		Rejected:     1,
		Expired:      1,
		Canceled:     1,
		ResponseRate: 50,
	}, s)

	require.Zero(t, domain.ComputeInvitationStats(nil, now).ResponseRate)
}
