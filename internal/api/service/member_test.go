package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/eventplanner/internal/api/domain"
	"github.com/stretchr/testify/require"
)

func TestListMembers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.registerOwner(t, "owner@example.com")
	member := f.addMember(t, owner, "bob@example.com", domain.RoleMember)

	list, err := f.members.List(ctx, member.ID, owner.OrganizationID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, owner.ID, list[0].ID)
	require.Equal(t, "bob@example.com", list[1].Email)

	other := f.registerOwner(t, "other@example.com")
	_, err = f.members.List(ctx, other.ID, owner.OrganizationID)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestRemoveMember(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.registerOwner(t, "owner@example.com")
	admin := f.addMember(t, owner, "ada@example.com", domain.RoleAdmin)
	bob := f.addMember(t, owner, "bob@example.com", domain.RoleMember)

	// Ada leaves something behind for the owner to inherit.
	ev := f.createEvent(t, admin.ID, 0)

	t.Run("only the owner may remove", func(t *testing.T) {
		err := f.members.Remove(ctx, admin.ID, bob.ID)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("the owner stays", func(t *testing.T) {
		err := f.members.Remove(ctx, owner.ID, owner.ID)
		require.ErrorIs(t, err, ErrCannotRemoveOwner)
	})

	t.Run("other organizations are invisible", func(t *testing.T) {
		other := f.registerOwner(t, "other@example.com")
		err := f.members.Remove(ctx, other.ID, bob.ID)
		require.ErrorIs(t, err, ErrMemberNotFound)
	})

	require.NoError(t, f.members.Remove(ctx, owner.ID, admin.ID))

	_, _, err := f.auth.Login(ctx, "ada@example.com", "long enough")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	got, err := f.events.Get(ctx, owner.ID, ev.ID)
	require.NoError(t, err)
	require.Equal(t, owner.ID, got.CreatedBy)

	list, err := f.members.List(ctx, owner.ID, owner.OrganizationID)
	require.NoError(t, err)
	require.Len(t, list, 2)

	require.ErrorIs(t, f.members.Remove(ctx, owner.ID, admin.ID), ErrMemberNotFound)
}
