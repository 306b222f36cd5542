package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/eventplanner/internal/api/domain"
	"github.com/aussiebroadwan/eventplanner/internal/api/store"
	"github.com/aussiebroadwan/eventplanner/pkg/slogx"
)

// MemberService lists and removes the people in an organization.
type MemberService struct {
	Store store.Store
	Now   func() time.Time
}

// List returns every member of orgID, oldest first. Any member may list.
func (s *MemberService) List(ctx context.Context, actorID, orgID string) ([]domain.User, error) {
	if _, err := loadMember(ctx, s.Store, actorID, orgID); err != nil {
		return nil, err
	}
	return s.Store.Users().ListUsersByOrganization(ctx, orgID)
}

// Remove deletes a member from the actor's organization. Only the owner may
// remove members and the owner can never be removed. Whatever the member
// created is handed to the owner.
func (s *MemberService) Remove(ctx context.Context, actorID, memberID string) error {
	log := slogx.FromContext(ctx)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		actor, err := tx.Users().GetUserByID(ctx, actorID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrForbidden
			}
			return err
		}
		if actor.Role != domain.RoleOwner {
			log.Warn("non-owner attempted to remove a member",
				slog.String("user_id", actorID),
				slog.String("member_id", memberID),
			)
			return ErrForbidden
		}

		member, err := tx.Users().GetUserByID(ctx, memberID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrMemberNotFound
			}
			return err
		}
		if member.OrganizationID != actor.OrganizationID {
			return ErrMemberNotFound
		}
		if member.Role == domain.RoleOwner {
			return ErrCannotRemoveOwner
		}

		return tx.Users().DeleteUser(ctx, member.ID, actor.ID)
	})
	if err != nil {
		return err
	}

	log.Info("member removed",
		slog.String("member_id", memberID),
		slog.String("user_id", actorID),
		slog.Time("at", now(s.Now)),
	)
	return nil
}
