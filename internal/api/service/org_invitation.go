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
)

// OrgInvitationService issues, verifies and redeems invitations to join an
// organization. Only the organization owner manages them.
type OrgInvitationService struct {
	Store    store.Store
	Auth     *AuthService
	Notifier notify.Notifier
	TTL      time.Duration
	Now      func() time.Time
}

// AcceptInput is what the invitee supplies when joining.
type AcceptInput struct {
	Token    string
	FullName string
	Password string
}

// AcceptResult carries the new account. Invitation is set whenever the
// token resolved, including on expiry and conflict errors, so callers can
// report expired_at and the current status.
type AcceptResult struct {
	User       domain.User
	Tokens     *domain.TokenPair
	Invitation domain.Invitation
}

// Issue creates a pending invitation for email and sends it.
func (s *OrgInvitationService) Issue(
	ctx context.Context,
	actorID, orgID, email string,
	role domain.OrgRole,
) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)
	ts := now(s.Now)

	// 1. Only invitable roles
	if !role.Invitable() {
		return domain.Invitation{}, ErrInvalidRole
	}

	// 2. Caller must own the organization
	if _, err := s.authorizeOwner(ctx, actorID, orgID); err != nil {
		return domain.Invitation{}, err
	}

	email = normalizeEmail(email)

	// 3. Generate the opaque token
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invitation token", slog.Any("error", err))
		return domain.Invitation{}, err
	}

	inv := domain.Invitation{
		ID:             idx.NewAt(ts).String(),
		Email:          email,
		Role:           role,
		Token:          token,
		OrganizationID: orgID,
		InvitedBy:      actorID,
		Status:         domain.StatusPending,
		CreatedAt:      ts,
		ExpiresAt:      ts.Add(ttlOrDefault(s.TTL)),
	}

	// 4. Duplicate checks and insert in one transaction
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().GetUserByEmail(ctx, email); err == nil {
			return ErrAlreadyMember
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		if _, err := tx.Invitations().GetLivePendingInvitationByEmail(ctx, orgID, email, ts); err == nil {
			return ErrDuplicateInvitation
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		if err := tx.Invitations().CreateInvitation(ctx, inv); err != nil {
			return err
		}

		// Reload for the organization and inviter names.
		created, err := tx.Invitations().GetInvitationByID(ctx, inv.ID)
		if err != nil {
			return err
		}
		inv = created
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrAlreadyMember) && !errors.Is(err, ErrDuplicateInvitation) {
			log.Error("failed to create invitation", slog.Any("error", err))
		}
		return domain.Invitation{}, err
	}

	metrics.InvitationsIssued.WithLabelValues(metrics.KindOrg).Inc()
	log.Info("invitation issued",
		slog.String("invitation_id", inv.ID),
		slog.String("organization_id", orgID),
		slog.String("role", string(role)),
		slog.Time("expires_at", inv.ExpiresAt),
	)

	// 5. A failed email leaves the invitation in place; the owner can resend.
	if err := s.Notifier.OrgInvitation(ctx, inv); err != nil {
		metrics.NotificationFailures.WithLabelValues(metrics.KindOrg).Inc()
		log.Warn("invitation created but email failed",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
	}

	return inv, nil
}

// List returns the organization's invitations newest first with each
// status replaced by its effective status. A non-empty status filters on
// the effective status.
func (s *OrgInvitationService) List(
	ctx context.Context,
	actorID, orgID string,
	status domain.InvitationStatus,
) ([]domain.Invitation, error) {
	if _, err := s.authorizeOwner(ctx, actorID, orgID); err != nil {
		return nil, err
	}

	invs, err := s.Store.Invitations().ListInvitationsByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}

	ts := now(s.Now)
	out := make([]domain.Invitation, 0, len(invs))
	for _, inv := range invs {
		inv.Status = inv.EffectiveStatus(ts)
		if status != "" && inv.Status != status {
			continue
		}
		out = append(out, inv)
	}
	return out, nil
}

// Verify resolves a token without changing anything. On ErrInvitationExpired
// and ErrInvitationNotPending the invitation is returned alongside the error
// with its effective status.
func (s *OrgInvitationService) Verify(ctx context.Context, token string) (domain.Invitation, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		metrics.InvitationVerifications.WithLabelValues(metrics.KindOrg, "invalid").Inc()
		return domain.Invitation{}, ErrInvitationNotFound
	}

	inv, err := s.Store.Invitations().GetInvitationByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			metrics.InvitationVerifications.WithLabelValues(metrics.KindOrg, "invalid").Inc()
			return domain.Invitation{}, ErrInvitationNotFound
		}
		return domain.Invitation{}, err
	}

	inv.Status = inv.EffectiveStatus(now(s.Now))
	err = pendingErr(inv.Status)
	metrics.InvitationVerifications.WithLabelValues(metrics.KindOrg, verifyResult(err)).Inc()
	return inv, err
}

// Accept redeems a token: the account is created and the invitation marked
// accepted atomically, after which a token pair is issued for the new user.
// Expiry is recomputed from expires_at inside the transaction.
func (s *OrgInvitationService) Accept(ctx context.Context, in AcceptInput) (AcceptResult, error) {
	log := slogx.FromContext(ctx)
	ts := now(s.Now)

	// 1. Validate input
	fullName, err := checkFullName(in.FullName)
	if err != nil {
		return AcceptResult{}, err
	}
	if err := checkPassword(in.Password); err != nil {
		return AcceptResult{}, err
	}
	token := strings.TrimSpace(in.Token)
	if token == "" {
		return AcceptResult{}, ErrInvitationNotFound
	}

	// 2. Hash outside the transaction
	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return AcceptResult{}, err
	}

	var res AcceptResult
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 3. Resolve and check the token
		inv, err := tx.Invitations().GetInvitationByToken(ctx, token)
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
		if !domain.CanTransition(inv.Status, domain.StatusAccepted) {
			return ErrInvitationNotPending
		}

		// 4. Create the member
		user := domain.User{
			ID:             idx.NewAt(ts).String(),
			Email:          inv.Email,
			FullName:       fullName,
			PasswordHash:   hash,
			Role:           inv.Role,
			OrganizationID: inv.OrganizationID,
			CreatedAt:      ts,
		}
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrAlreadyMember
			}
			return err
		}

		// 5. Conditional status change; a concurrent accept loses here
		if err := tx.Invitations().TransitionInvitation(ctx, inv.ID, domain.StatusAccepted, ts, user.ID); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return ErrInvitationNotPending
			}
			return err
		}

		res.User = user
		res.Invitation.Status = domain.StatusAccepted
		res.Invitation.AcceptedAt = &ts
		res.Invitation.AcceptedBy = user.ID
		return nil
	})
	if err != nil {
		return res, err
	}

	metrics.InvitationTransitions.WithLabelValues(metrics.KindOrg, string(domain.StatusAccepted)).Inc()
	log.Info("invitation accepted",
		slog.String("invitation_id", res.Invitation.ID),
		slog.String("user_id", res.User.ID),
		slog.String("organization_id", res.User.OrganizationID),
	)

	// 6. Sign the new member in
	res.Tokens, err = s.Auth.IssueTokens(ctx, res.User)
	if err != nil {
		log.Error("failed to issue tokens after accept", slog.Any("error", err))
		return res, err
	}
	return res, nil
}

// Resend emails an effective-pending invitation again. Token and expiry do
// not change, so resending is idempotent with respect to stored state.
func (s *OrgInvitationService) Resend(ctx context.Context, actorID, invitationID string) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	inv, err := s.loadManaged(ctx, actorID, invitationID)
	if err != nil {
		return inv, err
	}

	if err := s.Notifier.OrgInvitation(ctx, inv); err != nil {
		metrics.NotificationFailures.WithLabelValues(metrics.KindOrg).Inc()
		return inv, fmt.Errorf("%w: %v", ErrNotificationFailed, err)
	}

	log.Info("invitation resent", slog.String("invitation_id", inv.ID))
	return inv, nil
}

// Cancel revokes a pending invitation. The row is kept with status canceled.
func (s *OrgInvitationService) Cancel(ctx context.Context, actorID, invitationID string) error {
	inv, err := s.loadManaged(ctx, actorID, invitationID)
	if err != nil {
		return err
	}

	err = s.Store.Invitations().TransitionInvitation(ctx, inv.ID, domain.StatusCanceled, now(s.Now), actorID)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return ErrInvitationNotPending
		}
		return err
	}

	metrics.InvitationTransitions.WithLabelValues(metrics.KindOrg, string(domain.StatusCanceled)).Inc()
	slogx.FromContext(ctx).Info("invitation canceled",
		slog.String("invitation_id", inv.ID),
		slog.String("canceled_by", actorID),
	)
	return nil
}

// loadManaged fetches an invitation the actor may manage and that is still
// effectively pending.
func (s *OrgInvitationService) loadManaged(ctx context.Context, actorID, invitationID string) (domain.Invitation, error) {
	inv, err := s.Store.Invitations().GetInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, ErrInvitationNotFound
		}
		return domain.Invitation{}, err
	}
	if _, err := s.authorizeOwner(ctx, actorID, inv.OrganizationID); err != nil {
		return domain.Invitation{}, err
	}

	inv.Status = inv.EffectiveStatus(now(s.Now))
	return inv, pendingErr(inv.Status)
}

func (s *OrgInvitationService) authorizeOwner(ctx context.Context, actorID, orgID string) (domain.User, error) {
	actor, err := loadMember(ctx, s.Store, actorID, orgID)
	if err != nil {
		return domain.User{}, err
	}
	if actor.Role != domain.RoleOwner {
		slogx.FromContext(ctx).Warn("non-owner attempted to manage invitations",
			slog.String("user_id", actorID),
			slog.String("organization_id", orgID),
		)
		return domain.User{}, ErrForbidden
	}
	return actor, nil
}

// loadMember returns the actor when they belong to orgID.
func loadMember(ctx context.Context, st store.Store, actorID, orgID string) (domain.User, error) {
	actor, err := st.Users().GetUserByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrForbidden
		}
		return domain.User{}, err
	}
	if actor.OrganizationID != orgID {
		return domain.User{}, ErrForbidden
	}
	return actor, nil
}

// pendingErr maps an effective status onto the error a caller sees when it
// needs a pending invitation.
func pendingErr(status domain.InvitationStatus) error {
	switch status {
	case domain.StatusPending:
		return nil
	case domain.StatusExpired:
		return ErrInvitationExpired
	default:
		return ErrInvitationNotPending
	}
}

func verifyResult(err error) string {
	switch {
	case err == nil:
		return "valid"
	case errors.Is(err, ErrInvitationExpired):
		return "expired"
	default:
		return "used"
	}
}
