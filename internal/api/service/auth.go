package service

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/aussiebroadwan/eventplanner/internal/api/domain"
	"github.com/aussiebroadwan/eventplanner/internal/api/store"
	"github.com/aussiebroadwan/eventplanner/pkg/cryptox"
	"github.com/aussiebroadwan/eventplanner/pkg/idx"
	"github.com/aussiebroadwan/eventplanner/pkg/jwtx"
	"github.com/aussiebroadwan/eventplanner/pkg/slogx"
)

// AuthService owns accounts and the access/refresh token pair.
type AuthService struct {
	Store      store.Store
	Signer     *jwtx.Signer
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	Now        func() time.Time
}

type RegisterOwnerInput struct {
	FullName         string
	Email            string
	Password         string
	OrganizationName string
}

// RegisterOwner creates an organization together with its owner account.
func (s *AuthService) RegisterOwner(ctx context.Context, in RegisterOwnerInput) (domain.User, *domain.TokenPair, error) {
	log := slogx.FromContext(ctx)
	ts := now(s.Now)

	// 1. Validate input
	fullName, err := checkFullName(in.FullName)
	if err != nil {
		return domain.User{}, nil, err
	}
	if err := checkPassword(in.Password); err != nil {
		return domain.User{}, nil, err
	}
	email := normalizeEmail(in.Email)
	orgName := strings.TrimSpace(in.OrganizationName)
	if err := checkSingleLine("organization.name", orgName); err != nil {
		return domain.User{}, nil, err
	}

	// 2. Hash before taking the write lock
	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, nil, err
	}

	userID := idx.NewAt(ts)
	org := domain.Organization{
		ID:        idx.NewAt(ts).String(),
		Name:      orgName,
		Slug:      Slugify(orgName) + "-" + userID.Suffix(6),
		OwnerID:   userID.String(),
		CreatedAt: ts,
	}
	user := domain.User{
		ID:             userID.String(),
		Email:          email,
		FullName:       fullName,
		PasswordHash:   hash,
		Role:           domain.RoleOwner,
		OrganizationID: org.ID,
		CreatedAt:      ts,
	}

	// 3. Organization and owner are created together
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().GetUserByEmail(ctx, email); err == nil {
			return ErrEmailTaken
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}
		if err := tx.Organizations().CreateOrganization(ctx, org); err != nil {
			return err
		}
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrEmailTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrEmailTaken) {
			log.Error("failed to register owner", slog.Any("error", err))
		}
		return domain.User{}, nil, err
	}

	log.Info("organization registered",
		slog.String("user_id", user.ID),
		slog.String("organization_id", org.ID),
		slog.String("slug", org.Slug),
	)

	pair, err := s.IssueTokens(ctx, user)
	if err != nil {
		return domain.User{}, nil, err
	}
	return user, pair, nil
}

// Login checks email and password.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, *domain.TokenPair, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, nil, ErrInvalidCredentials
		}
		return domain.User{}, nil, err
	}
	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Info("login failed", slog.String("user_id", user.ID))
		return domain.User{}, nil, ErrInvalidCredentials
	}

	pair, err := s.IssueTokens(ctx, user)
	if err != nil {
		return domain.User{}, nil, err
	}
	return user, pair, nil
}

// IssueTokens signs an access token for user and persists a new refresh
// token.
func (s *AuthService) IssueTokens(ctx context.Context, user domain.User) (*domain.TokenPair, error) {
	ts := now(s.Now)

	access, refreshOpaque, rt, err := s.mint(user, ts)
	if err != nil {
		return nil, err
	}
	if err := s.Store.RefreshTokens().CreateRefreshToken(ctx, rt); err != nil {
		return nil, err
	}
	return &domain.TokenPair{AccessToken: access, RefreshToken: refreshOpaque, ExpiresIn: s.accessTTL()}, nil
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued in the same transaction.
func (s *AuthService) Refresh(ctx context.Context, refreshOpaque string) (*domain.TokenPair, error) {
	ts := now(s.Now)
	refreshOpaque = strings.TrimSpace(refreshOpaque)
	if refreshOpaque == "" {
		return nil, ErrInvalidRefresh
	}
	hash := cryptox.FingerprintToken(refreshOpaque)

	var pair *domain.TokenPair
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		old, err := tx.RefreshTokens().GetRefreshTokenByHash(ctx, hash)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidRefresh
			}
			return err
		}
		if old.Revoked || ts.After(old.ExpiresAt) {
			return ErrInvalidRefresh
		}

		user, err := tx.Users().GetUserByID(ctx, old.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidRefresh
			}
			return err
		}

		if err := tx.RefreshTokens().RevokeRefreshToken(ctx, old.ID); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return ErrInvalidRefresh
			}
			return err
		}

		access, opaque, rt, err := s.mint(user, ts)
		if err != nil {
			return err
		}
		if err := tx.RefreshTokens().CreateRefreshToken(ctx, rt); err != nil {
			return err
		}
		pair = &domain.TokenPair{AccessToken: access, RefreshToken: opaque, ExpiresIn: s.accessTTL()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pair, nil
}

// Logout revokes a refresh token. Unknown or already revoked tokens are not
// an error.
func (s *AuthService) Logout(ctx context.Context, refreshOpaque string) error {
	hash := cryptox.FingerprintToken(strings.TrimSpace(refreshOpaque))
	rt, err := s.Store.RefreshTokens().GetRefreshTokenByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}
	if err := s.Store.RefreshTokens().RevokeRefreshToken(ctx, rt.ID); err != nil && !errors.Is(err, store.ErrConflict) {
		return err
	}
	return nil
}

func (s *AuthService) Me(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

func (s *AuthService) mint(user domain.User, ts time.Time) (string, string, domain.RefreshToken, error) {
	claims := jwtx.NewAccessClaims(user.ID, user.OrganizationID, string(user.Role), user.Email, s.Issuer, s.accessTTL(), ts)
	access, err := s.Signer.Sign(claims)
	if err != nil {
		return "", "", domain.RefreshToken{}, err
	}

	opaque, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return "", "", domain.RefreshToken{}, err
	}

	refreshTTL := s.RefreshTTL
	if refreshTTL <= 0 {
		refreshTTL = jwtx.DefaultRefreshTokenTTL
	}
	rt := domain.RefreshToken{
		ID:        idx.NewAt(ts).String(),
		UserID:    user.ID,
		TokenHash: cryptox.FingerprintToken(opaque),
		ExpiresAt: ts.Add(refreshTTL),
		CreatedAt: ts,
	}
	return access, opaque, rt, nil
}

func (s *AuthService) accessTTL() time.Duration {
	if s.AccessTTL <= 0 {
		return jwtx.DefaultAccessTokenTTL
	}
	return s.AccessTTL
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases name and collapses anything that is not a letter or
// digit into single hyphens.
func Slugify(name string) string {
	slug := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if slug == "" {
		return "org"
	}
	return slug
}
