package domain

import "time"

type User struct {
	ID             string
	Email          string
	FullName       string
	PasswordHash   string
	Role           OrgRole
	OrganizationID string
	CreatedAt      time.Time
}

type Organization struct {
	ID        string
	Name      string
	Slug      string
	OwnerID   string
	CreatedAt time.Time
}

// RefreshToken is a persisted refresh token. Only the fingerprint of the
// opaque value is stored.
type RefreshToken struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
}

// TokenPair is what a successful login, refresh or invitation acceptance
// hands back to the client.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    time.Duration
}
