package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/eventplanner/pkg/cryptox"
	"github.com/aussiebroadwan/eventplanner/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newSigner(t *testing.T, kid string) *jwtx.Signer {
	t.Helper()
	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	s, err := jwtx.NewSigner(kid, pemKey)
	require.NoError(t, err)
	return s
}

func TestSignAndVerify(t *testing.T) {
	t.Parallel()

	signer := newSigner(t, "k1")
	verifier := signer.Verifier("eventplanner")

	now := time.Now()
	claims := jwtx.NewAccessClaims("user-1", "org-1", "ORG_OWNER", "owner@example.com", "eventplanner", time.Minute, now)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", got.Subject)
	require.Equal(t, "org-1", got.OrgID)
	require.Equal(t, "ORG_OWNER", got.Role)
	require.Equal(t, "owner@example.com", got.Email)
	require.NotEmpty(t, got.ID)
}

func TestVerifyRejects(t *testing.T) {
	t.Parallel()

	signer := newSigner(t, "k1")
	now := time.Now()

	t.Run("expired", func(t *testing.T) {
		claims := jwtx.NewAccessClaims("u", "o", "MEMBER", "", "eventplanner", time.Minute, now.Add(-time.Hour))
		token, err := signer.Sign(claims)
		require.NoError(t, err)

		_, err = signer.Verifier("eventplanner").Verify(token)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := signer.Sign(jwtx.NewAccessClaims("u", "o", "MEMBER", "", "someone-else", time.Minute, now))
		require.NoError(t, err)

		_, err = signer.Verifier("eventplanner").Verify(token)
		require.Error(t, err)
	})

	t.Run("foreign key", func(t *testing.T) {
		other := newSigner(t, "k1")
		token, err := other.Sign(jwtx.NewAccessClaims("u", "o", "MEMBER", "", "eventplanner", time.Minute, now))
		require.NoError(t, err)

		_, err = signer.Verifier("eventplanner").Verify(token)
		require.Error(t, err)
	})

	t.Run("unknown kid", func(t *testing.T) {
		other := newSigner(t, "k2")
		token, err := other.Sign(jwtx.NewAccessClaims("u", "o", "MEMBER", "", "eventplanner", time.Minute, now))
		require.NoError(t, err)

		_, err = signer.Verifier("eventplanner").Verify(token)
		require.ErrorIs(t, err, jwtx.ErrUnknownKID)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := signer.Verifier("eventplanner").Verify("not.a.jwt")
		require.Error(t, err)
	})
}

func TestNewSignerRejectsBadPEM(t *testing.T) {
	_, err := jwtx.NewSigner("k", []byte("nope"))
	require.Error(t, err)
}
