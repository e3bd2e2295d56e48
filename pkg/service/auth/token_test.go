package auth

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/amirasaad/expensetracker/infra/cache"
	"github.com/amirasaad/expensetracker/pkg/config"
	"github.com/amirasaad/expensetracker/pkg/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJwtConfig() *config.Jwt {
	return &config.Jwt{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	}
}

func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()
	return NewTokenService(testJwtConfig(), cache.NewMemorySessionStore(), slog.Default())
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	s := newTestTokenService(t)
	userID := uuid.New()

	pair, err := s.IssueTokenPair(userID)
	require.NoError(t, err)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	got, err := s.VerifyAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestTokenService_PairsDifferWithinSameSecond(t *testing.T) {
	s := newTestTokenService(t)
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }
	userID := uuid.New()

	p1, err := s.IssueTokenPair(userID)
	require.NoError(t, err)
	p2, err := s.IssueTokenPair(userID)
	require.NoError(t, err)
	assert.NotEqual(t, p1.RefreshToken, p2.RefreshToken)
}

func TestTokenService_VerifyRejects(t *testing.T) {
	s := newTestTokenService(t)
	userID := uuid.New()
	pair, err := s.IssueTokenPair(userID)
	require.NoError(t, err)

	t.Run("refresh token as access token", func(t *testing.T) {
		_, err := s.VerifyAccessToken(pair.RefreshToken)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("access purpose signed with wrong secret", func(t *testing.T) {
		forged, err := s.sign(userID, PurposeAccess, "not-the-secret", time.Minute)
		require.NoError(t, err)
		_, err = s.VerifyAccessToken(forged)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("refresh purpose signed with access secret", func(t *testing.T) {
		wrongPurpose, err := s.sign(userID, PurposeRefresh, s.cfg.AccessSecret, time.Minute)
		require.NoError(t, err)
		_, err = s.VerifyAccessToken(wrongPurpose)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("unsigned token", func(t *testing.T) {
		claims := Claims{
			Purpose: PurposeAccess,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   userID.String(),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			},
		}
		none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = s.VerifyAccessToken(none)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := s.VerifyAccessToken("not.a.token")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestTokenService_VerifyExpired(t *testing.T) {
	s := newTestTokenService(t)
	issued := time.Now().Add(-time.Hour)
	s.now = func() time.Time { return issued }
	pair, err := s.IssueTokenPair(uuid.New())
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.VerifyAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTokenService_RotateAccessToken(t *testing.T) {
	ctx := context.Background()
	s := newTestTokenService(t)
	userID := uuid.New()

	first, err := s.IssueTokenPair(userID)
	require.NoError(t, err)
	require.NoError(t, s.StoreSession(ctx, userID, first.RefreshToken))

	access, err := s.RotateAccessToken(ctx, first.RefreshToken)
	require.NoError(t, err)
	got, err := s.VerifyAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	// A second login replaces the stored session.
	second, err := s.IssueTokenPair(userID)
	require.NoError(t, err)
	require.NoError(t, s.StoreSession(ctx, userID, second.RefreshToken))

	_, err = s.RotateAccessToken(ctx, first.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = s.RotateAccessToken(ctx, second.RefreshToken)
	assert.NoError(t, err)

	require.NoError(t, s.RevokeSession(ctx, userID))
	require.NoError(t, s.RevokeSession(ctx, userID))
	_, err = s.RotateAccessToken(ctx, second.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTokenService_RotateRejectsAccessToken(t *testing.T) {
	ctx := context.Background()
	s := newTestTokenService(t)
	userID := uuid.New()
	pair, err := s.IssueTokenPair(userID)
	require.NoError(t, err)
	require.NoError(t, s.StoreSession(ctx, userID, pair.RefreshToken))

	_, err = s.RotateAccessToken(ctx, pair.AccessToken)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTokenService_RotateExpiredRefresh(t *testing.T) {
	ctx := context.Background()
	s := newTestTokenService(t)
	userID := uuid.New()
	s.now = func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) }
	pair, err := s.IssueTokenPair(userID)
	require.NoError(t, err)
	require.NoError(t, s.StoreSession(ctx, userID, pair.RefreshToken))

	s.now = time.Now
	_, err = s.RotateAccessToken(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
