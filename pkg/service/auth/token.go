package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/expensetracker/pkg/cache"
	"github.com/amirasaad/expensetracker/pkg/config"
	"github.com/amirasaad/expensetracker/pkg/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	PurposeAccess  = "access"
	PurposeRefresh = "refresh"
)

var (
	// ErrInvalidAccessToken wraps domain.ErrUnauthorized.
	ErrInvalidAccessToken = fmt.Errorf("invalid access token: %w", domain.ErrUnauthorized)
	// ErrInvalidRefreshToken wraps domain.ErrForbidden.
	ErrInvalidRefreshToken = fmt.Errorf("invalid or revoked refresh token: %w", domain.ErrForbidden)
)

var hmacMethods = []string{
	jwt.SigningMethodHS256.Alg(),
	jwt.SigningMethodHS384.Alg(),
	jwt.SigningMethodHS512.Alg(),
}

// Claims is the payload of both token kinds. Subject carries the user ID.
type Claims struct {
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// TokenPair is returned on login.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenService issues and verifies access/refresh tokens and keeps the
// server-side session that makes refresh tokens revocable.
type TokenService struct {
	cfg      *config.Jwt
	sessions cache.SessionStore
	logger   *slog.Logger
	now      func() time.Time
}

// NewTokenService creates a TokenService.
func NewTokenService(
	cfg *config.Jwt,
	sessions cache.SessionStore,
	logger *slog.Logger,
) *TokenService {
	return &TokenService{
		cfg:      cfg,
		sessions: sessions,
		logger:   logger,
		now:      time.Now,
	}
}

// IssueTokenPair signs a fresh access and refresh token for userID. The
// caller is responsible for storing the refresh token with StoreSession.
func (s *TokenService) IssueTokenPair(userID uuid.UUID) (*TokenPair, error) {
	access, err := s.sign(userID, PurposeAccess, s.cfg.AccessSecret, s.cfg.AccessExpiry)
	if err != nil {
		return nil, err
	}
	refresh, err := s.sign(userID, PurposeRefresh, s.cfg.RefreshSecret, s.cfg.RefreshExpiry)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// StoreSession records refreshToken as the only valid session of userID,
// replacing any previous one.
func (s *TokenService) StoreSession(ctx context.Context, userID uuid.UUID, refreshToken string) error {
	return s.sessions.Set(ctx, userID.String(), refreshToken, s.cfg.RefreshExpiry)
}

// VerifyAccessToken returns the user ID carried by a valid access token.
func (s *TokenService) VerifyAccessToken(token string) (uuid.UUID, error) {
	claims, err := s.parse(token, s.cfg.AccessSecret, PurposeAccess)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidAccessToken, err)
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidAccessToken
	}
	return userID, nil
}

// RotateAccessToken exchanges a refresh token that matches the stored
// session for a new access token. The refresh token itself is not rotated.
func (s *TokenService) RotateAccessToken(ctx context.Context, refreshToken string) (string, error) {
	log := s.logger.With("context", "RotateAccessToken")
	claims, err := s.parse(refreshToken, s.cfg.RefreshSecret, PurposeRefresh)
	if err != nil {
		log.Warn("Refresh token rejected", "error", err)
		return "", ErrInvalidRefreshToken
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	stored, err := s.sessions.Get(ctx, userID.String())
	if err != nil {
		if errors.Is(err, cache.ErrSessionNotFound) {
			log.Warn("No active session", "userID", userID)
			return "", ErrInvalidRefreshToken
		}
		return "", err
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(refreshToken)) != 1 {
		log.Warn("Refresh token does not match session", "userID", userID)
		return "", ErrInvalidRefreshToken
	}

	access, err := s.sign(userID, PurposeAccess, s.cfg.AccessSecret, s.cfg.AccessExpiry)
	if err != nil {
		return "", err
	}
	log.Info("Access token rotated", "userID", userID)
	return access, nil
}

// RevokeSession drops the stored refresh token of userID. Revoking a user
// without a session is not an error.
func (s *TokenService) RevokeSession(ctx context.Context, userID uuid.UUID) error {
	return s.sessions.Delete(ctx, userID.String())
}

func (s *TokenService) sign(
	userID uuid.UUID,
	purpose, secret string,
	ttl time.Duration,
) (string, error) {
	now := s.now()
	claims := Claims{
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", purpose, err)
	}
	return signed, nil
}

func (s *TokenService) parse(token, secret, purpose string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(
		token,
		claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(secret), nil
		},
		jwt.WithValidMethods(hmacMethods),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, err
	}
	if claims.Purpose != purpose {
		return nil, fmt.Errorf("token purpose %q, want %q", claims.Purpose, purpose)
	}
	return claims, nil
}
