package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/amirasaad/expensetracker/pkg/domain"
	"github.com/amirasaad/expensetracker/pkg/domain/user"
	"github.com/amirasaad/expensetracker/pkg/dto"
	"github.com/amirasaad/expensetracker/pkg/repository"
	"github.com/amirasaad/expensetracker/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// dummyHash is compared against on unknown emails so a miss costs the same
// as a wrong password.
var dummyHash = sync.OnceValue(func() string {
	h, _ := utils.HashPassword("not-a-real-password")
	return h
})

// LoginResult is what a successful login hands back to the client.
type LoginResult struct {
	*TokenPair
	TokenType string        `json:"tokenType"`
	User      *dto.UserRead `json:"user"`
}

type Service struct {
	uow    repository.UnitOfWork
	tokens *TokenService
	logger *slog.Logger
}

func New(
	uow repository.UnitOfWork,
	tokens *TokenService,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, tokens: tokens, logger: logger}
}

// Tokens exposes the token service used by the bearer middleware.
func (s *Service) Tokens() *TokenService {
	return s.tokens
}

// Register creates a user. The email is unique across all users.
func (s *Service) Register(
	ctx context.Context,
	email, password, nickname string,
) (u *dto.UserRead, err error) {
	log := s.logger.With("context", "Register")
	nu, err := user.NewUser(email, password, nickname)
	if err != nil {
		log.Warn("Invalid registration", "error", err)
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return fmt.Errorf("failed to get user repository: %w", err)
		}
		exists, err := repo.ExistsByEmail(ctx, nu.Email)
		if err != nil {
			return err
		}
		if exists {
			return user.ErrEmailTaken
		}
		if err := repo.Create(ctx, &dto.UserCreate{
			ID:       nu.ID,
			Email:    nu.Email,
			Password: nu.Password,
			Nickname: nu.Nickname,
		}); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return user.ErrEmailTaken
			}
			return err
		}
		u, err = repo.Get(ctx, nu.ID)
		return err
	})
	if err != nil {
		log.Error("Register failed", "error", err)
		return nil, err
	}
	log.Info("User registered", "userID", u.ID)
	return u, nil
}

// Authenticate checks an email/password pair without issuing tokens.
func (s *Service) Authenticate(
	ctx context.Context,
	email, password string,
) (u *dto.UserRead, err error) {
	log := s.logger.With("context", "Authenticate")
	email = strings.ToLower(strings.TrimSpace(email))
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return fmt.Errorf("failed to get user repository: %w", err)
		}
		u, err = repo.GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				_ = utils.CheckPasswordHash(password, dummyHash())
				return user.ErrInvalidCredentials
			}
			return err
		}
		if !utils.CheckPasswordHash(password, u.HashedPassword) {
			return user.ErrInvalidCredentials
		}
		return nil
	})
	if err != nil {
		log.Warn("Authentication failed", "error", err)
		return nil, err
	}
	return u, nil
}

// Login authenticates the user, issues a token pair and stores the refresh
// token as the user's only session. Logging in again invalidates the
// previous refresh token.
func (s *Service) Login(
	ctx context.Context,
	email, password string,
) (*LoginResult, error) {
	log := s.logger.With("context", "Login")
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	pair, err := s.tokens.IssueTokenPair(u.ID)
	if err != nil {
		log.Error("Issue tokens failed", "userID", u.ID, "error", err)
		return nil, err
	}
	if err := s.tokens.StoreSession(ctx, u.ID, pair.RefreshToken); err != nil {
		log.Error("Store session failed", "userID", u.ID, "error", err)
		return nil, err
	}
	log.Info("Login successful", "userID", u.ID)
	return &LoginResult{TokenPair: pair, TokenType: "bearer", User: u}, nil
}

// Refresh exchanges a refresh token for a new access token.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	return s.tokens.RotateAccessToken(ctx, refreshToken)
}

// Logout revokes the user's session.
func (s *Service) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := s.tokens.RevokeSession(ctx, userID); err != nil {
		s.logger.Error("Logout failed", "userID", userID, "error", err)
		return err
	}
	s.logger.Info("Logout successful", "userID", userID)
	return nil
}

// GetCurrentUserId extracts the user ID from a token already verified by the
// bearer middleware.
func (s *Service) GetCurrentUserId(token *jwt.Token) (uuid.UUID, error) {
	if token == nil {
		return uuid.Nil, ErrInvalidAccessToken
	}
	var subject, purpose string
	switch claims := token.Claims.(type) {
	case *Claims:
		subject, purpose = claims.Subject, claims.Purpose
	case jwt.MapClaims:
		subject, _ = claims["sub"].(string)
		purpose, _ = claims["purpose"].(string)
	default:
		return uuid.Nil, ErrInvalidAccessToken
	}
	if purpose != PurposeAccess {
		return uuid.Nil, ErrInvalidAccessToken
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, ErrInvalidAccessToken
	}
	return userID, nil
}
