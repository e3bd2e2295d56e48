package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/expensetracker/pkg/domain"
	"github.com/amirasaad/expensetracker/pkg/utils"
	"github.com/google/uuid"
)

// DefaultNickname is assigned at registration when none is supplied.
const DefaultNickname = "New user"

var (
	// ErrUserNotFound is returned when a user cannot be found in the
	// repository.
	ErrUserNotFound = fmt.Errorf("user not found: %w", domain.ErrNotFound)
	// ErrInvalidCredentials is returned when the email/password pair does not match.
	ErrInvalidCredentials = fmt.Errorf("invalid email or password: %w", domain.ErrValidation)
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = fmt.Errorf("email already registered: %w", domain.ErrAlreadyExists)
	// ErrInvalidEmail is returned for malformed email addresses.
	ErrInvalidEmail = fmt.Errorf("invalid email: %w", domain.ErrValidation)
	// ErrPasswordTooShort is returned when the password has fewer than MinPasswordLength characters.
	ErrPasswordTooShort = fmt.Errorf("password too short: %w", domain.ErrValidation)
	// ErrPasswordTooLong is returned when the password exceeds the bcrypt input limit.
	ErrPasswordTooLong = fmt.Errorf("password too long: %w", domain.ErrValidation)
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

// User represents a user in the system.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Nickname  string    `json:"nickname"`
	AvatarURL string    `json:"avatarUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewUser creates a new User with a hashed password and current timestamps.
func NewUser(email, password, nickname string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !utils.IsEmail(email) {
		return nil, ErrInvalidEmail
	}
	if len(password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if len(password) > utils.MaxPasswordBytes {
		return nil, ErrPasswordTooLong
	}
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		nickname = DefaultNickname
	}
	now := time.Now().UTC()
	return &User{
		ID:        uuid.New(),
		Email:     email,
		Password:  hashedPassword,
		Nickname:  nickname,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// NewUserFromData creates a User from raw data (used for DB hydration).
func NewUserFromData(
	id uuid.UUID,
	email, password, nickname, avatarURL string,
	created, updated time.Time,
) *User {
	return &User{
		ID:        id,
		Email:     email,
		Password:  password,
		Nickname:  nickname,
		AvatarURL: avatarURL,
		CreatedAt: created,
		UpdatedAt: updated,
	}
}

// IsNotFound reports whether err means the user does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
