package user

import (
	"strings"
	"testing"

	"github.com/amirasaad/expensetracker/pkg/domain"
	"github.com/amirasaad/expensetracker/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("  Alice@Example.com ", "secret123", "")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, DefaultNickname, u.Nickname)
	assert.NotEqual(t, "secret123", u.Password)
	assert.True(t, utils.CheckPasswordHash("secret123", u.Password))
	assert.Equal(t, u.CreatedAt, u.UpdatedAt)
}

func TestNewUser_KeepsNickname(t *testing.T) {
	u, err := NewUser("bob@example.com", "secret123", "Bobby")
	require.NoError(t, err)
	assert.Equal(t, "Bobby", u.Nickname)
}

func TestNewUser_Invalid(t *testing.T) {
	cases := map[string]struct {
		email    string
		password string
		want     error
	}{
		"bad email":      {"not-an-email", "secret123", ErrInvalidEmail},
		"short password": {"a@example.com", "123", ErrPasswordTooShort},
		"long password":  {"a@example.com", strings.Repeat("p", 80), ErrPasswordTooLong},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewUser(tc.email, tc.password, "")
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestErrorsClassify(t *testing.T) {
	assert.True(t, IsNotFound(ErrUserNotFound))
	assert.ErrorIs(t, ErrEmailTaken, domain.ErrAlreadyExists)
	assert.ErrorIs(t, ErrInvalidCredentials, domain.ErrValidation)
}
