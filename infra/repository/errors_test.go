package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/amirasaad/expensetracker/pkg/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapGormErrorToDomain(t *testing.T) {
	t.Parallel()

	other := errors.New("some other error")
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "nil error returns nil",
			input:    nil,
			expected: nil,
		},
		{
			name:     "duplicate key error maps to ErrAlreadyExists",
			input:    gorm.ErrDuplicatedKey,
			expected: domain.ErrAlreadyExists,
		},
		{
			name:     "record not found error maps to ErrNotFound",
			input:    gorm.ErrRecordNotFound,
			expected: domain.ErrNotFound,
		},
		{
			name:     "foreign key violation maps to ErrConflict",
			input:    gorm.ErrForeignKeyViolated,
			expected: domain.ErrConflict,
		},
		{
			name:     "wrapped record not found error maps correctly",
			input:    errors.Join(errors.New("outer error"), gorm.ErrRecordNotFound),
			expected: domain.ErrNotFound,
		},
		{
			name:     "deadline exceeded maps to ErrUnavailable",
			input:    fmt.Errorf("query: %w", context.DeadlineExceeded),
			expected: domain.ErrUnavailable,
		},
		{
			name:     "bad connection maps to ErrUnavailable",
			input:    driver.ErrBadConn,
			expected: domain.ErrUnavailable,
		},
		{
			name:     "postgres unique violation maps to ErrAlreadyExists",
			input:    fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}),
			expected: domain.ErrAlreadyExists,
		},
		{
			name:     "postgres foreign key violation maps to ErrConflict",
			input:    &pgconn.PgError{Code: "23503"},
			expected: domain.ErrConflict,
		},
		{
			name:     "postgres numeric overflow maps to ErrValidation",
			input:    fmt.Errorf("update balance: %w", &pgconn.PgError{Code: "22003", Message: "numeric field overflow"}),
			expected: domain.ErrValidation,
		},
		{
			name:     "postgres string truncation maps to ErrValidation",
			input:    &pgconn.PgError{Code: "22001", Message: "value too long for type character varying(100)"},
			expected: domain.ErrValidation,
		},
		{
			name:     "non-GORM error returns original",
			input:    other,
			expected: other,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := MapGormErrorToDomain(tt.input)
			if tt.expected == nil {
				assert.NoError(t, result)
				return
			}
			assert.ErrorIs(t, result, tt.expected)
		})
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	err := WrapError(func() error { return gorm.ErrRecordNotFound })
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, WrapError(func() error { return nil }))
}
