// Package transaction defines income/expense records and the signed effect
// each one has on the balance of its linked asset.
package transaction

import (
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/expensetracker/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type is either income or expense.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// AmountScale is the number of fractional digits an amount may carry.
const AmountScale = 2

// MaxAmount is the exclusive upper bound of a single amount. Balances are
// NUMERIC(20, 2) so this leaves room for many maximal entries on one asset.
var MaxAmount = decimal.New(1, 15)

var (
	ErrTransactionNotFound = fmt.Errorf("transaction not found: %w", domain.ErrNotFound)
	ErrInvalidType         = fmt.Errorf("type must be income or expense: %w", domain.ErrValidation)
	ErrAmountNotPositive   = fmt.Errorf("amount must be positive: %w", domain.ErrValidation)
	ErrAmountPrecision     = fmt.Errorf("amount has more than %d decimal places: %w", AmountScale, domain.ErrValidation)
	ErrAmountTooLarge      = fmt.Errorf("amount must be below %s: %w", MaxAmount, domain.ErrValidation)
	ErrMissingCategory     = fmt.Errorf("category is required: %w", domain.ErrValidation)
	ErrMissingDate         = fmt.Errorf("date is required: %w", domain.ErrValidation)
	// ErrInvalidAsset is returned when the referenced asset is missing or owned by someone else.
	ErrInvalidAsset = fmt.Errorf("asset does not exist: %w", domain.ErrValidation)
)

// Valid reports whether t is income or expense.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// ParseType normalises s into a Type.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", ErrInvalidType
	}
	return t, nil
}

// Transaction is a single income or expense entry. Amount is always
// positive; the sign comes from Type.
type Transaction struct {
	ID           uuid.UUID       `json:"id"`
	UserID       uuid.UUID       `json:"userId"`
	AssetID      *uuid.UUID      `json:"assetId"`
	Amount       decimal.Decimal `json:"amount"`
	Type         Type            `json:"type"`
	CategoryID   string          `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Note         string          `json:"note"`
	Date         time.Time       `json:"date"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// Effect returns the signed delta the transaction contributes to its asset.
func (t *Transaction) Effect() decimal.Decimal {
	return Effect(t.Type, t.Amount)
}

// Effect returns +amount for income and -amount for expense.
func Effect(typ Type, amount decimal.Decimal) decimal.Decimal {
	if typ == TypeIncome {
		return amount
	}
	return amount.Neg()
}

// HasAsset reports whether the transaction is linked to an asset.
func (t *Transaction) HasAsset() bool {
	return t.AssetID != nil && *t.AssetID != uuid.Nil
}

// ValidateAmount enforces the positive, bounded, two-decimal amount rule.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrAmountNotPositive
	}
	if amount.GreaterThanOrEqual(MaxAmount) {
		return ErrAmountTooLarge
	}
	if !amount.Equal(amount.Truncate(AmountScale)) {
		return ErrAmountPrecision
	}
	return nil
}

// Validate checks every field a caller can supply.
func (t *Transaction) Validate() error {
	if !t.Type.Valid() {
		return ErrInvalidType
	}
	if err := ValidateAmount(t.Amount); err != nil {
		return err
	}
	if strings.TrimSpace(t.CategoryID) == "" {
		return ErrMissingCategory
	}
	if t.Date.IsZero() {
		return ErrMissingDate
	}
	return nil
}

// New builds and validates a transaction owned by userID.
func New(
	userID uuid.UUID,
	assetID *uuid.UUID,
	typ Type,
	amount decimal.Decimal,
	categoryID, categoryName, note string,
	date time.Time,
) (*Transaction, error) {
	tx := &Transaction{
		ID:           uuid.New(),
		UserID:       userID,
		AssetID:      normaliseAssetID(assetID),
		Amount:       amount,
		Type:         typ,
		CategoryID:   strings.TrimSpace(categoryID),
		CategoryName: strings.TrimSpace(categoryName),
		Note:         note,
		Date:         date.UTC(),
		CreatedAt:    time.Now().UTC(),
	}
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	return tx, nil
}

func normaliseAssetID(id *uuid.UUID) *uuid.UUID {
	if id == nil || *id == uuid.Nil {
		return nil
	}
	v := *id
	return &v
}
