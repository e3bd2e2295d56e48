// Package asset defines the asset account entity whose balance caches the sum
// of the effects of every transaction that references it.
package asset

import (
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/expensetracker/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type classifies an asset account.
type Type string

const (
	TypeBank  Type = "bank"
	TypeStock Type = "stock"
	TypeFund  Type = "fund"
	TypeCash  Type = "cash"
	TypeOther Type = "other"
)

// MaxNameLength bounds asset names.
const MaxNameLength = 100

var (
	ErrAssetNotFound    = fmt.Errorf("asset not found: %w", domain.ErrNotFound)
	ErrInvalidAssetType = fmt.Errorf("invalid asset type: %w", domain.ErrValidation)
	ErrInvalidName      = fmt.Errorf("asset name must be 1-%d characters: %w", MaxNameLength, domain.ErrValidation)
	// ErrAssetInUse is returned when deleting an asset still referenced by transactions.
	ErrAssetInUse = fmt.Errorf("asset is referenced by transactions: %w", domain.ErrConflict)
)

// Valid reports whether t is a known asset type.
func (t Type) Valid() bool {
	switch t {
	case TypeBank, TypeStock, TypeFund, TypeCash, TypeOther:
		return true
	}
	return false
}

// ParseType normalises s into a Type. An empty string yields TypeOther.
func ParseType(s string) (Type, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return TypeOther, nil
	}
	t := Type(s)
	if !t.Valid() {
		return "", ErrInvalidAssetType
	}
	return t, nil
}

// Asset is a user-owned account. Balance is never written directly by
// callers; it only moves through transaction effects.
type Asset struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"userId"`
	Name      string          `json:"name"`
	Type      Type            `json:"type"`
	Balance   decimal.Decimal `json:"balance"`
	Icon      string          `json:"icon"`
	Color     string          `json:"color"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// New creates an asset with a zero balance.
func New(userID uuid.UUID, name string, typ Type, icon, color string) (*Asset, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if !typ.Valid() {
		return nil, ErrInvalidAssetType
	}
	now := time.Now().UTC()
	return &Asset{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      strings.TrimSpace(name),
		Type:      typ,
		Balance:   decimal.Zero,
		Icon:      icon,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ValidateName checks the length bounds of an asset name.
func ValidateName(name string) error {
	n := len([]rune(strings.TrimSpace(name)))
	if n == 0 || n > MaxNameLength {
		return ErrInvalidName
	}
	return nil
}

// OwnedBy reports whether the asset belongs to userID.
func (a *Asset) OwnedBy(userID uuid.UUID) bool {
	return a != nil && a.UserID == userID
}
