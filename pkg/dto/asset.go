package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetCreate is a DTO for creating a new asset. Balance always starts at zero.
type AssetCreate struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Name   string
	Type   string
	Icon   string
	Color  string
}

// AssetUpdate is the whitelist of asset fields a caller may change.
// Balance, owner and identifiers are deliberately absent.
type AssetUpdate struct {
	Name  *string
	Type  *string
	Icon  *string
	Color *string
}

// IsEmpty reports whether the update carries no field.
func (u AssetUpdate) IsEmpty() bool {
	return u.Name == nil && u.Type == nil && u.Icon == nil && u.Color == nil
}

// AssetRead is a read-optimized DTO for asset queries and API responses.
type AssetRead struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"userId"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Balance   decimal.Decimal `json:"balance"`
	Icon      string          `json:"icon"`
	Color     string          `json:"color"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
