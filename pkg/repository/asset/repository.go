package asset

import (
	"context"

	"github.com/amirasaad/expensetracker/pkg/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Repository defines asset data access. Lookups that miss return an error
// wrapping domain.ErrNotFound.
type Repository interface {
	Create(ctx context.Context, create dto.AssetCreate) error

	// Update writes only the non-nil fields of update.
	Update(ctx context.Context, id uuid.UUID, update dto.AssetUpdate) error

	Get(ctx context.Context, id uuid.UUID) (*dto.AssetRead, error)

	// GetForUpdate reads the asset and holds a row lock on it until the
	// surrounding transaction ends.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*dto.AssetRead, error)

	ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.AssetRead, error)

	// AdjustBalance atomically adds delta to the stored balance.
	AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error

	// SetBalance overwrites the stored balance. Only reconciliation uses it.
	SetBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error

	// SumBalances returns the sum of every balance owned by userID.
	SumBalances(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
