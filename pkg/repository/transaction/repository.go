package transaction

import (
	"context"
	"time"

	"github.com/amirasaad/expensetracker/pkg/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Repository defines transaction data access plus the aggregate queries the
// statistics and reconciliation code rely on.
type Repository interface {
	Create(ctx context.Context, create dto.TransactionCreate) error

	// Update overwrites the whitelisted fields of the transaction.
	Update(ctx context.Context, id uuid.UUID, update dto.TransactionUpdate) error

	Get(ctx context.Context, id uuid.UUID) (*dto.TransactionRead, error)

	Delete(ctx context.Context, id uuid.UUID) error

	// ListByUser returns the newest transactions first, by business date.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*dto.TransactionRead, error)

	// SumByTypeSince sums income and expense amounts dated on or after since.
	SumByTypeSince(ctx context.Context, userID uuid.UUID, since time.Time) (dto.TypeTotals, error)

	// CategoryTotals groups transactions of one type dated in [start, end).
	CategoryTotals(
		ctx context.Context,
		userID uuid.UUID,
		txType string,
		start, end time.Time,
	) ([]dto.CategoryTotal, error)

	// CountByAsset counts transactions referencing assetID.
	CountByAsset(ctx context.Context, assetID uuid.UUID) (int64, error)

	// SumEffectByAsset recomputes the signed effect total of assetID.
	SumEffectByAsset(ctx context.Context, assetID uuid.UUID) (decimal.Decimal, error)
}
