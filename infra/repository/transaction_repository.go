package repository

import (
	"context"
	"time"

	"github.com/amirasaad/expensetracker/pkg/domain"
	"github.com/amirasaad/expensetracker/pkg/dto"
	txrepo "github.com/amirasaad/expensetracker/pkg/repository/transaction"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a transaction repository bound to db.
func NewTransactionRepository(db *gorm.DB) txrepo.Repository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, create dto.TransactionCreate) error {
	tx := Transaction{
		ID:           create.ID,
		UserID:       create.UserID,
		AssetID:      create.AssetID,
		Amount:       create.Amount,
		Type:         create.Type,
		CategoryID:   create.CategoryID,
		CategoryName: create.CategoryName,
		Note:         create.Note,
		Date:         create.Date,
	}
	return WrapError(func() error {
		return withContext(r.db, ctx).Create(&tx).Error
	})
}

func (r *transactionRepository) Update(ctx context.Context, id uuid.UUID, update dto.TransactionUpdate) error {
	// A map keeps a nil asset_id in the statement; a struct would skip it.
	updates := map[string]any{
		"asset_id":      update.AssetID,
		"amount":        update.Amount,
		"type":          update.Type,
		"category_id":   update.CategoryID,
		"category_name": update.CategoryName,
		"note":          update.Note,
		"date":          update.Date,
	}
	res := withContext(r.db, ctx).Model(&Transaction{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *transactionRepository) Get(ctx context.Context, id uuid.UUID) (*dto.TransactionRead, error) {
	var tx Transaction
	if err := withContext(r.db, ctx).First(&tx, "id = ?", id).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapTransactionToDTO(&tx), nil
}

func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := withContext(r.db, ctx).Delete(&Transaction{}, "id = ?", id)
	if res.Error != nil {
		return MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *transactionRepository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
) ([]*dto.TransactionRead, error) {
	var txs []Transaction
	err := withContext(r.db, ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Order("created_at DESC").
		Limit(limit).
		Find(&txs).Error
	if err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	result := make([]*dto.TransactionRead, 0, len(txs))
	for i := range txs {
		result = append(result, mapTransactionToDTO(&txs[i]))
	}
	return result, nil
}

func (r *transactionRepository) SumByTypeSince(
	ctx context.Context,
	userID uuid.UUID,
	since time.Time,
) (dto.TypeTotals, error) {
	var rows []struct {
		Type  string
		Total decimal.Decimal
	}
	err := withContext(r.db, ctx).Model(&Transaction{}).
		Select("type, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND date >= ?", userID, since).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return dto.TypeTotals{}, MapGormErrorToDomain(err)
	}

	totals := dto.TypeTotals{Income: decimal.Zero, Expense: decimal.Zero}
	for _, row := range rows {
		switch row.Type {
		case "income":
			totals.Income = row.Total
		case "expense":
			totals.Expense = row.Total
		}
	}
	return totals, nil
}

func (r *transactionRepository) CategoryTotals(
	ctx context.Context,
	userID uuid.UUID,
	txType string,
	start, end time.Time,
) ([]dto.CategoryTotal, error) {
	var rows []struct {
		CategoryID   string
		CategoryName string
		Amount       decimal.Decimal
	}
	err := withContext(r.db, ctx).Model(&Transaction{}).
		Select("category_id, category_name, SUM(amount) AS amount").
		Where("user_id = ? AND type = ? AND date >= ? AND date < ?", userID, txType, start, end).
		Group("category_id, category_name").
		Order("amount DESC, category_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, MapGormErrorToDomain(err)
	}

	totals := make([]dto.CategoryTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, dto.CategoryTotal{
			CategoryID:   row.CategoryID,
			CategoryName: row.CategoryName,
			Amount:       row.Amount,
		})
	}
	return totals, nil
}

func (r *transactionRepository) CountByAsset(ctx context.Context, assetID uuid.UUID) (int64, error) {
	var count int64
	err := withContext(r.db, ctx).Model(&Transaction{}).
		Where("asset_id = ?", assetID).
		Count(&count).Error
	if err != nil {
		return 0, MapGormErrorToDomain(err)
	}
	return count, nil
}

func (r *transactionRepository) SumEffectByAsset(ctx context.Context, assetID uuid.UUID) (decimal.Decimal, error) {
	var out struct {
		Total decimal.Decimal
	}
	err := withContext(r.db, ctx).Model(&Transaction{}).
		Select("COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE -amount END), 0) AS total").
		Where("asset_id = ?", assetID).
		Scan(&out).Error
	if err != nil {
		return decimal.Zero, MapGormErrorToDomain(err)
	}
	return out.Total, nil
}

func mapTransactionToDTO(tx *Transaction) *dto.TransactionRead {
	return &dto.TransactionRead{
		ID:           tx.ID,
		UserID:       tx.UserID,
		AssetID:      tx.AssetID,
		Amount:       tx.Amount,
		Type:         tx.Type,
		CategoryID:   tx.CategoryID,
		CategoryName: tx.CategoryName,
		Note:         tx.Note,
		Date:         tx.Date,
		CreatedAt:    tx.CreatedAt,
	}
}

var _ txrepo.Repository = (*transactionRepository)(nil)
