package repository

import (
	"context"

	"github.com/amirasaad/expensetracker/pkg/domain"
	"github.com/amirasaad/expensetracker/pkg/dto"
	assetrepo "github.com/amirasaad/expensetracker/pkg/repository/asset"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type assetRepository struct {
	db *gorm.DB
}

// NewAssetRepository creates an asset repository bound to db.
func NewAssetRepository(db *gorm.DB) assetrepo.Repository {
	return &assetRepository{db: db}
}

func (r *assetRepository) Create(ctx context.Context, create dto.AssetCreate) error {
	a := Asset{
		ID:      create.ID,
		UserID:  create.UserID,
		Name:    create.Name,
		Type:    create.Type,
		Balance: decimal.Zero,
		Icon:    create.Icon,
		Color:   create.Color,
	}
	return WrapError(func() error {
		return withContext(r.db, ctx).Create(&a).Error
	})
}

func (r *assetRepository) Update(ctx context.Context, id uuid.UUID, update dto.AssetUpdate) error {
	updates := make(map[string]any)
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Type != nil {
		updates["type"] = *update.Type
	}
	if update.Icon != nil {
		updates["icon"] = *update.Icon
	}
	if update.Color != nil {
		updates["color"] = *update.Color
	}
	if len(updates) == 0 {
		return nil
	}
	return r.updateColumns(ctx, id, updates)
}

func (r *assetRepository) Get(ctx context.Context, id uuid.UUID) (*dto.AssetRead, error) {
	var a Asset
	if err := withContext(r.db, ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapAssetToDTO(&a), nil
}

func (r *assetRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*dto.AssetRead, error) {
	var a Asset
	err := withContext(r.db, ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&a, "id = ?", id).Error
	if err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapAssetToDTO(&a), nil
}

func (r *assetRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.AssetRead, error) {
	var assets []Asset
	err := withContext(r.db, ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&assets).Error
	if err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	result := make([]*dto.AssetRead, 0, len(assets))
	for i := range assets {
		result = append(result, mapAssetToDTO(&assets[i]))
	}
	return result, nil
}

func (r *assetRepository) AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	return r.updateColumns(ctx, id, map[string]any{
		"balance": gorm.Expr("balance + ?", delta),
	})
}

func (r *assetRepository) SetBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	return r.updateColumns(ctx, id, map[string]any{"balance": balance})
}

func (r *assetRepository) SumBalances(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	var out struct {
		Total decimal.Decimal
	}
	err := withContext(r.db, ctx).Model(&Asset{}).
		Select("COALESCE(SUM(balance), 0) AS total").
		Where("user_id = ?", userID).
		Scan(&out).Error
	if err != nil {
		return decimal.Zero, MapGormErrorToDomain(err)
	}
	return out.Total, nil
}

func (r *assetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := withContext(r.db, ctx).Delete(&Asset{}, "id = ?", id)
	if res.Error != nil {
		return MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *assetRepository) updateColumns(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	res := withContext(r.db, ctx).Model(&Asset{}).
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

func mapAssetToDTO(a *Asset) *dto.AssetRead {
	return &dto.AssetRead{
		ID:        a.ID,
		UserID:    a.UserID,
		Name:      a.Name,
		Type:      a.Type,
		Balance:   a.Balance,
		Icon:      a.Icon,
		Color:     a.Color,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

var _ assetrepo.Repository = (*assetRepository)(nil)
