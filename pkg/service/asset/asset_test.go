package asset_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/amirasaad/expensetracker/internal/fixtures"
	"github.com/amirasaad/expensetracker/pkg/domain"
	"github.com/amirasaad/expensetracker/pkg/domain/asset"
	"github.com/amirasaad/expensetracker/pkg/dto"
	assetsvc "github.com/amirasaad/expensetracker/pkg/service/asset"
	txsvc "github.com/amirasaad/expensetracker/pkg/service/transaction"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestCreateAsset(t *testing.T) {
	svc := assetsvc.New(fixtures.NewMemoryUoW(), slog.Default())
	userID := uuid.New()

	a, err := svc.CreateAsset(context.Background(), userID, "  Savings ", "Bank", "bank-icon", "#00ff00")
	require.NoError(t, err)
	assert.Equal(t, "Savings", a.Name)
	assert.Equal(t, "bank", a.Type)
	assert.Equal(t, userID, a.UserID)
	assert.True(t, a.Balance.IsZero())

	other, err := svc.CreateAsset(context.Background(), userID, "Pocket", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, string(asset.TypeOther), other.Type)
}

func TestCreateAsset_Invalid(t *testing.T) {
	svc := assetsvc.New(fixtures.NewMemoryUoW(), slog.Default())
	ctx := context.Background()

	_, err := svc.CreateAsset(ctx, uuid.New(), "", "bank", "", "")
	assert.ErrorIs(t, err, asset.ErrInvalidName)
	_, err = svc.CreateAsset(ctx, uuid.New(), strings.Repeat("x", asset.MaxNameLength+1), "bank", "", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = svc.CreateAsset(ctx, uuid.New(), "Crypto", "nft", "", "")
	assert.ErrorIs(t, err, asset.ErrInvalidAssetType)
}

func TestListAndGetAssets_Scoped(t *testing.T) {
	ctx := context.Background()
	svc := assetsvc.New(fixtures.NewMemoryUoW(), slog.Default())
	alice, bob := uuid.New(), uuid.New()

	a, err := svc.CreateAsset(ctx, alice, "Bank", "bank", "", "")
	require.NoError(t, err)
	_, err = svc.CreateAsset(ctx, bob, "Cash", "cash", "", "")
	require.NoError(t, err)

	list, err := svc.ListAssets(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, a.ID, list[0].ID)

	_, err = svc.GetAsset(ctx, bob, a.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.GetAsset(ctx, alice, uuid.New())
	assert.ErrorIs(t, err, asset.ErrAssetNotFound)
}

func TestUpdateAsset_Whitelist(t *testing.T) {
	ctx := context.Background()
	uow := fixtures.NewMemoryUoW()
	svc := assetsvc.New(uow, slog.Default())
	userID := uuid.New()

	a, err := svc.CreateAsset(ctx, userID, "Bank", "bank", "", "")
	require.NoError(t, err)
	repo, _ := uow.AssetRepository()
	require.NoError(t, repo.AdjustBalance(ctx, a.ID, decimal.NewFromInt(42)))

	updated, err := svc.UpdateAsset(ctx, userID, a.ID, dto.AssetUpdate{
		Name:  ptr("Main bank"),
		Color: ptr("#123456"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Main bank", updated.Name)
	assert.Equal(t, "#123456", updated.Color)
	assert.Equal(t, "bank", updated.Type)
	assert.True(t, updated.Balance.Equal(decimal.NewFromInt(42)))

	_, err = svc.UpdateAsset(ctx, userID, a.ID, dto.AssetUpdate{Type: ptr("yacht")})
	assert.ErrorIs(t, err, asset.ErrInvalidAssetType)
	_, err = svc.UpdateAsset(ctx, uuid.New(), a.ID, dto.AssetUpdate{Name: ptr("Mine now")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteAsset(t *testing.T) {
	ctx := context.Background()
	uow := fixtures.NewMemoryUoW()
	svc := assetsvc.New(uow, slog.Default())
	txs := txsvc.New(uow, slog.Default())
	userID := uuid.New()

	a, err := svc.CreateAsset(ctx, userID, "Wallet", "cash", "", "")
	require.NoError(t, err)
	tx, err := txs.CreateTransaction(ctx, userID, dto.TransactionInput{
		AssetID: &a.ID, Amount: decimal.NewFromInt(5), Type: "expense",
		CategoryID: "food", Date: time.Now(),
	})
	require.NoError(t, err)

	err = svc.DeleteAsset(ctx, userID, a.ID)
	assert.ErrorIs(t, err, asset.ErrAssetInUse)
	assert.ErrorIs(t, err, domain.ErrConflict)

	err = svc.DeleteAsset(ctx, uuid.New(), a.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, txs.DeleteTransaction(ctx, userID, tx.ID))
	require.NoError(t, svc.DeleteAsset(ctx, userID, a.ID))
	_, err = svc.GetAsset(ctx, userID, a.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
