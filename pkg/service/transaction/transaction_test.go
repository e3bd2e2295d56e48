package transaction_test

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/amirasaad/expensetracker/internal/fixtures"
	"github.com/amirasaad/expensetracker/internal/fixtures/mocks"
	"github.com/amirasaad/expensetracker/pkg/domain"
	"github.com/amirasaad/expensetracker/pkg/domain/transaction"
	"github.com/amirasaad/expensetracker/pkg/dto"
	"github.com/amirasaad/expensetracker/pkg/repository"
	txsvc "github.com/amirasaad/expensetracker/pkg/service/transaction"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seedAsset(t *testing.T, uow *fixtures.MemoryUoW, userID uuid.UUID, name string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	require.NoError(t, uow.Do(context.Background(), func(tx repository.UnitOfWork) error {
		repo, _ := tx.AssetRepository()
		return repo.Create(context.Background(), dto.AssetCreate{ID: id, UserID: userID, Name: name, Type: "cash"})
	}))
	return id
}

func balanceOf(t *testing.T, uow *fixtures.MemoryUoW, assetID uuid.UUID) decimal.Decimal {
	t.Helper()
	repo, _ := uow.AssetRepository()
	a, err := repo.Get(context.Background(), assetID)
	require.NoError(t, err)
	return a.Balance
}

func ledgerSum(t *testing.T, uow *fixtures.MemoryUoW, assetID uuid.UUID) decimal.Decimal {
	t.Helper()
	repo, _ := uow.TransactionRepository()
	sum, err := repo.SumEffectByAsset(context.Background(), assetID)
	require.NoError(t, err)
	return sum
}

func input(assetID *uuid.UUID, typ, amount string) dto.TransactionInput {
	return dto.TransactionInput{
		AssetID:      assetID,
		Amount:       dec(amount),
		Type:         typ,
		CategoryID:   "food",
		CategoryName: "Food",
		Date:         day,
	}
}

func TestTransactionLifecycleKeepsBalance(t *testing.T) {
	ctx := context.Background()
	uow := fixtures.NewMemoryUoW()
	svc := txsvc.New(uow, slog.Default())
	userID := uuid.New()
	assetID := seedAsset(t, uow, userID, "Wallet")

	created, err := svc.CreateTransaction(ctx, userID, input(&assetID, "expense", "50"))
	require.NoError(t, err)
	assert.True(t, balanceOf(t, uow, assetID).Equal(dec("-50")))

	_, err = svc.UpdateTransaction(ctx, userID, created.ID, input(&assetID, "income", "30"))
	require.NoError(t, err)
	assert.True(t, balanceOf(t, uow, assetID).Equal(dec("30")))

	require.NoError(t, svc.DeleteTransaction(ctx, userID, created.ID))
	assert.True(t, balanceOf(t, uow, assetID).IsZero())

	_, err = svc.GetTransaction(ctx, userID, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteThenRecreateRestoresBalance(t *testing.T) {
	ctx := context.Background()
	uow := fixtures.NewMemoryUoW()
	svc := txsvc.New(uow, slog.Default())
	userID := uuid.New()
	assetID := seedAsset(t, uow, userID, "Bank")

	for _, in := range []dto.TransactionInput{
		input(&assetID, "income", "1200"),
		input(&assetID, "expense", "75.25"),
		input(&assetID, "expense", "19.99"),
	} {
		_, err := svc.CreateTransaction(ctx, userID, in)
		require.NoError(t, err)
	}
	target := input(&assetID, "expense", "42.10")
	target.Note = "groceries"
	created, err := svc.CreateTransaction(ctx, userID, target)
	require.NoError(t, err)
	before := balanceOf(t, uow, assetID)
	assert.True(t, before.Equal(dec("1062.66")))

	require.NoError(t, svc.DeleteTransaction(ctx, userID, created.ID))
	assert.True(t, balanceOf(t, uow, assetID).Equal(dec("1104.76")))

	_, err = svc.CreateTransaction(ctx, userID, target)
	require.NoError(t, err)
	assert.True(t, balanceOf(t, uow, assetID).Equal(before))
	assert.True(t, ledgerSum(t, uow, assetID).Equal(before))
}

func TestUpdateTransaction_MovesBetweenAssets(t *testing.T) {
	ctx := context.Background()
	uow := fixtures.NewMemoryUoW()
	svc := txsvc.New(uow, slog.Default())
	userID := uuid.New()
	a := seedAsset(t, uow, userID, "Bank")
	b := seedAsset(t, uow, userID, "Cash")

	tx, err := svc.CreateTransaction(ctx, userID, input(&a, "income", "100.25"))
	require.NoError(t, err)

	moved, err := svc.UpdateTransaction(ctx, userID, tx.ID, input(&b, "expense", "20"))
	require.NoError(t, err)
	assert.Equal(t, b, *moved.AssetID)
	assert.True(t, balanceOf(t, uow, a).IsZero())
	assert.True(t, balanceOf(t, uow, b).Equal(dec("-20")))

	unlinked, err := svc.UpdateTransaction(ctx, userID, tx.ID, input(nil, "expense", "20"))
	require.NoError(t, err)
	assert.Nil(t, unlinked.AssetID)
	assert.True(t, balanceOf(t, uow, b).IsZero())
}

func TestCreateTransaction_WithoutAsset(t *testing.T) {
	uow := fixtures.NewMemoryUoW()
	svc := txsvc.New(uow, slog.Default())
	nilID := uuid.Nil

	tx, err := svc.CreateTransaction(context.Background(), uuid.New(), input(&nilID, "income", "10"))
	require.NoError(t, err)
	assert.Nil(t, tx.AssetID)
}

func TestCreateTransaction_RejectsForeignOrMissingAsset(t *testing.T) {
	ctx := context.Background()
	uow := fixtures.NewMemoryUoW()
	svc := txsvc.New(uow, slog.Default())
	owner := uuid.New()
	intruder := uuid.New()
	assetID := seedAsset(t, uow, owner, "Bank")
	missing := uuid.New()

	_, err := svc.CreateTransaction(ctx, intruder, input(&assetID, "expense", "5"))
	assert.ErrorIs(t, err, transaction.ErrInvalidAsset)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.True(t, balanceOf(t, uow, assetID).IsZero())

	_, err = svc.CreateTransaction(ctx, owner, input(&missing, "expense", "5"))
	assert.ErrorIs(t, err, transaction.ErrInvalidAsset)

	list, err := svc.ListTransactions(ctx, owner, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdateTransaction_RejectsForeignAssetAndRollsBack(t *testing.T) {
	ctx := context.Background()
	uow := fixtures.NewMemoryUoW()
	svc := txsvc.New(uow, slog.Default())
	userID := uuid.New()
	mine := seedAsset(t, uow, userID, "Mine")
	theirs := seedAsset(t, uow, uuid.New(), "Theirs")

	tx, err := svc.CreateTransaction(ctx, userID, input(&mine, "expense", "40"))
	require.NoError(t, err)

	_, err = svc.UpdateTransaction(ctx, userID, tx.ID, input(&theirs, "expense", "40"))
	assert.ErrorIs(t, err, transaction.ErrInvalidAsset)
	assert.True(t, balanceOf(t, uow, mine).Equal(dec("-40")))
	assert.True(t, balanceOf(t, uow, theirs).IsZero())
}

func TestTransactionOwnership(t *testing.T) {
	ctx := context.Background()
	uow := fixtures.NewMemoryUoW()
	svc := txsvc.New(uow, slog.Default())
	owner := uuid.New()
	other := uuid.New()
	assetID := seedAsset(t, uow, owner, "Wallet")

	tx, err := svc.CreateTransaction(ctx, owner, input(&assetID, "expense", "12.34"))
	require.NoError(t, err)

	_, err = svc.GetTransaction(ctx, other, tx.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.UpdateTransaction(ctx, other, tx.ID, input(nil, "income", "1"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	err = svc.DeleteTransaction(ctx, other, tx.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.True(t, balanceOf(t, uow, assetID).Equal(dec("-12.34")))
}

func TestCreateTransaction_Validation(t *testing.T) {
	uow := fixtures.NewMemoryUoW()
	svc := txsvc.New(uow, slog.Default())
	userID := uuid.New()

	tests := []struct {
		name string
		in   dto.TransactionInput
		want error
	}{
		{"zero amount", input(nil, "expense", "0"), transaction.ErrAmountNotPositive},
		{"negative amount", input(nil, "expense", "-1"), transaction.ErrAmountNotPositive},
		{"three decimals", input(nil, "income", "1.005"), transaction.ErrAmountPrecision},
		{"bad type", input(nil, "transfer", "1"), transaction.ErrInvalidType},
		{"no category", func() dto.TransactionInput {
			in := input(nil, "income", "1")
			in.CategoryID = " "
			return in
		}(), transaction.ErrMissingCategory},
		{"no date", func() dto.TransactionInput {
			in := input(nil, "income", "1")
			in.Date = time.Time{}
			return in
		}(), transaction.ErrMissingDate},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateTransaction(context.Background(), userID, tc.in)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestListTransactions_NewestFirstAndClamped(t *testing.T) {
	ctx := context.Background()
	uow := fixtures.NewMemoryUoW()
	svc := txsvc.New(uow, slog.Default())
	userID := uuid.New()

	for i := range 25 {
		in := input(nil, "expense", "1")
		in.Date = day.AddDate(0, 0, i)
		_, err := svc.CreateTransaction(ctx, userID, in)
		require.NoError(t, err)
	}
	_, err := svc.CreateTransaction(ctx, uuid.New(), input(nil, "expense", "1"))
	require.NoError(t, err)

	list, err := svc.ListTransactions(ctx, userID, 0)
	require.NoError(t, err)
	require.Len(t, list, txsvc.DefaultListLimit)
	assert.True(t, list[0].Date.Equal(day.AddDate(0, 0, 24)))
	for i := 1; i < len(list); i++ {
		assert.False(t, list[i].Date.After(list[i-1].Date))
	}

	list, err = svc.ListTransactions(ctx, userID, 1000)
	require.NoError(t, err)
	assert.Len(t, list, 25)
}

func TestReconcileAsset(t *testing.T) {
	ctx := context.Background()
	uow := fixtures.NewMemoryUoW()
	svc := txsvc.New(uow, slog.Default())
	userID := uuid.New()
	assetID := seedAsset(t, uow, userID, "Wallet")

	_, err := svc.CreateTransaction(ctx, userID, input(&assetID, "income", "70"))
	require.NoError(t, err)
	_, err = svc.CreateTransaction(ctx, userID, input(&assetID, "expense", "20.5"))
	require.NoError(t, err)

	res, err := svc.ReconcileAsset(ctx, userID, assetID)
	require.NoError(t, err)
	assert.False(t, res.Changed())

	repo, _ := uow.AssetRepository()
	require.NoError(t, repo.SetBalance(ctx, assetID, dec("999")))

	res, err = svc.ReconcileAsset(ctx, userID, assetID)
	require.NoError(t, err)
	assert.True(t, res.Changed())
	assert.True(t, res.Previous.Equal(dec("999")))
	assert.True(t, res.Current.Equal(dec("49.5")))
	assert.True(t, balanceOf(t, uow, assetID).Equal(dec("49.5")))

	_, err = svc.ReconcileAsset(ctx, uuid.New(), assetID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Random create/update/delete sequences must leave every asset balance equal
// to the signed sum of the transactions referencing it.
func TestBalanceMatchesLedgerUnderRandomOperations(t *testing.T) {
	ctx := context.Background()
	uow := fixtures.NewMemoryUoW()
	svc := txsvc.New(uow, slog.Default())
	userID := uuid.New()
	assets := []uuid.UUID{
		seedAsset(t, uow, userID, "A"),
		seedAsset(t, uow, userID, "B"),
		seedAsset(t, uow, userID, "C"),
	}
	rng := rand.New(rand.NewPCG(1, 2))
	var live []uuid.UUID

	randomInput := func() dto.TransactionInput {
		var assetID *uuid.UUID
		if rng.IntN(4) > 0 {
			id := assets[rng.IntN(len(assets))]
			assetID = &id
		}
		typ := "income"
		if rng.IntN(2) == 0 {
			typ = "expense"
		}
		amount := decimal.New(int64(rng.IntN(100000)+1), -2)
		return dto.TransactionInput{
			AssetID: assetID, Amount: amount, Type: typ,
			CategoryID: "misc", Date: day,
		}
	}

	for range 300 {
		switch op := rng.IntN(3); {
		case op == 0 || len(live) == 0:
			tx, err := svc.CreateTransaction(ctx, userID, randomInput())
			require.NoError(t, err)
			live = append(live, tx.ID)
		case op == 1:
			_, err := svc.UpdateTransaction(ctx, userID, live[rng.IntN(len(live))], randomInput())
			require.NoError(t, err)
		default:
			i := rng.IntN(len(live))
			require.NoError(t, svc.DeleteTransaction(ctx, userID, live[i]))
			live = append(live[:i], live[i+1:]...)
		}
		for _, a := range assets {
			require.True(t, balanceOf(t, uow, a).Equal(ledgerSum(t, uow, a)))
		}
	}
}

func TestConcurrentCreatesOnSameAsset(t *testing.T) {
	ctx := context.Background()
	uow := fixtures.NewMemoryUoW()
	svc := txsvc.New(uow, slog.Default())
	userID := uuid.New()
	assetID := seedAsset(t, uow, userID, "Shared")

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			typ := "income"
			if i%2 == 0 {
				typ = "expense"
			}
			_, err := svc.CreateTransaction(ctx, userID, input(&assetID, typ, "3"))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.True(t, balanceOf(t, uow, assetID).IsZero())
	assert.True(t, ledgerSum(t, uow, assetID).IsZero())
}

func TestUpdateTransaction_MissingOldAssetIsSkipped(t *testing.T) {
	ctx := context.Background()
	uow := mocks.NewMockUnitOfWork(t)
	txRepo := mocks.NewMockTransactionRepository(t)
	assetRepo := mocks.NewMockAssetRepository(t)
	svc := txsvc.New(uow, slog.Default())

	userID := uuid.New()
	id := uuid.New()
	gone := uuid.New()
	existing := &dto.TransactionRead{
		ID: id, UserID: userID, AssetID: &gone,
		Amount: dec("10"), Type: "expense", CategoryID: "food", Date: day,
	}

	uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(uow)
		},
	).Once()
	uow.EXPECT().TransactionRepository().Return(txRepo, nil).Once()
	uow.EXPECT().AssetRepository().Return(assetRepo, nil).Once()
	txRepo.EXPECT().Get(mock.Anything, id).Return(existing, nil).Once()
	assetRepo.EXPECT().GetForUpdate(mock.Anything, gone).Return(nil, domain.ErrNotFound).Once()
	txRepo.EXPECT().Update(mock.Anything, id, mock.MatchedBy(func(u dto.TransactionUpdate) bool {
		return u.AssetID == nil && u.Type == "income" && u.Amount.Equal(dec("10"))
	})).Return(nil).Once()
	txRepo.EXPECT().Get(mock.Anything, id).Return(existing, nil).Once()

	_, err := svc.UpdateTransaction(ctx, userID, id, input(nil, "income", "10"))
	require.NoError(t, err)
	assetRepo.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateTransaction_AdjustFailureSurfaces(t *testing.T) {
	ctx := context.Background()
	uow := mocks.NewMockUnitOfWork(t)
	txRepo := mocks.NewMockTransactionRepository(t)
	assetRepo := mocks.NewMockAssetRepository(t)
	svc := txsvc.New(uow, slog.Default())
	userID := uuid.New()
	assetID := uuid.New()

	uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(uow)
		},
	).Once()
	uow.EXPECT().TransactionRepository().Return(txRepo, nil).Once()
	uow.EXPECT().AssetRepository().Return(assetRepo, nil).Once()
	assetRepo.EXPECT().GetForUpdate(mock.Anything, assetID).
		Return(&dto.AssetRead{ID: assetID, UserID: userID}, nil).Once()
	txRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	assetRepo.EXPECT().AdjustBalance(mock.Anything, assetID, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(dec("-5"))
	})).
		Return(domain.ErrUnavailable).Once()

	_, err := svc.CreateTransaction(ctx, userID, input(&assetID, "expense", "5"))
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}
