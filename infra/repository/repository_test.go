package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/expensetracker/pkg/domain"
	"github.com/amirasaad/expensetracker/pkg/dto"
	"github.com/amirasaad/expensetracker/pkg/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetRepository_GetForUpdateLocksRow(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUoW(db)
	id := uuid.New()
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "assets" WHERE id = \$1 (.+) FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "type", "balance"}).
			AddRow(id.String(), userID.String(), "Wallet", "cash", "12.50"))
	mock.ExpectExec(`UPDATE "assets" SET "balance"=balance \+ \$1(.*) WHERE id = \$\d`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := uow.Do(context.Background(), func(tx repository.UnitOfWork) error {
		repo, _ := tx.AssetRepository()
		a, err := repo.GetForUpdate(context.Background(), id)
		require.NoError(t, err)
		assert.True(t, a.Balance.Equal(decimal.RequireFromString("12.5")))
		return repo.AdjustBalance(context.Background(), id, decimal.NewFromInt(-5))
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssetRepository_GetNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAssetRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "assets" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAssetRepository_AdjustBalanceMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAssetRepository(db)

	mock.ExpectExec(`UPDATE "assets" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.AdjustBalance(context.Background(), uuid.New(), decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAssetRepository_AdjustBalanceOverflow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAssetRepository(db)

	mock.ExpectExec(`UPDATE "assets" SET`).
		WillReturnError(&pgconn.PgError{Code: "22003", Message: "numeric field overflow"})

	err := repo.AdjustBalance(context.Background(), uuid.New(), decimal.RequireFromString("999999999999999999"))
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssetRepository_UpdateSkipsEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAssetRepository(db)

	require.NoError(t, repo.Update(context.Background(), uuid.New(), dto.AssetUpdate{}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssetRepository_SumBalances(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAssetRepository(db)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(balance\), 0\) AS total FROM "assets" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow("99.10"))

	total, err := repo.SumBalances(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("99.1")))
}

func TestTransactionRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)
	assetID := uuid.New()

	create := dto.TransactionCreate{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		AssetID:    &assetID,
		Amount:     decimal.RequireFromString("50"),
		Type:       "expense",
		CategoryID: "food",
		Date:       time.Now().UTC(),
	}

	mock.ExpectExec(`INSERT INTO "transactions" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, repo.Create(context.Background(), create))

	mock.ExpectExec(`INSERT INTO "transactions" (.+) VALUES (.+)`).
		WillReturnError(errors.New("create error"))
	assert.Error(t, repo.Create(context.Background(), create))
}

func TestTransactionRepository_CategoryTotals(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)
	start := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	mock.ExpectQuery(
		`SELECT category_id, category_name, SUM\(amount\) AS amount FROM "transactions" ` +
			`WHERE user_id = \$1 AND type = \$2 AND date >= \$3 AND date < \$4 ` +
			`GROUP BY category_id, category_name ORDER BY amount DESC, category_id ASC`).
		WithArgs(sqlmock.AnyArg(), "expense", start, end).
		WillReturnRows(sqlmock.NewRows([]string{"category_id", "category_name", "amount"}).
			AddRow("rent", "Rent", "60").
			AddRow("food", "Food", "40"))

	totals, err := repo.CategoryTotals(context.Background(), uuid.New(), "expense", start, end)
	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, "rent", totals[0].CategoryID)
	assert.True(t, totals[1].Amount.Equal(decimal.NewFromInt(40)))
}

func TestTransactionRepository_SumByTypeSince(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)

	mock.ExpectQuery(`SELECT type, COALESCE\(SUM\(amount\), 0\) AS total FROM "transactions" WHERE (.+) GROUP BY "type"`).
		WillReturnRows(sqlmock.NewRows([]string{"type", "total"}).
			AddRow("income", "1000").
			AddRow("expense", "250.75"))

	totals, err := repo.SumByTypeSince(context.Background(), uuid.New(), time.Now())
	require.NoError(t, err)
	assert.True(t, totals.Income.Equal(decimal.NewFromInt(1000)))
	assert.True(t, totals.Expense.Equal(decimal.RequireFromString("250.75")))
}

func TestTransactionRepository_UpdateWritesWhitelistedColumns(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)
	id := uuid.New()

	mock.ExpectExec(`UPDATE "transactions" SET "amount"=\$1,"asset_id"=\$2,"category_id"=\$3,"category_name"=\$4,"date"=\$5,"note"=\$6,"type"=\$7 WHERE id = \$8`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), id, dto.TransactionUpdate{
		Amount:     decimal.NewFromInt(30),
		Type:       "income",
		CategoryID: "salary",
		Date:       time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_DeleteMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)

	mock.ExpectExec(`DELETE FROM "transactions" WHERE id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "nickname"}).
			AddRow(id.String(), "alice@example.com", "hash", "Alice"))

	u, err := repo.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, "hash", u.HashedPassword)
}
