// Package transaction provides the ledger operations on income and expense
// records. Every write keeps the cached balance of the linked asset equal to
// the signed sum of the transactions that reference it: each operation runs
// in a single unit of work, locks the affected asset rows, and moves the
// balance by exactly the effect it adds or removes.
package transaction

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/amirasaad/expensetracker/pkg/config"
	"github.com/amirasaad/expensetracker/pkg/domain"
	"github.com/amirasaad/expensetracker/pkg/domain/asset"
	"github.com/amirasaad/expensetracker/pkg/domain/transaction"
	"github.com/amirasaad/expensetracker/pkg/dto"
	"github.com/amirasaad/expensetracker/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// Service implements create, update and delete of transactions together with
// the matching asset balance adjustments.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewService creates a new Service with the provided dependencies.
func NewService(deps config.Deps) *Service {
	return New(deps.Uow, deps.Logger)
}

func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// ReconcileResult reports the cached balance before and after a reconcile.
type ReconcileResult struct {
	AssetID  uuid.UUID       `json:"assetId"`
	Previous decimal.Decimal `json:"previous"`
	Current  decimal.Decimal `json:"current"`
}

// Changed reports whether the reconcile corrected the cached balance.
func (r *ReconcileResult) Changed() bool {
	return !r.Previous.Equal(r.Current)
}

// CreateTransaction records a new transaction for userID and applies its
// effect to the linked asset, if any.
func (s *Service) CreateTransaction(
	ctx context.Context,
	userID uuid.UUID,
	in dto.TransactionInput,
) (out *dto.TransactionRead, err error) {
	log := s.logger.With("context", "CreateTransaction", "userID", userID)
	typ, err := transaction.ParseType(in.Type)
	if err != nil {
		return nil, err
	}
	tx, err := transaction.New(
		userID, in.AssetID, typ, in.Amount,
		in.CategoryID, in.CategoryName, in.Note, in.Date,
	)
	if err != nil {
		log.Warn("Invalid transaction", "error", err)
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		assetRepo, err := uow.AssetRepository()
		if err != nil {
			return err
		}

		if tx.HasAsset() {
			locked, err := lockAssets(ctx, assetRepo, *tx.AssetID)
			if err != nil {
				return err
			}
			if !ownedAsset(locked, *tx.AssetID, userID) {
				return transaction.ErrInvalidAsset
			}
		}

		if err := txRepo.Create(ctx, dto.TransactionCreate{
			ID:           tx.ID,
			UserID:       tx.UserID,
			AssetID:      tx.AssetID,
			Amount:       tx.Amount,
			Type:         string(tx.Type),
			CategoryID:   tx.CategoryID,
			CategoryName: tx.CategoryName,
			Note:         tx.Note,
			Date:         tx.Date,
		}); err != nil {
			return err
		}
		if tx.HasAsset() {
			if err := assetRepo.AdjustBalance(ctx, *tx.AssetID, tx.Effect()); err != nil {
				return err
			}
		}
		out, err = txRepo.Get(ctx, tx.ID)
		return err
	})
	if err != nil {
		log.Error("CreateTransaction failed", "error", err)
		return nil, err
	}
	log.Info("Transaction created", "transactionID", out.ID, "assetID", out.AssetID)
	return out, nil
}

// UpdateTransaction overwrites the transaction's fields. The old effect is
// reversed on the old asset and the new effect applied on the new asset in
// the same unit of work. A missing old asset is skipped.
func (s *Service) UpdateTransaction(
	ctx context.Context,
	userID, id uuid.UUID,
	in dto.TransactionInput,
) (out *dto.TransactionRead, err error) {
	log := s.logger.With("context", "UpdateTransaction", "userID", userID, "transactionID", id)
	typ, err := transaction.ParseType(in.Type)
	if err != nil {
		return nil, err
	}
	next, err := transaction.New(
		userID, in.AssetID, typ, in.Amount,
		in.CategoryID, in.CategoryName, in.Note, in.Date,
	)
	if err != nil {
		log.Warn("Invalid transaction", "error", err)
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		assetRepo, err := uow.AssetRepository()
		if err != nil {
			return err
		}

		old, err := getOwned(ctx, txRepo, userID, id)
		if err != nil {
			return err
		}

		var ids []uuid.UUID
		if hasAsset(old.AssetID) {
			ids = append(ids, *old.AssetID)
		}
		if next.HasAsset() {
			ids = append(ids, *next.AssetID)
		}
		locked, err := lockAssets(ctx, assetRepo, ids...)
		if err != nil {
			return err
		}
		if next.HasAsset() && !ownedAsset(locked, *next.AssetID, userID) {
			return transaction.ErrInvalidAsset
		}

		if hasAsset(old.AssetID) && ownedAsset(locked, *old.AssetID, userID) {
			reversal := effectOf(old).Neg()
			if err := assetRepo.AdjustBalance(ctx, *old.AssetID, reversal); err != nil {
				return err
			}
		}

		if err := txRepo.Update(ctx, id, dto.TransactionUpdate{
			AssetID:      next.AssetID,
			Amount:       next.Amount,
			Type:         string(next.Type),
			CategoryID:   next.CategoryID,
			CategoryName: next.CategoryName,
			Note:         next.Note,
			Date:         next.Date,
		}); err != nil {
			return err
		}

		if next.HasAsset() {
			if err := assetRepo.AdjustBalance(ctx, *next.AssetID, next.Effect()); err != nil {
				return err
			}
		}
		out, err = txRepo.Get(ctx, id)
		return err
	})
	if err != nil {
		log.Error("UpdateTransaction failed", "error", err)
		return nil, err
	}
	log.Info("Transaction updated")
	return out, nil
}

// DeleteTransaction removes the transaction and reverses its effect.
func (s *Service) DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error {
	log := s.logger.With("context", "DeleteTransaction", "userID", userID, "transactionID", id)
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		assetRepo, err := uow.AssetRepository()
		if err != nil {
			return err
		}

		old, err := getOwned(ctx, txRepo, userID, id)
		if err != nil {
			return err
		}
		if hasAsset(old.AssetID) {
			locked, err := lockAssets(ctx, assetRepo, *old.AssetID)
			if err != nil {
				return err
			}
			if ownedAsset(locked, *old.AssetID, userID) {
				if err := assetRepo.AdjustBalance(ctx, *old.AssetID, effectOf(old).Neg()); err != nil {
					return err
				}
			}
		}
		if err := txRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return transaction.ErrTransactionNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		log.Error("DeleteTransaction failed", "error", err)
		return err
	}
	log.Info("Transaction deleted")
	return nil
}

// GetTransaction returns one transaction owned by userID.
func (s *Service) GetTransaction(
	ctx context.Context,
	userID, id uuid.UUID,
) (out *dto.TransactionRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		out, err = getOwned(ctx, txRepo, userID, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListTransactions returns the user's transactions, newest business date
// first. limit is clamped to [1, MaxListLimit]; zero selects the default.
func (s *Service) ListTransactions(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
) (out []*dto.TransactionRead, err error) {
	limit = clampLimit(limit)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		out, err = txRepo.ListByUser(ctx, userID, limit)
		return err
	})
	if err != nil {
		s.logger.Error("ListTransactions failed", "userID", userID, "error", err)
		return nil, err
	}
	return out, nil
}

// ReconcileAsset recomputes the asset balance from its transactions and
// overwrites the cached value when they disagree.
func (s *Service) ReconcileAsset(
	ctx context.Context,
	userID, assetID uuid.UUID,
) (res *ReconcileResult, err error) {
	log := s.logger.With("context", "ReconcileAsset", "userID", userID, "assetID", assetID)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		assetRepo, err := uow.AssetRepository()
		if err != nil {
			return err
		}
		locked, err := lockAssets(ctx, assetRepo, assetID)
		if err != nil {
			return err
		}
		if !ownedAsset(locked, assetID, userID) {
			return asset.ErrAssetNotFound
		}
		sum, err := txRepo.SumEffectByAsset(ctx, assetID)
		if err != nil {
			return err
		}
		res = &ReconcileResult{
			AssetID:  assetID,
			Previous: locked[assetID].Balance,
			Current:  sum,
		}
		if res.Changed() {
			return assetRepo.SetBalance(ctx, assetID, sum)
		}
		return nil
	})
	if err != nil {
		log.Error("ReconcileAsset failed", "error", err)
		return nil, err
	}
	if res.Changed() {
		log.Warn("Asset balance corrected", "previous", res.Previous, "current", res.Current)
	}
	return res, nil
}

func getOwned(
	ctx context.Context,
	repo repository.TransactionRepository,
	userID, id uuid.UUID,
) (*dto.TransactionRead, error) {
	tx, err := repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, transaction.ErrTransactionNotFound
		}
		return nil, err
	}
	if tx.UserID != userID {
		return nil, transaction.ErrTransactionNotFound
	}
	return tx, nil
}

// lockAssets takes row locks on ids in a fixed order so two requests touching
// the same pair of assets cannot deadlock. Missing assets are left out of the
// result.
func lockAssets(
	ctx context.Context,
	repo repository.AssetRepository,
	ids ...uuid.UUID,
) (map[uuid.UUID]*dto.AssetRead, error) {
	ids = slices.Clone(ids)
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })
	ids = slices.Compact(ids)

	locked := make(map[uuid.UUID]*dto.AssetRead, len(ids))
	for _, id := range ids {
		a, err := repo.GetForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("lock asset %s: %w", id, err)
		}
		locked[id] = a
	}
	return locked, nil
}

func ownedAsset(locked map[uuid.UUID]*dto.AssetRead, id, userID uuid.UUID) bool {
	a, ok := locked[id]
	return ok && a.UserID == userID
}

func hasAsset(id *uuid.UUID) bool {
	return id != nil && *id != uuid.Nil
}

func effectOf(tx *dto.TransactionRead) decimal.Decimal {
	return transaction.Effect(transaction.Type(tx.Type), tx.Amount)
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	}
	return limit
}
