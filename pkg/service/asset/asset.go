package asset

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/amirasaad/expensetracker/pkg/config"
	"github.com/amirasaad/expensetracker/pkg/domain"
	"github.com/amirasaad/expensetracker/pkg/domain/asset"
	"github.com/amirasaad/expensetracker/pkg/dto"
	"github.com/amirasaad/expensetracker/pkg/repository"
	"github.com/google/uuid"
)

// Service manages the asset accounts of a user. Balances are never set here;
// they move only through transactions.
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

// CreateAsset creates an asset with a zero balance.
func (s *Service) CreateAsset(
	ctx context.Context,
	userID uuid.UUID,
	name, typ, icon, color string,
) (out *dto.AssetRead, err error) {
	log := s.logger.With("context", "CreateAsset", "userID", userID)
	t, err := asset.ParseType(typ)
	if err != nil {
		return nil, err
	}
	a, err := asset.New(userID, name, t, icon, color)
	if err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AssetRepository()
		if err != nil {
			return err
		}
		if err := repo.Create(ctx, dto.AssetCreate{
			ID:     a.ID,
			UserID: a.UserID,
			Name:   a.Name,
			Type:   string(a.Type),
			Icon:   a.Icon,
			Color:  a.Color,
		}); err != nil {
			return err
		}
		out, err = repo.Get(ctx, a.ID)
		return err
	})
	if err != nil {
		log.Error("CreateAsset failed", "error", err)
		return nil, err
	}
	log.Info("Asset created", "assetID", out.ID)
	return out, nil
}

// ListAssets returns every asset of userID, oldest first.
func (s *Service) ListAssets(ctx context.Context, userID uuid.UUID) (out []*dto.AssetRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AssetRepository()
		if err != nil {
			return err
		}
		out, err = repo.ListByUser(ctx, userID)
		return err
	})
	if err != nil {
		s.logger.Error("ListAssets failed", "userID", userID, "error", err)
		return nil, err
	}
	return out, nil
}

// GetAsset returns an asset owned by userID.
func (s *Service) GetAsset(ctx context.Context, userID, id uuid.UUID) (out *dto.AssetRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AssetRepository()
		if err != nil {
			return err
		}
		out, err = getOwned(ctx, repo, userID, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateAsset changes name, type, icon or color. Nil fields are left alone.
func (s *Service) UpdateAsset(
	ctx context.Context,
	userID, id uuid.UUID,
	update dto.AssetUpdate,
) (out *dto.AssetRead, err error) {
	log := s.logger.With("context", "UpdateAsset", "userID", userID, "assetID", id)
	if update.Name != nil {
		if err := asset.ValidateName(*update.Name); err != nil {
			return nil, err
		}
		name := strings.TrimSpace(*update.Name)
		update.Name = &name
	}
	if update.Type != nil {
		t, err := asset.ParseType(*update.Type)
		if err != nil {
			return nil, err
		}
		ts := string(t)
		update.Type = &ts
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AssetRepository()
		if err != nil {
			return err
		}
		if _, err := getOwned(ctx, repo, userID, id); err != nil {
			return err
		}
		if err := repo.Update(ctx, id, update); err != nil {
			return err
		}
		out, err = repo.Get(ctx, id)
		return err
	})
	if err != nil {
		log.Error("UpdateAsset failed", "error", err)
		return nil, err
	}
	log.Info("Asset updated")
	return out, nil
}

// DeleteAsset removes an asset that no transaction references.
func (s *Service) DeleteAsset(ctx context.Context, userID, id uuid.UUID) error {
	log := s.logger.With("context", "DeleteAsset", "userID", userID, "assetID", id)
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AssetRepository()
		if err != nil {
			return err
		}
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		if _, err := getOwned(ctx, repo, userID, id); err != nil {
			return err
		}
		n, err := txRepo.CountByAsset(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return asset.ErrAssetInUse
		}
		if err := repo.Delete(ctx, id); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				return asset.ErrAssetInUse
			}
			return err
		}
		return nil
	})
	if err != nil {
		log.Error("DeleteAsset failed", "error", err)
		return err
	}
	log.Info("Asset deleted")
	return nil
}

func getOwned(
	ctx context.Context,
	repo repository.AssetRepository,
	userID, id uuid.UUID,
) (*dto.AssetRead, error) {
	a, err := repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, asset.ErrAssetNotFound
		}
		return nil, err
	}
	if a.UserID != userID {
		return nil, asset.ErrAssetNotFound
	}
	return a, nil
}
