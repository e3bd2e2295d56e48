// Package fixtures holds in-memory test doubles for the persistence layer.
package fixtures

import (
	"context"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/amirasaad/expensetracker/pkg/domain"
	"github.com/amirasaad/expensetracker/pkg/dto"
	"github.com/amirasaad/expensetracker/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type memoryState struct {
	users  map[uuid.UUID]dto.UserRead
	assets map[uuid.UUID]dto.AssetRead
	txs    map[uuid.UUID]dto.TransactionRead
}

func (s *memoryState) clone() *memoryState {
	return &memoryState{
		users:  maps.Clone(s.users),
		assets: maps.Clone(s.assets),
		txs:    maps.Clone(s.txs),
	}
}

// MemoryUoW is a repository.UnitOfWork backed by maps. Do serialises units
// of work and restores the previous state when fn fails, which is enough to
// exercise commit and rollback behaviour of the services.
type MemoryUoW struct {
	mu    *sync.Mutex
	state **memoryState
	inTx  bool
	now   func() time.Time
}

// NewMemoryUoW returns an empty store.
func NewMemoryUoW() *MemoryUoW {
	st := &memoryState{
		users:  map[uuid.UUID]dto.UserRead{},
		assets: map[uuid.UUID]dto.AssetRead{},
		txs:    map[uuid.UUID]dto.TransactionRead{},
	}
	return &MemoryUoW{mu: &sync.Mutex{}, state: &st, now: time.Now}
}

func (u *MemoryUoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if u.inTx {
		return fn(u)
	}
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	snapshot := (*u.state).clone()
	err := fn(&MemoryUoW{mu: u.mu, state: u.state, inTx: true, now: u.now})
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		*u.state = snapshot
		return err
	}
	return nil
}

func (u *MemoryUoW) GetRepository(repoType reflect.Type) (any, error) {
	switch repoType {
	case reflect.TypeOf((*repository.UserRepository)(nil)).Elem():
		return &memoryUserRepo{u}, nil
	case reflect.TypeOf((*repository.AssetRepository)(nil)).Elem():
		return &memoryAssetRepo{u}, nil
	case reflect.TypeOf((*repository.TransactionRepository)(nil)).Elem():
		return &memoryTransactionRepo{u}, nil
	}
	return nil, fmt.Errorf("unsupported repository type: %v", repoType)
}

func (u *MemoryUoW) UserRepository() (repository.UserRepository, error) {
	return &memoryUserRepo{u}, nil
}

func (u *MemoryUoW) AssetRepository() (repository.AssetRepository, error) {
	return &memoryAssetRepo{u}, nil
}

func (u *MemoryUoW) TransactionRepository() (repository.TransactionRepository, error) {
	return &memoryTransactionRepo{u}, nil
}

// with runs f against the current state, locking when called outside Do.
func (u *MemoryUoW) with(f func(st *memoryState) error) error {
	if !u.inTx {
		u.mu.Lock()
		defer u.mu.Unlock()
	}
	return f(*u.state)
}

type memoryUserRepo struct{ u *MemoryUoW }

func (r *memoryUserRepo) Create(_ context.Context, c *dto.UserCreate) error {
	return r.u.with(func(st *memoryState) error {
		for _, existing := range st.users {
			if existing.Email == c.Email {
				return domain.ErrAlreadyExists
			}
		}
		now := r.u.now().UTC()
		st.users[c.ID] = dto.UserRead{
			ID:             c.ID,
			Email:          c.Email,
			HashedPassword: c.Password,
			Nickname:       c.Nickname,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		return nil
	})
}

func (r *memoryUserRepo) Update(_ context.Context, id uuid.UUID, upd *dto.UserUpdate) error {
	return r.u.with(func(st *memoryState) error {
		u, ok := st.users[id]
		if !ok {
			return domain.ErrNotFound
		}
		if upd.Nickname != nil {
			u.Nickname = *upd.Nickname
		}
		if upd.AvatarURL != nil {
			u.AvatarURL = *upd.AvatarURL
		}
		u.UpdatedAt = r.u.now().UTC()
		st.users[id] = u
		return nil
	})
}

func (r *memoryUserRepo) Get(_ context.Context, id uuid.UUID) (out *dto.UserRead, err error) {
	err = r.u.with(func(st *memoryState) error {
		u, ok := st.users[id]
		if !ok {
			return domain.ErrNotFound
		}
		out = &u
		return nil
	})
	return
}

func (r *memoryUserRepo) GetByEmail(_ context.Context, email string) (out *dto.UserRead, err error) {
	err = r.u.with(func(st *memoryState) error {
		for _, u := range st.users {
			if u.Email == email {
				out = &u
				return nil
			}
		}
		return domain.ErrNotFound
	})
	return
}

func (r *memoryUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err == domain.ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

type memoryAssetRepo struct{ u *MemoryUoW }

func (r *memoryAssetRepo) Create(_ context.Context, c dto.AssetCreate) error {
	return r.u.with(func(st *memoryState) error {
		if _, ok := st.assets[c.ID]; ok {
			return domain.ErrAlreadyExists
		}
		now := r.u.now().UTC()
		st.assets[c.ID] = dto.AssetRead{
			ID:        c.ID,
			UserID:    c.UserID,
			Name:      c.Name,
			Type:      c.Type,
			Balance:   decimal.Zero,
			Icon:      c.Icon,
			Color:     c.Color,
			CreatedAt: now,
			UpdatedAt: now,
		}
		return nil
	})
}

func (r *memoryAssetRepo) Update(_ context.Context, id uuid.UUID, upd dto.AssetUpdate) error {
	if upd.IsEmpty() {
		return nil
	}
	return r.u.with(func(st *memoryState) error {
		a, ok := st.assets[id]
		if !ok {
			return domain.ErrNotFound
		}
		if upd.Name != nil {
			a.Name = *upd.Name
		}
		if upd.Type != nil {
			a.Type = *upd.Type
		}
		if upd.Icon != nil {
			a.Icon = *upd.Icon
		}
		if upd.Color != nil {
			a.Color = *upd.Color
		}
		a.UpdatedAt = r.u.now().UTC()
		st.assets[id] = a
		return nil
	})
}

func (r *memoryAssetRepo) Get(_ context.Context, id uuid.UUID) (out *dto.AssetRead, err error) {
	err = r.u.with(func(st *memoryState) error {
		a, ok := st.assets[id]
		if !ok {
			return domain.ErrNotFound
		}
		out = &a
		return nil
	})
	return
}

func (r *memoryAssetRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*dto.AssetRead, error) {
	return r.Get(ctx, id)
}

func (r *memoryAssetRepo) ListByUser(_ context.Context, userID uuid.UUID) (out []*dto.AssetRead, err error) {
	err = r.u.with(func(st *memoryState) error {
		out = []*dto.AssetRead{}
		for _, a := range st.assets {
			if a.UserID == userID {
				out = append(out, &a)
			}
		}
		slices.SortFunc(out, func(a, b *dto.AssetRead) int {
			if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
				return c
			}
			return strings.Compare(a.ID.String(), b.ID.String())
		})
		return nil
	})
	return
}

func (r *memoryAssetRepo) AdjustBalance(_ context.Context, id uuid.UUID, delta decimal.Decimal) error {
	return r.u.with(func(st *memoryState) error {
		a, ok := st.assets[id]
		if !ok {
			return domain.ErrNotFound
		}
		a.Balance = a.Balance.Add(delta)
		st.assets[id] = a
		return nil
	})
}

func (r *memoryAssetRepo) SetBalance(_ context.Context, id uuid.UUID, balance decimal.Decimal) error {
	return r.u.with(func(st *memoryState) error {
		a, ok := st.assets[id]
		if !ok {
			return domain.ErrNotFound
		}
		a.Balance = balance
		st.assets[id] = a
		return nil
	})
}

func (r *memoryAssetRepo) SumBalances(_ context.Context, userID uuid.UUID) (total decimal.Decimal, err error) {
	err = r.u.with(func(st *memoryState) error {
		for _, a := range st.assets {
			if a.UserID == userID {
				total = total.Add(a.Balance)
			}
		}
		return nil
	})
	return
}

func (r *memoryAssetRepo) Delete(_ context.Context, id uuid.UUID) error {
	return r.u.with(func(st *memoryState) error {
		if _, ok := st.assets[id]; !ok {
			return domain.ErrNotFound
		}
		for _, tx := range st.txs {
			if tx.AssetID != nil && *tx.AssetID == id {
				return domain.ErrConflict
			}
		}
		delete(st.assets, id)
		return nil
	})
}

type memoryTransactionRepo struct{ u *MemoryUoW }

func (r *memoryTransactionRepo) Create(_ context.Context, c dto.TransactionCreate) error {
	return r.u.with(func(st *memoryState) error {
		if _, ok := st.txs[c.ID]; ok {
			return domain.ErrAlreadyExists
		}
		st.txs[c.ID] = dto.TransactionRead{
			ID:           c.ID,
			UserID:       c.UserID,
			AssetID:      c.AssetID,
			Amount:       c.Amount,
			Type:         c.Type,
			CategoryID:   c.CategoryID,
			CategoryName: c.CategoryName,
			Note:         c.Note,
			Date:         c.Date,
			CreatedAt:    r.u.now().UTC(),
		}
		return nil
	})
}

func (r *memoryTransactionRepo) Update(_ context.Context, id uuid.UUID, upd dto.TransactionUpdate) error {
	return r.u.with(func(st *memoryState) error {
		tx, ok := st.txs[id]
		if !ok {
			return domain.ErrNotFound
		}
		tx.AssetID = upd.AssetID
		tx.Amount = upd.Amount
		tx.Type = upd.Type
		tx.CategoryID = upd.CategoryID
		tx.CategoryName = upd.CategoryName
		tx.Note = upd.Note
		tx.Date = upd.Date
		st.txs[id] = tx
		return nil
	})
}

func (r *memoryTransactionRepo) Get(_ context.Context, id uuid.UUID) (out *dto.TransactionRead, err error) {
	err = r.u.with(func(st *memoryState) error {
		tx, ok := st.txs[id]
		if !ok {
			return domain.ErrNotFound
		}
		out = &tx
		return nil
	})
	return
}

func (r *memoryTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	return r.u.with(func(st *memoryState) error {
		if _, ok := st.txs[id]; !ok {
			return domain.ErrNotFound
		}
		delete(st.txs, id)
		return nil
	})
}

func (r *memoryTransactionRepo) ListByUser(
	_ context.Context,
	userID uuid.UUID,
	limit int,
) (out []*dto.TransactionRead, err error) {
	err = r.u.with(func(st *memoryState) error {
		out = []*dto.TransactionRead{}
		for _, tx := range st.txs {
			if tx.UserID == userID {
				out = append(out, &tx)
			}
		}
		slices.SortFunc(out, func(a, b *dto.TransactionRead) int {
			if c := b.Date.Compare(a.Date); c != 0 {
				return c
			}
			return b.CreatedAt.Compare(a.CreatedAt)
		})
		if limit > 0 && len(out) > limit {
			out = out[:limit]
		}
		return nil
	})
	return
}

func (r *memoryTransactionRepo) SumByTypeSince(
	_ context.Context,
	userID uuid.UUID,
	since time.Time,
) (totals dto.TypeTotals, err error) {
	err = r.u.with(func(st *memoryState) error {
		for _, tx := range st.txs {
			if tx.UserID != userID || tx.Date.Before(since) {
				continue
			}
			switch tx.Type {
			case "income":
				totals.Income = totals.Income.Add(tx.Amount)
			case "expense":
				totals.Expense = totals.Expense.Add(tx.Amount)
			}
		}
		return nil
	})
	return
}

func (r *memoryTransactionRepo) CategoryTotals(
	_ context.Context,
	userID uuid.UUID,
	txType string,
	start, end time.Time,
) (out []dto.CategoryTotal, err error) {
	err = r.u.with(func(st *memoryState) error {
		type key struct{ id, name string }
		sums := map[key]decimal.Decimal{}
		for _, tx := range st.txs {
			if tx.UserID != userID || tx.Type != txType {
				continue
			}
			if tx.Date.Before(start) || !tx.Date.Before(end) {
				continue
			}
			k := key{tx.CategoryID, tx.CategoryName}
			sums[k] = sums[k].Add(tx.Amount)
		}
		out = make([]dto.CategoryTotal, 0, len(sums))
		for k, v := range sums {
			out = append(out, dto.CategoryTotal{CategoryID: k.id, CategoryName: k.name, Amount: v})
		}
		slices.SortFunc(out, func(a, b dto.CategoryTotal) int {
			if c := b.Amount.Cmp(a.Amount); c != 0 {
				return c
			}
			return strings.Compare(a.CategoryID, b.CategoryID)
		})
		return nil
	})
	return
}

func (r *memoryTransactionRepo) CountByAsset(_ context.Context, assetID uuid.UUID) (n int64, err error) {
	err = r.u.with(func(st *memoryState) error {
		for _, tx := range st.txs {
			if tx.AssetID != nil && *tx.AssetID == assetID {
				n++
			}
		}
		return nil
	})
	return
}

func (r *memoryTransactionRepo) SumEffectByAsset(_ context.Context, assetID uuid.UUID) (sum decimal.Decimal, err error) {
	err = r.u.with(func(st *memoryState) error {
		for _, tx := range st.txs {
			if tx.AssetID == nil || *tx.AssetID != assetID {
				continue
			}
			if tx.Type == "income" {
				sum = sum.Add(tx.Amount)
			} else {
				sum = sum.Sub(tx.Amount)
			}
		}
		return nil
	})
	return
}

var _ repository.UnitOfWork = (*MemoryUoW)(nil)
