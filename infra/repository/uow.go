package repository

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/amirasaad/expensetracker/pkg/domain"
	"github.com/amirasaad/expensetracker/pkg/repository"
	"gorm.io/gorm"
)

// DefaultTimeout bounds a unit of work when no timeout is configured.
const DefaultTimeout = 5 * time.Second

// UoW provides transaction boundary and repository access in one abstraction.
// Repositories handed out inside Do share the gorm transaction.
type UoW struct {
	db           *gorm.DB
	tx           *gorm.DB
	timeout      time.Duration
	repoRegistry map[reflect.Type]func(*gorm.DB) any
}

// Option configures a UoW.
type Option func(*UoW)

// WithTimeout sets the deadline applied to each Do call.
func WithTimeout(d time.Duration) Option {
	return func(u *UoW) {
		if d > 0 {
			u.timeout = d
		}
	}
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB, opts ...Option) *UoW {
	u := &UoW{
		db:      db,
		timeout: DefaultTimeout,
		repoRegistry: map[reflect.Type]func(*gorm.DB) any{
			reflect.TypeOf((*repository.UserRepository)(nil)).Elem():        func(db *gorm.DB) any { return NewUserRepository(db) },
			reflect.TypeOf((*repository.AssetRepository)(nil)).Elem():       func(db *gorm.DB) any { return NewAssetRepository(db) },
			reflect.TypeOf((*repository.TransactionRepository)(nil)).Elem(): func(db *gorm.DB) any { return NewTransactionRepository(db) },
		},
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Do runs fn inside one database transaction bounded by the configured
// timeout. A nested Do joins the outer transaction. Expired deadlines are
// reported as domain.ErrUnavailable; a cancelled ctx rolls back and returns
// the cancellation error.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if u.tx != nil {
		return fn(u)
	}

	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txnUow := &UoW{db: u.db, tx: tx, timeout: u.timeout, repoRegistry: u.repoRegistry}
		return fn(txnUow)
	})
	if err == nil {
		return nil
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) && !errors.Is(err, domain.ErrUnavailable) {
		return fmt.Errorf("%w: unit of work exceeded %s: %v", domain.ErrUnavailable, u.timeout, err)
	}
	return MapGormErrorToDomain(err)
}

// GetRepository provides generic, type-safe access to repositories using the
// transaction session, or the root session outside Do.
func (u *UoW) GetRepository(repoType reflect.Type) (any, error) {
	constructor, ok := u.repoRegistry[repoType]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %v", repoType)
	}
	return constructor(u.session()), nil
}

func (u *UoW) UserRepository() (repository.UserRepository, error) {
	return NewUserRepository(u.session()), nil
}

func (u *UoW) AssetRepository() (repository.AssetRepository, error) {
	return NewAssetRepository(u.session()), nil
}

func (u *UoW) TransactionRepository() (repository.TransactionRepository, error) {
	return NewTransactionRepository(u.session()), nil
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// withContext binds ctx to db. A session opened by Do already carries the
// unit's deadline, derived from the ctx given to Do, and keeps it.
func withContext(db *gorm.DB, ctx context.Context) *gorm.DB {
	if db.Statement != nil && db.Statement.Context != nil {
		if _, ok := db.Statement.Context.Deadline(); ok {
			return db
		}
	}
	return db.WithContext(ctx)
}

var _ repository.UnitOfWork = (*UoW)(nil)
