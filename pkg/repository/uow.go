package repository

import (
	"context"
	"reflect"
)

// UnitOfWork defines the contract for transactional work and type-safe repository access.
//
// Repositories obtained inside Do share the transaction, so every write made
// in fn commits or rolls back together.
//
//	repoAny, err := uow.GetRepository(reflect.TypeOf((*AssetRepository)(nil)).Elem())
//	repo := repoAny.(AssetRepository)
type UnitOfWork interface {
	// Do executes the given function within a transaction boundary.
	// If the function returns an error, or ctx ends first, the transaction
	// is rolled back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// GetRepository returns a repository of the requested type, bound to the current transaction/session.
	GetRepository(repoType reflect.Type) (any, error)

	UserRepository() (UserRepository, error)
	AssetRepository() (AssetRepository, error)
	TransactionRepository() (TransactionRepository, error)
}
