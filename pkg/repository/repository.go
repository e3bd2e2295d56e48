package repository

import (
	"github.com/amirasaad/expensetracker/pkg/repository/asset"
	"github.com/amirasaad/expensetracker/pkg/repository/transaction"
	"github.com/amirasaad/expensetracker/pkg/repository/user"
)

// UserRepository is the user store bound to a unit of work.
type UserRepository = user.Repository

// AssetRepository is the asset store bound to a unit of work.
type AssetRepository = asset.Repository

// TransactionRepository is the transaction store bound to a unit of work.
type TransactionRepository = transaction.Repository
