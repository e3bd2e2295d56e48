package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionCreate is a DTO for persisting a new transaction.
type TransactionCreate struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	AssetID      *uuid.UUID
	Amount       decimal.Decimal
	Type         string
	CategoryID   string
	CategoryName string
	Note         string
	Date         time.Time
}

// TransactionUpdate carries the full set of overwritable transaction fields.
// ID, UserID and CreatedAt are never written by an update.
type TransactionUpdate struct {
	AssetID      *uuid.UUID
	Amount       decimal.Decimal
	Type         string
	CategoryID   string
	CategoryName string
	Note         string
	Date         time.Time
}

// TransactionRead is a read-optimized DTO for transaction queries and API responses.
type TransactionRead struct {
	ID           uuid.UUID       `json:"id"`
	UserID       uuid.UUID       `json:"userId"`
	AssetID      *uuid.UUID      `json:"assetId"`
	Amount       decimal.Decimal `json:"amount"`
	Type         string          `json:"type"`
	CategoryID   string          `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Note         string          `json:"note"`
	Date         time.Time       `json:"date"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// TransactionInput is the caller-supplied part of a create or update.
type TransactionInput struct {
	AssetID      *uuid.UUID
	Amount       decimal.Decimal
	Type         string
	CategoryID   string
	CategoryName string
	Note         string
	Date         time.Time
}
