package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User represents a user record in the database.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"uniqueIndex;not null;size:255"`
	Password  string    `gorm:"not null"`
	Nickname  string    `gorm:"not null;size:50"`
	AvatarURL string    `gorm:"column:avatar_url;size:512"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}

// Asset represents an asset account record. Balance is numeric(20,2).
type Asset struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"not null;size:100"`
	Type      string          `gorm:"type:varchar(16);not null"`
	Balance   decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	Icon      string          `gorm:"size:64"`
	Color     string          `gorm:"size:32"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the Asset model.
func (Asset) TableName() string {
	return "assets"
}

// Transaction represents a persisted income or expense entry.
type Transaction struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	AssetID      *uuid.UUID      `gorm:"type:uuid;index"`
	Amount       decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	Type         string          `gorm:"type:varchar(16);not null"`
	CategoryID   string          `gorm:"not null;size:64"`
	CategoryName string          `gorm:"size:100"`
	Note         string          `gorm:"size:500"`
	Date         time.Time       `gorm:"not null;index"`
	CreatedAt    time.Time
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}
