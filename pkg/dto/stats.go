package dto

import (
	"github.com/shopspring/decimal"
)

// TypeTotals holds income and expense sums over a window.
type TypeTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// CategoryTotal is one (categoryId, categoryName) group of a breakdown query.
type CategoryTotal struct {
	CategoryID   string
	CategoryName string
	Amount       decimal.Decimal
}
