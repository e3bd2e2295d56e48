package transaction

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/amirasaad/expensetracker/pkg/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// Date is a business date. It accepts RFC 3339 timestamps as well as the
// bare date and local timestamp forms older clients send; the latter two are
// read as UTC.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", s)
}

// TransactionInput is the request body of POST and PUT /transactions.
// A PUT replaces every field.
type TransactionInput struct {
	AssetID      *uuid.UUID      `json:"assetId"`
	Amount       decimal.Decimal `json:"amount"`
	Type         string          `json:"type" validate:"required,oneof=income expense"`
	CategoryID   string          `json:"categoryId" validate:"required,max=64"`
	CategoryName string          `json:"categoryName" validate:"max=64"`
	Note         string          `json:"note" validate:"max=500"`
	Date         Date            `json:"date"`
}

func (in TransactionInput) toInput() dto.TransactionInput {
	return dto.TransactionInput{
		AssetID:      in.AssetID,
		Amount:       in.Amount,
		Type:         in.Type,
		CategoryID:   in.CategoryID,
		CategoryName: in.CategoryName,
		Note:         in.Note,
		Date:         in.Date.Time,
	}
}
