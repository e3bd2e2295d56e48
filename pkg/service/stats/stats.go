// Package stats computes the month-to-date summary and per-category
// breakdowns shown on the dashboard.
package stats

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/amirasaad/expensetracker/pkg/config"
	"github.com/amirasaad/expensetracker/pkg/domain"
	"github.com/amirasaad/expensetracker/pkg/domain/transaction"
	"github.com/amirasaad/expensetracker/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Period selects the width of a breakdown window.
type Period string

const (
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

var (
	ErrInvalidPeriod = fmt.Errorf("period must be month or year: %w", domain.ErrValidation)
	ErrInvalidMonth  = fmt.Errorf("month must be between 1 and 12: %w", domain.ErrValidation)
	ErrInvalidYear   = fmt.Errorf("year out of range: %w", domain.ErrValidation)
)

var (
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)
)

// Summary is the month-to-date view of a user's money.
type Summary struct {
	Balance        decimal.Decimal `json:"balance"`
	MonthlyIncome  decimal.Decimal `json:"monthlyIncome"`
	MonthlyExpense decimal.Decimal `json:"monthlyExpense"`
}

// CategoryShare is one row of a breakdown.
type CategoryShare struct {
	CategoryID   string          `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Amount       decimal.Decimal `json:"amount"`
	Percentage   int64           `json:"percentage"`
}

// Breakdown groups one transaction type over a window by category.
type Breakdown struct {
	Type       string          `json:"type"`
	Period     Period          `json:"period"`
	Start      time.Time       `json:"start"`
	End        time.Time       `json:"end"`
	Total      decimal.Decimal `json:"total"`
	Categories []CategoryShare `json:"categories"`
}

type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new Service with the provided dependencies.
func NewService(deps config.Deps) *Service {
	return New(deps.Uow, deps.Logger)
}

func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger, now: time.Now}
}

// ParsePeriod normalises s. An empty string selects PeriodMonth.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PeriodMonth, nil
	case PeriodMonth, PeriodYear:
		return p, nil
	}
	return "", ErrInvalidPeriod
}

// Window returns the half-open UTC range [start, end) covered by period.
// month is ignored for PeriodYear.
func Window(period Period, year, month int) (start, end time.Time, err error) {
	if year < 1 || year > 9999 {
		return time.Time{}, time.Time{}, ErrInvalidYear
	}
	switch period {
	case PeriodMonth:
		if month < 1 || month > 12 {
			return time.Time{}, time.Time{}, ErrInvalidMonth
		}
		start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, 0), nil
	case PeriodYear:
		start = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(1, 0, 0), nil
	}
	return time.Time{}, time.Time{}, ErrInvalidPeriod
}

// Percentages turns category totals into whole percentages of their sum,
// rounded half away from zero. An empty or zero total yields zeros.
func Percentages(amounts []decimal.Decimal) []int64 {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	out := make([]int64, len(amounts))
	if total.IsZero() {
		return out
	}
	for i, a := range amounts {
		out[i] = roundedShare(a, total)
	}
	return out
}

// roundedShare is a*100/total rounded half away from zero, computed from the
// exact quotient and remainder.
func roundedShare(a, total decimal.Decimal) int64 {
	p := a.Mul(hundred)
	q, r := p.QuoRem(total, 0)
	if r.Abs().Mul(two).GreaterThanOrEqual(total.Abs()) {
		if p.Sign()*total.Sign() < 0 {
			q = q.Sub(decimal.NewFromInt(1))
		} else {
			q = q.Add(decimal.NewFromInt(1))
		}
	}
	return q.IntPart()
}

// MonthToDateSummary sums income and expense dated on or after the first day
// of now's month, and the balance over every asset of userID.
func (s *Service) MonthToDateSummary(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
) (sum *Summary, err error) {
	now = now.UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		assetRepo, err := uow.AssetRepository()
		if err != nil {
			return err
		}
		totals, err := txRepo.SumByTypeSince(ctx, userID, monthStart)
		if err != nil {
			return err
		}
		balance, err := assetRepo.SumBalances(ctx, userID)
		if err != nil {
			return err
		}
		sum = &Summary{
			Balance:        balance,
			MonthlyIncome:  totals.Income,
			MonthlyExpense: totals.Expense,
		}
		return nil
	})
	if err != nil {
		s.logger.Error("MonthToDateSummary failed", "userID", userID, "error", err)
		return nil, err
	}
	return sum, nil
}

// CurrentSummary is MonthToDateSummary at the current time.
func (s *Service) CurrentSummary(ctx context.Context, userID uuid.UUID) (*Summary, error) {
	return s.MonthToDateSummary(ctx, userID, s.now())
}

// PeriodCategoryBreakdown groups transactions of typ dated in [start, end)
// by category, largest amount first.
func (s *Service) PeriodCategoryBreakdown(
	ctx context.Context,
	userID uuid.UUID,
	typ transaction.Type,
	start, end time.Time,
) (shares []CategoryShare, err error) {
	if !typ.Valid() {
		return nil, transaction.ErrInvalidType
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		totals, err := txRepo.CategoryTotals(ctx, userID, string(typ), start.UTC(), end.UTC())
		if err != nil {
			return err
		}
		amounts := make([]decimal.Decimal, len(totals))
		for i, t := range totals {
			amounts[i] = t.Amount
		}
		pct := Percentages(amounts)
		shares = make([]CategoryShare, len(totals))
		for i, t := range totals {
			shares[i] = CategoryShare{
				CategoryID:   t.CategoryID,
				CategoryName: t.CategoryName,
				Amount:       t.Amount,
				Percentage:   pct[i],
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("PeriodCategoryBreakdown failed", "userID", userID, "error", err)
		return nil, err
	}
	return shares, nil
}

// CategoryBreakdown resolves the window for period/year/month and returns
// the breakdown with its total. Zero year or month default to the current
// ones.
func (s *Service) CategoryBreakdown(
	ctx context.Context,
	userID uuid.UUID,
	typ string,
	period string,
	year, month int,
) (*Breakdown, error) {
	t := transaction.TypeExpense
	if strings.TrimSpace(typ) != "" {
		parsed, err := transaction.ParseType(typ)
		if err != nil {
			return nil, err
		}
		t = parsed
	}
	p, err := ParsePeriod(period)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	start, end, err := Window(p, year, month)
	if err != nil {
		return nil, err
	}
	shares, err := s.PeriodCategoryBreakdown(ctx, userID, t, start, end)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, c := range shares {
		total = total.Add(c.Amount)
	}
	return &Breakdown{
		Type:       string(t),
		Period:     p,
		Start:      start,
		End:        end,
		Total:      total,
		Categories: shares,
	}, nil
}
