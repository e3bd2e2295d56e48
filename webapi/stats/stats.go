package stats

import (
	"strconv"

	"github.com/amirasaad/expensetracker/pkg/config"
	"github.com/amirasaad/expensetracker/pkg/middleware"
	authsvc "github.com/amirasaad/expensetracker/pkg/service/auth"
	statssvc "github.com/amirasaad/expensetracker/pkg/service/stats"
	"github.com/amirasaad/expensetracker/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LegacyCategoryStats is the shape older clients read from /stats/category.
type LegacyCategoryStats struct {
	TotalExpense decimal.Decimal          `json:"totalExpense"`
	Details      []statssvc.CategoryShare `json:"details"`
}

func Routes(app *fiber.App, statsSvc *statssvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	protected := middleware.JwtProtected(cfg.Auth.Jwt)
	app.Get("/users/stats", protected, Summary(statsSvc, authSvc))
	app.Get("/transactions/stats/category", protected, CategoryBreakdown(statsSvc, authSvc))
	app.Get("/stats/category", protected, LegacyCategoryBreakdown(statsSvc, authSvc))
}

// Summary returns the month-to-date income, expense and total balance.
// @Summary Month-to-date summary
// @Tags stats
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /users/stats [get]
// @Security Bearer
func Summary(statsSvc *statssvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if userID == uuid.Nil {
			return err
		}
		sum, err := statsSvc.CurrentSummary(c.Context(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't compute summary", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Summary", sum)
	}
}

// CategoryBreakdown groups one transaction type over a month or year by
// category.
// @Summary Category breakdown
// @Tags stats
// @Produce json
// @Param type query string false "income or expense (default expense)"
// @Param period query string false "month or year (default month)"
// @Param year query int false "Year (default current)"
// @Param month query int false "Month 1-12 (default current)"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /transactions/stats/category [get]
// @Security Bearer
func CategoryBreakdown(statsSvc *statssvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if userID == uuid.Nil {
			return err
		}
		b, ok, err := breakdown(c, statsSvc, userID)
		if !ok {
			return err
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Category breakdown", b)
	}
}

// LegacyCategoryBreakdown serves the same data as CategoryBreakdown in the
// {totalExpense, details} shape.
// @Summary Category breakdown (legacy shape)
// @Tags stats
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /stats/category [get]
// @Security Bearer
func LegacyCategoryBreakdown(statsSvc *statssvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if userID == uuid.Nil {
			return err
		}
		b, ok, err := breakdown(c, statsSvc, userID)
		if !ok {
			return err
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Category breakdown", LegacyCategoryStats{
			TotalExpense: b.Total,
			Details:      b.Categories,
		})
	}
}

func breakdown(c *fiber.Ctx, statsSvc *statssvc.Service, userID uuid.UUID) (*statssvc.Breakdown, bool, error) {
	year, err := queryInt(c, "year")
	if err != nil {
		return nil, false, common.ProblemDetailsJSON(c, "Invalid year", nil, "year must be an integer", fiber.StatusBadRequest)
	}
	month, err := queryInt(c, "month")
	if err != nil {
		return nil, false, common.ProblemDetailsJSON(c, "Invalid month", nil, "month must be an integer", fiber.StatusBadRequest)
	}
	b, err := statsSvc.CategoryBreakdown(c.Context(), userID, c.Query("type"), c.Query("period"), year, month)
	if err != nil {
		return nil, false, common.ProblemDetailsJSON(c, "Couldn't compute breakdown", err)
	}
	if b.Categories == nil {
		b.Categories = []statssvc.CategoryShare{}
	}
	return b, true, nil
}

func queryInt(c *fiber.Ctx, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
