package transaction

import (
	"strconv"

	"github.com/amirasaad/expensetracker/pkg/config"
	"github.com/amirasaad/expensetracker/pkg/middleware"
	authsvc "github.com/amirasaad/expensetracker/pkg/service/auth"
	txsvc "github.com/amirasaad/expensetracker/pkg/service/transaction"
	"github.com/amirasaad/expensetracker/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func Routes(app *fiber.App, txSvc *txsvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	protected := middleware.JwtProtected(cfg.Auth.Jwt)
	app.Post("/transactions", protected, CreateTransaction(txSvc, authSvc))
	app.Get("/transactions", protected, ListTransactions(txSvc, authSvc))
	app.Get("/transactions/:id", protected, GetTransaction(txSvc, authSvc))
	app.Put("/transactions/:id", protected, UpdateTransaction(txSvc, authSvc))
	app.Delete("/transactions/:id", protected, DeleteTransaction(txSvc, authSvc))
}

// CreateTransaction records an income or expense and moves the linked
// asset's balance.
// @Summary Create transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body TransactionInput true "Transaction"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 503 {object} common.ProblemDetails
// @Router /transactions [post]
// @Security Bearer
func CreateTransaction(txSvc *txsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if userID == uuid.Nil {
			return err
		}
		input, err := common.BindAndValidate[TransactionInput](c)
		if input == nil {
			return err // error response already written
		}
		tx, err := txSvc.CreateTransaction(c.Context(), userID, input.toInput())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Transaction created", tx)
	}
}

// ListTransactions returns the caller's most recent transactions.
// @Summary List transactions
// @Tags transactions
// @Produce json
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /transactions [get]
// @Security Bearer
func ListTransactions(txSvc *txsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if userID == uuid.Nil {
			return err
		}
		limit := 0
		if raw := c.Query("limit"); raw != "" {
			limit, err = strconv.Atoi(raw)
			if err != nil || limit < 0 {
				return common.ProblemDetailsJSON(c, "Invalid limit", nil, "limit must be a positive integer", fiber.StatusBadRequest)
			}
		}
		txs, err := txSvc.ListTransactions(c.Context(), userID, limit)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list transactions", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions", txs)
	}
}

// GetTransaction returns one transaction of the caller.
// @Summary Get transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /transactions/{id} [get]
// @Security Bearer
func GetTransaction(txSvc *txsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if userID == uuid.Nil {
			return err
		}
		id, err := common.ParseID(c, "transaction")
		if id == uuid.Nil {
			return err
		}
		tx, err := txSvc.GetTransaction(c.Context(), userID, id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Transaction not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction", tx)
	}
}

// UpdateTransaction replaces a transaction and rebalances the old and new
// assets.
// @Summary Update transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body TransactionInput true "Transaction"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /transactions/{id} [put]
// @Security Bearer
func UpdateTransaction(txSvc *txsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if userID == uuid.Nil {
			return err
		}
		id, err := common.ParseID(c, "transaction")
		if id == uuid.Nil {
			return err
		}
		input, err := common.BindAndValidate[TransactionInput](c)
		if input == nil {
			return err
		}
		tx, err := txSvc.UpdateTransaction(c.Context(), userID, id, input.toInput())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction updated", tx)
	}
}

// DeleteTransaction removes a transaction and reverses its effect.
// @Summary Delete transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /transactions/{id} [delete]
// @Security Bearer
func DeleteTransaction(txSvc *txsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if userID == uuid.Nil {
			return err
		}
		id, err := common.ParseID(c, "transaction")
		if id == uuid.Nil {
			return err
		}
		if err := txSvc.DeleteTransaction(c.Context(), userID, id); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction deleted", nil)
	}
}
