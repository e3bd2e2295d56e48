package asset

import (
	"github.com/amirasaad/expensetracker/pkg/config"
	"github.com/amirasaad/expensetracker/pkg/middleware"
	assetsvc "github.com/amirasaad/expensetracker/pkg/service/asset"
	authsvc "github.com/amirasaad/expensetracker/pkg/service/auth"
	"github.com/amirasaad/expensetracker/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func Routes(app *fiber.App, assetSvc *assetsvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	protected := middleware.JwtProtected(cfg.Auth.Jwt)
	app.Post("/assets", protected, CreateAsset(assetSvc, authSvc))
	app.Get("/assets", protected, ListAssets(assetSvc, authSvc))
	app.Get("/assets/:id", protected, GetAsset(assetSvc, authSvc))
	app.Put("/assets/:id", protected, UpdateAsset(assetSvc, authSvc))
	app.Delete("/assets/:id", protected, DeleteAsset(assetSvc, authSvc))
}

// CreateAsset creates an asset account with a zero balance.
// @Summary Create asset
// @Tags assets
// @Accept json
// @Produce json
// @Param request body CreateAssetInput true "Asset"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /assets [post]
// @Security Bearer
func CreateAsset(assetSvc *assetsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if userID == uuid.Nil {
			return err
		}
		input, err := common.BindAndValidate[CreateAssetInput](c)
		if input == nil {
			return err // error response already written
		}
		a, err := assetSvc.CreateAsset(c.Context(), userID, input.Name, input.Type, input.Icon, input.Color)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create asset", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Asset created", a)
	}
}

// ListAssets returns the caller's assets.
// @Summary List assets
// @Tags assets
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /assets [get]
// @Security Bearer
func ListAssets(assetSvc *assetsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if userID == uuid.Nil {
			return err
		}
		assets, err := assetSvc.ListAssets(c.Context(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list assets", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Assets", assets)
	}
}

// GetAsset returns one asset of the caller.
// @Summary Get asset
// @Tags assets
// @Produce json
// @Param id path string true "Asset ID"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /assets/{id} [get]
// @Security Bearer
func GetAsset(assetSvc *assetsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if userID == uuid.Nil {
			return err
		}
		id, err := common.ParseID(c, "asset")
		if id == uuid.Nil {
			return err
		}
		a, err := assetSvc.GetAsset(c.Context(), userID, id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Asset not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Asset", a)
	}
}

// UpdateAsset changes name, type, icon or color.
// @Summary Update asset
// @Tags assets
// @Accept json
// @Produce json
// @Param id path string true "Asset ID"
// @Param request body UpdateAssetInput true "Fields to change"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /assets/{id} [put]
// @Security Bearer
func UpdateAsset(assetSvc *assetsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if userID == uuid.Nil {
			return err
		}
		id, err := common.ParseID(c, "asset")
		if id == uuid.Nil {
			return err
		}
		input, err := common.BindAndValidate[UpdateAssetInput](c)
		if input == nil {
			return err
		}
		a, err := assetSvc.UpdateAsset(c.Context(), userID, id, input.toUpdate())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update asset", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Asset updated", a)
	}
}

// DeleteAsset removes an asset that no transaction references.
// @Summary Delete asset
// @Tags assets
// @Produce json
// @Param id path string true "Asset ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /assets/{id} [delete]
// @Security Bearer
func DeleteAsset(assetSvc *assetsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if userID == uuid.Nil {
			return err
		}
		id, err := common.ParseID(c, "asset")
		if id == uuid.Nil {
			return err
		}
		if err := assetSvc.DeleteAsset(c.Context(), userID, id); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete asset", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Asset deleted", nil)
	}
}
