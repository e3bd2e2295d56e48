package user

import (
	"github.com/amirasaad/expensetracker/pkg/config"
	"github.com/amirasaad/expensetracker/pkg/middleware"
	authsvc "github.com/amirasaad/expensetracker/pkg/service/auth"
	usersvc "github.com/amirasaad/expensetracker/pkg/service/user"
	"github.com/amirasaad/expensetracker/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

func Routes(app *fiber.App, userSvc *usersvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	app.Get("/users/me", middleware.JwtProtected(cfg.Auth.Jwt), GetMe(userSvc, authSvc))
	app.Put("/users/me", middleware.JwtProtected(cfg.Auth.Jwt), UpdateMe(userSvc, authSvc))
	app.Post("/users/upload-avatar", middleware.JwtProtected(cfg.Auth.Jwt), UploadAvatar(userSvc, authSvc))
}

// GetMe returns the caller's profile with month-to-date stats and assets.
// @Summary Current user
// @Tags users
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /users/me [get]
// @Security Bearer
func GetMe(userSvc *usersvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if userID == uuid.Nil {
			return err
		}
		profile, err := userSvc.GetProfile(c.Context(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't load profile", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Profile", profile)
	}
}

// UpdateMe changes the caller's nickname or avatar URL.
// @Summary Update current user
// @Tags users
// @Accept json
// @Produce json
// @Param request body UpdateProfileInput true "Profile fields"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /users/me [put]
// @Security Bearer
func UpdateMe(userSvc *usersvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if userID == uuid.Nil {
			return err
		}
		input, err := common.BindAndValidate[UpdateProfileInput](c)
		if input == nil {
			return err // error response already written
		}
		u, err := userSvc.UpdateProfile(c.Context(), userID, input.toUpdate())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update profile", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Profile updated", u)
	}
}

// UploadAvatar stores an image sent as the multipart field "file".
// @Summary Upload avatar
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 413 {object} common.ProblemDetails
// @Router /users/upload-avatar [post]
// @Security Bearer
func UploadAvatar(userSvc *usersvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if userID == uuid.Nil {
			return err
		}
		fh, err := c.FormFile("file")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Missing file", nil, "multipart field \"file\" is required", fiber.StatusBadRequest)
		}
		f, err := fh.Open()
		if err != nil {
			log.Errorf("Open upload: %v", err)
			return common.ProblemDetailsJSON(c, "Couldn't read upload", err)
		}
		defer f.Close() //nolint: errcheck
		url, err := userSvc.SetAvatar(c.Context(), userID, f)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't store avatar", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Avatar uploaded", fiber.Map{"url": url})
	}
}
