package auth

import (
	"errors"

	"github.com/amirasaad/expensetracker/pkg/config"
	"github.com/amirasaad/expensetracker/pkg/domain"
	"github.com/amirasaad/expensetracker/pkg/domain/user"
	"github.com/amirasaad/expensetracker/pkg/middleware"
	authsvc "github.com/amirasaad/expensetracker/pkg/service/auth"
	"github.com/amirasaad/expensetracker/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

func Routes(app *fiber.App, authSvc *authsvc.Service, cfg *config.App) {
	app.Post("/auth/register", Register(authSvc))
	app.Post("/auth/login", Login(authSvc))
	app.Post("/auth/refresh-token", RefreshToken(authSvc))
	app.Post("/auth/logout", middleware.JwtProtected(cfg.Auth.Jwt), Logout(authSvc))
}

// Register creates a new account.
// @Summary Register
// @Description Create an account with email, password and an optional nickname
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterInput true "Registration data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Router /auth/register [post]
func Register(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RegisterInput](c)
		if input == nil {
			return err // error response already written
		}
		u, err := authSvc.Register(c.Context(), input.Email, input.Password, input.Nickname)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return common.ProblemDetailsJSON(c, "Email already registered", err)
			}
			return common.ProblemDetailsJSON(c, "Couldn't register", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Registered", fiber.Map{"userId": u.ID})
	}
}

// Login handles user authentication and returns an access/refresh token pair.
// @Summary User login
// @Description Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginInput true "Login credentials"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Failure 503 {object} common.ProblemDetails
// @Router /auth/login [post]
func Login(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginInput](c)
		if input == nil {
			return err // Error already written by BindAndValidate
		}
		result, err := authSvc.Login(c.Context(), input.Email, input.Password)
		if err != nil {
			if errors.Is(err, user.ErrInvalidCredentials) {
				return common.ProblemDetailsJSON(c, "Invalid email or password", nil,
					"Email or password is incorrect", fiber.StatusBadRequest)
			}
			log.Errorf("Login failed: %v", err)
			return common.ProblemDetailsJSON(c, "Login failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Success login", result)
	}
}

// RefreshToken exchanges a refresh token for a new access token.
// @Summary Refresh access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshInput true "Refresh token"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Router /auth/refresh-token [post]
func RefreshToken(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RefreshInput](c)
		if input == nil {
			return err
		}
		access, err := authSvc.Refresh(c.Context(), input.RefreshToken)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid refresh token", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Token refreshed", fiber.Map{"accessToken": access})
	}
}

// Logout revokes the caller's session.
// @Summary Logout
// @Tags auth
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /auth/logout [post]
// @Security Bearer
func Logout(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if userID == uuid.Nil {
			return err
		}
		if err := authSvc.Logout(c.Context(), userID); err != nil {
			return common.ProblemDetailsJSON(c, "Logout failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Logged out", nil)
	}
}
