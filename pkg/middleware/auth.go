package middleware

import (
	"github.com/amirasaad/expensetracker/pkg/config"
	authsvc "github.com/amirasaad/expensetracker/pkg/service/auth"
	"github.com/amirasaad/expensetracker/webapi/common"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JwtProtected verifies the bearer access token and stores it under the
// "user" local. Missing, malformed, expired and refresh tokens all get 401.
func JwtProtected(cfg *config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{
			JWTAlg: jwtware.HS256,
			Key:    []byte(cfg.AccessSecret),
		},
		Claims:     &authsvc.Claims{},
		ContextKey: "user",
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return unauthorized(c, "missing token")
			}
			claims, ok := token.Claims.(*authsvc.Claims)
			if !ok || claims.Purpose != authsvc.PurposeAccess || claims.Subject == "" {
				return unauthorized(c, "not an access token")
			}
			return c.Next()
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return unauthorized(c, "invalid or expired token")
		},
	})
}

func unauthorized(c *fiber.Ctx, detail string) error {
	return common.ProblemDetailsJSON(c, "Unauthorized", nil, detail, fiber.StatusUnauthorized)
}
