// Package webapi assembles the HTTP surface of the expense tracker. Each
// sub-package registers the routes of one area:
// - auth: registration, login, token refresh and logout
// - user: profile and avatar upload
// - asset: asset accounts
// - transaction: income and expense records
// - stats: dashboard summary and category breakdowns
package webapi

import (
	"errors"

	_ "github.com/amirasaad/expensetracker/cmd/server/swagger"
	"github.com/amirasaad/expensetracker/pkg/app"
	assetweb "github.com/amirasaad/expensetracker/webapi/asset"
	authweb "github.com/amirasaad/expensetracker/webapi/auth"
	"github.com/amirasaad/expensetracker/webapi/common"
	statsweb "github.com/amirasaad/expensetracker/webapi/stats"
	transactionweb "github.com/amirasaad/expensetracker/webapi/transaction"
	userweb "github.com/amirasaad/expensetracker/webapi/user"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// multipart framing allowance on top of the avatar size limit
const bodyOverhead = 1 << 20

// SetupApp Initialize Fiber with custom configuration
func SetupApp(a *app.App) *fiber.App {
	cfg := a.Config
	common.ExposeInternalErrors(cfg.IsDevelopment())

	bodyLimit := fiber.DefaultBodyLimit
	if cfg.Upload != nil && cfg.Upload.MaxBytes > 0 {
		bodyLimit = int(cfg.Upload.MaxBytes) + bodyOverhead
	}

	fiberCfg := fiber.Config{
		BodyLimit: bodyLimit,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return common.ProblemDetailsJSON(c, fe.Message, err, fe.Code)
			}
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	}
	if cfg.Server != nil && len(cfg.Server.TrustedProxies) > 0 {
		fiberCfg.ProxyHeader = cfg.Server.ProxyHeader
		fiberCfg.EnableTrustedProxyCheck = true
		fiberCfg.TrustedProxies = cfg.Server.TrustedProxies
		fiberCfg.EnableIPValidation = true
	}
	fiberApp := fiber.New(fiberCfg)
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled:      true,
		PersistAuthorization: true,
	}))

	// c.IP() reads the proxy header only when the peer is a trusted proxy.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
			)
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Expense Tracker API is running! 🚀")
	})

	if cfg.Upload != nil && cfg.Upload.Dir != "" {
		fiberApp.Static(cfg.Upload.URLPrefix, cfg.Upload.Dir, fiber.Static{
			Browse: false,
		})
	}

	authweb.Routes(fiberApp, a.AuthService, cfg)
	userweb.Routes(fiberApp, a.UserService, a.AuthService, cfg)
	assetweb.Routes(fiberApp, a.AssetService, a.AuthService, cfg)
	transactionweb.Routes(fiberApp, a.TransactionService, a.AuthService, cfg)
	statsweb.Routes(fiberApp, a.StatsService, a.AuthService, cfg)
	return fiberApp
}
