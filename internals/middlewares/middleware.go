package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"unipresence_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware stack. Order matters:
// recovery first so panics in anything below still produce a 500.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(logger.LoggerMiddleware())
}
