package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sltnnt08/ilab-v2/internals/middlewares/logger"
)

// SetupMiddlewares pasang middleware global dengan urutan:
// recovery → logger → cors → rate limiter.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
