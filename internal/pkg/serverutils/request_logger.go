package serverutils

import (
	"time"

	"edufocus-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// RequestLoggerMiddleware records one structured entry per request.
func RequestLoggerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		details := map[string]interface{}{
			"method":   ctx.Method(),
			"path":     ctx.Path(),
			"status":   ctx.Response().StatusCode(),
			"duration": time.Since(start).String(),
			"ip":       ctx.IP(),
		}
		if err != nil {
			details["error"] = err.Error()
			log.Error("http", "request failed", details)
		} else {
			log.Info("http", "request completed", details)
		}
		return err
	}
}
