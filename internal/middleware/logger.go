package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LoggerMiddleware emits one access line per request, carrying the
// request id so handler logs can be correlated. Health probes are
// skipped to keep the output readable under frequent liveness checks.
func LoggerMiddleware(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == "/health" {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		reqID, _ := c.Locals(CtxRequestID).(string)
		log.Info("request",
			zap.String("request_id", reqID),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Int("bytes", len(c.Response().Body())),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.IP()),
		)

		return err
	}
}
