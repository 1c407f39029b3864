package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	CtxRequestID    = "request_id"
	HeaderRequestID = "X-Request-ID"
)

// RequestIDMiddleware tags every request with an id, honoring one sent
// by the caller only if it parses as a UUID so log fields stay bounded
// and well-formed.
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := c.Get(HeaderRequestID)
		if _, err := uuid.Parse(reqID); err != nil {
			reqID = uuid.New().String()
		}
		c.Locals(CtxRequestID, reqID)
		c.Set(HeaderRequestID, reqID)
		return c.Next()
	}
}
