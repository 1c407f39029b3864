package middleware

import (
	"strings"

	"github.com/contentgen/backend/internal/auth"
	"github.com/contentgen/backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	CtxUserID = "user_id"
	CtxClaims = "claims"
)

func AuthMiddleware(cfg *config.Config, revoker *auth.TokenRevoker, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization format"})
		}

		claims, err := auth.ParseJWT(cfg.JWTSecret, tokenStr)
		if err != nil {
			log.Debug("jwt parse error", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
		}

		if revoker.IsRevoked(c.Context(), claims.ID) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "token revoked"})
		}

		c.Locals(CtxUserID, claims.UserID)
		c.Locals(CtxClaims, claims)

		return c.Next()
	}
}

func GetUserID(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(CtxUserID).(uuid.UUID)
	return id
}

func GetClaims(c *fiber.Ctx) *auth.Claims {
	claims, _ := c.Locals(CtxClaims).(*auth.Claims)
	return claims
}
