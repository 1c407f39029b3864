package http

import (
	"time"

	"github.com/contentgen/backend/internal/auth"
	"github.com/contentgen/backend/internal/config"
	"github.com/contentgen/backend/internal/http/handlers"
	"github.com/contentgen/backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	revoker *auth.TokenRevoker,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	campaignHandler *handlers.CampaignHandler,
	itemHandler *handlers.CampaignItemHandler,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Uploaded media
	app.Static("/media", cfg.MediaRoot)

	api := app.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimitPerMinute, time.Minute))

	// Auth (public)
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)

	// Protected endpoints
	protected := api.Group("", middleware.AuthMiddleware(cfg, revoker, log))

	protected.Post("/auth/logout", authHandler.Logout)

	// User + profile
	protected.Get("/me", userHandler.GetMe)
	protected.Get("/me/profile", userHandler.GetProfile)
	protected.Put("/me/profile", userHandler.UpdateProfile)

	// Campaigns
	protected.Post("/campaigns", campaignHandler.CreateCampaign)
	protected.Get("/campaigns", campaignHandler.ListCampaigns)
	protected.Get("/campaigns/:id", campaignHandler.GetCampaign)
	protected.Put("/campaigns/:id", campaignHandler.UpdateCampaign)
	protected.Delete("/campaigns/:id", campaignHandler.DeleteCampaign)

	// Campaign items
	protected.Post("/campaigns/:id/items", itemHandler.CreateItem)
	protected.Put("/items/:id", itemHandler.UpdateItem)
	protected.Delete("/items/:id", itemHandler.DeleteItem)
}
