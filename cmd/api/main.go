package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/contentgen/backend/internal/auth"
	"github.com/contentgen/backend/internal/config"
	"github.com/contentgen/backend/internal/db"
	apphttp "github.com/contentgen/backend/internal/http"
	"github.com/contentgen/backend/internal/http/handlers"
	"github.com/contentgen/backend/internal/media"
	"github.com/contentgen/backend/internal/repositories"
	"github.com/contentgen/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	// Run migrations
	if err := db.RunMigrations(ctx, pool, "migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Repositories
	userRepo := repositories.NewUserRepo(pool)
	profileRepo := repositories.NewProfileRepo(pool)
	campaignRepo := repositories.NewCampaignRepo(pool)
	itemRepo := repositories.NewCampaignItemRepo(pool)

	// Generation adapter
	generator, err := services.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GenerationTimeout, log)
	if err != nil {
		log.Fatal("failed to initialize gemini client", zap.Error(err))
	}

	// Services
	campaignService := services.NewCampaignService(campaignRepo, itemRepo, log)
	itemService := services.NewCampaignItemService(itemRepo, campaignRepo, profileRepo, generator, log)
	profileService := services.NewProfileService(profileRepo, log)

	// Media + token revocation
	mediaStore := media.NewStore(cfg.MediaRoot)
	revoker := auth.NewTokenRevoker(rdb)

	// Handlers
	authHandler := handlers.NewAuthHandler(userRepo, revoker, cfg, log)
	userHandler := handlers.NewUserHandler(userRepo, profileService, log)
	campaignHandler := handlers.NewCampaignHandler(campaignService, log)
	itemHandler := handlers.NewCampaignItemHandler(itemService, mediaStore, log)

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit: 64 * 1024 * 1024, // video uploads
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	apphttp.SetupRouter(app, cfg, log, rdb, revoker, authHandler, userHandler, campaignHandler, itemHandler)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
