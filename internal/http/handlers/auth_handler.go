package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/contentgen/backend/internal/apperrors"
	"github.com/contentgen/backend/internal/auth"
	"github.com/contentgen/backend/internal/config"
	"github.com/contentgen/backend/internal/http/dto"
	"github.com/contentgen/backend/internal/middleware"
	"github.com/contentgen/backend/internal/models"
	"github.com/contentgen/backend/internal/repositories"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	userRepo *repositories.UserRepo
	revoker  *auth.TokenRevoker
	cfg      *config.Config
	log      *zap.Logger
}

func NewAuthHandler(userRepo *repositories.UserRepo, revoker *auth.TokenRevoker, cfg *config.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{userRepo: userRepo, revoker: revoker, cfg: cfg, log: log}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	switch {
	case req.Username == "":
		return respondServiceError(c, h.log, apperrors.NewValidation("username", "is required"))
	case req.Email == "" || !strings.Contains(req.Email, "@"):
		return respondServiceError(c, h.log, apperrors.NewValidation("email", "is invalid"))
	case len(req.Password) < 8:
		return respondServiceError(c, h.log, apperrors.NewValidation("password", "must be at least 8 characters"))
	}

	hash, err := auth.HashPassword(req.Password, h.cfg.BcryptCost)
	if err != nil {
		h.log.Error("failed to hash password", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	user := &models.User{Username: req.Username, Email: req.Email, PasswordHash: hash}
	if err := h.userRepo.CreateWithProfile(c.Context(), user); err != nil {
		return respondServiceError(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: user})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	user, err := h.userRepo.GetByUsername(c.Context(), strings.TrimSpace(req.Username))
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			h.log.Error("login lookup failed", zap.Error(err))
		}
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "invalid credentials"})
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "invalid credentials"})
	}

	token, err := auth.GenerateJWT(h.cfg.JWTSecret, user.ID, h.cfg.JWTExpiration)
	if err != nil {
		h.log.Error("failed to generate jwt", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.AuthResponse{Token: token, User: user})
}

// Logout revokes the presented token until its natural expiry.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "not authenticated"})
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := h.revoker.Revoke(c.Context(), claims.ID, ttl); err != nil {
		h.log.Error("failed to revoke token", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.SuccessResponse{OK: true})
}
