package handlers

import (
	"github.com/contentgen/backend/internal/http/dto"
	"github.com/contentgen/backend/internal/middleware"
	"github.com/contentgen/backend/internal/repositories"
	"github.com/contentgen/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type UserHandler struct {
	userRepo       *repositories.UserRepo
	profileService *services.ProfileService
	log            *zap.Logger
}

func NewUserHandler(userRepo *repositories.UserRepo, profileService *services.ProfileService, log *zap.Logger) *UserHandler {
	return &UserHandler{userRepo: userRepo, profileService: profileService, log: log}
}

func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	user, err := h.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: user})
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	profile, err := h.profileService.Get(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: profile})
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	userID := middleware.GetUserID(c)
	profile, err := h.profileService.Update(c.Context(), userID, req.OrgName, req.OrgObjectives)
	if err != nil {
		return respondServiceError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: profile})
}
