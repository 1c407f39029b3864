package handlers

import (
	"strconv"

	"github.com/contentgen/backend/internal/http/dto"
	"github.com/contentgen/backend/internal/middleware"
	"github.com/contentgen/backend/internal/models"
	"github.com/contentgen/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CampaignHandler struct {
	campaignService *services.CampaignService
	log             *zap.Logger
}

func NewCampaignHandler(campaignService *services.CampaignService, log *zap.Logger) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService, log: log}
}

func (h *CampaignHandler) CreateCampaign(c *fiber.Ctx) error {
	var req dto.CreateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	userID := middleware.GetUserID(c)
	campaign, err := h.campaignService.Create(c.Context(), userID, req.Title, req.Objectives)
	if err != nil {
		return respondServiceError(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func (h *CampaignHandler) GetCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	userID := middleware.GetUserID(c)
	campaign, err := h.campaignService.Get(c.Context(), id, userID)
	if err != nil {
		return respondServiceError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func (h *CampaignHandler) ListCampaigns(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	page := 1
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page = n
		}
	}
	pageSize := services.DefaultPageSize
	if v := c.Query("page_size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			pageSize = n
		}
	}

	campaigns, total, err := h.campaignService.List(c.Context(), userID, c.Query("q"), page, pageSize)
	if err != nil {
		return respondServiceError(c, h.log, err)
	}

	if campaigns == nil {
		campaigns = []models.Campaign{}
	}
	return c.JSON(dto.ListResponse{
		OK:       true,
		Data:     campaigns,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	})
}

func (h *CampaignHandler) UpdateCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	var req dto.UpdateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	userID := middleware.GetUserID(c)
	campaign, err := h.campaignService.Update(c.Context(), id, userID, req.Title, req.Objectives)
	if err != nil {
		return respondServiceError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func (h *CampaignHandler) DeleteCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	userID := middleware.GetUserID(c)
	if err := h.campaignService.Delete(c.Context(), id, userID); err != nil {
		return respondServiceError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true})
}
