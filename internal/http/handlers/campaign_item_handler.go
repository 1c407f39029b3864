package handlers

import (
	"errors"

	"github.com/contentgen/backend/internal/apperrors"
	"github.com/contentgen/backend/internal/http/dto"
	"github.com/contentgen/backend/internal/media"
	"github.com/contentgen/backend/internal/middleware"
	"github.com/contentgen/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CampaignItemHandler struct {
	itemService *services.CampaignItemService
	mediaStore  *media.Store
	log         *zap.Logger
}

func NewCampaignItemHandler(itemService *services.CampaignItemService, mediaStore *media.Store, log *zap.Logger) *CampaignItemHandler {
	return &CampaignItemHandler{itemService: itemService, mediaStore: mediaStore, log: log}
}

func (h *CampaignItemHandler) CreateItem(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	req, input, err := h.parseItemForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	userID := middleware.GetUserID(c)
	item, err := h.itemService.Create(c.Context(), campaignID, userID, input)
	if err != nil {
		h.removeUploads(input)
		return h.respondItemError(c, err, req)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: item})
}

func (h *CampaignItemHandler) UpdateItem(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid item id"})
	}

	req, input, err := h.parseItemForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	userID := middleware.GetUserID(c)
	item, err := h.itemService.Update(c.Context(), itemID, userID, input)
	if err != nil {
		h.removeUploads(input)
		return h.respondItemError(c, err, req)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: item})
}

func (h *CampaignItemHandler) DeleteItem(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid item id"})
	}

	userID := middleware.GetUserID(c)
	if err := h.itemService.Delete(c.Context(), itemID, userID); err != nil {
		return respondServiceError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true})
}

// parseItemForm reads the item fields and stores any uploaded image or
// video attachment. A missing file is not an error; the files only
// exist on multipart submissions.
func (h *CampaignItemHandler) parseItemForm(c *fiber.Ctx) (dto.ItemRequest, services.ItemInput, error) {
	var req dto.ItemRequest
	if err := c.BodyParser(&req); err != nil {
		return req, services.ItemInput{}, errors.New("invalid request body")
	}

	input := services.ItemInput{
		Title:        req.Title,
		InputContent: req.InputContent,
	}

	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		path, err := h.mediaStore.Save(fh, media.ImagesDir)
		if err != nil {
			h.log.Error("failed to store image upload", zap.Error(err))
			return req, input, errors.New("failed to store image")
		}
		input.ImagePath = &path
	}
	if fh, err := c.FormFile("video"); err == nil && fh != nil {
		path, err := h.mediaStore.Save(fh, media.VideosDir)
		if err != nil {
			h.log.Error("failed to store video upload", zap.Error(err))
			return req, input, errors.New("failed to store video")
		}
		input.VideoPath = &path
	}

	return req, input, nil
}

// removeUploads discards attachments stored for a request whose item
// write was aborted. An aborted write must leave nothing behind, on
// disk included.
func (h *CampaignItemHandler) removeUploads(input services.ItemInput) {
	for _, p := range []*string{input.ImagePath, input.VideoPath} {
		if p == nil {
			continue
		}
		if err := h.mediaStore.Remove(*p); err != nil {
			h.log.Warn("failed to remove orphaned upload", zap.String("path", *p), zap.Error(err))
		}
	}
}

// respondItemError echoes the submitted fields on generation failures so
// the client can re-show the form with the user's brief intact.
func (h *CampaignItemHandler) respondItemError(c *fiber.Ctx, err error, req dto.ItemRequest) error {
	if errors.Is(err, apperrors.ErrGeneration) {
		return c.Status(fiber.StatusBadGateway).JSON(dto.GenerationFailureResponse{
			Error:     "content generation failed, please check the API key and try again",
			Submitted: req,
		})
	}
	return respondServiceError(c, h.log, err)
}
