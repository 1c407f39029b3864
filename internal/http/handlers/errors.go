package handlers

import (
	"errors"

	"github.com/contentgen/backend/internal/apperrors"
	"github.com/contentgen/backend/internal/http/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// respondServiceError maps the service-layer error taxonomy onto HTTP.
// Anything outside the taxonomy is an internal error and gets logged.
func respondServiceError(c *fiber.Ctx, log *zap.Logger, err error) error {
	var ve *apperrors.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: ve.Error(), Field: ve.Field})
	case errors.Is(err, apperrors.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "not found"})
	case errors.Is(err, apperrors.ErrAccessDenied):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "access denied"})
	case errors.Is(err, apperrors.ErrGeneration):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Error: "content generation failed, please try again"})
	default:
		log.Error("unhandled service error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
}
