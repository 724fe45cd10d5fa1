package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	internalErrors "alfredoptarigan/resume-matcher/internal/errors"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, internalErrors.ErrUnsupportedFormat),
		errors.Is(err, internalErrors.ErrUnsupportedExportType):
		return fiber.StatusBadRequest
	case errors.Is(err, internalErrors.ErrReferenceNotFound),
		errors.Is(err, internalErrors.ErrBatchNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, internalErrors.ErrExtractionFailed):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, internalErrors.ErrEmbeddingProviderUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func errorResponse(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
