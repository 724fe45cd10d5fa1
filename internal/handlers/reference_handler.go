package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/resume-matcher/internal/logger"
	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/repositories"
	"alfredoptarigan/resume-matcher/internal/services"
)

const referenceField = "custom_resume"

type ReferenceHandler struct {
	refRepo          repositories.ReferenceRepository
	storageService   services.StorageService
	screeningService services.ScreeningService
	maxFileSize      int64
	log              *zap.Logger
}

func NewReferenceHandler(
	refRepo repositories.ReferenceRepository,
	storageService services.StorageService,
	screeningService services.ScreeningService,
	maxFileSize int64,
	log *zap.Logger,
) *ReferenceHandler {
	return &ReferenceHandler{
		refRepo:          refRepo,
		storageService:   storageService,
		screeningService: screeningService,
		maxFileSize:      maxFileSize,
		log:              logger.WithFields(log),
	}
}

// HandleUpload handles POST /reference
func (h *ReferenceHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile(referenceField)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("'%s' file is required", referenceField),
		})
	}

	if h.maxFileSize > 0 && file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Reference file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filename, filePath, err := h.storageService.SaveFile(file, "reference")
	if err != nil {
		return errorResponse(c, err)
	}

	doc, err := h.screeningService.BuildReference(c.UserContext(), filePath)
	if err != nil {
		_ = h.storageService.DeleteFile(filename)
		return errorResponse(c, err)
	}

	ref := models.Reference{
		ID:               uuid.New(),
		Filename:         filename,
		OriginalFileName: services.SanitizeFilename(file.Filename),
		RawText:          doc.RawText,
		Sections:         doc.Sections.Map(),
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.refRepo.Replace(&ref); err != nil {
		// Cleanup uploaded file if database insert fails
		_ = h.storageService.DeleteFile(filename)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save reference resume: %v", err),
		})
	}

	h.log.Info("📥 Reference resume stored",
		zap.String("reference_id", ref.ID.String()),
		zap.String(logger.FieldFile, ref.OriginalFileName),
	)

	return c.Status(fiber.StatusCreated).JSON(models.ReferenceResponse{
		ID:            ref.ID.String(),
		Filename:      ref.OriginalFileName,
		ExtractedText: ref.RawText,
		Sections:      ref.Sections,
	})
}
