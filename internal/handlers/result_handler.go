package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-matcher/internal/matcher"
	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/repositories"
	"alfredoptarigan/resume-matcher/internal/services"
)

type ResultHandler struct {
	batchRepo      repositories.BatchRepository
	storageService services.StorageService
	exporter       services.Exporter
}

func NewResultHandler(
	batchRepo repositories.BatchRepository,
	storageService services.StorageService,
	exporter services.Exporter,
) *ResultHandler {
	return &ResultHandler{
		batchRepo:      batchRepo,
		storageService: storageService,
		exporter:       exporter,
	}
}

// HandleGetBatch handles GET /batches/:id
func (h *ResultHandler) HandleGetBatch(c *fiber.Ctx) error {
	batch, err := h.findBatch(c.Params("id"))
	if err != nil {
		return h.batchError(c, err)
	}

	key := matcher.ParseSortKey(c.Query("sort_by"))
	return c.JSON(models.NewBatchResponse(batch, key))
}

// HandleExport handles GET /batches/:id/export/:filetype
func (h *ResultHandler) HandleExport(c *fiber.Ctx) error {
	batch, err := h.findBatch(c.Params("id"))
	if err != nil {
		return h.batchError(c, err)
	}

	fileType := c.Params("filetype")
	path, err := h.exporter.Export(batch.MatchResults(), c.Query("sort_by"), fileType)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Download(path, "results_output."+fileType)
}

// HandleViewResume handles GET /resumes/:filename
func (h *ResultHandler) HandleViewResume(c *fiber.Ctx) error {
	filename := c.Params("filename")
	if !h.storageService.Exists(filename) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Resume not found",
		})
	}

	return c.SendFile(h.storageService.GetFilePath(filename))
}

// findBatch accepts a batch UUID or "latest".
func (h *ResultHandler) findBatch(idParam string) (*models.Batch, error) {
	if idParam == "latest" {
		return h.batchRepo.FindLatest()
	}

	batchID, err := uuid.Parse(idParam)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid batch ID format")
	}

	return h.batchRepo.FindByID(batchID)
}

func (h *ResultHandler) batchError(c *fiber.Ctx, err error) error {
	if e, ok := err.(*fiber.Error); ok {
		return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
	}
	return errorResponse(c, err)
}
