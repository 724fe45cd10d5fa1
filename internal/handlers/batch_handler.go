package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/resume-matcher/internal/logger"
	"alfredoptarigan/resume-matcher/internal/matcher"
	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/repositories"
	"alfredoptarigan/resume-matcher/internal/services"
)

// Browsers send folder uploads under either name.
var candidateFields = []string{"folder_files", "folder_files[]"}

type BatchHandler struct {
	refRepo          repositories.ReferenceRepository
	batchRepo        repositories.BatchRepository
	storageService   services.StorageService
	screeningService services.ScreeningService
	maxFileSize      int64
	log              *zap.Logger
}

func NewBatchHandler(
	refRepo repositories.ReferenceRepository,
	batchRepo repositories.BatchRepository,
	storageService services.StorageService,
	screeningService services.ScreeningService,
	maxFileSize int64,
	log *zap.Logger,
) *BatchHandler {
	return &BatchHandler{
		refRepo:          refRepo,
		batchRepo:        batchRepo,
		storageService:   storageService,
		screeningService: screeningService,
		maxFileSize:      maxFileSize,
		log:              logger.WithFields(log),
	}
}

// HandleCreate handles POST /batches
func (h *BatchHandler) HandleCreate(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	var uploads int
	for _, field := range candidateFields {
		uploads += len(form.File[field])
	}
	if uploads == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No candidate files uploaded. Please upload resumes as 'folder_files'.",
		})
	}

	ref, err := h.findReference(form.Value["reference_id"])
	if err != nil {
		if _, ok := err.(*fiber.Error); ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return errorResponse(c, err)
	}

	batch := models.Batch{
		ID:          uuid.New(),
		ReferenceID: ref.ID,
		CreatedAt:   time.Now(),
	}
	log := h.log.With(zap.String(logger.FieldBatch, batch.ID.String()))

	// rows in upload order; files that cannot be stored fail in place
	rows := make([]models.CandidateResult, 0, uploads)
	var toScore []services.CandidateFile
	var slots []int

	for _, field := range candidateFields {
		for _, file := range form.File[field] {
			name := services.SanitizeFilename(file.Filename)
			position := len(rows)

			if h.maxFileSize > 0 && file.Size > h.maxFileSize {
				err := fmt.Errorf("file too large. Max size: %d bytes", h.maxFileSize)
				rows = append(rows, models.NewCandidateResult(position, "", matcher.FailedResult(name, err)))
				continue
			}

			stored, path, err := h.storageService.SaveFile(file, "candidate")
			if err != nil {
				log.Warn("⚠️ Candidate upload rejected", zap.String(logger.FieldFile, name), zap.Error(err))
				rows = append(rows, models.NewCandidateResult(position, "", matcher.FailedResult(name, err)))
				continue
			}

			rows = append(rows, models.NewCandidateResult(position, stored, matcher.MatchResult{Resume: name}))
			toScore = append(toScore, services.CandidateFile{Name: name, Path: path})
			slots = append(slots, position)
		}
	}

	log.Info("📋 Scoring batch", zap.Int("candidates", len(rows)), zap.Int("readable", len(toScore)))

	results := h.screeningService.ScoreCandidates(c.UserContext(), ref.SectionSet(), toScore)
	for i, result := range results {
		row := &rows[slots[i]]
		*row = models.NewCandidateResult(row.Position, row.StoredFile, result)
	}

	for i := range rows {
		rows[i].BatchID = batch.ID
	}
	batch.Results = rows

	if err := h.batchRepo.Replace(&batch); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save batch results: %v", err),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.NewBatchResponse(&batch, matcher.DefaultSortKey))
}

func (h *BatchHandler) findReference(values []string) (*models.Reference, error) {
	if len(values) == 0 || values[0] == "" {
		return h.refRepo.FindLatest()
	}

	id, err := uuid.Parse(values[0])
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid reference ID format")
	}

	return h.refRepo.FindByID(id)
}
