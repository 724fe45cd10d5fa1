package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	internalErrors "alfredoptarigan/resume-matcher/internal/errors"
	"alfredoptarigan/resume-matcher/internal/models"
)

type BatchRepository interface {
	Replace(batch *models.Batch) error
	FindByID(id uuid.UUID) (*models.Batch, error)
	FindLatest() (*models.Batch, error)
}

type batchRepository struct {
	db *gorm.DB
}

func NewBatchRepository(db *gorm.DB) BatchRepository {
	return &batchRepository{db: db}
}

// Replace stores batch with its results and drops every previous batch.
func (r *batchRepository) Replace(batch *models.Batch) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("batch_id <> ?", batch.ID).Delete(&models.CandidateResult{}).Error; err != nil {
			return fmt.Errorf("failed to drop previous results: %w", err)
		}
		if err := tx.Where("id <> ?", batch.ID).Delete(&models.Batch{}).Error; err != nil {
			return fmt.Errorf("failed to drop previous batches: %w", err)
		}
		if err := tx.Create(batch).Error; err != nil {
			return fmt.Errorf("failed to create batch: %w", err)
		}
		return nil
	})
}

func (r *batchRepository) FindByID(id uuid.UUID) (*models.Batch, error) {
	var batch models.Batch
	err := r.db.
		Preload("Results", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", id).
		First(&batch).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internalErrors.NewBatchNotFoundError(id.String())
		}
		return nil, fmt.Errorf("failed to find batch: %w", err)
	}
	return &batch, nil
}

func (r *batchRepository) FindLatest() (*models.Batch, error) {
	var batch models.Batch
	err := r.db.
		Preload("Results", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at DESC").
		First(&batch).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internalErrors.NewBatchNotFoundError("latest")
		}
		return nil, fmt.Errorf("failed to find batch: %w", err)
	}
	return &batch, nil
}
