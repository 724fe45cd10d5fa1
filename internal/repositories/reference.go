package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	internalErrors "alfredoptarigan/resume-matcher/internal/errors"
	"alfredoptarigan/resume-matcher/internal/models"
)

type ReferenceRepository interface {
	Replace(ref *models.Reference) error
	FindByID(id uuid.UUID) (*models.Reference, error)
	FindLatest() (*models.Reference, error)
}

type referenceRepository struct {
	db *gorm.DB
}

func NewReferenceRepository(db *gorm.DB) ReferenceRepository {
	return &referenceRepository{db: db}
}

// Replace stores ref and drops every older reference; only the latest
// upload is kept.
func (r *referenceRepository) Replace(ref *models.Reference) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id <> ?", ref.ID).Delete(&models.Reference{}).Error; err != nil {
			return fmt.Errorf("failed to drop previous references: %w", err)
		}
		if err := tx.Create(ref).Error; err != nil {
			return fmt.Errorf("failed to create reference: %w", err)
		}
		return nil
	})
}

func (r *referenceRepository) FindByID(id uuid.UUID) (*models.Reference, error) {
	var ref models.Reference
	if err := r.db.Where("id = ?", id).First(&ref).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internalErrors.ErrReferenceNotFound
		}
		return nil, fmt.Errorf("failed to find reference: %w", err)
	}
	return &ref, nil
}

func (r *referenceRepository) FindLatest() (*models.Reference, error) {
	var ref models.Reference
	if err := r.db.Order("created_at DESC").First(&ref).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internalErrors.ErrReferenceNotFound
		}
		return nil, fmt.Errorf("failed to find reference: %w", err)
	}
	return &ref, nil
}
