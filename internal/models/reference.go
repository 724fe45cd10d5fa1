package models

import (
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/resume-matcher/internal/matcher"
)

// Reference is the resume every candidate of a batch is compared against.
type Reference struct {
	ID               uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Filename         string            `gorm:"type:text" json:"filename"`
	OriginalFileName string            `gorm:"type:text" json:"original_filename"`
	RawText          string            `gorm:"type:text" json:"-"`
	Sections         map[string]string `gorm:"type:jsonb;serializer:json" json:"sections"`
	CreatedAt        time.Time         `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt        time.Time         `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (r *Reference) TableName() string {
	return "reference_resumes"
}

// SectionSet rebuilds the matcher sections stored with the reference.
func (r *Reference) SectionSet() matcher.SectionSet {
	return matcher.SectionSetFromMap(r.Sections)
}
