package models

import (
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/resume-matcher/internal/matcher"
)

// Batch is one screening run: every candidate uploaded together, scored
// against one reference.
type Batch struct {
	ID          uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ReferenceID uuid.UUID         `gorm:"type:uuid;not null" json:"reference_id"`
	Results     []CandidateResult `gorm:"foreignKey:BatchID;constraint:OnDelete:CASCADE" json:"results"`
	CreatedAt   time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Batch) TableName() string {
	return "batches"
}

// MatchResults returns the batch rows in upload order.
func (b *Batch) MatchResults() []matcher.MatchResult {
	results := make([]matcher.MatchResult, 0, len(b.Results))
	for _, r := range b.Results {
		results = append(results, r.MatchResult())
	}
	return results
}

// CandidateResult is a stored MatchResult row.
type CandidateResult struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BatchID             uuid.UUID `gorm:"type:uuid;not null;index" json:"batch_id"`
	Position            int       `gorm:"not null" json:"position"`
	Resume              string    `gorm:"type:text" json:"resume"`
	StoredFile          string    `gorm:"type:text" json:"stored_file"`
	MatchPercentage     float64   `gorm:"type:decimal(5,2)" json:"match_percentage"`
	SkillsMatch         float64   `gorm:"type:decimal(5,2)" json:"skills_match"`
	ExperienceMatch     float64   `gorm:"type:decimal(5,2)" json:"experience_match"`
	EducationMatch      float64   `gorm:"type:decimal(5,2)" json:"education_match"`
	ProjectsMatch       float64   `gorm:"type:decimal(5,2)" json:"projects_match"`
	CertificationsMatch float64   `gorm:"type:decimal(5,2)" json:"certifications_match"`
	ErrorMessage        string    `gorm:"type:text" json:"error_message,omitempty"`
}

func (CandidateResult) TableName() string {
	return "candidate_results"
}

func NewCandidateResult(position int, storedFile string, r matcher.MatchResult) CandidateResult {
	return CandidateResult{
		ID:                  uuid.New(),
		Position:            position,
		Resume:              r.Resume,
		StoredFile:          storedFile,
		MatchPercentage:     r.MatchPercentage,
		SkillsMatch:         r.SkillsMatch,
		ExperienceMatch:     r.ExperienceMatch,
		EducationMatch:      r.EducationMatch,
		ProjectsMatch:       r.ProjectsMatch,
		CertificationsMatch: r.CertificationsMatch,
		ErrorMessage:        r.Error,
	}
}

func (c CandidateResult) MatchResult() matcher.MatchResult {
	return matcher.MatchResult{
		Resume:              c.Resume,
		MatchPercentage:     c.MatchPercentage,
		SkillsMatch:         c.SkillsMatch,
		ExperienceMatch:     c.ExperienceMatch,
		EducationMatch:      c.EducationMatch,
		ProjectsMatch:       c.ProjectsMatch,
		CertificationsMatch: c.CertificationsMatch,
		Error:               c.ErrorMessage,
	}
}
