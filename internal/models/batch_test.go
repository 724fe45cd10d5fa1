package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alfredoptarigan/resume-matcher/internal/matcher"
)

func TestCandidateResultKeepsMatchColumns(t *testing.T) {
	r := matcher.MatchResult{
		Resume:              "cv.pdf",
		MatchPercentage:     77.5,
		SkillsMatch:         80,
		ExperienceMatch:     70,
		EducationMatch:      90,
		ProjectsMatch:       60,
		CertificationsMatch: 50,
		Error:               "",
	}

	row := NewCandidateResult(2, "cv_123.pdf", r)

	assert.Equal(t, 2, row.Position)
	assert.Equal(t, "cv_123.pdf", row.StoredFile)
	assert.Equal(t, r, row.MatchResult())
}

func TestBatchMatchResultsPreservesOrder(t *testing.T) {
	b := Batch{Results: []CandidateResult{
		NewCandidateResult(0, "", matcher.MatchResult{Resume: "b.pdf", MatchPercentage: 10}),
		NewCandidateResult(1, "", matcher.FailedResult("a.pdf", assert.AnError)),
	}}

	results := b.MatchResults()

	assert.Len(t, results, 2)
	assert.Equal(t, "b.pdf", results[0].Resume)
	assert.Equal(t, assert.AnError.Error(), results[1].Error)
}

func TestReferenceSectionSet(t *testing.T) {
	sections := matcher.BuildReferenceSections("Skills Go Education MIT")
	ref := Reference{Sections: sections.Map()}

	assert.Equal(t, sections, ref.SectionSet())
}

func TestNewBatchResponseSortsRows(t *testing.T) {
	b := &Batch{Results: []CandidateResult{
		NewCandidateResult(0, "s_a.pdf", matcher.MatchResult{Resume: "a.pdf", MatchPercentage: 90, SkillsMatch: 10}),
		NewCandidateResult(1, "s_b.pdf", matcher.MatchResult{Resume: "b.pdf", MatchPercentage: 50, SkillsMatch: 95}),
		NewCandidateResult(2, "s_c.pdf", matcher.MatchResult{Resume: "c.pdf", MatchPercentage: 50, SkillsMatch: 60}),
	}}

	resp := NewBatchResponse(b, matcher.SortBySkillsMatch)

	assert.Equal(t, "Skills_Match", resp.SortBy)
	assert.Equal(t, "b.pdf", resp.Results[0].Resume)
	assert.Equal(t, "s_b.pdf", resp.Results[0].File)
	assert.Equal(t, "a.pdf", resp.Results[2].Resume)

	resp = NewBatchResponse(b, matcher.SortByMatchPercentage)
	assert.Equal(t, []string{"a.pdf", "b.pdf", "c.pdf"}, []string{
		resp.Results[0].Resume, resp.Results[1].Resume, resp.Results[2].Resume,
	})
}
