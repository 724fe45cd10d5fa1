package matcher

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleResults() []MatchResult {
	return []MatchResult{
		{Resume: "a.pdf", MatchPercentage: 90, SkillsMatch: 10},
		{Resume: "b.pdf", MatchPercentage: 50, SkillsMatch: 95},
		{Resume: "c.pdf", MatchPercentage: 70, SkillsMatch: 60},
	}
}

func names(results []MatchResult) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.Resume)
	}
	return out
}

func TestSortResultsBySkills(t *testing.T) {
	results := sampleResults()

	sorted := SortResults(results, ParseSortKey("Skills_Match"))

	assert.Equal(t, []string{"b.pdf", "c.pdf", "a.pdf"}, names(sorted))
	// input untouched
	assert.Equal(t, []string{"a.pdf", "b.pdf", "c.pdf"}, names(results))
}

func TestSortResultsInvalidKeyFallsBack(t *testing.T) {
	sorted := SortResults(sampleResults(), ParseSortKey("Foo_Bar"))

	assert.Equal(t, []string{"a.pdf", "c.pdf", "b.pdf"}, names(sorted))
}

func TestSortResultsStableOnTies(t *testing.T) {
	results := []MatchResult{
		{Resume: "first", MatchPercentage: 40},
		{Resume: "second", MatchPercentage: 40},
		{Resume: "top", MatchPercentage: 41},
	}

	sorted := SortResults(results, SortByMatchPercentage)

	assert.Equal(t, []string{"top", "first", "second"}, names(sorted))
}

func TestParseSortKey(t *testing.T) {
	for _, key := range SortKeys() {
		assert.Equal(t, key, ParseSortKey(string(key)))
	}
	assert.Equal(t, DefaultSortKey, ParseSortKey(""))
	assert.Equal(t, DefaultSortKey, ParseSortKey("skills_match"))
	assert.Equal(t, DefaultSortKey, ParseSortKey("Resume"))
}

func TestColumnsAndRow(t *testing.T) {
	r := MatchResult{
		Resume:              "x.docx",
		MatchPercentage:     81.25,
		SkillsMatch:         90,
		ExperienceMatch:     72.5,
		CertificationsMatch: 100,
	}

	assert.Equal(t, []string{
		"Resume", "Match_Percentage", "Skills_Match", "Experience_Match",
		"Education_Match", "Projects_Match", "Certifications_Match", "Error",
	}, Columns())
	assert.Equal(t, []string{"x.docx", "81.25", "90", "72.5", "0", "0", "100", ""}, r.Row())
}

func TestFailedResult(t *testing.T) {
	r := FailedResult("broken.pdf", errors.New("boom"))

	assert.Equal(t, MatchResult{Resume: "broken.pdf", Error: "boom"}, r)
	assert.Equal(t, MatchResult{Resume: "ok.pdf"}, FailedResult("ok.pdf", nil))
}
