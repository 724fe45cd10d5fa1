package matcher

import (
	"sort"
	"strconv"
)

// MatchResult is one candidate row of a batch run.
type MatchResult struct {
	Resume              string  `json:"Resume"`
	MatchPercentage     float64 `json:"Match_Percentage"`
	SkillsMatch         float64 `json:"Skills_Match"`
	ExperienceMatch     float64 `json:"Experience_Match"`
	EducationMatch      float64 `json:"Education_Match"`
	ProjectsMatch       float64 `json:"Projects_Match"`
	CertificationsMatch float64 `json:"Certifications_Match"`
	Error               string  `json:"Error,omitempty"`
}

// SortKey names a numeric column of MatchResult.
type SortKey string

const (
	SortByMatchPercentage     SortKey = "Match_Percentage"
	SortBySkillsMatch         SortKey = "Skills_Match"
	SortByExperienceMatch     SortKey = "Experience_Match"
	SortByEducationMatch      SortKey = "Education_Match"
	SortByProjectsMatch       SortKey = "Projects_Match"
	SortByCertificationsMatch SortKey = "Certifications_Match"
)

// DefaultSortKey is used whenever a requested key is unknown.
const DefaultSortKey = SortByMatchPercentage

// SortKeys returns every numeric column in export order.
func SortKeys() []SortKey {
	return []SortKey{
		SortByMatchPercentage,
		SortBySkillsMatch,
		SortByExperienceMatch,
		SortByEducationMatch,
		SortByProjectsMatch,
		SortByCertificationsMatch,
	}
}

// ParseSortKey never fails: unknown keys fall back to Match_Percentage.
func ParseSortKey(s string) SortKey {
	for _, key := range SortKeys() {
		if string(key) == s {
			return key
		}
	}
	return DefaultSortKey
}

// Value returns the column selected by key.
func (r MatchResult) Value(key SortKey) float64 {
	switch key {
	case SortBySkillsMatch:
		return r.SkillsMatch
	case SortByExperienceMatch:
		return r.ExperienceMatch
	case SortByEducationMatch:
		return r.EducationMatch
	case SortByProjectsMatch:
		return r.ProjectsMatch
	case SortByCertificationsMatch:
		return r.CertificationsMatch
	default:
		return r.MatchPercentage
	}
}

// Columns returns the export header row.
func Columns() []string {
	cols := []string{"Resume"}
	for _, key := range SortKeys() {
		cols = append(cols, string(key))
	}
	return append(cols, "Error")
}

// Row renders the result in Columns order.
func (r MatchResult) Row() []string {
	row := []string{r.Resume}
	for _, key := range SortKeys() {
		row = append(row, strconv.FormatFloat(r.Value(key), 'f', -1, 64))
	}
	return append(row, r.Error)
}

// SortResults returns a copy sorted descending by key. Ties keep their
// original order.
func SortResults(results []MatchResult, key SortKey) []MatchResult {
	sorted := make([]MatchResult, len(results))
	copy(sorted, results)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value(key) > sorted[j].Value(key)
	})

	return sorted
}

// FailedResult is the zero-scored row recorded for a candidate that could
// not be processed.
func FailedResult(filename string, err error) MatchResult {
	result := MatchResult{Resume: filename}
	if err != nil {
		result.Error = err.Error()
	}
	return result
}

func newMatchResult(filename string, b Breakdown) MatchResult {
	return MatchResult{
		Resume:              filename,
		MatchPercentage:     b.Overall,
		SkillsMatch:         b.PerSection[Skills],
		ExperienceMatch:     b.PerSection[Experience],
		EducationMatch:      b.PerSection[Education],
		ProjectsMatch:       b.PerSection[Projects],
		CertificationsMatch: b.PerSection[Certifications],
	}
}
