package models

import (
	"sort"

	"alfredoptarigan/resume-matcher/internal/matcher"
)

type ReferenceResponse struct {
	ID            string            `json:"id"`
	Filename      string            `json:"filename"`
	ExtractedText string            `json:"extracted_text"`
	Sections      map[string]string `json:"sections"`
}

type BatchResponse struct {
	ID      string      `json:"id"`
	SortBy  string      `json:"sort_by"`
	Results []ResultRow `json:"results"`
}

// ResultRow is a MatchResult plus the stored file name used by the
// resume view endpoint.
type ResultRow struct {
	matcher.MatchResult
	File string `json:"file,omitempty"`
}

// NewBatchResponse lists the batch rows sorted descending by key. Rows with
// equal values keep upload order.
func NewBatchResponse(b *Batch, key matcher.SortKey) BatchResponse {
	rows := make([]ResultRow, 0, len(b.Results))
	for _, r := range b.Results {
		rows = append(rows, ResultRow{MatchResult: r.MatchResult(), File: r.StoredFile})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Value(key) > rows[j].Value(key)
	})

	return BatchResponse{
		ID:      b.ID.String(),
		SortBy:  string(key),
		Results: rows,
	}
}
