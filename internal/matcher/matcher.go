// Package matcher extracts resume sections and scores a candidate resume
// against a reference resume section by section.
//
// The package holds no state between calls. The reference SectionSet is a
// value that callers build once per batch and pass to ScoreCandidate; it is
// safe to share across goroutines.
package matcher

import "context"

// ExtractSections redacts contact details and segments the text.
func ExtractSections(raw string) SectionSet {
	return Segment(Normalize(raw))
}

// BuildReferenceSections prepares the reference resume for a batch run.
func BuildReferenceSections(raw string) SectionSet {
	return ExtractSections(raw)
}

// Matcher scores candidate resumes against a reference SectionSet.
type Matcher struct {
	aggregator *Aggregator
}

// New creates a Matcher using the default near-duplicate/embedding scorer.
func New(embedder Embedder) *Matcher {
	return NewWithScorer(NewScorer(embedder))
}

// NewWithScorer creates a Matcher around a custom pair scorer.
func NewWithScorer(scorer PairScorer) *Matcher {
	return &Matcher{aggregator: NewAggregator(scorer)}
}

// ScoreCandidate normalizes and segments the candidate text, then scores it
// against ref. On error the returned result is zero-scored and carries the
// error message, ready to be appended to a batch.
func (m *Matcher) ScoreCandidate(ctx context.Context, ref SectionSet, filename, raw string) (MatchResult, error) {
	cand := ExtractSections(raw)

	breakdown, err := m.aggregator.Aggregate(ctx, ref, cand)
	if err != nil {
		return FailedResult(filename, err), err
	}

	return newMatchResult(filename, breakdown), nil
}
