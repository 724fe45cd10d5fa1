package matcher

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalErrors "alfredoptarigan/resume-matcher/internal/errors"
)

// fixedScorer returns a preset score per reference text.
type fixedScorer struct {
	scores map[string]float64
	err    error
	calls  []string
}

func (f *fixedScorer) Score(_ context.Context, a, _ string) (float64, error) {
	f.calls = append(f.calls, a)
	if f.err != nil {
		return 0, f.err
	}
	return f.scores[a], nil
}

func sectionsOf(m map[SectionName]string) SectionSet {
	set := newSectionSet()
	for name, text := range m {
		set.texts[name] = text
	}
	return set
}

func TestAggregateSingleSectionRenormalizes(t *testing.T) {
	ref := sectionsOf(map[SectionName]string{Skills: "Skills Go"})
	cand := sectionsOf(map[SectionName]string{Skills: "Skills Rust"})
	scorer := &fixedScorer{scores: map[string]float64{"Skills Go": 0.8}}

	b, err := NewAggregator(scorer).Aggregate(context.Background(), ref, cand)

	require.NoError(t, err)
	assert.Equal(t, 80.0, b.Overall)
	assert.Equal(t, map[SectionName]float64{Skills: 80.0}, b.PerSection)
}

func TestAggregateWeightsComparableSectionsOnly(t *testing.T) {
	ref := sectionsOf(map[SectionName]string{
		Skills:     "ref skills",
		Education:  "ref education",
		Experience: "ref experience",
	})
	cand := sectionsOf(map[SectionName]string{
		Skills:    "cand skills",
		Education: "cand education",
		Projects:  "cand projects",
	})
	scorer := &fixedScorer{scores: map[string]float64{
		"ref skills":    1.0,
		"ref education": 0.5,
	}}

	b, err := NewAggregator(scorer).Aggregate(context.Background(), ref, cand)

	require.NoError(t, err)
	// (0.3*1.0 + 0.2*0.5) / 0.5
	assert.Equal(t, 80.0, b.Overall)
	assert.Equal(t, map[SectionName]float64{Skills: 100.0, Education: 50.0}, b.PerSection)
	assert.Equal(t, []string{"ref skills", "ref education"}, scorer.calls)
}

func TestAggregateNoComparableSections(t *testing.T) {
	ref := sectionsOf(map[SectionName]string{Skills: "Skills Go", ContactInfo: "Jane"})
	cand := sectionsOf(map[SectionName]string{Experience: "Experience Acme", ContactInfo: "Jane"})
	scorer := &fixedScorer{}

	b, err := NewAggregator(scorer).Aggregate(context.Background(), ref, cand)

	require.NoError(t, err)
	assert.Equal(t, 0.0, b.Overall)
	assert.Empty(t, b.PerSection)
	assert.Empty(t, scorer.calls)
}

func TestAggregateRoundsToTwoDecimals(t *testing.T) {
	ref := sectionsOf(map[SectionName]string{Skills: "a", Projects: "b"})
	cand := sectionsOf(map[SectionName]string{Skills: "a2", Projects: "b2"})
	scorer := &fixedScorer{scores: map[string]float64{"a": 0.123456, "b": 0.987654}}

	b, err := NewAggregator(scorer).Aggregate(context.Background(), ref, cand)

	require.NoError(t, err)
	assert.Equal(t, 12.35, b.PerSection[Skills])
	assert.Equal(t, 98.77, b.PerSection[Projects])
	// (0.3*0.123456 + 0.1*0.987654) / 0.4 = 0.3395055
	assert.Equal(t, 33.95, b.Overall)
}

func TestAggregateStopsOnScorerError(t *testing.T) {
	ref := sectionsOf(map[SectionName]string{Skills: "a"})
	cand := sectionsOf(map[SectionName]string{Skills: "b"})
	scorer := &fixedScorer{err: internalErrors.ErrEmbeddingProviderUnavailable}

	b, err := NewAggregator(scorer).Aggregate(context.Background(), ref, cand)

	require.Error(t, err)
	assert.True(t, errors.Is(err, internalErrors.ErrEmbeddingProviderUnavailable))
	assert.Equal(t, 0.0, b.Overall)
	assert.Empty(t, b.PerSection)
}
