package matcher

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalErrors "alfredoptarigan/resume-matcher/internal/errors"
	"alfredoptarigan/resume-matcher/internal/matcher/mock"
)

const referenceResume = `Jane Doe
jane.doe@example.com | +1 555 123 4567

Technical Skills
Go, PostgreSQL, Kubernetes

Work Experience
Backend engineer at Acme since 2019

Education
BSc Computer Science`

func TestBuildReferenceSectionsRedactsContactInfo(t *testing.T) {
	sections := BuildReferenceSections(referenceResume)

	contact := sections.Get(ContactInfo)
	assert.NotContains(t, contact, "jane.doe@example.com")
	assert.NotContains(t, contact, "555 123 4567")
	assert.NotContains(t, contact, "Jane Doe")
	assert.Equal(t, "Technical Skills Go, PostgreSQL, Kubernetes", sections.Get(Skills))
	assert.Equal(t, "Work Experience Backend engineer at Acme since 2019", sections.Get(Experience))
	assert.Equal(t, "Education BSc Computer Science", sections.Get(Education))
	assert.False(t, sections.Found(Projects))
}

func TestScoreCandidateIdenticalResume(t *testing.T) {
	emb := mock.NewMockEmbedder()
	m := New(emb)
	ref := BuildReferenceSections(referenceResume)

	result, err := m.ScoreCandidate(context.Background(), ref, "same.pdf", referenceResume)

	require.NoError(t, err)
	assert.Equal(t, MatchResult{
		Resume:          "same.pdf",
		MatchPercentage: 100,
		SkillsMatch:     100,
		ExperienceMatch: 100,
		EducationMatch:  100,
	}, result)
	assert.Equal(t, 0, emb.CallCount())
}

func TestScoreCandidateUsesEmbeddingsForDifferentSections(t *testing.T) {
	emb := mock.NewMockEmbedder()
	m := New(emb)
	ref := BuildReferenceSections(referenceResume)
	candidate := `John Smith
Skills
Java, Spring, Oracle

Projects
Payment gateway`

	result, err := m.ScoreCandidate(context.Background(), ref, "java.pdf", candidate)

	require.NoError(t, err)
	assert.Equal(t, 1, emb.CallCount())
	assert.InDelta(t, result.SkillsMatch, result.MatchPercentage, 0.01)
	assert.Zero(t, result.ExperienceMatch)
	assert.Zero(t, result.ProjectsMatch)
	assert.GreaterOrEqual(t, result.MatchPercentage, 0.0)
	assert.LessOrEqual(t, result.MatchPercentage, 100.0)
}

func TestScoreCandidateEmbeddingFailureZeroesResult(t *testing.T) {
	emb := mock.NewMockEmbedder()
	emb.EmbedTextsFunc = func(context.Context, []string) ([][]float32, error) {
		return nil, errors.New("connection refused")
	}
	m := New(emb)
	ref := BuildReferenceSections(referenceResume)

	result, err := m.ScoreCandidate(context.Background(), ref, "other.pdf", "Summary Text\nSkills Haskell OCaml")

	require.Error(t, err)
	assert.True(t, errors.Is(err, internalErrors.ErrEmbeddingProviderUnavailable))
	assert.Equal(t, "other.pdf", result.Resume)
	assert.Zero(t, result.MatchPercentage)
	assert.Contains(t, result.Error, "connection refused")
}

func TestScoreCandidateWithoutSections(t *testing.T) {
	m := New(mock.NewMockEmbedder())
	ref := BuildReferenceSections(referenceResume)

	result, err := m.ScoreCandidate(context.Background(), ref, "blank.txt", "nothing useful here")

	require.NoError(t, err)
	assert.Equal(t, MatchResult{Resume: "blank.txt"}, result)
}
