package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalErrors "alfredoptarigan/resume-matcher/internal/errors"
	"alfredoptarigan/resume-matcher/internal/matcher"
	"alfredoptarigan/resume-matcher/internal/matcher/mock"
)

const referenceText = `Jane Doe
jane.doe@example.com

Technical Skills
Go, PostgreSQL, Kubernetes

Work Experience
Backend engineer at Acme since 2019

Education
BSc Computer Science`

// mapExtractor serves extraction results keyed by path.
type mapExtractor struct {
	texts map[string]string
	errs  map[string]error
}

func (m *mapExtractor) Extract(_ context.Context, path string) (string, error) {
	if err, ok := m.errs[path]; ok {
		return "", err
	}
	return m.texts[path], nil
}

func newScreening(ext TextExtractor, emb matcher.Embedder, concurrency int) ScreeningService {
	return NewScreeningService(ext, emb, NewWorker(concurrency, nil), nil)
}

func TestBuildReference(t *testing.T) {
	ext := &mapExtractor{texts: map[string]string{"/ref.txt": referenceText}}
	s := newScreening(ext, mock.NewMockEmbedder(), 1)

	ref, err := s.BuildReference(context.Background(), "/ref.txt")

	require.NoError(t, err)
	assert.Equal(t, referenceText, ref.RawText)
	assert.True(t, ref.Sections.Found(matcher.Skills))
	assert.False(t, ref.Sections.Found(matcher.Projects))
}

func TestBuildReferencePropagatesExtractionError(t *testing.T) {
	ext := &mapExtractor{errs: map[string]error{
		"/ref.odt": internalErrors.NewUnsupportedFormatError(".odt"),
	}}
	s := newScreening(ext, mock.NewMockEmbedder(), 1)

	_, err := s.BuildReference(context.Background(), "/ref.odt")

	assert.True(t, errors.Is(err, internalErrors.ErrUnsupportedFormat))
}

func TestScoreBatchIsolatesFailures(t *testing.T) {
	ext := &mapExtractor{
		texts: map[string]string{
			"/c/same.txt":  referenceText,
			"/c/other.txt": "John Smith\nSkills\nHaskell, OCaml",
			"/c/blank.txt": "nothing to see",
		},
		errs: map[string]error{
			"/c/broken.pdf": internalErrors.NewExtractionError("/c/broken.pdf", errors.New("corrupt")),
		},
	}
	emb := mock.NewMockEmbedder()
	emb.EmbedTextsFunc = func(_ context.Context, texts []string) ([][]float32, error) {
		for _, text := range texts {
			if strings.Contains(text, "Haskell") {
				return nil, errors.New("provider down")
			}
		}
		return [][]float32{{1, 0}, {1, 0}}, nil
	}
	s := newScreening(ext, emb, 1)
	ref := matcher.BuildReferenceSections(referenceText)

	results := s.ScoreBatch(context.Background(), ref, []CandidateFile{
		{Name: "broken.pdf", Path: "/c/broken.pdf"},
		{Name: "other.txt", Path: "/c/other.txt"},
		{Name: "blank.txt", Path: "/c/blank.txt"},
		{Name: "same.txt", Path: "/c/same.txt"},
	})

	require.Len(t, results, 4)
	assert.Equal(t, "same.txt", results[0].Resume)
	assert.Equal(t, 100.0, results[0].MatchPercentage)
	assert.Empty(t, results[0].Error)

	byName := map[string]matcher.MatchResult{}
	for _, r := range results {
		byName[r.Resume] = r
	}
	assert.Contains(t, byName["broken.pdf"].Error, "corrupt")
	assert.Contains(t, byName["other.txt"].Error, "provider down")
	assert.Zero(t, byName["other.txt"].MatchPercentage)
	assert.Equal(t, matcher.MatchResult{Resume: "blank.txt"}, byName["blank.txt"])
}

func TestScoreCandidatesKeepsInputOrderWithWorkers(t *testing.T) {
	texts := map[string]string{}
	var files []CandidateFile
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		path := "/c/" + name + ".txt"
		texts[path] = "Skills " + name
		files = append(files, CandidateFile{Name: name, Path: path})
	}
	s := newScreening(&mapExtractor{texts: texts}, mock.NewMockEmbedder(), 4)
	ref := matcher.BuildReferenceSections("Skills golang")

	results := s.ScoreCandidates(context.Background(), ref, files)

	require.Len(t, results, len(files))
	for i, r := range results {
		assert.Equal(t, files[i].Name, r.Resume)
		assert.Empty(t, r.Error)
	}
}

func TestScoreCandidatesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	emb := mock.NewMockEmbedder()
	s := newScreening(&mapExtractor{texts: map[string]string{"/a.txt": "Skills rust"}}, emb, 1)

	results := s.ScoreCandidates(ctx, matcher.BuildReferenceSections("Skills golang"), []CandidateFile{{Name: "a.txt", Path: "/a.txt"}})

	require.Len(t, results, 1)
	assert.Equal(t, context.Canceled.Error(), results[0].Error)
	assert.Equal(t, 0, emb.CallCount())
}
