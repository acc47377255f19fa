package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questionforge/ingestor/internal/classify"
	"github.com/questionforge/ingestor/internal/domain"
	"github.com/questionforge/ingestor/internal/extractor"
	"github.com/questionforge/ingestor/internal/logger"
)

// fakeExtractor returns canned results for every input.
type fakeExtractor struct {
	name    string
	results []extractor.Result
	err     error
}

func (f *fakeExtractor) Name() string          { return f.name }
func (f *fakeExtractor) CanHandle(string) bool { return true }

func (f *fakeExtractor) Extract(context.Context, string) ([]extractor.Result, error) {
	return f.results, f.err
}

// memoryStaging records created batches in memory.
type memoryStaging struct {
	batches [][]*domain.CrawledQuestion
	err     error
}

func (m *memoryStaging) CreateBatch(_ context.Context, questions []*domain.CrawledQuestion) error {
	if m.err != nil {
		return m.err
	}
	m.batches = append(m.batches, questions)
	return nil
}

func newTestService(ex extractor.Extractor, staging StagingStore) *Service {
	return NewService(
		extractor.NewRegistry(ex),
		classify.New(logger.Nop()),
		staging,
		logger.Nop(),
	)
}

func TestIngestStagesClassifiedBatch(t *testing.T) {
	ex := &fakeExtractor{
		name: "blog",
		results: []extractor.Result{
			extractor.Ok(domain.RawRecord{
				Source:  "blog",
				Title:   "What is a goroutine?",
				Content: "Explain the go scheduler.\n\n\n\nAnd channels.",
				URL:     "https://example.com/blog/go",
			}),
		},
	}
	staging := &memoryStaging{}
	svc := newTestService(ex, staging)

	summary, err := svc.Ingest(context.Background(), "https://example.com/blog/go")
	require.NoError(t, err)

	assert.Equal(t, "blog", summary.Source)
	assert.Equal(t, 1, summary.Count)
	assert.Empty(t, summary.Flagged)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, "What is a goroutine?", summary.Items[0].Title)
	assert.Equal(t, "Golang", summary.Items[0].Topic)

	require.Len(t, staging.batches, 1)
	q := staging.batches[0][0]
	assert.Equal(t, "Golang", q.DetectedTopic)
	assert.Equal(t, "Junior", q.DetectedLevel)
	// Normalization ran before staging.
	assert.Equal(t, "Explain the go scheduler.\n\nAnd channels.", q.RawContent)
}

func TestIngestMetaClassificationWins(t *testing.T) {
	ex := &fakeExtractor{
		name: "vn-market",
		results: []extractor.Result{
			extractor.Ok(domain.RawRecord{
				Source:    domain.SourceVietnamMarket,
				Title:     "What is Kubernetes?",
				Content:   "Docker question",
				MetaTopic: "Docker",
				MetaRole:  "DevOps",
				MetaLevel: "Senior",
				MetaTags:  []string{"Docker", "Kubernetes"},
			}),
		},
	}
	staging := &memoryStaging{}
	svc := newTestService(ex, staging)

	summary, err := svc.Ingest(context.Background(), "vn-market://questions")
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)

	q := staging.batches[0][0]
	assert.Equal(t, "Docker", q.DetectedTopic)
	assert.Equal(t, "DevOps", q.DetectedRole)
	assert.Equal(t, "Senior", q.DetectedLevel)
	assert.Equal(t, []string{"Docker", "Kubernetes"}, q.Tags)
}

func TestIngestNoHandler(t *testing.T) {
	svc := NewService(
		extractor.NewRegistry(),
		classify.New(logger.Nop()),
		&memoryStaging{},
		logger.Nop(),
	)

	_, err := svc.Ingest(context.Background(), "anything")
	assert.ErrorIs(t, err, domain.ErrNoHandler)
}

func TestIngestExtractionFailurePersistsNothing(t *testing.T) {
	ex := &fakeExtractor{name: "blog", err: errors.New("fetch failed")}
	staging := &memoryStaging{}
	svc := newTestService(ex, staging)

	_, err := svc.Ingest(context.Background(), "https://example.com/blog/x")
	require.Error(t, err)
	assert.Empty(t, staging.batches)
}

func TestIngestFlaggedResultsReportedNotStaged(t *testing.T) {
	ex := &fakeExtractor{
		name: "github",
		results: []extractor.Result{
			extractor.Failed(errors.New("url does not reference a file")),
			extractor.Ok(domain.RawRecord{
				Source:  "github",
				Title:   "README.md",
				Content: "content",
			}),
		},
	}
	staging := &memoryStaging{}
	svc := newTestService(ex, staging)

	summary, err := svc.Ingest(context.Background(), "https://github.com/x/y/blob/main/README.md")
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Count)
	require.Len(t, summary.Flagged, 1)
	assert.Contains(t, summary.Flagged[0], "does not reference a file")
	require.Len(t, staging.batches, 1)
	assert.Len(t, staging.batches[0], 1)
}

func TestIngestMalformedRecordFailsBatch(t *testing.T) {
	ex := &fakeExtractor{
		name: "generic",
		results: []extractor.Result{
			extractor.Ok(domain.RawRecord{Source: "generic", Title: "ok", Content: "fine"}),
			extractor.Ok(domain.RawRecord{Source: "generic"}),
		},
	}
	staging := &memoryStaging{}
	svc := newTestService(ex, staging)

	_, err := svc.Ingest(context.Background(), "https://example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed record")
	assert.Empty(t, staging.batches)
}

func TestIngestStagingFailure(t *testing.T) {
	ex := &fakeExtractor{
		name: "generic",
		results: []extractor.Result{
			extractor.Ok(domain.RawRecord{Source: "generic", Title: "t", Content: "c"}),
		},
	}
	staging := &memoryStaging{err: errors.New("db down")}
	svc := newTestService(ex, staging)

	_, err := svc.Ingest(context.Background(), "https://example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stage batch")
}
