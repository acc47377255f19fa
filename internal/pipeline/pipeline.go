// Package pipeline wires extraction, normalization, classification, and
// staging into the ingestion flow.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/questionforge/ingestor/internal/classify"
	"github.com/questionforge/ingestor/internal/content"
	"github.com/questionforge/ingestor/internal/domain"
	"github.com/questionforge/ingestor/internal/extractor"
	"github.com/questionforge/ingestor/internal/logger"
	"github.com/questionforge/ingestor/internal/metrics"
)

// StagingStore is the slice of the staging repository the pipeline needs.
type StagingStore interface {
	CreateBatch(ctx context.Context, questions []*domain.CrawledQuestion) error
}

// ItemSummary describes one staged row in an ingestion response.
type ItemSummary struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Topic string    `json:"topic"`
	Role  string    `json:"role"`
	Level string    `json:"level"`
}

// Summary is the outcome of one ingestion request. Flagged lists per-record
// failures an extractor chose not to abort on; those records are reported,
// never staged.
type Summary struct {
	Source  string        `json:"source"`
	Count   int           `json:"count"`
	Items   []ItemSummary `json:"items"`
	Flagged []string      `json:"flagged,omitempty"`
}

// Service runs the ingestion flow for one input identifier.
type Service struct {
	registry   *extractor.Registry
	classifier *classify.Classifier
	staging    StagingStore
	log        logger.Logger
}

// NewService builds the ingestion service.
func NewService(registry *extractor.Registry, classifier *classify.Classifier, staging StagingStore, log logger.Logger) *Service {
	return &Service{
		registry:   registry,
		classifier: classifier,
		staging:    staging,
		log:        log,
	}
}

// Ingest selects an extractor for the input, extracts, normalizes,
// classifies, and stages everything as one pending batch. A failed
// extraction persists nothing; a malformed record (no title, no content)
// fails the whole batch rather than being dropped silently.
func (s *Service) Ingest(ctx context.Context, input string) (*Summary, error) {
	ex, err := s.registry.Select(input)
	if err != nil {
		return nil, err
	}

	results, err := ex.Extract(ctx, input)
	if err != nil {
		metrics.ExtractionsTotal.WithLabelValues(ex.Name(), "error").Inc()
		return nil, err
	}
	metrics.ExtractionsTotal.WithLabelValues(ex.Name(), "ok").Inc()

	summary := &Summary{Source: ex.Name()}
	var questions []*domain.CrawledQuestion

	for i := range results {
		res := &results[i]
		if res.Err != nil {
			s.log.Warn("extraction produced flagged record",
				logger.String("extractor", ex.Name()),
				logger.String("input", input),
				logger.Err(res.Err))
			summary.Flagged = append(summary.Flagged, res.Err.Error())
			continue
		}

		rec := res.Record
		if rec.Empty() {
			return nil, fmt.Errorf("extractor %s produced malformed record for %s", ex.Name(), input)
		}

		normalized := content.Normalize(rec.Content)
		topic, role, level := s.classifier.Apply(&rec, normalized)

		questions = append(questions, &domain.CrawledQuestion{
			Source:        rec.Source,
			RawTitle:      rec.Title,
			RawContent:    normalized,
			URL:           rec.URL,
			DetectedTopic: topic,
			DetectedRole:  role,
			DetectedLevel: level,
			Tags:          rec.MetaTags,
			Hint:          rec.Hint,
			CorrectAnswer: rec.CorrectAnswer,
		})
	}

	if err := s.staging.CreateBatch(ctx, questions); err != nil {
		return nil, fmt.Errorf("stage batch: %w", err)
	}
	metrics.StagedTotal.Add(float64(len(questions)))

	summary.Count = len(questions)
	for _, q := range questions {
		summary.Items = append(summary.Items, ItemSummary{
			ID:    q.ID,
			Title: q.RawTitle,
			Topic: q.DetectedTopic,
			Role:  q.DetectedRole,
			Level: q.DetectedLevel,
		})
	}

	s.log.Info("ingestion staged",
		logger.String("extractor", ex.Name()),
		logger.String("input", input),
		logger.Int("count", summary.Count),
		logger.Int("flagged", len(summary.Flagged)))

	return summary, nil
}
