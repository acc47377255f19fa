// Package publisher implements the staging review state machine: approve
// materializes a staged question into the canonical catalog, reject closes
// it out.
package publisher

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/questionforge/ingestor/internal/domain"
	"github.com/questionforge/ingestor/internal/logger"
	"github.com/questionforge/ingestor/internal/metrics"
)

// StagingStore is the slice of the staging repository the publisher needs.
type StagingStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CrawledQuestion, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

// CatalogStore performs the atomic publish write.
type CatalogStore interface {
	Publish(ctx context.Context, staged *domain.CrawledQuestion, language string) (*domain.Question, error)
}

// sourceLanguages maps a record source to the published question language.
// Extend here when new curated sources appear; anything unlisted is English.
var sourceLanguages = map[string]string{
	domain.SourceVietnamMarket: "vi",
}

const defaultLanguage = "en"

// LanguageFor returns the catalog language for a record source.
func LanguageFor(source string) string {
	if lang, ok := sourceLanguages[source]; ok {
		return lang
	}
	return defaultLanguage
}

// Service drives approve/reject transitions.
//
// Transition policy: pending may move to approved or rejected. Re-approving
// an approved row is an idempotent success with zero writes, as is
// re-rejecting a rejected row. Crossing terminal states in either direction
// (approve a rejected row, reject an approved row) is an invalid transition
// and returns domain.ErrInvalidTransition.
type Service struct {
	staging StagingStore
	catalog CatalogStore
	log     logger.Logger
}

// NewService builds the publisher.
func NewService(staging StagingStore, catalog CatalogStore, log logger.Logger) *Service {
	return &Service{staging: staging, catalog: catalog, log: log}
}

// Approve publishes the staging row with the given id. On success the
// canonical question exists, the topic is resolved (created if new), and
// the staging row is approved, all in one transaction.
func (s *Service) Approve(ctx context.Context, id uuid.UUID) error {
	staged, err := s.staging.GetByID(ctx, id)
	if err != nil {
		return err
	}

	switch staged.Status {
	case domain.StatusApproved:
		// Idempotent retry: already published, nothing to write.
		return nil
	case domain.StatusRejected:
		return fmt.Errorf("approve rejected question %s: %w", id, domain.ErrInvalidTransition)
	}

	question, err := s.catalog.Publish(ctx, staged, LanguageFor(staged.Source))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			// Lost a race on the status flip; re-read to find the winner.
			return s.resolveApproveRace(ctx, id)
		}
		return fmt.Errorf("publish question %s: %w", id, err)
	}

	metrics.PublishedTotal.Inc()
	s.log.Info("question published",
		logger.String("crawled_id", id.String()),
		logger.String("question_id", question.ID.String()),
		logger.String("topic_id", question.TopicID.String()),
		logger.String("language", question.Language))
	return nil
}

// resolveApproveRace decides the outcome after a concurrent transition beat
// this approval: a concurrent approve means idempotent success, a
// concurrent reject means conflict.
func (s *Service) resolveApproveRace(ctx context.Context, id uuid.UUID) error {
	staged, err := s.staging.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if staged.Status == domain.StatusApproved {
		return nil
	}
	return fmt.Errorf("approve question %s in status %s: %w", id, staged.Status, domain.ErrInvalidTransition)
}

// Reject closes out a pending staging row. No catalog writes.
func (s *Service) Reject(ctx context.Context, id uuid.UUID) error {
	staged, err := s.staging.GetByID(ctx, id)
	if err != nil {
		return err
	}

	switch staged.Status {
	case domain.StatusRejected:
		return nil
	case domain.StatusApproved:
		return fmt.Errorf("reject approved question %s: %w", id, domain.ErrInvalidTransition)
	}

	if err := s.staging.UpdateStatus(ctx, id, domain.StatusRejected); err != nil {
		return err
	}

	s.log.Info("question rejected", logger.String("crawled_id", id.String()))
	return nil
}
