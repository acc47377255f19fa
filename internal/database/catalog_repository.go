package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/questionforge/ingestor/internal/domain"
)

// CatalogRepository writes to the canonical topics and questions tables.
// It touches crawled_questions only to flip the status of the row being
// published, as the final step of the publish transaction.
type CatalogRepository struct {
	db *sqlx.DB
}

// NewCatalogRepository creates a catalog repository.
func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Publish materializes an approved staging row into the catalog as one
// atomic unit: topic find-or-create, question insert, and the staging
// status flip either all commit or none do.
//
// Topic resolution is race-safe under concurrent approvals naming the same
// new topic: the unique constraint on topics.name plus ON CONFLICT DO
// NOTHING guarantees at most one row, and the follow-up select sees the
// winner. The status flip is guarded on status = pending; losing that race
// rolls everything back and surfaces domain.ErrInvalidTransition so the
// caller can re-read and treat a concurrent approval as idempotent success.
func (r *CatalogRepository) Publish(ctx context.Context, staged *domain.CrawledQuestion, language string) (*domain.Question, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin publish: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	topicID, err := findOrCreateTopic(ctx, tx, staged.TopicName())
	if err != nil {
		return nil, err
	}

	question := &domain.Question{
		ID:            uuid.New(),
		Title:         staged.RawTitle,
		Content:       staged.RawContent,
		Level:         staged.DetectedLevel,
		Language:      language,
		Role:          staged.DetectedRole,
		Hint:          staged.Hint,
		CorrectAnswer: staged.CorrectAnswer,
		TopicID:       topicID,
		CreatedBy:     nil, // auto-ingested
		Status:        domain.StatusPublished,
	}

	insertQuestion := `
		INSERT INTO questions
			(id, title, content, level, language, role, hint, correct_answer,
			 topic_id, created_by, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`
	if err := tx.QueryRowContext(ctx, insertQuestion,
		question.ID,
		question.Title,
		question.Content,
		question.Level,
		question.Language,
		question.Role,
		question.Hint,
		question.CorrectAnswer,
		question.TopicID,
		question.CreatedBy,
		question.Status,
	).Scan(&question.CreatedAt, &question.UpdatedAt); err != nil {
		return nil, fmt.Errorf("insert question: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE crawled_questions SET status = $2 WHERE id = $1 AND status = $3`,
		staged.ID, domain.StatusApproved, domain.StatusPending,
	)
	if err != nil {
		return nil, fmt.Errorf("flip staging status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("flip staging status rows affected: %w", err)
	}
	if affected == 0 {
		// The row left pending under us; abandon the whole publish.
		return nil, domain.ErrInvalidTransition
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit publish: %w", err)
	}
	return question, nil
}

// findOrCreateTopic resolves a topic id by exact name, creating the topic
// when absent. Insert-or-fetch, never check-then-insert.
func findOrCreateTopic(ctx context.Context, tx *sqlx.Tx, name string) (uuid.UUID, error) {
	var id uuid.UUID

	insert := `
		INSERT INTO topics (id, name, description)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO NOTHING
		RETURNING id
	`
	err := tx.QueryRowContext(ctx, insert, uuid.New(), name, "Topic for "+name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, fmt.Errorf("insert topic %q: %w", name, err)
	}

	// Conflict: the topic exists (or a concurrent creator just committed).
	if err := tx.QueryRowContext(ctx,
		`SELECT id FROM topics WHERE name = $1`, name,
	).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("select topic %q: %w", name, err)
	}
	return id, nil
}
