package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/questionforge/ingestor/internal/domain"
)

// stagingSelectList is the column list for SELECT on crawled_questions.
const stagingSelectList = `id, source, raw_title, raw_content, url,
		detected_topic, detected_role, detected_level, tags, hint,
		correct_answer, status, created_at`

// StagingRepository owns the crawled_questions table.
type StagingRepository struct {
	db *sqlx.DB
}

// NewStagingRepository creates a staging repository.
func NewStagingRepository(db *sqlx.DB) *StagingRepository {
	return &StagingRepository{db: db}
}

// CreateBatch persists the given rows in a single transaction: either every
// row commits or none does. IDs and the pending status are assigned here;
// callers must not set them.
func (r *StagingRepository) CreateBatch(ctx context.Context, questions []*domain.CrawledQuestion) error {
	if len(questions) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin staging batch: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	query := `
		INSERT INTO crawled_questions
			(id, source, raw_title, raw_content, url, detected_topic,
			 detected_role, detected_level, tags, hint, correct_answer, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at
	`

	for _, q := range questions {
		q.ID = uuid.New()
		q.Status = domain.StatusPending
		if err := tx.QueryRowContext(ctx, query,
			q.ID,
			q.Source,
			q.RawTitle,
			q.RawContent,
			q.URL,
			q.DetectedTopic,
			q.DetectedRole,
			q.DetectedLevel,
			pq.Array(q.Tags),
			q.Hint,
			q.CorrectAnswer,
			q.Status,
		).Scan(&q.CreatedAt); err != nil {
			return fmt.Errorf("insert crawled question %q: %w", q.RawTitle, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit staging batch: %w", err)
	}
	return nil
}

// GetByID loads one staging row. Returns domain.ErrNotFound when absent.
func (r *StagingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.CrawledQuestion, error) {
	query := `SELECT ` + stagingSelectList + ` FROM crawled_questions WHERE id = $1`

	q, err := scanCrawledQuestion(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get crawled question: %w", err)
	}
	return q, nil
}

// ListByStatus returns up to limit rows with the given status, oldest first.
func (r *StagingRepository) ListByStatus(ctx context.Context, status string, limit int) ([]*domain.CrawledQuestion, error) {
	query := `
		SELECT ` + stagingSelectList + `
		FROM crawled_questions
		WHERE status = $1
		ORDER BY created_at ASC, id ASC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, status, limit)
	if err != nil {
		return nil, fmt.Errorf("list crawled questions: %w", err)
	}
	defer rows.Close()

	var questions []*domain.CrawledQuestion
	for rows.Next() {
		q, scanErr := scanCrawledQuestion(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("scan crawled question: %w", scanErr)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate crawled questions: %w", err)
	}
	return questions, nil
}

// UpdateStatus transitions a row out of pending. The status guard in the
// WHERE clause enforces monotonicity at the storage layer: a terminal row is
// never modified, and the attempt surfaces as domain.ErrInvalidTransition.
func (r *StagingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE crawled_questions SET status = $2 WHERE id = $1 AND status = $3`,
		id, status, domain.StatusPending,
	)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update status rows affected: %w", err)
	}
	if affected == 0 {
		// Either the row is gone or it already reached a terminal state.
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return domain.ErrInvalidTransition
	}
	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCrawledQuestion(row rowScanner) (*domain.CrawledQuestion, error) {
	var q domain.CrawledQuestion
	err := row.Scan(
		&q.ID,
		&q.Source,
		&q.RawTitle,
		&q.RawContent,
		&q.URL,
		&q.DetectedTopic,
		&q.DetectedRole,
		&q.DetectedLevel,
		pq.Array(&q.Tags),
		&q.Hint,
		&q.CorrectAnswer,
		&q.Status,
		&q.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &q, nil
}
