package domain

import (
	"time"

	"github.com/google/uuid"
)

// Topic is a canonical taxonomy entry. Name is the dedup key: at most one
// topic exists per distinct name, enforced by a unique constraint and
// resolved via find-or-create, never blind insert.
type Topic struct {
	ID          uuid.UUID `db:"id"          json:"id"`
	Name        string    `db:"name"        json:"name"`
	Description string    `db:"description" json:"description"`
}

// Question is a published catalog entry, created exactly once per approved
// staging row and never mutated by the ingestion pipeline afterward.
type Question struct {
	ID            uuid.UUID  `db:"id"             json:"id"`
	Title         string     `db:"title"          json:"title"`
	Content       string     `db:"content"        json:"content"`
	Level         string     `db:"level"          json:"level"`
	Language      string     `db:"language"       json:"language"`
	Role          string     `db:"role"           json:"role"`
	Hint          string     `db:"hint"           json:"hint,omitempty"`
	CorrectAnswer string     `db:"correct_answer" json:"correct_answer,omitempty"`
	TopicID       uuid.UUID  `db:"topic_id"       json:"topic_id"`
	CreatedBy     *uuid.UUID `db:"created_by"     json:"created_by,omitempty"`
	Status        string     `db:"status"         json:"status"`
	CreatedAt     time.Time  `db:"created_at"     json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"     json:"updated_at"`
}
