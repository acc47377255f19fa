package domain

import (
	"time"

	"github.com/google/uuid"
)

// Staging status values. Status is monotone: once a row reaches a terminal
// state (approved or rejected) it never leaves it.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Published is the status stamped on questions materialized into the catalog.
const StatusPublished = "published"

// CrawledQuestion is a staged, classified record awaiting review.
// The raw fields and detected classification are immutable after creation;
// only Status changes, and only pending rows may transition.
type CrawledQuestion struct {
	ID            uuid.UUID `db:"id"             json:"id"`
	Source        string    `db:"source"         json:"source"`
	RawTitle      string    `db:"raw_title"      json:"raw_title"`
	RawContent    string    `db:"raw_content"    json:"raw_content"`
	URL           string    `db:"url"            json:"url"`
	DetectedTopic string    `db:"detected_topic" json:"detected_topic"`
	DetectedRole  string    `db:"detected_role"  json:"detected_role"`
	DetectedLevel string    `db:"detected_level" json:"detected_level"`
	Tags          []string  `db:"tags"           json:"tags,omitempty"`
	Hint          string    `db:"hint"           json:"hint,omitempty"`
	CorrectAnswer string    `db:"correct_answer" json:"correct_answer,omitempty"`
	Status        string    `db:"status"         json:"status"`
	CreatedAt     time.Time `db:"created_at"     json:"created_at"`
}

// Terminal reports whether the row has reached a final review state.
func (q *CrawledQuestion) Terminal() bool {
	return q.Status == StatusApproved || q.Status == StatusRejected
}

// TopicName resolves the canonical topic name used on publish: the first
// curated tag when present, otherwise the detected topic, otherwise General.
func (q *CrawledQuestion) TopicName() string {
	if len(q.Tags) > 0 && q.Tags[0] != "" {
		return q.Tags[0]
	}
	if q.DetectedTopic != "" {
		return q.DetectedTopic
	}
	return "General"
}
