// Package extractor turns source identifiers into raw content records.
// Each extractor claims inputs via CanHandle; an ordered registry picks the
// first claimant, so registration order encodes priority.
package extractor

import (
	"context"

	"github.com/questionforge/ingestor/internal/domain"
)

// Extractor is the capability contract for one extraction strategy.
type Extractor interface {
	// Name identifies the extractor in logs and metrics.
	Name() string
	// CanHandle reports whether this extractor claims the input.
	CanHandle(input string) bool
	// Extract produces zero or more results for the input. Transport and
	// status failures return a *FetchError; a Result with a non-nil Err is
	// a deliberately flagged partial failure (see the repo-file extractor)
	// and must never be mistaken for data.
	Extract(ctx context.Context, input string) ([]Result, error)
}

// Result is a tagged extraction outcome: either a record or a flagged
// failure, never both.
type Result struct {
	Record domain.RawRecord
	Err    error
}

// Ok wraps a successful record.
func Ok(rec domain.RawRecord) Result { return Result{Record: rec} }

// Failed wraps a flagged per-record failure.
func Failed(err error) Result { return Result{Err: err} }

// Registry holds extractors in priority order. The most specific extractors
// come first; a universal fallback, when registered, must come last.
type Registry struct {
	extractors []Extractor
}

// NewRegistry builds a registry preserving the given order.
func NewRegistry(extractors ...Extractor) *Registry {
	return &Registry{extractors: extractors}
}

// Select returns the first extractor claiming the input, or
// domain.ErrNoHandler when none does.
func (r *Registry) Select(input string) (Extractor, error) {
	for _, ex := range r.extractors {
		if ex.CanHandle(input) {
			return ex, nil
		}
	}
	return nil, domain.ErrNoHandler
}
