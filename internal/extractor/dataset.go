package extractor

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/questionforge/ingestor/internal/domain"
)

// DatasetScheme is the custom scheme routed to the curated dataset.
const DatasetScheme = "vn-market://"

// DatasetSource is the source label stamped on curated records; the
// publisher maps it to the "vi" language.
const DatasetSource = domain.SourceVietnamMarket

// DatasetExtractor serves a curated in-memory collection of interview
// questions pre-tagged with role, level, and topic tags. The collection is
// read-only after construction, so concurrent extractions share it safely.
//
// Query parameters filter the collection: role, level, and lang are each
// repeatable. Within one dimension values are OR-combined; across
// dimensions filters AND-combine. lang matches against a record's tag set.
// All matching is case-insensitive exact.
type DatasetExtractor struct {
	records []datasetRecord
}

type datasetRecord struct {
	Title         string
	Content       string
	Role          string
	Level         string
	Tags          []string
	Hint          string
	CorrectAnswer string
}

// NewDatasetExtractor builds the extractor over the built-in collection.
func NewDatasetExtractor() *DatasetExtractor {
	return &DatasetExtractor{records: vietnamMarketRecords}
}

// Name implements Extractor.
func (e *DatasetExtractor) Name() string { return "vn-market" }

// CanHandle claims only the custom scheme.
func (e *DatasetExtractor) CanHandle(input string) bool {
	return strings.HasPrefix(input, DatasetScheme)
}

// Extract returns every record satisfying all supplied filter dimensions.
// Records carry their curated classification in the meta fields, so the
// downstream classifier is skipped.
func (e *DatasetExtractor) Extract(_ context.Context, input string) ([]Result, error) {
	parsed, err := url.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("parse dataset query %q: %w", input, err)
	}
	params := parsed.Query()

	roles := params["role"]
	levels := params["level"]
	langs := params["lang"]

	var results []Result
	for i := range e.records {
		rec := &e.records[i]
		if !matchesAny(roles, rec.Role) {
			continue
		}
		if !matchesAny(levels, rec.Level) {
			continue
		}
		if !tagsMatchAny(langs, rec.Tags) {
			continue
		}

		results = append(results, Ok(domain.RawRecord{
			Source:        DatasetSource,
			Title:         rec.Title,
			Content:       rec.Content,
			URL:           input,
			MetaTopic:     firstTag(rec.Tags),
			MetaRole:      rec.Role,
			MetaLevel:     rec.Level,
			MetaTags:      rec.Tags,
			Hint:          rec.Hint,
			CorrectAnswer: rec.CorrectAnswer,
		}))
	}
	return results, nil
}

// matchesAny reports whether value equals any wanted entry,
// case-insensitively. An empty filter imposes no constraint.
func matchesAny(wanted []string, value string) bool {
	if len(wanted) == 0 {
		return true
	}
	for _, w := range wanted {
		if strings.EqualFold(w, value) {
			return true
		}
	}
	return false
}

// tagsMatchAny reports whether any wanted entry is a member of tags,
// case-insensitively. An empty filter imposes no constraint.
func tagsMatchAny(wanted, tags []string) bool {
	if len(wanted) == 0 {
		return true
	}
	for _, w := range wanted {
		for _, t := range tags {
			if strings.EqualFold(w, t) {
				return true
			}
		}
	}
	return false
}

func firstTag(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return tags[0]
}
