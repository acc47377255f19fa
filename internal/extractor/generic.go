package extractor

import (
	"context"

	"github.com/questionforge/ingestor/internal/domain"
)

// GenericExtractor is the universal fallback. It claims every input and
// applies the same container heuristics as the blog extractor with a
// smaller content cap. It must be registered last.
type GenericExtractor struct {
	fetcher    *Fetcher
	contentCap int
}

// NewGenericExtractor builds the fallback extractor.
func NewGenericExtractor(fetcher *Fetcher, contentCap int) *GenericExtractor {
	return &GenericExtractor{fetcher: fetcher, contentCap: contentCap}
}

// Name implements Extractor.
func (e *GenericExtractor) Name() string { return "generic" }

// CanHandle always claims the input.
func (e *GenericExtractor) CanHandle(string) bool { return true }

// Extract fetches the page; title falls back to the URL itself when the
// document has none.
func (e *GenericExtractor) Extract(ctx context.Context, input string) ([]Result, error) {
	body, err := e.fetcher.Fetch(ctx, input)
	if err != nil {
		return nil, err
	}
	p, err := parsePage(body)
	if err != nil {
		return nil, err
	}

	title := p.docTitle()
	if title == "" {
		title = input
	}

	return []Result{Ok(domain.RawRecord{
		Source:  "generic",
		Title:   title,
		Content: p.primaryContent(e.contentCap),
		URL:     input,
	})}, nil
}
