package extractor

import (
	"context"
	"strings"

	"github.com/questionforge/ingestor/internal/domain"
)

// blogDomains are the engineering blogs this extractor claims outright.
// Anything else containing "blog" in the identifier is claimed too.
var blogDomains = []string{
	"medium.com",
	"dev.to",
	"engineering.atspotify.com",
	"eng.uber.com",
	"netflixtechblog.com",
}

// BlogExtractor handles known engineering-blog domains with the article
// content heuristic and a generous content cap.
type BlogExtractor struct {
	fetcher    *Fetcher
	contentCap int
}

// NewBlogExtractor builds a blog extractor. contentCap bounds extracted
// content length in runes.
func NewBlogExtractor(fetcher *Fetcher, contentCap int) *BlogExtractor {
	return &BlogExtractor{fetcher: fetcher, contentCap: contentCap}
}

// Name implements Extractor.
func (e *BlogExtractor) Name() string { return "blog" }

// CanHandle claims known blog domains or any input mentioning "blog".
func (e *BlogExtractor) CanHandle(input string) bool {
	for _, d := range blogDomains {
		if strings.Contains(input, d) {
			return true
		}
	}
	return strings.Contains(input, "blog")
}

// Extract fetches the page and pulls the primary article region.
func (e *BlogExtractor) Extract(ctx context.Context, input string) ([]Result, error) {
	body, err := e.fetcher.Fetch(ctx, input)
	if err != nil {
		return nil, err
	}
	p, err := parsePage(body)
	if err != nil {
		return nil, err
	}

	return []Result{Ok(domain.RawRecord{
		Source:  "blog",
		Title:   p.headingTitle(),
		Content: p.primaryContent(e.contentCap),
		URL:     input,
	})}, nil
}
