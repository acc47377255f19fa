package extractor

import (
	"context"
	"fmt"
	"strings"

	"github.com/questionforge/ingestor/internal/domain"
)

const (
	githubHost    = "github.com"
	githubRawHost = "raw.githubusercontent.com"
	blobSegment   = "/blob/"
)

// RepoFileExtractor handles GitHub URLs. A blob URL is rewritten to its raw
// content URL and fetched as-is (the raw payload is already plain text, so
// no HTML heuristics apply). A URL that does not name a file, or a raw
// fetch that fails, yields a flagged Result instead of aborting, so the
// caller can report the partial failure.
type RepoFileExtractor struct {
	fetcher *Fetcher
}

// NewRepoFileExtractor builds a repo-file extractor.
func NewRepoFileExtractor(fetcher *Fetcher) *RepoFileExtractor {
	return &RepoFileExtractor{fetcher: fetcher}
}

// Name implements Extractor.
func (e *RepoFileExtractor) Name() string { return "github" }

// CanHandle claims anything on the GitHub host.
func (e *RepoFileExtractor) CanHandle(input string) bool {
	return strings.Contains(input, githubHost)
}

// Extract rewrites a view URL to its raw form and fetches the file.
func (e *RepoFileExtractor) Extract(ctx context.Context, input string) ([]Result, error) {
	if !strings.Contains(input, blobSegment) {
		// Repository root or tree URL: there is no single file to fetch.
		return []Result{Failed(fmt.Errorf("github url does not reference a file: %s", input))}, nil
	}

	rawURL := strings.Replace(input, githubHost, githubRawHost, 1)
	rawURL = strings.Replace(rawURL, blobSegment, "/", 1)

	body, err := e.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return []Result{Failed(err)}, nil
	}

	title := input[strings.LastIndex(input, "/")+1:]
	if title == "" {
		title = "GitHub Content"
	}

	return []Result{Ok(domain.RawRecord{
		Source:  "github",
		Title:   title,
		Content: string(body),
		URL:     input,
	})}, nil
}
