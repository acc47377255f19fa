package extractor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepoFileCanHandle(t *testing.T) {
	e := NewRepoFileExtractor(nil)

	assert.True(t, e.CanHandle("https://github.com/org/repo/blob/main/README.md"))
	assert.True(t, e.CanHandle("https://github.com/org/repo"))
	assert.False(t, e.CanHandle("https://gitlab.com/org/repo"))
}

func TestRepoFileExtractBlobURL(t *testing.T) {
	var fetchedPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetchedPath = r.URL.Path
		_, _ = w.Write([]byte("# Go Questions\n\nWhat is a goroutine?"))
	}))
	defer srv.Close()

	e := NewRepoFileExtractor(NewFetcher(5 * time.Second))

	input := srv.URL + "/org/repo/blob/main/questions.md"
	results, err := e.Extract(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)

	// The /blob/ segment is dropped to form the raw content path.
	assert.Equal(t, "/org/repo/main/questions.md", fetchedPath)

	rec := results[0].Record
	assert.Equal(t, "github", rec.Source)
	assert.Equal(t, "questions.md", rec.Title)
	assert.Contains(t, rec.Content, "What is a goroutine?")
	assert.Equal(t, input, rec.URL)
}

func TestRepoFileExtractNonFileURLIsFlagged(t *testing.T) {
	e := NewRepoFileExtractor(NewFetcher(5 * time.Second))

	results, err := e.Extract(context.Background(), "https://github.com/org/repo")
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Error(t, results[0].Err)
	assert.Contains(t, results[0].Err.Error(), "does not reference a file")
}

func TestRepoFileExtractFetchFailureIsFlagged(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	e := NewRepoFileExtractor(NewFetcher(5 * time.Second))

	results, err := e.Extract(context.Background(), srv.URL+"/org/repo/blob/main/missing.md")
	require.NoError(t, err)
	require.Len(t, results, 1)

	var fetchErr *FetchError
	require.ErrorAs(t, results[0].Err, &fetchErr)
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
}
