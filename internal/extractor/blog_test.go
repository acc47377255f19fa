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

const articleHTML = `
<html>
<head><title>Go Interview Notes</title></head>
<body>
	<nav>site nav</nav>
	<h1>How We Interview Go Engineers</h1>
	<article>
		<p>We ask about goroutines.</p>
		<p>And about channels.</p>
	</article>
	<footer>copyright</footer>
</body>
</html>`

func TestBlogCanHandle(t *testing.T) {
	e := NewBlogExtractor(nil, 0)

	tests := []struct {
		input    string
		expected bool
	}{
		{"https://medium.com/@dev/go-questions", true},
		{"https://dev.to/some/post", true},
		{"https://netflixtechblog.com/post", true},
		{"https://example.com/blog/post", true},
		{"https://example.com/docs", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, e.CanHandle(tt.input), "input %q", tt.input)
	}
}

func TestBlogExtract(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(articleHTML))
	}))
	defer srv.Close()

	e := NewBlogExtractor(NewFetcher(5*time.Second), 10000)

	results, err := e.Extract(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, results, 1)

	rec := results[0].Record
	require.NoError(t, results[0].Err)
	assert.Equal(t, "blog", rec.Source)
	assert.Equal(t, "How We Interview Go Engineers", rec.Title)
	assert.Contains(t, rec.Content, "goroutines")
	assert.Contains(t, rec.Content, "channels")
	assert.NotContains(t, rec.Content, "site nav")
	assert.Equal(t, srv.URL, rec.URL)
}

func TestBlogExtractHonorsContentCap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(articleHTML))
	}))
	defer srv.Close()

	e := NewBlogExtractor(NewFetcher(5*time.Second), 8)

	results, err := e.Extract(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Len(t, []rune(results[0].Record.Content), 8)
}

func TestBlogExtractFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	e := NewBlogExtractor(NewFetcher(5*time.Second), 10000)

	_, err := e.Extract(context.Background(), srv.URL)
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusForbidden, fetchErr.StatusCode)
}
