package extractor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questionforge/ingestor/internal/domain"
)

func TestDatasetCanHandle(t *testing.T) {
	e := NewDatasetExtractor()

	assert.True(t, e.CanHandle("vn-market://questions"))
	assert.True(t, e.CanHandle("vn-market://questions?role=BackEnd"))
	assert.False(t, e.CanHandle("https://example.com"))
	assert.False(t, e.CanHandle("market://questions"))
}

func TestDatasetExtractAll(t *testing.T) {
	e := NewDatasetExtractor()

	results, err := e.Extract(context.Background(), "vn-market://questions")
	require.NoError(t, err)
	assert.Len(t, results, len(vietnamMarketRecords))

	for _, res := range results {
		require.NoError(t, res.Err)
		rec := res.Record
		assert.Equal(t, domain.SourceVietnamMarket, rec.Source)
		assert.NotEmpty(t, rec.Title)
		assert.NotEmpty(t, rec.Content)
		assert.NotEmpty(t, rec.MetaRole)
		assert.NotEmpty(t, rec.MetaLevel)
		require.NotEmpty(t, rec.MetaTags)
		assert.Equal(t, rec.MetaTags[0], rec.MetaTopic)
	}
}

func TestDatasetFilterByRole(t *testing.T) {
	e := NewDatasetExtractor()

	results, err := e.Extract(context.Background(), "vn-market://questions?role=FrontEnd")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, res := range results {
		assert.Equal(t, "FrontEnd", res.Record.MetaRole)
	}
}

func TestDatasetFilterCaseInsensitive(t *testing.T) {
	e := NewDatasetExtractor()

	upper, err := e.Extract(context.Background(), "vn-market://questions?role=FRONTEND")
	require.NoError(t, err)
	lower, err := e.Extract(context.Background(), "vn-market://questions?role=frontend")
	require.NoError(t, err)

	require.NotEmpty(t, upper)
	assert.Len(t, lower, len(upper))
}

func TestDatasetFiltersOrWithinDimension(t *testing.T) {
	e := NewDatasetExtractor()

	frontend, err := e.Extract(context.Background(), "vn-market://questions?role=FrontEnd")
	require.NoError(t, err)
	devops, err := e.Extract(context.Background(), "vn-market://questions?role=DevOps")
	require.NoError(t, err)

	both, err := e.Extract(context.Background(), "vn-market://questions?role=FrontEnd&role=DevOps")
	require.NoError(t, err)
	assert.Len(t, both, len(frontend)+len(devops))
}

func TestDatasetFiltersAndAcrossDimensions(t *testing.T) {
	e := NewDatasetExtractor()

	results, err := e.Extract(context.Background(), "vn-market://questions?role=BackEnd&level=Senior")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, res := range results {
		assert.Equal(t, "BackEnd", res.Record.MetaRole)
		assert.Equal(t, "Senior", res.Record.MetaLevel)
	}
}

func TestDatasetFilterByLangTag(t *testing.T) {
	e := NewDatasetExtractor()

	results, err := e.Extract(context.Background(), "vn-market://questions?lang=Golang")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, res := range results {
		assert.Contains(t, res.Record.MetaTags, "Golang")
	}
}

func TestDatasetFilterNoMatches(t *testing.T) {
	e := NewDatasetExtractor()

	results, err := e.Extract(context.Background(), "vn-market://questions?role=Designer")
	require.NoError(t, err)
	assert.Empty(t, results)
}
