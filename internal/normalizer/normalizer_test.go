package normalizer

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trending-insights-go/internal/reference"
	"trending-insights-go/internal/types"
)

func i64(v int64) *int64 { return &v }

func testNormalizer() *Normalizer {
	return New(types.CategoryMap{"10": "Music", "20": "Gaming"})
}

func TestNormalizeFullRecord(t *testing.T) {
	raw := types.RawVideoRecord{
		Region:       "US",
		VideoID:      "abc123",
		Title:        "Song",
		ChannelTitle: "Artist",
		CategoryID:   "10",
		PublishedAt:  "2025-03-01T18:30:00+02:00",
		ViewCount:    1000,
		LikeCount:    i64(50),
		Duration:     "PT3M30S",
		TopicIDs:     []string{"/m/04rlf"},
		Description:  "desc",
	}
	got := testNormalizer().Normalize(raw)

	assert.Equal(t, "United States", got.Country)
	assert.Equal(t, reference.NorthAmerica, got.Continent)
	assert.Equal(t, "Music", got.CategoryName)
	assert.Equal(t, "03:30", got.Duration)
	require.NotNil(t, got.DurationSeconds)
	assert.Equal(t, 210.0, *got.DurationSeconds)
	assert.Equal(t, "medium", got.DurationCategory)
	require.NotNil(t, got.PublishedAt)
	assert.Equal(t, time.Date(2025, 3, 1, 16, 30, 0, 0, time.UTC), *got.PublishedAt)
	assert.Equal(t, time.UTC, got.PublishedAt.Location())
	require.NotNil(t, got.LikeCount)
	assert.Equal(t, int64(50), *got.LikeCount)
	assert.Nil(t, got.CommentCount)
	assert.Equal(t, "abc123", got.VideoID)
	assert.Equal(t, "desc", got.Description)
}

func TestNormalizeUnknownCategory(t *testing.T) {
	got := testNormalizer().Normalize(types.RawVideoRecord{Region: "US", CategoryID: "99"})
	assert.Equal(t, UnknownCategory, got.CategoryName)

	got = testNormalizer().Normalize(types.RawVideoRecord{Region: "US"})
	assert.Equal(t, UnknownCategory, got.CategoryName)
}

func TestNormalizeUnknownRegionPassesThrough(t *testing.T) {
	got := testNormalizer().Normalize(types.RawVideoRecord{Region: "ZZ", CategoryID: "10"})
	assert.Equal(t, "ZZ", got.Country)
	assert.Equal(t, reference.Other, got.Continent)
}

func TestNormalizeKnownCountryWithoutContinent(t *testing.T) {
	got := testNormalizer().Normalize(types.RawVideoRecord{Region: "AQ"})
	assert.Equal(t, "Antarctica", got.Country)
	assert.Equal(t, reference.Other, got.Continent)
}

func TestNormalizeMalformedFieldsDegrade(t *testing.T) {
	got := testNormalizer().Normalize(types.RawVideoRecord{
		Region:      "GB",
		CategoryID:  "20",
		PublishedAt: "yesterday",
		Duration:    "five minutes",
	})
	assert.Nil(t, got.PublishedAt)
	assert.Empty(t, got.Duration)
	assert.Nil(t, got.DurationSeconds)
	assert.Equal(t, "no duration", got.DurationCategory)
	assert.Equal(t, "United Kingdom", got.Country)
	assert.Equal(t, reference.Europe, got.Continent)
	assert.Equal(t, "Gaming", got.CategoryName)
}

func TestNormalizeLiveStreamDuration(t *testing.T) {
	got := testNormalizer().Normalize(types.RawVideoRecord{Region: "US", Duration: "P0D"})
	assert.Equal(t, "00:00", got.Duration)
	assert.Equal(t, "very short", got.DurationCategory)
}

func TestNormalizeIsDeterministic(t *testing.T) {
	n := testNormalizer()
	raw := types.RawVideoRecord{
		Region: "JP", CategoryID: "10", PublishedAt: "2025-01-02T03:04:05Z",
		Duration: "PT1H1S", CommentCount: i64(3),
	}
	first := n.Normalize(raw)
	second := n.Normalize(raw)
	assert.Empty(t, cmp.Diff(first, second))
	assert.Equal(t, "1:00:01", first.Duration)
	assert.Equal(t, "long", first.DurationCategory)
}

func TestNormalizeDoesNotAliasRawCounts(t *testing.T) {
	likes := i64(7)
	got := testNormalizer().Normalize(types.RawVideoRecord{Region: "US", LikeCount: likes})
	*likes = 8
	assert.Equal(t, int64(7), *got.LikeCount)
}

func TestNormalizeAllKeepsOrder(t *testing.T) {
	got := testNormalizer().NormalizeAll([]types.RawVideoRecord{
		{Region: "US", VideoID: "a"},
		{Region: "FR", VideoID: "b"},
	})
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].VideoID)
	assert.Equal(t, "France", got[1].Country)
}

func TestParseTimestamp(t *testing.T) {
	ts, ok := ParseTimestamp("2025-06-01T12:00:00.123Z")
	require.True(t, ok)
	assert.Equal(t, 123000000, ts.Nanosecond())

	ts, ok = ParseTimestamp("2025-06-01T12:00:00")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), ts)

	_, ok = ParseTimestamp("")
	assert.False(t, ok)
}
