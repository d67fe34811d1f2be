// Package normalizer turns raw trending records into report rows with resolved country,
// continent, category and duration bucket.
package normalizer

import (
	"strings"
	"time"

	"trending-insights-go/internal/duration"
	"trending-insights-go/internal/reference"
	"trending-insights-go/internal/types"
)

// UnknownCategory is used for category ids missing from the category map.
const UnknownCategory = "Unknown"

// Normalizer holds the read-only lookups for one run.
type Normalizer struct {
	Countries  map[string]string // region code -> country name
	Continents map[string]string // region code -> continent; missing codes are Other
	Categories types.CategoryMap
}

// New returns a Normalizer over the built-in reference tables.
func New(categories types.CategoryMap) *Normalizer {
	return &Normalizer{
		Countries:  reference.Countries(),
		Continents: reference.ContinentTable(),
		Categories: categories,
	}
}

// Normalize never fails: a malformed duration or timestamp leaves that field absent.
func (n *Normalizer) Normalize(raw types.RawVideoRecord) types.NormalizedRecord {
	rec := types.NormalizedRecord{
		Country:          raw.Region,
		Continent:        reference.Other,
		VideoID:          raw.VideoID,
		Title:            raw.Title,
		ChannelTitle:     raw.ChannelTitle,
		ViewCount:        raw.ViewCount,
		LikeCount:        copyInt(raw.LikeCount),
		CommentCount:     copyInt(raw.CommentCount),
		Description:      raw.Description,
		CategoryName:     UnknownCategory,
		DurationCategory: string(duration.NoDuration),
	}
	if name, ok := n.Categories[raw.CategoryID]; ok {
		rec.CategoryName = name
	}
	if name, ok := n.Countries[raw.Region]; ok {
		rec.Country = name
	}
	if c, ok := n.Continents[raw.Region]; ok {
		rec.Continent = c
	}
	if secs, err := duration.Parse(strings.TrimSpace(raw.Duration)); err == nil {
		rec.DurationSeconds = &secs
		rec.Duration = duration.Format(secs)
		rec.DurationCategory = string(duration.Classify(&secs))
	}
	if ts, ok := ParseTimestamp(raw.PublishedAt); ok {
		rec.PublishedAt = &ts
	}
	return rec
}

// NormalizeAll normalizes records keeping their order.
func (n *Normalizer) NormalizeAll(raws []types.RawVideoRecord) []types.NormalizedRecord {
	out := make([]types.NormalizedRecord, 0, len(raws))
	for _, r := range raws {
		out = append(out, n.Normalize(r))
	}
	return out
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseTimestamp parses an absolute instant and converts it to UTC. Values without a zone
// are taken as UTC.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.UTC(), true
		}
	}
	return time.Time{}, false
}

func copyInt(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
