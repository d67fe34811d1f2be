package types

import "time"

// RawVideoRecord is one trending video observed in one region, as returned by the collector.
type RawVideoRecord struct {
	Region       string   `json:"region"`
	VideoID      string   `json:"video_id"`
	Title        string   `json:"title"`
	ChannelTitle string   `json:"channel_title"`
	CategoryID   string   `json:"category_id"`
	PublishedAt  string   `json:"published_at"`
	ViewCount    int64    `json:"view_count"`
	LikeCount    *int64   `json:"like_count,omitempty"`
	CommentCount *int64   `json:"comment_count,omitempty"`
	Duration     string   `json:"duration,omitempty"` // ISO-8601, empty when absent
	TopicIDs     []string `json:"topic_ids,omitempty"`
	Description  string   `json:"description"`
}

// CategoryMap maps a category id to its resolved display name.
type CategoryMap map[string]string

type NormalizedRecord struct {
	Country          string     `json:"region"`
	Continent        string     `json:"continent"`
	VideoID          string     `json:"video_id"`
	Title            string     `json:"title"`
	ChannelTitle     string     `json:"channel_title"`
	PublishedAt      *time.Time `json:"published_at,omitempty"` // UTC, zone dropped on export
	ViewCount        int64      `json:"view_count"`
	LikeCount        *int64     `json:"like_count,omitempty"`
	CommentCount     *int64     `json:"comment_count,omitempty"`
	Duration         string     `json:"duration,omitempty"` // H:MM:SS or MM:SS
	DurationSeconds  *float64   `json:"duration_seconds,omitempty"`
	DurationCategory string     `json:"duration_category"`
	Description      string     `json:"description"`
	CategoryName     string     `json:"category_name"`
}

// RegionCategorySummary is one (region, category) row of the distribution table.
// MaxPercentage and MaxCategory repeat the region's dominant category on every row.
type RegionCategorySummary struct {
	Region        string  `json:"region"`
	CategoryName  string  `json:"category_name"`
	Count         int     `json:"count"`
	Percentage    float64 `json:"percentage"`
	MaxPercentage float64 `json:"max_percentage"`
	MaxCategory   string  `json:"max_category"`
}
