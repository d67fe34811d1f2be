package dataset

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"trending-insights-go/internal/types"
)

const (
	rawSheet      = "raw_videos"
	categorySheet = "categories"
	topicSep      = "|"
)

var (
	ErrNoSheets    = errors.New("dataset: no sheets")
	ErrNoDataRows  = errors.New("dataset: no data rows")
	ErrRegionUnset = errors.New("dataset: region not in snapshot")
)

var (
	rawColumns = []string{
		"region", "video_id", "title", "channel_title", "category_id", "published_at",
		"view_count", "like_count", "comment_count", "duration", "topic_ids", "description",
	}
	categoryColumns = []string{"region", "category_id", "category_name"}
)

// Snapshot is a recorded collection run. It replays the per-region video and category
// listings, so a report can be rebuilt without calling the API.
type Snapshot struct {
	Regions    []string
	videos     map[string][]types.RawVideoRecord
	categories map[string]map[string]string
}

// FetchTrending returns the recorded videos of a region.
func (s *Snapshot) FetchTrending(_ context.Context, region string) ([]types.RawVideoRecord, error) {
	if !s.has(region) {
		return nil, fmt.Errorf("%w: %s", ErrRegionUnset, region)
	}
	return append([]types.RawVideoRecord(nil), s.videos[region]...), nil
}

// FetchCategories returns the recorded category listing of a region.
func (s *Snapshot) FetchCategories(_ context.Context, region string) (map[string]string, error) {
	if !s.has(region) {
		return nil, fmt.Errorf("%w: %s", ErrRegionUnset, region)
	}
	out := make(map[string]string, len(s.categories[region]))
	for k, v := range s.categories[region] {
		out[k] = v
	}
	return out, nil
}

func (s *Snapshot) has(region string) bool {
	_, v := s.videos[region]
	_, c := s.categories[region]
	return v || c
}

// WriteSnapshot records raw videos and per-region category listings into a workbook.
func WriteSnapshot(path string, raws []types.RawVideoRecord, categories map[string]map[string]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", rawSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(categorySheet); err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}

	rows := make([][]interface{}, 0, len(raws))
	for _, r := range raws {
		rows = append(rows, []interface{}{
			r.Region, r.VideoID, r.Title, r.ChannelTitle, r.CategoryID, r.PublishedAt,
			strconv.FormatInt(r.ViewCount, 10), optionalInt(r.LikeCount), optionalInt(r.CommentCount),
			r.Duration, strings.Join(r.TopicIDs, topicSep), r.Description,
		})
	}
	if err := writeSheet(f, rawSheet, rawColumns, rows); err != nil {
		return err
	}

	regions := make([]string, 0, len(categories))
	for region := range categories {
		regions = append(regions, region)
	}
	sort.Strings(regions)
	var catRows [][]interface{}
	for _, region := range regions {
		ids := make([]string, 0, len(categories[region]))
		for id := range categories[region] {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			catRows = append(catRows, []interface{}{region, id, categories[region][id]})
		}
	}
	if err := writeSheet(f, categorySheet, categoryColumns, catRows); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// LoadSnapshot reads a workbook written by WriteSnapshot. Columns are located by header name,
// so reordered or extra columns are fine.
func LoadSnapshot(path string) (*Snapshot, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	if len(f.GetSheetList()) == 0 {
		return nil, ErrNoSheets
	}
	rawRows, err := f.GetRows(rawSheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rawRows) < 1 {
		return nil, ErrNoDataRows
	}
	catRows, err := f.GetRows(categorySheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}

	s := &Snapshot{
		videos:     map[string][]types.RawVideoRecord{},
		categories: map[string]map[string]string{},
	}
	seen := map[string]bool{}
	addRegion := func(region string) {
		if !seen[region] {
			seen[region] = true
			s.Regions = append(s.Regions, region)
		}
	}

	idx := headerIndex(rawRows[0])
	for _, r := range rawRows[1:] {
		get := cellGetter(idx, r)
		region := get("region")
		if region == "" {
			continue
		}
		rec := types.RawVideoRecord{
			Region:       region,
			VideoID:      get("video_id"),
			Title:        get("title"),
			ChannelTitle: get("channel_title"),
			CategoryID:   get("category_id"),
			PublishedAt:  get("published_at"),
			LikeCount:    parseOptionalInt(get("like_count")),
			CommentCount: parseOptionalInt(get("comment_count")),
			Duration:     get("duration"),
			Description:  get("description"),
		}
		if v := parseOptionalInt(get("view_count")); v != nil {
			rec.ViewCount = *v
		}
		if topics := get("topic_ids"); topics != "" {
			rec.TopicIDs = strings.Split(topics, topicSep)
		}
		s.videos[region] = append(s.videos[region], rec)
		addRegion(region)
	}

	if len(catRows) > 0 {
		idx = headerIndex(catRows[0])
		for _, r := range catRows[1:] {
			get := cellGetter(idx, r)
			region, id, name := get("region"), get("category_id"), get("category_name")
			if region == "" || id == "" {
				continue
			}
			if s.categories[region] == nil {
				s.categories[region] = map[string]string{}
			}
			s.categories[region][id] = name
			addRegion(region)
		}
	}
	return s, nil
}

func headerIndex(header []string) map[string]int {
	idx := map[string]int{}
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, ok := idx[key]; !ok {
			idx[key] = i
		}
	}
	return idx
}

func cellGetter(idx map[string]int, row []string) func(string) string {
	return func(col string) string {
		i, ok := idx[col]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}
}

func parseOptionalInt(s string) *int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}
