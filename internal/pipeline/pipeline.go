// Package pipeline runs one report: collect trending records per region, resolve category
// names, normalize and aggregate. Steps run one after another; a region that fails to fetch
// is skipped and reported, it never aborts the run.
package pipeline

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"trending-insights-go/internal/aggregator"
	"trending-insights-go/internal/categories"
	"trending-insights-go/internal/config"
	"trending-insights-go/internal/logger"
	"trending-insights-go/internal/normalizer"
	"trending-insights-go/internal/types"
)

// VideoSource returns one region's trending videos.
type VideoSource interface {
	FetchTrending(ctx context.Context, region string) ([]types.RawVideoRecord, error)
}

const (
	StageVideos     = "videos"
	StageCategories = "categories"
)

// Failure is one region whose fetch failed at a stage.
type Failure struct {
	Region string
	Stage  string
	Err    error
}

type Result struct {
	Regions []string
	Raw     []types.RawVideoRecord
	// Listings holds each region's category listing as fetched, for snapshots.
	Listings   map[string]map[string]string
	Categories types.CategoryMap
	Normalized []types.NormalizedRecord
	Summary    []types.RegionCategorySummary
	Insight    aggregator.Insight
	Failures   []Failure
	Duration   time.Duration
}

// Run executes the report for regions. Only an invalid region list or a cancelled context is
// an error.
func Run(ctx context.Context, regions []string, videos VideoSource, cats categories.Source, log *logger.Logger) (*Result, error) {
	start := time.Now()
	log = log.WithComponent("pipeline")

	regions, dups, err := config.NormalizeRegions(regions)
	if err != nil {
		return nil, err
	}
	if len(dups) > 0 {
		log.WithField("duplicates", dups).Warn("dropped repeated region codes")
	}
	res := &Result{Regions: regions, Listings: map[string]map[string]string{}}

	// 1) collect
	for _, region := range regions {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("collect: %w", err)
		}
		rows, err := videos.FetchTrending(ctx, region)
		if err != nil {
			res.fail(log, region, StageVideos, err)
			continue
		}
		log.WithFields(logrus.Fields{"region": region, "videos": len(rows)}).Debug("collected region")
		res.Raw = append(res.Raw, rows...)
	}
	log.WithField("videos", len(res.Raw)).Info("collection finished")

	// 2) resolve category names
	rec := &recordingSource{next: cats, listings: res.Listings}
	res.Categories, err = categories.ResolveContext(ctx, regions, rec, func(region string, err error) {
		res.fail(log, region, StageCategories, err)
	})
	if err != nil {
		return nil, fmt.Errorf("resolve categories: %w", err)
	}
	log.WithField("categories", len(res.Categories)).Info("category map built")

	// 3) normalize, ordered by region code descending
	ordered := make([]types.RawVideoRecord, len(res.Raw))
	copy(ordered, res.Raw)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Region > ordered[j].Region })
	res.Normalized = normalizer.New(res.Categories).NormalizeAll(ordered)

	// 4) aggregate
	res.Summary = aggregator.Aggregate(res.Normalized)
	res.Insight = aggregator.Summarize(res.Normalized, res.Summary)

	res.Duration = time.Since(start)
	log.WithFields(logrus.Fields{
		"records":        len(res.Normalized),
		"summary_rows":   len(res.Summary),
		"failed_fetches": len(res.Failures),
		"regions":        res.Insight.Regions,
		"duration_ms":    res.Duration.Milliseconds(),
	}).Info("pipeline finished")
	return res, nil
}

func (r *Result) fail(log *logger.Logger, region, stage string, err error) {
	r.Failures = append(r.Failures, Failure{Region: region, Stage: stage, Err: err})
	log.WithError(err).WithFields(logrus.Fields{"region": region, "stage": stage}).Warn("region fetch failed, skipping")
}

// FailedRegions lists the regions that failed at stage, in run order.
func (r *Result) FailedRegions(stage string) []string {
	var out []string
	for _, f := range r.Failures {
		if f.Stage == stage {
			out = append(out, f.Region)
		}
	}
	return out
}

// recordingSource keeps every successful listing it passes through.
type recordingSource struct {
	next     categories.Source
	listings map[string]map[string]string
}

func (s *recordingSource) FetchCategories(ctx context.Context, region string) (map[string]string, error) {
	listing, err := s.next.FetchCategories(ctx, region)
	if err == nil {
		s.listings[region] = listing
	}
	return listing, err
}
