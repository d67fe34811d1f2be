package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"trending-insights-go/internal/actionable"
	"trending-insights-go/internal/categories"
	"trending-insights-go/internal/config"
	"trending-insights-go/internal/dataset"
	"trending-insights-go/internal/logger"
	"trending-insights-go/internal/pipeline"
	"trending-insights-go/internal/reference"
	"trending-insights-go/internal/youtube"
)

func main() {
	_ = godotenv.Load() // loads .env

	os.Exit(run(logger.New().WithRun()))
}

func run(log *logger.Logger) int {
	log.Info("starting collector")

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	if len(cfg.DuplicateRegions) > 0 {
		log.WithField("duplicates", cfg.DuplicateRegions).Warn("dropped repeated region codes")
	}
	for _, c := range reference.CountryConflicts() {
		log.WithField("conflict", c.String()).Warn("country table repeats a code, first entry kept")
	}
	for _, c := range reference.ContinentConflicts() {
		log.WithField("conflict", c.String()).Warn("continent table repeats a code, first bucket kept")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		videos pipeline.VideoSource
		cats   categories.Source
	)
	regions := cfg.Regions
	if cfg.SnapshotPath != "" {
		log.WithField("snapshot_path", cfg.SnapshotPath).Info("replaying snapshot")
		snap, err := dataset.LoadSnapshot(cfg.SnapshotPath)
		if err != nil {
			log.WithError(err).Fatal("failed to load snapshot")
		}
		if cfg.DefaultRegions {
			regions = snap.Regions
		}
		videos, cats = snap, snap
	} else {
		client := youtube.NewClient(youtube.Options{
			BaseURL:         cfg.APIBaseURL,
			APIKey:          cfg.APIKey,
			MaxResults:      cfg.MaxResults,
			Timeout:         cfg.HTTPTimeout,
			RequestInterval: cfg.RequestInterval,
		})
		videos, cats = client, client
	}
	log.WithField("regions", len(regions)).Info("collecting trending videos")

	res, err := pipeline.Run(ctx, regions, videos, cats, log)
	if err != nil {
		log.WithError(err).Fatal("pipeline aborted")
	}
	if failed := len(res.Failures); failed > 0 {
		log.WithField("failed_fetches", failed).Warn("report built from partial data")
	}

	if cfg.WriteSnapshot && cfg.SnapshotPath == "" {
		path := filepath.Join(cfg.OutputDir, "raw_snapshot.xlsx")
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			log.WithError(err).Error("snapshot dir create failed")
		} else if err := dataset.WriteSnapshot(path, res.Raw, res.Listings); err != nil {
			log.WithError(err).Error("snapshot write failed")
		} else {
			log.WithField("path", path).Info("snapshot written")
		}
	}

	exitCode := 0
	if err := dataset.ExportCSV(cfg.OutputDir, res.Normalized, res.Summary); err != nil {
		log.WithError(err).Error("csv export failed")
		exitCode = 1
	} else {
		log.WithField("files", []string{
			filepath.Join(cfg.OutputDir, dataset.VideosFile),
			filepath.Join(cfg.OutputDir, dataset.SummaryFile),
		}).Info("csv files written")
	}
	if cfg.ExportXLSX {
		path := filepath.Join(cfg.OutputDir, "youtube_trending_report.xlsx")
		if err := dataset.ExportXLSX(path, res.Normalized, res.Summary); err != nil {
			log.WithError(err).Error("xlsx export failed")
			exitCode = 1
		} else {
			log.WithField("path", path).Info("workbook written")
		}
	}

	for _, card := range actionable.Generate(res.Insight) {
		log.WithField("scope", card.Scope).WithField("action", card.Action).Info(card.Insight)
	}
	return exitCode
}
