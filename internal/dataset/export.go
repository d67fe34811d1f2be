package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"
	"trending-insights-go/internal/types"
)

const (
	VideosFile  = "youtube_full_final.csv"
	SummaryFile = "youtube_region_category_summary.csv"

	// TimestampLayout renders publishedAt without a zone.
	TimestampLayout = "2006-01-02 15:04:05"
)

var ErrNilWriter = errors.New("dataset: nil writer")

var (
	videoColumns = []string{
		"region", "title", "channelTitle", "publishedAt", "viewCount", "likeCount",
		"commentCount", "duration", "description", "categoryName", "continent", "duration_category",
	}
	summaryColumns = []string{
		"region", "categoryName", "count", "percentage", "max_percentage", "max_category",
	}
)

func videoRow(r types.NormalizedRecord) []string {
	published := ""
	if r.PublishedAt != nil {
		published = r.PublishedAt.UTC().Format(TimestampLayout)
	}
	return []string{
		r.Country,
		r.Title,
		r.ChannelTitle,
		published,
		strconv.FormatInt(r.ViewCount, 10),
		optionalInt(r.LikeCount),
		optionalInt(r.CommentCount),
		r.Duration,
		r.Description,
		r.CategoryName,
		r.Continent,
		r.DurationCategory,
	}
}

func summaryRow(s types.RegionCategorySummary) []string {
	return []string{
		s.Region,
		s.CategoryName,
		strconv.Itoa(s.Count),
		FormatFraction(s.Percentage),
		FormatFraction(s.MaxPercentage),
		s.MaxCategory,
	}
}

// FormatFraction rounds to 4 decimals, e.g. 2/3 -> "0.6667".
func FormatFraction(f float64) string {
	return strconv.FormatFloat(math.Round(f*1e4)/1e4, 'f', -1, 64)
}

func optionalInt(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

// WriteVideosCSV writes the normalized table with a header row.
func WriteVideosCSV(w io.Writer, records []types.NormalizedRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, videoRow(r))
	}
	return writeCSV(w, videoColumns, rows)
}

// WriteSummaryCSV writes the region/category table with a header row.
func WriteSummaryCSV(w io.Writer, summary []types.RegionCategorySummary) error {
	rows := make([][]string, 0, len(summary))
	for _, s := range summary {
		rows = append(rows, summaryRow(s))
	}
	return writeCSV(w, summaryColumns, rows)
}

func writeCSV(w io.Writer, header []string, rows [][]string) error {
	if w == nil {
		return ErrNilWriter
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}

// ExportCSV writes both tables into dir. The files are independent: a failure on one does not
// stop the other, and both errors are returned.
func ExportCSV(dir string, records []types.NormalizedRecord, summary []types.RegionCategorySummary) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	errVideos := writeFile(filepath.Join(dir, VideosFile), func(w io.Writer) error {
		return WriteVideosCSV(w, records)
	})
	errSummary := writeFile(filepath.Join(dir, SummaryFile), func(w io.Writer) error {
		return WriteSummaryCSV(w, summary)
	})
	return errors.Join(errVideos, errSummary)
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// ExportXLSX writes both tables into one workbook, sheets "videos" and "summary".
func ExportXLSX(path string, records []types.NormalizedRecord, summary []types.RegionCategorySummary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "videos"); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet("summary"); err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}

	videoRows := make([][]interface{}, 0, len(records))
	for _, r := range records {
		var published interface{}
		if r.PublishedAt != nil {
			published = r.PublishedAt.UTC().Format(TimestampLayout)
		}
		videoRows = append(videoRows, []interface{}{
			r.Country, r.Title, r.ChannelTitle, published, r.ViewCount,
			cellInt(r.LikeCount), cellInt(r.CommentCount), r.Duration, r.Description,
			r.CategoryName, r.Continent, r.DurationCategory,
		})
	}
	if err := writeSheet(f, "videos", videoColumns, videoRows); err != nil {
		return err
	}

	summaryRows := make([][]interface{}, 0, len(summary))
	for _, s := range summary {
		summaryRows = append(summaryRows, []interface{}{
			s.Region, s.CategoryName, s.Count,
			math.Round(s.Percentage*1e4) / 1e4, math.Round(s.MaxPercentage*1e4) / 1e4, s.MaxCategory,
		})
	}
	if err := writeSheet(f, "summary", summaryColumns, summaryRows); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func cellInt(v *int64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]interface{}) error {
	head := make([]interface{}, len(header))
	for i, h := range header {
		head[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &head); err != nil {
		return fmt.Errorf("write %s header: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}
