// Package config loads collector settings from an optional YAML file and the environment.
// Environment variables win over the file; defaults fill whatever is left.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"trending-insights-go/internal/reference"
)

const (
	DefaultAPIBaseURL      = "https://www.googleapis.com/youtube/v3"
	DefaultMaxResults      = 50
	DefaultRequestInterval = 100 * time.Millisecond
	DefaultHTTPTimeout     = 12 * time.Second
)

var (
	ErrNoRegions     = errors.New("config: no regions to process")
	ErrMissingAPIKey = errors.New("config: YOUTUBE_API_KEY is required unless SNAPSHOT_PATH is set")
)

// InvalidRegionError reports a region code that is not two ASCII letters.
type InvalidRegionError struct {
	Code string
}

func (e *InvalidRegionError) Error() string {
	return fmt.Sprintf("config: invalid region code %q", e.Code)
}

type Config struct {
	APIKey          string
	APIBaseURL      string
	Regions         []string
	MaxResults      int
	RequestInterval time.Duration
	HTTPTimeout     time.Duration
	OutputDir       string
	ExportXLSX      bool
	SnapshotPath    string
	WriteSnapshot   bool

	// DuplicateRegions lists codes dropped from Regions because they were already listed.
	DuplicateRegions []string
	// DefaultRegions is set when neither the file nor the environment named any regions.
	DefaultRegions bool
}

// FileConfig mirrors the YAML file. Pointer fields distinguish unset from zero.
type FileConfig struct {
	APIKey          string   `yaml:"api_key"`
	APIBaseURL      string   `yaml:"api_base_url"`
	Regions         []string `yaml:"regions"`
	MaxResults      *int     `yaml:"max_results"`
	RequestInterval string   `yaml:"request_interval"`
	HTTPTimeout     string   `yaml:"http_timeout"`
	OutputDir       string   `yaml:"output_dir"`
	ExportXLSX      *bool    `yaml:"export_xlsx"`
	SnapshotPath    string   `yaml:"snapshot_path"`
	WriteSnapshot   *bool    `yaml:"write_snapshot"`
}

// Load reads CONFIG_FILE (if set) and the process environment.
func Load() (Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom is Load with an injectable environment lookup.
func LoadFrom(getenv func(string) string) (Config, error) {
	var fc FileConfig
	if path := strings.TrimSpace(getenv("CONFIG_FILE")); path != "" {
		loaded, err := LoadFile(path)
		if err != nil {
			return Config{}, err
		}
		fc = *loaded
	}

	cfg := Config{
		APIKey:          firstNonEmpty(getenv("YOUTUBE_API_KEY"), fc.APIKey),
		APIBaseURL:      firstNonEmpty(getenv("YOUTUBE_API_BASE_URL"), fc.APIBaseURL, DefaultAPIBaseURL),
		OutputDir:       firstNonEmpty(getenv("OUTPUT_DIR"), fc.OutputDir, "."),
		SnapshotPath:    firstNonEmpty(getenv("SNAPSHOT_PATH"), fc.SnapshotPath),
		MaxResults:      DefaultMaxResults,
		RequestInterval: DefaultRequestInterval,
		HTTPTimeout:     DefaultHTTPTimeout,
	}
	if fc.MaxResults != nil {
		cfg.MaxResults = *fc.MaxResults
	}
	if fc.ExportXLSX != nil {
		cfg.ExportXLSX = *fc.ExportXLSX
	}
	if fc.WriteSnapshot != nil {
		cfg.WriteSnapshot = *fc.WriteSnapshot
	}

	var err error
	if v := getenv("MAX_RESULTS"); v != "" {
		if cfg.MaxResults, err = strconv.Atoi(strings.TrimSpace(v)); err != nil {
			return Config{}, fmt.Errorf("config: MAX_RESULTS: %w", err)
		}
	}
	if cfg.MaxResults < 1 || cfg.MaxResults > 50 {
		return Config{}, fmt.Errorf("config: max results %d out of range 1..50", cfg.MaxResults)
	}
	if cfg.RequestInterval, err = durationSetting("REQUEST_INTERVAL", getenv("REQUEST_INTERVAL"), fc.RequestInterval, DefaultRequestInterval); err != nil {
		return Config{}, err
	}
	if cfg.HTTPTimeout, err = durationSetting("HTTP_TIMEOUT", getenv("HTTP_TIMEOUT"), fc.HTTPTimeout, DefaultHTTPTimeout); err != nil {
		return Config{}, err
	}
	if cfg.ExportXLSX, err = boolSetting("EXPORT_XLSX", getenv("EXPORT_XLSX"), cfg.ExportXLSX); err != nil {
		return Config{}, err
	}
	if cfg.WriteSnapshot, err = boolSetting("WRITE_SNAPSHOT", getenv("WRITE_SNAPSHOT"), cfg.WriteSnapshot); err != nil {
		return Config{}, err
	}

	regions := fc.Regions
	if v := getenv("REGIONS"); v != "" {
		regions = strings.Split(v, ",")
	}
	if regions == nil {
		regions = reference.WorldRegions()
		cfg.DefaultRegions = true
	}
	if cfg.Regions, cfg.DuplicateRegions, err = NormalizeRegions(regions); err != nil {
		return Config{}, err
	}

	if cfg.APIKey == "" && cfg.SnapshotPath == "" {
		return Config{}, ErrMissingAPIKey
	}
	return cfg, nil
}

// LoadFile decodes a YAML config file, rejecting unknown keys.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var fc FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &fc, nil
}

var regionPattern = regexp.MustCompile(`^[A-Z]{2}$`)

// NormalizeRegions trims and upper-cases codes, drops blanks and repeats (first occurrence
// kept, repeats returned) and validates the rest. An empty result is ErrNoRegions.
func NormalizeRegions(codes []string) (regions []string, duplicates []string, err error) {
	seen := map[string]bool{}
	for _, c := range codes {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		if !regionPattern.MatchString(c) {
			return nil, nil, &InvalidRegionError{Code: c}
		}
		if seen[c] {
			duplicates = append(duplicates, c)
			continue
		}
		seen[c] = true
		regions = append(regions, c)
	}
	if len(regions) == 0 {
		return nil, nil, ErrNoRegions
	}
	return regions, duplicates, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func durationSetting(key, env, file string, def time.Duration) (time.Duration, error) {
	v := firstNonEmpty(env, file)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("config: %s must not be negative", key)
	}
	return d, nil
}

func boolSetting(key, env string, current bool) (bool, error) {
	if env == "" {
		return current, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(env))
	if err != nil {
		return false, fmt.Errorf("config: %s: %w", key, err)
	}
	return b, nil
}
