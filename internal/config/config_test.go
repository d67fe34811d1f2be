package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trending-insights-go/internal/reference"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(envMap(map[string]string{"YOUTUBE_API_KEY": "key"}))
	require.NoError(t, err)

	assert.Equal(t, "key", cfg.APIKey)
	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, DefaultMaxResults, cfg.MaxResults)
	assert.Equal(t, DefaultRequestInterval, cfg.RequestInterval)
	assert.Equal(t, DefaultHTTPTimeout, cfg.HTTPTimeout)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.False(t, cfg.ExportXLSX)

	// the built-in list repeats some codes
	assert.Less(t, len(cfg.Regions), len(reference.WorldRegions()))
	assert.Contains(t, cfg.DuplicateRegions, "BN")
	assert.Equal(t, "DZ", cfg.Regions[0])
	assert.True(t, cfg.DefaultRegions)
}

func TestLoadEnvOverrides(t *testing.T) {
	cfg, err := LoadFrom(envMap(map[string]string{
		"YOUTUBE_API_KEY":  "key",
		"REGIONS":          "us, gb ,US",
		"MAX_RESULTS":      "10",
		"REQUEST_INTERVAL": "250ms",
		"EXPORT_XLSX":      "true",
		"OUTPUT_DIR":       "/tmp/out",
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"US", "GB"}, cfg.Regions)
	assert.Equal(t, []string{"US"}, cfg.DuplicateRegions)
	assert.Equal(t, 10, cfg.MaxResults)
	assert.Equal(t, 250*time.Millisecond, cfg.RequestInterval)
	assert.True(t, cfg.ExportXLSX)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
}

func TestLoadFileWithEnvPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collector.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api_key: file-key
regions: [JP, KR]
max_results: 25
http_timeout: 5s
export_xlsx: true
`), 0o600))

	cfg, err := LoadFrom(envMap(map[string]string{
		"CONFIG_FILE": path,
		"MAX_RESULTS": "30",
	}))
	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, []string{"JP", "KR"}, cfg.Regions)
	assert.Equal(t, 30, cfg.MaxResults)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.True(t, cfg.ExportXLSX)
}

func TestLoadFileRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collector.yaml")
	require.NoError(t, os.WriteFile(path, []byte("regionz: [US]\n"), 0o600))
	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadErrors(t *testing.T) {
	_, err := LoadFrom(envMap(nil))
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	_, err = LoadFrom(envMap(map[string]string{"SNAPSHOT_PATH": "raw.xlsx", "REGIONS": " , "}))
	assert.ErrorIs(t, err, ErrNoRegions)

	_, err = LoadFrom(envMap(map[string]string{"YOUTUBE_API_KEY": "k", "REGIONS": "US,USA"}))
	var invalid *InvalidRegionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "USA", invalid.Code)

	_, err = LoadFrom(envMap(map[string]string{"YOUTUBE_API_KEY": "k", "MAX_RESULTS": "51"}))
	assert.Error(t, err)

	_, err = LoadFrom(envMap(map[string]string{"YOUTUBE_API_KEY": "k", "REQUEST_INTERVAL": "soon"}))
	assert.Error(t, err)
}

func TestSnapshotModeNeedsNoKey(t *testing.T) {
	cfg, err := LoadFrom(envMap(map[string]string{"SNAPSHOT_PATH": "raw.xlsx", "REGIONS": "US"}))
	require.NoError(t, err)
	assert.Equal(t, "raw.xlsx", cfg.SnapshotPath)
}

func TestNormalizeRegions(t *testing.T) {
	regions, dups, err := NormalizeRegions([]string{"us", "", "GB", "us"})
	require.NoError(t, err)
	assert.Equal(t, []string{"US", "GB"}, regions)
	assert.Equal(t, []string{"US"}, dups)

	_, _, err = NormalizeRegions(nil)
	assert.ErrorIs(t, err, ErrNoRegions)

	_, _, err = NormalizeRegions([]string{"U1"})
	assert.Error(t, err)
}
