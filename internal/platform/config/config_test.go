package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"nextround/internal/platform/config"
)

func TestDefaultPipelineTiming(t *testing.T) {
	cfg := config.Default()
	require.Equal(t, 200*time.Millisecond, cfg.Upload.TickInterval)
	require.Equal(t, 10, cfg.Upload.ProgressStep)
	require.Equal(t, 2500*time.Millisecond, cfg.Upload.CompletionDelay)
	require.Equal(t, int64(100<<20), cfg.Upload.MaxMediaBytes)
	require.Equal(t, 50, cfg.Quota.FreeLimit)
	require.Equal(t, "builtin", cfg.Analyzer.Name)
	require.NoError(t, cfg.Validate())
}

func TestLoadReadsFileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "data_dir: " + dir + "\nupload:\n  tick_interval: 50ms\n  completion_delay: 1s\nfeed:\n  page_size: 5\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	t.Setenv("NEXTROUND_QUOTA_FREE_LIMIT", "7")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, dir, cfg.DataDir)
	require.Equal(t, 50*time.Millisecond, cfg.Upload.TickInterval)
	require.Equal(t, time.Second, cfg.Upload.CompletionDelay)
	require.Equal(t, 5, cfg.Feed.PageSize)
	require.Equal(t, 7, cfg.Quota.FreeLimit)
	require.Equal(t, filepath.Join(dir, "logs"), cfg.LogDir())
}

func TestLoadFailsForMissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("upload:\n  progress_step: 0\n"), 0o644))
	_, err := config.Load(path)
	require.ErrorContains(t, err, "progress_step")
}
