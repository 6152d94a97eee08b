package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SITEPACE_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("SITEPACE_DB", "")
	t.Setenv("SITEPACE_WEEKEND", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"friday", "saturday"}, cfg.WeekendDays)
	assert.Equal(t, "weekly", cfg.DefaultGranularity)
	assert.Equal(t, 8, cfg.ForecastHorizon)
	assert.NotEmpty(t, cfg.DBPath)
}

func TestLoad_FileThenEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: /tmp/from-file.db\nforecast_horizon: 4\n"), 0o644))

	t.Setenv("SITEPACE_CONFIG", path)
	t.Setenv("SITEPACE_DB", "/tmp/from-env.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/from-env.db", cfg.DBPath)
	assert.Equal(t, 4, cfg.ForecastHorizon)
}

func TestCalendar_CustomWeekend(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WeekendDays = []string{"Saturday", " sunday "}

	cal := cfg.Calendar()

	assert.False(t, cal.IsWorkingDay(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))) // Saturday
	assert.False(t, cal.IsWorkingDay(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))) // Sunday
	assert.True(t, cal.IsWorkingDay(time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)))  // Friday
}

func TestCalendar_UnknownNamesFallBackToDefault(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WeekendDays = []string{"funday"}

	cal := cfg.Calendar()

	assert.False(t, cal.IsWorkingDay(time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC))) // Friday
	assert.False(t, cal.IsWorkingDay(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))) // Saturday
}
