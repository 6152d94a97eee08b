package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/sitepace/internal/engine"
)

// Config holds all runtime configuration. Values come from defaults, then an
// optional YAML file, then environment variables, each layer overriding the
// previous one.
type Config struct {
	DBPath string `yaml:"db_path"`

	// LogPath receives structured use-case logs; empty disables them.
	LogPath string `yaml:"log_path"`

	NoColor bool `yaml:"no_color"`

	// WeekendDays are English weekday names treated as non-working.
	WeekendDays []string `yaml:"weekend_days"`

	DefaultGranularity string `yaml:"default_granularity"`
	ForecastHorizon    int    `yaml:"forecast_horizon"`
}

// DefaultConfig returns the configuration used when nothing is set: database
// under the user's home, Friday/Saturday weekend, weekly reporting.
func DefaultConfig() Config {
	return Config{
		WeekendDays:        []string{"friday", "saturday"},
		DefaultGranularity: "weekly",
		ForecastHorizon:    8,
	}
}

// Load builds the effective configuration. The YAML file path comes from
// SITEPACE_CONFIG, falling back to ~/.sitepace/config.yaml; a missing file
// is not an error.
func Load() (Config, error) {
	cfg := DefaultConfig()

	path := os.Getenv("SITEPACE_CONFIG")
	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, ".sitepace", "config.yaml")
		}
	}
	if path != "" {
		if err := loadFile(&cfg, path); err != nil {
			return cfg, err
		}
	}

	applyEnv(&cfg)

	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".sitepace", "sitepace.db")
	}

	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SITEPACE_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("SITEPACE_LOG"); v != "" {
		cfg.LogPath = v
	}
	if v := os.Getenv("SITEPACE_NO_COLOR"); v != "" {
		cfg.NoColor, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("SITEPACE_WEEKEND"); v != "" {
		cfg.WeekendDays = strings.Split(v, ",")
	}
	if v := os.Getenv("SITEPACE_GRANULARITY"); v != "" {
		cfg.DefaultGranularity = v
	}
	if v := os.Getenv("SITEPACE_HORIZON"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ForecastHorizon = n
		}
	}
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Calendar materializes the configured weekend into a working calendar.
// Unknown day names are ignored; an empty or fully-unknown list falls back
// to the Friday/Saturday default.
func (c Config) Calendar() engine.Calendar {
	var days []time.Weekday
	for _, name := range c.WeekendDays {
		if d, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]; ok {
			days = append(days, d)
		}
	}
	if len(days) == 0 {
		return engine.DefaultCalendar()
	}
	return engine.NewCalendar(days...)
}
