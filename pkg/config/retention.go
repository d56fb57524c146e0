package config

import (
	"log/slog"
	"time"
)

// RetentionYAMLConfig is the retention section of investigator.yaml.
type RetentionYAMLConfig struct {
	Enabled           *bool  `yaml:"enabled"`
	TaskRetentionDays int    `yaml:"task_retention_days"`
	CleanupInterval   string `yaml:"cleanup_interval"` // Parsed to time.Duration
}

// RetentionConfig is the resolved retention policy consumed by
// cleanup.Service.
type RetentionConfig struct {
	// Enabled turns the background janitor on.
	Enabled bool

	// TaskRetentionDays is how long terminal tasks (and their journals)
	// are kept before deletion.
	TaskRetentionDays int

	// CleanupInterval is the period of the janitor loop.
	CleanupInterval time.Duration
}

// DefaultRetentionConfig returns the built-in retention policy: keep
// finished investigations for 90 days, sweep every 6 hours.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		Enabled:           true,
		TaskRetentionDays: 90,
		CleanupInterval:   6 * time.Hour,
	}
}

// resolveRetentionConfig applies defaults over the YAML section.
func resolveRetentionConfig(y *RetentionYAMLConfig) *RetentionConfig {
	cfg := DefaultRetentionConfig()
	if y == nil {
		return cfg
	}
	if y.Enabled != nil {
		cfg.Enabled = *y.Enabled
	}
	if y.TaskRetentionDays > 0 {
		cfg.TaskRetentionDays = y.TaskRetentionDays
	}
	if y.CleanupInterval != "" {
		d, err := time.ParseDuration(y.CleanupInterval)
		if err != nil || d <= 0 {
			slog.Warn("Invalid retention cleanup_interval, using default",
				"value", y.CleanupInterval, "default", cfg.CleanupInterval)
		} else {
			cfg.CleanupInterval = d
		}
	}
	return cfg
}
