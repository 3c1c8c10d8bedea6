// Package config defines all configuration structures for Ink-Intelligence.
// No I/O or parsing logic lives here — only plain data types and validation.
package config

import (
	"fmt"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sub-configuration structs
// ─────────────────────────────────────────────────────────────────────────────

// LogConfig holds structured-logging parameters.
type LogConfig struct {
	Level       string   `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format      string   `mapstructure:"format"` // "json" | "console"
	OutputPaths []string `mapstructure:"output_paths"`
}

// MetricsConfig holds Prometheus exposition parameters.  Metrics are always
// recorded; Addr controls whether an HTTP listener exposes them during
// long-running dataset builds and watch sessions.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
}

// DiscoveryConfig holds the parameters used to locate symbol files under a
// training-data root.
type DiscoveryConfig struct {
	// Root is the directory walked for symbol files.
	Root string `mapstructure:"root"`

	// Marker is the path component that identifies a directory holding
	// symbol files (CROHME ships them under "trainingSymbols").
	Marker string `mapstructure:"marker"`

	// FilePrefix is the file-name prefix of a symbol file ("iso").
	FilePrefix string `mapstructure:"file_prefix"`

	// Exclude lists file names skipped during discovery (the ground-truth
	// table lives alongside the samples).
	Exclude []string `mapstructure:"exclude"`
}

// GroundTruthConfig holds the location of the identifier → label table.
type GroundTruthConfig struct {
	Path string `mapstructure:"path"`
}

// ExtractionConfig holds pipeline execution parameters.
type ExtractionConfig struct {
	// Workers is the size of the batch worker pool.  Zero selects
	// runtime.NumCPU().
	Workers int `mapstructure:"workers"`

	// ProgressInterval is the number of processed samples between progress
	// log entries during a batch run.  Zero selects the platform default;
	// a negative value is rejected by Validate.
	ProgressInterval int `mapstructure:"progress_interval"`
}

// DatasetConfig holds dataset assembly parameters.
type DatasetConfig struct {
	// OutputPath is the CSV file the assembler writes.
	OutputPath string `mapstructure:"output_path"`
}

// WatchConfig holds ingest-watcher parameters.
type WatchConfig struct {
	// Dir is the directory observed for newly created sample files.
	Dir string `mapstructure:"dir"`

	// SettleDelay is how long to wait after a create event before reading
	// the file, letting slow writers finish.
	SettleDelay time.Duration `mapstructure:"settle_delay"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Top-level Config
// ─────────────────────────────────────────────────────────────────────────────

// Config is the root configuration for every ink command.
type Config struct {
	Log         LogConfig         `mapstructure:"log"`
	Metrics     MetricsConfig     `mapstructure:"metrics"`
	Discovery   DiscoveryConfig   `mapstructure:"discovery"`
	GroundTruth GroundTruthConfig `mapstructure:"ground_truth"`
	Extraction  ExtractionConfig  `mapstructure:"extraction"`
	Dataset     DatasetConfig     `mapstructure:"dataset"`
	Watch       WatchConfig       `mapstructure:"watch"`
}

// Validate checks cross-field consistency.  It assumes ApplyDefaults has
// already run.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level: unsupported value %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format: unsupported value %q", c.Log.Format)
	}
	if c.Extraction.Workers < 0 {
		return fmt.Errorf("extraction.workers: must be >= 0, got %d", c.Extraction.Workers)
	}
	if c.Extraction.ProgressInterval < 0 {
		return fmt.Errorf("extraction.progress_interval: must be >= 0, got %d", c.Extraction.ProgressInterval)
	}
	if c.Metrics.Enabled && c.Metrics.Addr == "" {
		return fmt.Errorf("metrics.addr: required when metrics.enabled is true")
	}
	if c.Watch.SettleDelay < 0 {
		return fmt.Errorf("watch.settle_delay: must be >= 0, got %s", c.Watch.SettleDelay)
	}
	return nil
}
