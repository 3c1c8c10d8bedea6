package config

import "time"

// Default values applied to any field left unset by the config file and
// environment.  They mirror the CROHME training-data layout so that running
// the tool from a checkout containing task2-trainSymb2014 works without a
// config file.
const (
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "json"
	DefaultDiscoveryMarker  = "trainingSymbols"
	DefaultFilePrefix       = "iso"
	DefaultGroundTruthName  = "iso_GT.txt"
	DefaultDatasetOutput    = "ink_features.csv"
	DefaultProgressInterval = 100
	DefaultSettleDelay      = 200 * time.Millisecond
)

// ApplyDefaults fills every unset field of cfg with its platform default.
// It never overrides an explicitly configured value.
func ApplyDefaults(cfg *Config) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if len(cfg.Log.OutputPaths) == 0 {
		cfg.Log.OutputPaths = []string{"stderr"}
	}
	if cfg.Discovery.Root == "" {
		cfg.Discovery.Root = "."
	}
	if cfg.Discovery.Marker == "" {
		cfg.Discovery.Marker = DefaultDiscoveryMarker
	}
	if cfg.Discovery.FilePrefix == "" {
		cfg.Discovery.FilePrefix = DefaultFilePrefix
	}
	if len(cfg.Discovery.Exclude) == 0 {
		cfg.Discovery.Exclude = []string{DefaultGroundTruthName, "crohme_data"}
	}
	if cfg.Dataset.OutputPath == "" {
		cfg.Dataset.OutputPath = DefaultDatasetOutput
	}
	if cfg.Extraction.ProgressInterval == 0 {
		cfg.Extraction.ProgressInterval = DefaultProgressInterval
	}
	if cfg.Watch.SettleDelay == 0 {
		cfg.Watch.SettleDelay = DefaultSettleDelay
	}
}
