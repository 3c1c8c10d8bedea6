// Package config provides configuration loading, defaults, and validation
// for Ink-Intelligence.
package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix used by all settings.
const envPrefix = "INK"

// newViper builds a pre-configured Viper instance with the platform's
// standard settings: YAML file type, INK_ env prefix, automatic env binding,
// and a key replacer that maps "." → "_" so that nested keys like
// "discovery.root" resolve to "INK_DISCOVERY_ROOT".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	registerKeys(v)
	return v
}

// registerKeys declares every configuration key to viper.  AutomaticEnv only
// resolves environment overrides during Unmarshal for keys viper already
// knows about, so each key is seeded with its zero value here;
// ApplyDefaults remains the single source of real default values.
func registerKeys(v *viper.Viper) {
	for _, key := range []string{
		"log.level", "log.format", "log.output_paths",
		"metrics.enabled", "metrics.addr",
		"discovery.root", "discovery.marker", "discovery.file_prefix", "discovery.exclude",
		"ground_truth.path",
		"extraction.workers", "extraction.progress_interval",
		"dataset.output_path",
		"watch.dir", "watch.settle_delay",
	} {
		v.SetDefault(key, nil)
	}
}

// Load reads the YAML file at configPath, merges any INK_* environment
// variable overrides, applies platform defaults for unset fields, and
// validates the result.  It returns a fully-populated *Config or a
// descriptive error.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from INK_* environment variables with
// no config file required.
//
// Environment variable naming convention:
//
//	INK_<SECTION>_<FIELD>   e.g.  INK_DISCOVERY_ROOT, INK_LOG_LEVEL
func LoadFromEnv() (*Config, error) {
	v := newViper()
	return unmarshalAndFinalize(v)
}

// MustLoad is Load for program startup paths where a broken configuration
// cannot be recovered from; it panics on error.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(err)
	}
	return cfg
}

// unmarshalAndFinalize unmarshals viper state into a Config struct, applies
// defaults, and validates the result.
func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// Watch monitors configPath for changes and invokes onChange with the newly
// parsed Config whenever the file is modified on disk.  It is intended for
// hot-reloading non-critical settings such as log level during long watch
// sessions.  Watch is non-blocking; it starts a background goroutine managed
// by viper (fsnotify underneath).  If the changed file fails to parse or
// validate, onChange is not called.
func Watch(configPath string, onChange func(*Config)) {
	v := newViper()
	v.SetConfigFile(configPath)

	// Initial read — errors are ignored here; callers should call Load first.
	_ = v.ReadInConfig()

	v.WatchConfig()
	v.OnConfigChange(func(_ fsnotify.Event) {
		cfg, err := unmarshalAndFinalize(v)
		if err != nil {
			// An invalid on-disk config must not push the application into a
			// broken state; keep the previous configuration.
			return
		}
		onChange(cfg)
	})
}
