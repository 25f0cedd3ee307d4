// Package config provides configuration types and defaults for the
// squirrel CLI.
package config

import (
	"fmt"

	"github.com/nyonicai/squirrel-core/internal/tracing"
)

// CatalogConfig locates the catalog documents to compose.
type CatalogConfig struct {
	// Files are individual catalog documents, joined (must be disjoint).
	Files []string `mapstructure:"files"`

	// Dirs are directories scanned for .yaml catalog documents.
	Dirs []string `mapstructure:"dirs"`

	// UsePlugins merges plugin-contributed sources underneath the file
	// catalogs; file entries override plugin entries pairwise.
	UsePlugins bool `mapstructure:"use_plugins"`
}

// WatchConfig tunes the catalog directory watcher.
type WatchConfig struct {
	// DebounceMs collapses bursts of file events into one reload.
	DebounceMs int `mapstructure:"debounce_ms"`
}

// CacheConfig tunes the decoded-document cache.
type CacheConfig struct {
	// Disabled bypasses the cache; every load re-decodes.
	Disabled bool `mapstructure:"disabled"`

	// TTLSeconds is how long a decoded document stays cached.
	TTLSeconds int `mapstructure:"ttl_seconds"`
}

// Config holds all configuration options for squirrel.
type Config struct {
	Catalog CatalogConfig  `mapstructure:"catalog"`
	Watch   WatchConfig    `mapstructure:"watch"`
	Cache   CacheConfig    `mapstructure:"cache"`
	Tracing tracing.Config `mapstructure:"tracing"`
	LogPath string         `mapstructure:"log_path"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Catalog: CatalogConfig{
			UsePlugins: true,
		},
		Watch: WatchConfig{
			DebounceMs: 1000,
		},
		Cache: CacheConfig{
			TTLSeconds: 300,
		},
		Tracing: tracing.Config{
			Enabled:      false,
			Exporter:     "file",
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
			ServiceName:  "squirrel-catalog",
		},
		LogPath: "squirrel-debug.log",
	}
}

// Validate rejects configurations that cannot work.
func (c Config) Validate() error {
	if c.Watch.DebounceMs < 0 {
		return fmt.Errorf("watch.debounce_ms must be >= 0, got %d", c.Watch.DebounceMs)
	}
	if c.Cache.TTLSeconds < 0 {
		return fmt.Errorf("cache.ttl_seconds must be >= 0, got %d", c.Cache.TTLSeconds)
	}
	return nil
}
