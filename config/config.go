// Package config loads engine configuration from tka.toml files and TKA_*
// environment variables, in that precedence order.
package config

import (
	"github.com/austencloud/tka-engine/errors"
)

// Config is the engine configuration.
type Config struct {
	Dataset DatasetConfig `mapstructure:"dataset"`
	Pool    PoolConfig    `mapstructure:"pool"`
	Log     LogConfig     `mapstructure:"log"`
}

// DatasetConfig locates the pictograph dataset.
type DatasetConfig struct {
	// Path to the YAML dataset file
	Path string `mapstructure:"path"`
	// WatchDebounceMs coalesces rapid file events during hot reload
	WatchDebounceMs int `mapstructure:"watch_debounce_ms"`
}

// PoolConfig sizes the render slot pool.
type PoolConfig struct {
	// Capacity is the display upper bound on simultaneously shown options.
	// It does not scale with dataset size; overflow is truncated.
	Capacity int `mapstructure:"capacity"`
}

// LogConfig controls logger output.
type LogConfig struct {
	JSON bool `mapstructure:"json"`
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Dataset.Path == "" {
		return errors.New("dataset.path cannot be empty")
	}
	if c.Dataset.WatchDebounceMs < 0 {
		return errors.Newf("dataset.watch_debounce_ms must be >= 0, got %d", c.Dataset.WatchDebounceMs)
	}
	if c.Pool.Capacity <= 0 {
		return errors.Newf("pool.capacity must be > 0, got %d", c.Pool.Capacity)
	}
	return nil
}
