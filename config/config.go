// Package config loads pathpad settings from an optional TOML file.
//
// TOML format (every key optional; missing keys keep their defaults):
//
//	[graph]
//	node_radius = 20.0
//
//	[view]
//	cell_width = 10.0
//	cell_height = 20.0
//
//	[log]
//	level = "info"
//	format = "text"
//	file = "pathpad.log"
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Validation errors.
var (
	ErrBadRadius    = errors.New("config: graph.node_radius must be positive")
	ErrBadCell      = errors.New("config: view cell size must be positive")
	ErrBadLogFormat = errors.New(`config: log.format must be "text" or "json"`)
	ErrBadLogLevel  = errors.New(`config: log.level must be "debug", "info", "warn" or "error"`)
)

// Config holds the program configuration.
type Config struct {
	Graph Graph `toml:"graph"`
	View  View  `toml:"view"`
	Log   Log   `toml:"log"`
}

// Graph holds graph-model settings.
type Graph struct {
	// NodeRadius is the clickable disc radius of a node, in world units.
	NodeRadius float64 `toml:"node_radius"`
}

// View maps terminal cells to world units.
type View struct {
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`
}

// Log configures the structured logger.
type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	// File receives log output; empty disables logging.
	File string `toml:"file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Graph: Graph{NodeRadius: 20},
		View:  View{CellWidth: 10, CellHeight: 20},
		Log:   Log{Level: "info", Format: "text", File: "pathpad.log"},
	}
}

// Load reads a TOML file over the defaults. An empty path yields the
// defaults; a named file that does not exist is an error matching
// os.ErrNotExist. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file %q: %w", path, err)
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config file %q: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if !positive(c.Graph.NodeRadius) {
		return fmt.Errorf("%w: %v", ErrBadRadius, c.Graph.NodeRadius)
	}
	if !positive(c.View.CellWidth) || !positive(c.View.CellHeight) {
		return fmt.Errorf("%w: %vx%v", ErrBadCell, c.View.CellWidth, c.View.CellHeight)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrBadLogFormat, c.Log.Format)
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrBadLogLevel, c.Log.Level)
	}

	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
