// Package config holds the editor's non-visual settings: zoom bounds, the
// design grid, snap-to-grid, and nudge distances. Settings load from a YAML
// file and fall back to defaults field by field, so a partial file only
// overrides what it names.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GridLevel is one detail level of the design grid overlay, active from
// MinZoom upward.
type GridLevel struct {
	// MinZoom is the zoom factor at which this level appears.
	MinZoom float64 `yaml:"min_zoom"`
	// Fine is the fine grid spacing in design units.
	Fine float64 `yaml:"fine"`
	// CoarseEvery draws a coarse line every N fine lines.
	CoarseEvery int `yaml:"coarse_every"`
}

// Snap controls snap-to-grid for all point movement.
type Snap struct {
	Enabled bool `yaml:"enabled"`
	// Spacing is the grid spacing to snap to, in design units.
	Spacing float64 `yaml:"spacing"`
}

// Nudge holds the arrow-key movement distances in design units.
type Nudge struct {
	Base  float64 `yaml:"base"`
	Shift float64 `yaml:"shift"`
	Cmd   float64 `yaml:"cmd"`
}

// Settings is the full editor configuration.
type Settings struct {
	// MinZoom and MaxZoom bound interactive zooming.
	MinZoom float64 `yaml:"min_zoom"`
	MaxZoom float64 `yaml:"max_zoom"`

	// GridMid and GridClose are the two design-grid detail levels.
	GridMid   GridLevel `yaml:"grid_mid"`
	GridClose GridLevel `yaml:"grid_close"`

	Snap  Snap  `yaml:"snap"`
	Nudge Nudge `yaml:"nudge"`

	// WatchDebounceSeconds batches font file change events.
	WatchDebounceSeconds float64 `yaml:"watch_debounce_seconds"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		MinZoom:              0.02,
		MaxZoom:              50.0,
		GridMid:              GridLevel{MinZoom: 0.8, Fine: 8, CoarseEvery: 4},
		GridClose:            GridLevel{MinZoom: 4.0, Fine: 2, CoarseEvery: 4},
		Snap:                 Snap{Enabled: true, Spacing: 2},
		Nudge:                Nudge{Base: 2, Shift: 8, Cmd: 32},
		WatchDebounceSeconds: 1,
	}
}

// Load reads settings from a YAML file, layering it over the defaults. A
// missing file is not an error; the defaults are returned.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	return s, nil
}

// Save writes the settings to a YAML file.
func (s Settings) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
