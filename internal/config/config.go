// Package config provides YAML/TOML game configuration loading and
// difficulty presets for the Hanoi board.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-hanoi/internal/core"
)

// Limits on the number of disks a board may hold.
const (
	MinDisks = 1
	MaxDisks = 10
)

// HanoiConfig contains all configuration for the Tower of Hanoi board.
type HanoiConfig struct {
	Disks   int           `yaml:"disks" toml:"disks"`
	Layout  LayoutConfig  `yaml:"layout" toml:"layout"`
	Palette PaletteConfig `yaml:"palette" toml:"palette"`
}

// LayoutConfig defines the cell geometry of pegs and disks.
type LayoutConfig struct {
	PegSpacing    int `yaml:"peg_spacing" toml:"peg_spacing"`       // Columns between rod centers
	LayerHeight   int `yaml:"layer_height" toml:"layer_height"`     // Rows per stacked disk
	RodHeadroom   int `yaml:"rod_headroom" toml:"rod_headroom"`     // Rod rows above a full stack
	CatchWidth    int `yaml:"catch_width" toml:"catch_width"`       // Drop target width
	CatchHeadroom int `yaml:"catch_headroom" toml:"catch_headroom"` // Drop target rows above the rod
	DiskBaseWidth int `yaml:"disk_base_width" toml:"disk_base_width"`
	DiskWidthStep int `yaml:"disk_width_step" toml:"disk_width_step"` // Extra columns per weight
}

// PaletteConfig defines the colors offered by the settings overlay.
type PaletteConfig struct {
	Backgrounds []SwatchConfig `yaml:"backgrounds" toml:"backgrounds"`
	DiskColors  []SwatchConfig `yaml:"disk_colors" toml:"disk_colors"`
	LightenStep int            `yaml:"lighten_step" toml:"lighten_step"` // Added per disk, lightest on top
}

// SwatchConfig is a named color choice, written as "#rrggbb".
type SwatchConfig struct {
	Name  string `yaml:"name" toml:"name"`
	Color string `yaml:"color" toml:"color"`
}

// Validation errors.
var (
	ErrDiskCount    = errors.New("disk count out of range")
	ErrLayout       = errors.New("invalid layout")
	ErrEmptyPalette = errors.New("palette needs at least one swatch")
)

// Validate checks that the configuration describes a playable board.
func (c HanoiConfig) Validate() error {
	if c.Disks < MinDisks || c.Disks > MaxDisks {
		return fmt.Errorf("config: %w: %d (want %d-%d)", ErrDiskCount, c.Disks, MinDisks, MaxDisks)
	}

	l := c.Layout
	if l.LayerHeight < 1 || l.DiskBaseWidth < 1 || l.DiskWidthStep < 0 || l.RodHeadroom < 0 || l.CatchHeadroom < 0 {
		return fmt.Errorf("config: %w: dimensions must be positive", ErrLayout)
	}
	widest := l.DiskBaseWidth + l.DiskWidthStep*c.Disks
	if l.PegSpacing <= widest {
		return fmt.Errorf("config: %w: peg_spacing %d must exceed widest disk %d", ErrLayout, l.PegSpacing, widest)
	}
	if l.CatchWidth < 1 || l.CatchWidth > l.PegSpacing {
		return fmt.Errorf("config: %w: catch_width %d must be within 1-%d so drop targets do not overlap",
			ErrLayout, l.CatchWidth, l.PegSpacing)
	}

	if len(c.Palette.Backgrounds) == 0 || len(c.Palette.DiskColors) == 0 {
		return fmt.Errorf("config: %w", ErrEmptyPalette)
	}
	for _, sw := range append(append([]SwatchConfig{}, c.Palette.Backgrounds...), c.Palette.DiskColors...) {
		if _, err := core.ParseColor(sw.Color); err != nil {
			return fmt.Errorf("config: swatch %q: %w", sw.Name, err)
		}
	}
	return nil
}
