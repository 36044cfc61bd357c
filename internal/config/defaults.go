package config

import (
	_ "embed"
)

//go:embed defaults/hanoi.yaml
var defaultHanoiYAML []byte

// DefaultHanoiConfig returns the default Tower of Hanoi configuration.
func DefaultHanoiConfig() HanoiConfig {
	return HanoiConfig{
		Disks: 5,
		Layout: LayoutConfig{
			PegSpacing:    24,
			LayerHeight:   1,
			RodHeadroom:   2,
			CatchWidth:    22,
			CatchHeadroom: 2,
			DiskBaseWidth: 1,
			DiskWidthStep: 2,
		},
		Palette: PaletteConfig{
			Backgrounds: []SwatchConfig{
				{Name: "White", Color: "#ffffff"},
				{Name: "Charcoal", Color: "#3c3c3c"},
			},
			DiskColors: []SwatchConfig{
				{Name: "Red", Color: "#aa5050"},
				{Name: "Green", Color: "#50aa50"},
				{Name: "Blue", Color: "#5050aa"},
			},
			LightenStep: 20,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultHanoiYAML
}
