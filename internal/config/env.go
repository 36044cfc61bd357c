package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvOverrides holds settings read from HANOI_* environment variables.
// Zero values mean the variable was not set.
type EnvOverrides struct {
	Config      string `env:"HANOI_CONFIG"`
	Difficulty  string `env:"HANOI_DIFFICULTY"`
	Disks       int    `env:"HANOI_DISKS"`
	LightenStep int    `env:"HANOI_LIGHTEN_STEP"`
}

// ParseEnv loads overrides from the environment.
func ParseEnv() (EnvOverrides, error) {
	var o EnvOverrides
	if err := env.Parse(&o); err != nil {
		return o, fmt.Errorf("config: parse env: %w", err)
	}
	return o, nil
}

// Apply writes the set overrides into cfg. Difficulty is applied before
// Disks so an explicit disk count wins.
func (o EnvOverrides) Apply(cfg *HanoiConfig) error {
	if o.Difficulty != "" {
		preset := DifficultyPreset(o.Difficulty)
		if !IsKnownPreset(preset) {
			return fmt.Errorf("config: HANOI_DIFFICULTY: unknown preset %q", o.Difficulty)
		}
		ApplyPreset(cfg, preset)
	}
	if o.Disks != 0 {
		cfg.Disks = o.Disks
	}
	if o.LightenStep != 0 {
		cfg.Palette.LightenStep = o.LightenStep
	}
	return nil
}
