package config

// DifficultyPreset represents a named difficulty level.
// Difficulty in Hanoi is only the number of disks.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the known presets in ascending difficulty.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// DisksForPreset returns the disk count for a preset, or 0 if unknown.
func DisksForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 3
	case DifficultyNormal:
		return 5
	case DifficultyHard:
		return 7
	default:
		return 0
	}
}

// IsKnownPreset reports whether preset names a difficulty.
func IsKnownPreset(preset DifficultyPreset) bool {
	return DisksForPreset(preset) > 0
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *HanoiConfig, preset DifficultyPreset) {
	if n := DisksForPreset(preset); n > 0 {
		cfg.Disks = n
	}
}

// PresetForDisks returns the preset with n disks, or "" if none has.
func PresetForDisks(n int) DifficultyPreset {
	for _, p := range Presets() {
		if DisksForPreset(p) == n {
			return p
		}
	}
	return ""
}
