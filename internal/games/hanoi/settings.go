package hanoi

import (
	"fmt"

	"github.com/vovakirdan/tui-hanoi/internal/config"
	"github.com/vovakirdan/tui-hanoi/internal/core"
)

// Swatch is a named color choice shown in the settings overlay.
type Swatch struct {
	Name  string
	Color core.Color
}

// Rod colors used against light and dark backgrounds.
var (
	rodOnLight = core.RGB(60, 60, 60)
	rodOnDark  = core.RGB(220, 220, 220)
)

// Settings holds the cosmetic choices for one session. They live only as
// long as the game does.
type Settings struct {
	backgrounds []Swatch
	diskColors  []Swatch
	bg          int
	disk        int
	lightenStep int
}

var _ Palette = (*Settings)(nil)

// NewSettings builds settings from a palette config, selecting the first
// swatch of each kind.
func NewSettings(pc config.PaletteConfig) (*Settings, error) {
	bgs, err := parseSwatches(pc.Backgrounds)
	if err != nil {
		return nil, err
	}
	disks, err := parseSwatches(pc.DiskColors)
	if err != nil {
		return nil, err
	}
	if len(bgs) == 0 || len(disks) == 0 {
		return nil, fmt.Errorf("hanoi: %w", config.ErrEmptyPalette)
	}
	return &Settings{backgrounds: bgs, diskColors: disks, lightenStep: pc.LightenStep}, nil
}

func parseSwatches(in []config.SwatchConfig) ([]Swatch, error) {
	out := make([]Swatch, 0, len(in))
	for _, sc := range in {
		c, err := core.ParseColor(sc.Color)
		if err != nil {
			return nil, fmt.Errorf("hanoi: swatch %q: %w", sc.Name, err)
		}
		out = append(out, Swatch{Name: sc.Name, Color: c})
	}
	return out, nil
}

// Background returns the selected background color.
func (s *Settings) Background() core.Color {
	return s.backgrounds[s.bg].Color
}

// RodColor contrasts with the background: dark rods on light backgrounds.
func (s *Settings) RodColor() core.Color {
	if isLight(s.Background()) {
		return rodOnLight
	}
	return rodOnDark
}

// DiskColor returns the selected disk color lightened once per index, so
// smaller disks are lighter.
func (s *Settings) DiskColor(i int) core.Color {
	return s.diskColors[s.disk].Color.Lighten(i * s.lightenStep)
}

// isLight uses the Rec. 601 luma; the default color counts as dark.
func isLight(c core.Color) bool {
	if c.IsDefault() {
		return false
	}
	luma := 299*int(c.R) + 587*int(c.G) + 114*int(c.B)
	return luma >= 128*1000
}

// Backgrounds returns the background swatches.
func (s *Settings) Backgrounds() []Swatch {
	return s.backgrounds
}

// DiskColors returns the disk color swatches.
func (s *Settings) DiskColors() []Swatch {
	return s.diskColors
}

// BackgroundIndex returns the selected background swatch.
func (s *Settings) BackgroundIndex() int {
	return s.bg
}

// DiskColorIndex returns the selected disk color swatch.
func (s *Settings) DiskColorIndex() int {
	return s.disk
}

// SelectBackground picks background swatch i. Out of range is ignored.
func (s *Settings) SelectBackground(i int) bool {
	if i < 0 || i >= len(s.backgrounds) {
		return false
	}
	s.bg = i
	return true
}

// SelectDiskColor picks disk color swatch i. Out of range is ignored.
func (s *Settings) SelectDiskColor(i int) bool {
	if i < 0 || i >= len(s.diskColors) {
		return false
	}
	s.disk = i
	return true
}

// CycleBackground advances to the next background swatch.
func (s *Settings) CycleBackground() {
	s.bg = (s.bg + 1) % len(s.backgrounds)
}

// CycleDiskColor advances to the next disk color swatch.
func (s *Settings) CycleDiskColor() {
	s.disk = (s.disk + 1) % len(s.diskColors)
}
