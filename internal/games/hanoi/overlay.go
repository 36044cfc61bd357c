package hanoi

import (
	"github.com/vovakirdan/tui-hanoi/internal/core"
)

// Overlay geometry in cells.
const (
	dialogW     = 34
	dialogH     = 8
	buttonH     = 3
	buttonGap   = 1
	swatchGap   = 2
	dialogInset = 2
)

// Overlay colors.
var (
	overlayShade = core.RGB(50, 50, 50)
	panelColor   = core.RGB(255, 255, 255)
	panelText    = core.RGB(80, 80, 80)
)

// OverlayAction is what a click on the settings overlay asks for.
type OverlayAction int

const (
	OverlayNone OverlayAction = iota
	OverlayBackground
	OverlayDiskColor
	OverlayRestart
	OverlayExit
)

// String returns a human-readable name for the action.
func (a OverlayAction) String() string {
	switch a {
	case OverlayNone:
		return "none"
	case OverlayBackground:
		return "background"
	case OverlayDiskColor:
		return "disk-color"
	case OverlayRestart:
		return "restart"
	case OverlayExit:
		return "exit"
	default:
		return "unknown"
	}
}

// OverlayHit is the result of hit-testing a click. Index is the swatch
// for OverlayBackground and OverlayDiskColor.
type OverlayHit struct {
	Action OverlayAction
	Index  int
}

// Overlay is the settings screen: a dialog with background and disk color
// swatches, a Restart button above it and an Exit button below.
type Overlay struct {
	open         bool
	dialog       core.Rect
	restart      core.Rect
	exit         core.Rect
	bgSwatches   []core.Rect
	diskSwatches []core.Rect
}

// NewOverlay lays the overlay out for the given screen and swatch counts.
func NewOverlay(screenW, screenH, backgrounds, diskColors int) *Overlay {
	o := &Overlay{}
	o.Layout(screenW, screenH, backgrounds, diskColors)
	return o
}

// Layout recomputes the overlay geometry, e.g. after a resize.
func (o *Overlay) Layout(screenW, screenH, backgrounds, diskColors int) {
	w := core.Min(dialogW, core.Max(screenW-2, 1))
	x := (screenW - w) / 2
	y := screenH/2 - dialogH/2

	o.dialog = core.NewRect(x, y, w, dialogH)
	o.restart = core.NewRect(x, y-buttonGap-buttonH, w, buttonH)
	o.exit = core.NewRect(x, o.dialog.Bottom()+buttonGap, w, buttonH)
	o.bgSwatches = swatchRow(o.dialog, y+2, backgrounds)
	o.diskSwatches = swatchRow(o.dialog, y+5, diskColors)
}

// swatchRow splits the dialog's inner width into n equal swatches.
// Rows are sized for at least three swatches, as the dialog was drawn
// around three disk colors.
func swatchRow(dialog core.Rect, y, n int) []core.Rect {
	inner := dialog.W - 2*dialogInset
	slots := core.Max(n, 3)
	w := core.Max((inner-swatchGap*(slots-1))/slots, 1)

	rects := make([]core.Rect, n)
	for i := range rects {
		rects[i] = core.NewRect(dialog.X+dialogInset+i*(w+swatchGap), y, w, 1)
	}
	return rects
}

// IsOpen reports whether the overlay is shown.
func (o *Overlay) IsOpen() bool {
	return o.open
}

// Toggle shows or hides the overlay.
func (o *Overlay) Toggle() {
	o.open = !o.open
}

// Close hides the overlay.
func (o *Overlay) Close() {
	o.open = false
}

// HitTest maps a click to an overlay action.
func (o *Overlay) HitTest(p core.Point) OverlayHit {
	for i, r := range o.bgSwatches {
		if r.Contains(p) {
			return OverlayHit{Action: OverlayBackground, Index: i}
		}
	}
	for i, r := range o.diskSwatches {
		if r.Contains(p) {
			return OverlayHit{Action: OverlayDiskColor, Index: i}
		}
	}
	switch {
	case o.restart.Contains(p):
		return OverlayHit{Action: OverlayRestart}
	case o.exit.Contains(p):
		return OverlayHit{Action: OverlayExit}
	}
	return OverlayHit{Action: OverlayNone}
}

// Render draws the overlay over whatever is on s.
func (o *Overlay) Render(s core.Surface, st *Settings) {
	s.Fill(overlayShade)

	drawButton(s, o.restart, "Restart")
	drawButton(s, o.exit, "Exit")

	s.FillRect(o.dialog, panelColor, 1)
	s.DrawTextColor(o.dialog.X+dialogInset, o.dialog.Y+1, "Background Color", panelText)
	s.DrawTextColor(o.dialog.X+dialogInset, o.dialog.Y+4, "Disk Color", panelText)

	drawSwatches(s, o.bgSwatches, st.Backgrounds(), st.BackgroundIndex())
	drawSwatches(s, o.diskSwatches, st.DiskColors(), st.DiskColorIndex())
}

func drawButton(s core.Surface, r core.Rect, label string) {
	s.FillRect(r, panelColor, 1)
	c := r.Center()
	s.DrawTextColor(c.X-len(label)/2, c.Y, label, panelText)
}

// drawSwatches fills each swatch and underlines the selected one.
func drawSwatches(s core.Surface, rects []core.Rect, swatches []Swatch, selected int) {
	for i, r := range rects {
		s.FillRect(r, swatches[i].Color, 0)
		if i == selected {
			for x := r.X; x < r.Right(); x++ {
				s.DrawTextColor(x, r.Bottom(), "▔", panelText)
			}
		}
	}
}
