// Package hanoi implements the Tower of Hanoi puzzle: disks, pegs, the
// drag-and-drop controller, and the board that ties them together.
// It contains pure logic with no Bubble Tea dependency; the platform
// feeds it input frames and displays the screen it renders.
package hanoi

import (
	"fmt"

	"github.com/vovakirdan/tui-hanoi/internal/config"
	"github.com/vovakirdan/tui-hanoi/internal/core"
)

// ID is the game identifier used in logs and the session journal.
const ID = "hanoi"

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State     core.GameState
	Drop      Drop       // Resolved drop this tick, if any
	Overlay   OverlayHit // Overlay click handled this tick, if any
	Restarted bool
}

// Game is one Tower of Hanoi session: a board, its cosmetic settings and
// the settings overlay, driven one tick at a time.
type Game struct {
	cfg      config.HanoiConfig
	board    *Board
	settings *Settings
	overlay  *Overlay

	tick     uint64
	screenW  int
	screenH  int
	tooSmall bool
	exit     bool
	restarts int
}

// New creates a game from a validated config, laid out for cfg's screen.
func New(cfg config.HanoiConfig, rc core.RuntimeConfig) (*Game, error) {
	settings, err := NewSettings(cfg.Palette)
	if err != nil {
		return nil, err
	}

	layout := NewLayout(cfg.Layout, cfg.Disks, rc.ScreenW, rc.ScreenH)
	board, err := NewBoard(layout, Weights(cfg.Disks))
	if err != nil {
		return nil, fmt.Errorf("hanoi: cannot build board: %w", err)
	}

	g := &Game{
		cfg:      cfg,
		board:    board,
		settings: settings,
		overlay:  NewOverlay(rc.ScreenW, rc.ScreenH, len(settings.Backgrounds()), len(settings.DiskColors())),
	}
	g.Resize(rc.ScreenW, rc.ScreenH)
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tower of Hanoi"
}

// Resize re-lays the board and overlay out for a new screen size without
// touching the puzzle state.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	layout := NewLayout(g.cfg.Layout, g.cfg.Disks, w, h)
	g.board.Relayout(layout)
	g.overlay.Layout(w, h, len(g.settings.Backgrounds()), len(g.settings.DiskColors()))

	g.tooSmall = !layout.Fits(w, h)
	if g.tooSmall {
		g.board.CancelDrag()
	}
}

// Restart puts every disk back on the first peg.
func (g *Game) Restart() {
	g.board.Restart()
	g.restarts++
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) StepResult {
	g.tick++
	res := StepResult{Drop: noDrop}

	if in.Has(core.ActionSettings) {
		g.overlay.Toggle()
		if g.overlay.IsOpen() {
			g.board.CancelDrag()
		}
	}

	if g.overlay.IsOpen() {
		g.stepOverlay(in, &res)
		res.State = g.State()
		return res
	}

	if g.tooSmall {
		res.State = g.State()
		return res
	}

	res.Drop = g.stepPointer(in.Pointer)

	res.State = g.State()
	return res
}

// stepPointer replays one frame of pointer edges in the order they arrived.
// A drop resolves where the button went up, not where the pointer ended.
func (g *Game) stepPointer(p core.PointerFrame) Drop {
	if p.Released && p.ReleaseFirst {
		drop := g.board.Update(p.ReleasePos, false, true)
		if !p.Pressed {
			return drop
		}
		g.board.Update(p.PressPos, true, false)
		if next := g.board.Update(p.Pos, false, p.ReleasedAgain); next.Result != DropNone {
			return next
		}
		return drop
	}

	if p.Pressed {
		g.board.Update(p.PressPos, true, false)
	}
	if p.Released {
		return g.board.Update(p.ReleasePos, false, true)
	}
	return g.board.Update(p.Pos, false, false)
}

// stepOverlay handles input while the settings overlay is shown.
func (g *Game) stepOverlay(in core.InputFrame, res *StepResult) {
	if in.Has(core.ActionCycleBg) {
		g.settings.CycleBackground()
	}
	if in.Has(core.ActionCycleDisk) {
		g.settings.CycleDiskColor()
	}

	hit := OverlayHit{Action: OverlayNone}
	if in.Has(core.ActionRestart) {
		hit = OverlayHit{Action: OverlayRestart}
	}
	if in.Pointer.Pressed {
		if h := g.overlay.HitTest(in.Pointer.PressPos); h.Action != OverlayNone {
			hit = h
		}
	}
	res.Overlay = hit

	switch hit.Action {
	case OverlayBackground:
		g.settings.SelectBackground(hit.Index)
	case OverlayDiskColor:
		g.settings.SelectDiskColor(hit.Index)
	case OverlayRestart:
		g.Restart()
		g.overlay.Close()
		res.Restarted = true
	case OverlayExit:
		g.exit = true
	}
}

// Render draws the current game state into the provided surface.
func (g *Game) Render(dst core.Surface) {
	if g.overlay.IsOpen() {
		g.overlay.Render(dst, g.settings)
		return
	}

	if g.tooSmall {
		dst.Fill(core.ColorDefault)
		w, h := g.board.Layout().Size()
		msg := fmt.Sprintf("Terminal too small: need %dx%d", w, h)
		dst.DrawTextCentered(g.screenH/2, msg)
		return
	}

	g.board.Render(dst, g.settings)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Dragging:     g.board.Dragging(),
		SettingsOpen: g.overlay.IsOpen(),
		TooSmall:     g.tooSmall,
		Exit:         g.exit,
		Restarts:     g.restarts,
	}
}

// Board returns the puzzle board.
func (g *Game) Board() *Board {
	return g.board
}

// Settings returns the cosmetic settings.
func (g *Game) Settings() *Settings {
	return g.settings
}

// Overlay returns the settings overlay.
func (g *Game) Overlay() *Overlay {
	return g.overlay
}

// Disks returns the number of disks in play.
func (g *Game) Disks() int {
	return g.cfg.Disks
}
