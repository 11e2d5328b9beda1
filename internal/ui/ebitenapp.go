// Package ui provides an ebiten-driven debug window onto an emu.Session.
// This core has no pixel framebuffer — the PPU here only tracks registers
// and timing (a spec Non-goal excludes the pixel pipeline) — so the window
// renders a register/flag/cycle-count HUD instead of a game picture, and
// forwards the DMG keymap to the joypad collaborator every frame.
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hallbjorn/sm83core/internal/emu"
	"github.com/hallbjorn/sm83core/internal/joypad"
	"github.com/hallbjorn/sm83core/internal/register"
)

const (
	panelWidth  = 320
	panelHeight = 200

	fastForwardSteps = 256 // instructions run per Update while held
	pausedSteps      = 64  // instructions run per Update unless paused
)

// App drives an emu.Session from an ebiten game loop, stepping it one
// instruction at a time and rendering a text HUD of its architectural
// state.
type App struct {
	cfg  Config
	sess *emu.Session

	paused bool
	fast   bool

	lastErr error
}

// NewApp builds an App around sess, sizing and titling the window from cfg.
func NewApp(cfg Config, sess *emu.Session) *App {
	cfg.Defaults()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(panelWidth*cfg.Scale, panelHeight*cfg.Scale)
	return &App{cfg: cfg, sess: sess}
}

// Run starts the ebiten game loop.
func (a *App) Run() error {
	return ebiten.RunGame(a)
}

func (a *App) Update() error {
	var btn joypad.Buttons
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		btn.Right = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		btn.Left = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		btn.Up = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		btn.Down = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyZ) {
		btn.A = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyX) {
		btn.B = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyEnter) {
		btn.Start = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		btn.Select = true
	}
	a.sess.SetButtons(btn)

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.paused = !a.paused
	}
	a.fast = ebiten.IsKeyPressed(ebiten.KeyTab)

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.sess.ResetPostBoot()
		a.lastErr = nil
	}

	if a.paused {
		if inpututil.IsKeyJustPressed(ebiten.KeyN) {
			a.step(1)
		}
		return nil
	}

	if a.fast {
		a.step(fastForwardSteps)
	} else {
		a.step(pausedSteps)
	}
	return nil
}

// step runs up to n instructions, stopping early (and latching the error
// for the HUD) if the core faults.
func (a *App) step(n int) {
	if a.lastErr != nil {
		return
	}
	for i := 0; i < n; i++ {
		if _, err := a.sess.Step(); err != nil {
			a.lastErr = err
			return
		}
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	regs := a.sess.CPU.Regs()
	lines := []string{
		fmt.Sprintf("AF=%04X BC=%04X", regs.Read16(register.AF), regs.Read16(register.BC)),
		fmt.Sprintf("DE=%04X HL=%04X", regs.Read16(register.DE), regs.Read16(register.HL)),
		fmt.Sprintf("SP=%04X PC=%04X", regs.Read16(register.SP), regs.Read16(register.PC)),
		fmt.Sprintf("flags: %s%s%s%s", flagLetter(regs.Flag(register.FlagZ), "Z"),
			flagLetter(regs.Flag(register.FlagN), "N"),
			flagLetter(regs.Flag(register.FlagH), "H"),
			flagLetter(regs.Flag(register.FlagC), "C")),
		fmt.Sprintf("IME=%v halted=%v", a.sess.CPU.IME(), a.sess.CPU.Halted()),
		fmt.Sprintf("cycles=%d", a.sess.TotalCycles),
		"",
		"P pause  Tab fast-forward  N step  R reset",
	}
	if a.paused {
		lines = append(lines, "-- paused --")
	}
	if a.lastErr != nil {
		lines = append(lines, fmt.Sprintf("FAULT: %v", a.lastErr))
	}
	for i, s := range lines {
		ebitenutil.DebugPrintAt(screen, s, 10, 10+i*14)
	}
}

func flagLetter(set bool, letter string) string {
	if set {
		return letter
	}
	return "-"
}

func (a *App) Layout(outW, outH int) (int, int) {
	return panelWidth, panelHeight
}
