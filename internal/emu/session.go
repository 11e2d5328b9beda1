// Package emu wires a cpu.CPU, a bus.Bus, a cart.Cartridge, and the
// timer/PPU/joypad/serial collaborators into one runnable unit, and
// drives them from a single goroutine — the outer loop spec §5 calls for.
package emu

import (
	"github.com/hallbjorn/sm83core/internal/bus"
	"github.com/hallbjorn/sm83core/internal/cart"
	"github.com/hallbjorn/sm83core/internal/cpu"
	"github.com/hallbjorn/sm83core/internal/joypad"
	"github.com/hallbjorn/sm83core/internal/ppu"
	"github.com/hallbjorn/sm83core/internal/serial"
	"github.com/hallbjorn/sm83core/internal/timer"
)

// Session owns one complete, runnable machine: the CPU core, its bus, and
// the collaborators attached to it. Step advances exactly one CPU
// instruction's worth of time, never concurrently (spec §5: the core and
// its collaborators never run on separate goroutines).
type Session struct {
	CPU     *cpu.CPU
	Bus     *bus.Bus
	Cart    cart.Cartridge
	Timer   *timer.Timer
	PPU     *ppu.PPU
	Joypad  *joypad.Joypad
	Serial  *serial.Serial

	TotalCycles int64
}

// New builds a Session around the given cartridge, attaching a fresh
// timer/PPU/joypad/serial set and leaving the CPU at PC=0 so a boot ROM
// (if the caller writes one in) can run; call ResetPostBoot to skip it.
func New(c cart.Cartridge) *Session {
	b := bus.NewWithCartridge(c)

	s := &Session{Bus: b, Cart: c}
	s.Timer = timer.New(b)
	s.PPU = ppu.New(b)
	s.Joypad = joypad.New(b)
	s.Serial = serial.New(b)

	b.AttachDevice(s.Timer)
	b.AttachDevice(s.PPU)
	b.AttachDevice(s.Joypad)
	b.AttachDevice(s.Serial)

	s.CPU = cpu.New(b)
	return s
}

// ResetPostBoot seeds the canonical DMG post-boot register/IO state
// (spec §3 Lifecycle), for running a cartridge with no boot ROM image.
func (s *Session) ResetPostBoot() {
	s.CPU.ResetPostBoot()
	s.Bus.Write8(0xFF00, 0xCF)
	s.Bus.Write8(0xFF05, 0x00)
	s.Bus.Write8(0xFF06, 0x00)
	s.Bus.Write8(0xFF07, 0x00)
	s.Bus.Write8(0xFF40, 0x91)
	s.Bus.Write8(0xFF42, 0x00)
	s.Bus.Write8(0xFF43, 0x00)
	s.Bus.Write8(0xFF45, 0x00)
	s.Bus.Write8(0xFF47, 0xFC)
	s.Bus.Write8(0xFF48, 0xFF)
	s.Bus.Write8(0xFF49, 0xFF)
	s.Bus.Write8(0xFF4A, 0x00)
	s.Bus.Write8(0xFF4B, 0x00)
	s.Bus.Write8(0xFFFF, 0x00)
}

// Step executes one CPU instruction (or interrupt dispatch, or HALT tick)
// and then advances every collaborator by the cycles it cost, in a fixed
// sequential order — never concurrently, per spec §5.
func (s *Session) Step() (cycles int, err error) {
	cycles, err = s.CPU.Step()
	if err != nil {
		return cycles, err
	}
	s.Timer.Advance(cycles)
	s.PPU.Advance(cycles)
	s.TotalCycles += int64(cycles)
	return cycles, nil
}

// SetButtons forwards a button-state snapshot to the joypad collaborator.
func (s *Session) SetButtons(b joypad.Buttons) {
	s.Joypad.SetButtons(b)
}
