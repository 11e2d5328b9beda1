// Package cpu implements the SM83 instruction set: fetch/decode/execute,
// the interrupt dispatch state machine, and HALT/STOP. It never touches
// wall-clock time or drives collaborators directly — Step reports the
// cycles an instruction cost and lets the caller (internal/emu.Session)
// decide what to do with them, per the bus's own no-cycle-cost contract.
package cpu

import (
	"github.com/hallbjorn/sm83core/internal/bus"
	"github.com/hallbjorn/sm83core/internal/register"
)

// interruptVectors is indexed by IF/IE bit: VBlank, LCD STAT, Timer,
// Serial, Joypad, in priority order (lowest bit wins).
var interruptVectors = [5]uint16{0x40, 0x48, 0x50, 0x58, 0x60}

// CPU is the SM83 core: a register.File, a bus.Bus, and the small amount
// of state (IME, HALT, the EI one-instruction delay) that doesn't belong
// in either.
type CPU struct {
	reg *register.File
	bus *bus.Bus

	ime       bool
	eiPending bool
	halted    bool
	stopped   bool

	fault error // error an exec function leaves for Step to return; no exec function in the tables sets it
}

// New creates a CPU with SP/PC both zero and IME disabled; callers set an
// initial PC via Regs().Write16(register.PC, ...) — either 0x0000 to run a
// boot ROM, or the canonical post-boot state via ResetPostBoot.
func New(b *bus.Bus) *CPU {
	return &CPU{reg: register.NewFile(), bus: b}
}

// Regs exposes the register file for callers that need to seed or inspect
// architectural state (boot stubs, tests, trace dumps).
func (c *CPU) Regs() *register.File { return c.reg }

// Bus exposes the underlying bus for callers that need to poke I/O
// directly (boot stubs, tests).
func (c *CPU) Bus() *bus.Bus { return c.bus }

// IME reports whether interrupts are currently enabled.
func (c *CPU) IME() bool { return c.ime }

// Halted reports whether the core is in the HALT low-power state.
func (c *CPU) Halted() bool { return c.halted }

// ResetPostBoot sets the register file and interrupt state to the values
// the DMG boot ROM leaves behind, for running a cartridge without a boot
// ROM image (spec §3 Lifecycle, grounded on the teacher's ResetNoBoot).
func (c *CPU) ResetPostBoot() {
	c.reg.Write16(register.AF, 0x01B0)
	c.reg.Write16(register.BC, 0x0013)
	c.reg.Write16(register.DE, 0x00D8)
	c.reg.Write16(register.HL, 0x014D)
	c.reg.Write16(register.SP, 0xFFFE)
	c.reg.Write16(register.PC, 0x0100)
	c.ime = false
	c.eiPending = false
	c.halted = false
	c.stopped = false
}

func (c *CPU) read8(addr uint16) byte     { return c.bus.Read8(addr) }
func (c *CPU) write8(addr uint16, v byte) { c.bus.Write8(addr, v) }

// opcode bit-field register indices, shared by the LD r,r' grid, the
// ALU-register grid, and the CB-prefixed grids: 0=B 1=C 2=D 3=E 4=H 5=L
// 6=(HL) 7=A.
var regOrder = [8]register.Reg8{register.B, register.C, register.D, register.E, register.H, register.L, 0, register.A}

// readReg8 reads the register (or (HL) memory cell) named by a 3-bit
// opcode field.
func (c *CPU) readReg8(idx byte) byte {
	if idx == 6 {
		return c.read8(c.reg.Read16(register.HL))
	}
	return c.reg.Read8(regOrder[idx])
}

// writeReg8 writes the register (or (HL) memory cell) named by a 3-bit
// opcode field.
func (c *CPU) writeReg8(idx byte, v byte) {
	if idx == 6 {
		c.write8(c.reg.Read16(register.HL), v)
		return
	}
	c.reg.Write8(regOrder[idx], v)
}

func (c *CPU) fetch8() byte {
	pc := c.reg.Read16(register.PC)
	v := c.read8(pc)
	c.reg.IncPC(1)
	return v
}

func (c *CPU) fetch16() uint16 {
	lo := uint16(c.fetch8())
	hi := uint16(c.fetch8())
	return lo | hi<<8
}

func (c *CPU) push16(v uint16) {
	sp := c.reg.Read16(register.SP) - 2
	c.reg.Write16(register.SP, sp)
	c.bus.Write16(sp, v)
}

func (c *CPU) pop16() uint16 {
	sp := c.reg.Read16(register.SP)
	v := c.bus.Read16(sp)
	c.reg.Write16(register.SP, sp+2)
	return v
}

// dispatchInterrupt services the highest-priority pending, enabled
// interrupt if IME is set, pushing PC and jumping to its vector. It also
// wakes the core from HALT, since a serviced interrupt always does.
func (c *CPU) dispatchInterrupt() (cycles int, dispatched bool) {
	if !c.ime {
		return 0, false
	}
	pending := c.bus.IE() & c.bus.IF() & 0x1F
	if pending == 0 {
		return 0, false
	}
	var bit uint
	for bit = 0; bit < 5; bit++ {
		if pending&(1<<bit) != 0 {
			break
		}
	}
	c.bus.ClearIFBit(bit)
	c.ime = false
	c.halted = false
	c.push16(c.reg.Read16(register.PC))
	c.reg.Write16(register.PC, interruptVectors[bit])
	return 20, true
}

// Step executes exactly one instruction (or services one pending
// interrupt, or idles one HALT tick) and returns the number of T-cycles
// it cost. A non-nil error means the fetched byte has no exec function
// (InvalidOpcode) or an exec function left an error in c.fault; the core
// does not retry or recover, matching spec §4.5/§7 — the caller must
// treat it as fatal.
func (c *CPU) Step() (cycles int, err error) {
	imeToSet := c.eiPending
	c.eiPending = false

	if cyc, dispatched := c.dispatchInterrupt(); dispatched {
		return cyc, nil
	}

	if c.halted || c.stopped {
		if c.bus.IE()&c.bus.IF()&0x1F != 0 {
			c.halted = false
			c.stopped = false
		} else {
			if imeToSet {
				c.ime = true
			}
			return 4, nil
		}
	}

	// The delayed EI enable takes effect now, before this instruction is
	// fetched — not after it runs — so that a DI right after EI (which
	// clears ime itself) isn't clobbered by this apply. dispatchInterrupt
	// above already ran against the old ime, so an interrupt can't sneak
	// in during the instruction immediately following EI.
	if imeToSet {
		c.ime = true
	}

	pc := c.reg.Read16(register.PC)
	op := c.fetch8()
	instr := primary[op]
	if instr.exec == nil {
		return 0, &InvalidOpcode{Address: pc, Opcode: op}
	}

	cycles = instr.exec(c)

	if c.fault != nil {
		err, c.fault = c.fault, nil
	}
	return cycles, err
}
