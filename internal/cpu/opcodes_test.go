package cpu

import (
	"testing"

	"github.com/hallbjorn/sm83core/internal/register"
)

func TestADDHLOverflowSetsCarryNotZero(t *testing.T) {
	c, _ := newTestCPU(0x09) // ADD HL,BC
	c.Regs().Write16(register.HL, 0xFFFF)
	c.Regs().Write16(register.BC, 0x0001)
	c.Regs().SetFlag(register.FlagZ, true) // ADD HL,rr must leave Z untouched
	if _, err := c.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.Regs().Read16(register.HL); got != 0x0000 {
		t.Fatalf("HL got %#04x want 0x0000", got)
	}
	if !c.Regs().Flag(register.FlagC) {
		t.Fatalf("expected carry set")
	}
	if !c.Regs().Flag(register.FlagZ) {
		t.Fatalf("expected Z preserved (ADD HL,rr never sets it)")
	}
}

func TestSUBUnderflowSetsCarry(t *testing.T) {
	c, _ := newTestCPU(0x90) // SUB B
	c.Regs().Write8(register.A, 0x00)
	c.Regs().Write8(register.B, 0x01)
	if _, err := c.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.Regs().Read8(register.A); got != 0xFF {
		t.Fatalf("A got %#02x want 0xFF", got)
	}
	if !c.Regs().Flag(register.FlagC) || !c.Regs().Flag(register.FlagN) {
		t.Fatalf("expected N,C set, F=%#02x", c.Regs().Read8(register.F))
	}
}

func TestCPDoesNotModifyA(t *testing.T) {
	c, _ := newTestCPU(0xB8) // CP B
	c.Regs().Write8(register.A, 0x10)
	c.Regs().Write8(register.B, 0x10)
	if _, err := c.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.Regs().Read8(register.A); got != 0x10 {
		t.Fatalf("A got %#02x want unchanged 0x10", got)
	}
	if !c.Regs().Flag(register.FlagZ) {
		t.Fatalf("expected Z set for equal operands")
	}
}

func TestANDAlwaysSetsHalfCarry(t *testing.T) {
	c, _ := newTestCPU(0xA0) // AND B
	c.Regs().Write8(register.A, 0xFF)
	c.Regs().Write8(register.B, 0xFF)
	if _, err := c.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.Regs().Flag(register.FlagH) {
		t.Fatalf("expected H set by AND")
	}
	if c.Regs().Flag(register.FlagC) {
		t.Fatalf("expected C cleared by AND")
	}
}

func TestALUImmediate(t *testing.T) {
	c, _ := newTestCPU(0xC6, 0x05) // ADD A,0x05
	c.Regs().Write8(register.A, 0x03)
	cyc, err := c.Step()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cyc != 8 {
		t.Fatalf("cycles got %d want 8", cyc)
	}
	if got := c.Regs().Read8(register.A); got != 0x08 {
		t.Fatalf("A got %#02x want 0x08", got)
	}
}

func TestRETIRestoresPCAndEnablesIME(t *testing.T) {
	c, b := newTestCPU(0xD9) // RETI
	c.Regs().Write16(register.SP, 0xFFFC)
	b.Write16(0xFFFC, 0x1234)
	cyc, err := c.Step()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cyc != 16 {
		t.Fatalf("cycles got %d want 16", cyc)
	}
	if got := c.Regs().Read16(register.PC); got != 0x1234 {
		t.Fatalf("pc got %#04x want 0x1234", got)
	}
	if !c.IME() {
		t.Fatalf("expected IME enabled by RETI")
	}
}

func TestRSTPushesReturnAddressAndJumps(t *testing.T) {
	c, _ := newTestCPU(0xEF) // RST 28h
	c.Regs().Write16(register.SP, 0xFFFE)
	if _, err := c.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.Regs().Read16(register.PC); got != 0x0028 {
		t.Fatalf("pc got %#04x want 0x0028", got)
	}
	if got := c.Regs().Read16(register.SP); got != 0xFFFC {
		t.Fatalf("sp got %#04x want 0xFFFC", got)
	}
	if got := c.Bus().Read16(0xFFFC); got != 0x0001 {
		t.Fatalf("pushed return addr got %#04x want 0x0001", got)
	}
}

func TestDIClearsIMEAndPendingEI(t *testing.T) {
	c, _ := newTestCPU(0xFB, 0xF3) // EI ; DI
	if _, err := c.Step(); err != nil {
		t.Fatalf("ei: %v", err)
	}
	if _, err := c.Step(); err != nil {
		t.Fatalf("di: %v", err)
	}
	if c.IME() {
		t.Fatalf("expected IME false after DI")
	}
}

func TestLDHLSPOffsetFlagsFromLowByteAddition(t *testing.T) {
	c, _ := newTestCPU(0xF8, 0x01) // LD HL,SP+1
	c.Regs().Write16(register.SP, 0x00FF)
	if _, err := c.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.Regs().Read16(register.HL); got != 0x0100 {
		t.Fatalf("HL got %#04x want 0x0100", got)
	}
	if c.Regs().Flag(register.FlagZ) || c.Regs().Flag(register.FlagN) {
		t.Fatalf("expected Z,N cleared")
	}
	if !c.Regs().Flag(register.FlagH) || !c.Regs().Flag(register.FlagC) {
		t.Fatalf("expected H,C set from 0xFF+0x01 low-byte carry")
	}
}

func TestLDSPHL(t *testing.T) {
	c, _ := newTestCPU(0xF9) // LD SP,HL
	c.Regs().Write16(register.HL, 0xC100)
	if _, err := c.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.Regs().Read16(register.SP); got != 0xC100 {
		t.Fatalf("sp got %#04x want 0xC100", got)
	}
}
