package cpu

import "github.com/hallbjorn/sm83core/internal/register"

// rlca/rrca/rla/rra are the four accumulator-only rotate opcodes
// (0x07/0x0F/0x17/0x1F): unlike their CB-prefixed siblings, Z is always
// cleared regardless of the result.

func rlca(c *CPU) int {
	a := c.reg.Read8(register.A)
	cflag := a>>7 != 0
	a = a<<1 | a>>7
	c.reg.Write8(register.A, a)
	c.reg.SetFlags(false, false, false, cflag)
	return 4
}

func rrca(c *CPU) int {
	a := c.reg.Read8(register.A)
	cflag := a&1 != 0
	a = a>>1 | a<<7
	c.reg.Write8(register.A, a)
	c.reg.SetFlags(false, false, false, cflag)
	return 4
}

func rla(c *CPU) int {
	a := c.reg.Read8(register.A)
	cflag := a>>7 != 0
	var cin byte
	if c.reg.Flag(register.FlagC) {
		cin = 1
	}
	a = a<<1 | cin
	c.reg.Write8(register.A, a)
	c.reg.SetFlags(false, false, false, cflag)
	return 4
}

func rra(c *CPU) int {
	a := c.reg.Read8(register.A)
	cflag := a&1 != 0
	var cin byte
	if c.reg.Flag(register.FlagC) {
		cin = 1
	}
	a = a>>1 | cin<<7
	c.reg.Write8(register.A, a)
	c.reg.SetFlags(false, false, false, cflag)
	return 4
}

// daa adjusts A after a BCD addition/subtraction using N/H/C from the
// preceding instruction, leaving N unchanged and recomputing Z/C/H=0.
func daa(c *CPU) int {
	a := c.reg.Read8(register.A)
	n := c.reg.Flag(register.FlagN)
	h := c.reg.Flag(register.FlagH)
	cy := c.reg.Flag(register.FlagC)
	if !n {
		if cy || a > 0x99 {
			a += 0x60
			cy = true
		}
		if h || (a&0x0F) > 0x09 {
			a += 0x06
		}
	} else {
		if cy {
			a -= 0x60
		}
		if h {
			a -= 0x06
		}
	}
	c.reg.Write8(register.A, a)
	c.reg.SetFlags(a == 0, n, false, cy)
	return 4
}

// cpl complements A; N and H are set, Z and C are unaffected.
func cpl(c *CPU) int {
	c.reg.Write8(register.A, ^c.reg.Read8(register.A))
	c.reg.SetFlag(register.FlagN, true)
	c.reg.SetFlag(register.FlagH, true)
	return 4
}

// scf sets the carry flag; N and H are cleared, Z is unaffected.
func scf(c *CPU) int {
	c.reg.SetFlag(register.FlagN, false)
	c.reg.SetFlag(register.FlagH, false)
	c.reg.SetFlag(register.FlagC, true)
	return 4
}

// ccf complements the carry flag; N and H are cleared, Z is unaffected.
func ccf(c *CPU) int {
	c.reg.SetFlag(register.FlagN, false)
	c.reg.SetFlag(register.FlagH, false)
	c.reg.SetFlag(register.FlagC, !c.reg.Flag(register.FlagC))
	return 4
}

func nop(c *CPU) int { return 4 }

func halt(c *CPU) int {
	c.halted = true
	return 4
}

// stop consumes its mandatory trailing byte and idles like HALT until a
// pending interrupt wakes it; a real DMG only wakes STOP on a joypad
// transition and needs distinct handling for speed-switch on CGB, neither
// of which is in scope here (no CGB mode, spec Non-goals).
func stop(c *CPU) int {
	c.fetch8()
	c.stopped = true
	return 4
}

func di(c *CPU) int {
	c.ime = false
	c.eiPending = false
	return 4
}

func ei(c *CPU) int {
	c.eiPending = true
	return 4
}
