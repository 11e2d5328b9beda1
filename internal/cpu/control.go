package cpu

import "github.com/hallbjorn/sm83core/internal/register"

// condition evaluates one of the four branch conditions encoded in bits
// 3-4 of JR/JP/CALL/RET cc opcodes: 0=NZ 1=Z 2=NC 3=C.
func (c *CPU) condition(idx byte) bool {
	switch idx {
	case 0:
		return !c.reg.Flag(register.FlagZ)
	case 1:
		return c.reg.Flag(register.FlagZ)
	case 2:
		return !c.reg.Flag(register.FlagC)
	case 3:
		return c.reg.Flag(register.FlagC)
	}
	return false
}

// jr implements JR e8 (conditional=false) / JR cc,e8, returning the
// actual cycle cost.
func jr(c *CPU, cond byte, conditional bool) int {
	offset := int8(c.fetch8())
	if conditional && !c.condition(cond) {
		return 8
	}
	pc := c.reg.Read16(register.PC)
	c.reg.Write16(register.PC, uint16(int32(pc)+int32(offset)))
	return 12
}

// jp implements JP a16 (conditional=false) / JP cc,a16.
func jp(c *CPU, cond byte, conditional bool) int {
	addr := c.fetch16()
	if conditional && !c.condition(cond) {
		return 12
	}
	c.reg.Write16(register.PC, addr)
	return 16
}

// call implements CALL a16 / CALL cc,a16.
func call(c *CPU, cond byte, conditional bool) int {
	addr := c.fetch16()
	if conditional && !c.condition(cond) {
		return 12
	}
	c.push16(c.reg.Read16(register.PC))
	c.reg.Write16(register.PC, addr)
	return 24
}

// ret implements RET / RET cc; reti additionally re-enables IME.
func ret(c *CPU, cond byte, conditional bool) int {
	if conditional {
		if !c.condition(cond) {
			return 8
		}
		c.reg.Write16(register.PC, c.pop16())
		return 20
	}
	c.reg.Write16(register.PC, c.pop16())
	return 16
}

func reti(c *CPU) int {
	c.reg.Write16(register.PC, c.pop16())
	c.ime = true
	return 16
}

// rst implements RST t: push PC, jump to the fixed vector encoded in the
// opcode's middle 3 bits (t*8).
func rst(c *CPU, vector uint16) int {
	c.push16(c.reg.Read16(register.PC))
	c.reg.Write16(register.PC, vector)
	return 16
}
