package cpu

import "github.com/hallbjorn/sm83core/internal/register"

// ldHLIndirectA writes A to (HL) then adjusts HL by delta (+1 for LD
// (HL+),A, -1 for LD (HL-),A) — a single 8-bit store plus a 16-bit pointer
// adjustment, never a 16-bit memory access (spec §4.4.1's corrected rule).
func ldHLIndirectA(c *CPU, delta int16) {
	hl := c.reg.Read16(register.HL)
	c.write8(hl, c.reg.Read8(register.A))
	c.reg.Write16(register.HL, uint16(int32(hl)+int32(delta)))
}

// ldAHLIndirect reads A from (HL) then adjusts HL by delta, the A,(HL±)
// counterpart of ldHLIndirectA.
func ldAHLIndirect(c *CPU, delta int16) {
	hl := c.reg.Read16(register.HL)
	c.reg.Write8(register.A, c.read8(hl))
	c.reg.Write16(register.HL, uint16(int32(hl)+int32(delta)))
}

// ldHLSPOffset implements LD HL,SP+e8: Z and N always clear, H/C from the
// signed 8-bit addition onto SP's low byte (spec §4.4.4).
func ldHLSPOffset(c *CPU) int {
	offset := int8(c.fetch8())
	sp := c.reg.Read16(register.SP)
	res, h, cy := addSPSigned(sp, offset)
	c.reg.Write16(register.HL, res)
	c.reg.SetFlags(false, false, h, cy)
	return 12
}

// addSP implements ADD SP,e8 with the same flag rule as ldHLSPOffset but
// writing the result back into SP.
func addSP(c *CPU) int {
	offset := int8(c.fetch8())
	sp := c.reg.Read16(register.SP)
	res, h, cy := addSPSigned(sp, offset)
	c.reg.Write16(register.SP, res)
	c.reg.SetFlags(false, false, h, cy)
	return 16
}
