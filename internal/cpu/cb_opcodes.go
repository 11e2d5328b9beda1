package cpu

// cbTable is the full 256-entry second-byte table for the 0xCB-prefixed
// instruction set: bits 6-7 select the group (shift/BIT/RES/SET), bits
// 3-5 select y (the shift-op index for group 0, or the bit number for
// groups 1-3), and bits 0-2 select the operand register (6 = (HL)).
var cbTable [256]instruction

func buildCBTable() {
	for op := 0; op < 256; op++ {
		op := byte(op)
		group := op >> 6 & 3
		y := op >> 3 & 7
		reg := op & 7

		cyc := 8
		switch {
		case group == 1 && reg == 6: // BIT b,(HL)
			cyc = 12
		case group != 1 && reg == 6: // shift/RES/SET on (HL)
			cyc = 16
		}

		var exec func(c *CPU) int
		switch group {
		case 0: // rotate/shift/swap
			exec = func(c *CPU) int {
				res := c.cbShiftOp(y, c.readReg8(reg))
				c.writeReg8(reg, res)
				return cyc
			}
		case 1: // BIT y,r
			exec = func(c *CPU) int {
				c.bitTest(y, c.readReg8(reg))
				return cyc
			}
		case 2: // RES y,r
			exec = func(c *CPU) int {
				c.writeReg8(reg, resBit(y, c.readReg8(reg)))
				return cyc
			}
		case 3: // SET y,r
			exec = func(c *CPU) int {
				c.writeReg8(reg, setBit(y, c.readReg8(reg)))
				return cyc
			}
		}
		cbTable[op] = instruction{length: 2, baseCycles: cyc, name: "CB", exec: exec}
	}
}
