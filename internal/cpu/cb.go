package cpu

import "github.com/hallbjorn/sm83core/internal/register"

// The CB-prefixed rotate/shift/swap family (opcode group 0, y=0..7): each
// takes the current value and the incoming carry (for RL/RR) and returns
// the new value plus the outgoing carry. Unlike RLCA/RRCA/RLA/RRA, these
// set Z from the result.

func cbRLC(v byte) (res byte, cy bool) {
	cy = v>>7 != 0
	res = v<<1 | v>>7
	return
}

func cbRRC(v byte) (res byte, cy bool) {
	cy = v&1 != 0
	res = v>>1 | v<<7
	return
}

func cbRL(v byte, carryIn bool) (res byte, cy bool) {
	cy = v>>7 != 0
	var cin byte
	if carryIn {
		cin = 1
	}
	res = v<<1 | cin
	return
}

func cbRR(v byte, carryIn bool) (res byte, cy bool) {
	cy = v&1 != 0
	var cin byte
	if carryIn {
		cin = 1
	}
	res = v>>1 | cin<<7
	return
}

func cbSLA(v byte) (res byte, cy bool) {
	cy = v>>7 != 0
	res = v << 1
	return
}

func cbSRA(v byte) (res byte, cy bool) {
	cy = v&1 != 0
	res = v>>1 | v&0x80
	return
}

func cbSWAP(v byte) byte {
	return v<<4 | v>>4
}

func cbSRL(v byte) (res byte, cy bool) {
	cy = v&1 != 0
	res = v >> 1
	return
}

// cbShiftOp applies one of the group-0 rotate/shift/swap operations,
// indexed by y (the opcode's middle 3 bits), writing flags and the result
// back through the CPU.
func (c *CPU) cbShiftOp(y byte, v byte) byte {
	var res byte
	var cy bool
	switch y {
	case 0:
		res, cy = cbRLC(v)
	case 1:
		res, cy = cbRRC(v)
	case 2:
		res, cy = cbRL(v, c.reg.Flag(register.FlagC))
	case 3:
		res, cy = cbRR(v, c.reg.Flag(register.FlagC))
	case 4:
		res, cy = cbSLA(v)
	case 5:
		res, cy = cbSRA(v)
	case 6:
		res = cbSWAP(v)
		cy = false
	case 7:
		res, cy = cbSRL(v)
	}
	c.reg.SetFlags(res == 0, false, false, cy)
	return res
}

// bitTest implements BIT y,r: Z = bit clear, N=0, H=1, C unaffected.
func (c *CPU) bitTest(y, v byte) {
	bit := v>>y&1 == 0
	c.reg.SetFlag(register.FlagZ, bit)
	c.reg.SetFlag(register.FlagN, false)
	c.reg.SetFlag(register.FlagH, true)
}

func resBit(y, v byte) byte { return v &^ (1 << y) }
func setBit(y, v byte) byte { return v | (1 << y) }
