package cpu

import "github.com/hallbjorn/sm83core/internal/register"

// The eight ALU-register-grid operations (0x80-0xBF), indexed by the
// opcode's middle 3 bits, each taking A and a second operand and setting
// Z/N/H/C. CP computes flags without writing A.

func add8(a, b byte) (res byte, z, n, h, cy bool) {
	r := uint16(a) + uint16(b)
	res = byte(r)
	return res, res == 0, false, ((a & 0x0F) + (b & 0x0F)) > 0x0F, r > 0xFF
}

func adc8(a, b byte, carryIn bool) (res byte, z, n, h, cy bool) {
	var ci byte
	if carryIn {
		ci = 1
	}
	r := uint16(a) + uint16(b) + uint16(ci)
	res = byte(r)
	return res, res == 0, false, ((a & 0x0F) + (b & 0x0F) + ci) > 0x0F, r > 0xFF
}

func sub8(a, b byte) (res byte, z, n, h, cy bool) {
	r := int16(a) - int16(b)
	res = byte(r)
	return res, res == 0, true, (a & 0x0F) < (b & 0x0F), int16(a) < int16(b)
}

func sbc8(a, b byte, carryIn bool) (res byte, z, n, h, cy bool) {
	var ci byte
	if carryIn {
		ci = 1
	}
	r := int16(a) - int16(b) - int16(ci)
	res = byte(r)
	return res, res == 0, true, (a & 0x0F) < (b&0x0F)+ci, int16(a) < int16(b)+int16(ci)
}

func and8(a, b byte) (res byte, z, n, h, cy bool) {
	res = a & b
	return res, res == 0, false, true, false
}

func xor8(a, b byte) (res byte, z, n, h, cy bool) {
	res = a ^ b
	return res, res == 0, false, false, false
}

func or8(a, b byte) (res byte, z, n, h, cy bool) {
	res = a | b
	return res, res == 0, false, false, false
}

// cp8 computes sub8's flags only; the result byte is discarded by callers.
func cp8(a, b byte) (z, n, h, cy bool) {
	_, z, n, h, cy = sub8(a, b)
	return
}

// aluOp is one of the eight register-grid/immediate/(HL) operation
// families, applying to A and a byte operand.
type aluOp func(c *CPU, operand byte)

func aluAdd(c *CPU, operand byte) {
	r, z, n, h, cy := add8(c.reg.Read8(register.A), operand)
	c.reg.Write8(register.A, r)
	c.reg.SetFlags(z, n, h, cy)
}

func aluAdc(c *CPU, operand byte) {
	r, z, n, h, cy := adc8(c.reg.Read8(register.A), operand, c.reg.Flag(register.FlagC))
	c.reg.Write8(register.A, r)
	c.reg.SetFlags(z, n, h, cy)
}

func aluSub(c *CPU, operand byte) {
	r, z, n, h, cy := sub8(c.reg.Read8(register.A), operand)
	c.reg.Write8(register.A, r)
	c.reg.SetFlags(z, n, h, cy)
}

func aluSbc(c *CPU, operand byte) {
	r, z, n, h, cy := sbc8(c.reg.Read8(register.A), operand, c.reg.Flag(register.FlagC))
	c.reg.Write8(register.A, r)
	c.reg.SetFlags(z, n, h, cy)
}

func aluAnd(c *CPU, operand byte) {
	r, z, n, h, cy := and8(c.reg.Read8(register.A), operand)
	c.reg.Write8(register.A, r)
	c.reg.SetFlags(z, n, h, cy)
}

func aluXor(c *CPU, operand byte) {
	r, z, n, h, cy := xor8(c.reg.Read8(register.A), operand)
	c.reg.Write8(register.A, r)
	c.reg.SetFlags(z, n, h, cy)
}

func aluOr(c *CPU, operand byte) {
	r, z, n, h, cy := or8(c.reg.Read8(register.A), operand)
	c.reg.Write8(register.A, r)
	c.reg.SetFlags(z, n, h, cy)
}

func aluCp(c *CPU, operand byte) {
	z, n, h, cy := cp8(c.reg.Read8(register.A), operand)
	c.reg.SetFlags(z, n, h, cy)
}

// aluOps is indexed by the opcode's middle 3 bits (bits 3-5) across the
// register-grid (0x80-0xBF), immediate (0xC6..0xFE step 8), and (HL)
// (0x86..0xBE step 8) families.
var aluOps = [8]aluOp{aluAdd, aluAdc, aluSub, aluSbc, aluAnd, aluXor, aluOr, aluCp}

// inc8 and dec8 compute the INC/DEC r8 flag rules (C is left untouched by
// the caller, per spec).
func inc8(v byte) (res byte, z, h bool) {
	old := v
	res = v + 1
	return res, res == 0, (old & 0x0F) == 0x0F
}

func dec8(v byte) (res byte, z, h bool) {
	old := v
	res = v - 1
	return res, res == 0, (old & 0x0F) == 0x00
}

// add16 computes ADD HL,rr's H/C rule: half-carry out of bit 11, carry out
// of bit 15. Z is left untouched by the caller.
func add16(a, b uint16) (res uint16, h, cy bool) {
	r := uint32(a) + uint32(b)
	return uint16(r), ((a & 0x0FFF) + (b & 0x0FFF)) > 0x0FFF, r > 0xFFFF
}

// addSPSigned computes ADD SP,e8 / LD HL,SP+e8's flag rule: both H and C
// are computed on the low byte of SP plus the signed offset, treated as an
// 8-bit addition (spec §4.4.4), and Z/N are always cleared.
func addSPSigned(sp uint16, offset int8) (res uint16, h, cy bool) {
	res = uint16(int32(sp) + int32(offset))
	_, _, _, h, cy = add8(byte(sp), byte(offset))
	return
}
