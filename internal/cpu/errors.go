package cpu

import "fmt"

// InvalidOpcode is returned by Step when the fetched byte has no assigned
// meaning in the SM83 instruction set (the primary table's true gaps, e.g.
// 0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB-0xED, 0xF4, 0xFC, 0xFD).
type InvalidOpcode struct {
	Address uint16
	Opcode  byte
}

func (e *InvalidOpcode) Error() string {
	return fmt.Sprintf("invalid opcode %#02x at %#04x", e.Opcode, e.Address)
}

// UnimplementedInstruction describes an opcode that is architecturally
// valid but has no exec function wired in this core. Every valid primary
// opcode has an exec function, and Step reports any opcode without one as
// InvalidOpcode, so Step never returns this type.
type UnimplementedInstruction struct {
	Address uint16
	Opcode  byte
}

func (e *UnimplementedInstruction) Error() string {
	return fmt.Sprintf("unimplemented opcode %#02x at %#04x", e.Opcode, e.Address)
}
