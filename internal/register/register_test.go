package register

import "testing"

func TestAFMasksLowNibble(t *testing.T) {
	var r File
	r.Write16(AF, 0x12FF)
	if got := r.Read16(AF); got != 0x12F0 {
		t.Fatalf("AF got %#04x want 0x12F0", got)
	}
	if got := r.Read8(F); got != 0xF0 {
		t.Fatalf("F got %#02x want 0xF0", got)
	}
}

func TestWrite8FMasksLowNibble(t *testing.T) {
	var r File
	r.Write8(F, 0xAB)
	if got := r.Read8(F); got != 0xA0 {
		t.Fatalf("F got %#02x want 0xA0", got)
	}
}

func TestPairViews(t *testing.T) {
	var r File
	r.Write8(B, 0x12)
	r.Write8(C, 0x34)
	if got := r.Read16(BC); got != 0x1234 {
		t.Fatalf("BC got %#04x want 0x1234", got)
	}
	r.Write16(DE, 0xCAFE)
	if r.Read8(D) != 0xCA || r.Read8(E) != 0xFE {
		t.Fatalf("DE split got D=%02x E=%02x", r.Read8(D), r.Read8(E))
	}
}

func TestFlags(t *testing.T) {
	var r File
	r.SetFlag(FlagZ, true)
	r.SetFlag(FlagC, true)
	if !r.Flag(FlagZ) || !r.Flag(FlagC) {
		t.Fatalf("expected Z and C set")
	}
	if r.Flag(FlagN) || r.Flag(FlagH) {
		t.Fatalf("expected N and H clear")
	}
	r.ResetFlags()
	if r.Flag(FlagZ) || r.Flag(FlagC) {
		t.Fatalf("expected all flags clear after ResetFlags")
	}
}

func TestSPPC(t *testing.T) {
	var r File
	r.Write16(SP, 0xFFFE)
	r.Write16(PC, 0x0100)
	if r.Read16(SP) != 0xFFFE || r.Read16(PC) != 0x0100 {
		t.Fatalf("SP/PC mismatch")
	}
	r.IncPC(3)
	if r.Read16(PC) != 0x0103 {
		t.Fatalf("PC after IncPC got %#04x want 0x0103", r.Read16(PC))
	}
}
