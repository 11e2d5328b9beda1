package cart

import "testing"

func mbc1ROM(banks int) []byte {
	rom := make([]byte, banks*0x4000)
	for b := 0; b < banks; b++ {
		rom[b*0x4000] = byte(b) // bank marker at offset 0
	}
	return rom
}

func TestMBC1BankSwitching(t *testing.T) {
	m := NewMBC1(mbc1ROM(4), 0)
	if got := m.Read(0x0000); got != 0 {
		t.Fatalf("bank0 marker got %d want 0", got)
	}
	if got := m.Read(0x4000); got != 1 {
		t.Fatalf("default switchable bank marker got %d want 1", got)
	}
	m.Write(0x2000, 0x03) // select bank 3
	if got := m.Read(0x4000); got != 3 {
		t.Fatalf("after bank select got %d want 3", got)
	}
}

func TestMBC1Bank0RemapsToBank1(t *testing.T) {
	m := NewMBC1(mbc1ROM(4), 0)
	m.Write(0x2000, 0x00) // bank 0 remaps to 1
	if got := m.Read(0x4000); got != 1 {
		t.Fatalf("bank0 remap got %d want 1", got)
	}
}

func TestMBC1RAMEnableGate(t *testing.T) {
	m := NewMBC1(mbc1ROM(2), 0x2000)
	m.Write(0xA000, 0x55) // RAM disabled: write ignored
	if got := m.Read(0xA000); got != 0xFF {
		t.Fatalf("ram disabled read got %#02x want 0xFF", got)
	}
	m.Write(0x0000, 0x0A) // enable
	m.Write(0xA000, 0x55)
	if got := m.Read(0xA000); got != 0x55 {
		t.Fatalf("ram enabled read got %#02x want 0x55", got)
	}
}
