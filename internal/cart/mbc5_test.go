package cart

import "testing"

func mbc5ROM(banks int) []byte {
	rom := make([]byte, banks*0x4000)
	for b := 0; b < banks; b++ {
		rom[b*0x4000] = byte(b)
	}
	return rom
}

func TestMBC5BankSwitchingLowAndHighBits(t *testing.T) {
	m := NewMBC5(mbc5ROM(300), 0)
	m.Write(0x2000, 0xFF) // low 8 bits
	m.Write(0x3000, 0x01) // high bit -> bank 0x1FF = 511, but rom only has 300 banks
	// bank now 0x1FF; reading beyond ROM returns 0xFF
	if got := m.Read(0x4000); got != 0xFF {
		t.Fatalf("oob bank read got %#02x want 0xFF", got)
	}
	m.Write(0x3000, 0x00) // clear high bit -> bank 0xFF = 255
	if got := m.Read(0x4000); got != 255 {
		t.Fatalf("bank got %d want 255", got)
	}
}

func TestMBC5RAMBanking(t *testing.T) {
	m := NewMBC5(mbc5ROM(4), 0x4000)
	m.Write(0x0000, 0x0A)
	m.Write(0x4000, 0x01) // ram bank 1
	m.Write(0xA000, 0x33)
	if got := m.Read(0xA000); got != 0x33 {
		t.Fatalf("ram got %#02x want 0x33", got)
	}
}

func TestMBC5SaveLoadRAM(t *testing.T) {
	m := NewMBC5(mbc5ROM(2), 0x2000)
	m.Write(0x0000, 0x0A)
	m.Write(0xA000, 0x21)
	saved := m.SaveRAM()

	m2 := NewMBC5(mbc5ROM(2), 0x2000)
	m2.LoadRAM(saved)
	m2.Write(0x0000, 0x0A)
	if got := m2.Read(0xA000); got != 0x21 {
		t.Fatalf("restored ram got %#02x want 0x21", got)
	}
}
