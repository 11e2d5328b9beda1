package cart

import "testing"

func romOfSize(n int) []byte {
	rom := make([]byte, n)
	for i := range rom {
		rom[i] = byte(i)
	}
	return rom
}

func TestNewCartridgePicksROMOnlyForType00(t *testing.T) {
	rom := romOfSize(0x8000)
	rom[0x0147] = 0x00
	c := NewCartridge(rom)
	if _, ok := c.(*ROMOnly); !ok {
		t.Fatalf("got %T want *ROMOnly", c)
	}
}

func TestNewCartridgePicksMBC1(t *testing.T) {
	rom := romOfSize(0x8000)
	rom[0x0147] = 0x01
	c := NewCartridge(rom)
	if _, ok := c.(*MBC1); !ok {
		t.Fatalf("got %T want *MBC1", c)
	}
}

func TestNewCartridgePicksMBC3(t *testing.T) {
	rom := romOfSize(0x8000)
	rom[0x0147] = 0x11
	c := NewCartridge(rom)
	if _, ok := c.(*MBC3); !ok {
		t.Fatalf("got %T want *MBC3", c)
	}
}

func TestNewCartridgePicksMBC5(t *testing.T) {
	rom := romOfSize(0x8000)
	rom[0x0147] = 0x19
	c := NewCartridge(rom)
	if _, ok := c.(*MBC5); !ok {
		t.Fatalf("got %T want *MBC5", c)
	}
}

func TestNewCartridgeFallsBackOnUnparsableHeader(t *testing.T) {
	c := NewCartridge([]byte{0x00, 0x01, 0x02})
	if _, ok := c.(*ROMOnly); !ok {
		t.Fatalf("got %T want *ROMOnly fallback", c)
	}
}
