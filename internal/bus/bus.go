// Package bus implements the SM83's 16-bit flat address space: byte and
// little-endian word access routed by region to ROM/RAM banking (via a
// cart.Cartridge), plain work/video/high RAM, and a handful of I/O register
// collaborators (timer, PPU, joypad, serial) attached by the session that
// owns the bus. No operation on the bus carries a cycle cost — timing is
// entirely the CPU instruction's responsibility (spec §4.2).
package bus

const (
	ifAddr = 0xFF0F
	ieAddr = 0xFFFF
)

// Device is an I/O register collaborator that can claim addresses in the
// 0xFF00-0xFF7F page. Read/Write return handled=false for addresses they
// don't own, so the bus falls back to flat storage.
type Device interface {
	Read(addr uint16) (value byte, handled bool)
	Write(addr uint16, value byte) (handled bool)
}

// Cartridge is the contract the bus needs from ROM/RAM banking hardware.
// internal/cart.Cartridge satisfies it.
type Cartridge interface {
	Read(addr uint16) byte
	Write(addr uint16, value byte)
}

// Bus is the CPU's only view of memory.
type Bus struct {
	cart Cartridge

	vram [0x2000]byte // 0x8000-0x9FFF
	wram [0x2000]byte // 0xC000-0xDFFF (WRAM0+WRAMX, no CGB bank switching)
	oam  [0x00A0]byte // 0xFE00-0xFE9F
	io   [0x0080]byte // 0xFF00-0xFF7F flat fallback
	hram [0x007F]byte // 0xFF80-0xFFFE
	ie   byte         // 0xFFFF

	devices []Device
}

// New creates a Bus fronting a plain ROM-only region built directly from a
// raw image (no MBC). Use NewWithCartridge to attach real bank switching.
func New(rom []byte) *Bus {
	return &Bus{cart: flatROM{rom: rom}}
}

// NewWithCartridge creates a Bus fronting the given cartridge.
func NewWithCartridge(c Cartridge) *Bus {
	return &Bus{cart: c}
}

// AttachDevice registers an I/O register collaborator. Later attachments
// are consulted first, so a session can override a default.
func (b *Bus) AttachDevice(d Device) {
	b.devices = append(b.devices, d)
}

// RequestInterrupt sets the given bit (0=VBlank .. 4=Joypad) in IF.
func (b *Bus) RequestInterrupt(bit uint) {
	b.io[ifAddr-0xFF00] |= 1 << bit
}

// IE returns the interrupt-enable byte.
func (b *Bus) IE() byte { return b.ie }

// IF returns the interrupt-flag byte, masked to its 5 live bits.
func (b *Bus) IF() byte { return b.io[ifAddr-0xFF00] & 0x1F }

// ClearIFBit clears a single pending interrupt-flag bit.
func (b *Bus) ClearIFBit(bit uint) {
	b.io[ifAddr-0xFF00] &^= 1 << bit
}

// Read8 reads a single byte, dispatching by region.
func (b *Bus) Read8(addr uint16) byte {
	switch {
	case addr < 0x8000, addr >= 0xA000 && addr < 0xC000:
		return b.cart.Read(addr)
	case addr < 0xA000:
		return b.vram[addr-0x8000]
	case addr < 0xE000:
		return b.wram[(addr-0xC000)&0x1FFF]
	case addr < 0xFE00: // ECHO: mirrors 0xC000-0xDDFF
		return b.wram[(addr-0xE000)&0x1FFF]
	case addr < 0xFEA0:
		return b.oam[addr-0xFE00]
	case addr < 0xFF00: // unused
		return 0xFF
	case addr < 0xFF80:
		for i := len(b.devices) - 1; i >= 0; i-- {
			if v, ok := b.devices[i].Read(addr); ok {
				return v
			}
		}
		return b.io[addr-0xFF00]
	case addr < 0xFFFF:
		return b.hram[addr-0xFF80]
	default: // 0xFFFF
		return b.ie
	}
}

// Write8 writes a single byte, dispatching by region. Writes to ROM are
// forwarded to the cartridge (MBC control registers live there); writes to
// the unused region are discarded.
func (b *Bus) Write8(addr uint16, v byte) {
	switch {
	case addr < 0x8000, addr >= 0xA000 && addr < 0xC000:
		b.cart.Write(addr, v)
	case addr < 0xA000:
		b.vram[addr-0x8000] = v
	case addr < 0xE000:
		b.wram[(addr-0xC000)&0x1FFF] = v
	case addr < 0xFE00:
		b.wram[(addr-0xE000)&0x1FFF] = v
	case addr < 0xFEA0:
		b.oam[addr-0xFE00] = v
	case addr < 0xFF00:
		// unused: ignored
	case addr < 0xFF80:
		for i := len(b.devices) - 1; i >= 0; i-- {
			if b.devices[i].Write(addr, v) {
				return
			}
		}
		if addr == ifAddr {
			v &= 0x1F
		}
		b.io[addr-0xFF00] = v
	case addr < 0xFFFF:
		b.hram[addr-0xFF80] = v
	default:
		b.ie = v
	}
}

// Read16 reads a little-endian word.
func (b *Bus) Read16(addr uint16) uint16 {
	lo := uint16(b.Read8(addr))
	hi := uint16(b.Read8(addr + 1))
	return lo | hi<<8
}

// Write16 writes a little-endian word.
func (b *Bus) Write16(addr uint16, v uint16) {
	b.Write8(addr, byte(v))
	b.Write8(addr+1, byte(v>>8))
}

// flatROM is a Cartridge with no banking: 0x0000-0x7FFF map straight into
// the image (out-of-bounds reads return 0xFF), and 0xA000-0xBFFF (no
// cartridge RAM) always reads 0xFF. Used by New for raw, header-less images
// (tests, synthetic programs).
type flatROM struct{ rom []byte }

func (r flatROM) Read(addr uint16) byte {
	if addr < 0x8000 && int(addr) < len(r.rom) {
		return r.rom[addr]
	}
	return 0xFF
}

func (r flatROM) Write(addr uint16, value byte) {}
