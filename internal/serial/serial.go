// Package serial models the SB/SC link-cable registers (0xFF01/0xFF02).
// There is no second Game Boy on the other end of the wire, so a transfer
// started with the internal-clock bit set completes instantly: SB reads
// back as 0xFF (nothing received) and the Serial interrupt fires, which is
// enough for test ROMs (e.g. Blargg's) that use the serial port purely to
// print progress.
package serial

import "io"

const (
	regSB = 0xFF01
	regSC = 0xFF02

	serialIRQBit = 3
)

// InterruptRequester is the subset of bus.Bus the serial port needs.
type InterruptRequester interface {
	RequestInterrupt(bit uint)
}

// Serial implements bus.Device. Setting Writer captures every byte the
// program clocks out over SB, mirroring the teacher's SetSerialWriter
// hook used by its blargg-test harness.
type Serial struct {
	irq    InterruptRequester
	Writer io.Writer

	sb byte
	sc byte
}

// New creates a Serial port that raises interrupts through irq.
func New(irq InterruptRequester) *Serial {
	return &Serial{irq: irq}
}

// Read implements bus.Device.
func (s *Serial) Read(addr uint16) (byte, bool) {
	switch addr {
	case regSB:
		return s.sb, true
	case regSC:
		return s.sc | 0x7E, true
	}
	return 0, false
}

// Write implements bus.Device.
func (s *Serial) Write(addr uint16, v byte) bool {
	switch addr {
	case regSB:
		s.sb = v
	case regSC:
		s.sc = v
		if v&0x81 == 0x81 { // transfer start + internal clock
			if s.Writer != nil {
				s.Writer.Write([]byte{s.sb})
			}
			s.sb = 0xFF
			s.sc &^= 0x80
			if s.irq != nil {
				s.irq.RequestInterrupt(serialIRQBit)
			}
		}
	default:
		return false
	}
	return true
}
