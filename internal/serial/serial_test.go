package serial

import (
	"bytes"
	"testing"
)

type fakeIRQ struct{ bits []uint }

func (f *fakeIRQ) RequestInterrupt(bit uint) { f.bits = append(f.bits, bit) }

func TestTransferWithInternalClockWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	s := New(nil)
	s.Writer = &buf
	s.Write(regSB, 'X')
	s.Write(regSC, 0x81)
	if buf.String() != "X" {
		t.Fatalf("got %q want %q", buf.String(), "X")
	}
}

func TestTransferCompletesInstantlyAndClearsStartBit(t *testing.T) {
	s := New(nil)
	s.Write(regSB, 'A')
	s.Write(regSC, 0x81)
	sc, _ := s.Read(regSC)
	if sc&0x80 != 0 {
		t.Fatalf("expected start bit cleared, got %#02x", sc)
	}
	sb, _ := s.Read(regSB)
	if sb != 0xFF {
		t.Fatalf("sb got %#02x want 0xFF after transfer", sb)
	}
}

func TestTransferRaisesInterrupt(t *testing.T) {
	irq := &fakeIRQ{}
	s := New(irq)
	s.Write(regSC, 0x81)
	if len(irq.bits) != 1 || irq.bits[0] != serialIRQBit {
		t.Fatalf("expected serial interrupt, got %v", irq.bits)
	}
}

func TestExternalClockDoesNotTransfer(t *testing.T) {
	var buf bytes.Buffer
	s := New(nil)
	s.Writer = &buf
	s.Write(regSB, 'Y')
	s.Write(regSC, 0x80) // start bit but external clock
	if buf.Len() != 0 {
		t.Fatalf("expected no transfer on external clock")
	}
}

func TestUnhandledAddressReturnsFalse(t *testing.T) {
	s := New(nil)
	if _, handled := s.Read(0x1234); handled {
		t.Fatalf("expected unhandled")
	}
}
