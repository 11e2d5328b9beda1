package joypad

import "testing"

type fakeIRQ struct{ bits []uint }

func (f *fakeIRQ) RequestInterrupt(bit uint) { f.bits = append(f.bits, bit) }

func TestReadWithNoSelectionReturnsAllReleased(t *testing.T) {
	j := New(nil)
	got, _ := j.Read(regP1)
	if got&0x0F != 0x0F {
		t.Fatalf("got %#02x want low nibble all set (released)", got)
	}
}

func TestDirectionButtonPulledLowWhenSelected(t *testing.T) {
	j := New(nil)
	j.Write(regP1, 0x20) // select direction keys (bit4=0)
	j.SetButtons(Buttons{Down: true})
	got, _ := j.Read(regP1)
	if got&0x08 != 0 {
		t.Fatalf("expected down bit low, got %#02x", got)
	}
}

func TestActionButtonsIgnoredWhenDirectionSelected(t *testing.T) {
	j := New(nil)
	j.Write(regP1, 0x20)
	j.SetButtons(Buttons{A: true})
	got, _ := j.Read(regP1)
	if got&0x0F != 0x0F {
		t.Fatalf("expected all released, got %#02x", got)
	}
}

func TestInterruptRequestedOnFallingEdge(t *testing.T) {
	irq := &fakeIRQ{}
	j := New(irq)
	j.Write(regP1, 0x10) // select action keys
	j.SetButtons(Buttons{A: true})
	if len(irq.bits) != 1 || irq.bits[0] != joypadIRQBit {
		t.Fatalf("expected joypad interrupt, got %v", irq.bits)
	}
}

func TestNoInterruptWhenNoNewPress(t *testing.T) {
	irq := &fakeIRQ{}
	j := New(irq)
	j.Write(regP1, 0x10)
	j.SetButtons(Buttons{A: true})
	irq.bits = nil
	j.SetButtons(Buttons{A: true}) // still pressed, no new edge
	if len(irq.bits) != 0 {
		t.Fatalf("expected no new interrupt, got %v", irq.bits)
	}
}

func TestUnhandledAddressReturnsFalse(t *testing.T) {
	j := New(nil)
	if _, handled := j.Read(0x1234); handled {
		t.Fatalf("expected unhandled")
	}
}
