// Package joypad models the P1 register at 0xFF00 and the Joypad
// interrupt (IF bit 4) that a falling edge on any selected button line
// raises.
package joypad

const (
	regP1 = 0xFF00

	joypadIRQBit = 4
)

// Buttons holds the pressed state of all eight DMG inputs.
type Buttons struct {
	Right, Left, Up, Down   bool
	A, B, Select, Start     bool
}

// InterruptRequester is the subset of bus.Bus the joypad needs.
type InterruptRequester interface {
	RequestInterrupt(bit uint)
}

// Joypad implements bus.Device.
type Joypad struct {
	irq InterruptRequester

	selectButtons byte // P1 bits 4-5, written by the game
	state         Buttons
}

// New creates a Joypad that raises interrupts through irq.
func New(irq InterruptRequester) *Joypad {
	return &Joypad{irq: irq, selectButtons: 0x30}
}

// SetButtons replaces the pressed-state snapshot, raising the Joypad
// interrupt if any currently-selected line transitions high-to-low.
func (j *Joypad) SetButtons(b Buttons) {
	before := j.selectedLines()
	j.state = b
	after := j.selectedLines()
	if before&^after != 0 && j.irq != nil {
		j.irq.RequestInterrupt(joypadIRQBit)
	}
}

// selectedLines returns the 4 input bits as they'd read given the current
// select lines, 1 = released (matches hardware's active-low convention).
func (j *Joypad) selectedLines() byte {
	var lo byte = 0x0F
	if j.selectButtons&0x10 == 0 { // direction keys selected
		if j.state.Right {
			lo &^= 0x01
		}
		if j.state.Left {
			lo &^= 0x02
		}
		if j.state.Up {
			lo &^= 0x04
		}
		if j.state.Down {
			lo &^= 0x08
		}
	}
	if j.selectButtons&0x20 == 0 { // action keys selected
		if j.state.A {
			lo &^= 0x01
		}
		if j.state.B {
			lo &^= 0x02
		}
		if j.state.Select {
			lo &^= 0x04
		}
		if j.state.Start {
			lo &^= 0x08
		}
	}
	return lo
}

// Read implements bus.Device.
func (j *Joypad) Read(addr uint16) (byte, bool) {
	if addr != regP1 {
		return 0, false
	}
	return 0xC0 | j.selectButtons | j.selectedLines(), true
}

// Write implements bus.Device.
func (j *Joypad) Write(addr uint16, v byte) bool {
	if addr != regP1 {
		return false
	}
	j.selectButtons = v & 0x30
	return true
}
