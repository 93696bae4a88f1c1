// Package joypad implements the Game Boy's button matrix: two active-low
// selection lines choosing between the d-pad and the action buttons, and a
// falling-edge interrupt on the visible nibble.
package joypad

import "github.com/dmgcore/gbcore/internal/interrupt"

// Button identifies one of the eight physical buttons.
type Button int

const (
	Right Button = iota
	Left
	Up
	Down
	A
	B
	Select
	Start
)

const Addr uint16 = 0xFF00

// direction/action bit assignment within the visible nibble: the same bit
// positions are shared by both button groups (§4.8 — selection and button
// state interact only through the visible nibble).
const (
	bitRightA  uint8 = 0x01
	bitLeftB   uint8 = 0x02
	bitUpSel   uint8 = 0x04
	bitDownSt  uint8 = 0x08
	bitSelDirs uint8 = 0x10 // P14, selects direction keys when low
	bitSelActs uint8 = 0x20 // P15, selects action keys when low
)

// Joypad tracks which of the eight buttons are currently pressed and the
// register's two selection bits.
type Joypad struct {
	pressed   [8]bool
	selectP14 bool // true = not selecting directions
	selectP15 bool // true = not selecting actions
}

// New returns a joypad with nothing pressed and both groups unselected.
func New() *Joypad {
	return &Joypad{selectP14: true, selectP15: true}
}

// Reset restores power-on state.
func (j *Joypad) Reset() {
	*j = Joypad{selectP14: true, selectP15: true}
}

// SetButton updates a single button's pressed state, raising the joypad
// interrupt on a 1->0 transition of the visible nibble.
func (j *Joypad) SetButton(b Button, pressed bool, irq *interrupt.Controller) {
	before := j.visibleNibble()
	j.pressed[b] = pressed
	after := j.visibleNibble()
	if before&^after != 0 {
		irq.Request(interrupt.Joypad)
	}
}

// visibleNibble computes the active-low 4-bit state for whichever group(s)
// are currently selected, OR'd together as real hardware does.
func (j *Joypad) visibleNibble() uint8 {
	nibble := uint8(0x0F)
	if !j.selectP14 {
		nibble &^= j.directionBits()
	}
	if !j.selectP15 {
		nibble &^= j.actionBits()
	}
	return nibble
}

func (j *Joypad) directionBits() uint8 {
	var v uint8
	if j.pressed[Right] {
		v |= bitRightA
	}
	if j.pressed[Left] {
		v |= bitLeftB
	}
	if j.pressed[Up] {
		v |= bitUpSel
	}
	if j.pressed[Down] {
		v |= bitDownSt
	}
	return v
}

func (j *Joypad) actionBits() uint8 {
	var v uint8
	if j.pressed[A] {
		v |= bitRightA
	}
	if j.pressed[B] {
		v |= bitLeftB
	}
	if j.pressed[Select] {
		v |= bitUpSel
	}
	if j.pressed[Start] {
		v |= bitDownSt
	}
	return v
}

// Pressed reports whether the given button is currently held down,
// independent of which group is selected.
func (j *Joypad) Pressed(b Button) bool {
	return j.pressed[b]
}

// Read returns the joypad register (0xFF00): top two bits always set, the
// two selection bits as last written, and the visible active-low nibble.
func (j *Joypad) Read() uint8 {
	v := uint8(0xC0) | j.visibleNibble()
	if j.selectP14 {
		v |= bitSelDirs
	}
	if j.selectP15 {
		v |= bitSelActs
	}
	return v
}

// Write updates the two selection bits; the button-state nibble is
// read-only from the bus side.
func (j *Joypad) Write(v uint8) {
	j.selectP14 = v&bitSelDirs != 0
	j.selectP15 = v&bitSelActs != 0
}
