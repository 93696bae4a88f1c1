// Package serial implements the Game Boy's internal-clock serial transfer:
// writing SC with the start and internal-clock bits set shifts SB out over
// 4096 cycles, then raises the serial interrupt. External-clock transfers
// have no peer in this core and never complete.
package serial

import "github.com/dmgcore/gbcore/internal/interrupt"

const (
	SBAddr uint16 = 0xFF01
	SCAddr uint16 = 0xFF02

	startBit         uint8 = 0x80
	internalClockBit uint8 = 0x01

	transferCycles = 4096
)

// Port models the Game Boy link-port register pair and keeps a cumulative
// log of every byte the core has transmitted, since the physical peer is
// outside this core's scope.
type Port struct {
	SB uint8
	SC uint8

	transferring bool
	cyclesLeft   int

	output []byte
}

// New returns a port in its power-on state.
func New() *Port {
	return &Port{SC: 0x7E}
}

// Reset restores power-on state, discarding the output log.
func (p *Port) Reset() {
	*p = Port{SC: 0x7E}
}

// ReadSB returns the current shift register value.
func (p *Port) ReadSB() uint8 { return p.SB }

// WriteSB loads a new value into the shift register. Writes during an
// active transfer are permitted but have no effect on the in-flight byte,
// matching how SB is only latched at transfer start.
func (p *Port) WriteSB(v uint8) { p.SB = v }

// ReadSC returns the control register with its unused middle bits forced high.
func (p *Port) ReadSC() uint8 { return p.SC&(startBit|internalClockBit) | 0x7E }

// WriteSC updates the control register and, if both the start bit and the
// internal-clock bit are set, begins a transfer.
func (p *Port) WriteSC(v uint8) {
	p.SC = v
	if v&startBit != 0 && v&internalClockBit != 0 {
		p.transferring = true
		p.cyclesLeft = transferCycles
	}
}

// Tick advances the serial port by the given number of CPU T-cycles.
func (p *Port) Tick(cycles int, irq *interrupt.Controller) {
	if !p.transferring {
		return
	}
	p.cyclesLeft -= cycles
	if p.cyclesLeft > 0 {
		return
	}
	p.transferring = false
	p.SC &^= startBit
	p.output = append(p.output, p.SB)
	p.SB = 0xFF
	irq.Request(interrupt.Serial)
}

// Output returns the cumulative ASCII of every byte transmitted so far.
func (p *Port) Output() string { return string(p.output) }
