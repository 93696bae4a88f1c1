// Package debug exposes a point-in-time snapshot of the machine's visible
// state, for inspectors and test harnesses that need more than the
// system's own public surface.
package debug

import "github.com/dmgcore/gbcore/internal/system"

// Snapshot captures the CPU registers, interrupt state, and pixel unit
// status at the instant it was taken.
type Snapshot struct {
	PC uint16
	SP uint16
	AF uint16
	BC uint16
	DE uint16
	HL uint16

	IME   bool
	Halt  bool
	IE    uint8
	IF    uint8
	LY    uint8
	LCDC  uint8
	STAT  uint8
	Cycle uint64

	LastOpcode uint8

	// APUDropped is the audio ring buffer's dropped-frame count: frames
	// the APU produced but the consumer had not drained before the ring
	// filled and the oldest frame was overwritten.
	APUDropped uint64
}

// Capture builds a Snapshot from the current state of s.
func Capture(s *system.System) Snapshot {
	return Snapshot{
		PC:         s.CPU.PC,
		SP:         s.CPU.SP,
		AF:         s.CPU.GetAF(),
		BC:         s.CPU.GetBC(),
		DE:         s.CPU.GetDE(),
		HL:         s.CPU.GetHL(),
		IME:        s.CPU.InterruptsEnabled,
		Halt:       s.CPU.Halted,
		IE:         s.CPU.GetInterruptEnable(),
		IF:         s.CPU.GetInterruptFlag(),
		LY:         s.PPU.GetCurrentScanline(),
		LCDC:       s.PPU.LCDC,
		STAT:       s.PPU.STAT,
		Cycle:      s.CycleCount(),
		LastOpcode: s.LastOpcode(),
		APUDropped: s.MMU.GetAPU().DroppedFrames(),
	}
}
