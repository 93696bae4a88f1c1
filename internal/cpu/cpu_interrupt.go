package cpu

import (
	"github.com/dmgcore/gbcore/internal/interrupt"
	"github.com/dmgcore/gbcore/internal/memory"
)

// Interrupt Service Routine (ISR) Implementation
//
// When an interrupt occurs, the CPU:
// 1. Checks if interrupts are enabled (IME flag)
// 2. Finds the highest priority pending interrupt
// 3. Disables interrupts (clears IME)
// 4. Pushes current PC to stack, one byte at a time
// 5. Re-samples the pending mask between the two pushes, since a handler
//    can itself clear IF while its high byte is already on the stack
// 6. Jumps to the vector chosen after the re-sample, or to 0x0000 if the
//    re-sample found nothing pending
//
// Total timing: 20 cycles.

// CheckAndServiceInterrupt checks for pending interrupts and services them if possible.
// Returns the number of cycles consumed (0 if no interrupt, 20 if one was serviced).
// Does not tick a pending EI itself: the caller must call TickEIDelay only
// after executing an instruction, so IME only changes between Steps and an
// EI-delayed instruction always runs with the old IME value.
func (cpu *CPU) CheckAndServiceInterrupt(mmu memory.MemoryInterface) uint8 {
	if !cpu.InterruptsEnabled {
		return 0
	}

	if _, ok := interrupt.HighestPriority(cpu.InterruptController.PendingMask()); !ok {
		return 0
	}

	return cpu.serviceInterrupt(mmu)
}

// serviceInterrupt performs the two-phase ISR dispatch described above.
func (cpu *CPU) serviceInterrupt(mmu memory.MemoryInterface) uint8 {
	cpu.InterruptsEnabled = false

	cpu.SP--
	mmu.WriteByte(cpu.SP, uint8(cpu.PC>>8))

	// Re-sample: a bit cleared between the two pushes cancels its own
	// dispatch but another pending bit can still take over.
	bit, ok := interrupt.HighestPriority(cpu.InterruptController.PendingMask())

	cpu.SP--
	if ok {
		mmu.WriteByte(cpu.SP, uint8(cpu.PC))
		cpu.InterruptController.Clear(bit)
		cpu.PC = interrupt.Vector(bit)
	} else {
		mmu.WriteByte(cpu.SP, uint8(cpu.PC))
		cpu.PC = 0x0000
	}

	if cpu.Halted {
		cpu.Halted = false
	}

	return 20
}

// RequestInterrupt requests a specific interrupt type. Called by hardware
// components when they need to raise an interrupt.
func (cpu *CPU) RequestInterrupt(bit int) {
	cpu.InterruptController.Request(bit)
}

// CheckHaltWithInterrupts returns true if the CPU should wake from HALT.
// When IME=0 and a pending-but-enabled interrupt exists, the CPU still
// wakes (the HALT bug) but does not service it; the next fetch replays
// the byte at PC without advancing PC, per the documented hardware quirk.
func (cpu *CPU) CheckHaltWithInterrupts() bool {
	pending := cpu.InterruptController.PendingMask() != 0
	if pending && !cpu.InterruptsEnabled {
		cpu.haltBug = true
	}
	return pending
}

// ConsumeHaltBug reports and clears the pending HALT-bug PC-freeze, for the
// fetch stage to apply to the very next opcode fetch only.
func (cpu *CPU) ConsumeHaltBug() bool {
	b := cpu.haltBug
	cpu.haltBug = false
	return b
}

// RequestEnableInterrupts arms a two-step delay: IME flips to true only
// after the instruction following EI has itself finished executing, not
// after EI's own Step. Concretely, with the counter decremented once per
// Step (including the Step that runs EI), EI sets the counter to 2 so it
// reaches 0 only at the end of the NEXT instruction's Step.
func (cpu *CPU) RequestEnableInterrupts() {
	cpu.eiDelay = 2
}

// TickEIDelay advances a pending EI delay by one instruction Step. The
// caller must invoke this exactly once per Step, after executing an
// instruction and before the next interrupt check. IME is set only when
// the counter reaches zero, which happens one full instruction after EI
// itself, never on EI's own Step.
func (cpu *CPU) TickEIDelay() {
	if cpu.eiDelay == 0 {
		return
	}
	cpu.eiDelay--
	if cpu.eiDelay == 0 {
		cpu.InterruptsEnabled = true
	}
}

// GetInterruptEnable returns the current state of the IE register.
func (cpu *CPU) GetInterruptEnable() uint8 {
	return cpu.InterruptController.ReadIE()
}

// SetInterruptEnable sets the IE register value.
func (cpu *CPU) SetInterruptEnable(value uint8) {
	cpu.InterruptController.WriteIE(value)
}

// GetInterruptFlag returns the current state of the IF register.
func (cpu *CPU) GetInterruptFlag() uint8 {
	return cpu.InterruptController.ReadIF()
}

// SetInterruptFlag sets the IF register value.
func (cpu *CPU) SetInterruptFlag(value uint8) {
	cpu.InterruptController.WriteIF(value)
}

// HasPendingInterrupts checks if there are any interrupts both enabled and pending.
func (cpu *CPU) HasPendingInterrupts() bool {
	return cpu.InterruptController.PendingMask() != 0
}

// EnableInterrupts sets IME immediately (used by RETI, and internally once
// an EI-delay completes). The EI opcode itself should call
// RequestEnableInterrupts instead.
func (cpu *CPU) EnableInterrupts() {
	cpu.InterruptsEnabled = true
}

// DisableInterrupts disables the interrupt master enable flag (IME).
// This is called by the DI instruction.
func (cpu *CPU) DisableInterrupts() {
	cpu.InterruptsEnabled = false
	cpu.eiDelay = 0
}

// GetHighestPriorityInterrupt returns the highest priority interrupt that
// is both enabled and pending. Returns bit and true if found.
func (cpu *CPU) GetHighestPriorityInterrupt() (int, bool) {
	return interrupt.HighestPriority(cpu.InterruptController.PendingMask())
}

// Interrupt bit constants, re-exported for callers that used to import
// them from this package rather than internal/interrupt directly.
const (
	InterruptVBlank  = interrupt.VBlank
	InterruptLCDStat = interrupt.LCDStat
	InterruptTimer   = interrupt.Timer
	InterruptSerial  = interrupt.Serial
	InterruptJoypad  = interrupt.Joypad
)
