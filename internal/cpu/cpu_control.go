package cpu

import (
	"github.com/dmgcore/gbcore/internal/memory"
)

// Control and Interrupt Instructions for Game Boy CPU
// These instructions control CPU execution state and interrupt handling

// ================================
// CPU Control Instructions
// ================================

// HALT - Halt CPU until interrupt (0x76)
// Stops CPU execution until an interrupt occurs
// Used for power saving and waiting for events
// Flags affected: None
// Cycles: 4
// Note: In real Game Boy, behavior depends on interrupt enable state
func (cpu *CPU) HALT(mmu memory.MemoryInterface) uint8 {
	cpu.Halted = true
	return 4 // 4 cycles
}

// STOP - Stop CPU and LCD until button press (0x10)
// Stops CPU and LCD completely until a button is pressed
// Most aggressive power saving mode
// Flags affected: None  
// Cycles: 4
// Note: In real Game Boy, next byte is consumed (should be 0x00)
func (cpu *CPU) STOP(mmu memory.MemoryInterface) uint8 {
	cpu.Stopped = true
	cpu.Halted = true // STOP also halts the CPU
	return 4 // 4 cycles
}

// ================================
// Interrupt Control Instructions
// ================================

// Note: For a complete Game Boy emulator, interrupt handling would require:
// - Interrupt Master Enable (IME) flag
// - Interrupt Enable register (IE) at 0xFFFF
// - Interrupt Flag register (IF) at 0xFF0F  
// - 5 interrupt types: V-Blank, LCD STAT, Timer, Serial, Joypad
//
// For now, we implement the basic instructions that would control IME.

// DI - Disable Interrupts (0xF3)
// Disables interrupt handling by clearing the Interrupt Master Enable flag
// Prevents CPU from responding to interrupt requests
// Flags affected: None
// Cycles: 4
// Example usage: Critical sections where interrupts must not occur
func (cpu *CPU) DI(mmu memory.MemoryInterface) uint8 {
	cpu.DisableInterrupts()
	return 4 // 4 cycles
}

// EI - Enable Interrupts (0xFB)
// Arms the Interrupt Master Enable flag, but the enable only takes effect
// once the instruction following EI has finished executing. No interrupt
// can be dispatched during that one-instruction window, even if IE/IF
// already have a pending bit set.
// Flags affected: None
// Cycles: 4
func (cpu *CPU) EI(mmu memory.MemoryInterface) uint8 {
	cpu.RequestEnableInterrupts()
	return 4 // 4 cycles
}

// ================================
// CPU State Query Functions
// ================================

// IsHalted returns true if CPU is in halt state
func (cpu *CPU) IsHalted() bool {
	return cpu.Halted
}

// IsStopped returns true if CPU is in stop state
func (cpu *CPU) IsStopped() bool {
	return cpu.Stopped
}

// AreInterruptsEnabled returns true if interrupts are enabled
func (cpu *CPU) AreInterruptsEnabled() bool {
	return cpu.InterruptsEnabled
}

// Resume - Resume CPU from halt/stop state
// Used by interrupt handling or external events
func (cpu *CPU) Resume() {
	cpu.Halted = false
	cpu.Stopped = false
}

// Implementation Notes:
//
// HALT Instruction:
// - The HALT bug (PC not advancing when IME=0 and an interrupt is already
//   pending) is detected by CheckHaltWithInterrupts/ConsumeHaltBug in
//   cpu_interrupt.go, not here; this method only sets the Halted flag.
//
// STOP Instruction:
// - Requires next byte to be 0x00 (handled by instruction fetch)
// - Only joypad interrupts can wake from STOP
//
// DI/EI Instructions:
// - DI takes effect immediately (DisableInterrupts also cancels any
//   EI that is still pending).
// - EI arms a two-Step delay counter; IME only flips to true once the
//   following instruction has fully executed, via TickEIDelay in
//   cpu_interrupt.go. See RequestEnableInterrupts for the exact timing.