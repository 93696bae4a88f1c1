package cpu

import (
	"fmt"
	"github.com/dmgcore/gbcore/internal/memory"
)

// This file contains wrapper functions for CPU control and interrupt
// instructions (HALT, STOP, DI, EI), adapting cpu_control.go's methods to
// the opcode dispatch system.

// wrapHALT wraps HALT for opcode dispatch (0x76)
func wrapHALT(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	if len(params) != 0 {
		return 0, fmt.Errorf("HALT expects no parameters, got %d", len(params))
	}
	cycles := cpu.HALT(mmu)
	return cycles, nil
}

// wrapSTOP wraps STOP for opcode dispatch (0x10). STOP is formally a 2-byte
// instruction; the second byte (conventionally 0x00) is fetched by the
// caller but otherwise unused here.
func wrapSTOP(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	if len(params) != 1 {
		return 0, fmt.Errorf("STOP requires 1 parameter byte, got %d", len(params))
	}
	cycles := cpu.STOP(mmu)
	return cycles, nil
}

// wrapDI wraps DI for opcode dispatch (0xF3)
func wrapDI(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	if len(params) != 0 {
		return 0, fmt.Errorf("DI expects no parameters, got %d", len(params))
	}
	cycles := cpu.DI(mmu)
	return cycles, nil
}

// wrapEI wraps EI for opcode dispatch (0xFB)
func wrapEI(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	if len(params) != 0 {
		return 0, fmt.Errorf("EI expects no parameters, got %d", len(params))
	}
	cycles := cpu.EI(mmu)
	return cycles, nil
}

// wrapPrefixCB wraps the CB prefix (0xCB) for direct ExecuteInstruction
// callers. System.Step fetches the second byte and calls
// ExecuteCBInstruction itself rather than going through this path, but
// ExecuteInstruction must still handle 0xCB correctly when invoked
// directly (e.g. from tests). params[0] is the CB-prefixed opcode byte;
// the returned cycle count folds in the 4 cycles for the prefix fetch.
func wrapPrefixCB(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	if len(params) < 1 {
		return 0, fmt.Errorf("PREFIX CB requires 1 parameter, got %d", len(params))
	}
	cycles, err := cpu.ExecuteCBInstruction(mmu, params[0])
	if err != nil {
		return 0, err
	}
	return cycles + 4, nil
}
