package cpu

import (
	"fmt"
	"github.com/dmgcore/gbcore/internal/memory"
)

// This file contains wrapper functions for the ADC and SBC instruction
// families, adapting cpu_add.go's and cpu_sbc.go's methods to the opcode
// dispatch system.

// wrapADD_A_HL wraps ADD A,(HL) for opcode dispatch (0x86)
func wrapADD_A_HL(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	cycles := cpu.ADD_A_HL(mmu)
	return cycles, nil
}

// wrapADC_A_A wraps ADC A,A for opcode dispatch (0x8F)
func wrapADC_A_A(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	cycles := cpu.ADC_A_A()
	return cycles, nil
}

// wrapADC_A_B wraps ADC A,B for opcode dispatch (0x88)
func wrapADC_A_B(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	cycles := cpu.ADC_A_B()
	return cycles, nil
}

// wrapADC_A_C wraps ADC A,C for opcode dispatch (0x89)
func wrapADC_A_C(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	cycles := cpu.ADC_A_C()
	return cycles, nil
}

// wrapADC_A_D wraps ADC A,D for opcode dispatch (0x8A)
func wrapADC_A_D(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	cycles := cpu.ADC_A_D()
	return cycles, nil
}

// wrapADC_A_E wraps ADC A,E for opcode dispatch (0x8B)
func wrapADC_A_E(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	cycles := cpu.ADC_A_E()
	return cycles, nil
}

// wrapADC_A_H wraps ADC A,H for opcode dispatch (0x8C)
func wrapADC_A_H(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	cycles := cpu.ADC_A_H()
	return cycles, nil
}

// wrapADC_A_L wraps ADC A,L for opcode dispatch (0x8D)
func wrapADC_A_L(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	cycles := cpu.ADC_A_L()
	return cycles, nil
}

// wrapADC_A_HL wraps ADC A,(HL) for opcode dispatch (0x8E)
func wrapADC_A_HL(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	cycles := cpu.ADC_A_HL(mmu)
	return cycles, nil
}

// wrapADC_A_n wraps ADC A,n for opcode dispatch (0xCE)
func wrapADC_A_n(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	if len(params) < 1 {
		return 0, fmt.Errorf("ADC A,n requires 1 parameter, got %d", len(params))
	}
	cycles := cpu.ADC_A_n(params[0])
	return cycles, nil
}

// wrapSBC_A_A wraps SBC A,A for opcode dispatch (0x9F)
func wrapSBC_A_A(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	cycles := cpu.SBC_A_A()
	return cycles, nil
}

// wrapSBC_A_B wraps SBC A,B for opcode dispatch (0x98)
func wrapSBC_A_B(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	cycles := cpu.SBC_A_B()
	return cycles, nil
}

// wrapSBC_A_C wraps SBC A,C for opcode dispatch (0x99)
func wrapSBC_A_C(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	cycles := cpu.SBC_A_C()
	return cycles, nil
}

// wrapSBC_A_D wraps SBC A,D for opcode dispatch (0x9A)
func wrapSBC_A_D(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	cycles := cpu.SBC_A_D()
	return cycles, nil
}

// wrapSBC_A_E wraps SBC A,E for opcode dispatch (0x9B)
func wrapSBC_A_E(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	cycles := cpu.SBC_A_E()
	return cycles, nil
}

// wrapSBC_A_H wraps SBC A,H for opcode dispatch (0x9C)
func wrapSBC_A_H(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	cycles := cpu.SBC_A_H()
	return cycles, nil
}

// wrapSBC_A_L wraps SBC A,L for opcode dispatch (0x9D)
func wrapSBC_A_L(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	cycles := cpu.SBC_A_L()
	return cycles, nil
}

// wrapSBC_A_HL wraps SBC A,(HL) for opcode dispatch (0x9E)
func wrapSBC_A_HL(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	cycles := cpu.SBC_A_HL(mmu)
	return cycles, nil
}

// wrapSBC_A_n wraps SBC A,n for opcode dispatch (0xDE)
func wrapSBC_A_n(cpu *CPU, mmu memory.MemoryInterface, params ...uint8) (uint8, error) {
	if len(params) < 1 {
		return 0, fmt.Errorf("SBC A,n requires 1 parameter, got %d", len(params))
	}
	cycles := cpu.SBC_A_n(params[0])
	return cycles, nil
}
