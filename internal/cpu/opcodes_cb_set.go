package cpu

import "github.com/dmgcore/gbcore/internal/memory"

// Wrapper functions for the SET 1,r through SET 6,r instruction families
// (CB 0xC8-0xFB), plus the SET 7,B/C/D/E wrappers opcodes_cb.go's table
// was still missing. SET 0,r and most of SET 7,r already have wrappers
// alongside their methods in cpu_cb_instructions.go.

// SET 1,r wrappers (CB 0xC8-0xCF)
func wrapCB_SET_1_B(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_1_B(), nil
}
func wrapCB_SET_1_C(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_1_C(), nil
}
func wrapCB_SET_1_D(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_1_D(), nil
}
func wrapCB_SET_1_E(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_1_E(), nil
}
func wrapCB_SET_1_H(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_1_H(), nil
}
func wrapCB_SET_1_L(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_1_L(), nil
}
func wrapCB_SET_1_HL(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_1_HL(mmu), nil
}
func wrapCB_SET_1_A(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_1_A(), nil
}

// SET 2,r wrappers (CB 0xD0-0xD7)
func wrapCB_SET_2_B(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_2_B(), nil
}
func wrapCB_SET_2_C(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_2_C(), nil
}
func wrapCB_SET_2_D(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_2_D(), nil
}
func wrapCB_SET_2_E(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_2_E(), nil
}
func wrapCB_SET_2_H(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_2_H(), nil
}
func wrapCB_SET_2_L(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_2_L(), nil
}
func wrapCB_SET_2_HL(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_2_HL(mmu), nil
}
func wrapCB_SET_2_A(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_2_A(), nil
}

// SET 3,r wrappers (CB 0xD8-0xDF)
func wrapCB_SET_3_B(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_3_B(), nil
}
func wrapCB_SET_3_C(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_3_C(), nil
}
func wrapCB_SET_3_D(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_3_D(), nil
}
func wrapCB_SET_3_E(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_3_E(), nil
}
func wrapCB_SET_3_H(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_3_H(), nil
}
func wrapCB_SET_3_L(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_3_L(), nil
}
func wrapCB_SET_3_HL(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_3_HL(mmu), nil
}
func wrapCB_SET_3_A(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_3_A(), nil
}

// SET 4,r wrappers (CB 0xE0-0xE7)
func wrapCB_SET_4_B(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_4_B(), nil
}
func wrapCB_SET_4_C(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_4_C(), nil
}
func wrapCB_SET_4_D(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_4_D(), nil
}
func wrapCB_SET_4_E(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_4_E(), nil
}
func wrapCB_SET_4_H(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_4_H(), nil
}
func wrapCB_SET_4_L(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_4_L(), nil
}
func wrapCB_SET_4_HL(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_4_HL(mmu), nil
}
func wrapCB_SET_4_A(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_4_A(), nil
}

// SET 5,r wrappers (CB 0xE8-0xEF)
func wrapCB_SET_5_B(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_5_B(), nil
}
func wrapCB_SET_5_C(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_5_C(), nil
}
func wrapCB_SET_5_D(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_5_D(), nil
}
func wrapCB_SET_5_E(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_5_E(), nil
}
func wrapCB_SET_5_H(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_5_H(), nil
}
func wrapCB_SET_5_L(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_5_L(), nil
}
func wrapCB_SET_5_HL(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_5_HL(mmu), nil
}
func wrapCB_SET_5_A(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_5_A(), nil
}

// SET 6,r wrappers (CB 0xF0-0xF7)
func wrapCB_SET_6_B(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_6_B(), nil
}
func wrapCB_SET_6_C(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_6_C(), nil
}
func wrapCB_SET_6_D(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_6_D(), nil
}
func wrapCB_SET_6_E(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_6_E(), nil
}
func wrapCB_SET_6_H(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_6_H(), nil
}
func wrapCB_SET_6_L(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_6_L(), nil
}
func wrapCB_SET_6_HL(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_6_HL(mmu), nil
}
func wrapCB_SET_6_A(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_6_A(), nil
}

// SET 7,B/C/D/E wrappers (CB 0xF8-0xFB); H/L/HL/A already have wrappers
// alongside their methods in cpu_cb_instructions.go.
func wrapCB_SET_7_B(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_7_B(), nil
}
func wrapCB_SET_7_C(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_7_C(), nil
}
func wrapCB_SET_7_D(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_7_D(), nil
}
func wrapCB_SET_7_E(cpu *CPU, mmu memory.MemoryInterface) (uint8, error) {
	return cpu.SET_7_E(), nil
}
