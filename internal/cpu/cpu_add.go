package cpu

import "github.com/dmgcore/gbcore/internal/memory"

// === ADD Operations ===
// ADD operations add a value to register A and store the result in A
// All ADD operations affect flags: Z N H C
// Z: Set if result is zero
// N: Always reset (addition operation)
// H: Set if carry from bit 3 to bit 4
// C: Set if carry out of bit 7 (result overflows past 0xFF)

func addFlags(a, operand uint8) (result uint8, halfCarry, carry bool) {
	sum := uint16(a) + uint16(operand)
	halfCarry = (a&0x0F)+(operand&0x0F) > 0x0F
	carry = sum > 0xFF
	result = uint8(sum)
	return
}

// ADD_A_A - Add register A to itself (0x87)
// Cycles: 4
func (cpu *CPU) ADD_A_A() uint8 {
	result, halfCarry, carry := addFlags(cpu.A, cpu.A)
	cpu.A = result
	cpu.SetFlag(FlagZ, result == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, halfCarry)
	cpu.SetFlag(FlagC, carry)
	return 4
}

// ADD_A_B - Add register B to register A (0x80)
// Cycles: 4
func (cpu *CPU) ADD_A_B() uint8 {
	result, halfCarry, carry := addFlags(cpu.A, cpu.B)
	cpu.A = result
	cpu.SetFlag(FlagZ, result == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, halfCarry)
	cpu.SetFlag(FlagC, carry)
	return 4
}

// ADD_A_C - Add register C to register A (0x81)
// Cycles: 4
func (cpu *CPU) ADD_A_C() uint8 {
	result, halfCarry, carry := addFlags(cpu.A, cpu.C)
	cpu.A = result
	cpu.SetFlag(FlagZ, result == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, halfCarry)
	cpu.SetFlag(FlagC, carry)
	return 4
}

// ADD_A_D - Add register D to register A (0x82)
// Cycles: 4
func (cpu *CPU) ADD_A_D() uint8 {
	result, halfCarry, carry := addFlags(cpu.A, cpu.D)
	cpu.A = result
	cpu.SetFlag(FlagZ, result == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, halfCarry)
	cpu.SetFlag(FlagC, carry)
	return 4
}

// ADD_A_E - Add register E to register A (0x83)
// Cycles: 4
func (cpu *CPU) ADD_A_E() uint8 {
	result, halfCarry, carry := addFlags(cpu.A, cpu.E)
	cpu.A = result
	cpu.SetFlag(FlagZ, result == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, halfCarry)
	cpu.SetFlag(FlagC, carry)
	return 4
}

// ADD_A_H - Add register H to register A (0x84)
// Cycles: 4
func (cpu *CPU) ADD_A_H() uint8 {
	result, halfCarry, carry := addFlags(cpu.A, cpu.H)
	cpu.A = result
	cpu.SetFlag(FlagZ, result == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, halfCarry)
	cpu.SetFlag(FlagC, carry)
	return 4
}

// ADD_A_L - Add register L to register A (0x85)
// Cycles: 4
func (cpu *CPU) ADD_A_L() uint8 {
	result, halfCarry, carry := addFlags(cpu.A, cpu.L)
	cpu.A = result
	cpu.SetFlag(FlagZ, result == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, halfCarry)
	cpu.SetFlag(FlagC, carry)
	return 4
}

// ADD_A_HL - Add value at memory address HL to register A (0x86)
// Cycles: 8
func (cpu *CPU) ADD_A_HL(mmu memory.MemoryInterface) uint8 {
	value := mmu.ReadByte(cpu.GetHL())
	result, halfCarry, carry := addFlags(cpu.A, value)
	cpu.A = result
	cpu.SetFlag(FlagZ, result == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, halfCarry)
	cpu.SetFlag(FlagC, carry)
	return 8
}

// ADD_A_n - Add immediate 8-bit value to register A (0xC6)
// Cycles: 8
func (cpu *CPU) ADD_A_n(value uint8) uint8 {
	result, halfCarry, carry := addFlags(cpu.A, value)
	cpu.A = result
	cpu.SetFlag(FlagZ, result == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, halfCarry)
	cpu.SetFlag(FlagC, carry)
	return 8
}

// === ADC Operations ===
// ADC operations add a value plus the carry flag to register A
// Formula: A = A + operand + carry_flag
// Flags: Z N H C, same meaning as ADD but accounting for the extra carry-in

func adcFlags(a, operand, carryIn uint8) (result uint8, halfCarry, carry bool) {
	sum := uint16(a) + uint16(operand) + uint16(carryIn)
	halfCarry = (a&0x0F)+(operand&0x0F)+carryIn > 0x0F
	carry = sum > 0xFF
	result = uint8(sum)
	return
}

func (cpu *CPU) carryIn() uint8 {
	if cpu.GetFlag(FlagC) {
		return 1
	}
	return 0
}

// ADC_A_A - Add register A and the carry flag to register A (0x8F)
// Cycles: 4
func (cpu *CPU) ADC_A_A() uint8 {
	result, halfCarry, carry := adcFlags(cpu.A, cpu.A, cpu.carryIn())
	cpu.A = result
	cpu.SetFlag(FlagZ, result == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, halfCarry)
	cpu.SetFlag(FlagC, carry)
	return 4
}

// ADC_A_B - Add register B and the carry flag to register A (0x88)
// Cycles: 4
func (cpu *CPU) ADC_A_B() uint8 {
	result, halfCarry, carry := adcFlags(cpu.A, cpu.B, cpu.carryIn())
	cpu.A = result
	cpu.SetFlag(FlagZ, result == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, halfCarry)
	cpu.SetFlag(FlagC, carry)
	return 4
}

// ADC_A_C - Add register C and the carry flag to register A (0x89)
// Cycles: 4
func (cpu *CPU) ADC_A_C() uint8 {
	result, halfCarry, carry := adcFlags(cpu.A, cpu.C, cpu.carryIn())
	cpu.A = result
	cpu.SetFlag(FlagZ, result == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, halfCarry)
	cpu.SetFlag(FlagC, carry)
	return 4
}

// ADC_A_D - Add register D and the carry flag to register A (0x8A)
// Cycles: 4
func (cpu *CPU) ADC_A_D() uint8 {
	result, halfCarry, carry := adcFlags(cpu.A, cpu.D, cpu.carryIn())
	cpu.A = result
	cpu.SetFlag(FlagZ, result == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, halfCarry)
	cpu.SetFlag(FlagC, carry)
	return 4
}

// ADC_A_E - Add register E and the carry flag to register A (0x8B)
// Cycles: 4
func (cpu *CPU) ADC_A_E() uint8 {
	result, halfCarry, carry := adcFlags(cpu.A, cpu.E, cpu.carryIn())
	cpu.A = result
	cpu.SetFlag(FlagZ, result == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, halfCarry)
	cpu.SetFlag(FlagC, carry)
	return 4
}

// ADC_A_H - Add register H and the carry flag to register A (0x8C)
// Cycles: 4
func (cpu *CPU) ADC_A_H() uint8 {
	result, halfCarry, carry := adcFlags(cpu.A, cpu.H, cpu.carryIn())
	cpu.A = result
	cpu.SetFlag(FlagZ, result == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, halfCarry)
	cpu.SetFlag(FlagC, carry)
	return 4
}

// ADC_A_L - Add register L and the carry flag to register A (0x8D)
// Cycles: 4
func (cpu *CPU) ADC_A_L() uint8 {
	result, halfCarry, carry := adcFlags(cpu.A, cpu.L, cpu.carryIn())
	cpu.A = result
	cpu.SetFlag(FlagZ, result == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, halfCarry)
	cpu.SetFlag(FlagC, carry)
	return 4
}

// ADC_A_HL - Add value at memory address HL and the carry flag to register A (0x8E)
// Cycles: 8
func (cpu *CPU) ADC_A_HL(mmu memory.MemoryInterface) uint8 {
	value := mmu.ReadByte(cpu.GetHL())
	result, halfCarry, carry := adcFlags(cpu.A, value, cpu.carryIn())
	cpu.A = result
	cpu.SetFlag(FlagZ, result == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, halfCarry)
	cpu.SetFlag(FlagC, carry)
	return 8
}

// ADC_A_n - Add immediate 8-bit value and the carry flag to register A (0xCE)
// Cycles: 8
func (cpu *CPU) ADC_A_n(value uint8) uint8 {
	result, halfCarry, carry := adcFlags(cpu.A, value, cpu.carryIn())
	cpu.A = result
	cpu.SetFlag(FlagZ, result == 0)
	cpu.SetFlag(FlagN, false)
	cpu.SetFlag(FlagH, halfCarry)
	cpu.SetFlag(FlagC, carry)
	return 8
}
