// Package system is the top-level orchestrator: it wires the CPU, bus, and
// pixel unit together and drives them one instruction at a time.
package system

import (
	"fmt"

	"github.com/dmgcore/gbcore/internal/cartridge"
	"github.com/dmgcore/gbcore/internal/cpu"
	"github.com/dmgcore/gbcore/internal/joypad"
	"github.com/dmgcore/gbcore/internal/memory"
	"github.com/dmgcore/gbcore/internal/ppu"
)

// FrameObserver is called with the completed 160x144 palette-index
// framebuffer every time the pixel unit finishes a frame. The slice is
// reused by the PPU on the next frame, so observers that need to keep the
// data must copy it.
type FrameObserver func(frame *[ppu.ScreenHeight][ppu.ScreenWidth]uint8)

// System is a complete, runnable Game Boy: CPU, bus, pixel unit, and the
// cartridge mapper currently inserted.
type System struct {
	CPU       *cpu.CPU
	MMU       *memory.MMU
	PPU       *ppu.PPU
	Joypad    *joypad.Joypad
	Cartridge cartridge.MBC

	cycleCounter       uint64
	frameObservers     []FrameObserver
	lastOpcode         uint8
	frameJustCompleted bool
}

// New builds a system around an already-constructed cartridge mapper.
func New(mbc cartridge.MBC) *System {
	c := cpu.NewCPU()
	jp := joypad.New()
	mmu := memory.NewMMU(mbc, c.InterruptController, jp)
	p := ppu.NewPPU()
	mmu.SetPPU(p)

	s := &System{
		CPU:       c,
		MMU:       mmu,
		PPU:       p,
		Joypad:    jp,
		Cartridge: mbc,
	}
	s.Reset()
	return s
}

// NewFromROM loads a ROM image from disk and builds a system around it.
func NewFromROM(romPath string) (*System, error) {
	cart, err := cartridge.LoadROMFromFile(romPath)
	if err != nil {
		return nil, fmt.Errorf("load rom: %w", err)
	}
	mbc, err := cartridge.CreateMBC(cart)
	if err != nil {
		return nil, fmt.Errorf("create mbc: %w", err)
	}
	return New(mbc), nil
}

// Reset applies the documented DMG power-on register values to the CPU,
// pixel unit and joypad and clears the cycle counter. The bus and its
// peripherals (RAM, timer, serial port, audio, DMA) are not reset.
func (s *System) Reset() {
	s.CPU.Reset()
	s.PPU.Reset()
	s.Joypad.Reset()
	s.cycleCounter = 0
}

// RegisterFrameObserver adds a callback invoked every time the pixel unit
// completes a frame. Call it from StepFrame/RunFor loops, not concurrently.
func (s *System) RegisterFrameObserver(obs FrameObserver) {
	s.frameObservers = append(s.frameObservers, obs)
}

// Step executes exactly one CPU instruction (or one interrupt dispatch, or
// one HALT-idle tick if halted) and fans the consumed T-cycles out to every
// other subsystem in lockstep. Returns the number of T-cycles consumed.
func (s *System) Step() (uint8, error) {
	if cycles := s.CPU.CheckAndServiceInterrupt(s.MMU); cycles > 0 {
		s.tick(cycles)
		return cycles, nil
	}

	if s.CPU.Halted {
		if s.CPU.CheckHaltWithInterrupts() {
			s.CPU.Halted = false
		}
		s.tick(4)
		return 4, nil
	}

	cycles, err := s.executeOne()
	if err != nil {
		return 0, err
	}
	// Advance any pending EI delay by one instruction. IME only reaches true
	// at the end of the Step that runs the instruction following EI, so that
	// instruction always runs with the old IME value and never sees an
	// interrupt dispatched in between.
	s.CPU.TickEIDelay()
	s.tick(cycles)
	return cycles, nil
}

// tick fans the given T-cycles out to the bus peripherals and the pixel
// unit, and advances the running cycle counter used by the debug snapshot.
func (s *System) tick(cycles uint8) {
	s.MMU.Tick(cycles)
	s.PPU.Update(cycles, s.CPU.InterruptController)
	s.cycleCounter += uint64(cycles)

	if s.PPU.FrameReady {
		s.PPU.FrameReady = false
		s.frameJustCompleted = true
		for _, obs := range s.frameObservers {
			obs(&s.PPU.Framebuffer)
		}
	}
}

// RunFor drives the system until at least the given number of T-cycles has
// been consumed. The final instruction may run slightly past the budget;
// cycles are never split mid-instruction.
func (s *System) RunFor(cycles int) error {
	spent := 0
	for spent < cycles {
		n, err := s.Step()
		if err != nil {
			return err
		}
		spent += int(n)
	}
	return nil
}

// StepFrame drives the system until the pixel unit signals a completed
// frame, notifying any registered frame observers along the way.
func (s *System) StepFrame() error {
	for {
		if _, err := s.Step(); err != nil {
			return err
		}
		if s.frameJustCompleted {
			s.frameJustCompleted = false
			return nil
		}
	}
}

// executeOne fetches, decodes, and executes one instruction at the current
// PC, consulting the HALT-bug latch so a stale PC is replayed exactly once.
func (s *System) executeOne() (uint8, error) {
	opcode := s.fetch()
	s.lastOpcode = opcode

	if opcode == 0xCB {
		cbOpcode := s.fetch()
		cycles, err := s.CPU.ExecuteCBInstruction(s.MMU, cbOpcode)
		if err != nil {
			return 0, fmt.Errorf("cb opcode 0x%02X at pc 0x%04X: %w", cbOpcode, s.CPU.PC-2, err)
		}
		return cycles + 4, nil
	}

	params := s.readParameters(opcode)
	cycles, err := s.CPU.ExecuteInstruction(s.MMU, opcode, params...)
	if err != nil {
		return 0, fmt.Errorf("opcode 0x%02X at pc 0x%04X: %w", opcode, s.CPU.PC-1, err)
	}
	return cycles, nil
}

// fetch reads the byte at PC and advances PC, applying the HALT-bug PC
// freeze exactly once if it is currently armed.
func (s *System) fetch() uint8 {
	pc := s.CPU.PC
	dma := s.MMU.GetDMAController()

	var value uint8
	if dma.IsActive() && !dma.CanCPUAccessMemory(pc) {
		value = 0xFF
	} else {
		value = s.MMU.ReadByte(pc)
	}

	if s.CPU.ConsumeHaltBug() {
		return value
	}
	s.CPU.PC = pc + 1
	return value
}

// readParameters reads the immediate operand bytes a given opcode needs,
// advancing PC for each one read.
func (s *System) readParameters(opcode uint8) []uint8 {
	switch opcode {
	case 0x06, 0x0E, 0x16, 0x1E, 0x26, 0x2E, 0x36, 0x3E,
		0xC6, 0xCE, 0xD6, 0xDE, 0xE6, 0xEE, 0xF6, 0xFE,
		0x10, 0x18, 0x20, 0x28, 0x30, 0x38,
		0xE0, 0xF0,
		0xE8, 0xF8:
		return []uint8{s.fetch()}

	case 0x01, 0x11, 0x21, 0x31,
		0x08,
		0xC2, 0xC3, 0xCA, 0xD2, 0xDA,
		0xC4, 0xCC, 0xCD, 0xD4, 0xDC,
		0xEA, 0xFA:
		low := s.fetch()
		high := s.fetch()
		return []uint8{low, high}

	default:
		return nil
	}
}

// CycleCount returns the total number of T-cycles executed since the last
// Reset, for the debug snapshot.
func (s *System) CycleCount() uint64 {
	return s.cycleCounter
}

// LastOpcode returns the most recently fetched top-level opcode (0xCB for
// a CB-prefixed instruction, not the byte that followed it).
func (s *System) LastOpcode() uint8 {
	return s.lastOpcode
}
