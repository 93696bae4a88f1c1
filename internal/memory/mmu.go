// Package memory implements the Game Boy system bus: the 16-bit address
// space that routes CPU reads and writes to cartridge ROM/RAM, VRAM/OAM
// (via the PPU), work RAM, the I/O register file, and high RAM.
package memory

import (
	"github.com/dmgcore/gbcore/internal/apu"
	"github.com/dmgcore/gbcore/internal/cartridge"
	"github.com/dmgcore/gbcore/internal/dma"
	"github.com/dmgcore/gbcore/internal/interrupt"
	"github.com/dmgcore/gbcore/internal/joypad"
	"github.com/dmgcore/gbcore/internal/ppu"
	"github.com/dmgcore/gbcore/internal/serial"
	"github.com/dmgcore/gbcore/internal/timer"
)

// Memory region boundaries for the DMG address space.
const (
	ROMBank0Start uint16 = 0x0000
	ROMBank0End   uint16 = 0x3FFF
	ROMBank0Size  uint32 = 0x4000

	ROMBank1Start uint16 = 0x4000
	ROMBank1End   uint16 = 0x7FFF
	ROMBank1Size  uint32 = 0x4000

	VRAMStart uint16 = 0x8000
	VRAMEnd   uint16 = 0x9FFF
	VRAMSize  uint32 = 0x2000

	ExternalRAMStart uint16 = 0xA000
	ExternalRAMEnd   uint16 = 0xBFFF
	ExternalRAMSize  uint32 = 0x2000

	WRAMStart uint16 = 0xC000
	WRAMEnd   uint16 = 0xDFFF
	WRAMSize  uint32 = 0x2000

	EchoRAMStart uint16 = 0xE000
	EchoRAMEnd   uint16 = 0xFDFF

	OAMStart uint16 = 0xFE00
	OAMEnd   uint16 = 0xFE9F
	OAMSize  uint32 = 0xA0

	ProhibitedStart uint16 = 0xFEA0
	ProhibitedEnd   uint16 = 0xFEFF

	IORegistersStart uint16 = 0xFF00
	IORegistersEnd   uint16 = 0xFF7F
	IORegistersSize  uint32 = 0x80

	HRAMStart uint16 = 0xFF80
	HRAMEnd   uint16 = 0xFFFE
	HRAMSize  uint32 = 0x7F

	InterruptEnableRegister uint16 = 0xFFFF
)

// I/O register addresses.
const (
	JoypadRegister            uint16 = 0xFF00
	SerialDataRegister        uint16 = 0xFF01
	SerialControlRegister     uint16 = 0xFF02
	DividerRegister           uint16 = 0xFF04
	TimerCounterRegister      uint16 = 0xFF05
	TimerModuloRegister       uint16 = 0xFF06
	TimerControlRegister      uint16 = 0xFF07
	InterruptFlagRegister     uint16 = 0xFF0F
	LCDControlRegister        uint16 = 0xFF40
	LCDStatusRegister         uint16 = 0xFF41
	ScrollYRegister           uint16 = 0xFF42
	ScrollXRegister           uint16 = 0xFF43
	LYRegister                uint16 = 0xFF44
	LYCompareRegister         uint16 = 0xFF45
	DMARegister               uint16 = 0xFF46
	BackgroundPaletteRegister uint16 = 0xFF47
	ObjectPalette0Register    uint16 = 0xFF48
	ObjectPalette1Register    uint16 = 0xFF49
	WindowYRegister           uint16 = 0xFF4A
	WindowXRegister           uint16 = 0xFF4B
)

// MemoryInterface is the bus contract the CPU and other peripherals
// program against, so they don't need to depend on *MMU directly.
type MemoryInterface interface {
	ReadByte(address uint16) uint8
	WriteByte(address uint16, value uint8)
	ReadWord(address uint16) uint16
	WriteWord(address uint16, value uint16)
}

// PPUInterface is the subset of *ppu.PPU the bus needs: VRAM/OAM storage,
// the LCD register file, and the mode the PPU is currently in (for the
// CPU-side access restrictions during OAM Scan/Drawing).
type PPUInterface interface {
	ReadVRAM(address uint16) uint8
	WriteVRAM(address uint16, value uint8)
	ReadOAM(address uint16) uint8
	WriteOAM(address uint16, value uint8)
	ReadRegister(address uint16) uint8
	WriteRegister(address uint16, value uint8)
	GetCurrentMode() ppu.PPUMode
	IsLCDEnabled() bool
}

// MMU is the Game Boy system bus. It owns the peripherals that don't have
// their own package (WRAM, HRAM) and routes everything else to the
// component that owns it.
type MMU struct {
	mbc  cartridge.MBC
	ppu  PPUInterface
	irq  *interrupt.Controller
	jp   *joypad.Joypad
	tmr  *timer.Timer
	ser  *serial.Port
	snd  *apu.APU
	dma  *dma.DMAController

	wram [WRAMSize]uint8
	hram [HRAMSize]uint8

	// Fallback storage used only when no PPU is attached (e.g. bus-only
	// unit tests), so VRAM/OAM reads/writes still round-trip.
	vramFallback [VRAMSize]uint8
	oamFallback  [OAMSize]uint8
	ioFallback   [IORegistersSize]uint8
}

// NewMMU creates a system bus wired to the cartridge MBC, interrupt
// controller, and joypad. Timer, serial, and APU peripherals are owned by
// the bus itself since nothing else needs direct access to them; PPU is
// attached separately via SetPPU once constructed by the caller.
func NewMMU(mbc cartridge.MBC, irq *interrupt.Controller, jp *joypad.Joypad) *MMU {
	return &MMU{
		mbc: mbc,
		irq: irq,
		jp:  jp,
		tmr: timer.New(),
		ser: serial.New(),
		snd: apu.NewAPU(),
		dma: dma.NewDMAController(),
	}
}

// SetPPU attaches the PPU instance that owns VRAM/OAM and the LCD register
// file. Until this is called, VRAM/OAM/LCD register accesses fall back to
// plain internal storage so the bus is still usable standalone.
func (m *MMU) SetPPU(p PPUInterface) {
	m.ppu = p
}

// GetDMAController returns the bus's OAM DMA controller.
func (m *MMU) GetDMAController() *dma.DMAController {
	return m.dma
}

// UpdateDMA advances the OAM DMA transfer by the given number of T-cycles.
// Call once per CPU step, in parallel with CPU/timer/PPU ticking.
func (m *MMU) UpdateDMA(cycles uint8) bool {
	return m.dma.Update(cycles, m)
}

// Tick advances every peripheral the bus owns (timer, serial, APU, DMA) by
// cycles T-cycles, the non-timer bucket plus the timer's own dedicated
// bucket. The timer advances in 4-cycle machine-cycle steps since its
// falling-edge detector needs that granularity; the rest take the full
// T-cycle count in one call. The caller is responsible for ticking the PPU
// separately, since the bus only holds a narrow interface to it.
func (m *MMU) Tick(cycles uint8) {
	for i := uint8(0); i < cycles; i += 4 {
		m.tmr.Tick(m.irq)
	}
	m.ser.Tick(int(cycles), m.irq)
	m.snd.Update(cycles)
	m.dma.Update(cycles, m)
}

// GetAPU returns the bus's audio processing unit, for collaborators that
// drain rendered samples.
func (m *MMU) GetAPU() *apu.APU {
	return m.snd
}

// GetSerialPort returns the bus's serial port, for collaborators that read
// the cumulative transmitted-byte log.
func (m *MMU) GetSerialPort() *serial.Port {
	return m.ser
}

// WriteByteForDMA bypasses PPU mode restrictions and CPU-access blocking,
// used only by the DMA controller itself while copying into OAM.
func (m *MMU) WriteByteForDMA(address uint16, value uint8) {
	if address >= OAMStart && address <= OAMEnd {
		if m.ppu != nil {
			m.ppu.WriteOAM(address, value)
		} else {
			m.oamFallback[address-OAMStart] = value
		}
		return
	}
	m.WriteByte(address, value)
}

// ReadByte reads one byte from the bus, honoring OAM DMA's CPU-access
// restrictions and the PPU's VRAM/OAM mode restrictions.
func (m *MMU) ReadByte(address uint16) uint8 {
	if m.dma.IsActive() && !m.dma.CanCPUAccessMemory(address) {
		return 0xFF
	}

	switch {
	case address <= ROMBank0End:
		return m.mbc.ReadByte(address)
	case address <= ROMBank1End:
		return m.mbc.ReadByte(address)
	case address <= VRAMEnd:
		return m.readVRAM(address)
	case address <= ExternalRAMEnd:
		return m.mbc.ReadByte(address)
	case address <= WRAMEnd:
		return m.wram[address-WRAMStart]
	case address <= EchoRAMEnd:
		return m.wram[address-EchoRAMStart]
	case address <= OAMEnd:
		return m.readOAM(address)
	case address <= ProhibitedEnd:
		return 0xFF
	case address <= IORegistersEnd:
		return m.readIO(address)
	case address <= HRAMEnd:
		return m.hram[address-HRAMStart]
	default: // InterruptEnableRegister
		return m.irq.ReadIE()
	}
}

// WriteByte writes one byte to the bus, honoring the same access
// restrictions as ReadByte.
func (m *MMU) WriteByte(address uint16, value uint8) {
	if m.dma.IsActive() && !m.dma.CanCPUAccessMemory(address) {
		return
	}

	switch {
	case address <= ROMBank1End:
		m.mbc.WriteByte(address, value)
	case address <= VRAMEnd:
		m.writeVRAM(address, value)
	case address <= ExternalRAMEnd:
		m.mbc.WriteByte(address, value)
	case address <= WRAMEnd:
		m.wram[address-WRAMStart] = value
	case address <= EchoRAMEnd:
		m.wram[address-EchoRAMStart] = value
	case address <= OAMEnd:
		m.writeOAM(address, value)
	case address <= ProhibitedEnd:
		// Writes to the prohibited region are discarded.
	case address <= IORegistersEnd:
		m.writeIO(address, value)
	case address <= HRAMEnd:
		m.hram[address-HRAMStart] = value
	default: // InterruptEnableRegister
		m.irq.WriteIE(value)
	}
}

// ReadWord reads a little-endian 16-bit value at address.
func (m *MMU) ReadWord(address uint16) uint16 {
	lo := m.ReadByte(address)
	hi := m.ReadByte(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// WriteWord writes a little-endian 16-bit value at address.
func (m *MMU) WriteWord(address uint16, value uint16) {
	m.WriteByte(address, uint8(value))
	m.WriteByte(address+1, uint8(value>>8))
}

// vramBlocked reports whether the CPU's view of VRAM is currently blocked:
// real hardware denies VRAM access to the CPU while the PPU is reading it
// for scanline rendering (Mode 3 / Drawing).
func (m *MMU) vramBlocked() bool {
	return m.ppu != nil && m.ppu.IsLCDEnabled() && m.ppu.GetCurrentMode() == ppu.ModeDrawing
}

// oamBlocked reports whether the CPU's view of OAM is currently blocked:
// the PPU is scanning or using OAM during both OAM Scan (Mode 2) and
// Drawing (Mode 3).
func (m *MMU) oamBlocked() bool {
	if m.ppu == nil || !m.ppu.IsLCDEnabled() {
		return false
	}
	mode := m.ppu.GetCurrentMode()
	return mode == ppu.ModeOAMScan || mode == ppu.ModeDrawing
}

func (m *MMU) readVRAM(address uint16) uint8 {
	if m.ppu == nil {
		return m.vramFallback[address-VRAMStart]
	}
	if m.vramBlocked() {
		return 0xFF
	}
	return m.ppu.ReadVRAM(address)
}

func (m *MMU) writeVRAM(address uint16, value uint8) {
	if m.ppu == nil {
		m.vramFallback[address-VRAMStart] = value
		return
	}
	if m.vramBlocked() {
		return
	}
	m.ppu.WriteVRAM(address, value)
}

func (m *MMU) readOAM(address uint16) uint8 {
	if m.ppu == nil {
		return m.oamFallback[address-OAMStart]
	}
	if m.oamBlocked() {
		return 0xFF
	}
	return m.ppu.ReadOAM(address)
}

func (m *MMU) writeOAM(address uint16, value uint8) {
	if m.ppu == nil {
		m.oamFallback[address-OAMStart] = value
		return
	}
	if m.oamBlocked() {
		return
	}
	m.ppu.WriteOAM(address, value)
}

func (m *MMU) readIO(address uint16) uint8 {
	switch {
	case address == JoypadRegister:
		return m.jp.Read()
	case address == SerialDataRegister:
		return m.ser.ReadSB()
	case address == SerialControlRegister:
		return m.ser.ReadSC()
	case address == DividerRegister:
		return m.tmr.ReadDIV()
	case address == TimerCounterRegister:
		return m.tmr.ReadTIMA()
	case address == TimerModuloRegister:
		return m.tmr.ReadTMA()
	case address == TimerControlRegister:
		return m.tmr.ReadTAC()
	case address == InterruptFlagRegister:
		return m.irq.ReadIF()
	case address >= 0xFF10 && address <= 0xFF3F:
		return m.snd.ReadByte(address)
	case address == DMARegister:
		return 0xFF // write-only
	case address >= LCDControlRegister && address <= 0xFF4B:
		if m.ppu == nil {
			return m.ioFallback[address-IORegistersStart]
		}
		return m.ppu.ReadRegister(address)
	default:
		return m.ioFallback[address-IORegistersStart]
	}
}

func (m *MMU) writeIO(address uint16, value uint8) {
	switch {
	case address == JoypadRegister:
		m.jp.Write(value)
	case address == SerialDataRegister:
		m.ser.WriteSB(value)
	case address == SerialControlRegister:
		m.ser.WriteSC(value)
	case address == DividerRegister:
		m.tmr.WriteDIV()
	case address == TimerCounterRegister:
		m.tmr.WriteTIMA(value)
	case address == TimerModuloRegister:
		m.tmr.WriteTMA(value)
	case address == TimerControlRegister:
		m.tmr.WriteTAC(value)
	case address == InterruptFlagRegister:
		m.irq.WriteIF(value)
	case address >= 0xFF10 && address <= 0xFF3F:
		m.snd.WriteByte(address, value)
	case address == DMARegister:
		m.dma.StartTransfer(value)
	case address >= LCDControlRegister && address <= 0xFF4B:
		if m.ppu == nil {
			m.ioFallback[address-IORegistersStart] = value
			return
		}
		m.ppu.WriteRegister(address, value)
	default:
		m.ioFallback[address-IORegistersStart] = value
	}
}

// isValidAddress reports whether address falls outside the prohibited
// memory region (0xFEA0-0xFEFF).
func (m *MMU) isValidAddress(address uint16) bool {
	return address < ProhibitedStart || address > ProhibitedEnd
}

// getMemoryRegion returns a human-readable label for which region address
// falls in, used for debugging/inspection tools.
func (m *MMU) getMemoryRegion(address uint16) string {
	switch {
	case address <= ROMBank0End:
		return "ROM Bank 0"
	case address <= ROMBank1End:
		return "ROM Bank 1+"
	case address <= VRAMEnd:
		return "VRAM"
	case address <= ExternalRAMEnd:
		return "External RAM"
	case address <= WRAMEnd:
		return "WRAM"
	case address <= EchoRAMEnd:
		return "Echo RAM"
	case address <= OAMEnd:
		return "OAM"
	case address <= ProhibitedEnd:
		return "Prohibited"
	case address <= IORegistersEnd:
		return "I/O Registers"
	case address <= HRAMEnd:
		return "HRAM"
	default:
		return "Interrupt Enable"
	}
}
