package cartridge

import (
	"fmt"
	"time"
)

// MBC (Memory Bank Controller) interface
// This defines what every MBC type must be able to do
type MBC interface {
	// ReadByte reads a byte from the cartridge at the given address
	// Address range: 0x0000-0x7FFF (ROM) and 0xA000-0xBFFF (external RAM)
	ReadByte(address uint16) uint8
	
	// WriteByte writes a byte to the cartridge (usually for bank switching)
	// Writing to ROM addresses usually changes which bank is selected
	WriteByte(address uint16, value uint8)
	
	// GetCurrentROMBank returns which ROM bank is currently selected
	// This is useful for debugging and save states
	GetCurrentROMBank() int
	
	// GetCurrentRAMBank returns which RAM bank is currently selected
	GetCurrentRAMBank() int
	
	// HasRAM returns true if this cartridge has external RAM
	HasRAM() bool
	
	// IsRAMEnabled returns true if external RAM is currently enabled
	IsRAMEnabled() bool

	// ExportRAM returns a copy of the cartridge's battery-backed RAM, for
	// save-file persistence. Returns nil if the cartridge has no RAM.
	ExportRAM() []byte

	// ImportRAM restores previously exported RAM. A length mismatch is not
	// rejected: data longer than the cartridge RAM is truncated, and data
	// shorter than it overwrites only the leading bytes, leaving the rest
	// of the RAM unchanged.
	ImportRAM(data []byte)
}

// RTCState is the on-disk representation of an MBC3 real-time clock,
// exported/imported alongside RAM so save files survive a restart. The
// schema name is mbc3_rtc_v1.
type RTCState struct {
	Seconds, Minutes, Hours uint8
	DayLow                  uint8
	DayHigh                 uint8 // bit 0 = day counter bit 8, bit 6 = halt, bit 7 = carry
	LastUnixSeconds         int64
}

// MBC0 represents cartridges with no memory bank controller (ROM ONLY)
// These are simple cartridges that just contain ROM data with no banking
type MBC0 struct {
	romData []byte // The ROM data (exactly 32KB for MBC0)
}

// NewMBC0 creates a new MBC0 controller for ROM-only cartridges
func NewMBC0(romData []byte) *MBC0 {
	return &MBC0{
		romData: romData,
	}
}

// ReadByte reads from ROM (no banking, just direct access)
func (mbc *MBC0) ReadByte(address uint16) uint8 {
	// ROM area: 0x0000-0x7FFF (0-32767)
	if address <= 0x7FFF {
		// Make sure we don't read past the end of ROM
		if int(address) < len(mbc.romData) {
			return mbc.romData[address]
		}
		return 0xFF // Return 0xFF for out-of-bounds reads
	}
	
	// External RAM area: 0xA000-0xBFFF
	// MBC0 cartridges don't have external RAM, so return 0xFF
	if address >= 0xA000 && address <= 0xBFFF {
		return 0xFF
	}
	
	// Invalid address
	return 0xFF
}

// WriteByte handles writes (MBC0 doesn't support any writes)
func (mbc *MBC0) WriteByte(address uint16, value uint8) {
	// MBC0 doesn't support any writes - ROM is read-only
	// Just ignore the write (this is what real hardware does)
}

// GetCurrentROMBank always returns 0 for MBC0 (no banking)
func (mbc *MBC0) GetCurrentROMBank() int {
	return 0
}

// GetCurrentRAMBank always returns 0 for MBC0 (no RAM banking)
func (mbc *MBC0) GetCurrentRAMBank() int {
	return 0
}

// HasRAM returns false for MBC0 (no external RAM)
func (mbc *MBC0) HasRAM() bool {
	return false
}

// IsRAMEnabled returns false for MBC0 (no RAM to enable)
func (mbc *MBC0) IsRAMEnabled() bool {
	return false
}

// ExportRAM always returns nil for MBC0 (no external RAM).
func (mbc *MBC0) ExportRAM() []byte { return nil }

// ImportRAM is a no-op for MBC0 (no external RAM).
func (mbc *MBC0) ImportRAM(data []byte) {}

// MBC1Controller represents cartridges with MBC1 memory bank controller
// This is the most common type, supporting up to 2MB ROM and 32KB RAM
type MBC1Controller struct {
	romData      []byte // The complete ROM data
	ramData      []byte // External RAM data (if any)
	
	// Banking state
	romBank      int    // Currently selected ROM bank (1-127)
	ramBank      int    // Currently selected RAM bank (0-3)
	ramEnabled   bool   // Whether external RAM is enabled
	bankingMode  int    // Banking mode (0 = ROM banking, 1 = RAM banking)
	
	// Configuration
	romBankCount int    // Total number of ROM banks
	ramBankCount int    // Total number of RAM banks
}

// NewMBC1 creates a new MBC1 controller
func NewMBC1(romData []byte, ramSize int) *MBC1Controller {
	// Calculate number of banks
	romBankCount := len(romData) / (16 * 1024) // 16KB per ROM bank
	ramBankCount := ramSize / (8 * 1024)       // 8KB per RAM bank
	
	// Create RAM data if needed
	var ramData []byte
	if ramSize > 0 {
		ramData = make([]byte, ramSize)
	}
	
	return &MBC1Controller{
		romData:      romData,
		ramData:      ramData,
		romBank:      1,           // Start with bank 1 (bank 0 is always visible at 0x0000-0x3FFF)
		ramBank:      0,
		ramEnabled:   false,
		bankingMode:  0,
		romBankCount: romBankCount,
		ramBankCount: ramBankCount,
	}
}

// ReadByte reads from ROM or RAM with banking
func (mbc *MBC1Controller) ReadByte(address uint16) uint8 {
	// Bank 0 area: 0x0000-0x3FFF (always bank 0)
	if address <= 0x3FFF {
		if int(address) < len(mbc.romData) {
			return mbc.romData[address]
		}
		return 0xFF
	}
	
	// Switchable ROM bank area: 0x4000-0x7FFF
	if address >= 0x4000 && address <= 0x7FFF {
		// Calculate the actual ROM address
		bankOffset := mbc.romBank * 16 * 1024  // Each bank is 16KB
		localAddress := int(address - 0x4000)  // Address within the bank
		romAddress := bankOffset + localAddress
		
		// Check bounds
		if romAddress < len(mbc.romData) {
			return mbc.romData[romAddress]
		}
		return 0xFF
	}
	
	// External RAM area: 0xA000-0xBFFF
	if address >= 0xA000 && address <= 0xBFFF {
		// Check if RAM is enabled and available
		if !mbc.ramEnabled || len(mbc.ramData) == 0 {
			return 0xFF
		}
		
		// Calculate RAM address with banking
		bankOffset := mbc.ramBank * 8 * 1024   // Each RAM bank is 8KB
		localAddress := int(address - 0xA000)  // Address within the bank
		ramAddress := bankOffset + localAddress
		
		// Check bounds
		if ramAddress < len(mbc.ramData) {
			return mbc.ramData[ramAddress]
		}
		return 0xFF
	}
	
	return 0xFF
}

// WriteByte handles banking and RAM writes
func (mbc *MBC1Controller) WriteByte(address uint16, value uint8) {
	// RAM Enable: 0x0000-0x1FFF
	if address <= 0x1FFF {
		// Enable RAM if lower 4 bits are 0x0A, disable otherwise
		mbc.ramEnabled = (value & 0x0F) == 0x0A
		return
	}
	
	// ROM Bank Select: 0x2000-0x3FFF
	if address >= 0x2000 && address <= 0x3FFF {
		// Select ROM bank (lower 5 bits)
		bank := int(value & 0x1F)
		
		// Keep upper bits, replace lower 5 bits
		mbc.romBank = (mbc.romBank & 0x60) | bank  // 0x60 = upper 2 bits mask
		
		// Ensure we don't exceed available banks
		if mbc.romBank >= mbc.romBankCount {
			mbc.romBank = mbc.romBank % mbc.romBankCount
		}
		
		// Bank 0 is not allowed, use bank 1 instead (after wrapping)
		if mbc.romBank == 0 {
			mbc.romBank = 1
		}
		return
	}
	
	// RAM Bank Select / Upper ROM Bank: 0x4000-0x5FFF
	if address >= 0x4000 && address <= 0x5FFF {
		upperBits := int(value & 0x03) // Only 2 bits
		
		if mbc.bankingMode == 0 {
			// ROM banking mode: these bits become upper ROM bank bits
			mbc.romBank = (mbc.romBank & 0x1F) | (upperBits << 5)
			
			// Ensure we don't exceed available banks
			if mbc.romBank >= mbc.romBankCount {
				mbc.romBank = mbc.romBank % mbc.romBankCount
			}
			
			// Bank 0 is not allowed, use bank 1 instead (after wrapping)
			if mbc.romBank == 0 {
				mbc.romBank = 1
			}
		} else {
			// RAM banking mode: these bits select RAM bank
			mbc.ramBank = upperBits
			
			// Ensure we don't exceed available RAM banks
			if mbc.ramBankCount > 0 && mbc.ramBank >= mbc.ramBankCount {
				mbc.ramBank = mbc.ramBank % mbc.ramBankCount
			}
		}
		return
	}
	
	// Banking Mode Select: 0x6000-0x7FFF
	if address >= 0x6000 && address <= 0x7FFF {
		mbc.bankingMode = int(value & 0x01)
		
		// When switching to mode 0, reset RAM bank to 0
		if mbc.bankingMode == 0 {
			mbc.ramBank = 0
		}
		return
	}
	
	// External RAM Write: 0xA000-0xBFFF
	if address >= 0xA000 && address <= 0xBFFF {
		// Check if RAM is enabled and available
		if !mbc.ramEnabled || len(mbc.ramData) == 0 {
			return // Ignore writes to disabled RAM
		}
		
		// Calculate RAM address with banking
		bankOffset := mbc.ramBank * 8 * 1024   // Each RAM bank is 8KB
		localAddress := int(address - 0xA000)  // Address within the bank
		ramAddress := bankOffset + localAddress
		
		// Check bounds and write
		if ramAddress < len(mbc.ramData) {
			mbc.ramData[ramAddress] = value
		}
		return
	}
}

// GetCurrentROMBank returns the currently selected ROM bank
func (mbc *MBC1Controller) GetCurrentROMBank() int {
	return mbc.romBank
}

// GetCurrentRAMBank returns the currently selected RAM bank
func (mbc *MBC1Controller) GetCurrentRAMBank() int {
	return mbc.ramBank
}

// HasRAM returns true if this cartridge has external RAM
func (mbc *MBC1Controller) HasRAM() bool {
	return len(mbc.ramData) > 0
}

// IsRAMEnabled returns true if external RAM is currently enabled
func (mbc *MBC1Controller) IsRAMEnabled() bool {
	return mbc.ramEnabled
}

// ExportRAM returns a copy of the battery-backed RAM for save persistence.
func (mbc *MBC1Controller) ExportRAM() []byte {
	if len(mbc.ramData) == 0 {
		return nil
	}
	out := make([]byte, len(mbc.ramData))
	copy(out, mbc.ramData)
	return out
}

// ImportRAM restores previously exported RAM.
func (mbc *MBC1Controller) ImportRAM(data []byte) {
	copy(mbc.ramData, data)
}

// CreateMBC creates the appropriate MBC for a cartridge
// This is a factory function that returns the right MBC type based on the cartridge
func CreateMBC(cartridge *Cartridge) (MBC, error) {
	switch cartridge.CartridgeType {
	case ROM_ONLY:
		return NewMBC0(cartridge.ROMData), nil

	case MBC1, MBC1_RAM, MBC1_RAM_BATTERY:
		return NewMBC1(cartridge.ROMData, cartridge.RAMSize), nil

	case MBC3, MBC3_RAM, MBC3_RAM_BATTERY, MBC3_TIMER_BATTERY, MBC3_TIMER_RAM_BATTERY:
		hasRTC := cartridge.CartridgeType == MBC3_TIMER_BATTERY || cartridge.CartridgeType == MBC3_TIMER_RAM_BATTERY
		return NewMBC3(cartridge.ROMData, cartridge.RAMSize, hasRTC), nil

	case MBC5, MBC5_RAM, MBC5_RAM_BATTERY, MBC5_RUMBLE, MBC5_RUMBLE_RAM, MBC5_RUMBLE_RAM_BATTERY:
		return NewMBC5(cartridge.ROMData, cartridge.RAMSize), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCartridge, cartridge.GetCartridgeTypeName())
	}
}

// MBC3Controller adds real-time-clock registers to the MBC1 banking scheme:
// a full 7-bit ROM bank (no dual-mode split) and RAM-bank-select values
// 0x08-0x0C mapping to RTC register select instead of a RAM bank.
type MBC3Controller struct {
	romData []byte
	ramData []byte

	romBank    int
	ramBank    int // 0-3 = RAM bank, 0x08-0x0C = RTC register select
	ramEnabled bool

	romBankCount int
	ramBankCount int

	hasRTC      bool
	rtc         RTCState
	latched     RTCState
	latchStage  uint8 // tracks the 0x00 then 0x01 write sequence
}

// NewMBC3 creates a new MBC3 controller, optionally with RTC registers.
func NewMBC3(romData []byte, ramSize int, hasRTC bool) *MBC3Controller {
	romBankCount := len(romData) / (16 * 1024)
	ramBankCount := ramSize / (8 * 1024)

	var ramData []byte
	if ramSize > 0 {
		ramData = make([]byte, ramSize)
	}

	return &MBC3Controller{
		romData:      romData,
		ramData:      ramData,
		romBank:      1,
		romBankCount: romBankCount,
		ramBankCount: ramBankCount,
		hasRTC:       hasRTC,
		rtc:          RTCState{LastUnixSeconds: time.Now().Unix()},
	}
}

func (mbc *MBC3Controller) ReadByte(address uint16) uint8 {
	if address <= 0x3FFF {
		if int(address) < len(mbc.romData) {
			return mbc.romData[address]
		}
		return 0xFF
	}
	if address >= 0x4000 && address <= 0x7FFF {
		bankOffset := mbc.romBank * 16 * 1024
		romAddress := bankOffset + int(address-0x4000)
		if romAddress < len(mbc.romData) {
			return mbc.romData[romAddress]
		}
		return 0xFF
	}
	if address >= 0xA000 && address <= 0xBFFF {
		if !mbc.ramEnabled {
			return 0xFF
		}
		if mbc.ramBank >= 0x08 && mbc.ramBank <= 0x0C {
			return mbc.readRTCRegister(mbc.ramBank)
		}
		if len(mbc.ramData) == 0 {
			return 0xFF
		}
		ramAddress := mbc.ramBank*8*1024 + int(address-0xA000)
		if ramAddress < len(mbc.ramData) {
			return mbc.ramData[ramAddress]
		}
		return 0xFF
	}
	return 0xFF
}

func (mbc *MBC3Controller) readRTCRegister(reg int) uint8 {
	mbc.advanceClock()
	switch reg {
	case 0x08:
		return mbc.latched.Seconds
	case 0x09:
		return mbc.latched.Minutes
	case 0x0A:
		return mbc.latched.Hours
	case 0x0B:
		return mbc.latched.DayLow
	case 0x0C:
		return mbc.latched.DayHigh
	}
	return 0xFF
}

// advanceClock folds elapsed wall-clock seconds into the RTC's day/hour/
// minute/second counters, unless the clock is halted (DayHigh bit 6).
func (mbc *MBC3Controller) advanceClock() {
	if mbc.rtc.DayHigh&0x40 != 0 {
		return
	}
	now := time.Now().Unix()
	elapsed := now - mbc.rtc.LastUnixSeconds
	if elapsed <= 0 {
		return
	}
	mbc.rtc.LastUnixSeconds = now

	total := int64(mbc.rtc.Seconds) + int64(mbc.rtc.Minutes)*60 + int64(mbc.rtc.Hours)*3600
	day := int64(mbc.rtc.DayLow) | int64(mbc.rtc.DayHigh&0x01)<<8
	total += day*86400 + elapsed

	mbc.rtc.Seconds = uint8(total % 60)
	total /= 60
	mbc.rtc.Minutes = uint8(total % 60)
	total /= 60
	mbc.rtc.Hours = uint8(total % 24)
	total /= 24

	if total > 0x1FF {
		mbc.rtc.DayHigh |= 0x80 // carry: day counter overflowed
		total &= 0x1FF
	}
	mbc.rtc.DayLow = uint8(total & 0xFF)
	mbc.rtc.DayHigh = mbc.rtc.DayHigh&0xFE | uint8((total>>8)&0x01)
}

func (mbc *MBC3Controller) WriteByte(address uint16, value uint8) {
	switch {
	case address <= 0x1FFF:
		mbc.ramEnabled = value&0x0F == 0x0A
	case address >= 0x2000 && address <= 0x3FFF:
		bank := int(value & 0x7F)
		if bank == 0 {
			bank = 1
		}
		mbc.romBank = bank
		if mbc.romBankCount > 0 {
			mbc.romBank %= mbc.romBankCount
			if mbc.romBank == 0 {
				mbc.romBank = 1
			}
		}
	case address >= 0x4000 && address <= 0x5FFF:
		mbc.ramBank = int(value)
	case address >= 0x6000 && address <= 0x7FFF:
		if value == 0x00 {
			mbc.latchStage = 1
		} else if value == 0x01 && mbc.latchStage == 1 {
			mbc.advanceClock()
			mbc.latched = mbc.rtc
			mbc.latchStage = 0
		} else {
			mbc.latchStage = 0
		}
	case address >= 0xA000 && address <= 0xBFFF:
		if !mbc.ramEnabled {
			return
		}
		if mbc.ramBank >= 0x08 && mbc.ramBank <= 0x0C {
			mbc.writeRTCRegister(mbc.ramBank, value)
			return
		}
		if len(mbc.ramData) == 0 {
			return
		}
		ramAddress := mbc.ramBank*8*1024 + int(address-0xA000)
		if ramAddress < len(mbc.ramData) {
			mbc.ramData[ramAddress] = value
		}
	}
}

func (mbc *MBC3Controller) writeRTCRegister(reg int, v uint8) {
	mbc.advanceClock()
	switch reg {
	case 0x08:
		mbc.rtc.Seconds = v % 60
	case 0x09:
		mbc.rtc.Minutes = v % 60
	case 0x0A:
		mbc.rtc.Hours = v % 24
	case 0x0B:
		mbc.rtc.DayLow = v
	case 0x0C:
		mbc.rtc.DayHigh = v & 0xC1
	}
}

func (mbc *MBC3Controller) GetCurrentROMBank() int { return mbc.romBank }
func (mbc *MBC3Controller) GetCurrentRAMBank() int { return mbc.ramBank }
func (mbc *MBC3Controller) HasRAM() bool           { return len(mbc.ramData) > 0 }
func (mbc *MBC3Controller) IsRAMEnabled() bool     { return mbc.ramEnabled }

func (mbc *MBC3Controller) ExportRAM() []byte {
	if len(mbc.ramData) == 0 {
		return nil
	}
	out := make([]byte, len(mbc.ramData))
	copy(out, mbc.ramData)
	return out
}

func (mbc *MBC3Controller) ImportRAM(data []byte) { copy(mbc.ramData, data) }

// RTC exposes the clock state for metadata export (save files pair this
// with ExportRAM to round-trip both persistent-RAM and wall-clock state).
func (mbc *MBC3Controller) RTC() RTCState { return mbc.rtc }

// SetRTC restores a previously exported clock state, e.g. from a save file.
func (mbc *MBC3Controller) SetRTC(s RTCState) { mbc.rtc = s }

// MBC5Controller extends banking to a full 9-bit ROM bank number (two
// registers) and a 4-bit RAM bank, dropping MBC3's RTC and bank-0 mapping
// quirk: bank 0 is selectable and simply repeats bank 0's data at 0x4000.
type MBC5Controller struct {
	romData []byte
	ramData []byte

	romBank    int
	ramBank    int
	ramEnabled bool

	romBankCount int
	ramBankCount int
}

// NewMBC5 creates a new MBC5 controller.
func NewMBC5(romData []byte, ramSize int) *MBC5Controller {
	romBankCount := len(romData) / (16 * 1024)
	ramBankCount := ramSize / (8 * 1024)

	var ramData []byte
	if ramSize > 0 {
		ramData = make([]byte, ramSize)
	}

	return &MBC5Controller{
		romData:      romData,
		ramData:      ramData,
		romBank:      1,
		romBankCount: romBankCount,
		ramBankCount: ramBankCount,
	}
}

func (mbc *MBC5Controller) ReadByte(address uint16) uint8 {
	if address <= 0x3FFF {
		if int(address) < len(mbc.romData) {
			return mbc.romData[address]
		}
		return 0xFF
	}
	if address >= 0x4000 && address <= 0x7FFF {
		bankOffset := mbc.romBank * 16 * 1024
		romAddress := bankOffset + int(address-0x4000)
		if romAddress < len(mbc.romData) {
			return mbc.romData[romAddress]
		}
		return 0xFF
	}
	if address >= 0xA000 && address <= 0xBFFF {
		if !mbc.ramEnabled || len(mbc.ramData) == 0 {
			return 0xFF
		}
		ramAddress := mbc.ramBank*8*1024 + int(address-0xA000)
		if ramAddress < len(mbc.ramData) {
			return mbc.ramData[ramAddress]
		}
		return 0xFF
	}
	return 0xFF
}

func (mbc *MBC5Controller) WriteByte(address uint16, value uint8) {
	switch {
	case address <= 0x1FFF:
		mbc.ramEnabled = value&0x0F == 0x0A
	case address >= 0x2000 && address <= 0x2FFF:
		mbc.romBank = mbc.romBank&0x100 | int(value)
		mbc.clampROMBank()
	case address >= 0x3000 && address <= 0x3FFF:
		mbc.romBank = mbc.romBank&0xFF | int(value&0x01)<<8
		mbc.clampROMBank()
	case address >= 0x4000 && address <= 0x5FFF:
		mbc.ramBank = int(value & 0x0F)
		if mbc.ramBankCount > 0 {
			mbc.ramBank %= mbc.ramBankCount
		}
	case address >= 0xA000 && address <= 0xBFFF:
		if !mbc.ramEnabled || len(mbc.ramData) == 0 {
			return
		}
		ramAddress := mbc.ramBank*8*1024 + int(address-0xA000)
		if ramAddress < len(mbc.ramData) {
			mbc.ramData[ramAddress] = value
		}
	}
}

func (mbc *MBC5Controller) clampROMBank() {
	if mbc.romBankCount > 0 {
		mbc.romBank %= mbc.romBankCount
	}
}

func (mbc *MBC5Controller) GetCurrentROMBank() int { return mbc.romBank }
func (mbc *MBC5Controller) GetCurrentRAMBank() int { return mbc.ramBank }
func (mbc *MBC5Controller) HasRAM() bool           { return len(mbc.ramData) > 0 }
func (mbc *MBC5Controller) IsRAMEnabled() bool     { return mbc.ramEnabled }

func (mbc *MBC5Controller) ExportRAM() []byte {
	if len(mbc.ramData) == 0 {
		return nil
	}
	out := make([]byte, len(mbc.ramData))
	copy(out, mbc.ramData)
	return out
}

func (mbc *MBC5Controller) ImportRAM(data []byte) { copy(mbc.ramData, data) }