// Package ppu implements the Game Boy Picture Processing Unit (PPU)
// for graphics rendering, including background, window, and sprite systems.
//
// The Game Boy PPU renders a 160x144 pixel display with 4-color grayscale
// graphics using a tile-based system with sprites and scrolling backgrounds.
package ppu

import "github.com/dmgcore/gbcore/internal/interrupt"

// Game Boy display constants
const (
	// Display dimensions
	ScreenWidth  = 160 // Visible pixels per scanline
	ScreenHeight = 144 // Visible scanlines per frame
	
	// Timing constants (cycles per operation)
	TotalScanlines    = 154 // Total scanlines including V-Blank (144 visible + 10 V-Blank)
	CyclesPerScanline = 456 // CPU cycles per scanline (456 T-cycles)
	CyclesPerFrame    = TotalScanlines * CyclesPerScanline // 70224 cycles per frame
	
	// PPU mode durations (in T-cycles)
	OAMScanCycles  = 80  // Mode 2: OAM scan duration (20 M-cycles × 4)
	DrawingCycles  = 172 // Mode 3: Drawing duration (43 M-cycles × 4, minimum)
	HBlankCycles   = 204 // Mode 0: H-Blank duration (51 M-cycles × 4, minimum)
	VBlankDuration = 4560 // Mode 1: V-Blank duration (10 scanlines × 456 T-cycles)
	
	// Color values (4-shade grayscale)
	ColorWhite     = 0 // Lightest shade
	ColorLightGray = 1 // Light gray
	ColorDarkGray  = 2 // Dark gray  
	ColorBlack     = 3 // Darkest shade
)

// PPUMode represents the current state of the PPU rendering pipeline
type PPUMode uint8

const (
	ModeHBlank  PPUMode = 0 // H-Blank: CPU can access VRAM/OAM
	ModeVBlank  PPUMode = 1 // V-Blank: Frame complete, CPU can access all video memory
	ModeOAMScan PPUMode = 2 // OAM Scan: PPU reading sprite data, CPU cannot access OAM
	ModeDrawing PPUMode = 3 // Drawing: PPU rendering pixels, CPU cannot access VRAM/OAM
)

// String returns human-readable PPU mode name
func (mode PPUMode) String() string {
	switch mode {
	case ModeHBlank:
		return "H-Blank"
	case ModeVBlank:
		return "V-Blank"  
	case ModeOAMScan:
		return "OAM Scan"
	case ModeDrawing:
		return "Drawing"
	default:
		return "Unknown"
	}
}

// PPU represents the Game Boy Picture Processing Unit
// Handles all graphics rendering including background, window, and sprites
type PPU struct {
	// Display framebuffer - stores final pixel colors for each screen position
	// [row][column] format, values 0-3 representing 4-color grayscale
	Framebuffer [ScreenHeight][ScreenWidth]uint8

	// bgRawColor mirrors Framebuffer but holds the raw 0-3 tile color index
	// written by the background/window renderers before BGP is applied.
	// Sprite-to-background priority (LCDC attribute bit 7) is defined over
	// this raw index, not the post-palette shade, so it is tracked
	// separately rather than reconstructed from Framebuffer.
	bgRawColor [ScreenHeight][ScreenWidth]uint8

	// LCD Control Registers (memory-mapped I/O at 0xFF40-0xFF4B)
	LCDC uint8 // 0xFF40 - LCD Control register
	STAT uint8 // 0xFF41 - LCD Status register
	SCY  uint8 // 0xFF42 - Background scroll Y
	SCX  uint8 // 0xFF43 - Background scroll X
	LY   uint8 // 0xFF44 - Current scanline (0-153)
	LYC  uint8 // 0xFF45 - LY Compare register
	WY   uint8 // 0xFF4A - Window Y position
	WX   uint8 // 0xFF4B - Window X position
	
	// Palette Registers (color mapping)
	BGP  uint8 // 0xFF47 - Background palette data
	OBP0 uint8 // 0xFF48 - Object palette 0 data
	OBP1 uint8 // 0xFF49 - Object palette 1 data
	
	// Internal PPU state
	Mode         PPUMode // Current PPU mode (0-3)
	Cycles       uint16  // Cycle counter for current scanline
	FrameReady   bool    // True when a complete frame has been rendered
	LCDEnabled   bool    // LCD on/off state from LCDC bit 7
	
	// VRAM/OAM storage, owned directly so the bus can route 0x8000-0x9FFF
	// and 0xFE00-0xFE9F to it without a separate memory-package allocation.
	vram          *VRAM
	vramInterface VRAMInterface

	bgRenderer     *BackgroundRenderer
	windowRenderer *WindowRenderer
	spriteRenderer *SpriteRenderer

	statLine bool // previous sampled state of the STAT interrupt OR-line
}

// VRAMInterface defines the interface for accessing video memory
// This allows the PPU to read tile data and tile maps from VRAM
type VRAMInterface interface {
	ReadVRAM(address uint16) uint8   // Read byte from VRAM (0x8000-0x9FFF)
	WriteVRAM(address uint16, value uint8) // Write byte to VRAM
	ReadOAM(address uint16) uint8    // Read byte from OAM (0xFE00-0xFE9F)
	WriteOAM(address uint16, value uint8)  // Write byte to OAM
}

// NewPPU creates a new PPU instance with default Game Boy state
func NewPPU() *PPU {
	ppu := &PPU{
		// Initialize display to white (color 0)
		Framebuffer: [ScreenHeight][ScreenWidth]uint8{},
		
		// Initialize LCD registers to Game Boy power-on state
		LCDC: 0x91, // LCD enabled, background enabled, default tile maps
		STAT: 0x00, // Mode 0 (H-Blank), no interrupts enabled
		SCY:  0x00, // No initial scroll
		SCX:  0x00,
		LY:   0x00, // Start at scanline 0
		LYC:  0x00,
		WY:   0x00, // Window at top-left
		WX:   0x00,
		
		// Initialize palettes to identity mapping (0→0, 1→1, 2→2, 3→3)
		BGP:  0xE4, // 11100100 - standard Game Boy palette
		OBP0: 0xE4,
		OBP1: 0xE4,
		
		// Initialize PPU state
		Mode:       ModeOAMScan, // Start in OAM scan mode
		Cycles:     0,
		FrameReady: false,
		LCDEnabled: true, // LCD starts enabled (LCDC bit 7)
	}
	
	// Set STAT register mode bits to match initial mode
	ppu.updateSTATMode()

	ppu.vram = NewVRAM()
	ppu.vramInterface = ppu.vram
	ppu.bgRenderer = NewBackgroundRenderer(ppu, ppu.vram)
	ppu.windowRenderer = NewWindowRenderer(ppu, ppu.vram)
	ppu.spriteRenderer = NewSpriteRenderer(ppu, ppu.vram)

	return ppu
}

// SetVRAMInterface overrides the PPU's VRAM/OAM backing store. Exists for
// tests that substitute a mock; production code uses the PPU's own VRAM.
func (ppu *PPU) SetVRAMInterface(vramInterface VRAMInterface) {
	ppu.vramInterface = vramInterface
	ppu.bgRenderer.vramInterface = vramInterface
	ppu.windowRenderer.vramInterface = vramInterface
	ppu.spriteRenderer.vramInterface = vramInterface
}

// ReadVRAM reads a byte at a VRAM bus address (0x8000-0x9FFF).
func (ppu *PPU) ReadVRAM(address uint16) uint8 { return ppu.vramInterface.ReadVRAM(address) }

// WriteVRAM writes a byte at a VRAM-relative address.
func (ppu *PPU) WriteVRAM(address uint16, value uint8) { ppu.vramInterface.WriteVRAM(address, value) }

// ReadOAM reads a byte at an OAM bus address (0xFE00-0xFE9F).
func (ppu *PPU) ReadOAM(address uint16) uint8 { return ppu.vramInterface.ReadOAM(address) }

// WriteOAM writes a byte at an OAM-relative address.
func (ppu *PPU) WriteOAM(address uint16, value uint8) { ppu.vramInterface.WriteOAM(address, value) }

// Reset resets the PPU to initial Game Boy state
func (ppu *PPU) Reset() {
	// Clear framebuffer to white
	for y := 0; y < ScreenHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			ppu.Framebuffer[y][x] = ColorWhite
			ppu.bgRawColor[y][x] = ColorWhite
		}
	}
	
	// Reset registers to power-on state
	ppu.LCDC = 0x91
	ppu.STAT = 0x00
	ppu.SCY = 0x00
	ppu.SCX = 0x00
	ppu.LY = 0x00
	ppu.LYC = 0x00
	ppu.WY = 0x00
	ppu.WX = 0x00
	ppu.BGP = 0xE4
	ppu.OBP0 = 0xE4
	ppu.OBP1 = 0xE4
	
	// Reset internal state
	ppu.Mode = ModeOAMScan
	ppu.Cycles = 0
	ppu.FrameReady = false
	ppu.LCDEnabled = true
	if ppu.windowRenderer != nil {
		ppu.windowRenderer.ResetWindowState()
	}
}

// IsFrameReady returns true if a complete frame has been rendered
// The caller should reset this flag after processing the frame
func (ppu *PPU) IsFrameReady() bool {
	return ppu.FrameReady
}

// ClearFrameReady resets the frame ready flag after the frame has been processed
func (ppu *PPU) ClearFrameReady() {
	ppu.FrameReady = false
}

// GetCurrentMode returns the current PPU mode for STAT register access
func (ppu *PPU) GetCurrentMode() PPUMode {
	return ppu.Mode
}

// GetCurrentScanline returns the current scanline (LY register value)
func (ppu *PPU) GetCurrentScanline() uint8 {
	return ppu.LY
}

// IsLCDEnabled returns true if the LCD is currently enabled (LCDC bit 7)
func (ppu *PPU) IsLCDEnabled() bool {
	return ppu.LCDEnabled
}

// Update advances the PPU state by the specified number of CPU cycles.
// This should be called once per CPU instruction execution. Interrupts are
// requested directly on irq rather than returned, mirroring how the timer
// and serial packages take the interrupt controller as a Tick parameter.
func (ppu *PPU) Update(cycles uint8, irq *interrupt.Controller) {
	if !ppu.LCDEnabled {
		return
	}

	ppu.Cycles += uint16(cycles)

	if ppu.LY < ScreenHeight {
		switch ppu.Mode {
		case ModeOAMScan:
			if ppu.Cycles >= OAMScanCycles {
				ppu.spriteRenderer.ScanOAM()
				ppu.setMode(ModeDrawing)
			}

		case ModeDrawing:
			if ppu.Cycles >= OAMScanCycles+DrawingCycles {
				ppu.setMode(ModeHBlank)
				ppu.renderScanline(ppu.LY)
			}

		case ModeHBlank:
			if ppu.Cycles >= CyclesPerScanline {
				ppu.nextScanline()
				if ppu.LY == ScreenHeight {
					ppu.setMode(ModeVBlank)
					ppu.FrameReady = true
					irq.Request(interrupt.VBlank)
				} else {
					ppu.setMode(ModeOAMScan)
				}
			}
		}
	} else {
		if ppu.Cycles >= CyclesPerScanline {
			ppu.nextScanline()
			if ppu.LY == TotalScanlines {
				ppu.LY = 0
				ppu.setMode(ModeOAMScan)
			}
		}
	}

	ppu.checkSTATLine(irq)
}

// renderScanline draws the background, window, and sprite layers for one
// visible scanline into the framebuffer.
func (ppu *PPU) renderScanline(scanline uint8) {
	if ppu.IsBackgroundEnabled() {
		ppu.bgRenderer.RenderBackgroundScanline(scanline)
	}
	if ppu.IsWindowEnabled() {
		ppu.windowRenderer.RenderWindowScanline(scanline)
	}
	if ppu.IsSpriteEnabled() {
		ppu.spriteRenderer.RenderSpriteScanline(scanline)
	}
}

// checkSTATLine re-samples the STAT interrupt OR-line (LYC=LY and the
// enabled mode-interrupt sources) and requests LCDStat on a 0->1 edge,
// matching real hardware's edge-triggered STAT interrupt behavior.
func (ppu *PPU) checkSTATLine(irq *interrupt.Controller) {
	line := ppu.ShouldTriggerSTATInterrupt()
	if line && !ppu.statLine {
		irq.Request(interrupt.LCDStat)
	}
	ppu.statLine = line
}

// setMode changes the current PPU mode and updates STAT register
func (ppu *PPU) setMode(newMode PPUMode) {
	ppu.Mode = newMode
	ppu.updateSTATMode()
}

// nextScanline advances to the next scanline and resets cycle counter
func (ppu *PPU) nextScanline() {
	ppu.Cycles = 0
	ppu.LY++
	
	// Check LYC=LY interrupt condition
	ppu.updateLYCFlag()
}

// GetPixel returns the color value (0-3) at the specified screen coordinates
// Returns ColorWhite if coordinates are out of bounds
func (ppu *PPU) GetPixel(x, y int) uint8 {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return ColorWhite
	}
	return ppu.Framebuffer[y][x]
}

// SetPixel sets the color value (0-3) at the specified screen coordinates
// Does nothing if coordinates are out of bounds
func (ppu *PPU) SetPixel(x, y int, color uint8) {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return
	}
	if color > ColorBlack {
		color = ColorBlack // Clamp to valid color range
	}
	ppu.Framebuffer[y][x] = color
}

// SetBGRawColor records the pre-palette tile color index (0-3) the
// background or window renderer just drew at a screen position, for the
// sprite renderer's OBJ-to-BG priority check.
func (ppu *PPU) SetBGRawColor(x, y int, rawColor uint8) {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return
	}
	if rawColor > ColorBlack {
		rawColor = ColorBlack
	}
	ppu.bgRawColor[y][x] = rawColor
}

// GetBGRawColor returns the pre-palette tile color index (0-3) last drawn
// at a screen position by the background or window renderer. Used by
// sprite priority (sprites behind BG are hidden only where this is
// nonzero) rather than the post-palette Framebuffer shade, since BGP can
// remap raw color 0 to a non-white final shade.
func (ppu *PPU) GetBGRawColor(x, y int) uint8 {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return ColorWhite
	}
	return ppu.bgRawColor[y][x]
}