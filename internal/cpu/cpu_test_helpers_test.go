package cpu

import (
	"github.com/dmgcore/gbcore/internal/cartridge"
	"github.com/dmgcore/gbcore/internal/interrupt"
	"github.com/dmgcore/gbcore/internal/joypad"
	"github.com/dmgcore/gbcore/internal/memory"
)

// createTestMMU builds a bare bus backed by a blank 32KB ROM-only cartridge,
// for unit tests that only care about CPU register and flag behavior and
// need somewhere to read and write bytes.
func createTestMMU() *memory.MMU {
	mbc := cartridge.NewMBC0(make([]byte, 0x8000))
	return memory.NewMMU(mbc, interrupt.New(), joypad.New())
}
