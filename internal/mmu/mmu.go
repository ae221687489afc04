package mmu

import (
	"github.com/emberhex/dmgcore/internal/cartridge"
	"github.com/emberhex/dmgcore/internal/interrupts"
	"github.com/emberhex/dmgcore/internal/joypad"
	"github.com/emberhex/dmgcore/internal/ram"
	"github.com/emberhex/dmgcore/internal/serial"
	"github.com/emberhex/dmgcore/internal/timer"
	"github.com/emberhex/dmgcore/internal/types"
	"github.com/emberhex/dmgcore/pkg/log"
)

// MMU routes the flat 16-bit address space to the cartridge, the RAM banks
// and the IO registers of the components that own them.
type MMU struct {
	cart cartridge.Cartridge

	vram ram.RAM // 0x8000-0x9FFF
	wram ram.RAM // 0xC000-0xDFFF, mirrored at 0xE000-0xFDFF
	oam  ram.RAM // 0xFE00-0xFE9F
	hram ram.RAM // 0xFF80-0xFFFE

	// io backs the registers no attached component claims
	io [0x80]uint8

	timer  *timer.Controller
	serial *serial.Controller
	joypad *joypad.State
	irq    *interrupts.Service

	log log.Logger
}

// NewMMU builds the bus over the given cartridge and components. Any
// component may be nil, in which case its registers fall back to the plain
// IO backing array.
func NewMMU(cart cartridge.Cartridge, irq *interrupts.Service, t *timer.Controller, s *serial.Controller, j *joypad.State, logger log.Logger) *MMU {
	return &MMU{
		cart:   cart,
		vram:   ram.NewRAM(0x2000),
		wram:   ram.NewRAM(0x2000),
		oam:    ram.NewRAM(0xA0),
		hram:   ram.NewRAM(0x7F),
		timer:  t,
		serial: s,
		joypad: j,
		irq:    irq,
		log:    logger,
	}
}

// Read returns the byte at the given address.
func (m *MMU) Read(address uint16) uint8 {
	switch {
	case address < 0x8000:
		return m.cart.Read(address)
	case address < 0xA000:
		return m.vram.Read(address - 0x8000)
	case address < 0xC000:
		return m.cart.Read(address)
	case address < 0xE000:
		return m.wram.Read(address - 0xC000)
	case address < 0xFE00:
		// echo RAM mirrors WRAM
		return m.wram.Read(address - 0xE000)
	case address < 0xFEA0:
		return m.oam.Read(address - 0xFE00)
	case address < 0xFF00:
		// unusable region
		return 0xFF
	case address < 0xFF80:
		return m.readIO(address)
	case address < 0xFFFF:
		return m.hram.Read(address - 0xFF80)
	default:
		return m.readIO(address)
	}
}

// Write stores the byte at the given address.
func (m *MMU) Write(address uint16, value uint8) {
	switch {
	case address < 0x8000:
		m.cart.Write(address, value)
	case address < 0xA000:
		m.vram.Write(address-0x8000, value)
	case address < 0xC000:
		m.cart.Write(address, value)
	case address < 0xE000:
		m.wram.Write(address-0xC000, value)
	case address < 0xFE00:
		m.wram.Write(address-0xE000, value)
	case address < 0xFEA0:
		m.oam.Write(address-0xFE00, value)
	case address < 0xFF00:
		// unusable region swallows writes
		m.log.Debugf("write of %#02x to unusable address %#04x", value, address)
	case address < 0xFF80:
		m.writeIO(address, value)
	case address < 0xFFFF:
		m.hram.Write(address-0xFF80, value)
	default:
		m.writeIO(address, value)
	}
}

// readIO routes a hardware register read to the component that owns it.
func (m *MMU) readIO(address uint16) uint8 {
	switch {
	case address == types.P1 && m.joypad != nil:
		return m.joypad.Read(address)
	case (address == types.SB || address == types.SC) && m.serial != nil:
		return m.serial.Read(address)
	case address >= types.DIV && address <= types.TAC && m.timer != nil:
		return m.timer.Read(address)
	case (address == types.IF || address == types.IE) && m.irq != nil:
		return m.irq.Read(address)
	case address == types.IE:
		return m.io[0x7F]
	default:
		return m.io[address-0xFF00]
	}
}

// writeIO routes a hardware register write to the component that owns it.
func (m *MMU) writeIO(address uint16, value uint8) {
	switch {
	case address == types.P1 && m.joypad != nil:
		m.joypad.Write(address, value)
	case (address == types.SB || address == types.SC) && m.serial != nil:
		m.serial.Write(address, value)
	case address >= types.DIV && address <= types.TAC && m.timer != nil:
		m.timer.Write(address, value)
	case (address == types.IF || address == types.IE) && m.irq != nil:
		m.irq.Write(address, value)
	case address == types.IE:
		m.io[0x7F] = value
	default:
		m.io[address-0xFF00] = value
	}
}
