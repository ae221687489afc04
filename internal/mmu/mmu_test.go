package mmu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emberhex/dmgcore/internal/cartridge"
	"github.com/emberhex/dmgcore/internal/interrupts"
	"github.com/emberhex/dmgcore/internal/joypad"
	"github.com/emberhex/dmgcore/internal/serial"
	"github.com/emberhex/dmgcore/internal/timer"
	"github.com/emberhex/dmgcore/internal/types"
	"github.com/emberhex/dmgcore/pkg/log"
)

// recordingCartridge captures every access routed into cartridge space.
type recordingCartridge struct {
	reads  []uint16
	writes map[uint16]uint8
}

func newRecordingCartridge() *recordingCartridge {
	return &recordingCartridge{writes: map[uint16]uint8{}}
}

func (r *recordingCartridge) Read(address uint16) uint8 {
	r.reads = append(r.reads, address)
	return 0x42
}

func (r *recordingCartridge) Write(address uint16, value uint8) {
	r.writes[address] = value
}

func (r *recordingCartridge) Save() []byte             { return nil }
func (r *recordingCartridge) Load([]byte)              {}
func (r *recordingCartridge) Header() cartridge.Header { return cartridge.Header{} }

func newTestMMU() (*MMU, *recordingCartridge, *interrupts.Service) {
	cart := newRecordingCartridge()
	irq := interrupts.NewService()
	t := timer.NewController(irq)
	s := serial.NewController(irq, nil)
	j := joypad.NewState(irq)
	return NewMMU(cart, irq, t, s, j, log.NewNullLogger()), cart, irq
}

func TestCartridgeRouting(t *testing.T) {
	m, cart, _ := newTestMMU()

	assert.Equal(t, uint8(0x42), m.Read(0x0000))
	assert.Equal(t, uint8(0x42), m.Read(0x7FFF))
	assert.Equal(t, uint8(0x42), m.Read(0xA000), "external RAM belongs to the cartridge")

	m.Write(0x2000, 0x05)
	assert.Equal(t, uint8(0x05), cart.writes[0x2000], "ROM-range writes reach the mapper")
	m.Write(0xB123, 0x99)
	assert.Equal(t, uint8(0x99), cart.writes[0xB123])
}

func TestRAMRegions(t *testing.T) {
	m, _, _ := newTestMMU()

	m.Write(0x8000, 0x11)
	assert.Equal(t, uint8(0x11), m.Read(0x8000))

	m.Write(0xC000, 0x22)
	assert.Equal(t, uint8(0x22), m.Read(0xC000))
	assert.Equal(t, uint8(0x22), m.Read(0xE000), "echo RAM mirrors WRAM")

	m.Write(0xF000, 0x33)
	assert.Equal(t, uint8(0x33), m.Read(0xD000), "the mirror works both ways")

	m.Write(0xFE00, 0x44)
	assert.Equal(t, uint8(0x44), m.Read(0xFE00))

	m.Write(0xFF80, 0x55)
	assert.Equal(t, uint8(0x55), m.Read(0xFF80))
	m.Write(0xFFFE, 0x66)
	assert.Equal(t, uint8(0x66), m.Read(0xFFFE))
}

func TestUnusableRegion(t *testing.T) {
	m, _, _ := newTestMMU()

	m.Write(0xFEA0, 0x77)
	assert.Equal(t, uint8(0xFF), m.Read(0xFEA0))
	assert.Equal(t, uint8(0xFF), m.Read(0xFEFF))
}

func TestIORouting(t *testing.T) {
	m, _, irq := newTestMMU()

	m.Write(types.TIMA, 0x12)
	assert.Equal(t, uint8(0x12), m.Read(types.TIMA))

	m.Write(types.SB, 0x34)
	assert.Equal(t, uint8(0x34), m.Read(types.SB))

	m.Write(types.IF, 0x05)
	assert.Equal(t, uint8(0x05), irq.Flag)
	assert.Equal(t, uint8(0xE5), m.Read(types.IF))

	m.Write(types.IE, 0x1F)
	assert.Equal(t, uint8(0x1F), irq.Enable)
	assert.Equal(t, uint8(0x1F), m.Read(types.IE))

	assert.Equal(t, uint8(0xFF), m.Read(types.P1), "deselected joypad reads high")
}

// registers with no attached component still hold their value
func TestUnclaimedIOBacking(t *testing.T) {
	m, _, _ := newTestMMU()

	m.Write(types.LCDC, 0x91)
	assert.Equal(t, uint8(0x91), m.Read(types.LCDC))

	m.Write(types.BGP, 0xFC)
	assert.Equal(t, uint8(0xFC), m.Read(types.BGP))
}

func TestNilComponentsFallBack(t *testing.T) {
	m := NewMMU(newRecordingCartridge(), nil, nil, nil, nil, log.NewNullLogger())

	m.Write(types.DIV, 0x12)
	assert.Equal(t, uint8(0x12), m.Read(types.DIV), "without a timer DIV is plain storage")

	m.Write(types.IE, 0xAB)
	assert.Equal(t, uint8(0xAB), m.Read(types.IE))
}
