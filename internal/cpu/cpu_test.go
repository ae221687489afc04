package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberhex/dmgcore/internal/interrupts"
	"github.com/emberhex/dmgcore/internal/types"
)

// testBus is a flat 64 KiB byte array with no banking or IO behaviour.
type testBus struct {
	mem [0x10000]uint8
}

func (b *testBus) Read(address uint16) uint8         { return b.mem[address] }
func (b *testBus) Write(address uint16, value uint8) { b.mem[address] = value }

func newTestCPU(opts ...Option) (*CPU, *testBus) {
	bus := &testBus{}
	c := NewCPU(bus, interrupts.NewService(), opts...)
	c.SP = 0xFFF0
	return c, bus
}

// step writes the given bytes at PC and executes a single instruction,
// returning the machine cycles it consumed.
func step(c *CPU, bus *testBus, code ...uint8) uint8 {
	copy(bus.mem[c.PC:], code)
	return c.Step()
}

func TestReset(t *testing.T) {
	c, bus := newTestCPU()
	c.A = 0xFF
	c.PC = 0x4000

	c.Reset()

	assert.Equal(t, uint8(0x01), c.A)
	assert.Equal(t, uint8(0xB0), c.F)
	assert.Equal(t, uint16(0x0013), c.BC.Uint16())
	assert.Equal(t, uint16(0x00D8), c.DE.Uint16())
	assert.Equal(t, uint16(0x014D), c.HL.Uint16())
	assert.Equal(t, uint16(0xFFFE), c.SP)
	assert.Equal(t, uint16(0x0100), c.PC)
	assert.Equal(t, uint64(0), c.Cycles())

	assert.Equal(t, uint8(0x91), bus.mem[types.LCDC])
	assert.Equal(t, uint8(0xFC), bus.mem[types.BGP])
}

func TestStackRoundTrip(t *testing.T) {
	c, _ := newTestCPU()

	for _, value := range []uint16{0x0000, 0x0001, 0x1234, 0x8000, 0xFFFF} {
		before := c.SP
		c.pushStack(value)
		assert.Equal(t, before-2, c.SP)
		assert.Equal(t, value, c.popStack())
		assert.Equal(t, before, c.SP)
	}
}

func TestStackOverflowPanics(t *testing.T) {
	c, _ := newTestCPU()
	c.SP = 0x0001
	assert.Panics(t, func() { c.pushStack(0x1234) })
}

func TestStackUnderflowPanics(t *testing.T) {
	c, _ := newTestCPU()
	c.SP = 0xFFFE
	assert.Panics(t, func() { c.popStack() })
}

func TestEnableInterruptDelay(t *testing.T) {
	c, bus := newTestCPU()
	c.irq.Enable = interrupts.VBlankFlag
	c.irq.Request(interrupts.VBlankFlag)

	// EI must not take effect until after the following instruction, so the
	// NOP directly behind it still executes before the CPU vectors.
	step(c, bus, 0xFB, 0x00) // EI
	assert.False(t, c.irqEnabled)

	c.Step() // NOP
	assert.True(t, c.irqEnabled)

	cycles := c.Step()
	assert.Equal(t, uint8(5), cycles)
	assert.Equal(t, uint16(0x0040), c.PC)
	assert.False(t, c.irqEnabled)
}

func TestDisableInterruptIsImmediate(t *testing.T) {
	c, bus := newTestCPU()
	c.irqEnabled = true
	c.eiPending = true

	step(c, bus, 0xF3) // DI
	assert.False(t, c.irqEnabled)
	assert.False(t, c.eiPending)
}

func TestInterruptDispatch(t *testing.T) {
	c, _ := newTestCPU()
	c.PC = 0x1234
	c.irqEnabled = true
	c.irq.Enable = interrupts.VBlankFlag | interrupts.TimerFlag
	c.irq.Request(interrupts.TimerFlag)

	cycles := c.Step()

	require.Equal(t, uint8(5), cycles)
	assert.Equal(t, uint16(0x0050), c.PC)
	assert.Equal(t, uint16(0x1234), c.popStack())
	assert.False(t, c.irqEnabled)
	assert.Zero(t, c.irq.Flag&interrupts.TimerFlag)
}

func TestHaltSleepsUntilInterrupt(t *testing.T) {
	c, bus := newTestCPU()
	step(c, bus, 0x76) // HALT
	require.True(t, c.Halted())

	pc := c.PC
	cycles := c.Step()
	assert.Equal(t, uint8(1), cycles)
	assert.Equal(t, pc, c.PC)
	assert.True(t, c.Halted())

	// a pending enabled interrupt wakes the CPU even with IME off
	c.irq.Enable = interrupts.JoypadFlag
	c.irq.Request(interrupts.JoypadFlag)
	step(c, bus, 0x00)
	assert.False(t, c.Halted())
}

func TestUnimplementedOpcodeIsSkipped(t *testing.T) {
	c, bus := newTestCPU()

	// 0xD3 has no instruction behind it: zero cycles, PC moves past the byte
	cycles := step(c, bus, 0xD3, 0x00)
	assert.Equal(t, uint8(0), cycles)
	assert.Equal(t, uint16(0x0001), c.PC)
	assert.Equal(t, "UNIMPLEMENTED(0xD3)", InstructionSet[0xD3].Name())

	cycles = c.Step()
	assert.Equal(t, uint8(1), cycles)
}

func TestFetchWrapsAddressSpace(t *testing.T) {
	c, bus := newTestCPU()
	c.PC = 0xFFFF
	bus.mem[0xFFFF] = 0x00

	c.Step()
	assert.Equal(t, uint16(0x0000), c.PC)
}

func TestCyclesAccumulate(t *testing.T) {
	c, bus := newTestCPU()
	step(c, bus, 0x00)       // NOP, 1
	step(c, bus, 0x3E, 0x42) // LD A, d8, 2
	assert.Equal(t, uint64(3), c.Cycles())
}
