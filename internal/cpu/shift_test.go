package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShiftLeftArithmetic(t *testing.T) {
	c, _ := newTestCPU()

	assert.Equal(t, uint8(0x02), c.shiftLeftArithmetic(0x81))
	assert.True(t, c.isFlagSet(FlagCarry))
	assert.False(t, c.isFlagSet(FlagZero))

	assert.Equal(t, uint8(0x00), c.shiftLeftArithmetic(0x80))
	assert.True(t, c.isFlagSet(FlagCarry))
	assert.True(t, c.isFlagSet(FlagZero))
}

// SRA preserves the sign bit, SRL clears it.
func TestShiftRight(t *testing.T) {
	c, _ := newTestCPU()

	assert.Equal(t, uint8(0xC1), c.shiftRightArithmetic(0x83))
	assert.True(t, c.isFlagSet(FlagCarry))

	assert.Equal(t, uint8(0x41), c.shiftRightLogical(0x83))
	assert.True(t, c.isFlagSet(FlagCarry))

	assert.Equal(t, uint8(0x00), c.shiftRightLogical(0x01))
	assert.True(t, c.isFlagSet(FlagZero))
	assert.True(t, c.isFlagSet(FlagCarry))
}

func TestShiftMemoryOperand(t *testing.T) {
	c, bus := newTestCPU()
	c.HL.SetUint16(0x4000)
	bus.mem[0x4000] = 0xFF

	cycles := step(c, bus, 0xCB, 0x26) // SLA (HL)
	assert.Equal(t, uint8(4), cycles)
	assert.Equal(t, uint8(0xFE), bus.mem[0x4000])
	assert.True(t, c.isFlagSet(FlagCarry))
}
