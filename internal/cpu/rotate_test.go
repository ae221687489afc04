package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotateHelpers(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(*CPU, uint8) uint8
		value    uint8
		carryIn  bool
		want     uint8
		carryOut bool
	}{
		{"RLC", (*CPU).rotateLeftCarry, 0x85, false, 0x0B, true},
		{"RLC", (*CPU).rotateLeftCarry, 0x00, true, 0x00, false},
		{"RRC", (*CPU).rotateRightCarry, 0x01, false, 0x80, true},
		{"RRC", (*CPU).rotateRightCarry, 0x80, false, 0x40, false},
		{"RL", (*CPU).rotateLeftThroughCarry, 0x80, false, 0x00, true},
		{"RL", (*CPU).rotateLeftThroughCarry, 0x11, true, 0x23, false},
		{"RR", (*CPU).rotateRightThroughCarry, 0x01, false, 0x00, true},
		{"RR", (*CPU).rotateRightThroughCarry, 0x8A, true, 0xC5, false},
	}

	for _, tt := range tests {
		c, _ := newTestCPU()
		if tt.carryIn {
			c.setFlag(FlagCarry)
		}
		got := tt.fn(c, tt.value)
		assert.Equal(t, tt.want, got, "%s %#02x", tt.name, tt.value)
		assert.Equal(t, tt.carryOut, c.isFlagSet(FlagCarry), "%s %#02x carry", tt.name, tt.value)
		assert.Equal(t, got == 0, c.isFlagSet(FlagZero), "%s %#02x zero", tt.name, tt.value)
		assert.False(t, c.isFlagSet(FlagSubtract))
		assert.False(t, c.isFlagSet(FlagHalfCarry))
	}
}

// RLCA/RRCA/RLA/RRA always leave Z clear, even when A rotates to zero.
func TestAccumulatorRotatesClearZero(t *testing.T) {
	for _, opcode := range []uint8{0x07, 0x0F, 0x17, 0x1F} {
		c, bus := newTestCPU()
		c.A = 0x00

		cycles := step(c, bus, opcode)
		assert.Equal(t, uint8(1), cycles)
		assert.False(t, c.isFlagSet(FlagZero), "opcode %#02x", opcode)
	}
}

func TestRotateAccumulator(t *testing.T) {
	c, bus := newTestCPU()
	c.A = 0x95
	step(c, bus, 0x07) // RLCA
	assert.Equal(t, uint8(0x2B), c.A)
	assert.True(t, c.isFlagSet(FlagCarry))

	c.PC = 0
	c.A = 0x81
	c.clearFlag(FlagCarry)
	step(c, bus, 0x1F) // RRA
	assert.Equal(t, uint8(0x40), c.A)
	assert.True(t, c.isFlagSet(FlagCarry))
}
