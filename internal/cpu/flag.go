package cpu

import "github.com/emberhex/dmgcore/internal/types"

const (
	// FlagZero is set when the last result was zero.
	FlagZero = types.Bit7
	// FlagSubtract is set when the last operation was a subtraction.
	FlagSubtract = types.Bit6
	// FlagHalfCarry is set on a carry out of bit 3, or bit 11 for 16-bit
	// operations.
	FlagHalfCarry = types.Bit5
	// FlagCarry is set on a carry out of bit 7, or bit 15 for 16-bit
	// operations.
	FlagCarry = types.Bit4
)

// setFlags writes all four flags at once. The low nibble of F always reads
// as zero.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	v := uint8(0)
	if zero {
		v |= FlagZero
	}
	if subtract {
		v |= FlagSubtract
	}
	if halfCarry {
		v |= FlagHalfCarry
	}
	if carry {
		v |= FlagCarry
	}
	c.F = v
}

// isFlagSet reports whether the given flag is set.
func (c *CPU) isFlagSet(flag uint8) bool {
	return c.F&flag == flag
}

// setFlag sets the given flag, leaving the others untouched.
func (c *CPU) setFlag(flag uint8) {
	c.F |= flag
}

// clearFlag clears the given flag, leaving the others untouched.
func (c *CPU) clearFlag(flag uint8) {
	c.F &^= flag
}
