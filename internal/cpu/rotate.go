package cpu

import "github.com/emberhex/dmgcore/internal/types"

// rotateLeftCarry rotates the given value left by 1, copying bit 7 into both
// the carry flag and bit 0.
//
//	RLC n
//	n = 8-bit value
//
//	Flags affected:
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftCarry(value uint8) uint8 {
	carry := value & types.Bit7
	computed := value<<1 | carry>>7
	c.setFlags(computed == 0, false, false, carry == types.Bit7)
	return computed
}

// rotateRightCarry rotates the given value right by 1, copying bit 0 into
// both the carry flag and bit 7.
//
//	RRC n
//	n = 8-bit value
//
//	Flags affected:
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightCarry(value uint8) uint8 {
	carry := value & types.Bit0
	computed := value>>1 | carry<<7
	c.setFlags(computed == 0, false, false, carry == types.Bit0)
	return computed
}

// rotateLeftThroughCarry rotates the given value left by 1 through the carry
// flag: bit 0 receives the old carry, the carry receives the old bit 7.
//
//	RL n
//	n = 8-bit value
//
//	Flags affected:
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftThroughCarry(value uint8) uint8 {
	computed := value << 1
	if c.isFlagSet(FlagCarry) {
		computed |= types.Bit0
	}
	c.setFlags(computed == 0, false, false, value&types.Bit7 == types.Bit7)
	return computed
}

// rotateRightThroughCarry rotates the given value right by 1 through the
// carry flag: bit 7 receives the old carry, the carry receives the old bit 0.
//
//	RR n
//	n = 8-bit value
//
//	Flags affected:
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightThroughCarry(value uint8) uint8 {
	computed := value >> 1
	if c.isFlagSet(FlagCarry) {
		computed |= types.Bit7
	}
	c.setFlags(computed == 0, false, false, value&types.Bit0 == types.Bit0)
	return computed
}

func init() {
	// the accumulator rotates share the CB bit logic but always report Z=0
	DefineInstruction(0x07, "RLCA", func(c *CPU) uint8 {
		c.A = c.rotateLeftCarry(c.A)
		c.clearFlag(FlagZero)
		return 1
	})
	DefineInstruction(0x0F, "RRCA", func(c *CPU) uint8 {
		c.A = c.rotateRightCarry(c.A)
		c.clearFlag(FlagZero)
		return 1
	})
	DefineInstruction(0x17, "RLA", func(c *CPU) uint8 {
		c.A = c.rotateLeftThroughCarry(c.A)
		c.clearFlag(FlagZero)
		return 1
	})
	DefineInstruction(0x1F, "RRA", func(c *CPU) uint8 {
		c.A = c.rotateRightThroughCarry(c.A)
		c.clearFlag(FlagZero)
		return 1
	})
}
