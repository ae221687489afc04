package cpu

import "github.com/emberhex/dmgcore/internal/types"

// shiftLeftArithmetic shifts the given value left by 1, bit 0 becoming 0.
//
//	SLA n
//	n = 8-bit value
//
//	Flags affected:
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) shiftLeftArithmetic(value uint8) uint8 {
	computed := value << 1
	c.setFlags(computed == 0, false, false, value&types.Bit7 == types.Bit7)
	return computed
}

// shiftRightArithmetic shifts the given value right by 1, bit 7 keeping its
// value.
//
//	SRA n
//	n = 8-bit value
//
//	Flags affected:
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightArithmetic(value uint8) uint8 {
	computed := value>>1 | value&types.Bit7
	c.setFlags(computed == 0, false, false, value&types.Bit0 == types.Bit0)
	return computed
}

// shiftRightLogical shifts the given value right by 1, bit 7 becoming 0.
//
//	SRL n
//	n = 8-bit value
//
//	Flags affected:
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightLogical(value uint8) uint8 {
	computed := value >> 1
	c.setFlags(computed == 0, false, false, value&types.Bit0 == types.Bit0)
	return computed
}
