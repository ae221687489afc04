package cpu

import "github.com/emberhex/dmgcore/pkg/bits"

// testBit sets the zero flag from the complement of the selected bit. The
// carry flag is left alone.
//
//	BIT b, n
//	b = bit number
//	n = 8-bit value
//
//	Flags affected:
//	Z - Set if bit b of n is zero.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(value, bit uint8) {
	c.setFlags(!bits.Test(value, bit), false, true, c.isFlagSet(FlagCarry))
}
