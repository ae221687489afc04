package cpu

import (
	"fmt"

	"github.com/emberhex/dmgcore/internal/types"
)

// Register is an 8-bit CPU register.
type Register = types.Register

// RegisterPair is a 16-bit view over two 8-bit registers.
type RegisterPair = types.RegisterPair

// registerNames orders the 8-bit operands the way the opcode grids encode
// them in the low three bits.
var registerNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// registerPointer returns the register selected by a grid index. Index 6 is
// the (HL) memory operand and has no backing register.
func (c *CPU) registerPointer(index uint8) *Register {
	switch index {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	}
	panic(fmt.Sprintf("cpu: no register at grid index %d", index))
}

// readOperand reads the 8-bit operand selected by a grid index, going through
// the bus for (HL).
func (c *CPU) readOperand(index uint8) uint8 {
	if index == 6 {
		return c.bus.Read(c.HL.Uint16())
	}
	return *c.registerPointer(index)
}

// writeOperand writes the 8-bit operand selected by a grid index, going
// through the bus for (HL).
func (c *CPU) writeOperand(index uint8, value uint8) {
	if index == 6 {
		c.bus.Write(c.HL.Uint16(), value)
		return
	}
	*c.registerPointer(index) = value
}
