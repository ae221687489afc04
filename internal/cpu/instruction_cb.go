package cpu

import (
	"fmt"

	"github.com/emberhex/dmgcore/pkg/bits"
)

// The extended table is operation-major, register-minor: the low three bits
// of every CB opcode select the operand in the order B, C, D, E, H, L, (HL),
// A.
func init() {
	type modify struct {
		mnemonic string
		fn       func(*CPU, uint8) uint8
	}
	modifies := []modify{
		{"RLC", (*CPU).rotateLeftCarry},
		{"RRC", (*CPU).rotateRightCarry},
		{"RL", (*CPU).rotateLeftThroughCarry},
		{"RR", (*CPU).rotateRightThroughCarry},
		{"SLA", (*CPU).shiftLeftArithmetic},
		{"SRA", (*CPU).shiftRightArithmetic},
		{"SWAP", (*CPU).swap},
		{"SRL", (*CPU).shiftRightLogical},
	}

	for j := uint8(0); j < 8; j++ {
		operand := j
		cycles := uint8(2)
		if operand == 6 {
			cycles = 4
		}

		for i, op := range modifies {
			fn := op.fn
			DefineInstructionCB(uint8(i)*8+j, fmt.Sprintf("%s %s", op.mnemonic, registerNames[operand]), func(c *CPU) uint8 {
				c.writeOperand(operand, fn(c, c.readOperand(operand)))
				return cycles
			})
		}

		for n := uint8(0); n < 8; n++ {
			bit := n
			DefineInstructionCB(0x40+n*8+j, fmt.Sprintf("BIT %d, %s", n, registerNames[operand]), func(c *CPU) uint8 {
				c.testBit(c.readOperand(operand), bit)
				return cycles
			})
			DefineInstructionCB(0x80+n*8+j, fmt.Sprintf("RES %d, %s", n, registerNames[operand]), func(c *CPU) uint8 {
				c.writeOperand(operand, bits.Reset(c.readOperand(operand), bit))
				return cycles
			})
			DefineInstructionCB(0xC0+n*8+j, fmt.Sprintf("SET %d, %s", n, registerNames[operand]), func(c *CPU) uint8 {
				c.writeOperand(operand, bits.Set(c.readOperand(operand), bit))
				return cycles
			})
		}
	}
}
