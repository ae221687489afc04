package cpu

import "fmt"

// condition guards the conditional jump, call and return encodings.
type condition struct {
	name  string
	holds func(*CPU) bool
}

var conditions = [4]condition{
	{"NZ", func(c *CPU) bool { return !c.isFlagSet(FlagZero) }},
	{"Z", func(c *CPU) bool { return c.isFlagSet(FlagZero) }},
	{"NC", func(c *CPU) bool { return !c.isFlagSet(FlagCarry) }},
	{"C", func(c *CPU) bool { return c.isFlagSet(FlagCarry) }},
}

// jumpRelative displaces PC by the signed immediate. The displacement is
// relative to the address after the operand fetch.
//
//	JR cc, r8
//	cc = NZ, Z, NC, C
//	r8 = 8-bit signed value
func (c *CPU) jumpRelative(taken bool) uint8 {
	operand := c.fetch()
	if !taken {
		return 2
	}
	c.PC += signExtend(operand)
	return 3
}

// jumpAbsolute sets PC to the 16-bit immediate.
//
//	JP cc, a16
//	cc = NZ, Z, NC, C
//	a16 = 16-bit address
func (c *CPU) jumpAbsolute(taken bool) uint8 {
	address := c.fetch16()
	if !taken {
		return 3
	}
	c.PC = address
	return 4
}

// call pushes the address of the next instruction and jumps to the 16-bit
// immediate.
//
//	CALL cc, a16
//	cc = NZ, Z, NC, C
//	a16 = 16-bit address
func (c *CPU) call(taken bool) uint8 {
	address := c.fetch16()
	if !taken {
		return 3
	}
	c.pushStack(c.PC)
	c.PC = address
	return 6
}

// ret pops the return address into PC.
//
//	RET cc
//	cc = NZ, Z, NC, C
func (c *CPU) ret() {
	c.PC = c.popStack()
}

func init() {
	DefineInstruction(0x18, "JR r8", func(c *CPU) uint8 { return c.jumpRelative(true) })
	DefineInstruction(0xC3, "JP a16", func(c *CPU) uint8 { return c.jumpAbsolute(true) })
	DefineInstruction(0xCD, "CALL a16", func(c *CPU) uint8 { return c.call(true) })
	DefineInstruction(0xE9, "JP HL", func(c *CPU) uint8 {
		c.PC = c.HL.Uint16()
		return 1
	})
	DefineInstruction(0xC9, "RET", func(c *CPU) uint8 {
		c.ret()
		return 4
	})
	DefineInstruction(0xD9, "RETI", func(c *CPU) uint8 {
		c.ret()
		c.irqEnabled = true
		return 4
	})

	// conditional variants, condition-minor across each encoding family
	for i, cond := range conditions {
		holds := cond.holds
		DefineInstruction(0x20+uint8(i)*8, fmt.Sprintf("JR %s, r8", cond.name), func(c *CPU) uint8 {
			return c.jumpRelative(holds(c))
		})
		DefineInstruction(0xC2+uint8(i)*8, fmt.Sprintf("JP %s, a16", cond.name), func(c *CPU) uint8 {
			return c.jumpAbsolute(holds(c))
		})
		DefineInstruction(0xC4+uint8(i)*8, fmt.Sprintf("CALL %s, a16", cond.name), func(c *CPU) uint8 {
			return c.call(holds(c))
		})
		DefineInstruction(0xC0+uint8(i)*8, fmt.Sprintf("RET %s", cond.name), func(c *CPU) uint8 {
			if !holds(c) {
				return 2
			}
			c.ret()
			return 5
		})
	}

	// RST vectors at 0x00, 0x08 ... 0x38
	for i := uint8(0); i < 8; i++ {
		vector := uint16(i) * 8
		DefineInstruction(0xC7+i*8, fmt.Sprintf("RST %02Xh", vector), func(c *CPU) uint8 {
			c.pushStack(c.PC)
			c.PC = vector
			return 4
		})
	}
}
