package cpu

import "fmt"

// increment increments the given value by 1.
//
//	INC n
//	n = 8-bit value
//
//	Flags affected:
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(value uint8) uint8 {
	result, _, halfCarry := add8(value, 1)
	c.setFlags(result == 0, false, halfCarry, c.isFlagSet(FlagCarry))
	return result
}

// decrement decrements the given value by 1.
//
//	DEC n
//	n = 8-bit value
//
//	Flags affected:
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(value uint8) uint8 {
	result, _, halfBorrow := sub8(value, 1)
	c.setFlags(result == 0, true, halfBorrow, c.isFlagSet(FlagCarry))
	return result
}

// add adds the given value to the A register, optionally with the carry flag.
//
//	ADD A, n / ADC A, n
//	n = 8-bit value
//
//	Flags affected:
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(value uint8, withCarry bool) {
	result, carry, halfCarry := add8(c.A, value)
	if withCarry && c.isFlagSet(FlagCarry) {
		var carry2, halfCarry2 bool
		result, carry2, halfCarry2 = add8(result, 1)
		carry = carry || carry2
		halfCarry = halfCarry || halfCarry2
	}
	c.A = result
	c.setFlags(result == 0, false, halfCarry, carry)
}

// sub subtracts the given value from the A register, optionally with the
// carry flag.
//
//	SUB A, n / SBC A, n
//	n = 8-bit value
//
//	Flags affected:
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(value uint8, withCarry bool) {
	result, borrow, halfBorrow := sub8(c.A, value)
	if withCarry && c.isFlagSet(FlagCarry) {
		var borrow2, halfBorrow2 bool
		result, borrow2, halfBorrow2 = sub8(result, 1)
		borrow = borrow || borrow2
		halfBorrow = halfBorrow || halfBorrow2
	}
	c.A = result
	c.setFlags(result == 0, true, halfBorrow, borrow)
}

// compare subtracts the given value from the A register for the flags only.
//
//	CP A, n
//	n = 8-bit value
//
//	Flags affected:
//	Z - Set if A equals n.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if A is less than n.
func (c *CPU) compare(value uint8) {
	result, borrow, halfBorrow := sub8(c.A, value)
	c.setFlags(result == 0, true, halfBorrow, borrow)
}

// addHLRegister adds the given register pair value to HL.
//
//	ADD HL, nn
//	nn = 16-bit value
//
//	Flags affected:
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHLRegister(value uint16) {
	result, carry, halfCarry := add16(c.HL.Uint16(), value)
	c.setFlags(c.isFlagSet(FlagZero), false, halfCarry, carry)
	c.HL.SetUint16(result)
}

// addSPSigned returns SP plus the signed immediate from the PC stream, with
// the carry windows of add16 applied to the unsigned immediate.
//
//	ADD SP, r8 / LD HL, SP+r8
//
//	Flags affected:
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addSPSigned() uint16 {
	operand := c.fetch()
	result := c.SP + signExtend(operand)
	_, carry, halfCarry := add16(c.SP, uint16(operand))
	c.setFlags(false, false, halfCarry, carry)
	return result
}

func init() {
	// INC/DEC r grid, the (HL) column included
	for i := uint8(0); i < 8; i++ {
		operand := i
		cycles := uint8(1)
		if operand == 6 {
			cycles = 3
		}
		DefineInstruction(0x04+i*8, fmt.Sprintf("INC %s", registerNames[operand]), func(c *CPU) uint8 {
			c.writeOperand(operand, c.increment(c.readOperand(operand)))
			return cycles
		})
		DefineInstruction(0x05+i*8, fmt.Sprintf("DEC %s", registerNames[operand]), func(c *CPU) uint8 {
			c.writeOperand(operand, c.decrement(c.readOperand(operand)))
			return cycles
		})
	}

	// 16-bit INC/DEC and ADD HL, no flags on the former pair
	DefineInstruction(0x03, "INC BC", func(c *CPU) uint8 { c.BC.SetUint16(c.BC.Uint16() + 1); return 2 })
	DefineInstruction(0x13, "INC DE", func(c *CPU) uint8 { c.DE.SetUint16(c.DE.Uint16() + 1); return 2 })
	DefineInstruction(0x23, "INC HL", func(c *CPU) uint8 { c.HL.SetUint16(c.HL.Uint16() + 1); return 2 })
	DefineInstruction(0x33, "INC SP", func(c *CPU) uint8 { c.SP++; return 2 })
	DefineInstruction(0x0B, "DEC BC", func(c *CPU) uint8 { c.BC.SetUint16(c.BC.Uint16() - 1); return 2 })
	DefineInstruction(0x1B, "DEC DE", func(c *CPU) uint8 { c.DE.SetUint16(c.DE.Uint16() - 1); return 2 })
	DefineInstruction(0x2B, "DEC HL", func(c *CPU) uint8 { c.HL.SetUint16(c.HL.Uint16() - 1); return 2 })
	DefineInstruction(0x3B, "DEC SP", func(c *CPU) uint8 { c.SP--; return 2 })

	DefineInstruction(0x09, "ADD HL, BC", func(c *CPU) uint8 { c.addHLRegister(c.BC.Uint16()); return 2 })
	DefineInstruction(0x19, "ADD HL, DE", func(c *CPU) uint8 { c.addHLRegister(c.DE.Uint16()); return 2 })
	DefineInstruction(0x29, "ADD HL, HL", func(c *CPU) uint8 { c.addHLRegister(c.HL.Uint16()); return 2 })
	DefineInstruction(0x39, "ADD HL, SP", func(c *CPU) uint8 { c.addHLRegister(c.SP); return 2 })

	DefineInstruction(0xE8, "ADD SP, r8", func(c *CPU) uint8 {
		c.SP = c.addSPSigned()
		return 4
	})

	// immediate forms of the accumulator arithmetic
	DefineInstruction(0xC6, "ADD A, d8", func(c *CPU) uint8 { c.add(c.fetch(), false); return 2 })
	DefineInstruction(0xCE, "ADC A, d8", func(c *CPU) uint8 { c.add(c.fetch(), true); return 2 })
	DefineInstruction(0xD6, "SUB A, d8", func(c *CPU) uint8 { c.sub(c.fetch(), false); return 2 })
	DefineInstruction(0xDE, "SBC A, d8", func(c *CPU) uint8 { c.sub(c.fetch(), true); return 2 })
	DefineInstruction(0xFE, "CP A, d8", func(c *CPU) uint8 { c.compare(c.fetch()); return 2 })

	// PUSH/POP; the AF pair masks the low nibble of F on every 16-bit set,
	// which is what POP AF relies on
	DefineInstruction(0xC5, "PUSH BC", func(c *CPU) uint8 { c.pushStack(c.BC.Uint16()); return 4 })
	DefineInstruction(0xD5, "PUSH DE", func(c *CPU) uint8 { c.pushStack(c.DE.Uint16()); return 4 })
	DefineInstruction(0xE5, "PUSH HL", func(c *CPU) uint8 { c.pushStack(c.HL.Uint16()); return 4 })
	DefineInstruction(0xF5, "PUSH AF", func(c *CPU) uint8 { c.pushStack(c.AF.Uint16()); return 4 })
	DefineInstruction(0xC1, "POP BC", func(c *CPU) uint8 { c.BC.SetUint16(c.popStack()); return 3 })
	DefineInstruction(0xD1, "POP DE", func(c *CPU) uint8 { c.DE.SetUint16(c.popStack()); return 3 })
	DefineInstruction(0xE1, "POP HL", func(c *CPU) uint8 { c.HL.SetUint16(c.popStack()); return 3 })
	DefineInstruction(0xF1, "POP AF", func(c *CPU) uint8 { c.AF.SetUint16(c.popStack()); return 3 })

	generateALUInstructions()
}

// generateALUInstructions fills the 0x80-0xBF grid: eight accumulator
// operations, each over the operand order B, C, D, E, H, L, (HL), A.
func generateALUInstructions() {
	ops := []struct {
		mnemonic string
		fn       func(*CPU, uint8)
	}{
		{"ADD", func(c *CPU, v uint8) { c.add(v, false) }},
		{"ADC", func(c *CPU, v uint8) { c.add(v, true) }},
		{"SUB", func(c *CPU, v uint8) { c.sub(v, false) }},
		{"SBC", func(c *CPU, v uint8) { c.sub(v, true) }},
		{"AND", (*CPU).and},
		{"XOR", (*CPU).xor},
		{"OR", (*CPU).or},
		{"CP", (*CPU).compare},
	}
	for i, op := range ops {
		for j := uint8(0); j < 8; j++ {
			operand := j
			fn := op.fn
			cycles := uint8(1)
			if operand == 6 {
				cycles = 2
			}
			DefineInstruction(0x80+uint8(i)*8+j, fmt.Sprintf("%s A, %s", op.mnemonic, registerNames[operand]), func(c *CPU) uint8 {
				fn(c, c.readOperand(operand))
				return cycles
			})
		}
	}
}
