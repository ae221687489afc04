package cpu

import "fmt"

// loadRegister8 loads an immediate into the given register.
//
//	LD n, d8
//	n = A, B, C, D, E, H, L
func (c *CPU) loadRegister8(reg *Register) {
	*reg = c.fetch()
}

// loadRegister16 loads a 16-bit immediate into the given register pair.
//
//	LD nn, d16
//	nn = BC, DE, HL
func (c *CPU) loadRegister16(reg *RegisterPair) {
	low := c.fetch()
	high := c.fetch()
	reg.SetUint16(merge(low, high))
}

// loadMemoryToRegister loads the byte at the given address into the given
// register.
//
//	LD n, (HL)
//	n = A, B, C, D, E, H, L
func (c *CPU) loadMemoryToRegister(reg *Register, address uint16) {
	*reg = c.bus.Read(address)
}

// loadRegisterToMemory stores the given register at the given address.
//
//	LD (HL), n
//	n = A, B, C, D, E, H, L
func (c *CPU) loadRegisterToMemory(reg Register, address uint16) {
	c.bus.Write(address, reg)
}

func init() {
	DefineInstruction(0x01, "LD BC, d16", func(c *CPU) uint8 {
		c.loadRegister16(c.BC)
		return 3
	})
	DefineInstruction(0x02, "LD (BC), A", func(c *CPU) uint8 {
		c.loadRegisterToMemory(c.A, c.BC.Uint16())
		return 2
	})
	DefineInstruction(0x06, "LD B, d8", func(c *CPU) uint8 {
		c.loadRegister8(&c.B)
		return 2
	})
	DefineInstruction(0x08, "LD (a16), SP", func(c *CPU) uint8 {
		address := c.fetch16()
		low, high := split(c.SP)
		c.bus.Write(address, low)
		c.bus.Write(address+1, high)
		return 5
	})
	DefineInstruction(0x0A, "LD A, (BC)", func(c *CPU) uint8 {
		c.loadMemoryToRegister(&c.A, c.BC.Uint16())
		return 2
	})
	DefineInstruction(0x0E, "LD C, d8", func(c *CPU) uint8 {
		c.loadRegister8(&c.C)
		return 2
	})
	DefineInstruction(0x11, "LD DE, d16", func(c *CPU) uint8 {
		c.loadRegister16(c.DE)
		return 3
	})
	DefineInstruction(0x12, "LD (DE), A", func(c *CPU) uint8 {
		c.loadRegisterToMemory(c.A, c.DE.Uint16())
		return 2
	})
	DefineInstruction(0x16, "LD D, d8", func(c *CPU) uint8 {
		c.loadRegister8(&c.D)
		return 2
	})
	DefineInstruction(0x1A, "LD A, (DE)", func(c *CPU) uint8 {
		c.loadMemoryToRegister(&c.A, c.DE.Uint16())
		return 2
	})
	DefineInstruction(0x1E, "LD E, d8", func(c *CPU) uint8 {
		c.loadRegister8(&c.E)
		return 2
	})
	DefineInstruction(0x21, "LD HL, d16", func(c *CPU) uint8 {
		c.loadRegister16(c.HL)
		return 3
	})
	DefineInstruction(0x22, "LD (HL+), A", func(c *CPU) uint8 {
		c.loadRegisterToMemory(c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
		return 2
	})
	DefineInstruction(0x26, "LD H, d8", func(c *CPU) uint8 {
		c.loadRegister8(&c.H)
		return 2
	})
	DefineInstruction(0x2A, "LD A, (HL+)", func(c *CPU) uint8 {
		c.loadMemoryToRegister(&c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
		return 2
	})
	DefineInstruction(0x2E, "LD L, d8", func(c *CPU) uint8 {
		c.loadRegister8(&c.L)
		return 2
	})
	DefineInstruction(0x31, "LD SP, d16", func(c *CPU) uint8 {
		c.SP = c.fetch16()
		return 3
	})
	DefineInstruction(0x32, "LD (HL-), A", func(c *CPU) uint8 {
		c.loadRegisterToMemory(c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
		return 2
	})
	DefineInstruction(0x36, "LD (HL), d8", func(c *CPU) uint8 {
		c.bus.Write(c.HL.Uint16(), c.fetch())
		return 3
	})
	DefineInstruction(0x3A, "LD A, (HL-)", func(c *CPU) uint8 {
		c.loadMemoryToRegister(&c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
		return 2
	})
	DefineInstruction(0x3E, "LD A, d8", func(c *CPU) uint8 {
		c.loadRegister8(&c.A)
		return 2
	})
	DefineInstruction(0xE0, "LDH (a8), A", func(c *CPU) uint8 {
		c.bus.Write(0xFF00+uint16(c.fetch()), c.A)
		return 3
	})
	DefineInstruction(0xE2, "LD (C), A", func(c *CPU) uint8 {
		c.bus.Write(0xFF00+uint16(c.C), c.A)
		return 2
	})
	DefineInstruction(0xEA, "LD (a16), A", func(c *CPU) uint8 {
		c.loadRegisterToMemory(c.A, c.fetch16())
		return 4
	})
	DefineInstruction(0xF0, "LDH A, (a8)", func(c *CPU) uint8 {
		c.loadMemoryToRegister(&c.A, 0xFF00+uint16(c.fetch()))
		return 3
	})
	DefineInstruction(0xF2, "LD A, (C)", func(c *CPU) uint8 {
		c.loadMemoryToRegister(&c.A, 0xFF00+uint16(c.C))
		return 2
	})
	DefineInstruction(0xF8, "LD HL, SP+r8", func(c *CPU) uint8 {
		c.HL.SetUint16(c.addSPSigned())
		return 3
	})
	DefineInstruction(0xF9, "LD SP, HL", func(c *CPU) uint8 {
		c.SP = c.HL.Uint16()
		return 2
	})
	DefineInstruction(0xFA, "LD A, (a16)", func(c *CPU) uint8 {
		c.loadMemoryToRegister(&c.A, c.fetch16())
		return 4
	})

	generateLoadRegisterToRegisterInstructions()
}

// generateLoadRegisterToRegisterInstructions fills the 0x40-0x7F grid:
//
//	0x40 LD B, B
//	0x41 LD B, C
//	....
//	0x7F LD A, A
//
// 0x76 is HALT and is registered elsewhere.
func generateLoadRegisterToRegisterInstructions() {
	for i := uint8(0); i < 8; i++ {
		for j := uint8(0); j < 8; j++ {
			if i == 6 && j == 6 {
				continue // HALT
			}
			opcode := 0x40 + i*8 + j
			to, from := i, j
			switch {
			case to == 6:
				DefineInstruction(opcode, fmt.Sprintf("LD (HL), %s", registerNames[from]), func(c *CPU) uint8 {
					c.loadRegisterToMemory(*c.registerPointer(from), c.HL.Uint16())
					return 2
				})
			case from == 6:
				DefineInstruction(opcode, fmt.Sprintf("LD %s, (HL)", registerNames[to]), func(c *CPU) uint8 {
					c.loadMemoryToRegister(c.registerPointer(to), c.HL.Uint16())
					return 2
				})
			case to == from:
				DefineInstruction(opcode, fmt.Sprintf("LD %s, %s", registerNames[to], registerNames[from]), func(c *CPU) uint8 {
					if c.Debug && to == 0 {
						c.DebugBreakpoint = true
					}
					return 1
				})
			default:
				DefineInstruction(opcode, fmt.Sprintf("LD %s, %s", registerNames[to], registerNames[from]), func(c *CPU) uint8 {
					*c.registerPointer(to) = *c.registerPointer(from)
					return 1
				})
			}
		}
	}
}
