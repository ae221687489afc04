package cpu

import "fmt"

// Instruction pairs an executor with its disassembly name. The executor
// mutates the CPU and returns the number of machine cycles consumed,
// including any taken-branch penalty.
type Instruction struct {
	name string
	fn   func(*CPU) uint8
}

// Name returns the disassembly string for the instruction.
func (i Instruction) Name() string {
	return i.name
}

// Execute runs the instruction against the given CPU and returns the machine
// cycles consumed.
func (i Instruction) Execute(c *CPU) uint8 {
	return i.fn(c)
}

// InstructionSet is the base opcode table, indexed by the opcode byte.
// InstructionSetCB is the extended table reached through the 0xCB prefix.
var (
	InstructionSet   [256]Instruction
	InstructionSetCB [256]Instruction
)

// DefineInstruction registers an executor in the base table.
func DefineInstruction(opcode uint8, name string, fn func(*CPU) uint8) {
	InstructionSet[opcode] = Instruction{name: name, fn: fn}
}

// DefineInstructionCB registers an executor in the extended table.
func DefineInstructionCB(opcode uint8, name string, fn func(*CPU) uint8) {
	InstructionSetCB[opcode] = Instruction{name: name, fn: fn}
}

// unimplementedOpcode builds the filler executor for table slots with no
// instruction behind them: it logs a warning and consumes no cycles, so a run
// skips over the byte as if it were a zero-cycle NOP.
func unimplementedOpcode(opcode uint8) Instruction {
	name := fmt.Sprintf("UNIMPLEMENTED(0x%02X)", opcode)
	return Instruction{
		name: name,
		fn: func(c *CPU) uint8 {
			c.log.Errorf("executed unimplemented opcode 0x%02X at PC %#04x", opcode, c.PC-1)
			return 0
		},
	}
}

// InitTables plugs every empty slot in both tables with the unimplemented
// filler. NewCPU does this itself; callers that only read the tables, like a
// disassembler, call it directly.
func InitTables() {
	fillOnce.Do(fillUnimplemented)
}

func fillUnimplemented() {
	for i := range InstructionSet {
		if InstructionSet[i].fn == nil {
			InstructionSet[i] = unimplementedOpcode(uint8(i))
		}
	}
	for i := range InstructionSetCB {
		if InstructionSetCB[i].fn == nil {
			InstructionSetCB[i] = unimplementedOpcode(uint8(i))
		}
	}
}

func init() {
	DefineInstruction(0x00, "NOP", func(c *CPU) uint8 { return 1 })
	DefineInstruction(0x10, "STOP", func(c *CPU) uint8 {
		// the padding byte after STOP is consumed and ignored
		c.fetch()
		c.halted = true
		return 1
	})
	DefineInstruction(0x27, "DAA", func(c *CPU) uint8 {
		c.decimalAdjust()
		return 1
	})
	DefineInstruction(0x2F, "CPL", func(c *CPU) uint8 {
		c.A = ^c.A
		c.setFlag(FlagSubtract)
		c.setFlag(FlagHalfCarry)
		return 1
	})
	DefineInstruction(0x37, "SCF", func(c *CPU) uint8 {
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
		c.setFlag(FlagCarry)
		return 1
	})
	DefineInstruction(0x3F, "CCF", func(c *CPU) uint8 {
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
		c.F ^= FlagCarry
		return 1
	})
	DefineInstruction(0x76, "HALT", func(c *CPU) uint8 {
		c.halted = true
		return 1
	})
	DefineInstruction(0xF3, "DI", func(c *CPU) uint8 {
		c.irqEnabled = false
		c.eiPending = false
		return 1
	})
	DefineInstruction(0xFB, "EI", func(c *CPU) uint8 {
		c.eiPending = true
		return 1
	})
}

// decimalAdjust corrects A after BCD arithmetic, using the N flag to tell
// which direction the last operation went.
func (c *CPU) decimalAdjust() {
	carry := c.isFlagSet(FlagCarry)
	if !c.isFlagSet(FlagSubtract) {
		if carry || c.A > 0x99 {
			c.A += 0x60
			carry = true
		}
		if c.isFlagSet(FlagHalfCarry) || c.A&0x0F > 0x09 {
			c.A += 0x06
		}
	} else {
		if carry {
			c.A -= 0x60
		}
		if c.isFlagSet(FlagHalfCarry) {
			c.A -= 0x06
		}
	}
	c.setFlags(c.A == 0, c.isFlagSet(FlagSubtract), false, carry)
}
