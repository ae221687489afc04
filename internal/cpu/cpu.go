package cpu

import (
	"fmt"
	"sync"

	"github.com/emberhex/dmgcore/internal/interrupts"
	"github.com/emberhex/dmgcore/internal/types"
	"github.com/emberhex/dmgcore/pkg/log"
)

// Bus is the memory interface consumed by the CPU. Both operations are total
// over the 16-bit address space and never fail; side effects (banking, IO
// register writes) are the implementor's business.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// CPU represents the Sharp LR35902. It holds the register file, the stack and
// program counters, the interrupt master enable and halt state, and the
// running machine-cycle total.
type CPU struct {
	types.Registers
	SP uint16
	PC uint16

	irqEnabled bool
	eiPending  bool
	halted     bool
	cycles     uint64

	bus Bus
	irq *interrupts.Service
	log log.Logger

	// Debug turns LD B, B into a breakpoint.
	Debug           bool
	DebugBreakpoint bool
}

// Option configures a CPU.
type Option func(*CPU)

// WithLogger sets the logger used for unimplemented opcode warnings.
func WithLogger(l log.Logger) Option {
	return func(c *CPU) {
		c.log = l
	}
}

// WithDebug enables the LD B, B breakpoint.
func WithDebug() Option {
	return func(c *CPU) {
		c.Debug = true
	}
}

var fillOnce sync.Once

// NewCPU returns a new CPU connected to the given bus and interrupt service.
// The interrupt service may be nil, in which case the CPU never vectors and
// HALT sleeps until reset.
func NewCPU(bus Bus, irq *interrupts.Service, opts ...Option) *CPU {
	InitTables()
	c := &CPU{
		bus: bus,
		irq: irq,
		log: log.New(),
	}
	c.Registers.Init()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// registers matching the state the boot ROM leaves behind
const (
	resetA  = 0x01
	resetF  = 0xB0
	resetB  = 0x00
	resetC  = 0x13
	resetD  = 0x00
	resetE  = 0xD8
	resetH  = 0x01
	resetL  = 0x4D
	resetSP = 0xFFFE
	resetPC = 0x0100
)

var resetWrites = []struct {
	addr  uint16
	value uint8
}{
	{types.NR10, 0x80}, {types.NR11, 0xBF}, {types.NR12, 0xF3}, {types.NR14, 0xBF},
	{types.NR21, 0x3F}, {types.NR24, 0xBF}, {types.NR30, 0x7F}, {types.NR31, 0xFF},
	{types.NR32, 0x9F}, {types.NR34, 0xBF}, {types.NR41, 0xFF}, {types.NR44, 0xBF},
	{types.NR50, 0x77}, {types.NR51, 0xF3}, {types.NR52, 0xF1},
	{types.LCDC, 0x91}, {types.BGP, 0xFC}, {types.OBP0, 0xFF}, {types.OBP1, 0xFF},
}

// Reset restores the post-boot register values and replays the canonical
// power-up IO state onto the bus.
func (c *CPU) Reset() {
	c.A = resetA
	c.F = resetF
	c.B = resetB
	c.C = resetC
	c.D = resetD
	c.E = resetE
	c.H = resetH
	c.L = resetL
	c.SP = resetSP
	c.PC = resetPC

	c.irqEnabled = false
	c.eiPending = false
	c.halted = false
	c.cycles = 0

	for _, w := range resetWrites {
		c.bus.Write(w.addr, w.value)
	}
}

// Cycles returns the total number of machine cycles executed since reset.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// Halted reports whether the CPU is sleeping after a HALT.
func (c *CPU) Halted() bool {
	return c.halted
}

// Step executes a single instruction and returns the number of machine cycles
// it consumed. A pending enabled interrupt is serviced first; a halted CPU
// with nothing pending burns one cycle without fetching.
func (c *CPU) Step() uint8 {
	if cycles := c.serviceInterrupt(); cycles > 0 {
		c.cycles += uint64(cycles)
		return cycles
	}

	if c.halted {
		if c.irq != nil && c.irq.Pending() {
			c.halted = false
		} else {
			c.cycles++
			return 1
		}
	}

	// EI takes effect after the instruction that follows it
	enableIRQ := c.eiPending

	var instr Instruction
	if opcode := c.fetch(); opcode == 0xCB {
		instr = InstructionSetCB[c.fetch()]
	} else {
		instr = InstructionSet[opcode]
	}
	cycles := instr.fn(c)
	c.cycles += uint64(cycles)

	// a DI executed in the delay slot cancels the pending enable
	if enableIRQ && c.eiPending {
		c.irqEnabled = true
		c.eiPending = false
	}
	return cycles
}

// serviceInterrupt vectors to the highest-priority pending interrupt when the
// master enable is set, returning the 5 machine cycles the dispatch costs.
func (c *CPU) serviceInterrupt() uint8 {
	if c.irq == nil || !c.irqEnabled || !c.irq.Pending() {
		return 0
	}
	c.halted = false
	c.irqEnabled = false
	c.pushStack(c.PC)
	c.PC = c.irq.Vector()
	return 5
}

// fetch reads the byte at PC and advances PC, wrapping at the top of the
// address space.
func (c *CPU) fetch() uint8 {
	value := c.bus.Read(c.PC)
	c.PC++
	return value
}

// fetch16 reads a little-endian 16-bit immediate from the PC stream.
func (c *CPU) fetch16() uint16 {
	low := c.fetch()
	high := c.fetch()
	return merge(low, high)
}

// pushStack pushes a 16-bit value onto the stack, low byte at the new SP.
func (c *CPU) pushStack(value uint16) {
	if c.SP < 2 {
		panic(fmt.Sprintf("cpu: stack overflow pushing with SP=%#04x", c.SP))
	}
	c.SP -= 2
	low, high := split(value)
	c.bus.Write(c.SP, low)
	c.bus.Write(c.SP+1, high)
}

// popStack pops a 16-bit value off the stack.
func (c *CPU) popStack() uint16 {
	if c.SP == resetSP {
		panic("cpu: stack underflow popping with SP at reset value")
	}
	low := c.bus.Read(c.SP)
	high := c.bus.Read(c.SP + 1)
	c.SP += 2
	return merge(low, high)
}
