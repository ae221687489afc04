package timer

import (
	"github.com/emberhex/dmgcore/internal/interrupts"
	"github.com/emberhex/dmgcore/internal/types"
)

// multiplexer bit of the internal divider for each TAC frequency selection
var triggerBits = [4]uint16{512, 8, 32, 128}

// Controller implements the DIV/TIMA/TMA/TAC timer. DIV is the upper byte of
// a free-running 16-bit divider; TIMA increments on the falling edge of the
// divider bit selected by TAC, and requests a timer interrupt on overflow.
type Controller struct {
	divider uint16

	tima uint8
	tma  uint8
	tac  uint8

	lastEdge bool

	irq *interrupts.Service
}

// NewController returns a new timer Controller wired to the given interrupt
// service.
func NewController(irq *interrupts.Service) *Controller {
	return &Controller{irq: irq}
}

// Tick advances the timer by the given number of T-cycles.
func (c *Controller) Tick(ticks uint8) {
	for i := uint8(0); i < ticks; i++ {
		c.divider++
		c.detectEdge()
	}
}

// detectEdge increments TIMA when the multiplexed divider bit falls while the
// timer is enabled.
func (c *Controller) detectEdge() {
	edge := c.tac&types.Bit2 != 0 && c.divider&triggerBits[c.tac&0x03] != 0
	if c.lastEdge && !edge {
		c.tima++
		if c.tima == 0 {
			c.tima = c.tma
			c.irq.Request(interrupts.TimerFlag)
		}
	}
	c.lastEdge = edge
}

// Read returns the value of a timer register.
func (c *Controller) Read(address uint16) uint8 {
	switch address {
	case types.DIV:
		return uint8(c.divider >> 8)
	case types.TIMA:
		return c.tima
	case types.TMA:
		return c.tma
	case types.TAC:
		return c.tac | 0xF8
	}
	return 0xFF
}

// Write sets the value of a timer register. Writing DIV resets the whole
// internal divider, which can itself produce a falling edge.
func (c *Controller) Write(address uint16, value uint8) {
	switch address {
	case types.DIV:
		c.divider = 0
		c.detectEdge()
	case types.TIMA:
		c.tima = value
	case types.TMA:
		c.tma = value
	case types.TAC:
		c.tac = value & 0x07
		c.detectEdge()
	}
}
