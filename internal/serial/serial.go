package serial

import (
	"github.com/emberhex/dmgcore/internal/interrupts"
	"github.com/emberhex/dmgcore/internal/types"
)

// Device is the other end of the link cable. Send receives each bit shifted
// out; Receive supplies the bit shifted in.
type Device interface {
	Send(bit bool)
	Receive() bool
}

// Controller implements the SB/SC serial port. A transfer started with the
// internal clock shifts one bit per 128 T-cycles and requests a serial
// interrupt when all 8 bits have moved.
type Controller struct {
	data    uint8
	control uint8

	counter     uint16
	shiftsLeft  uint8
	transferIns bool

	device Device
	irq    *interrupts.Service
}

// NewController returns a serial Controller attached to the given device.
// A nil device behaves like a disconnected cable: incoming bits read as 1.
func NewController(irq *interrupts.Service, device Device) *Controller {
	return &Controller{irq: irq, device: device}
}

// Tick advances the serial clock by the given number of T-cycles.
func (c *Controller) Tick(ticks uint8) {
	if !c.transferIns {
		return
	}
	c.counter += uint16(ticks)
	for c.counter >= 128 && c.shiftsLeft > 0 {
		c.counter -= 128
		c.shift()
	}
}

// shift moves one bit out and one bit in, MSB first.
func (c *Controller) shift() {
	out := c.data&types.Bit7 != 0
	in := true
	if c.device != nil {
		c.device.Send(out)
		in = c.device.Receive()
	}
	c.data <<= 1
	if in {
		c.data |= 1
	}

	c.shiftsLeft--
	if c.shiftsLeft == 0 {
		c.transferIns = false
		c.control &^= types.Bit7
		c.irq.Request(interrupts.SerialFlag)
	}
}

// Read returns the value of the SB or SC register.
func (c *Controller) Read(address uint16) uint8 {
	switch address {
	case types.SB:
		return c.data
	case types.SC:
		return c.control | 0x7E
	}
	return 0xFF
}

// Write sets the value of the SB or SC register. Writing SC with bit 7 and
// bit 0 set starts a transfer on the internal clock.
func (c *Controller) Write(address uint16, value uint8) {
	switch address {
	case types.SB:
		c.data = value
	case types.SC:
		c.control = value & 0x81
		if value&types.Bit7 != 0 && value&types.Bit0 != 0 {
			c.transferIns = true
			c.counter = 0
			c.shiftsLeft = 8
		}
	}
}
