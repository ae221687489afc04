package joypad

import (
	"github.com/emberhex/dmgcore/internal/interrupts"
	"github.com/emberhex/dmgcore/internal/types"
)

// Button identifies one of the eight inputs in the 2x4 key matrix.
type Button uint8

const (
	ButtonA Button = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonRight
	ButtonLeft
	ButtonUp
	ButtonDown
)

// State implements the P1 joypad register. The register selects one of two
// matrix halves with bits 4 and 5; the selected keys read active-low in the
// low nibble.
type State struct {
	// select lines, active-low as written by the program
	selectButtons bool
	selectDPad    bool

	buttons uint8
	dpad    uint8

	irq *interrupts.Service
}

// NewState returns a joypad with nothing pressed.
func NewState(irq *interrupts.Service) *State {
	return &State{irq: irq}
}

// Press marks a button held and requests a joypad interrupt.
func (s *State) Press(b Button) {
	if b <= ButtonStart {
		s.buttons |= 1 << b
	} else {
		s.dpad |= 1 << (b - ButtonRight)
	}
	s.irq.Request(interrupts.JoypadFlag)
}

// Release marks a button no longer held.
func (s *State) Release(b Button) {
	if b <= ButtonStart {
		s.buttons &^= 1 << b
	} else {
		s.dpad &^= 1 << (b - ButtonRight)
	}
}

// Read returns the P1 register: selected matrix keys in the low nibble,
// active low.
func (s *State) Read(address uint16) uint8 {
	if address != types.P1 {
		return 0xFF
	}
	value := uint8(0xFF)
	if s.selectButtons {
		value &^= types.Bit5
		value &= ^s.buttons | 0xF0
	}
	if s.selectDPad {
		value &^= types.Bit4
		value &= ^s.dpad | 0xF0
	}
	return value
}

// Write sets the matrix select lines from bits 4 and 5, active low.
func (s *State) Write(address uint16, value uint8) {
	if address != types.P1 {
		return
	}
	s.selectButtons = value&types.Bit5 == 0
	s.selectDPad = value&types.Bit4 == 0
}
