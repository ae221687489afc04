package interrupts

import "github.com/emberhex/dmgcore/internal/types"

const (
	// VBlankFlag is requested by the PPU at the start of the vertical
	// blanking period.
	VBlankFlag = types.Bit0
	// LCDFlag is requested by the PPU on STAT conditions.
	LCDFlag = types.Bit1
	// TimerFlag is requested when TIMA overflows.
	TimerFlag = types.Bit2
	// SerialFlag is requested when a serial transfer completes.
	SerialFlag = types.Bit3
	// JoypadFlag is requested on a button press.
	JoypadFlag = types.Bit4
)

// Service holds the IF and IE registers and resolves which pending interrupt
// wins. Vector priority runs from bit 0 (VBlank) up to bit 4 (Joypad).
type Service struct {
	// Flag is the IF register (0xFF0F).
	Flag uint8
	// Enable is the IE register (0xFFFF).
	Enable uint8
}

// NewService returns a new Service with nothing requested or enabled.
func NewService() *Service {
	return &Service{}
}

// Request raises the given interrupt flag.
func (s *Service) Request(flag uint8) {
	s.Flag |= flag
}

// Pending reports whether any enabled interrupt is requested.
func (s *Service) Pending() bool {
	return s.Flag&s.Enable&0x1F != 0
}

// Vector acknowledges the highest-priority pending interrupt and returns its
// handler address (0x0040, 0x0048, 0x0050, 0x0058 or 0x0060). It must only be
// called when Pending reports true.
func (s *Service) Vector() uint16 {
	for i := uint8(0); i < 5; i++ {
		if s.Flag&s.Enable&(1<<i) != 0 {
			s.Flag &^= 1 << i
			return 0x0040 + uint16(i)*8
		}
	}
	return 0
}

// Read returns the value of the IF or IE register. The unused high bits of IF
// read as 1, as on hardware.
func (s *Service) Read(address uint16) uint8 {
	switch address {
	case types.IF:
		return s.Flag | 0xE0
	case types.IE:
		return s.Enable
	}
	return 0xFF
}

// Write sets the value of the IF or IE register.
func (s *Service) Write(address uint16, value uint8) {
	switch address {
	case types.IF:
		s.Flag = value & 0x1F
	case types.IE:
		s.Enable = value
	}
}
