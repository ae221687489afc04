package types

// HardwareAddress represents the address of a hardware register. The hardware
// IO registers are mapped to memory addresses 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

const (
	// P1 is the address of the joypad register. It selects which half of
	// the key matrix is read, and reports the state of the selected keys.
	P1 HardwareAddress = 0xFF00
	// SB is the address of the serial transfer data register.
	SB HardwareAddress = 0xFF01
	// SC is the address of the serial transfer control register.
	SC HardwareAddress = 0xFF02
	// DIV is the address of the divider register. Internally it is a
	// 16-bit counter, but only the upper 8 bits may be read, and any
	// write resets it to 0.
	DIV HardwareAddress = 0xFF04
	// TIMA is the address of the timer counter register. It is
	// incremented at the rate selected by TAC; on overflow it is reloaded
	// from TMA and a timer interrupt is requested.
	TIMA HardwareAddress = 0xFF05
	// TMA is the address of the timer modulo register.
	TMA HardwareAddress = 0xFF06
	// TAC is the address of the timer control register.
	TAC HardwareAddress = 0xFF07
	// IF is the address of the interrupt flag register.
	//
	//  Bit 0: V-Blank Interrupt Request (INT 40h)
	//  Bit 1: LCD STAT Interrupt Request (INT 48h)
	//  Bit 2: Timer Interrupt Request (INT 50h)
	//  Bit 3: Serial Interrupt Request (INT 58h)
	//  Bit 4: Joypad Interrupt Request (INT 60h)
	IF HardwareAddress = 0xFF0F

	NR10 HardwareAddress = 0xFF10
	NR11 HardwareAddress = 0xFF11
	NR12 HardwareAddress = 0xFF12
	NR13 HardwareAddress = 0xFF13
	NR14 HardwareAddress = 0xFF14
	NR21 HardwareAddress = 0xFF16
	NR22 HardwareAddress = 0xFF17
	NR23 HardwareAddress = 0xFF18
	NR24 HardwareAddress = 0xFF19
	NR30 HardwareAddress = 0xFF1A
	NR31 HardwareAddress = 0xFF1B
	NR32 HardwareAddress = 0xFF1C
	NR33 HardwareAddress = 0xFF1D
	NR34 HardwareAddress = 0xFF1E
	NR41 HardwareAddress = 0xFF20
	NR42 HardwareAddress = 0xFF21
	NR43 HardwareAddress = 0xFF22
	NR44 HardwareAddress = 0xFF23
	NR50 HardwareAddress = 0xFF24
	NR51 HardwareAddress = 0xFF25
	NR52 HardwareAddress = 0xFF26

	// LCDC is the address of the LCD control register.
	LCDC HardwareAddress = 0xFF40
	// STAT is the address of the LCD status register.
	STAT HardwareAddress = 0xFF41
	// SCY is the address of the background vertical scroll register.
	SCY HardwareAddress = 0xFF42
	// SCX is the address of the background horizontal scroll register.
	SCX HardwareAddress = 0xFF43
	// LY is the address of the LCD line register.
	LY HardwareAddress = 0xFF44
	// LYC is the address of the LY compare register.
	LYC HardwareAddress = 0xFF45
	// BGP is the address of the background palette register.
	BGP HardwareAddress = 0xFF47
	// OBP0 is the address of the first object palette register.
	OBP0 HardwareAddress = 0xFF48
	// OBP1 is the address of the second object palette register.
	OBP1 HardwareAddress = 0xFF49
	// WY is the address of the window Y position register.
	WY HardwareAddress = 0xFF4A
	// WX is the address of the window X position register.
	WX HardwareAddress = 0xFF4B

	// IE is the address of the interrupt enable register. It shares the
	// bit layout of IF.
	IE HardwareAddress = 0xFFFF
)
