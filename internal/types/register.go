package types

// Register represents a CPU register holding an 8-bit value. The CPU has 8
// registers: A, B, C, D, E, H, L, and F. The F register is special in that it
// holds the flags.
type Register = uint8

// RegisterPair represents a pair of Registers viewed as a single 16-bit
// value. The CPU has 4 register pairs: AF, BC, DE, and HL. The pair holds
// pointers into the underlying Registers, so writing through the pair is
// visible through the 8-bit halves and vice versa.
type RegisterPair struct {
	High *Register
	Low  *Register

	// mask is ANDed into the low register on every 16-bit set. It is 0xFF
	// for all pairs except AF, where the low nibble of F is not writable.
	mask Register
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value) & r.mask
}

// Registers represents the CPU registers.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	AF *RegisterPair
	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
}

// Init wires the register pairs to their 8-bit halves. The AF pair masks the
// low nibble of F on every 16-bit set, as the hardware does.
func (r *Registers) Init() {
	r.AF = &RegisterPair{High: &r.A, Low: &r.F, mask: 0xF0}
	r.BC = &RegisterPair{High: &r.B, Low: &r.C, mask: 0xFF}
	r.DE = &RegisterPair{High: &r.D, Low: &r.E, mask: 0xFF}
	r.HL = &RegisterPair{High: &r.H, Low: &r.L, mask: 0xFF}
}
