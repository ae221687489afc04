package gameboy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberhex/dmgcore/internal/cartridge"
	"github.com/emberhex/dmgcore/internal/serial"
	"github.com/emberhex/dmgcore/pkg/log"
)

// makeROM builds a 32kB image with a valid header and the given program at
// 0x0150. The entry point jumps over the header to reach it.
func makeROM(program []byte) []byte {
	rom := make([]byte, 32*1024)

	rom[0x100] = 0xC3 // JP 0x0150
	rom[0x101] = 0x50
	rom[0x102] = 0x01

	copy(rom[0x134:], "INTEGRATION")
	rom[0x147] = uint8(cartridge.ROMRAM)
	rom[0x149] = 0x02 // 8kB of external RAM

	var sum uint8
	for i := 0x134; i <= 0x14C; i++ {
		sum = sum - rom[i] - 1
	}
	rom[0x14D] = sum

	copy(rom[0x150:], program)
	return rom
}

func newMachine(t *testing.T, program []byte, opts ...Option) *GameBoy {
	t.Helper()
	cart, err := cartridge.New(makeROM(program), log.NewNullLogger())
	require.NoError(t, err)
	opts = append(opts, WithLogger(log.NewNullLogger()))
	return New(cart, opts...)
}

// A small program that fills external RAM with the Fibonacci sequence and
// halts once it reaches 89.
func TestRunFibonacciProgram(t *testing.T) {
	gb := newMachine(t, []byte{
		0x31, 0xFE, 0xFF, // 0150: LD SP, 0xFFFE
		0x21, 0x00, 0xB0, // 0153: LD HL, 0xB000
		0x3E, 0x01, //       0156: LD A, 1
		0x47,       //       0158: LD B, A
		0x22,       //       0159: LD (HL+), A
		0x22,       //       015A: LD (HL+), A
		0xCD, 0x66, 0x01, // 015B: CALL 0x0166
		0x77,       //       015E: LD (HL), A
		0x23,       //       015F: INC HL
		0xFE, 0x59, //       0160: CP 89
		0xC2, 0x5B, 0x01, // 0162: JP NZ, 0x015B
		0x76,       //       0165: HALT
		0x4F,       //       0166: LD C, A
		0x80,       //       0167: ADD A, B
		0x41,       //       0168: LD B, C
		0xC9,       //       0169: RET
	})

	steps := gb.Run(10000)
	assert.Less(t, steps, uint64(10000), "the program halts before the step limit")
	assert.True(t, gb.CPU.Halted())

	want := []uint8{1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89}
	for i, v := range want {
		assert.Equal(t, v, gb.MMU.Read(0xB000+uint16(i)), "fib(%d)", i)
	}
}

// Writing SB then starting a transfer over SC delivers the byte to the
// attached device after 1024 T-cycles.
func TestSerialOutputReachesDevice(t *testing.T) {
	buffer := serial.NewBuffer()
	gb := newMachine(t, []byte{
		0x3E, 0x48, // 0150: LD A, 'H'
		0xE0, 0x01, // 0152: LDH (0x01), A
		0x3E, 0x81, // 0154: LD A, 0x81
		0xE0, 0x02, // 0156: LDH (0x02), A
		0x06, 0x00, // 0158: LD B, 0
		0x05,       // 015A: DEC B
		0x20, 0xFD, // 015B: JR NZ, 0x015A
		0x76, //       015D: HALT
	}, WithSerialDevice(buffer))

	gb.Run(10000)
	assert.Equal(t, "H", buffer.String())
}

func TestRunStopsAtBreakpoint(t *testing.T) {
	gb := newMachine(t, []byte{0x40}, Debug()) // LD B, B

	steps := gb.Run(100)
	assert.True(t, gb.CPU.DebugBreakpoint)
	assert.Equal(t, uint64(2), steps, "the entry jump plus the breakpoint itself")
}

// without the debug option LD B, B is an ordinary load
func TestBreakpointNeedsDebugMode(t *testing.T) {
	gb := newMachine(t, []byte{0x40, 0x76}) // LD B, B then HALT

	gb.Run(100)
	assert.False(t, gb.CPU.DebugBreakpoint)
	assert.True(t, gb.CPU.Halted())
}
