package cartridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHeader(t *testing.T) {
	rom := makeROM(MBC1RAMBATT, 0x02, 0x03)
	h := parseHeader(rom[0x100:0x150])

	assert.Equal(t, "BANKTEST", h.Title)
	assert.Equal(t, MBC1RAMBATT, h.CartridgeType)
	assert.Equal(t, uint(128*1024), h.ROMSize)
	assert.Equal(t, uint(32*1024), h.RAMSize)
	assert.Equal(t, FlagOnlyDMG, h.GBMode)
	assert.Equal(t, "DMG", h.Hardware())
}

func TestParseHeaderCGBFlags(t *testing.T) {
	rom := makeROM(ROM, 0, 0)
	rom[0x143] = 0x80
	h := parseHeader(rom[0x100:0x150])
	assert.Equal(t, FlagSupportsCGB, h.GBMode)
	assert.Equal(t, "CGB", h.Hardware())

	rom[0x143] = 0xC0
	h = parseHeader(rom[0x100:0x150])
	assert.Equal(t, FlagOnlyCGB, h.GBMode)
}

func TestParseHeaderWrongLengthPanics(t *testing.T) {
	assert.Panics(t, func() { parseHeader(make([]byte, 0x10)) })
}

func TestChecksum(t *testing.T) {
	rom := makeROM(ROM, 0, 0)
	h := parseHeader(rom[0x100:0x150])
	assert.Equal(t, h.HeaderChecksum, checksum(rom[0x100:0x150]))

	rom[0x134] = 'X'
	assert.NotEqual(t, h.HeaderChecksum, checksum(rom[0x100:0x150]))
}

func TestTitleTrimsPadding(t *testing.T) {
	rom := makeROM(ROM, 0, 0)
	copy(rom[0x134:0x144], make([]byte, 16))
	copy(rom[0x134:], "AB")
	h := parseHeader(rom[0x100:0x150])
	assert.Equal(t, "AB", h.Title)
}

func TestGlobalChecksumByteOrder(t *testing.T) {
	rom := makeROM(ROM, 0, 0)
	rom[0x14E] = 0x12
	rom[0x14F] = 0x34
	h := parseHeader(rom[0x100:0x150])
	assert.Equal(t, uint16(0x1234), h.GlobalChecksum)
}
