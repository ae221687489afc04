package cartridge

import "fmt"

// Flag describes which hardware generation a cartridge targets.
type Flag uint8

const (
	FlagOnlyDMG Flag = iota
	FlagSupportsCGB
	FlagOnlyCGB
)

// Type is the cartridge type byte at 0x0147, naming the mapper and the
// presence of RAM, a battery or a timer.
type Type uint8

const (
	ROM               Type = 0x00
	MBC1              Type = 0x01
	MBC1RAM           Type = 0x02
	MBC1RAMBATT       Type = 0x03
	MBC2              Type = 0x05
	MBC2BATT          Type = 0x06
	ROMRAM            Type = 0x08
	ROMRAMBATT        Type = 0x09
	MMM01             Type = 0x0B
	MMM01RAM          Type = 0x0C
	MMM01RAMBATT      Type = 0x0D
	MBC3TIMERBATT     Type = 0x0F
	MBC3TIMERRAMBATT  Type = 0x10
	MBC3              Type = 0x11
	MBC3RAM           Type = 0x12
	MBC3RAMBATT       Type = 0x13
	MBC5              Type = 0x19
	MBC5RAM           Type = 0x1A
	MBC5RAMBATT       Type = 0x1B
	MBC5RUMBLE        Type = 0x1C
	MBC5RUMBLERAM     Type = 0x1D
	MBC5RUMBLERAMBATT Type = 0x1E
)

var ramSizeMap = map[uint8]uint{
	0x00: 0,
	0x02: 8 * 1024,
	0x03: 32 * 1024,
	0x04: 128 * 1024,
	0x05: 64 * 1024,
}

// Header represents the cartridge header located at 0x0100-0x014F. It names
// the game and describes the mapper hardware the program expects.
type Header struct {
	// 0x0134-0x0143 - Title of the game
	Title string

	// 0x0143 - GBMode of the game. In older cartridges this byte was part
	// of the title; the Colour Game Boy interprets it to determine
	// compatibility.
	GBMode Flag

	// 0x0144-0x0145 - NewLicenseeCode of the game.
	NewLicenseeCode string

	SGBFlag         bool
	CartridgeType   Type
	ROMSize         uint
	RAMSize         uint
	CountryCode     uint8
	OldLicenseeCode uint8
	MaskROMVersion  uint8
	HeaderChecksum  uint8
	GlobalChecksum  uint16
}

// parseHeader parses the 0x50 bytes starting at 0x0100.
func parseHeader(header []byte) Header {
	h := Header{}

	if len(header) != 0x50 {
		panic(fmt.Sprintf("invalid header length: %d", len(header)))
	}

	switch header[0x43] {
	case 0x80:
		h.GBMode = FlagSupportsCGB
	case 0xC0:
		h.GBMode = FlagOnlyCGB
	default:
		h.GBMode = FlagOnlyDMG
	}

	if h.GBMode == FlagOnlyDMG {
		h.Title = trimTitle(header[0x34:0x44])
	} else {
		h.Title = trimTitle(header[0x34:0x43])
	}

	h.NewLicenseeCode = string(header[0x44:0x46])
	h.SGBFlag = header[0x46] == 0x03
	h.CartridgeType = Type(header[0x47])

	// ROM size is 32kB shifted by the size code
	h.ROMSize = (32 * 1024) << header[0x48]
	h.RAMSize = ramSizeMap[header[0x49]]

	h.CountryCode = header[0x4A]
	h.OldLicenseeCode = header[0x4B]
	h.MaskROMVersion = header[0x4C]
	h.HeaderChecksum = header[0x4D]
	// the global checksum is the one big-endian value in the header
	h.GlobalChecksum = uint16(header[0x4E])<<8 | uint16(header[0x4F])

	return h
}

// trimTitle drops the zero padding from the fixed-width title field.
func trimTitle(raw []byte) string {
	for i, b := range raw {
		if b == 0 {
			return string(raw[:i])
		}
	}
	return string(raw)
}

// checksum recomputes the header checksum over 0x0134-0x014C.
func checksum(header []byte) uint8 {
	var sum uint8
	for i := 0x34; i <= 0x4C; i++ {
		sum = sum - header[i] - 1
	}
	return sum
}

// Hardware returns the hardware generation the cartridge targets.
func (h *Header) Hardware() string {
	switch h.GBMode {
	case FlagOnlyDMG:
		return "DMG"
	case FlagSupportsCGB, FlagOnlyCGB:
		return "CGB"
	default:
		return "Unknown"
	}
}

func (h *Header) String() string {
	return fmt.Sprintf("%s Mode: %s | ROM Size: %dkB | RAM Size: %dkB", h.Title, h.Hardware(), h.ROMSize/1024, h.RAMSize/1024)
}
