package cartridge

import (
	"github.com/cespare/xxhash"
	"github.com/pkg/errors"

	"github.com/emberhex/dmgcore/pkg/log"
)

// Cartridge routes reads in the 0x0000-0x7FFF and 0xA000-0xBFFF ranges, with
// writes to the ROM area interpreted as mapper commands.
type Cartridge interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)

	// Save returns the battery-backed RAM, and Load restores it.
	Save() []byte
	Load(data []byte)

	Header() Header
}

// New parses the header of the given ROM image and returns the cartridge
// implementation its type byte asks for.
func New(rom []byte, logger log.Logger) (Cartridge, error) {
	if len(rom) < 0x150 {
		return nil, errors.Errorf("cartridge: image of %d bytes is too small to hold a header", len(rom))
	}

	header := parseHeader(rom[0x100:0x150])
	if sum := checksum(rom[0x100:0x150]); sum != header.HeaderChecksum {
		logger.Errorf("cartridge: header checksum mismatch: computed %#02x, header says %#02x", sum, header.HeaderChecksum)
	}
	logger.Infof("loaded %q (%s, mapper %#02x, fingerprint %016x)", header.Title, header.Hardware(), uint8(header.CartridgeType), Fingerprint(rom))

	switch header.CartridgeType {
	case ROM, ROMRAM, ROMRAMBATT:
		return NewROMCartridge(rom, header), nil
	case MBC1, MBC1RAM, MBC1RAMBATT:
		return NewMemoryBankedCartridge1(rom, header), nil
	case MBC3, MBC3RAM, MBC3RAMBATT, MBC3TIMERBATT, MBC3TIMERRAMBATT:
		return NewMemoryBankedCartridge3(rom, header), nil
	case MBC5, MBC5RAM, MBC5RAMBATT, MBC5RUMBLE, MBC5RUMBLERAM, MBC5RUMBLERAMBATT:
		return NewMemoryBankedCartridge5(rom, header), nil
	default:
		return nil, errors.Errorf("cartridge: unsupported mapper %#02x", uint8(header.CartridgeType))
	}
}

// Fingerprint hashes the ROM image. The value identifies the image in info
// output and names its save file.
func Fingerprint(rom []byte) uint64 {
	return xxhash.Sum64(rom)
}

// romCartridge is a plain 32kB image with optional unbanked RAM.
type romCartridge struct {
	rom    []byte
	ram    []byte
	header Header
}

// NewROMCartridge returns a cartridge with no mapper hardware.
func NewROMCartridge(rom []byte, header Header) Cartridge {
	return &romCartridge{
		rom:    rom,
		ram:    make([]byte, header.RAMSize),
		header: header,
	}
}

func (r *romCartridge) Read(address uint16) uint8 {
	switch {
	case address < 0x8000:
		if int(address) < len(r.rom) {
			return r.rom[address]
		}
		return 0xFF
	case address >= 0xA000 && address < 0xC000:
		if idx := int(address - 0xA000); idx < len(r.ram) {
			return r.ram[idx]
		}
		return 0xFF
	}
	return 0xFF
}

func (r *romCartridge) Write(address uint16, value uint8) {
	if address >= 0xA000 && address < 0xC000 {
		if idx := int(address - 0xA000); idx < len(r.ram) {
			r.ram[idx] = value
		}
	}
	// writes into the ROM range have no mapper to talk to
}

func (r *romCartridge) Save() []byte {
	return r.ram
}

func (r *romCartridge) Load(data []byte) {
	copy(r.ram, data)
}

func (r *romCartridge) Header() Header {
	return r.header
}
