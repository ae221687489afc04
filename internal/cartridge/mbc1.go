package cartridge

// MemoryBankedCartridge1 implements the MBC1 mapper: up to 2MB of ROM in
// 16kB banks and up to 32kB of RAM in 8kB banks, with a shared 2-bit
// register that extends either the ROM bank or selects the RAM bank
// depending on the banking mode.
type MemoryBankedCartridge1 struct {
	rom     []byte
	romBank uint32

	ram        []byte
	ramBank    uint32
	ramEnabled bool

	// advanced banking mode routes the 2-bit register to RAM banking
	advancedBanking bool

	header Header
}

// NewMemoryBankedCartridge1 returns a new MBC1 cartridge.
func NewMemoryBankedCartridge1(rom []byte, header Header) *MemoryBankedCartridge1 {
	return &MemoryBankedCartridge1{
		rom:     rom,
		romBank: 1,
		ram:     make([]byte, header.RAMSize),
		header:  header,
	}
}

// Read returns a byte from the fixed bank, the switchable bank or the
// selected RAM bank.
func (m *MemoryBankedCartridge1) Read(address uint16) uint8 {
	switch {
	case address < 0x4000:
		return m.rom[address]
	case address < 0x8000:
		return m.rom[(uint32(address-0x4000)+m.romBank*0x4000)%uint32(len(m.rom))]
	case address >= 0xA000 && address < 0xC000:
		if m.ramEnabled && len(m.ram) > 0 {
			return m.ram[(uint32(address-0xA000)+m.ramBank*0x2000)%uint32(len(m.ram))]
		}
	}
	return 0xFF
}

// Write interprets the address as a mapper command: RAM enable, ROM bank
// select, RAM bank / upper ROM bits, or banking mode.
func (m *MemoryBankedCartridge1) Write(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		m.ramEnabled = value&0x0F == 0x0A
	case address < 0x4000:
		// lower 5 bits of the ROM bank; bank 0 is never selectable here
		m.romBank = m.romBank&0x60 | uint32(value&0x1F)
		if m.romBank&0x1F == 0 {
			m.romBank++
		}
	case address < 0x6000:
		if m.advancedBanking && len(m.ram) > 0x2000 {
			m.ramBank = uint32(value & 0x03)
		} else {
			m.romBank = m.romBank&0x1F | uint32(value&0x03)<<5
		}
	case address < 0x8000:
		m.advancedBanking = value&0x01 == 0x01
		if !m.advancedBanking {
			m.ramBank = 0
		}
	case address >= 0xA000 && address < 0xC000:
		if m.ramEnabled && len(m.ram) > 0 {
			m.ram[(uint32(address-0xA000)+m.ramBank*0x2000)%uint32(len(m.ram))] = value
		}
	}
}

// Save returns the RAM of the cartridge.
func (m *MemoryBankedCartridge1) Save() []byte {
	return m.ram
}

// Load loads the RAM of the cartridge.
func (m *MemoryBankedCartridge1) Load(data []byte) {
	copy(m.ram, data)
}

// Header returns the parsed cartridge header.
func (m *MemoryBankedCartridge1) Header() Header {
	return m.header
}
