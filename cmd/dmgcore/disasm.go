package main

import (
	"fmt"
	"strings"

	"github.com/emberhex/dmgcore/internal/cpu"
	"github.com/emberhex/dmgcore/pkg/utils"
)

type disasmCmd struct {
	ROM string `arg:"" type:"path" help:"Path to the ROM image."`

	Offset uint32 `default:"256" help:"Byte offset to start disassembling at."`
	Count  uint32 `default:"32" help:"Number of instructions to decode."`
}

func (d *disasmCmd) Run() error {
	rom, err := utils.LoadFile(d.ROM)
	if err != nil {
		return err
	}
	if d.Offset >= uint32(len(rom)) {
		return fmt.Errorf("offset %#06x is beyond the end of the %d byte ROM", d.Offset, len(rom))
	}

	cpu.InitTables()

	pos := d.Offset
	for n := uint32(0); n < d.Count && pos < uint32(len(rom)); n++ {
		length, name := decode(rom, pos)
		raw := make([]string, 0, 3)
		for i := uint32(0); i < length; i++ {
			raw = append(raw, fmt.Sprintf("%02X", rom[pos+i]))
		}
		fmt.Printf("%#06x  %-8s  %s\n", pos, strings.Join(raw, " "), name)
		pos += length
	}
	return nil
}

// decode returns the byte length and rendered mnemonic of the instruction at
// pos, substituting immediate operands from the ROM bytes that follow the
// opcode. Truncated immediates at the end of the image decode as 0x00.
func decode(rom []byte, pos uint32) (uint32, string) {
	opcode := rom[pos]
	if opcode == 0xCB {
		if pos+1 < uint32(len(rom)) {
			return 2, cpu.InstructionSetCB[rom[pos+1]].Name()
		}
		return 1, "PREFIX CB"
	}

	name := cpu.InstructionSet[opcode].Name()
	length := uint32(1) + operandLength(name)

	operand := func(i uint32) uint8 {
		if pos+i < uint32(len(rom)) {
			return rom[pos+i]
		}
		return 0
	}

	switch {
	case strings.Contains(name, "d16") || strings.Contains(name, "a16"):
		value := uint16(operand(1)) | uint16(operand(2))<<8
		name = strings.NewReplacer("d16", fmt.Sprintf("$%04X", value), "a16", fmt.Sprintf("$%04X", value)).Replace(name)
	case strings.Contains(name, "d8") || strings.Contains(name, "a8"):
		name = strings.NewReplacer("d8", fmt.Sprintf("$%02X", operand(1)), "a8", fmt.Sprintf("$%02X", operand(1))).Replace(name)
	case strings.HasPrefix(name, "JR"):
		// relative jumps render as the resolved absolute target
		target := pos + length + uint32(int32(int8(operand(1))))
		name = strings.Replace(name, "r8", fmt.Sprintf("$%04X", target&0xFFFF), 1)
	case strings.Contains(name, "r8"):
		name = strings.Replace(name, "r8", fmt.Sprintf("%+d", int8(operand(1))), 1)
	}
	return length, name
}

// operandLength returns how many immediate bytes follow the opcode, derived
// from the operand placeholder in the mnemonic.
func operandLength(name string) uint32 {
	switch {
	case strings.Contains(name, "d16"), strings.Contains(name, "a16"):
		return 2
	case strings.Contains(name, "d8"), strings.Contains(name, "a8"), strings.Contains(name, "r8"):
		return 1
	case strings.HasPrefix(name, "STOP"):
		return 1
	}
	return 0
}
