package main

import (
	"fmt"

	"github.com/emberhex/dmgcore/internal/cartridge"
	"github.com/emberhex/dmgcore/pkg/log"
	"github.com/emberhex/dmgcore/pkg/utils"
)

type infoCmd struct {
	ROM string `arg:"" type:"path" help:"Path to the ROM image."`
}

func (i *infoCmd) Run() error {
	rom, err := utils.LoadFile(i.ROM)
	if err != nil {
		return err
	}
	cart, err := cartridge.New(rom, log.NewNullLogger())
	if err != nil {
		return err
	}

	h := cart.Header()
	fmt.Printf("Title:        %s\n", h.Title)
	fmt.Printf("Hardware:     %s\n", h.Hardware())
	fmt.Printf("Mapper:       %#02x\n", uint8(h.CartridgeType))
	fmt.Printf("ROM size:     %d kB\n", h.ROMSize/1024)
	fmt.Printf("RAM size:     %d kB\n", h.RAMSize/1024)
	fmt.Printf("Licensee:     %s (old %#02x)\n", h.NewLicenseeCode, h.OldLicenseeCode)
	fmt.Printf("Version:      %d\n", h.MaskROMVersion)
	fmt.Printf("Checksum:     %#02x (global %#04x)\n", h.HeaderChecksum, h.GlobalChecksum)
	fmt.Printf("Fingerprint:  %016x\n", cartridge.Fingerprint(rom))
	return nil
}
