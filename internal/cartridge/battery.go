package cartridge

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// hasBattery reports whether the cartridge type keeps its RAM powered.
func hasBattery(t Type) bool {
	switch t {
	case ROMRAMBATT, MBC1RAMBATT, MBC2BATT, MMM01RAMBATT, MBC3TIMERBATT,
		MBC3TIMERRAMBATT, MBC3RAMBATT, MBC5RAMBATT, MBC5RUMBLERAMBATT:
		return true
	}
	return false
}

// SavePath returns the save file that belongs to the ROM at the given path:
// the ROM name with the extension swapped for the fingerprint and ".sav".
func SavePath(romPath string, fingerprint uint64) string {
	base := strings.TrimSuffix(romPath, filepath.Ext(romPath))
	return fmt.Sprintf("%s-%016x.sav", base, fingerprint)
}

// WriteSave writes the battery-backed RAM beside the ROM. Cartridges without
// a battery are a no-op.
func (c *LoadedCartridge) WriteSave() error {
	if !hasBattery(c.Header().CartridgeType) || len(c.Save()) == 0 {
		return nil
	}
	if err := os.WriteFile(c.savePath, c.Save(), 0o644); err != nil {
		return errors.Wrapf(err, "writing save %s", c.savePath)
	}
	return nil
}

// readSave restores the battery-backed RAM if a save file exists.
func (c *LoadedCartridge) readSave() error {
	if !hasBattery(c.Header().CartridgeType) {
		return nil
	}
	data, err := os.ReadFile(c.savePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "reading save %s", c.savePath)
	}
	c.Load(data)
	return nil
}
