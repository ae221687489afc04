package cartridge

import (
	"github.com/pkg/errors"

	"github.com/emberhex/dmgcore/pkg/log"
	"github.com/emberhex/dmgcore/pkg/utils"
)

// LoadedCartridge is a Cartridge read from disk: it knows its fingerprint
// and where its battery save lives.
type LoadedCartridge struct {
	Cartridge
	Fingerprint uint64

	savePath string
}

// NewFromFile loads a ROM image from disk, decompressing if necessary, and
// restores any battery save found beside it.
func NewFromFile(path string, logger log.Logger) (*LoadedCartridge, error) {
	rom, err := utils.LoadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "loading ROM image")
	}

	cart, err := New(rom, logger)
	if err != nil {
		return nil, err
	}

	lc := &LoadedCartridge{
		Cartridge:   cart,
		Fingerprint: Fingerprint(rom),
	}
	lc.savePath = SavePath(path, lc.Fingerprint)
	if err := lc.readSave(); err != nil {
		return nil, err
	}
	return lc, nil
}
