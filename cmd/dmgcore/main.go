package main

import (
	"github.com/alecthomas/kong"

	"github.com/emberhex/dmgcore/pkg/log"
)

var cli struct {
	Run    runCmd    `cmd:"" help:"Execute a ROM headlessly."`
	Info   infoCmd   `cmd:"" help:"Print the cartridge header of a ROM."`
	Disasm disasmCmd `cmd:"" help:"Disassemble a slice of a ROM."`

	Debug bool `help:"Enable debug logging."`
}

func newLogger() log.Logger {
	if cli.Debug {
		return log.NewDebug()
	}
	return log.New()
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("dmgcore"),
		kong.Description("A headless Game Boy emulator core."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
