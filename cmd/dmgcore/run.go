package main

import (
	"fmt"

	"github.com/emberhex/dmgcore/internal/cartridge"
	"github.com/emberhex/dmgcore/internal/gameboy"
	"github.com/emberhex/dmgcore/internal/serial"
)

type runCmd struct {
	ROM string `arg:"" type:"path" help:"Path to the ROM image."`

	Steps      uint64 `default:"10000000" help:"Maximum number of instructions to execute."`
	SerialEcho bool   `help:"Print everything the ROM sends over the serial port."`
	Breakpoint bool   `help:"Stop when the ROM executes LD B, B."`
}

func (r *runCmd) Run() error {
	logger := newLogger()

	cart, err := cartridge.NewFromFile(r.ROM, logger)
	if err != nil {
		return err
	}

	opts := []gameboy.Option{gameboy.WithLogger(logger)}
	var buffer *serial.Buffer
	if r.SerialEcho {
		buffer = serial.NewBuffer()
		opts = append(opts, gameboy.WithSerialDevice(buffer))
	}
	if r.Breakpoint {
		opts = append(opts, gameboy.Debug())
	}

	gb := gameboy.New(cart, opts...)
	steps := gb.Run(r.Steps)
	logger.Infof("executed %d instructions in %d cycles", steps, gb.CPU.Cycles())

	if buffer != nil {
		fmt.Print(buffer.String())
	}
	return cart.WriteSave()
}
