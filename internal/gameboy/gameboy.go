package gameboy

import (
	"github.com/emberhex/dmgcore/internal/cartridge"
	"github.com/emberhex/dmgcore/internal/cpu"
	"github.com/emberhex/dmgcore/internal/interrupts"
	"github.com/emberhex/dmgcore/internal/joypad"
	"github.com/emberhex/dmgcore/internal/mmu"
	"github.com/emberhex/dmgcore/internal/serial"
	"github.com/emberhex/dmgcore/internal/timer"
	"github.com/emberhex/dmgcore/pkg/log"
)

// GameBoy wires a cartridge, the bus and the CPU together with the timer,
// serial and joypad components, and steps them in lockstep.
type GameBoy struct {
	CPU       *cpu.CPU
	MMU       *mmu.MMU
	Timer     *timer.Controller
	Serial    *serial.Controller
	Joypad    *joypad.State
	IRQ       *interrupts.Service
	Cartridge cartridge.Cartridge

	log log.Logger
}

// Option configures a GameBoy at build time.
type Option func(*config)

type config struct {
	logger       log.Logger
	serialDevice serial.Device
	debug        bool
}

// WithLogger routes all component logging through the given logger.
func WithLogger(l log.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithSerialDevice attaches the other end of the link cable.
func WithSerialDevice(d serial.Device) Option {
	return func(c *config) {
		c.serialDevice = d
	}
}

// Debug enables the LD B, B breakpoint in the CPU.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// New builds a machine around the given cartridge and applies the power-up
// reset, leaving PC at the cartridge entry point.
func New(cart cartridge.Cartridge, opts ...Option) *GameBoy {
	cfg := config{logger: log.New()}
	for _, opt := range opts {
		opt(&cfg)
	}

	irq := interrupts.NewService()
	t := timer.NewController(irq)
	s := serial.NewController(irq, cfg.serialDevice)
	j := joypad.NewState(irq)
	bus := mmu.NewMMU(cart, irq, t, s, j, cfg.logger)

	cpuOpts := []cpu.Option{cpu.WithLogger(cfg.logger)}
	if cfg.debug {
		cpuOpts = append(cpuOpts, cpu.WithDebug())
	}
	core := cpu.NewCPU(bus, irq, cpuOpts...)
	core.Reset()

	return &GameBoy{
		CPU:       core,
		MMU:       bus,
		Timer:     t,
		Serial:    s,
		Joypad:    j,
		IRQ:       irq,
		Cartridge: cart,
		log:       cfg.logger,
	}
}

// Step executes one CPU instruction and advances the components by the
// matching number of T-cycles, 4 per machine cycle.
func (g *GameBoy) Step() uint8 {
	cycles := g.CPU.Step()
	ticks := cycles * 4
	g.Timer.Tick(ticks)
	g.Serial.Tick(ticks)
	return cycles
}

// Run steps the machine until maxSteps instructions have executed, the CPU
// deadlocks in HALT with no interrupt able to wake it, or a debug breakpoint
// fires. It returns the number of steps taken.
func (g *GameBoy) Run(maxSteps uint64) uint64 {
	var steps uint64
	for steps < maxSteps {
		if g.CPU.DebugBreakpoint {
			g.log.Infof("breakpoint after %d steps, %d cycles", steps, g.CPU.Cycles())
			break
		}
		if g.CPU.Halted() && g.IRQ.Enable&0x1F == 0 {
			break
		}
		g.Step()
		steps++
	}
	return steps
}
