package log

import "fmt"

// Logger is the leveled logging interface used throughout the emulator.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type logger struct {
	debug bool
}

// New returns a Logger that writes to stdout.
func New() Logger {
	return &logger{}
}

// NewDebug returns a Logger that writes to stdout, including debug output.
func NewDebug() Logger {
	return &logger{debug: true}
}

func (l *logger) Infof(format string, args ...interface{}) {
	fmt.Printf("[INFO]\t"+format+"\n", args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	fmt.Printf("[ERROR]\t"+format+"\n", args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	if !l.debug {
		return
	}
	fmt.Printf("[DEBUG]\t"+format+"\n", args...)
}
