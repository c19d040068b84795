package emulator

import (
	"errors"

	"github.com/ezrec/kvm/translate"
)

var f = translate.From

var (
	ErrPcRange      = errors.New(f("program counter out of range"))
	ErrEngineFault  = errors.New(f("engine fault"))
	ErrProgramFault = errors.New(f("program fault"))
)

// ErrPc reports a program counter that addresses no instruction.
type ErrPc int

func (err ErrPc) Error() string {
	return f("program counter %d out of range", int(err))
}

func (err ErrPc) Unwrap() error {
	return ErrPcRange
}

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Pc     int
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo == 0 {
		return f("pc %d %v", err.Pc, err.Err)
	}
	return f("pc %d line %d %v", err.Pc, err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
