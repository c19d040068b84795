package debugger

import (
	"errors"

	"github.com/ezrec/kvm/translate"
)

var f = translate.From

var (
	ErrScriptSyntax = errors.New(f("debug script syntax"))
	ErrTriggerPc    = errors.New(f("line trigger is not a program counter"))
	ErrArtifact     = errors.New(f("debug artifact not written"))
)

// ErrTrigger reports a line-specific key that does not parse as a
// program counter.
type ErrTrigger string

func (err ErrTrigger) Error() string {
	return f("line trigger '%v' is not a program counter", string(err))
}

func (err ErrTrigger) Unwrap() error {
	return ErrTriggerPc
}
