package register

import (
	"errors"

	"github.com/ezrec/kvm/translate"
)

var f = translate.From

var (
	ErrConversion   = errors.New(f("invalid register conversion"))
	ErrRegisterName = errors.New(f("register name unknown"))
)

// ErrNarrow reports a register that does not belong to the requested class.
type ErrNarrow struct {
	Register Register
	Class    Class
}

func (err *ErrNarrow) Error() string {
	return f("invalid conversion of register %v to %v register", err.Register.String(), err.Class.String())
}

func (err *ErrNarrow) Unwrap() error {
	return ErrConversion
}

// ErrName reports an unparseable register name.
type ErrName string

func (err ErrName) Error() string {
	return f("'%v' is not a register", string(err))
}

func (err ErrName) Unwrap() error {
	return ErrRegisterName
}
