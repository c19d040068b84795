package fault

import (
	"errors"

	"github.com/ezrec/kvm/translate"
)

var f = translate.From

var (
	ErrDivideByZero   = errors.New(f("division by zero"))
	ErrOverflow       = errors.New(f("integer overflow"))
	ErrStackEmpty     = errors.New(f("stack empty"))
	ErrStackFull      = errors.New(f("stack full"))
	ErrSyscallUnknown = errors.New(f("system call unknown"))
	ErrHost           = errors.New(f("host query failed"))
	ErrOutput         = errors.New(f("output failed"))
)
