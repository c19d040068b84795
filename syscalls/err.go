package syscalls

import (
	"errors"

	"github.com/ezrec/kvm/translate"
)

var f = translate.From

var (
	ErrCallDuplicate = errors.New(f("system call duplicated"))
)
