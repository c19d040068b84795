package memory

import (
	"errors"

	"github.com/ezrec/kvm/translate"
)

var f = translate.From

var (
	ErrOutOfMemory   = errors.New(f("out of memory"))
	ErrAddressRange  = errors.New(f("address out of range"))
	ErrSizeInvalid   = errors.New(f("allocation size invalid"))
	ErrStringTooLong = errors.New(f("string unterminated"))
)

// ErrAddress reports an access outside of the address space.
type ErrAddress Address

func (err ErrAddress) Error() string {
	return f("address %d out of range", int64(err))
}

func (err ErrAddress) Unwrap() error {
	return ErrAddressRange
}

// ErrAllocation reports an allocation that could not be satisfied.
type ErrAllocation struct {
	Size     int64
	Capacity int
}

func (err *ErrAllocation) Error() string {
	return f("no %d free cells in %d cell memory", err.Size+1, err.Capacity)
}

func (err *ErrAllocation) Unwrap() error {
	return ErrOutOfMemory
}
