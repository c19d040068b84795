// Package fault is the per-instruction error model of the virtual machine.
//
// Every instruction family has its own Family. An Error carries the family,
// the label of the failing operation, and the underlying cause. Errors are
// values: executors return them, and the engine reports them to a Sink.
package fault

import (
	"errors"
	"log"
)

// Family is an instruction family.
type Family int

//go:generate go tool stringer -linecomment -type=Family
const (
	FAMILY_ARITHMETIC     = Family(0) // general-arithmetic
	FAMILY_BITWISE        = Family(1) // general-bitwise
	FAMILY_CONTROL_FLOW   = Family(2) // general-control-flow
	FAMILY_STACK          = Family(3) // general-stack
	FAMILY_MEMORY         = Family(4) // general-memory
	FAMILY_SYSTEM_CALL    = Family(5) // system-call-general
	FAMILY_IO_ABSTRACTION = Family(6) // general-io-abstraction
	FAMILY_DEBUG          = Family(7) // general-debug
)

// Error is a per-instruction error.
type Error struct {
	Family Family // Instruction family of the failed operation.
	Label  string // Operation label, ie "div" or "getpid".
	Err    error  // Underlying cause.
}

// New creates a new per-instruction error.
func New(family Family, label string, err error) *Error {
	return &Error{Family: family, Label: label, Err: err}
}

func (err *Error) Error() string {
	if err.Err == nil {
		return f("%v %v", err.Family.String(), err.Label)
	}
	return f("%v %v: %v", err.Family.String(), err.Label, err.Err)
}

func (err *Error) Unwrap() error {
	return err.Err
}

// Is matches any *Error of the same family. An empty label in the target
// matches any label.
func (err *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return other.Family == err.Family && (other.Label == "" || other.Label == err.Label)
}

// Of returns the per-instruction error in an error chain, if there is one.
func Of(err error) (flt *Error, ok bool) {
	ok = errors.As(err, &flt)
	return
}

// Sink collects per-instruction errors.
type Sink interface {
	Report(err *Error)
}

// Log is a Sink that records every reported error.
type Log struct {
	Verbose bool     // Set to log each error as it is reported.
	Errors  []*Error // Reported errors, oldest first.
}

var _ Sink = (*Log)(nil)

// Report records an error.
func (fl *Log) Report(err *Error) {
	if fl.Verbose {
		log.Printf("fault: %v", err)
	}
	fl.Errors = append(fl.Errors, err)
}

// Reset discards all recorded errors.
func (fl *Log) Reset() {
	fl.Errors = nil
}

// Count returns the number of recorded errors of a family.
func (fl *Log) Count(family Family) (count int) {
	for _, err := range fl.Errors {
		if err.Family == family {
			count++
		}
	}
	return
}
