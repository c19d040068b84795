package cpu

import (
	"errors"

	"github.com/ezrec/kvm/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrOpcodeInvalid = errors.New(f("instruction unrecognized"))
	ErrTargetInvalid = errors.New(f("jump target invalid"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrLabelSyntax        = errors.New(f("label syntax"))
	ErrMnemonicUnknown    = errors.New(f("mnemonic unknown"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
)

// ErrOpcode reports an instruction the CPU cannot execute.
type ErrOpcode struct {
	Pc          int
	Instruction Instruction
}

func (eo ErrOpcode) Error() string {
	return f("bad instruction at %d: %v", eo.Pc, Disassemble(eo.Instruction))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	if err == ErrOpcodeInvalid {
		return true
	}
	_, ok = err.(ErrOpcode)
	return
}

// ErrTarget reports an impossible jump target.
type ErrTarget int

func (et ErrTarget) Error() string {
	return f("jump target %d invalid", int(et))
}

func (et ErrTarget) Unwrap() error {
	return ErrTargetInvalid
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseRegister string

func (err ErrParseRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
