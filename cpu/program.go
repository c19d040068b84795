package cpu

import (
	"fmt"
	"iter"
)

// Opcode is a line of assembled code with its source location.
type Opcode struct {
	LineNo      int         // Source line number, or zero.
	Pc          int         // Program counter of the instruction.
	Words       []string    // Source words, after equate expansion.
	Instruction Instruction // Decoded instruction.
	LinkLabel   string      // Jump label to resolve at link time.
}

// Program is an executable listing of instructions.
type Program struct {
	Opcodes []Opcode
}

// NewProgram creates a program from a sequence of instructions.
func NewProgram(insts ...Instruction) (prog *Program) {
	prog = &Program{}
	for pc, inst := range insts {
		prog.Opcodes = append(prog.Opcodes, Opcode{Pc: pc, Instruction: inst})
	}
	return
}

// Len returns the number of instructions in the program.
func (prog *Program) Len() int {
	return len(prog.Opcodes)
}

// Fetch returns the instruction at a program counter.
func (prog *Program) Fetch(pc int) (inst Instruction, ok bool) {
	if pc < 0 || pc >= len(prog.Opcodes) {
		return
	}

	inst = prog.Opcodes[pc].Instruction
	ok = true
	return
}

// LineNo returns the source line number of the instruction at pc, or zero.
func (prog *Program) LineNo(pc int) int {
	if pc < 0 || pc >= len(prog.Opcodes) {
		return 0
	}
	return prog.Opcodes[pc].LineNo
}

// Instructions iterates over the program counter and instruction pairs.
func (prog *Program) Instructions() iter.Seq2[int, Instruction] {
	return func(yield func(pc int, inst Instruction) bool) {
		for pc, op := range prog.Opcodes {
			if !yield(pc, op.Instruction) {
				return
			}
		}
	}
}

// String returns the disassembled listing of the program.
func (prog *Program) String() (text string) {
	for pc, inst := range prog.Instructions() {
		text += fmt.Sprintf("%04d: %v\n", pc, Disassemble(inst))
	}
	return
}
