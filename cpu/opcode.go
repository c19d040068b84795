package cpu

import (
	"fmt"
	"strings"

	"github.com/ezrec/kvm/memory"
	"github.com/ezrec/kvm/register"
	"github.com/ezrec/kvm/syscalls"
)

// Op is an instruction operation.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_HALT     = Op(0)  // halt
	OP_MOV      = Op(1)  // mov
	OP_ADD      = Op(2)  // add
	OP_SUB      = Op(3)  // sub
	OP_MUL      = Op(4)  // mul
	OP_DIV      = Op(5)  // div
	OP_JMP      = Op(6)  // jmp
	OP_JZ       = Op(7)  // jz
	OP_JNZ      = Op(8)  // jnz
	OP_PEEK     = Op(9)  // peek
	OP_PUSH     = Op(10) // push
	OP_POP      = Op(11) // pop
	OP_SYSCALL  = Op(12) // syscall
	OP_LOAD     = Op(13) // load
	OP_STORE    = Op(14) // store
	OP_AND      = Op(15) // and
	OP_OR       = Op(16) // or
	OP_XOR      = Op(17) // xor
	OP_NOT      = Op(18) // not
	OP_SHL      = Op(19) // shl
	OP_SHR      = Op(20) // shr
	OP_LIT      = Op(21) // lit
	OP_PRINTS   = Op(22) // prints
	OP_PRINTR   = Op(23) // printr
	OP_PRINTSTR = Op(24) // printstr
	OP_COUNT    = Op(25) // -
)

// ParseOp returns the operation for a mnemonic.
func ParseOp(word string) (op Op, ok bool) {
	word = strings.ToLower(word)
	for op = OP_HALT; op < OP_COUNT; op++ {
		if op.String() == word {
			ok = true
			return
		}
	}
	return
}

// Instruction is a decoded instruction.
// The set of instructions is closed: Cpu.Execute rejects any other type.
type Instruction interface {
	Op() Op
}

type Halt struct{}

type Mov struct {
	Source      register.Register
	Destination register.Register
}

type Add struct{ Operand1, Operand2 register.Register }
type Sub struct{ Operand1, Operand2 register.Register }
type Mul struct{ Operand1, Operand2 register.Register }
type Div struct{ Operand1, Operand2 register.Register }

type Jmp struct {
	Target int
}

type Jz struct {
	Target int
	Test   register.Register
}

type Jnz struct {
	Target int
	Test   register.Register
}

type Peek struct{ Destination register.Register }
type Push struct{ Source register.Register }
type Pop struct{ Destination register.Register }

type Syscall struct {
	Number    syscalls.Code
	Argument1 register.Register
	Argument2 register.Register
	Argument3 register.Register
}

type Load struct {
	Address     memory.Address
	Destination register.Register
}

type Store struct {
	Source  register.Register
	Address memory.Address
}

type And struct{ Operand1, Operand2 register.Register }
type Or struct{ Operand1, Operand2 register.Register }
type Xor struct{ Operand1, Operand2 register.Register }

type Not struct{ Operand register.Register }

type Shl struct {
	Operand register.Register
	Amount  int
}

type Shr struct {
	Operand register.Register
	Amount  int
}

type Lit struct {
	Destination register.Register
	Value       int64
}

// Prints prints the stack, bottom to top.
type Prints struct{}

// Printr prints the value of a register.
type Printr struct{ Source register.Register }

// Printstr prints the string stored at the address held in a register.
type Printstr struct{ Source register.Register }

func (Halt) Op() Op     { return OP_HALT }
func (Mov) Op() Op      { return OP_MOV }
func (Add) Op() Op      { return OP_ADD }
func (Sub) Op() Op      { return OP_SUB }
func (Mul) Op() Op      { return OP_MUL }
func (Div) Op() Op      { return OP_DIV }
func (Jmp) Op() Op      { return OP_JMP }
func (Jz) Op() Op       { return OP_JZ }
func (Jnz) Op() Op      { return OP_JNZ }
func (Peek) Op() Op     { return OP_PEEK }
func (Push) Op() Op     { return OP_PUSH }
func (Pop) Op() Op      { return OP_POP }
func (Syscall) Op() Op  { return OP_SYSCALL }
func (Load) Op() Op     { return OP_LOAD }
func (Store) Op() Op    { return OP_STORE }
func (And) Op() Op      { return OP_AND }
func (Or) Op() Op       { return OP_OR }
func (Xor) Op() Op      { return OP_XOR }
func (Not) Op() Op      { return OP_NOT }
func (Shl) Op() Op      { return OP_SHL }
func (Shr) Op() Op      { return OP_SHR }
func (Lit) Op() Op      { return OP_LIT }
func (Prints) Op() Op   { return OP_PRINTS }
func (Printr) Op() Op   { return OP_PRINTR }
func (Printstr) Op() Op { return OP_PRINTSTR }

// Operands returns the registers referenced by an instruction.
func Operands(inst Instruction) (regs []register.Register) {
	switch inst := inst.(type) {
	case Mov:
		regs = []register.Register{inst.Source, inst.Destination}
	case Add:
		regs = []register.Register{inst.Operand1, inst.Operand2}
	case Sub:
		regs = []register.Register{inst.Operand1, inst.Operand2}
	case Mul:
		regs = []register.Register{inst.Operand1, inst.Operand2}
	case Div:
		regs = []register.Register{inst.Operand1, inst.Operand2}
	case Jz:
		regs = []register.Register{inst.Test}
	case Jnz:
		regs = []register.Register{inst.Test}
	case Peek:
		regs = []register.Register{inst.Destination}
	case Push:
		regs = []register.Register{inst.Source}
	case Pop:
		regs = []register.Register{inst.Destination}
	case Syscall:
		regs = []register.Register{inst.Argument1, inst.Argument2, inst.Argument3}
	case Load:
		regs = []register.Register{inst.Destination}
	case Store:
		regs = []register.Register{inst.Source}
	case And:
		regs = []register.Register{inst.Operand1, inst.Operand2}
	case Or:
		regs = []register.Register{inst.Operand1, inst.Operand2}
	case Xor:
		regs = []register.Register{inst.Operand1, inst.Operand2}
	case Not:
		regs = []register.Register{inst.Operand}
	case Shl:
		regs = []register.Register{inst.Operand}
	case Shr:
		regs = []register.Register{inst.Operand}
	case Lit:
		regs = []register.Register{inst.Destination}
	case Printr:
		regs = []register.Register{inst.Source}
	case Printstr:
		regs = []register.Register{inst.Source}
	}
	return
}

// Disassemble returns the assembly language text of an instruction.
func Disassemble(inst Instruction) (text string) {
	switch inst := inst.(type) {
	case Halt, Prints:
		text = inst.Op().String()
	case Mov:
		text = fmt.Sprintf("mov %v %v", inst.Source, inst.Destination)
	case Jmp:
		text = fmt.Sprintf("jmp %d", inst.Target)
	case Jz:
		text = fmt.Sprintf("jz %d %v", inst.Target, inst.Test)
	case Jnz:
		text = fmt.Sprintf("jnz %d %v", inst.Target, inst.Test)
	case Syscall:
		text = fmt.Sprintf("syscall %d %v %v %v", int(inst.Number), inst.Argument1, inst.Argument2, inst.Argument3)
	case Load:
		text = fmt.Sprintf("load %d %v", int64(inst.Address), inst.Destination)
	case Store:
		text = fmt.Sprintf("store %v %d", inst.Source, int64(inst.Address))
	case Shl:
		text = fmt.Sprintf("shl %v %d", inst.Operand, inst.Amount)
	case Shr:
		text = fmt.Sprintf("shr %v %d", inst.Operand, inst.Amount)
	case Lit:
		text = fmt.Sprintf("lit %v %d", inst.Destination, inst.Value)
	case nil:
		text = "<nil>"
	default:
		words := []string{inst.Op().String()}
		for _, reg := range Operands(inst) {
			words = append(words, reg.String())
		}
		text = strings.Join(words, " ")
	}
	return
}
