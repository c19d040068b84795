package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/ezrec/kvm/fault"
	"github.com/ezrec/kvm/internal"
	"github.com/ezrec/kvm/io"
	"github.com/ezrec/kvm/memory"
	"github.com/ezrec/kvm/register"
	"github.com/ezrec/kvm/syscalls"
)

const (
	SHIFT_MASK = 0x3f // Shift amounts are taken modulo 64.
)

var _cpu_defines = map[string]string{
	"STACK_LIMIT": fmt.Sprintf("%v", STACK_LIMIT),
	"SHIFT_MASK":  fmt.Sprintf("%#x", SHIFT_MASK),
}

// Cpu is the simulation context for the virtual machine processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Pc       int             // Current program counter.
	Register register.Bank   // Register bank.
	Stack    Stack           // Stack simulation.
	Memory   *memory.Memory  // Flat cell memory.
	Syscalls *syscalls.Table // System call table.
	Console  *io.Console     // Console for the print instructions.

	Ticks int // Executed instruction counter.
}

// NewCpu creates a new CPU with a specifically sized memory.
func NewCpu(capacity int) (cpu *Cpu) {
	cpu = &Cpu{
		Memory:   memory.NewMemory(capacity),
		Syscalls: syscalls.NewTable(),
		Console:  io.NewConsole(os.Stdout),
	}

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return internal.Sorted(_cpu_defines)
}

// Reset the CPU state.
// - Clears the registers, stack and memory.
// - Zeros statistics counters.
// - Sets the program counter to zero.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Register.Reset()
	cpu.Stack.Reset()
	cpu.Memory.Reset()
	cpu.Pc = 0
	cpu.Ticks = 0
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("   pc: %d\n", cpu.Pc)
	text += cpu.Register.String()
	text += fmt.Sprintf("stack: %v\n", cpu.Stack.String())
	return
}

// ProgramCounter returns the current program counter.
func (cpu *Cpu) ProgramCounter() int {
	return cpu.Pc
}

// ReadRegister returns the full value of a register.
func (cpu *Cpu) ReadRegister(reg register.Register) int64 {
	return cpu.Register.Read(reg)
}

// ReadMemory returns a span of memory cells.
func (cpu *Cpu) ReadMemory(start memory.Address, count int) []memory.Value {
	return cpu.Memory.Range(start, count)
}

// Execute executes a single decoded instruction.
//
// On success, or on a per-instruction *fault.Error, the program counter
// advances to the next instruction or the jump target. Halt leaves the
// program counter on the halt instruction, and returns halt as true.
//
// Any other error is fatal: an unrecognized instruction (ErrOpcodeInvalid),
// an invalid register operand (register.ErrConversion), or memory
// exhaustion (memory.ErrOutOfMemory). The CPU state is left unchanged.
func (cpu *Cpu) Execute(inst Instruction) (halt bool, err error) {
	if cpu.Verbose {
		log.Printf("cpu: %03d: %v", cpu.Pc, Disassemble(inst))
	}

	for _, reg := range Operands(inst) {
		_, err = register.Narrow(reg, register.CLASS_ANY)
		if err != nil {
			err = errors.Join(ErrOpcode{Pc: cpu.Pc, Instruction: inst}, err)
			return
		}
	}

	next := cpu.Pc + 1

	defer func() {
		if halt {
			return
		}
		if _, ok := fault.Of(err); err == nil || ok {
			cpu.Pc = next
			cpu.Ticks++
		}
	}()

	reg := &cpu.Register

	switch inst := inst.(type) {
	case Halt:
		halt = true
	case Mov:
		reg.Write(inst.Destination, reg.Read(inst.Source))
	case Add:
		err = cpu.arithmetic("add", inst.Operand1, inst.Operand2, func(a, b int64) (int64, error) { return a + b, nil })
	case Sub:
		err = cpu.arithmetic("sub", inst.Operand1, inst.Operand2, func(a, b int64) (int64, error) { return a - b, nil })
	case Mul:
		err = cpu.arithmetic("mul", inst.Operand1, inst.Operand2, func(a, b int64) (int64, error) { return a * b, nil })
	case Div:
		err = cpu.arithmetic("div", inst.Operand1, inst.Operand2, doDiv)
	case Jmp:
		next, err = cpu.jump("jmp", next, inst.Target, true)
	case Jz:
		next, err = cpu.jump("jz", next, inst.Target, reg.Read(inst.Test) == 0)
	case Jnz:
		next, err = cpu.jump("jnz", next, inst.Target, reg.Read(inst.Test) != 0)
	case Peek:
		value, ok := cpu.Stack.Peek()
		if !ok {
			err = fault.New(fault.FAMILY_STACK, "peek", fault.ErrStackEmpty)
			return
		}
		reg.Write(inst.Destination, value)
	case Push:
		if cpu.Stack.Full() {
			err = fault.New(fault.FAMILY_STACK, "push", fault.ErrStackFull)
			return
		}
		cpu.Stack.Push(reg.Read(inst.Source))
	case Pop:
		value, ok := cpu.Stack.Pop()
		if !ok {
			err = fault.New(fault.FAMILY_STACK, "pop", fault.ErrStackEmpty)
			return
		}
		reg.Write(inst.Destination, value)
	case Syscall:
		args := [3]register.Register{inst.Argument1, inst.Argument2, inst.Argument3}
		err = cpu.Syscalls.Dispatch(inst.Number, reg, cpu.Memory, args)
	case Load:
		var value memory.Value
		value, err = cpu.Memory.Read(inst.Address)
		if err != nil {
			err = fault.New(fault.FAMILY_MEMORY, "load", err)
			return
		}
		reg.Write(inst.Destination, int64(value))
	case Store:
		err = cpu.Memory.Write(inst.Address, memory.Value(reg.Read(inst.Source)))
		if err != nil {
			err = fault.New(fault.FAMILY_MEMORY, "store", err)
			return
		}
	case And:
		reg.WriteReturn(register.RETURN_R3, reg.Read(inst.Operand1)&reg.Read(inst.Operand2))
	case Or:
		reg.WriteReturn(register.RETURN_R3, reg.Read(inst.Operand1)|reg.Read(inst.Operand2))
	case Xor:
		reg.WriteReturn(register.RETURN_R3, reg.Read(inst.Operand1)^reg.Read(inst.Operand2))
	case Not:
		reg.Write(inst.Operand, ^reg.Read(inst.Operand))
	case Shl:
		reg.Write(inst.Operand, reg.Read(inst.Operand)<<(inst.Amount&SHIFT_MASK))
	case Shr:
		// Arithmetic shift, the sign bit is preserved.
		reg.Write(inst.Operand, reg.Read(inst.Operand)>>(inst.Amount&SHIFT_MASK))
	case Lit:
		reg.Write(inst.Destination, inst.Value)
	case Prints:
		err = cpu.print("prints", cpu.Stack.String())
	case Printr:
		err = cpu.print("printr", strconv.FormatInt(reg.Read(inst.Source), 10))
	case Printstr:
		var text string
		text, err = cpu.Memory.ReadString(memory.Address(reg.Read(inst.Source)))
		if err != nil {
			err = fault.New(fault.FAMILY_IO_ABSTRACTION, "printstr", err)
			return
		}
		err = cpu.print("printstr", text)
	default:
		err = ErrOpcode{Pc: cpu.Pc, Instruction: inst}
	}

	return
}

// arithmetic applies op to two registers, and writes the result to R4.
// R4 is unchanged on failure.
func (cpu *Cpu) arithmetic(label string, a, b register.Register, op func(a, b int64) (int64, error)) (err error) {
	reg := &cpu.Register

	value, err := op(reg.Read(a), reg.Read(b))
	if err != nil {
		err = fault.New(fault.FAMILY_ARITHMETIC, label, err)
		return
	}

	reg.WriteReturn(register.RETURN_R4, value)
	return
}

// doDiv is truncated signed division.
func doDiv(a, b int64) (value int64, err error) {
	switch {
	case b == 0:
		err = fault.ErrDivideByZero
	case a == math.MinInt64 && b == -1:
		err = fault.ErrOverflow
	default:
		value = a / b
	}
	return
}

// jump returns the next program counter for a jump.
func (cpu *Cpu) jump(label string, next int, target int, taken bool) (pc int, err error) {
	pc = next
	if !taken {
		return
	}

	if target < 0 {
		err = fault.New(fault.FAMILY_CONTROL_FLOW, label, ErrTarget(target))
		return
	}

	pc = target
	return
}

// print writes a line to the console, converting any failure into an I/O
// error.
func (cpu *Cpu) print(label string, text string) (err error) {
	err = cpu.Console.PrintLine(text)
	if err != nil {
		err = fault.New(fault.FAMILY_IO_ABSTRACTION, label, errors.Join(fault.ErrOutput, err))
	}
	return
}
