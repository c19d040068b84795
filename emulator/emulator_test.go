package emulator

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/kvm/cpu"
	"github.com/ezrec/kvm/fault"
	"github.com/ezrec/kvm/io"
	"github.com/ezrec/kvm/memory"
	"github.com/ezrec/kvm/register"
)

type mockHook struct {
	cycles int
	pcs    []int
	err    error
}

func (mh *mockHook) OnEachCycle() error {
	mh.cycles++
	return nil
}

func (mh *mockHook) OnProgramCounter(pc int) error {
	mh.pcs = append(mh.pcs, pc)
	return mh.err
}

func newTestEmulator(insts ...cpu.Instruction) (emu *Emulator, out *bytes.Buffer) {
	out = &bytes.Buffer{}
	emu = NewEmulator(64)
	emu.Cpu.Console = io.NewConsole(out)
	emu.Program = cpu.NewProgram(insts...)
	emu.Reset()
	return
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(0)

	assert.False(emu.Verbose)
	assert.Equal(STATUS_RUNNING, emu.Status)
	assert.Equal(memory.DEFAULT_CAPACITY, emu.Cpu.Memory.Capacity)

	defines := map[string]string{}
	for key, value := range emu.Defines() {
		defines[key] = value
	}
	assert.Equal("1", defines["POLICY_HALT"])
	assert.Equal("1", defines["SYS_CREATE_ARRAY"])
	assert.Contains(defines, "MEMORY_SIZE")
	assert.Contains(defines, "STACK_LIMIT")
}

func TestEmulator_Add(t *testing.T) {
	assert := assert.New(t)

	emu, _ := newTestEmulator(
		cpu.Lit{Destination: register.G1, Value: 3},
		cpu.Lit{Destination: register.G2, Value: 4},
		cpu.Add{Operand1: register.G1, Operand2: register.G2},
		cpu.Halt{},
	)

	err := emu.Run()
	assert.NoError(err)
	assert.Equal(STATUS_HALTED, emu.Status)
	assert.Equal(int64(7), emu.Cpu.ReadRegister(register.R4))
	assert.Equal(3, emu.Cpu.Pc)
	assert.Equal(3, emu.Ticks())

	done, err := emu.Tick()
	assert.True(done)
	assert.NoError(err)
}

func TestEmulator_JzSkip(t *testing.T) {
	assert := assert.New(t)

	emu, _ := newTestEmulator(
		cpu.Jz{Target: 2, Test: register.G1},
		cpu.Lit{Destination: register.R1, Value: 1},
		cpu.Halt{},
	)

	err := emu.Run()
	assert.NoError(err)
	assert.Equal(int64(0), emu.Cpu.ReadRegister(register.R1))
	assert.Equal(2, emu.Cpu.Pc)
}

func TestEmulator_Continue(t *testing.T) {
	assert := assert.New(t)

	emu, out := newTestEmulator(
		cpu.Pop{Destination: register.G1},
		cpu.Div{Operand1: register.G1, Operand2: register.G2},
		cpu.Lit{Destination: register.G3, Value: 5},
		cpu.Printr{Source: register.G3},
		cpu.Halt{},
	)

	err := emu.Run()
	assert.NoError(err)
	assert.Equal(STATUS_HALTED, emu.Status)
	assert.Equal("5\n", out.String())

	faults := emu.Faults.(*fault.Log)
	assert.Len(faults.Errors, 2)
	assert.Equal(1, faults.Count(fault.FAMILY_STACK))
	assert.Equal(1, faults.Count(fault.FAMILY_ARITHMETIC))
}

func TestEmulator_Halt(t *testing.T) {
	assert := assert.New(t)

	emu, _ := newTestEmulator(
		cpu.Lit{Destination: register.G1, Value: 1},
		cpu.Div{Operand1: register.G1, Operand2: register.G2},
		cpu.Halt{},
	)
	emu.Policy = POLICY_HALT

	err := emu.Run()
	assert.ErrorIs(err, ErrProgramFault)
	assert.ErrorIs(err, fault.ErrDivideByZero)
	assert.NotErrorIs(err, ErrEngineFault)
	assert.Equal(STATUS_FAULTED, emu.Status)

	var runtime *ErrRuntime
	require.True(t, errors.As(err, &runtime))
	assert.Equal(1, runtime.Pc)
}

func TestEmulator_Fatal(t *testing.T) {
	table := [](struct {
		name     string
		insts    []cpu.Instruction
		expected error
	}){
		{"pc-range", []cpu.Instruction{cpu.Jmp{Target: 10}}, ErrPcRange},
		{"fall-off", []cpu.Instruction{cpu.Lit{Destination: register.G1}}, ErrPcRange},
		{"register", []cpu.Instruction{cpu.Push{Source: register.Register(33)}}, register.ErrConversion},
		{"opcode", []cpu.Instruction{nil}, cpu.ErrOpcodeInvalid},
		{"memory", []cpu.Instruction{
			cpu.Lit{Destination: register.G1, Value: 1000},
			cpu.Syscall{Number: 1, Argument1: register.G1},
		}, memory.ErrOutOfMemory},
	}

	for _, entry := range table {
		assert := assert.New(t)
		emu, _ := newTestEmulator(entry.insts...)

		err := emu.Run()
		assert.ErrorIs(err, ErrEngineFault, entry.name)
		assert.ErrorIs(err, entry.expected, entry.name)
		assert.NotErrorIs(err, ErrProgramFault, entry.name)
		assert.Equal(STATUS_FATAL, emu.Status, entry.name)
	}
}

func TestEmulator_Hook(t *testing.T) {
	assert := assert.New(t)

	emu, _ := newTestEmulator(
		cpu.Jmp{Target: 2},
		cpu.Halt{},
		cpu.Jnz{Target: 1, Test: register.G1},
		cpu.Jmp{Target: 1},
	)
	hook := &mockHook{err: fault.New(fault.FAMILY_DEBUG, "hook", errors.New("closed"))}
	emu.Debugger = hook

	err := emu.Run()
	assert.NoError(err)
	assert.Equal(4, hook.cycles)
	assert.Equal([]int{0, 2, 3, 1}, hook.pcs)

	faults := emu.Faults.(*fault.Log)
	assert.Equal(4, faults.Count(fault.FAMILY_DEBUG))
}

func TestEmulator_Assembled(t *testing.T) {
	assert := assert.New(t)

	source := `
        lit G1 5            ; counter
        lit G2 1
        lit G3 0
loop:   add G3 G1
        mov R4 G3
        sub G1 G2
        mov R4 G1
        jnz loop G1
        printr G3
        halt
`

	emu, out := newTestEmulator()

	asm := &cpu.Assembler{}
	for key, value := range emu.Defines() {
		asm.Predefine(key, value)
	}
	prog, err := asm.Parse(strings.NewReader(source))
	require.NoError(t, err)
	emu.Program = prog
	emu.Reset()

	err = emu.Run()
	assert.NoError(err)
	assert.Equal("15\n", out.String())
	assert.Equal(11, emu.LineNo())
}
