// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"fmt"
	"iter"
	"log"

	"github.com/ezrec/kvm/cpu"
	"github.com/ezrec/kvm/fault"
	"github.com/ezrec/kvm/internal"
)

// Policy selects what the emulator does after a per-instruction error.
type Policy int

const (
	POLICY_CONTINUE = Policy(0) // Record the error, and continue.
	POLICY_HALT     = Policy(1) // Record the error, and stop.
)

// Status is the run state of the emulator.
type Status int

//go:generate go tool stringer -linecomment -type=Status
const (
	STATUS_RUNNING = Status(0) // running
	STATUS_HALTED  = Status(1) // halted
	STATUS_FAULTED = Status(2) // faulted
	STATUS_FATAL   = Status(3) // fatal
)

var _emulator_defines = map[string]string{
	"POLICY_CONTINUE": fmt.Sprintf("%v", int(POLICY_CONTINUE)),
	"POLICY_HALT":     fmt.Sprintf("%v", int(POLICY_HALT)),
}

// Hook observes the emulator before each instruction is executed.
type Hook interface {
	// OnEachCycle is called once per cycle.
	OnEachCycle() error
	// OnProgramCounter is called once per cycle with the program counter
	// of the instruction about to execute.
	OnProgramCounter(pc int) error
}

// Emulator state. CPU + program listing + debugger.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Debugger Hook       // Optional execution observer.
	Faults   fault.Sink // Receives every per-instruction error.
	Policy   Policy     // Per-instruction error policy.
	Status   Status     // Current run state.
}

// NewEmulator creates a new emulator, with a memory of capacity cells.
func NewEmulator(capacity int) (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(capacity),
		Program: &cpu.Program{},
		Faults:  &fault.Log{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.Concat(internal.Sorted(_emulator_defines),
		emu.Cpu.Defines(),
		emu.Cpu.Memory.Defines(),
		emu.Cpu.Syscalls.Defines(),
	)
}

// Reset the emulator to run the program from the start.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.Status = STATUS_RUNNING

	if resetter, ok := emu.Faults.(interface{ Reset() }); ok {
		resetter.Reset()
	}
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// LineNo returns the current line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	return emu.Program.LineNo(emu.Cpu.Pc)
}

// observe records a debugger failure. Debugger failures never stop the
// program.
func (emu *Emulator) observe(err error) {
	if err == nil {
		return
	}

	flt, ok := fault.Of(err)
	if !ok {
		flt = fault.New(fault.FAMILY_DEBUG, "debugger", err)
	}

	emu.report(flt)
}

func (emu *Emulator) report(flt *fault.Error) {
	if emu.Verbose {
		log.Printf("emulator: pc %d: %v", emu.Cpu.Pc, flt)
	}
	if emu.Faults != nil {
		emu.Faults.Report(flt)
	}
}

// Tick performs a single cycle of the emulator: the debugger hooks, then
// fetch and execute of the instruction at the program counter.
//
// done is true once the emulator is no longer running. A non-nil error is
// returned when the program stops on a fault under POLICY_HALT (wrapping
// ErrProgramFault), or on a fatal error (wrapping ErrEngineFault).
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.Status != STATUS_RUNNING {
		done = true
		return
	}

	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Pc
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, LineNo: lineno, Err: err}
		}
	}()

	if emu.Debugger != nil {
		emu.observe(emu.Debugger.OnEachCycle())
		emu.observe(emu.Debugger.OnProgramCounter(pc))
	}

	inst, ok := emu.Program.Fetch(pc)
	if !ok {
		emu.Status = STATUS_FATAL
		done = true
		err = errors.Join(ErrEngineFault, ErrPc(pc))
		return
	}

	halt, err := emu.Cpu.Execute(inst)
	if halt {
		if emu.Verbose {
			log.Printf("emulator: halted at pc %d", pc)
		}
		emu.Status = STATUS_HALTED
		done = true
		return
	}
	if err == nil {
		return
	}

	flt, ok := fault.Of(err)
	if !ok {
		emu.Status = STATUS_FATAL
		done = true
		err = errors.Join(ErrEngineFault, err)
		return
	}

	emu.report(flt)
	if emu.Policy == POLICY_HALT {
		emu.Status = STATUS_FAULTED
		done = true
		err = errors.Join(ErrProgramFault, err)
		return
	}

	err = nil
	return
}

// Run ticks the emulator until it stops running.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
	}
	return
}
