// Package debugger is a file driven debug engine.
//
// The engine observes an executing program through a Target, and runs
// the actions of a debug Script: the eachIteration actions on every cycle,
// and each lineSpecific action when the program counter reaches its key.
//
// Every action writes one YAML artifact into the output tree:
//
//	out/each/registers
//	out/each/memoryRange
//	out/lineSpecific/registers
//	out/lineSpecific/memoryRange
package debugger

import (
	"cmp"
	"errors"
	"fmt"
	"log"
	"path"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/kvm/fault"
	"github.com/ezrec/kvm/io"
	"github.com/ezrec/kvm/memory"
	"github.com/ezrec/kvm/register"
)

const (
	DIR_OUT       = "out"
	DIR_EACH      = "each"
	DIR_LINE      = "lineSpecific"
	DIR_REGISTERS = "registers"
	DIR_MEMORY    = "memoryRange"
)

// Trigger selects how often a line-specific action fires.
type Trigger int

const (
	TRIGGER_ONCE        = Trigger(0) // Fire the first time the program counter is reached.
	TRIGGER_EVERY_VISIT = Trigger(1) // Fire each time the program counter is reached.
)

// Target is the read-only view of the machine the engine observes.
type Target interface {
	ProgramCounter() int
	ReadRegister(reg register.Register) int64
	ReadMemory(start memory.Address, count int) []memory.Value
}

type lineTrigger struct {
	Pc     int
	Action string
}

// Engine runs a debug script against a Target.
type Engine struct {
	Verbose bool    // If set, logs each action.
	Trigger Trigger // Line-specific trigger policy.

	target  Target
	each    []string
	pending []lineTrigger // Sorted by program counter.
	out     io.CreateFS
	seq     int
}

// NewEngine creates a debug engine, and builds a fresh output tree
// under root, removing any prior contents.
func NewEngine(script *Script, root io.CreateFS, target Target) (engine *Engine, err error) {
	if script == nil {
		script = &Script{}
	}

	engine = &Engine{
		target: target,
		each:   slices.Clone(script.EachIteration),
	}

	for key, action := range script.LineSpecific {
		var pc int
		pc, err = strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			err = ErrTrigger(key)
			engine = nil
			return
		}
		engine.pending = append(engine.pending, lineTrigger{Pc: pc, Action: action})
	}
	slices.SortStableFunc(engine.pending, func(a, b lineTrigger) int {
		return cmp.Or(cmp.Compare(a.Pc, b.Pc), strings.Compare(a.Action, b.Action))
	})

	err = root.RemoveAll(DIR_OUT)
	if err != nil {
		engine = nil
		return
	}

	dirs := []string{DIR_OUT}
	for _, branch := range []string{DIR_EACH, DIR_LINE} {
		dirs = append(dirs, path.Join(DIR_OUT, branch))
		for _, kind := range []string{DIR_REGISTERS, DIR_MEMORY} {
			dirs = append(dirs, path.Join(DIR_OUT, branch, kind))
		}
	}
	for _, dir := range dirs {
		err = root.Mkdir(dir, 0o755)
		if err != nil {
			engine = nil
			return
		}
	}

	engine.out, err = root.Sub(DIR_OUT)
	if err != nil {
		engine = nil
		return
	}

	return
}

// Pending returns the program counters of the line-specific actions
// that are still able to fire, in ascending order.
func (engine *Engine) Pending() (pcs []int) {
	for _, trigger := range engine.pending {
		pcs = append(pcs, trigger.Pc)
	}
	return
}

// OnEachCycle runs every eachIteration action.
func (engine *Engine) OnEachCycle() (err error) {
	var errs []error
	for _, action := range engine.each {
		errs = append(errs, engine.execute(DIR_EACH, action))
	}

	err = errors.Join(errs...)
	return
}

// OnProgramCounter runs the line-specific actions keyed by pc.
func (engine *Engine) OnProgramCounter(pc int) (err error) {
	first, found := slices.BinarySearchFunc(engine.pending, pc, func(trigger lineTrigger, pc int) int {
		return cmp.Compare(trigger.Pc, pc)
	})
	if !found {
		return
	}

	last := first
	for last < len(engine.pending) && engine.pending[last].Pc == pc {
		last++
	}

	fired := slices.Clone(engine.pending[first:last])
	if engine.Trigger == TRIGGER_ONCE {
		engine.pending = slices.Delete(engine.pending, first, last)
	}

	var errs []error
	for _, trigger := range fired {
		errs = append(errs, engine.execute(DIR_LINE, trigger.Action))
	}

	err = errors.Join(errs...)
	return
}

// execute runs a single action. Unknown or malformed actions are ignored.
func (engine *Engine) execute(branch string, action string) (err error) {
	words := strings.Fields(action)
	if len(words) == 0 {
		return
	}

	pc := engine.target.ProgramCounter()

	if engine.Verbose {
		log.Printf("debugger: pc %d: %v: %v", pc, branch, action)
	}

	var snapshot any
	switch words[0] {
	case DIR_REGISTERS:
		if len(words) != 2 {
			engine.ignore(action)
			return
		}
		reg, ok := parseRegister(words[1])
		if !ok {
			engine.ignore(action)
			return
		}
		snapshot = &RegisterSnapshot{
			Seq:      engine.seq,
			Pc:       pc,
			Register: reg.String(),
			Value:    engine.target.ReadRegister(reg),
		}
	case DIR_MEMORY:
		if len(words) != 3 {
			engine.ignore(action)
			return
		}
		start, _err := strconv.ParseInt(words[1], 0, 64)
		count, _err2 := strconv.Atoi(words[2])
		if _err != nil || _err2 != nil || count < 0 {
			engine.ignore(action)
			return
		}
		snapshot = &MemorySnapshot{
			Seq:    engine.seq,
			Pc:     pc,
			Start:  memory.Address(start),
			Count:  count,
			Values: engine.target.ReadMemory(memory.Address(start), count),
		}
	default:
		engine.ignore(action)
		return
	}

	name := fmt.Sprintf("%06d_pc%d_%v.yaml", engine.seq, pc, strings.Join(words[1:], "_"))
	engine.seq++

	err = engine.write(path.Join(branch, words[0], name), snapshot)
	if err != nil {
		err = fault.New(fault.FAMILY_DEBUG, words[0], errors.Join(ErrArtifact, err))
	}

	return
}

func (engine *Engine) ignore(action string) {
	if engine.Verbose {
		log.Printf("debugger: ignoring '%v'", action)
	}
}

// write encodes a snapshot into a new artifact file.
func (engine *Engine) write(name string, snapshot any) (err error) {
	data, err := yaml.Marshal(snapshot)
	if err != nil {
		return
	}

	file, err := engine.out.Create(name)
	if err != nil {
		return
	}

	_, err = file.Write(data)
	err = errors.Join(err, file.Close())
	return
}

// parseRegister accepts a register name, or a register identity number.
func parseRegister(word string) (reg register.Register, ok bool) {
	reg, err := register.Parse(word)
	if err == nil {
		ok = true
		return
	}

	n, err := strconv.Atoi(word)
	if err != nil {
		return
	}

	reg = register.Register(n)
	ok = reg.Valid()
	return
}
