// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/ezrec/kvm/cpu"
	"github.com/ezrec/kvm/debugger"
	"github.com/ezrec/kvm/emulator"
	"github.com/ezrec/kvm/fault"
	"github.com/ezrec/kvm/io"
)

func main() {
	var compile string
	var debug string
	var output string
	var capacity int
	var halt bool
	var verbose bool

	flag.StringVar(&compile, "c", "", ".kvm file to run")
	flag.StringVar(&debug, "d", "", "Debug script (YAML or JSON)")
	flag.StringVar(&output, "o", ".", "Debug output root")
	flag.IntVar(&capacity, "m", 0, "Memory size in cells (0 for default)")
	flag.BoolVar(&halt, "e", false, "Halt on the first program error")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(compile) == 0 {
		log.Fatalf("%v: no program given (-c)", os.Args[0])
	}

	emu := emulator.NewEmulator(capacity)
	emu.Verbose = verbose
	if halt {
		emu.Policy = emulator.POLICY_HALT
	}

	faults := &fault.Log{Verbose: verbose}
	emu.Faults = faults

	inf, err := os.Open(compile)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}
	defer inf.Close()

	asm := &cpu.Assembler{Verbose: verbose}
	for key, value := range emu.Defines() {
		asm.Predefine(key, value)
	}
	emu.Program, err = asm.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	if len(debug) != 0 {
		dbf, err := os.Open(debug)
		if err != nil {
			log.Fatalf("%v: %v", debug, err)
		}
		defer dbf.Close()

		script, err := debugger.LoadScript(dbf)
		if err != nil {
			log.Fatalf("%v: %v", debug, err)
		}

		engine, err := debugger.NewEngine(script, io.DirFS(output), emu.Cpu)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		engine.Verbose = verbose
		emu.Debugger = engine
	}

	emu.Reset()
	err = emu.Run()
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	if len(faults.Errors) != 0 {
		log.Printf("%v: %d errors recorded", compile, len(faults.Errors))
		if verbose {
			log.Print(emu.Cpu.String())
		}
	}
}
