// Package cpu implements the processor and assembler of the KVM virtual
// machine.
//
// The processor consists of a program counter (PC), twenty 64-bit registers
// in five classes, a stack, and a flat cell addressed memory. Instructions
// are a closed set of value types, executed by Cpu.Execute. Arithmetic always
// returns its result in R4, and bitwise and/or/xor in R3.
//
// The assembler provides a line oriented assembly language for the
// instruction set, supporting labels, equates and compile-time expression
// evaluation.
package cpu
