// Package memory implements the flat, cell addressed memory of the virtual
// machine, and the first-fit scanning allocator used by system calls.
//
// A cell holds one integer value. A cell holding EMPTY (zero) is free.
package memory

import (
	"errors"
	"fmt"
	"iter"
	"log"

	"github.com/ezrec/kvm/internal"
)

const (
	EMPTY            = Value(0) // Empty cell sentinel, and string terminator.
	DEFAULT_CAPACITY = 65536    // Default address space size, in cells.
)

// Address is a cell offset into memory.
type Address int64

// Value is the contents of a single memory cell.
type Value int64

// Memory is a flat store of Capacity cells.
type Memory struct {
	Verbose bool // Set to enable allocator logging.

	Capacity int     // Size of the address space, in cells.
	Base     Address // Lowest address considered by the allocator.

	data []Value
}

// NewMemory creates a memory with the given capacity in cells.
// A capacity of zero selects DEFAULT_CAPACITY.
func NewMemory(capacity int) (mem *Memory) {
	if capacity <= 0 {
		capacity = DEFAULT_CAPACITY
	}

	mem = &Memory{
		Capacity: capacity,
	}
	mem.Reset()

	return
}

// Defines returns the assembler defines for memory.
func (mem *Memory) Defines() iter.Seq2[string, string] {
	return internal.Sorted(map[string]string{
		"MEMORY_SIZE": fmt.Sprintf("%v", mem.Capacity),
		"MEMORY_BASE": fmt.Sprintf("%v", mem.Base),
	})
}

// Reset clears every cell to EMPTY.
func (mem *Memory) Reset() {
	if len(mem.data) != mem.Capacity {
		mem.data = make([]Value, mem.Capacity)
	} else {
		clear(mem.data)
	}
}

// Valid returns true if the address is inside the address space.
func (mem *Memory) Valid(addr Address) bool {
	return addr >= 0 && addr < Address(mem.Capacity)
}

// Read returns the value of a cell.
// Cells never written read as EMPTY.
func (mem *Memory) Read(addr Address) (value Value, err error) {
	if !mem.Valid(addr) {
		err = ErrAddress(addr)
		return
	}

	value = mem.data[addr]
	return
}

// Write sets the value of a cell.
func (mem *Memory) Write(addr Address, value Value) (err error) {
	if !mem.Valid(addr) {
		err = ErrAddress(addr)
		return
	}

	mem.data[addr] = value
	return
}

// Free returns true if the cell at addr holds EMPTY.
func (mem *Memory) Free(addr Address) bool {
	return mem.Valid(addr) && mem.data[addr] == EMPTY
}

// FindFree returns the lowest address, at or above Base, where size+1
// consecutive cells are free. The extra cell is reserved for a length header
// written by the caller.
//
// Returns ErrOutOfMemory if no such run exists, and ErrSizeInvalid for a
// negative size.
func (mem *Memory) FindFree(size int64) (addr Address, err error) {
	if size < 0 {
		err = ErrSizeInvalid
		return
	}

	need := size + 1
	limit := Address(mem.Capacity)

	var run int64
	for candidate := max(mem.Base, 0); candidate < limit; candidate++ {
		if mem.data[candidate] != EMPTY {
			run = 0
			continue
		}
		run++
		if run == need {
			addr = candidate - Address(need-1)
			if mem.Verbose {
				log.Printf("memory: find %d free -> %d", need, addr)
			}
			return
		}
	}

	err = &ErrAllocation{Size: size, Capacity: mem.Capacity}
	return
}

// Range returns a copy of count cells starting at start.
// Cells outside of the address space are omitted.
func (mem *Memory) Range(start Address, count int) (values []Value) {
	for n := range count {
		addr := start + Address(n)
		if !mem.Valid(addr) {
			break
		}
		values = append(values, mem.data[addr])
	}
	return
}

// ReadString reads an EMPTY terminated string starting at addr.
func (mem *Memory) ReadString(addr Address) (text string, err error) {
	var runes []rune
	for {
		var value Value
		value, err = mem.Read(addr + Address(len(runes)))
		if err != nil {
			if errors.Is(err, ErrAddressRange) && len(runes) > 0 {
				err = ErrStringTooLong
			}
			return
		}
		if value == EMPTY {
			break
		}
		runes = append(runes, rune(value))
	}

	text = string(runes)
	return
}

// WriteString writes text as one cell per rune, followed by EMPTY.
func (mem *Memory) WriteString(addr Address, text string) (err error) {
	n := 0
	for _, r := range text {
		err = mem.Write(addr+Address(n), Value(r))
		if err != nil {
			return
		}
		n++
	}

	err = mem.Write(addr+Address(n), EMPTY)
	return
}
