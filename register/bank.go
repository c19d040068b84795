package register

import (
	"fmt"
)

// Bank is the storage for all registers.
type Bank struct {
	Cell [REGISTER_COUNT]int64
}

// Read returns the full width value of a register.
func (b *Bank) Read(r Register) int64 {
	return b.Cell[r]
}

// Write sets the full width value of a register.
func (b *Bank) Write(r Register, value int64) {
	b.Cell[r] = value
}

// ReadReturn returns the value of a return register.
func (b *Bank) ReadReturn(r Return) int64 {
	return b.Read(r.Super())
}

// WriteReturn sets the value of a return register.
func (b *Bank) WriteReturn(r Return, value int64) {
	b.Write(r.Super(), value)
}

// Reset clears all registers to zero.
func (b *Bank) Reset() {
	clear(b.Cell[:])
}

// String returns the register bank as one line per class.
func (b *Bank) String() (text string) {
	for class := CLASS_GENERAL; class < CLASS_ANY; class++ {
		for n, reg := range class.Members() {
			if n > 0 {
				text += " "
			}
			text += fmt.Sprintf("% 3s: %d", reg.String(), b.Read(reg))
		}
		text += "\n"
	}
	return
}
