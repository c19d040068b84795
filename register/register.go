package register

import (
	"strings"
)

// Register identifies any one of the twenty registers.
type Register int

//go:generate go tool stringer -linecomment -type=Register,Class
const (
	G1  = Register(0)  // G1
	G2  = Register(1)  // G2
	G3  = Register(2)  // G3
	G4  = Register(3)  // G4
	S1  = Register(4)  // S1
	S2  = Register(5)  // S2
	S3  = Register(6)  // S3
	S4  = Register(7)  // S4
	R1  = Register(8)  // R1
	R2  = Register(9)  // R2
	R3  = Register(10) // R3
	R4  = Register(11) // R4
	F1  = Register(12) // F1
	F2  = Register(13) // F2
	F3  = Register(14) // F3
	F4  = Register(15) // F4
	IF1 = Register(16) // IF1
	IF2 = Register(17) // IF2
	IF3 = Register(18) // IF3
	IF4 = Register(19) // IF4
)

const (
	CLASS_SIZE     = 4                           // Registers per class.
	REGISTER_COUNT = int(IF4) + 1                // Total number of registers.
	CLASS_COUNT    = REGISTER_COUNT / CLASS_SIZE // Number of register classes.
)

// Class is a register class.
type Class int

const (
	CLASS_GENERAL           = Class(0) // general
	CLASS_SYSTEM            = Class(1) // system
	CLASS_RETURN            = Class(2) // return
	CLASS_FUNCTION          = Class(3) // function
	CLASS_INTERNAL_FUNCTION = Class(4) // internalFunction
	CLASS_ANY               = Class(5) // any
)

// Valid returns true if the register is one of the twenty identities.
func (r Register) Valid() bool {
	return r >= G1 && r <= IF4
}

// Class returns the class the register belongs to.
// Invalid registers belong to no class, and return CLASS_ANY.
func (r Register) Class() Class {
	if !r.Valid() {
		return CLASS_ANY
	}
	return Class(int(r) / CLASS_SIZE)
}

// All returns every register, in identity order.
func All() (regs []Register) {
	regs = make([]Register, 0, REGISTER_COUNT)
	for n := range REGISTER_COUNT {
		regs = append(regs, Register(n))
	}
	return
}

// Members returns the registers of a class.
func (c Class) Members() (regs []Register) {
	if c < CLASS_GENERAL || c >= CLASS_ANY {
		return All()
	}

	base := int(c) * CLASS_SIZE
	for n := range CLASS_SIZE {
		regs = append(regs, Register(base+n))
	}
	return
}

// Parse returns the register for a name such as "G1" or "if3".
func Parse(name string) (r Register, err error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for _, reg := range All() {
		if reg.String() == upper {
			r = reg
			return
		}
	}

	err = ErrName(name)
	return
}

// Narrow checks that a register is a member of a class.
// CLASS_ANY accepts any valid register.
func Narrow(r Register, class Class) (out Register, err error) {
	if !r.Valid() || (class != CLASS_ANY && r.Class() != class) {
		err = &ErrNarrow{Register: r, Class: class}
		return
	}

	out = r
	return
}
