// Package syscalls implements the system call table of the virtual machine.
//
// Each entry is selected by a numeric Code, consumes up to three argument
// registers, and returns results through registers (R2 by convention). The
// table only marshals arguments and wraps errors; the calls themselves live
// in calls.go.
package syscalls

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"os"
	"slices"
	"strings"
	"unicode"

	"github.com/ezrec/kvm/fault"
	"github.com/ezrec/kvm/memory"
	"github.com/ezrec/kvm/register"
)

// Code is a system call number.
type Code int

const (
	SYS_GETPID       = Code(0) // Write host process id to R2.
	SYS_CREATE_ARRAY = Code(1) // Allocate array of arg1 cells, base address to R2.
	SYS_STRLEN       = Code(2) // Length of string at address in arg1 to R2.
)

// Host queries the process hosting the virtual machine.
type Host interface {
	Getpid() (pid int, err error)
}

// OsHost is the Host of the running process.
type OsHost struct{}

// Getpid returns the process id of the running process.
func (OsHost) Getpid() (pid int, err error) {
	pid = os.Getpid()
	return
}

// Context is the machine state visible to a system call.
type Context struct {
	Registers *register.Bank
	Memory    *memory.Memory
	Host      Host
}

// Call is a system call table entry.
type Call struct {
	Name string           // Name of the call, used as the error label.
	Args []register.Class // Required class of each consumed argument.
	Func func(ctx *Context, args []register.Register) error
}

// Table is a system call dispatch table.
type Table struct {
	Verbose bool // Set to log each dispatched call.
	Host    Host // Host process queries. Defaults to OsHost.

	calls map[Code](*Call)
}

// NewTable creates a table with the standard system calls installed.
func NewTable() (table *Table) {
	table = &Table{
		Host: OsHost{},
	}

	table.Install(SYS_GETPID, Call{Name: "getpid", Func: getPid})
	table.Install(SYS_CREATE_ARRAY, Call{Name: "createArray", Args: []register.Class{register.CLASS_ANY}, Func: createArray})
	table.Install(SYS_STRLEN, Call{Name: "strlen", Args: []register.Class{register.CLASS_ANY}, Func: strlen})

	return
}

// Install adds a system call to the table.
func (table *Table) Install(code Code, call Call) (err error) {
	if table.calls == nil {
		table.calls = make(map[Code](*Call))
	}

	if _, ok := table.calls[code]; ok {
		err = ErrCallDuplicate
		return
	}

	table.calls[code] = &call
	return
}

// Lookup returns the system call for a code.
func (table *Table) Lookup(code Code) (call *Call, ok bool) {
	call, ok = table.calls[code]
	return
}

// Defines returns SYS_<NAME> assembler defines for every installed call.
func (table *Table) Defines() iter.Seq2[string, string] {
	return func(yield func(key, value string) bool) {
		codes := make([]Code, 0, len(table.calls))
		for code := range table.calls {
			codes = append(codes, code)
		}
		slices.Sort(codes)
		for _, code := range codes {
			name := "SYS_" + defineName(table.calls[code].Name)
			if !yield(name, fmt.Sprintf("%v", int(code))) {
				return
			}
		}
	}
}

// defineName converts a camelCase call name to SCREAMING_SNAKE.
func defineName(name string) string {
	var sb strings.Builder
	for n, r := range name {
		if n > 0 && unicode.IsUpper(r) {
			sb.WriteRune('_')
		}
		sb.WriteRune(unicode.ToUpper(r))
	}
	return sb.String()
}

// fatal errors pass through the table unwrapped.
var fatal = []error{
	memory.ErrOutOfMemory,
	register.ErrConversion,
}

// Dispatch runs a system call.
//
// Argument registers are narrowed to the classes the call requires; a
// mismatch is returned as register.ErrConversion. Out of memory is returned as
// memory.ErrOutOfMemory. Every other failure is returned as a system call
// *fault.Error.
func (table *Table) Dispatch(code Code, bank *register.Bank, mem *memory.Memory, args [3]register.Register) (err error) {
	call, ok := table.calls[code]
	if !ok {
		err = fault.New(fault.FAMILY_SYSTEM_CALL, f("syscall %d", int(code)), fault.ErrSyscallUnknown)
		return
	}

	if table.Verbose {
		log.Printf("syscall: %v %v", call.Name, args[:len(call.Args)])
	}

	used := make([]register.Register, len(call.Args))
	for n, class := range call.Args {
		used[n], err = register.Narrow(args[n], class)
		if err != nil {
			return
		}
	}

	host := table.Host
	if host == nil {
		host = OsHost{}
	}

	ctx := &Context{
		Registers: bank,
		Memory:    mem,
		Host:      host,
	}

	err = call.Func(ctx, used)
	if err == nil {
		return
	}

	for _, target := range fatal {
		if errors.Is(err, target) {
			return
		}
	}

	if _, ok := fault.Of(err); !ok {
		err = fault.New(fault.FAMILY_SYSTEM_CALL, call.Name, err)
	}

	return
}
