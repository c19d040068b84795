package syscalls

import (
	"errors"

	"github.com/ezrec/kvm/fault"
	"github.com/ezrec/kvm/memory"
	"github.com/ezrec/kvm/register"
)

// getPid writes the host process id into R2.
func getPid(ctx *Context, args []register.Register) (err error) {
	pid, err := ctx.Host.Getpid()
	if err != nil {
		err = errors.Join(fault.ErrHost, err)
		return
	}

	ctx.Registers.WriteReturn(register.RETURN_R2, int64(pid))
	return
}

// createArray allocates an array of args[0] cells, preceded by a length
// header, and writes the header address into R2.
func createArray(ctx *Context, args []register.Register) (err error) {
	size := ctx.Registers.Read(args[0])

	spot, err := ctx.Memory.FindFree(size)
	if err != nil {
		return
	}

	err = ctx.Memory.Write(spot, memory.Value(size))
	if err != nil {
		return
	}

	ctx.Registers.WriteReturn(register.RETURN_R2, int64(spot))
	return
}

// strlen writes the length of the string at the address in args[0] into R2.
func strlen(ctx *Context, args []register.Register) (err error) {
	text, err := ctx.Memory.ReadString(memory.Address(ctx.Registers.Read(args[0])))
	if err != nil {
		return
	}

	ctx.Registers.WriteReturn(register.RETURN_R2, int64(len([]rune(text))))
	return
}
