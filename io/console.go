// Package io provides the external collaborators of the virtual machine:
// the Console text sink used by the print instructions, and the CreateFS
// file system used for debug trace output.
package io

import (
	"io"
)

// Console is a write-only, line oriented text sink.
type Console struct {
	Output io.Writer // Destination of console text.
}

// NewConsole creates a console writing to output.
func NewConsole(output io.Writer) *Console {
	return &Console{Output: output}
}

// PrintLine writes text followed by a newline.
// A short write is reported as io.ErrShortWrite.
func (con *Console) PrintLine(text string) (err error) {
	if con == nil || con.Output == nil {
		err = ErrConsoleClosed
		return
	}

	line := text + "\n"
	n, err := io.WriteString(con.Output, line)
	if err != nil {
		return
	}
	if n != len(line) {
		err = io.ErrShortWrite
	}

	return
}
