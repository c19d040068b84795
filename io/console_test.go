package io

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failWriter struct {
	n   int
	err error
}

func (fw *failWriter) Write(data []byte) (int, error) {
	return fw.n, fw.err
}

func TestConsole_PrintLine(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	con := NewConsole(out)

	assert.NoError(con.PrintLine("hello"))
	assert.NoError(con.PrintLine("42"))
	assert.Equal("hello\n42\n", out.String())
}

func TestConsole_Errors(t *testing.T) {
	assert := assert.New(t)

	var con *Console
	assert.ErrorIs(con.PrintLine("x"), ErrConsoleClosed)
	assert.ErrorIs((&Console{}).PrintLine("x"), ErrConsoleClosed)

	broken := errors.New("broken pipe")
	con = NewConsole(&failWriter{err: broken})
	assert.ErrorIs(con.PrintLine("x"), broken)

	con = NewConsole(&failWriter{n: 1})
	assert.Error(con.PrintLine("xyz"))
}
