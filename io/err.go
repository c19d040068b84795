package io

import (
	"errors"

	"github.com/ezrec/kvm/translate"
)

var f = translate.From

var (
	// Console errors
	ErrConsoleClosed = errors.New(f("console closed"))

	// File system errors
	ErrPathInvalid = errors.New(f("path invalid"))
)
