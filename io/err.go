package io

import (
	"errors"

	"github.com/ezrec/bitsim/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrInput = errors.New(f("console input"))
)

// ErrNumber is console input that is not an unsigned 32-bit integer.
type ErrNumber string

func (err ErrNumber) Error() string {
	return f("'%v' is not an unsigned number", string(err))
}
