package emulator

import (
	"github.com/ezrec/bitsim/cpu"
	"github.com/ezrec/bitsim/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Index int
	Word  cpu.Word
	Err   error
}

func (err *ErrRuntime) Error() string {
	return f("instruction %d %v", err.Index, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
