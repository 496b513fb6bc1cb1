package cpu

import (
	"errors"

	"github.com/ezrec/bitsim/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrIpEmpty        = errors.New(f("ip empty"))
	ErrIpRange        = errors.New(f("ip beyond end of program"))
	ErrChannelInvalid = errors.New(f("channel invalid"))
	ErrArrayMissing   = errors.New(f("array missing"))
	ErrArrayLimit     = errors.New(f("array size exceeds limit"))

	// Instruction decode errors
	ErrBitInvalid    = errors.New(f("not a binary number"))
	ErrBitOverflow   = errors.New(f("binary number exceeds 32 bits"))
	ErrWordLength    = errors.New(f("instruction is not 13 bits"))
	ErrOpcodeInvalid = errors.New(f("opcode invalid"))

	// Program errors
	ErrStopMissing = errors.New(f("could not find the 'Stop' instruction"))
)

// ErrRegister is an invalid register code.
type ErrRegister string

func (er ErrRegister) Error() string {
	return f("invalid register '%v'", string(er))
}

func (er ErrRegister) Is(err error) (ok bool) {
	_, ok = err.(ErrRegister)
	return
}

// ErrOpcodeRange is an opcode field that decodes beyond the last opcode.
type ErrOpcodeRange string

func (eo ErrOpcodeRange) Error() string {
	return f("invalid opcode '%v'", string(eo))
}

func (eo ErrOpcodeRange) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcodeRange)
	return
}

// ErrWord tags an execution error with the instruction word.
type ErrWord Word

func (ew ErrWord) Error() string {
	return f("bad instruction %v %v", string(ew), Word(ew).String())
}

func (ew ErrWord) Is(err error) (ok bool) {
	_, ok = err.(ErrWord)
	return
}

// ErrToken locates a malformed token in the program text.
type ErrToken struct {
	Index int
	Token string
	Err   error
}

func (err ErrToken) Error() string {
	return f("token %d '%v' %v", err.Index, err.Token, err.Err)
}

func (err ErrToken) Unwrap() error {
	return err.Err
}
