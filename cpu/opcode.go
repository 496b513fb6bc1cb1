package cpu

import (
	"fmt"
	"strings"
)

// Opcode is the 5-bit operation selector of a Word.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_STOP      = Opcode(0)  // stop
	OP_IN        = Opcode(1)  // in
	OP_OUT       = Opcode(2)  // out
	OP_INCR      = Opcode(3)  // incr
	OP_ADD       = Opcode(4)  // add
	OP_SUB       = Opcode(5)  // sub
	OP_MUL       = Opcode(6)  // mul
	OP_LIST      = Opcode(7)  // list
	OP_LIST_INIT = Opcode(8)  // listinit
	OP_LIST_SUM  = Opcode(9)  // listsum
	OP_TIDY_UP   = Opcode(10) // tidyup
)

// Instruction layout.
const (
	WORD_BITS     = 13
	OPCODE_BITS   = 5
	REGISTER_BITS = 2
	AMOUNT_BITS   = 6

	FIELD_A = 5  // First operand; register or the start of an amount.
	FIELD_B = 7  // Second register operand.
	FIELD_C = 9  // Third register operand.
	FIELD_D = 11 // Trailing register operand, after an amount.
)

// WORD_STOP is the literal Stop instruction every program must contain.
const WORD_STOP = Word("0000000000000")

// listIndirect is the value of bits [7,11) that selects a register-sized List.
const listIndirect = "0000"

// Word is a single 13-bit instruction, as a string of binary digits.
type Word string

// ParseWord checks that token is a well formed instruction word.
func ParseWord(token string) (word Word, err error) {
	if len(token) != WORD_BITS {
		err = ErrWordLength
		return
	}

	_, err = Decode(token)
	if err != nil {
		return
	}

	word = Word(token)
	return
}

// Field returns the width digits of the word starting at offset, or the
// empty string if the word is too short.
func (word Word) Field(offset, width int) string {
	if offset < 0 || width < 0 || offset+width > len(word) {
		return ""
	}
	return string(word[offset : offset+width])
}

// Opcode decodes the opcode field.
func (word Word) Opcode() (op Opcode, err error) {
	if len(word) < OPCODE_BITS {
		err = ErrWordLength
		return
	}

	value, err := Decode(word.Field(0, OPCODE_BITS))
	op = Opcode(value)
	return
}

// Valid returns true if the opcode is a defined operation.
func (op Opcode) Valid() bool {
	return op >= OP_STOP && op <= OP_TIDY_UP
}

// Register decodes the register code at offset.
func (word Word) Register(offset int) (Register, error) {
	return ParseRegister(word.Field(offset, REGISTER_BITS))
}

// Amount decodes the 6-bit literal at offset.
func (word Word) Amount(offset int) (uint32, error) {
	bits := word.Field(offset, AMOUNT_BITS)
	if len(bits) != AMOUNT_BITS {
		return 0, ErrWordLength
	}
	return Decode(bits)
}

// RegDecode decodes the single register operand of In, Out and ListInit.
func (word Word) RegDecode() (reg Register, err error) {
	return word.Register(FIELD_A)
}

// IncrDecode decodes the amount and target register of Incr.
func (word Word) IncrDecode() (amount uint32, reg Register, err error) {
	amount, err = word.Amount(FIELD_A)
	if err != nil {
		return
	}
	reg, err = word.Register(FIELD_D)
	return
}

// ArithDecode decodes the operands of Add, Sub and Mul.
func (word Word) ArithDecode() (lhs, rhs, dst Register, err error) {
	lhs, err = word.Register(FIELD_A)
	if err != nil {
		return
	}
	rhs, err = word.Register(FIELD_B)
	if err != nil {
		return
	}
	dst, err = word.Register(FIELD_C)
	return
}

// ListDecode decodes the operands of List. When indirect is set, the array
// size is held in register src; otherwise it is the literal amount.
func (word Word) ListDecode() (amount uint32, src Register, indirect bool, dst Register, err error) {
	if word.Field(FIELD_B, 4) == listIndirect {
		indirect = true
		src, err = word.Register(FIELD_A)
	} else {
		amount, err = word.Amount(FIELD_A)
	}
	if err != nil {
		return
	}
	dst, err = word.Register(FIELD_D)
	return
}

// SumDecode decodes the array and destination registers of ListSum.
func (word Word) SumDecode() (src, dst Register, err error) {
	src, err = word.Register(FIELD_A)
	if err != nil {
		return
	}
	dst, err = word.Register(FIELD_B)
	return
}

// String returns the disassembly of the word, or the raw digits if it
// does not decode.
func (word Word) String() (out string) {
	op, err := word.Opcode()
	if err != nil || !op.Valid() {
		return string(word)
	}

	args := []string{op.String()}

	switch op {
	case OP_STOP, OP_TIDY_UP:
	case OP_IN, OP_OUT, OP_LIST_INIT:
		var reg Register
		reg, err = word.RegDecode()
		args = append(args, reg.String())
	case OP_INCR:
		var amount uint32
		var reg Register
		amount, reg, err = word.IncrDecode()
		args = append(args, reg.String(), fmt.Sprintf("#%v", amount))
	case OP_ADD, OP_SUB, OP_MUL:
		var lhs, rhs, dst Register
		lhs, rhs, dst, err = word.ArithDecode()
		args = append(args, lhs.String(), rhs.String(), dst.String())
	case OP_LIST:
		var amount uint32
		var src, dst Register
		var indirect bool
		amount, src, indirect, dst, err = word.ListDecode()
		if indirect {
			args = append(args, dst.String(), "["+src.String()+"]")
		} else {
			args = append(args, dst.String(), fmt.Sprintf("#%v", amount))
		}
	case OP_LIST_SUM:
		var src, dst Register
		src, dst, err = word.SumDecode()
		args = append(args, src.String(), dst.String())
	}

	if err != nil {
		return string(word)
	}

	out = strings.Join(args, " ")
	return
}
