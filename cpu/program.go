package cpu

import (
	"iter"
	"slices"
)

// Program is an ordered, immutable list of instruction words.
type Program struct {
	Words []Word
}

// NewProgram parses whitespace separated tokens into a program. Every
// token must be a well formed Word.
func NewProgram(tokens iter.Seq[string]) (prog *Program, err error) {
	prog = &Program{}

	n := 0
	for token := range tokens {
		var word Word
		word, err = ParseWord(token)
		if err != nil {
			err = ErrToken{Index: n, Token: token, Err: err}
			prog = nil
			return
		}
		prog.Words = append(prog.Words, word)
		n++
	}

	return
}

// Len returns the number of words in the program.
func (prog *Program) Len() int {
	return len(prog.Words)
}

// Validate checks the program before execution:
//   - The literal Stop word must be present.
//   - Every opcode must be in range; the first failure is reported.
func (prog *Program) Validate() (err error) {
	if !slices.Contains(prog.Words, WORD_STOP) {
		err = ErrStopMissing
		return
	}

	for _, word := range prog.Words {
		var op Opcode
		op, err = word.Opcode()
		if err != nil {
			return
		}
		if !op.Valid() {
			err = ErrOpcodeRange(word.Field(0, OPCODE_BITS))
			return
		}
	}

	return
}

// All iterates over the program's instruction words by index.
func (prog *Program) All() iter.Seq2[int, Word] {
	return slices.All(prog.Words)
}
