package io

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Console reads whitespace separated unsigned integers from Input, and
// writes prompts, values and messages to Output.
type Console struct {
	Input  io.Reader
	Output io.Writer
	Echo   bool // If set, each value read is echoed after its prompt. Off by default.

	scanner *bufio.Scanner
}

var _ Channel = (*Console)(nil)

// Rewind discards buffered input; the next Receive reads afresh from Input.
func (con *Console) Rewind() {
	con.scanner = nil
}

// Receive writes the prompt, then reads the next token from the input as
// an unsigned 32-bit decimal integer.
func (con *Console) Receive(prompt string) (value uint32, err error) {
	if con.Input == nil {
		err = errors.Join(ErrInput, io.EOF)
		return
	}

	if con.scanner == nil {
		con.scanner = bufio.NewScanner(con.Input)
		con.scanner.Split(bufio.ScanWords)
	}

	if con.Output != nil && len(prompt) != 0 {
		_, err = fmt.Fprint(con.Output, prompt)
		if err != nil {
			return
		}
	}

	if !con.scanner.Scan() {
		err = con.scanner.Err()
		if err == nil {
			err = io.EOF
		}
		err = errors.Join(ErrInput, err)
		return
	}

	token := con.scanner.Text()
	parsed, err := strconv.ParseUint(token, 10, 32)
	if err != nil {
		err = errors.Join(ErrInput, ErrNumber(token))
		return
	}

	value = uint32(parsed)

	if con.Echo && con.Output != nil {
		_, err = fmt.Fprintf(con.Output, "%d\n", value)
	}

	return
}

// Send writes the decimal value on its own line.
func (con *Console) Send(value uint32) (err error) {
	if con.Output == nil {
		return
	}
	_, err = fmt.Fprintf(con.Output, "%d\n", value)
	return
}

// Message writes text on its own line.
func (con *Console) Message(text string) (err error) {
	if con.Output == nil {
		return
	}
	_, err = fmt.Fprintln(con.Output, text)
	return
}
