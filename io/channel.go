// Package io provides the console channel and program source for the
// interpreter. The Console prompts for and reads unsigned integers, and
// writes values and messages; the Rom loads the program text.
package io

// Channel defines the interface for the interpreter's console.
type Channel interface {
	// Rewind discards any buffered input.
	Rewind()
	// Receive writes prompt, then reads one unsigned integer.
	Receive(prompt string) (value uint32, err error)
	// Send writes a value on its own line.
	Send(value uint32) error
	// Message writes a line of text.
	Message(text string) error
}
