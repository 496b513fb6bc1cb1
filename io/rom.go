package io

import (
	"bufio"
	"io"
	"iter"
	"os"
	"slices"
)

// Rom holds the whitespace separated tokens of a program text.
type Rom struct {
	Data []string
}

// Load reads the program text from the file at path. The file is closed
// before Load returns.
func (rc *Rom) Load(path string) (err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	err = rc.Read(inf)
	return
}

// Read replaces the tokens with those read from r.
func (rc *Rom) Read(r io.Reader) (err error) {
	rc.Data = nil

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		rc.Data = append(rc.Data, scanner.Text())
	}

	err = scanner.Err()
	return
}

// Receive returns an iterator over the tokens, in order.
func (rc *Rom) Receive() iter.Seq[string] {
	return slices.Values(rc.Data)
}
