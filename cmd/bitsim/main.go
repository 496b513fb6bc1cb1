package main

import (
	"flag"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/ezrec/bitsim/emulator"
)

// Exit codes.
const (
	EXIT_OK    = 0
	EXIT_ERROR = 1
	EXIT_USAGE = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// isTerminal returns true if r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	file, ok := r.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// run executes the command line in args and returns the process exit code.
func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	var program string
	var limit int
	var echo bool
	var verbose bool

	flags := flag.NewFlagSet("bitsim", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&program, "f", "benchmarkBinary.txt", "Program file of 13-bit instruction words")
	flags.IntVar(&limit, "l", 0, "Maximum array size; 0 for no limit")
	flags.BoolVar(&echo, "e", false, "Echo piped console input after each prompt")
	flags.BoolVar(&verbose, "v", false, "Verbose mode")

	logger := log.New(stderr, "", log.LstdFlags)

	err := flags.Parse(args)
	if err != nil {
		return EXIT_USAGE
	}

	if flags.NArg() != 0 {
		logger.Printf("bitsim: Unknown arguments: %v", flags.Args())
		return EXIT_USAGE
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.ArrayLimit = limit

	emu.Console.Input = stdin
	emu.Console.Output = stdout
	// A terminal already shows what was typed.
	emu.Console.Echo = echo && !isTerminal(stdin)

	err = emu.Load(program)
	if err != nil {
		logger.Printf("%v: %v", program, err)
		return EXIT_ERROR
	}

	err = emu.Reset()
	if err != nil {
		logger.Printf("%v: %v", program, err)
		return EXIT_ERROR
	}

	err = emu.Run()
	if err != nil {
		if verbose {
			logger.Printf("state:\n%v", emu.Cpu.String())
		}
		logger.Print(err)
		return EXIT_ERROR
	}

	return EXIT_OK
}
