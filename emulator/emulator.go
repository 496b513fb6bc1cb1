package emulator

import (
	"errors"

	"github.com/ezrec/bitsim/cpu"
	"github.com/ezrec/bitsim/io"
)

// Emulator state. CPU + program + console.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	*cpu.Cpu      // Reference to the CPU simulation.

	Console io.Console // Console IO channel.
	Rom     io.Rom     // Program text.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{}
	emu.Cpu = cpu.NewCpu(&emu.Console)

	return
}

// Load reads and parses the program file at path.
func (emu *Emulator) Load(path string) (err error) {
	err = emu.Rom.Load(path)
	if err != nil {
		return
	}

	err = emu.Parse()
	return
}

// Parse parses the Rom tokens into the CPU's program.
func (emu *Emulator) Parse() (err error) {
	prog, err := cpu.NewProgram(emu.Rom.Receive())
	if err != nil {
		return
	}

	emu.Cpu.Program = prog
	return
}

// Reset validates the program and resets the CPU to its first word.
// No instruction executes unless the whole program is valid.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	err = emu.Cpu.Program.Validate()
	if err != nil {
		return
	}

	err = emu.Cpu.Reset()
	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Ip returns current instruction pointer.
func (emu *Emulator) Ip() int {
	return emu.Cpu.Ip
}

// Word returns the current instruction word.
func (emu *Emulator) Word() cpu.Word {
	word, _ := emu.Cpu.FetchWord()
	return word
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	ip := emu.Ip()
	word := emu.Word()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Index: ip, Word: word, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrIpEmpty) {
		err = nil
		done = true
	}

	return
}

// Run ticks the emulator until the program stops or fails.
func (emu *Emulator) Run() (err error) {
	var done bool
	for !done {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
