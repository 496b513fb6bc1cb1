package cpu

import (
	"errors"
	"fmt"
	"log"

	"github.com/ezrec/bitsim/io"
)

// Channel is the console I/O channel interface.
type Channel io.Channel

// IP_HALT is the instruction pointer after a Stop has executed.
const IP_HALT = -1

// Cpu is the simulation context for the interpreter.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Program *Program // Program being executed.
	Channel Channel  // Console channel for In, Out, ListInit and Stop.

	Ip       int                        // Index of the next word to execute.
	Register [REGISTER_COUNT]uint32     // Register bank.
	Array    [REGISTER_COUNT]([]uint32) // Arrays, nil until created by List.

	ArrayLimit int // Maximum List size; zero or less (the default) for no limit.
	Ticks      int // Executed instruction counter.
}

// NewCpu creates a new CPU attached to a console channel.
func NewCpu(channel Channel) (cpu *Cpu) {
	cpu = &Cpu{
		Program: &Program{},
		Channel: channel,
	}

	return
}

// Reset the CPU state.
// - Clears the registers and arrays.
// - Zeros the tick counter.
// - Rewinds the console channel.
// - Sets the IP to the first word of the program.
func (cpu *Cpu) Reset() (err error) {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	clear(cpu.Array[:])
	cpu.Ip = 0
	cpu.Ticks = 0

	if cpu.Channel != nil {
		cpu.Channel.Rewind()
	}

	return
}

// Halted returns true once a Stop has executed.
func (cpu *Cpu) Halted() bool {
	return cpu.Ip == IP_HALT
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	ip := "halt"
	if !cpu.Halted() {
		ip = fmt.Sprintf("%d", cpu.Ip)
	}
	text += fmt.Sprintf("% 5s: %v\n", "ip", ip)

	for n, val := range cpu.Register {
		text += fmt.Sprintf("% 5s: %d\n", Register(n).String(), val)
	}

	for n, arr := range cpu.Array {
		strval := "-"
		if arr != nil {
			strval = fmt.Sprintf("%v", arr)
		}
		text += fmt.Sprintf("% 5s: %v\n", "["+Register(n).String()+"]", strval)
	}

	return
}

// FetchWord fetches the word at the instruction pointer.
func (cpu *Cpu) FetchWord() (word Word, err error) {
	if cpu.Halted() {
		err = ErrIpEmpty
		return
	}

	if cpu.Program == nil || cpu.Ip < 0 || cpu.Ip >= cpu.Program.Len() {
		err = ErrIpRange
		return
	}

	word = cpu.Program.Words[cpu.Ip]
	return
}

// Tick executes a single instruction and advances the IP.
func (cpu *Cpu) Tick() (err error) {
	word, err := cpu.FetchWord()
	if err != nil {
		return
	}

	err = cpu.Execute(word)
	cpu.Ticks++
	if err != nil {
		return
	}

	if !cpu.Halted() {
		cpu.Ip++
	}

	return
}

// array returns the array for reg, which must have been created by List.
func (cpu *Cpu) array(reg Register) (arr []uint32, err error) {
	arr = cpu.Array[reg]
	if arr == nil {
		err = ErrArrayMissing
	}
	return
}

// Execute executes a single instruction word.
// Register arithmetic is modulo 2^32; Sub wraps when rhs > lhs.
func (cpu *Cpu) Execute(word Word) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrWord(word), err)
		}
	}()

	if cpu.Verbose {
		log.Printf("%03d: %v", cpu.Ip, word)
	}

	op, err := word.Opcode()
	if err != nil {
		return
	}

	if cpu.Channel == nil {
		switch op {
		case OP_STOP, OP_IN, OP_OUT, OP_LIST_INIT:
			err = ErrChannelInvalid
			return
		}
	}

	switch op {
	case OP_STOP:
		err = cpu.Channel.Message(f("Program ended successfully."))
		cpu.Ip = IP_HALT
	case OP_IN:
		var dst Register
		dst, err = word.RegDecode()
		if err != nil {
			return
		}
		var value uint32
		value, err = cpu.Channel.Receive(f("Enter a value: "))
		if err != nil {
			return
		}
		cpu.Register[dst] = value
	case OP_OUT:
		var src Register
		src, err = word.RegDecode()
		if err != nil {
			return
		}
		err = cpu.Channel.Send(cpu.Register[src])
	case OP_INCR:
		var amount uint32
		var reg Register
		amount, reg, err = word.IncrDecode()
		if err != nil {
			return
		}
		cpu.Register[reg] += amount
	case OP_ADD, OP_SUB, OP_MUL:
		var lhs, rhs, dst Register
		lhs, rhs, dst, err = word.ArithDecode()
		if err != nil {
			return
		}
		a, b := cpu.Register[lhs], cpu.Register[rhs]
		switch op {
		case OP_ADD:
			cpu.Register[dst] = a + b
		case OP_SUB:
			cpu.Register[dst] = a - b
		case OP_MUL:
			cpu.Register[dst] = a * b
		}
	case OP_LIST:
		var amount uint32
		var src, dst Register
		var indirect bool
		amount, src, indirect, dst, err = word.ListDecode()
		if err != nil {
			return
		}
		if indirect {
			amount = cpu.Register[src]
		}
		if cpu.ArrayLimit > 0 && uint64(amount) > uint64(cpu.ArrayLimit) {
			err = ErrArrayLimit
			return
		}
		cpu.Array[dst] = make([]uint32, amount)
	case OP_LIST_INIT:
		var src Register
		src, err = word.RegDecode()
		if err != nil {
			return
		}
		var arr []uint32
		arr, err = cpu.array(src)
		if err != nil {
			return
		}
		for n := range arr {
			arr[n], err = cpu.Channel.Receive(f("Enter value for index %d: ", n))
			if err != nil {
				return
			}
		}
	case OP_LIST_SUM:
		var src, dst Register
		src, dst, err = word.SumDecode()
		if err != nil {
			return
		}
		var arr []uint32
		arr, err = cpu.array(src)
		if err != nil {
			return
		}
		var sum uint32
		for _, value := range arr {
			sum += value
		}
		cpu.Register[dst] = sum
	case OP_TIDY_UP:
		clear(cpu.Register[:])
	default:
		err = ErrOpcodeInvalid
	}

	return
}
