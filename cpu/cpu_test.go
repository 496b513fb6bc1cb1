package cpu

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/bitsim/io"
)

// newTestCpu returns a CPU running text, with console input and output.
func newTestCpu(t *testing.T, text string, input string) (cpu *Cpu, output *bytes.Buffer) {
	output = &bytes.Buffer{}
	console := &io.Console{
		Input:  strings.NewReader(input),
		Output: output,
	}

	cpu = NewCpu(console)
	cpu.Program = parseProgram(t, text)
	assert.NoError(t, cpu.Program.Validate())
	assert.NoError(t, cpu.Reset())

	return
}

// runCpu ticks until halted or an error occurs.
func runCpu(cpu *Cpu) (err error) {
	for !cpu.Halted() {
		err = cpu.Tick()
		if err != nil {
			return
		}
	}
	return
}

func TestCpuIn(t *testing.T) {
	assert := assert.New(t)

	cpu, output := newTestCpu(t, "0000100000000 0000000000000", "5\n")

	assert.NoError(runCpu(cpu))
	assert.Equal(uint32(5), cpu.Register[REG_0])
	assert.Equal("Enter a value: Program ended successfully.\n", output.String())
	assert.Equal(2, cpu.Ticks)

	err := cpu.Tick()
	assert.ErrorIs(err, ErrIpEmpty)
}

func TestCpuAdd(t *testing.T) {
	assert := assert.New(t)

	program := strings.Join([]string{
		"0000100000000", // in 00
		"0000101000000", // in 01
		"0010000011000", // add 00 01 10
		"0001010000000", // out 10
		"0000000000000", // stop
	}, " ")

	cpu, output := newTestCpu(t, program, "5 0")

	assert.NoError(runCpu(cpu))
	assert.Equal(uint32(5), cpu.Register[REG_2])
	assert.True(strings.HasSuffix(output.String(), "5\nProgram ended successfully.\n"), output.String())
}

func TestCpuArithmetic(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		word  Word
		a, b  uint32
		dst   Register
		value uint32
	}){
		{"add", "0010000011000", 7, 3, REG_2, 10},
		{"add_wrap", "0010000011000", 0xffffffff, 2, REG_2, 1},
		{"sub", "0010100011000", 7, 3, REG_2, 4},
		{"sub_wrap", "0010100011000", 3, 5, REG_2, 0xfffffffe},
		{"mul", "0011000011100", 7, 3, REG_3, 21},
		{"mul_wrap", "0011000011100", 0x10000, 0x10000, REG_3, 0},
		{"add_self", "0010000000000", 6, 0, REG_0, 12},
	}

	for _, entry := range table {
		cpu := NewCpu(nil)
		cpu.Register[REG_0] = entry.a
		cpu.Register[REG_1] = entry.b

		err := cpu.Execute(entry.word)
		assert.NoError(err, entry.name)
		assert.Equal(entry.value, cpu.Register[entry.dst], entry.name)
	}
}

func TestCpuIncr(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(nil)
	assert.NoError(cpu.Execute("0001100010110")) // incr 10 #5
	assert.NoError(cpu.Execute("0001111111110")) // incr 10 #63
	assert.Equal(uint32(68), cpu.Register[REG_2])
	assert.Equal(uint32(0), cpu.Register[REG_0])
}

func TestCpuTidyUp(t *testing.T) {
	assert := assert.New(t)

	program := strings.Join([]string{
		"0000100000000", // in 00
		"0001100010110", // incr 10 #5
		"0011100010001", // list 01 #4
		"0101000000000", // tidyup
		"0001000000000", // out 00
		"0001010000000", // out 10
		"0000000000000", // stop
	}, " ")

	cpu, output := newTestCpu(t, program, "99")

	assert.NoError(runCpu(cpu))
	assert.Equal([REGISTER_COUNT]uint32{}, cpu.Register)
	assert.Len(cpu.Array[REG_1], 4)
	assert.Equal("Enter a value: 0\n0\nProgram ended successfully.\n", output.String())
}

func TestCpuListSum(t *testing.T) {
	assert := assert.New(t)

	program := strings.Join([]string{
		"0011100010001", // list 01 #4
		"0100001000000", // listinit 01
		"0100101110000", // listsum 01 11
		"0001011000000", // out 11
		"0000000000000", // stop
	}, " ")

	cpu, output := newTestCpu(t, program, "1 2 3 4")

	assert.NoError(runCpu(cpu))
	assert.Equal([]uint32{1, 2, 3, 4}, cpu.Array[REG_1])
	assert.Equal(uint32(10), cpu.Register[REG_3])
	assert.Equal("Enter value for index 0: "+
		"Enter value for index 1: "+
		"Enter value for index 2: "+
		"Enter value for index 3: "+
		"10\nProgram ended successfully.\n", output.String())
}

func TestCpuListIndirect(t *testing.T) {
	assert := assert.New(t)

	program := strings.Join([]string{
		"0000110000000", // in 10
		"0011110000011", // list 11 [10]
		"0100011000000", // listinit 11
		"0100111000000", // listsum 11 00
		"0000000000000", // stop
	}, " ")

	cpu, _ := newTestCpu(t, program, "3 10 20 30")

	assert.NoError(runCpu(cpu))
	assert.Equal([]uint32{10, 20, 30}, cpu.Array[REG_3])
	assert.Equal(uint32(60), cpu.Register[REG_0])
}

func TestCpuListEmpty(t *testing.T) {
	assert := assert.New(t)

	// list 00 [00] with r00 == 0 is an empty array.
	program := "0011100000000 0100000000000 0100100010000 0000000000000"

	cpu, output := newTestCpu(t, program, "")

	assert.NoError(runCpu(cpu))
	assert.NotNil(cpu.Array[REG_0])
	assert.Len(cpu.Array[REG_0], 0)
	assert.Equal(uint32(0), cpu.Register[REG_1])
	assert.Equal("Program ended successfully.\n", output.String())
}

func TestCpuListLimit(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(nil)
	cpu.ArrayLimit = 8
	cpu.Register[REG_2] = 9

	err := cpu.Execute("0011110000011") // list 11 [10]
	assert.ErrorIs(err, ErrArrayLimit)
	assert.Nil(cpu.Array[REG_3])

	cpu.Register[REG_2] = 8
	assert.NoError(cpu.Execute("0011110000011"))
	assert.Len(cpu.Array[REG_3], 8)

	cpu.ArrayLimit = 0
	cpu.Register[REG_2] = 100000
	assert.NoError(cpu.Execute("0011110000011"))
	assert.Len(cpu.Array[REG_3], 100000)
}

func TestCpuArrayMissing(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu(t, "0100101110000 0000000000000", "")

	err := runCpu(cpu)
	assert.ErrorIs(err, ErrArrayMissing)
	assert.ErrorIs(err, ErrWord(""))
	assert.Equal(0, cpu.Ip)

	cpu, _ = newTestCpu(t, "0100001000000 0000000000000", "1")
	assert.ErrorIs(runCpu(cpu), ErrArrayMissing)
}

func TestCpuOperandError(t *testing.T) {
	assert := assert.New(t)

	cpu, output := newTestCpu(t, "0001100000110 0000000000000", "")

	// The earlier mutation stays; nothing after the bad word runs.
	cpu.Program.Words = []Word{"0001100000110", "00010x2000000", WORD_STOP}

	assert.NoError(cpu.Tick())
	assert.Equal(uint32(1), cpu.Register[REG_2])

	err := cpu.Tick()
	assert.ErrorIs(err, ErrRegister(""))
	assert.Contains(err.Error(), "x2")
	assert.Equal(1, cpu.Ip)
	assert.False(cpu.Halted())
	assert.Equal(uint32(1), cpu.Register[REG_2])
	assert.Equal("", output.String())
}

func TestCpuInputError(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu(t, "0000100000000 0000000000000", "five")
	err := runCpu(cpu)
	assert.ErrorIs(err, io.ErrInput)
	assert.True(errors.As(err, new(io.ErrNumber)))

	cpu, _ = newTestCpu(t, "0000100000000 0000000000000", "")
	assert.ErrorIs(runCpu(cpu), io.ErrInput)
}

func TestCpuNoChannel(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(nil)
	for _, word := range []Word{WORD_STOP, "0000100000000", "0001000000000", "0100000000000"} {
		assert.ErrorIs(cpu.Execute(word), ErrChannelInvalid, string(word))
	}
}

func TestCpuIpRange(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(nil)
	cpu.Program = parseProgram(t, "0101000000000")
	assert.NoError(cpu.Tick())
	assert.ErrorIs(cpu.Tick(), ErrIpRange)
}

func TestCpuReset(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu(t, "0000100000000 0011100010001 0000000000000", "7")
	assert.NoError(runCpu(cpu))
	assert.True(cpu.Halted())

	assert.NoError(cpu.Reset())
	assert.Equal(0, cpu.Ip)
	assert.Equal(0, cpu.Ticks)
	assert.Equal([REGISTER_COUNT]uint32{}, cpu.Register)
	assert.Nil(cpu.Array[REG_1])
}

func TestCpuString(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(nil)
	cpu.Register[REG_3] = 42
	cpu.Array[REG_1] = []uint32{1, 2}

	text := cpu.String()
	assert.Contains(text, "   ip: 0\n")
	assert.Contains(text, "   11: 42\n")
	assert.Contains(text, " [01]: [1 2]\n")
	assert.Contains(text, " [00]: -\n")

	cpu.Ip = IP_HALT
	assert.Contains(cpu.String(), "   ip: halt\n")
}
