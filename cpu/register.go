package cpu

// Register is a decoded 2-bit register code.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_0 = Register(0) // 00
	REG_1 = Register(1) // 01
	REG_2 = Register(2) // 10
	REG_3 = Register(3) // 11
)

const REGISTER_COUNT = 4

// ValidRegister returns true if code is one of "00", "01", "10" or "11".
func ValidRegister(code string) bool {
	_, err := ParseRegister(code)
	return err == nil
}

// ParseRegister decodes a register code.
func ParseRegister(code string) (reg Register, err error) {
	if len(code) != REGISTER_BITS {
		err = ErrRegister(code)
		return
	}

	value, err := Decode(code)
	if err != nil {
		err = ErrRegister(code)
		return
	}

	reg = Register(value)
	return
}
