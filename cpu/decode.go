package cpu

// Decode converts a string of binary digits, most significant first, into
// its unsigned value. The empty string decodes to zero.
func Decode(bits string) (value uint32, err error) {
	if len(bits) > 32 {
		err = ErrBitOverflow
		return
	}

	for n := range len(bits) {
		value <<= 1
		switch bits[n] {
		case '0':
		case '1':
			value |= 1
		default:
			value = 0
			err = ErrBitInvalid
			return
		}
	}

	return
}
