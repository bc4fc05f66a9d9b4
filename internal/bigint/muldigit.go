package bigint

import "math/bits"

// MulDigit sets dest to src * m, where m is treated as a non-negative
// single digit. m == 0 zeroes dest; powers of two (including 1) dispatch
// to repeated Shl1 rather than the general word-carry loop, since a shift is both
// cheaper and exact without a multiply.
func MulDigit(dest, src *Int, m Digit) error {
	m &= Mask
	switch {
	case m == 0:
		Zero(dest)
		return nil
	case isPowerOfTwo(m):
		if err := Copy(dest, src); err != nil {
			return err
		}
		k := bits.TrailingZeros64(uint64(m))
		for i := 0; i < k; i++ {
			if err := Shl1(dest, dest); err != nil {
				return err
			}
		}
		dest.sign = src.sign
		if dest.used == 0 {
			dest.sign = Positive
		}
		return nil
	}

	if err := Grow(dest, src.used+1); err != nil {
		return err
	}
	old := dest.used

	var carry Word
	for i := 0; i < src.used; i++ {
		prod := carry + Word(src.digit[i])*Word(m)
		dest.digit[i] = Digit(prod) & Mask
		carry = prod >> DigitBits
	}
	dest.digit[src.used] = Digit(carry)
	dest.used = src.used + 1
	dest.sign = src.sign

	ZeroUnused(dest, old)
	Clamp(dest)
	return nil
}

func isPowerOfTwo(m Digit) bool {
	return m != 0 && m&(m-1) == 0
}
