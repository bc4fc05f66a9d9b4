package bigint

// SubUnsigned sets dest to |x| - |y|, assuming |x| >= |y|. The borrow is
// read from Word's top bit after an intentionally-wrapping subtraction,
// mirroring the carry extraction in AddUnsigned. Aliasing-safe for the
// same reason: each iteration reads x[i]/y[i] before writing dest[i].
func SubUnsigned(dest, x, y *Int) error {
	if err := Grow(dest, x.used); err != nil {
		return err
	}
	old := dest.used

	var borrow Word
	i := 0
	for ; i < y.used; i++ {
		diff := Word(x.digit[i]) - Word(y.digit[i]) - borrow
		borrow = (diff >> (wordBits - 1)) & 1
		dest.digit[i] = Digit(diff) & Mask
	}
	for ; i < x.used; i++ {
		diff := Word(x.digit[i]) - borrow
		borrow = (diff >> (wordBits - 1)) & 1
		dest.digit[i] = Digit(diff) & Mask
	}
	dest.used = x.used

	ZeroUnused(dest, old)
	Clamp(dest)
	return nil
}

// Sub sets dest to a - b, as signed values.
func Sub(dest, a, b *Int) error {
	if a.sign != b.sign {
		dest.sign = a.sign
		return AddUnsigned(dest, a, b)
	}
	if cmpMagnitude(a, b) >= 0 {
		dest.sign = a.sign
		return SubUnsigned(dest, a, b)
	}
	dest.sign = a.sign.Flip()
	return SubUnsigned(dest, b, a)
}
