package bigint

// AddUnsigned sets dest to |a| + |b|, ignoring both operands' signs.
// Aliasing-safe: every inner-loop iteration reads x[i] and y[i] before
// writing dest[i], so dest may be the same *Int as a, b, or both.
func AddUnsigned(dest, a, b *Int) error {
	x, y := a, b
	if x.used < y.used {
		x, y = y, x
	}
	if err := Grow(dest, x.used+1); err != nil {
		return err
	}
	old := dest.used

	var carry Word
	i := 0
	for ; i < y.used; i++ {
		sum := Word(x.digit[i]) + Word(y.digit[i]) + carry
		dest.digit[i] = Digit(sum) & Mask
		carry = sum >> DigitBits
	}
	for ; i < x.used; i++ {
		sum := Word(x.digit[i]) + carry
		dest.digit[i] = Digit(sum) & Mask
		carry = sum >> DigitBits
	}
	dest.digit[i] = Digit(carry)
	dest.used = x.used + 1

	ZeroUnused(dest, old)
	Clamp(dest)
	return nil
}

// Add sets dest to a + b, as signed values.
func Add(dest, a, b *Int) error {
	if a.sign == b.sign {
		dest.sign = a.sign
		return AddUnsigned(dest, a, b)
	}
	// Opposite signs: a + b == (larger magnitude) - (smaller magnitude),
	// with the result taking the larger operand's sign.
	if cmpMagnitude(a, b) >= 0 {
		dest.sign = a.sign
		return SubUnsigned(dest, a, b)
	}
	dest.sign = b.sign
	return SubUnsigned(dest, b, a)
}
