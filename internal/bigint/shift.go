package bigint

// Shl1 sets dest to src << 1 (multiplication by two). Aliasing-safe: each
// iteration reads src[i] before writing dest[i].
func Shl1(dest, src *Int) error {
	if err := Grow(dest, src.used+1); err != nil {
		return err
	}
	old := dest.used

	var carry Word
	for i := 0; i < src.used; i++ {
		v := (Word(src.digit[i]) << 1) | carry
		dest.digit[i] = Digit(v) & Mask
		carry = v >> DigitBits
	}
	used := src.used
	if carry != 0 {
		dest.digit[used] = Digit(carry)
		used++
	}
	dest.used = used
	dest.sign = src.sign

	ZeroUnused(dest, old)
	Clamp(dest)
	return nil
}

// Shr1 sets dest to src's magnitude shifted right by one bit, keeping src's
// sign (division by two truncated toward zero). Aliasing-safe: each
// iteration reads src[i] before writing dest[i]; the top-to-bottom order
// means the bit carried down from src[i+1] is captured before dest[i+1]
// would ever be written.
func Shr1(dest, src *Int) error {
	if err := Grow(dest, src.used); err != nil {
		return err
	}
	old := dest.used

	var carry Digit
	for i := src.used - 1; i >= 0; i-- {
		next := src.digit[i] & 1
		dest.digit[i] = (src.digit[i] >> 1) | (carry << (DigitBits - 1))
		carry = next
	}
	dest.used = src.used
	dest.sign = src.sign

	ZeroUnused(dest, old)
	Clamp(dest)
	return nil
}

// ShlBitsN sets dest to src << n, for an arbitrary bit count n. Factorial
// uses it for the final power-of-two multiply in the binary-split
// recurrence, where the shift count can run into the thousands of bits.
// Aliasing-safe: digits are written high-to-low, so a destination slot is
// never overwritten before its value has been read.
func ShlBitsN(dest, src *Int, n uint64) error {
	if src.used == 0 || n == 0 {
		return Copy(dest, src)
	}

	digitShift := int(n / DigitBits)
	bitShift := int(n % DigitBits)

	shifted := src
	if bitShift != 0 {
		tmp := New(src.alloc)
		defer func() { src.alloc.Free(tmp.digit) }()
		if err := shlBits(tmp, src, bitShift); err != nil {
			return err
		}
		shifted = tmp
	}

	newUsed := shifted.used + digitShift
	if err := Grow(dest, newUsed); err != nil {
		return err
	}
	old := dest.used

	for i := shifted.used - 1; i >= 0; i-- {
		dest.digit[i+digitShift] = shifted.digit[i]
	}
	for i := 0; i < digitShift; i++ {
		dest.digit[i] = 0
	}
	dest.used = newUsed
	dest.sign = src.sign

	ZeroUnused(dest, old)
	Clamp(dest)
	return nil
}

// shlBits sets dest to src << shift, for 0 <= shift < DigitBits. It
// generalizes Shl1 to an arbitrary sub-digit shift count in one pass,
// which DivMod uses to normalize a divisor's leading digit. Aliasing-safe
// by the same read-before-write argument as Shl1.
func shlBits(dest, src *Int, shift int) error {
	if shift == 0 {
		return Copy(dest, src)
	}
	if err := Grow(dest, src.used+1); err != nil {
		return err
	}
	old := dest.used

	var carry Word
	for i := 0; i < src.used; i++ {
		v := (Word(src.digit[i]) << uint(shift)) | carry
		dest.digit[i] = Digit(v) & Mask
		carry = v >> DigitBits
	}
	used := src.used
	if carry != 0 {
		dest.digit[used] = Digit(carry)
		used++
	}
	dest.used = used
	dest.sign = src.sign

	ZeroUnused(dest, old)
	Clamp(dest)
	return nil
}

// shrBits sets dest to src >> shift, for 0 <= shift < DigitBits. It
// generalizes Shr1 the way shlBits generalizes Shl1, and is what DivMod
// uses to de-normalize a remainder back to the caller's scale.
func shrBits(dest, src *Int, shift int) error {
	if shift == 0 {
		return Copy(dest, src)
	}
	if err := Grow(dest, src.used); err != nil {
		return err
	}
	old := dest.used

	var carry Digit
	for i := src.used - 1; i >= 0; i-- {
		next := src.digit[i] & ((1 << uint(shift)) - 1)
		dest.digit[i] = (src.digit[i] >> uint(shift)) | (carry << uint(DigitBits-shift))
		carry = next
	}
	dest.used = src.used
	dest.sign = src.sign

	ZeroUnused(dest, old)
	Clamp(dest)
	return nil
}
