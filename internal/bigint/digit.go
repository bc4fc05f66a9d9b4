package bigint

// AddDigit sets dest to a + d, where d is treated as a non-negative
// single digit (the high bits above DigitBits are masked off).
//
// For non-negative a, this takes a genuine fast path: copy a, then
// carry-propagate the single-digit add starting at index 0, growing
// dest.used by exactly as many digits as the carry chain touches. The
// growth is unconditional in the sense that dest.used always ends up at
// least as large as the highest touched index plus one; Clamp
// afterward is what restores canonical form when the carry chain didn't
// actually lengthen the value (e.g. adding 1 to ...999 in the low digit
// only, with no overflow).
//
// For negative a, AddDigit reduces to SubDigit on |a|, then flips the
// sign of the result: a + d == -(|a| - d).
func AddDigit(dest, a *Int, d Digit) error {
	d &= Mask
	if a.sign == Negative {
		pos := *a
		pos.sign = Positive
		if err := SubDigit(dest, &pos, d); err != nil {
			return err
		}
		if dest.used > 0 {
			dest.sign = dest.sign.Flip()
		}
		return nil
	}

	if err := Copy(dest, a); err != nil {
		return err
	}
	carry := Word(d)
	i := 0
	for carry != 0 {
		if i >= dest.used {
			if err := Grow(dest, i+1); err != nil {
				return err
			}
			dest.used = i + 1
		}
		sum := Word(dest.digit[i]) + carry
		dest.digit[i] = Digit(sum) & Mask
		carry = sum >> DigitBits
		i++
	}
	dest.sign = Positive
	Clamp(dest)
	return nil
}

// SubDigit sets dest to a - d, where d is treated as a non-negative
// single digit.
//
// For negative a, a - d == -(|a| + d), realized via AddDigit on |a|.
// For non-negative a, the two cases where the result can go negative
// (a == 0, or a a single digit smaller than d) are handled directly;
// otherwise a borrow-propagating fast path subtracts d from digit 0
// and carries the borrow bit upward, which terminates within a.used
// digits precisely because a >= d was established by the cases above.
func SubDigit(dest, a *Int, d Digit) error {
	d &= Mask
	if a.sign == Negative {
		pos := *a
		pos.sign = Positive
		if err := AddDigit(dest, &pos, d); err != nil {
			return err
		}
		if dest.used > 0 {
			dest.sign = Negative
		}
		return nil
	}

	if a.used == 0 {
		if err := SetUint64(dest, uint64(d)); err != nil {
			return err
		}
		if dest.used > 0 {
			dest.sign = Negative
		}
		return nil
	}
	if a.used == 1 && a.digit[0] < d {
		if err := SetUint64(dest, uint64(d-a.digit[0])); err != nil {
			return err
		}
		if dest.used > 0 {
			dest.sign = Negative
		}
		return nil
	}

	if err := Copy(dest, a); err != nil {
		return err
	}
	borrow := Word(d)
	for i := 0; borrow != 0 && i < dest.used; i++ {
		diff := Word(dest.digit[i]) - borrow
		borrow = (diff >> (wordBits - 1)) & 1
		dest.digit[i] = Digit(diff) & Mask
	}
	dest.sign = Positive
	Clamp(dest)
	return nil
}
