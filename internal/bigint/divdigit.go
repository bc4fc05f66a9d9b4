package bigint

import "math/bits"

// DivModDigit computes |n| / d and returns |n| % d as a digit, optionally
// writing the quotient into q (q may be nil when only the remainder is
// needed, per spec.md's "omit its computation where possible"). d is
// treated as a non-negative single digit; the quotient's sign follows n's
// sign, since d is never negative.
//
// Fast paths cover d == 0 (error), n == 0, d == 1, and d a power of two
// (remainder is then just n's low bits, quotient a repeated Shr1). The
// source material also special-cases d == 3 with a reciprocal-multiply
// trick for speed; that optimization changes no observable result, so it
// is omitted here in favor of the general path.
func DivModDigit(q *Int, n *Int, d Digit) (Digit, error) {
	d &= Mask
	if d == 0 {
		return 0, ErrDivisionByZero
	}
	if n.used == 0 {
		if q != nil {
			Zero(q)
		}
		return 0, nil
	}
	if d == 1 {
		if q != nil {
			if err := Copy(q, n); err != nil {
				return 0, err
			}
		}
		return 0, nil
	}
	if isPowerOfTwo(d) {
		rem := n.digit[0] & (d - 1)
		if q != nil {
			if err := Copy(q, n); err != nil {
				return 0, err
			}
			k := bits.TrailingZeros64(uint64(d))
			for i := 0; i < k; i++ {
				if err := Shr1(q, q); err != nil {
					return 0, err
				}
			}
		}
		return rem, nil
	}

	writeQ := q != nil
	var oldUsed int
	if writeQ {
		if err := Grow(q, n.used); err != nil {
			return 0, err
		}
		oldUsed = q.used
	}

	var w Word
	for i := n.used - 1; i >= 0; i-- {
		w = (w << DigitBits) | Word(n.digit[i])
		var qi Digit
		if w >= Word(d) {
			qi = Digit(w / Word(d))
			w -= Word(qi) * Word(d)
		}
		if writeQ {
			q.digit[i] = qi
		}
	}

	if writeQ {
		q.used = n.used
		q.sign = n.sign
		ZeroUnused(q, oldUsed)
		Clamp(q)
	}
	return Digit(w), nil
}
