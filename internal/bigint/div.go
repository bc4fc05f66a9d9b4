package bigint

import "math/bits"

// absView returns a read-only view of x with sign forced Positive,
// sharing x's digit slice. It lets the unsigned-magnitude machinery below
// operate on a signed Int's magnitude without mutating x or allocating a
// copy of its digits.
func absView(x *Int) *Int {
	v := *x
	v.sign = Positive
	return &v
}

// DivMod computes q = n/d (truncating toward zero) and r = n - q*d, the
// schoolbook way (Knuth's Algorithm D). Either q or r may be nil when the
// caller only needs the other.
//
// q's sign is Negative iff n and d disagree in sign and q.used > 0. r's
// sign follows n's sign — callers wanting the canonical-residue-range
// remainder use Mod, which adjusts r's sign and magnitude afterward.
func DivMod(q, r *Int, n, d *Int) error {
	if d.used == 0 {
		return ErrDivisionByZero
	}
	// q or r may alias n or d, so the operand signs are read before
	// either result is written.
	nSign, dSign := n.sign, d.sign
	if cmpMagnitude(n, d) < 0 {
		if r != nil {
			if err := Copy(r, n); err != nil {
				return err
			}
		}
		if q != nil {
			Zero(q)
		}
		return nil
	}

	alloc := n.alloc

	if d.used == 1 {
		rem, err := DivModDigit(q, n, d.digit[0])
		if err != nil {
			return err
		}
		if q != nil {
			if q.used > 0 && nSign != dSign {
				q.sign = Negative
			} else {
				q.sign = Positive
			}
		}
		if r != nil {
			if err := SetUint64(r, uint64(rem)); err != nil {
				return err
			}
			if r.used > 0 {
				r.sign = nSign
			}
		}
		return nil
	}

	// Normalize: left-shift both operands so the divisor's leading
	// digit has its top payload bit set.
	shift := DigitBits - 1 - bitLen(d.digit[d.used-1])

	mTotal := n.used
	k := d.used

	nn := New(alloc)
	defer func() { alloc.Free(nn.digit) }()
	if err := shlBits(nn, absView(n), shift); err != nil {
		return err
	}
	if err := Grow(nn, mTotal+1); err != nil {
		return err
	}
	if nn.used < mTotal+1 {
		nn.used = mTotal + 1
	}

	dd := New(alloc)
	defer func() { alloc.Free(dd.digit) }()
	if err := shlBits(dd, absView(d), shift); err != nil {
		return err
	}

	qlen := mTotal + 1 - k
	quot := New(alloc)
	defer func() { alloc.Free(quot.digit) }()
	if err := Grow(quot, qlen); err != nil {
		return err
	}

	tmp, err := alloc.Allocate(k)
	if err != nil {
		return err
	}
	defer alloc.Free(tmp)

	dTop := Word(dd.digit[k-1])
	const base = Word(1) << DigitBits

	for j := qlen - 1; j >= 0; j-- {
		num := (Word(nn.digit[j+k]) << DigitBits) | Word(nn.digit[j+k-1])
		qhat := num / dTop
		if qhat >= base {
			qhat = base - 1
		}

		for {
			var carry, borrow Word
			for i := 0; i < k; i++ {
				p := qhat*Word(dd.digit[i]) + carry
				carry = p >> DigitBits
				sub := Word(nn.digit[j+i]) - (p & Mask) - borrow
				borrow = (sub >> (wordBits - 1)) & 1
				tmp[i] = Digit(sub) & Mask
			}
			topSub := Word(nn.digit[j+k]) - carry - borrow
			if (topSub>>(wordBits-1))&1 != 0 {
				// qhat overshot; Knuth's proof bounds this to at
				// most two retries for a normalized divisor.
				qhat--
				continue
			}
			for i := 0; i < k; i++ {
				nn.digit[j+i] = tmp[i]
			}
			nn.digit[j+k] = Digit(topSub) & Mask
			break
		}

		quot.digit[j] = Digit(qhat)
	}

	quot.used = qlen
	quot.sign = Positive
	Clamp(quot)

	remMag := New(alloc)
	defer func() { alloc.Free(remMag.digit) }()
	if err := Grow(remMag, k); err != nil {
		return err
	}
	copy(remMag.digit[:k], nn.digit[:k])
	remMag.used = k
	remMag.sign = Positive
	Clamp(remMag)

	if q != nil {
		if err := Copy(q, quot); err != nil {
			return err
		}
		if q.used > 0 && nSign != dSign {
			q.sign = Negative
		} else {
			q.sign = Positive
		}
	}
	if r != nil {
		if err := shrBits(r, remMag, shift); err != nil {
			return err
		}
		if r.used > 0 {
			r.sign = nSign
		}
	}
	return nil
}

// bitLen returns the index (0-based) of the highest set bit in v. v must
// be non-zero.
func bitLen(v Digit) int {
	return bits.Len64(uint64(v)) - 1
}
