package bigint

import "fmt"

// mulComba multiplies |a| and |b| by accumulating each output column's
// full cross-product sum in a raw Word accumulator before any masking,
// then makes a single pass extracting digits and propagating carry. This
// is what separates it from schoolbook: the multiply-accumulate step
// never touches the destination digit array, only the column buffer, so
// there is no per-term carry to propagate until the whole column is
// summed. Correct only when CurrentThresholds() guarantees no column sum
// can overflow a Word, which is the caller's responsibility (see
// dispatch in Mul).
func mulComba(dest, a, b *Int) error {
	n := a.used + b.used
	cols, err := a.alloc.Allocate(n + 1)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutOfMemory, err)
	}
	defer a.alloc.Free(cols)

	for i := 0; i < a.used; i++ {
		ai := Word(a.digit[i])
		if ai == 0 {
			continue
		}
		row := b.digit[:b.used]
		for j, bj := range row {
			cols[i+j] += ai * Word(bj)
		}
	}

	scratch := New(a.alloc)
	defer func() { a.alloc.Free(scratch.digit) }()
	if err := Grow(scratch, n+1); err != nil {
		return err
	}

	var carry Word
	for c := 0; c <= n; c++ {
		sum := cols[c] + carry
		scratch.digit[c] = Digit(sum) & Mask
		carry = sum >> DigitBits
	}
	scratch.used = n + 1
	scratch.sign = Positive
	Clamp(scratch)
	return Copy(dest, scratch)
}
