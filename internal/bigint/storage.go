package bigint

import "fmt"

// New creates a zero-valued Int using alloc for its backing storage. A nil
// alloc defaults to HeapAllocator{}.
func New(alloc Allocator) *Int {
	if alloc == nil {
		alloc = HeapAllocator{}
	}
	digits, _ := alloc.Allocate(defaultDigitCount)
	return &Int{digit: digits, used: 0, sign: Positive, alloc: alloc}
}

// NewInt64 creates an Int holding v.
func NewInt64(v int64, alloc Allocator) *Int {
	x := New(alloc)
	_ = SetInt64(x, v)
	return x
}

// NewUint64 creates an Int holding v.
func NewUint64(v uint64, alloc Allocator) *Int {
	x := New(alloc)
	_ = SetUint64(x, v)
	return x
}

// Grow ensures dest's backing storage has capacity for at least
// max(n, defaultDigitCount) digits, zero-filling any newly exposed slots.
// It never shrinks the backing storage.
func Grow(dest *Int, n int) error {
	if n < defaultDigitCount {
		n = defaultDigitCount
	}
	if len(dest.digit) >= n {
		return nil
	}
	grown, err := dest.alloc.Reallocate(dest.digit, n)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutOfMemory, err)
	}
	dest.digit = grown
	return nil
}

// Clamp sets dest.used to the index past the last non-zero digit,
// dropping leading zero digits, and forces sign to Positive if the
// result is zero. Idempotent.
func Clamp(dest *Int) {
	for dest.used > 0 && dest.digit[dest.used-1] == 0 {
		dest.used--
	}
	if dest.used == 0 {
		dest.sign = Positive
	}
}

// ZeroUnused zeros digit[dest.used:end), where end defaults to the full
// backing capacity when oldUsed is omitted and is otherwise clamped to
// that capacity. Call after setting dest.used to a possibly-smaller
// value, before Clamp.
func ZeroUnused(dest *Int, oldUsed ...int) {
	end := len(dest.digit)
	if len(oldUsed) > 0 && oldUsed[0] < end {
		end = oldUsed[0]
	}
	for i := dest.used; i < end; i++ {
		dest.digit[i] = 0
	}
}

// Zero sets dest to the value 0.
func Zero(dest *Int) {
	old := dest.used
	dest.used = 0
	dest.sign = Positive
	ZeroUnused(dest, old)
}

// Copy sets dest to src's value. Safe when dest == src.
func Copy(dest, src *Int) error {
	if dest == src {
		return nil
	}
	if err := Grow(dest, src.used); err != nil {
		return err
	}
	old := dest.used
	copy(dest.digit, src.digit[:src.used])
	dest.used = src.used
	dest.sign = src.sign
	ZeroUnused(dest, old)
	Clamp(dest)
	return nil
}

// SetUint64 sets dest to v.
func SetUint64(dest *Int, v uint64) error {
	n := 0
	for t := v; t != 0; t >>= DigitBits {
		n++
	}
	if err := Grow(dest, n); err != nil {
		return err
	}
	old := dest.used
	i := 0
	for v != 0 {
		dest.digit[i] = Digit(v) & Mask
		v >>= DigitBits
		i++
	}
	dest.used = i
	dest.sign = Positive
	ZeroUnused(dest, old)
	Clamp(dest)
	return nil
}

// SetInt64 sets dest to v.
func SetInt64(dest *Int, v int64) error {
	if v >= 0 {
		if err := SetUint64(dest, uint64(v)); err != nil {
			return err
		}
		dest.sign = Positive
		return nil
	}
	// -(v+1)+1 computes |v| without overflow even when v == math.MinInt64.
	mag := uint64(-(v + 1)) + 1
	if err := SetUint64(dest, mag); err != nil {
		return err
	}
	if dest.used > 0 {
		dest.sign = Negative
	}
	return nil
}

// cmpMagnitude compares |a| and |b|, returning -1, 0, or 1.
func cmpMagnitude(a, b *Int) int {
	if a.used != b.used {
		if a.used < b.used {
			return -1
		}
		return 1
	}
	for i := a.used - 1; i >= 0; i-- {
		if a.digit[i] != b.digit[i] {
			if a.digit[i] < b.digit[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Cmp compares a and b as signed values, returning -1, 0, or 1.
func Cmp(a, b *Int) int {
	if a.sign != b.sign {
		if a.used == 0 && b.used == 0 {
			return 0
		}
		if a.sign == Negative {
			return -1
		}
		return 1
	}
	m := cmpMagnitude(a, b)
	if a.sign == Negative {
		return -m
	}
	return m
}
