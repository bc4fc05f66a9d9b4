package bigint

import "math/big"

// toBig converts x to a math/big.Int, used only as an independent oracle
// in tests — never as part of the kernel itself.
func toBig(x *Int) *big.Int {
	result := new(big.Int)
	base := new(big.Int).Lsh(big.NewInt(1), DigitBits)
	for i := x.used - 1; i >= 0; i-- {
		result.Mul(result, base)
		result.Add(result, big.NewInt(int64(x.digit[i])))
	}
	if x.sign == Negative {
		result.Neg(result)
	}
	return result
}

// fromBig converts a math/big.Int into a freshly allocated Int.
func fromBig(b *big.Int, alloc Allocator) *Int {
	x := New(alloc)
	mag := new(big.Int).Abs(b)
	base := new(big.Int).Lsh(big.NewInt(1), DigitBits)
	mod := new(big.Int)

	var digits []Digit
	for mag.Sign() != 0 {
		mag.DivMod(mag, base, mod)
		digits = append(digits, Digit(mod.Uint64()))
	}
	if err := Grow(x, len(digits)); err != nil {
		panic(err)
	}
	copy(x.digit, digits)
	x.used = len(digits)
	if b.Sign() < 0 {
		x.sign = Negative
	}
	Clamp(x)
	return x
}

func newFromInt64(v int64) *Int {
	return NewInt64(v, HeapAllocator{})
}
