package bigint

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestMulDigitMatchesMathBig(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("MulDigit matches math/big", prop.ForAll(
		func(v uint64, d uint32) bool {
			x := New(HeapAllocator{})
			_ = SetUint64(x, v)
			dest := New(HeapAllocator{})
			if err := MulDigit(dest, x, Digit(d)); err != nil {
				return false
			}
			want := new(big.Int).Mul(new(big.Int).SetUint64(v), big.NewInt(int64(d)))
			return toBig(dest).Cmp(want) == 0
		},
		gen.UInt64Range(0, 1<<40),
		gen.UInt32Range(0, uint32(Mask)),
	))

	properties.TestingRun(t)
}

func TestMulDigitPowerOfTwoFastPath(t *testing.T) {
	x := New(HeapAllocator{})
	_ = SetUint64(x, 123456789)
	dest := New(HeapAllocator{})
	if err := MulDigit(dest, x, 16); err != nil {
		t.Fatal(err)
	}
	want := new(big.Int).Mul(toBig(x), big.NewInt(16))
	if toBig(dest).Cmp(want) != 0 {
		t.Fatalf("MulDigit(x, 16) = %v, want %v", toBig(dest), want)
	}
}

func TestDivModDigitMatchesMathBig(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("DivModDigit matches math/big", prop.ForAll(
		func(v uint64, d uint32) bool {
			if d == 0 {
				d = 1
			}
			n := New(HeapAllocator{})
			_ = SetUint64(n, v)
			q := New(HeapAllocator{})
			rem, err := DivModDigit(q, n, Digit(d))
			if err != nil {
				return false
			}
			bv := new(big.Int).SetUint64(v)
			bd := big.NewInt(int64(d))
			wantQ := new(big.Int).Div(bv, bd)
			wantR := new(big.Int).Mod(bv, bd)
			return toBig(q).Cmp(wantQ) == 0 && rem == Digit(wantR.Uint64())
		},
		gen.UInt64Range(0, 1<<50),
		gen.UInt32Range(1, uint32(Mask)),
	))

	properties.TestingRun(t)
}

func TestDivModDigitByZero(t *testing.T) {
	n := New(HeapAllocator{})
	_ = SetUint64(n, 10)
	if _, err := DivModDigit(nil, n, 0); err != ErrDivisionByZero {
		t.Fatalf("DivModDigit(_, _, 0) = %v, want ErrDivisionByZero", err)
	}
}

func TestDivModDigitPowerOfTwoFastPath(t *testing.T) {
	n := New(HeapAllocator{})
	_ = SetUint64(n, 123456789)
	q := New(HeapAllocator{})
	rem, err := DivModDigit(q, n, 64)
	if err != nil {
		t.Fatal(err)
	}
	bv := toBig(n)
	wantQ := new(big.Int).Div(bv, big.NewInt(64))
	wantR := new(big.Int).Mod(bv, big.NewInt(64))
	if toBig(q).Cmp(wantQ) != 0 || rem != Digit(wantR.Uint64()) {
		t.Fatalf("DivModDigit(123456789, 64) = (%v, %d), want (%v, %v)", toBig(q), rem, wantQ, wantR)
	}
}
