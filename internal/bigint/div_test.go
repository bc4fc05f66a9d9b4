package bigint

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestDivModKnownValues(t *testing.T) {
	cases := []struct {
		n, d     int64
		wantQ, wantR int64
	}{
		{10, 3, 3, 1},
		{-10, 3, -3, -1},
		{10, -3, -3, 1},
		{-10, -3, 3, -1},
		{0, 7, 0, 0},
		{6, 3, 2, 0},
		{7, 7, 1, 0},
	}
	for _, c := range cases {
		n, d := newFromInt64(c.n), newFromInt64(c.d)
		q, r := New(HeapAllocator{}), New(HeapAllocator{})
		if err := DivMod(q, r, n, d); err != nil {
			t.Fatalf("DivMod(%d, %d): %v", c.n, c.d, err)
		}
		if gotQ := toBig(q).Int64(); gotQ != c.wantQ {
			t.Errorf("DivMod(%d, %d) quotient = %d, want %d", c.n, c.d, gotQ, c.wantQ)
		}
		if gotR := toBig(r).Int64(); gotR != c.wantR {
			t.Errorf("DivMod(%d, %d) remainder = %d, want %d", c.n, c.d, gotR, c.wantR)
		}
	}
}

func TestDivModByZero(t *testing.T) {
	n := newFromInt64(10)
	d := newFromInt64(0)
	if err := DivMod(nil, nil, n, d); err != ErrDivisionByZero {
		t.Fatalf("DivMod by zero = %v, want ErrDivisionByZero", err)
	}
}

func TestDivModDividendSmallerThanDivisor(t *testing.T) {
	n := newFromInt64(3)
	d := newFromInt64(100)
	q, r := New(HeapAllocator{}), New(HeapAllocator{})
	if err := DivMod(q, r, n, d); err != nil {
		t.Fatal(err)
	}
	if toBig(q).Sign() != 0 {
		t.Errorf("quotient = %v, want 0", toBig(q))
	}
	if toBig(r).Int64() != 3 {
		t.Errorf("remainder = %v, want 3", toBig(r))
	}
}

func TestDivModMultiDigitDivisorMatchesMathBig(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	properties.Property("DivMod matches math/big truncating division", prop.ForAll(
		func(nv, dv uint64) bool {
			if dv == 0 {
				dv = 1
			}
			nBig := new(big.Int).SetUint64(nv)
			dBig := new(big.Int).SetUint64(dv)
			n := fromBig(nBig, HeapAllocator{})
			d := fromBig(dBig, HeapAllocator{})

			q, r := New(HeapAllocator{}), New(HeapAllocator{})
			if err := DivMod(q, r, n, d); err != nil {
				return false
			}
			wantQ := new(big.Int).Quo(nBig, dBig)
			wantR := new(big.Int).Rem(nBig, dBig)
			return toBig(q).Cmp(wantQ) == 0 && toBig(r).Cmp(wantR) == 0
		},
		gen.UInt64Range(0, 1<<63),
		gen.UInt64Range(1, 1<<63),
	))

	properties.Property("q*d + r == n", prop.ForAll(
		func(nv, dv uint64) bool {
			if dv == 0 {
				dv = 1
			}
			nBig := new(big.Int).SetUint64(nv)
			dBig := new(big.Int).SetUint64(dv)
			n := fromBig(nBig, HeapAllocator{})
			d := fromBig(dBig, HeapAllocator{})

			q, r := New(HeapAllocator{}), New(HeapAllocator{})
			if err := DivMod(q, r, n, d); err != nil {
				return false
			}
			reconstructed := New(HeapAllocator{})
			if err := Mul(reconstructed, q, d); err != nil {
				return false
			}
			if err := Add(reconstructed, reconstructed, r); err != nil {
				return false
			}
			return toBig(reconstructed).Cmp(nBig) == 0
		},
		gen.UInt64Range(0, 1<<63),
		gen.UInt64Range(1, 1<<63),
	))

	properties.TestingRun(t)
}

func TestDivModLargeMultiDigitDivisor(t *testing.T) {
	nBig := new(big.Int)
	dBig := new(big.Int)
	nBig.SetString("123456789012345678901234567890123456789012345678901234567890", 10)
	dBig.SetString("98765432109876543210987654321", 10)

	n := fromBig(nBig, HeapAllocator{})
	d := fromBig(dBig, HeapAllocator{})
	q, r := New(HeapAllocator{}), New(HeapAllocator{})
	if err := DivMod(q, r, n, d); err != nil {
		t.Fatal(err)
	}
	wantQ := new(big.Int).Quo(nBig, dBig)
	wantR := new(big.Int).Rem(nBig, dBig)
	if toBig(q).Cmp(wantQ) != 0 {
		t.Errorf("quotient = %v, want %v", toBig(q), wantQ)
	}
	if toBig(r).Cmp(wantR) != 0 {
		t.Errorf("remainder = %v, want %v", toBig(r), wantR)
	}
}
