package bigint

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestShl1Shr1RoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("Shl1 doubles the value", prop.ForAll(
		func(v uint64) bool {
			x := newFromInt64(0)
			_ = SetUint64(x, v)
			dest := New(HeapAllocator{})
			if err := Shl1(dest, x); err != nil {
				return false
			}
			want := new(big.Int).Lsh(big.NewInt(0).SetUint64(v), 1)
			return toBig(dest).Cmp(want) == 0
		},
		gen.UInt64Range(0, 1<<62),
	))

	properties.Property("Shr1(Shl1(x)) == x", prop.ForAll(
		func(v uint64) bool {
			x := New(HeapAllocator{})
			_ = SetUint64(x, v)
			doubled := New(HeapAllocator{})
			if err := Shl1(doubled, x); err != nil {
				return false
			}
			back := New(HeapAllocator{})
			if err := Shr1(back, doubled); err != nil {
				return false
			}
			return toBig(back).Cmp(toBig(x)) == 0
		},
		gen.UInt64Range(0, 1<<62),
	))

	properties.TestingRun(t)
}

func TestShl1AliasingSafe(t *testing.T) {
	x := New(HeapAllocator{})
	_ = SetUint64(x, (1<<28)+12345)
	want := new(big.Int).Lsh(toBig(x), 1)
	if err := Shl1(x, x); err != nil {
		t.Fatalf("Shl1(x, x): %v", err)
	}
	if toBig(x).Cmp(want) != 0 {
		t.Fatalf("Shl1(x, x) = %v, want %v", toBig(x), want)
	}
}

func TestShlBitsNMatchesMathBig(t *testing.T) {
	cases := []struct {
		v     uint64
		shift uint64
	}{
		{0, 0},
		{1, 0},
		{1, 1},
		{1, 27},
		{1, 28},
		{1, 29},
		{1, 200},
		{123456789, 5},
		{123456789, 56},
		{123456789, 1000},
	}
	for _, c := range cases {
		x := New(HeapAllocator{})
		_ = SetUint64(x, c.v)
		dest := New(HeapAllocator{})
		if err := ShlBitsN(dest, x, c.shift); err != nil {
			t.Fatalf("ShlBitsN(%d, %d): %v", c.v, c.shift, err)
		}
		want := new(big.Int).Lsh(new(big.Int).SetUint64(c.v), uint(c.shift))
		if toBig(dest).Cmp(want) != 0 {
			t.Errorf("ShlBitsN(%d, %d) = %v, want %v", c.v, c.shift, toBig(dest), want)
		}
	}
}
