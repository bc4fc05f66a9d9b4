package bigint

import (
	"math"
	"testing"
)

func TestSetUint64RoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 27, Mask, uint64(Mask) + 1, math.MaxUint64}
	for _, v := range cases {
		x := New(HeapAllocator{})
		if err := SetUint64(x, v); err != nil {
			t.Fatalf("SetUint64(%d): %v", v, err)
		}
		got := toBig(x)
		if got.Sign() < 0 || !got.IsUint64() || got.Uint64() != v {
			t.Errorf("SetUint64(%d) round-tripped to %v", v, got)
		}
		if x.IsNegative() {
			t.Errorf("SetUint64(%d) produced a negative Int", v)
		}
	}
}

func TestSetInt64RoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, math.MinInt64, math.MaxInt64, -27}
	for _, v := range cases {
		x := New(HeapAllocator{})
		if err := SetInt64(x, v); err != nil {
			t.Fatalf("SetInt64(%d): %v", v, err)
		}
		got := toBig(x)
		if !got.IsInt64() || got.Int64() != v {
			t.Errorf("SetInt64(%d) round-tripped to %v", v, got)
		}
	}
}

func TestClampDropsLeadingZeroDigits(t *testing.T) {
	x := New(HeapAllocator{})
	if err := Grow(x, 4); err != nil {
		t.Fatal(err)
	}
	x.digit[0] = 5
	x.digit[1] = 0
	x.digit[2] = 0
	x.used = 3
	Clamp(x)
	if x.used != 1 || x.digit[0] != 5 {
		t.Fatalf("Clamp left used=%d digit[0]=%d, want used=1 digit[0]=5", x.used, x.digit[0])
	}
}

func TestClampZeroForcesPositiveSign(t *testing.T) {
	x := New(HeapAllocator{})
	if err := Grow(x, 1); err != nil {
		t.Fatal(err)
	}
	x.digit[0] = 0
	x.used = 1
	x.sign = Negative
	Clamp(x)
	if x.used != 0 || x.sign != Positive {
		t.Fatalf("Clamp(0) left used=%d sign=%v, want used=0 sign=Positive", x.used, x.sign)
	}
}

func TestCopyIsNoOpWhenAliased(t *testing.T) {
	x := newFromInt64(42)
	if err := Copy(x, x); err != nil {
		t.Fatalf("Copy(x, x): %v", err)
	}
	if toBig(x).Int64() != 42 {
		t.Fatalf("self-copy mutated value to %v", toBig(x))
	}
}

func TestCmp(t *testing.T) {
	cases := []struct {
		a, b int64
		want int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{0, 1, -1},
		{-1, 1, -1},
		{1, -1, 1},
		{-5, -5, 0},
		{-5, -3, -1},
		{-3, -5, 1},
	}
	for _, c := range cases {
		a, b := newFromInt64(c.a), newFromInt64(c.b)
		if got := Cmp(a, b); got != c.want {
			t.Errorf("Cmp(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestGrowNeverShrinks(t *testing.T) {
	x := New(HeapAllocator{})
	if err := Grow(x, 64); err != nil {
		t.Fatal(err)
	}
	capBefore := len(x.digit)
	if err := Grow(x, 4); err != nil {
		t.Fatal(err)
	}
	if len(x.digit) < capBefore {
		t.Fatalf("Grow shrank backing storage from %d to %d", capBefore, len(x.digit))
	}
}
