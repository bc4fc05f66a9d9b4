package radix

import (
	"strconv"
	"testing"

	"github.com/agbru/bigcalc/internal/bigint"
)

func TestFormatKnownValues(t *testing.T) {
	cases := []struct {
		v    int64
		base int
		want string
	}{
		{0, 10, "0"},
		{0, 16, "0"},
		{255, 16, "ff"},
		{255, 2, "11111111"},
		{-255, 16, "-ff"},
		{8, 8, "10"},
		{1000000, 10, "1000000"},
		{-42, 10, "-42"},
	}
	for _, c := range cases {
		x := bigint.NewInt64(c.v, bigint.HeapAllocator{})
		got, err := Format(x, c.base)
		if err != nil {
			t.Fatalf("Format(%d, %d): %v", c.v, c.base, err)
		}
		if got != c.want {
			t.Errorf("Format(%d, %d) = %q, want %q", c.v, c.base, got, c.want)
		}
	}
}

func TestFormatRejectsUnsupportedBase(t *testing.T) {
	x := bigint.NewInt64(5, bigint.HeapAllocator{})
	if _, err := Format(x, 7); err == nil {
		t.Fatal("Format with base 7 should have errored")
	}
}

func TestFormatMatchesStrconvForInt64Range(t *testing.T) {
	values := []int64{1, -1, 123456789, -123456789, 1 << 40, -(1 << 40)}
	for _, v := range values {
		for _, base := range []int{2, 8, 10, 16} {
			x := bigint.NewInt64(v, bigint.HeapAllocator{})
			got, err := Format(x, base)
			if err != nil {
				t.Fatalf("Format(%d, %d): %v", v, base, err)
			}
			want := strconv.FormatInt(v, base)
			if got != want {
				t.Errorf("Format(%d, %d) = %q, want %q", v, base, got, want)
			}
		}
	}
}
