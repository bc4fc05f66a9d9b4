//go:build gmpcrosscheck

// This file cross-checks the kernel's arithmetic against github.com/ncw/gmp,
// a cgo binding to the actual GNU MP library, for large random operands.
// It is gated behind a build tag because gmp needs a system libgmp and
// isn't something every environment running `go test ./...` will have
// installed — run it explicitly with `go test -tags gmpcrosscheck ./internal/bigint/`.
// gmp is, like math/big elsewhere in this package's tests, an external
// oracle only: nothing in the kernel itself depends on it.
package bigint

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/ncw/gmp"
)

// randomBig returns a random signed value with up to bits bits of
// magnitude, using math/big as scratch space before handing off to the
// two oracles under comparison.
func randomBig(rng *rand.Rand, bits int) *big.Int {
	v := new(big.Int).Rand(rng, new(big.Int).Lsh(big.NewInt(1), uint(bits)))
	if rng.Intn(2) == 0 {
		v.Neg(v)
	}
	return v
}

func TestGMPCrossCheckAddSubMul(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		a := randomBig(rng, 256+rng.Intn(4096))
		b := randomBig(rng, 256+rng.Intn(4096))

		ga, gb := new(gmp.Int), new(gmp.Int)
		ga.SetString(a.String(), 10)
		gb.SetString(b.String(), 10)

		xa, xb := fromBig(a, HeapAllocator{}), fromBig(b, HeapAllocator{})

		sum := New(HeapAllocator{})
		if err := Add(sum, xa, xb); err != nil {
			t.Fatalf("Add: %v", err)
		}
		if got, want := toBig(sum).String(), new(gmp.Int).Add(ga, gb).String(); got != want {
			t.Errorf("Add(%v, %v) = %s, want %s (gmp)", a, b, got, want)
		}

		diff := New(HeapAllocator{})
		if err := Sub(diff, xa, xb); err != nil {
			t.Fatalf("Sub: %v", err)
		}
		if got, want := toBig(diff).String(), new(gmp.Int).Sub(ga, gb).String(); got != want {
			t.Errorf("Sub(%v, %v) = %s, want %s (gmp)", a, b, got, want)
		}

		prod := New(HeapAllocator{})
		if err := Mul(prod, xa, xb); err != nil {
			t.Fatalf("Mul: %v", err)
		}
		if got, want := toBig(prod).String(), new(gmp.Int).Mul(ga, gb).String(); got != want {
			t.Errorf("Mul(%v, %v) = %s, want %s (gmp)", a, b, got, want)
		}
	}
}

func TestGMPCrossCheckDivMod(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 200; i++ {
		a := randomBig(rng, 256+rng.Intn(4096))
		b := randomBig(rng, 64+rng.Intn(512))
		if b.Sign() == 0 {
			continue
		}

		ga, gb := new(gmp.Int), new(gmp.Int)
		ga.SetString(a.String(), 10)
		gb.SetString(b.String(), 10)

		xa, xb := fromBig(a, HeapAllocator{}), fromBig(b, HeapAllocator{})

		q, r := New(HeapAllocator{}), New(HeapAllocator{})
		if err := DivMod(q, r, xa, xb); err != nil {
			t.Fatalf("DivMod: %v", err)
		}

		wantQ, wantR := new(gmp.Int), new(gmp.Int)
		wantQ.Quo(ga, gb)
		wantR.Rem(ga, gb)

		if got, want := toBig(q).String(), wantQ.String(); got != want {
			t.Errorf("DivMod quotient for %v / %v = %s, want %s (gmp)", a, b, got, want)
		}
		if got, want := toBig(r).String(), wantR.String(); got != want {
			t.Errorf("DivMod remainder for %v / %v = %s, want %s (gmp)", a, b, got, want)
		}
	}
}

func TestGMPCrossCheckFactorial(t *testing.T) {
	for _, n := range []uint64{0, 1, 50, 200, 999, 2000} {
		res := New(HeapAllocator{})
		if err := Factorial(res, n); err != nil {
			t.Fatalf("Factorial(%d): %v", n, err)
		}

		want := new(gmp.Int).MulRange(1, int64(n))
		if n < 2 {
			want.SetInt64(1)
		}
		if got := toBig(res).String(); got != want.String() {
			t.Errorf("Factorial(%d) = %s, want %s (gmp)", n, got, want.String())
		}
	}
}
