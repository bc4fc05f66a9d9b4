// Command generate-golden regenerates testdata/golden.json, a set of
// known-answer vectors for bigcalc's factorial and two-operand
// operations. math/big is used here purely as an external oracle to
// compute the expected values — never as part of bigcalc's own
// implementation — the same boundary internal/bigint's own tests draw
// around math/big.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"os"
)

// goldenVector is one known-answer case: either a factorial (Op ==
// "factorial", N set) or a two-operand operation (A and B set).
type goldenVector struct {
	Op   string `json:"op"`
	N    uint64 `json:"n,omitempty"`
	A    string `json:"a,omitempty"`
	B    string `json:"b,omitempty"`
	Want string `json:"want"`
}

func factorialBig(n uint64) *big.Int {
	if n < 2 {
		return big.NewInt(1)
	}
	return new(big.Int).MulRange(1, int64(n))
}

func evalBig(op string, a, b *big.Int) (*big.Int, error) {
	res := new(big.Int)
	switch op {
	case "add":
		res.Add(a, b)
	case "sub":
		res.Sub(a, b)
	case "mul":
		res.Mul(a, b)
	case "div":
		if b.Sign() == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		res.Quo(a, b)
	case "mod":
		if b.Sign() == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		// bigcalc's Mod keeps the residue in the modulus's sign range
		// (0 <= r < b for b > 0, b < r <= 0 for b < 0); math/big's Mod is
		// Euclidean, so the truncated remainder is adjusted instead.
		res.Rem(a, b)
		if res.Sign() != 0 && res.Sign() != b.Sign() {
			res.Add(res, b)
		}
	default:
		return nil, fmt.Errorf("unknown op %q", op)
	}
	return res, nil
}

func buildVectors() []goldenVector {
	var vectors []goldenVector

	for _, n := range []uint64{0, 1, 2, 5, 10, 20, 21, 25, 50, 100, 500, 1000} {
		vectors = append(vectors, goldenVector{
			Op:   "factorial",
			N:    n,
			Want: factorialBig(n).String(),
		})
	}

	pairs := []struct{ a, b string }{
		{"0", "0"},
		{"17", "23"},
		{"-17", "23"},
		{"17", "-23"},
		{"-17", "-23"},
		{"123456789012345678901234567890", "987654321098765432109876543210"},
		{"100", "7"},
		{"-100", "7"},
		{"100", "-7"},
	}
	for _, op := range []string{"add", "sub", "mul", "div", "mod"} {
		for _, p := range pairs {
			a, _ := new(big.Int).SetString(p.a, 10)
			b, _ := new(big.Int).SetString(p.b, 10)
			if b.Sign() == 0 && (op == "div" || op == "mod") {
				continue
			}
			want, err := evalBig(op, a, b)
			if err != nil {
				continue
			}
			vectors = append(vectors, goldenVector{Op: op, A: p.a, B: p.b, Want: want.String()})
		}
	}
	return vectors
}

func main() {
	out := flag.String("out", "testdata/golden.json", "output path for the golden vector file")
	flag.Parse()

	vectors := buildVectors()

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(vectors); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
