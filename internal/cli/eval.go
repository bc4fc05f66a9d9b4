package cli

import (
	"fmt"

	"github.com/agbru/bigcalc/internal/bigint"
)

// ParseDecimal parses a signed decimal literal into a BigInt by
// digit-at-a-time accumulation: dest = dest*10 + digit for every digit
// read left to right, via MulDigit and AddDigit. This is the inverse of
// internal/radix.Format and, like it, lives outside the kernel's own
// correctness surface — the kernel only ever consumes already-valid
// Ints.
func ParseDecimal(s string, alloc bigint.Allocator) (*bigint.Int, error) {
	if s == "" {
		return nil, fmt.Errorf("cli: empty operand")
	}
	neg := false
	if s[0] == '+' || s[0] == '-' {
		neg = s[0] == '-'
		s = s[1:]
	}
	if s == "" {
		return nil, fmt.Errorf("cli: operand %q has no digits", s)
	}

	dest := bigint.New(alloc)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("cli: operand contains non-digit character %q", c)
		}
		if err := bigint.MulDigit(dest, dest, 10); err != nil {
			return nil, err
		}
		if err := bigint.AddDigit(dest, dest, bigint.Digit(c-'0')); err != nil {
			return nil, err
		}
	}
	if neg {
		dest.Negate()
	}
	return dest, nil
}

// Evaluate dispatches a two-operand decimal-literal operation to the
// matching kernel primitive. op is one of "add", "sub", "mul", "div",
// "mod".
func Evaluate(op, aLit, bLit string, alloc bigint.Allocator) (*bigint.Int, error) {
	a, err := ParseDecimal(aLit, alloc)
	if err != nil {
		return nil, fmt.Errorf("cli: parsing operand a: %w", err)
	}
	b, err := ParseDecimal(bLit, alloc)
	if err != nil {
		return nil, fmt.Errorf("cli: parsing operand b: %w", err)
	}

	res := bigint.New(alloc)
	switch op {
	case "add":
		err = bigint.Add(res, a, b)
	case "sub":
		err = bigint.Sub(res, a, b)
	case "mul":
		err = bigint.Mul(res, a, b)
	case "div":
		err = bigint.DivMod(res, nil, a, b)
	case "mod":
		err = bigint.Mod(res, a, b)
	default:
		return nil, fmt.Errorf("cli: unknown operation %q", op)
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}
