// Package radix renders a bigint.Int in base 2, 8, 10, or 16, built
// entirely on the kernel's own DivModDigit rather than any separate
// conversion machinery.
package radix

import (
	"fmt"
	"strings"

	"github.com/agbru/bigcalc/internal/bigint"
)

const digitAlphabet = "0123456789abcdef"

// Format renders x in the given base, with a leading "-" for negative
// values. base must be one of 2, 8, 10, 16.
func Format(x *bigint.Int, base int) (string, error) {
	switch base {
	case 2, 8, 10, 16:
	default:
		return "", fmt.Errorf("radix: unsupported base %d", base)
	}

	if x.IsZero() {
		return "0", nil
	}

	work := bigint.New(x.Allocator())
	if err := bigint.Copy(work, x); err != nil {
		return "", err
	}

	var out strings.Builder
	q := bigint.New(x.Allocator())
	for !work.IsZero() {
		rem, err := bigint.DivModDigit(q, work, bigint.Digit(base))
		if err != nil {
			return "", err
		}
		out.WriteByte(digitAlphabet[rem])
		work, q = q, work
	}

	digits := []byte(out.String())
	reverse(digits)

	if x.IsNegative() {
		return "-" + string(digits), nil
	}
	return string(digits), nil
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
