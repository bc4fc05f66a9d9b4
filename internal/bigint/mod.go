package bigint

// Mod sets r to n mod m, adjusted into the signed residue range that
// tracks m's sign: 0 <= r < m when m > 0, and m < r <= 0 when m < 0 —
// unlike DivMod's own remainder, which follows the dividend's sign
// under truncating division.
func Mod(r, n, m *Int) error {
	if err := DivMod(nil, r, n, m); err != nil {
		return err
	}
	if r.used != 0 && r.sign != m.sign {
		// r's sign disagrees with m's; adding m (with its own sign)
		// moves it into m's residue range without changing its
		// residue class.
		if err := Add(r, r, m); err != nil {
			return err
		}
	}
	return nil
}

// AddMod sets r to (a + b) mod m.
func AddMod(r, a, b, m *Int) error {
	if err := Add(r, a, b); err != nil {
		return err
	}
	return Mod(r, r, m)
}

// SubMod sets r to (a - b) mod m.
func SubMod(r, a, b, m *Int) error {
	if err := Sub(r, a, b); err != nil {
		return err
	}
	return Mod(r, r, m)
}

// MulMod sets r to (a * b) mod m.
func MulMod(r, a, b, m *Int) error {
	if err := Mul(r, a, b); err != nil {
		return err
	}
	return Mod(r, r, m)
}

// SqrMod sets r to a^2 mod m.
func SqrMod(r, a, m *Int) error {
	if err := Sqr(r, a); err != nil {
		return err
	}
	return Mod(r, r, m)
}
