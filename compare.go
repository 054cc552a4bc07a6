package decimal

// Cmp returns -1, 0, or +1 as d <, ==, > e, comparing the represented
// rational values rather than the raw (coefficient, scale) pairs: 5
// and 5.00 compare equal even though they are distinct Decimals, and
// any negative value compares less than any non-negative one.
func (d Decimal) Cmp(e Decimal) int {
	if d.coef.isZero() && e.coef.isZero() {
		return 0
	}
	ds, es := d.Sign(), e.Sign()
	if ds != es {
		if ds < es {
			return -1
		}
		return 1
	}

	dScale, eScale := d.Scale(), e.Scale()
	scale := dScale
	if eScale > scale {
		scale = eScale
	}
	dc := bintFromU128(d.coef)
	dc.lsh(dc, scale-dScale)
	ec := bintFromU128(e.coef)
	ec.lsh(ec, scale-eScale)

	c := dc.cmp(ec)
	if d.neg {
		return -c
	}
	return c
}

// Equal reports whether d and e represent the same rational value.
func (d Decimal) Equal(e Decimal) bool { return d.Cmp(e) == 0 }

// Round returns d rounded to exactly scale n, 0 <= n <= MaxScale,
// under the given rounding mode. Growing the scale (n > d.Scale()) is
// an exact operation that fails with Overflow rather than rounding if
// the wider coefficient cannot fit; shrinking the scale drops digits
// under mode.
func (d Decimal) Round(n int, mode RoundingMode) (Decimal, error) {
	if n < 0 || n > MaxScale {
		return Decimal{}, newInvalidOperationError("round scale %d out of range [0,%d]", n, MaxScale)
	}
	scale := d.Scale()
	switch {
	case scale == n:
		return d, nil
	case scale > n:
		drop := scale - n
		v := bintFromU128(d.coef)
		v = roundWideDigits(v, digitsAfterDrop(v, drop), mode)
		return fitEnvelope(d.neg, v, n)
	default:
		grow := n - scale
		if c, ok := d.coef.lsh(grow); ok && c.cmp(maxCoefficient) <= 0 {
			return newDecimal(d.neg, c, n), nil
		}
		return Decimal{}, newOverflowError("round to scale %d would overflow the coefficient", n)
	}
}

// Truncate returns d rounded toward zero to exactly scale n.
func (d Decimal) Truncate(n int) (Decimal, error) { return d.Round(n, Down) }

// Floor returns the largest integer Decimal (scale 0) not greater
// than d.
func (d Decimal) Floor() (Decimal, error) {
	t, err := d.Round(0, Down)
	if err != nil {
		return Decimal{}, err
	}
	if d.neg && !t.Equal(d) {
		return t.Sub(New(1))
	}
	return t, nil
}

// Ceil returns the smallest integer Decimal (scale 0) not less than
// d.
func (d Decimal) Ceil() (Decimal, error) {
	t, err := d.Round(0, Down)
	if err != nil {
		return Decimal{}, err
	}
	if !d.neg && !t.Equal(d) {
		return t.Add(New(1))
	}
	return t, nil
}
