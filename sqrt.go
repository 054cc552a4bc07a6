package decimal

import "math/big"

// Sqrt returns the square root of d, accurate to the coefficient
// envelope. It fails with InvalidOperation if d is negative.
//
// The coefficient is prescaled to an even scale of at least 56 digits
// so the result carries at least 28 fractional digits, then refined
// with Newton's method: x_{k+1} = (x_k + C/x_k) / 2, starting from a
// power-of-two estimate above sqrt(C) and stopping the first time the sequence
// stops decreasing (it is monotonically decreasing down to floor(sqrt(C)),
// then oscillates by at most 1).
func (d Decimal) Sqrt() (Decimal, error) {
	if d.coef.isZero() {
		return Decimal{}, nil
	}
	if d.neg {
		return Decimal{}, newInvalidOperationError("square root of a negative number")
	}

	es := d.Scale()
	n := 56
	switch {
	case es > 56 && es%2 == 0:
		n = es
	case es > 56:
		n = es + 1
	}

	c := newBint()
	c.lsh(bintFromU128(d.coef), n-es)

	xk := newBint()
	// C < 2^BitLen, so 2^ceil(BitLen/2) > sqrt(C).
	xk.big().Lsh(big.NewInt(1), uint((c.big().BitLen()+1)/2))

	for {
		q := newBint()
		q.quo(c, xk)
		next := newBint()
		next.add(xk, q)
		next.hlf(next)
		if next.cmp(xk) >= 0 {
			break
		}
		xk = next
	}

	return fitEnvelope(false, xk, n/2)
}
