package decimal

// Add returns d + e, rounded and reduced to fit the 96-bit coefficient
// envelope if the exact sum does not.
func (d Decimal) Add(e Decimal) (Decimal, error) {
	return addSub(d, e, d.neg, e.neg)
}

// Sub returns d - e.
func (d Decimal) Sub(e Decimal) (Decimal, error) {
	return addSub(d, e, d.neg, !e.neg)
}

// addSub implements addition/subtraction with explicit operand signs,
// since subtraction is addition with the second operand's sign
// flipped. It first tries the u128 fast path (every intermediate fits
// 128 bits) and falls back to *bint only when scale alignment or the
// combine step would overflow that width.
func addSub(x, y Decimal, xNeg, yNeg bool) (Decimal, error) {
	ex, ey := x.Scale(), y.Scale()
	e := ex
	if ey > e {
		e = ey
	}

	if ax, ay, ok := alignFast(x.coef, ex, y.coef, ey, e); ok {
		return combineFast(xNeg, ax, yNeg, ay, e)
	}

	ax := bintFromU128(x.coef)
	ax.lsh(ax, e-ex)
	ay := bintFromU128(y.coef)
	ay.lsh(ay, e-ey)
	return combineWide(xNeg, ax, yNeg, ay, e)
}

// alignFast scales up whichever of cx, cy has the smaller exponent so
// both share scale e, reporting false if either multiply would exceed
// 128 bits.
func alignFast(cx u128, ex int, cy u128, ey int, e int) (ax, ay u128, ok bool) {
	ax, ay = cx, cy
	if e > ex {
		if ax, ok = cx.lsh(e - ex); !ok {
			return u128{}, u128{}, false
		}
	}
	if e > ey {
		if ay, ok = cy.lsh(e - ey); !ok {
			return u128{}, u128{}, false
		}
	}
	return ax, ay, true
}

func combineFast(xNeg bool, cx u128, yNeg bool, cy u128, e int) (Decimal, error) {
	if xNeg == yNeg {
		if sum, ok := cx.add(cy); ok {
			return fitEnvelopeU128(xNeg, sum, e)
		}
		sum := newBint()
		sum.add(bintFromU128(cx), bintFromU128(cy))
		return fitEnvelope(xNeg, sum, e)
	}
	switch cx.cmp(cy) {
	case 0:
		return newDecimal(false, u128{}, e), nil
	case 1:
		return fitEnvelopeU128(xNeg, cx.sub(cy), e)
	default:
		return fitEnvelopeU128(yNeg, cy.sub(cx), e)
	}
}

func combineWide(xNeg bool, cx *bint, yNeg bool, cy *bint, e int) (Decimal, error) {
	if xNeg == yNeg {
		sum := newBint()
		sum.add(cx, cy)
		return fitEnvelope(xNeg, sum, e)
	}
	switch cx.cmp(cy) {
	case 0:
		return newDecimal(false, u128{}, e), nil
	case 1:
		d := newBint()
		d.sub(cx, cy)
		return fitEnvelope(xNeg, d, e)
	default:
		d := newBint()
		d.sub(cy, cx)
		return fitEnvelope(yNeg, d, e)
	}
}

// fitEnvelopeU128 accepts a coefficient already known to fit 128 bits
// and routes it to the wide path only if it exceeds maxCoefficient.
func fitEnvelopeU128(neg bool, c u128, e int) (Decimal, error) {
	if c.cmp(maxCoefficient) <= 0 {
		return newDecimal(neg, c, e), nil
	}
	return fitEnvelope(neg, bintFromU128(c), e)
}

// fitEnvelope reduces v to fit the 96-bit coefficient, decreasing
// scale e by however many digits that reduction removes. It fails
// with Overflow if even the integer part (scale 0) cannot hold v.
func fitEnvelope(neg bool, v *bint, e int) (Decimal, error) {
	c, removed, err := truncateToMaxCoefficient(v)
	if err != nil {
		return Decimal{}, err
	}
	if removed > e {
		return Decimal{}, newOverflowError("result magnitude too large to represent")
	}
	return newDecimal(neg, c, e-removed), nil
}
