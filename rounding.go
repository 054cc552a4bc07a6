package decimal

// RoundingMode selects how excess digits are resolved when a wide
// intermediate coefficient must be reduced to fit the 96-bit / 28-scale
// envelope (component C2).
type RoundingMode uint8

const (
	// HalfEven rounds half-way values to the nearest even digit
	// (banker's rounding). This is the library default.
	HalfEven RoundingMode = iota
	// Down truncates toward zero.
	Down
	// HalfUp rounds half-way values away from zero.
	HalfUp
	// Up rounds away from zero on any nonzero remainder.
	Up
)

func (m RoundingMode) String() string {
	switch m {
	case Down:
		return "DOWN"
	case HalfUp:
		return "HALF_UP"
	case HalfEven:
		return "HALF_EVEN"
	case Up:
		return "UP"
	default:
		return "RoundingMode(?)"
	}
}

// roundWideDigits keeps the top n decimal digits of v, rounding off
// the remaining k = digits(v)-n digits under mode m. Negative n
// returns 0; n that is already >= digits(v) returns v unchanged.
//
// Callers must re-check the digit count of the result: rounding
// 99...9 up to 10...0 increases the digit count by one.
func roundWideDigits(v *bint, n int, m RoundingMode) *bint {
	z := new(bint)
	if n < 0 {
		z.setInt64(0)
		return z
	}
	d := v.prec()
	if n >= d {
		z.setBint(v)
		return z
	}
	k := d - n

	switch m {
	case Down:
		z.rshDown(v, k)
		return z
	case Up:
		z.rshDown(v, k)
		rem := newBint()
		rem.setBint(v)
		whole := newBint()
		whole.lsh(z, k)
		rem.sub(rem, whole)
		if rem.sign() > 0 {
			z.inc(z)
		}
		return z
	case HalfUp:
		return roundHalfUp(v, k)
	case HalfEven:
		z.rshHalfEven(v, k)
		return z
	default:
		z.rshHalfEven(v, k)
		return z
	}
}

// roundHalfUp implements HALF_UP: round the remainder away from zero
// when it is >= half of 10^k.
func roundHalfUp(v *bint, k int) *bint {
	q := newBint()
	r := newBint()
	div := pow10Bint(k)
	q.quoRem(v, div, r)
	half := newBint()
	half.dbl(r) // half = 2r
	if half.cmp(div) >= 0 {
		q.inc(q)
	}
	return q
}

// truncateToMaxCoefficient reduces a non-negative *bint that may
// exceed 96 bits to the largest value <= 2^96-1 representing it under
// HALF_EVEN rounding:
//
//   - if the 29-digit truncation of v equals MAX exactly, rounding
//     up would produce MAX+1, which overflows 96 bits, so that case
//     reduces to 28 digits instead;
//   - otherwise round to 29 digits and, if the result is still above
//     MAX — whether because the carry from rounding grew the digit
//     count past 29, or because a 29-digit value above MAX simply
//     didn't move — remove one more digit.
//
// It returns the reduced coefficient and the number of decimal digits
// that were removed (the caller subtracts this from its scale); the
// caller is responsible for turning a removal count that exceeds the
// available scale into Overflow.
func truncateToMaxCoefficient(v *bint) (u128, int, error) {
	prec := v.prec()
	if prec <= 29 {
		if c, ok := v.u128(); ok && c.cmp(maxCoefficient) <= 0 {
			return c, 0, nil
		}
	}

	removed := prec - 29
	if removed < 0 {
		removed = 0
	}
	d := roundWideDigits(v, 29, HalfEven)

	// Case 1: truncating to 29 digits lands exactly on MAX, so a
	// round-up would give MAX+1, which does not fit 96 bits; drop one
	// more digit instead of letting the general check below re-round it.
	maxBint := bintFromU128(maxCoefficient)
	if t := roundWideDigits(v, 29, Down); t.cmp(maxBint) == 0 {
		d = roundWideDigits(v, 28, HalfEven)
		removed++
		if c, ok := d.u128(); ok {
			return c, removed, nil
		}
		return u128{}, 0, newInternalError("truncateToMaxCoefficient: 28-digit result does not fit u128")
	}

	// Case 2: general reduction. The 29-digit round may still sit above
	// MAX — either its digit count grew past 29, or it stayed at 29
	// digits but above MAX without a carry to trigger that — so compare
	// against MAX directly rather than just the digit count.
	if d.cmp(maxBint) > 0 {
		d = roundWideDigits(v, 28, HalfEven)
		removed++
	}
	c, ok := d.u128()
	if !ok || c.cmp(maxCoefficient) > 0 {
		return u128{}, 0, newOverflowError("result magnitude too large to represent")
	}
	return c, removed, nil
}

// rshHalfEven (Right Shift) calculates z = round(x / 10^shift) under
// the half-to-even rule.
func (z *bint) rshHalfEven(x *bint, shift int) {
	switch {
	case x.sign() == 0:
		z.setInt64(0)
		return
	case shift <= 0:
		z.setBint(x)
		return
	}
	r := newBint()
	y := pow10Bint(shift)
	z.quoRem(x, y, r)
	r.dbl(r)
	switch y.cmp(r) {
	case -1:
		z.inc(z)
	case 0:
		if z.isOdd() {
			z.inc(z)
		}
	}
}
