package decimal

// MaxScale is the largest scale a Decimal can carry.
const MaxScale = 28

// Decimal is a fixed-point decimal number: (-1)^sign * coefficient *
// 10^-scale. It is a small, comparable, immutable value type: the
// zero value is 0 and every operation returns a new Decimal rather
// than mutating its receiver.
//
// The internal fields favor Go-native arithmetic (a u128 coefficient
// built on math/bits, rather than the four raw uint32 words of the
// wire layout); Bits and NewFromBits convert losslessly to and from
// that bit-exact layout.
type Decimal struct {
	neg   bool
	scale uint8 // 0..MaxScale
	coef  u128  // 0..maxCoefficient
}

// New returns a Decimal equal to v at scale 0.
func New(v int64) Decimal {
	neg := v < 0
	mag := uint64(v)
	if neg {
		mag = uint64(-v)
	}
	return newDecimal(neg, u128FromUint64(mag), 0)
}

// Zero is the Decimal value 0 at scale 0.
var Zero = Decimal{}

// NewFromComponents builds a Decimal directly from a coefficient
// (split across low/mid/high 32-bit words, matching the wire layout
// of Bits/NewFromBits), a scale, and a sign. It returns
// ErrInvalidOperation if scale is out of range.
func NewFromComponents(lo, mid, hi uint32, scale int, neg bool) (Decimal, error) {
	if scale < 0 || scale > MaxScale {
		return Decimal{}, newInvalidOperationError("scale %d out of range [0,%d]", scale, MaxScale)
	}
	coef := u128{
		hi: uint64(hi),
		lo: uint64(mid)<<32 | uint64(lo),
	}
	// Components are a raw-bits constructor (like NewFromBits): the
	// sign bit is preserved verbatim, not normalized, so -0 round-trips.
	return Decimal{neg: neg, scale: uint8(scale), coef: coef}, nil
}

// newDecimal is the shared internal constructor: it normalizes the
// sign of zero and assumes coef and scale already fit their ranges.
func newDecimal(neg bool, coef u128, scale int) Decimal {
	if coef.isZero() {
		neg = false
	}
	return Decimal{neg: neg, scale: uint8(scale), coef: coef}
}

// Coefficient returns the unsigned coefficient of d.
func (d Decimal) Coefficient() U128 { return U128{v: d.coef} }

// Scale returns the number of digits to the right of the decimal
// point, 0..MaxScale.
func (d Decimal) Scale() int { return int(d.scale) }

// IsNegative reports whether d's sign bit is set. Both +0 and -0 are
// possible representations; a -0 comes only from an explicit Neg of
// zero or from the raw constructors NewFromComponents and NewFromBits,
// which keep the sign bit they are given, since every other path to
// zero normalizes the sign away.
func (d Decimal) IsNegative() bool { return d.neg }

// IsZero reports whether d represents the value 0, regardless of
// scale or sign bit.
func (d Decimal) IsZero() bool { return d.coef.isZero() }

// Sign returns -1, 0, or +1 as d is negative, zero, or positive.
func (d Decimal) Sign() int {
	switch {
	case d.coef.isZero():
		return 0
	case d.neg:
		return -1
	default:
		return 1
	}
}

// Neg returns -d. Unlike every other operation, Neg of zero preserves
// the sign bit it is given, so Zero.Neg() formats as "-0".
func (d Decimal) Neg() Decimal {
	return Decimal{neg: !d.neg, scale: d.scale, coef: d.coef}
}

// Abs returns the absolute value of d.
func (d Decimal) Abs() Decimal {
	return Decimal{neg: false, scale: d.scale, coef: d.coef}
}

// U128 is the read-only view of a Decimal's coefficient, exported so
// callers can inspect it without reaching for math/big themselves.
// Grounded in apache-arrow's decimal128.Num accessor pattern.
type U128 struct{ v u128 }

// Lo returns the low 64 bits of the coefficient.
func (x U128) Lo() uint64 { return x.v.lo }

// Hi returns the high bits (0..2^32-1) of the coefficient.
func (x U128) Hi() uint64 { return x.v.hi }

// String returns the base-10 representation of the coefficient.
func (x U128) String() string { return x.v.String() }
