package decimal

import (
	"math/big"
	"strings"
)

// Parse converts a string to a Decimal. Supported grammar:
//
//	number   := sign? ( digits ('.' digits?)? | '.' digits ) exponent?
//	sign     := '+' | '-'
//	digits   := DIGIT+
//	exponent := ('e'|'E') sign? digits
//
// Leading/trailing whitespace is trimmed and underscores between
// digits are ignored, mirroring govalues/decimal's parseFast/parseSlow
// but generalized from that package's 19-digit envelope to this one's
// 29-digit, 96-bit envelope.
func Parse(s string) (Decimal, error) {
	orig := s
	s = strings.TrimSpace(s)
	if s == "" {
		return Decimal{}, newConversionSyntaxError("empty input")
	}

	pos, width := 0, len(s)
	neg := false
	switch {
	case pos < width && s[pos] == '-':
		neg = true
		pos++
	case pos < width && s[pos] == '+':
		pos++
	}

	coef := new(big.Int)
	hasCoef := false
	fracDigits := 0

	readDigits := func(countFraction bool) error {
		for pos < width {
			c := s[pos]
			switch {
			case c == '_':
				pos++
				continue
			case c >= '0' && c <= '9':
				hasCoef = true
				coef.Mul(coef, ten)
				coef.Add(coef, bigDigit[c-'0'])
				if countFraction {
					fracDigits++
				}
				pos++
			default:
				return nil
			}
		}
		return nil
	}

	if err := readDigits(false); err != nil {
		return Decimal{}, err
	}
	if pos < width && s[pos] == '.' {
		pos++
		if err := readDigits(true); err != nil {
			return Decimal{}, err
		}
	}
	if !hasCoef {
		return Decimal{}, newConversionSyntaxError("%q has no digits", orig)
	}

	expNeg := false
	hasExp, hasExpDigits := false, false
	exp := 0
	if pos < width && (s[pos] == 'e' || s[pos] == 'E') {
		hasExp = true
		pos++
		switch {
		case pos < width && s[pos] == '-':
			expNeg = true
			pos++
		case pos < width && s[pos] == '+':
			pos++
		}
		for pos < width && (s[pos] >= '0' && s[pos] <= '9' || s[pos] == '_') {
			if s[pos] == '_' {
				pos++
				continue
			}
			hasExpDigits = true
			exp = exp*10 + int(s[pos]-'0')
			pos++
		}
	}
	if pos != width {
		return Decimal{}, newConversionSyntaxError("%q has unexpected character %q", orig, s[pos])
	}
	if hasExp && !hasExpDigits {
		return Decimal{}, newConversionSyntaxError("%q has exponent marker with no digits", orig)
	}

	// Combine the implicit scale from the fractional digits with the
	// explicit exponent into the net required scale.
	r := fracDigits
	if expNeg {
		r += exp
	} else {
		r -= exp
	}

	return decimalFromScaledBigInt(neg, coef, r)
}

// decimalFromScaledBigInt normalizes a coefficient/required-scale pair
// produced by the parser into the canonical (coefficient, scale)
// envelope: scale is clamped to [0, MaxScale], rounding away excess
// fractional digits under HALF_EVEN, and the coefficient is reduced to
// fit 96 bits the same way, never dropping digits from the integer
// part without failing with Overflow.
func decimalFromScaledBigInt(neg bool, coef *big.Int, r int) (Decimal, error) {
	b := (*bint)(coef)

	switch {
	case r > MaxScale:
		// Drop r-MaxScale low-order digits under HALF_EVEN.
		b = roundWideDigits(b, digitsAfterDrop(b, r-MaxScale), HalfEven)
		r = MaxScale
	case r < 0:
		// Grow the coefficient and fix scale at 0.
		b = newBint()
		b.lsh((*bint)(coef), -r)
		r = 0
	}

	c, removed, err := truncateToMaxCoefficient(b)
	if err != nil {
		return Decimal{}, err
	}
	// If reducing to fit 96 bits would need to eat into the integer
	// part (i.e. remove more digits than exist in the fractional
	// part), the magnitude cannot be represented even at scale 0.
	if removed > r {
		return Decimal{}, newOverflowError("magnitude too large to represent at scale 0")
	}
	return newDecimal(neg, c, r-removed), nil
}

// digitsAfterDrop returns n such that rounding v to n significant
// digits removes exactly `drop` low-order digits.
func digitsAfterDrop(v *bint, drop int) int {
	n := v.prec() - drop
	if n < 0 {
		n = 0
	}
	return n
}

var ten = big.NewInt(10)

var bigDigit = func() [10]*big.Int {
	var t [10]*big.Int
	for i := range t {
		t[i] = big.NewInt(int64(i))
	}
	return t
}()
