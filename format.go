package decimal

import "strings"

// String formats d as the text that parses back to the same
// (coefficient, scale, sign) triple. Trailing zeros implied by the
// scale are never trimmed: scale is part of a Decimal's identity, not
// just its value.
func (d Decimal) String() string {
	digits := d.coef.String()
	if d.coef.isZero() {
		digits = "0"
	}
	scale := int(d.scale)

	var b strings.Builder
	if d.neg {
		// An explicit Neg of zero is the one case that keeps a
		// negative sign on a zero coefficient; String reflects it.
		b.WriteByte('-')
	}

	if scale == 0 {
		b.WriteString(digits)
		return b.String()
	}

	if len(digits) <= scale {
		digits = strings.Repeat("0", scale-len(digits)+1) + digits
	}
	intPart := digits[:len(digits)-scale]
	fracPart := digits[len(digits)-scale:]
	b.WriteString(intPart)
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}
