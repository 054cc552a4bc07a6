package decimal

// layout.go implements the bit-exact 128-bit interop contract with
// the Microsoft DECIMAL / System.Decimal wire format, via defined
// accessors rather than unsafe aliasing:
//
//	bits   0.. 31  low     : bits 0..31  of the coefficient
//	bits  32.. 63  mid     : bits 32..63 of the coefficient
//	bits  64.. 95  high    : bits 64..95 of the coefficient
//	bits  96..111  reserved, must be zero
//	bits 112..116  scale (bits 16..20 of the flags word)
//	bits 117..126  reserved, must be zero
//	bit  127       sign (bit 31 of the flags word)
const (
	signShift  = 31 // within the flags word
	scaleShift = 16 // within the flags word
	scaleMask  = 0x1F
)

// Bits returns the four 32-bit words of d's bit-exact layout, ready to
// be packed little-endian into 16 bytes (low, mid, high, flags).
func (d Decimal) Bits() (low, mid, high, flags uint32) {
	low = uint32(d.coef.lo)
	mid = uint32(d.coef.lo >> 32)
	high = uint32(d.coef.hi)
	flags = uint32(d.scale) << scaleShift
	if d.neg {
		flags |= 1 << signShift
	}
	return low, mid, high, flags
}

// NewFromBits reconstructs a Decimal from the four 32-bit words of the
// bit-exact layout. It returns ErrInvalidOperation if any reserved bit
// is set or the encoded scale exceeds MaxScale.
func NewFromBits(low, mid, high, flags uint32) (Decimal, error) {
	const reservedMask = ^uint32((1 << signShift) | (scaleMask << scaleShift))
	if flags&reservedMask != 0 {
		return Decimal{}, newInvalidOperationError("reserved flag bits set: %#08x", flags)
	}
	scale := int((flags >> scaleShift) & scaleMask)
	if scale > MaxScale {
		return Decimal{}, newInvalidOperationError("scale %d out of range [0,%d]", scale, MaxScale)
	}
	neg := flags&(1<<signShift) != 0
	coef := u128{hi: uint64(high), lo: uint64(mid)<<32 | uint64(low)}
	return Decimal{neg: neg, scale: uint8(scale), coef: coef}, nil
}
