package decimal

import (
	"math/big"
	"math/bits"
	"sync"
)

// u128 (Unsigned 128-bit) is the fast-path coefficient type. It holds
// values in [0, 2^128-1], but in this package every u128 that escapes
// as a Decimal coefficient is further constrained to [0, 2^96-1]
// (maxCoefficient). Intermediate computations (scale alignment, a
// 96x96 product) are allowed to pass through the full 128-bit range
// before the caller decides whether the result still fits.
type u128 struct {
	hi, lo uint64
}

// maxCoefficient is 2^96-1, the largest coefficient a Decimal can hold.
var maxCoefficient = u128{hi: 0xFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}

func u128FromUint64(x uint64) u128 { return u128{lo: x} }

func (x u128) isZero() bool { return x.hi == 0 && x.lo == 0 }

// cmp returns -1, 0, +1 as x <, ==, > y.
func (x u128) cmp(y u128) int {
	switch {
	case x.hi != y.hi:
		if x.hi < y.hi {
			return -1
		}
		return 1
	case x.lo != y.lo:
		if x.lo < y.lo {
			return -1
		}
		return 1
	}
	return 0
}

func (x u128) gt(y u128) bool { return x.cmp(y) > 0 }
func (x u128) gte(y u128) bool { return x.cmp(y) >= 0 }

// add calculates x+y, reporting overflow beyond 128 bits.
func (x u128) add(y u128) (z u128, ok bool) {
	lo, carry := bits.Add64(x.lo, y.lo, 0)
	hi, carry := bits.Add64(x.hi, y.hi, carry)
	if carry != 0 {
		return u128{}, false
	}
	return u128{hi: hi, lo: lo}, true
}

// sub calculates x-y. The caller must ensure x >= y.
func (x u128) sub(y u128) u128 {
	lo, borrow := bits.Sub64(x.lo, y.lo, 0)
	hi, _ := bits.Sub64(x.hi, y.hi, borrow)
	return u128{hi: hi, lo: lo}
}

// dist calculates |x-y|.
func (x u128) dist(y u128) u128 {
	if x.cmp(y) >= 0 {
		return x.sub(y)
	}
	return y.sub(x)
}

// mulSmall multiplies x by a uint64 factor that is known to fit a
// single machine word (every element of pow10Small does), reporting
// overflow beyond 128 bits.
func (x u128) mulSmall(y uint64) (z u128, ok bool) {
	if y == 0 || x.isZero() {
		return u128{}, true
	}
	hi1, lo := bits.Mul64(x.lo, y)   // x.lo*y = hi1*2^64 + lo
	hi2, lo2 := bits.Mul64(x.hi, y)  // x.hi*y = hi2*2^64 + lo2
	mid, carry := bits.Add64(lo2, hi1, 0)
	// total = (hi2+carry)*2^128 + mid*2^64 + lo; any nonzero bits
	// above 2^128 mean the product does not fit a u128.
	overflowWord, carryOut := bits.Add64(hi2, carry, 0)
	if overflowWord != 0 || carryOut != 0 {
		return u128{}, false
	}
	return u128{hi: mid, lo: lo}, true
}

// toBig converts x to a *big.Int.
func (x u128) toBig() *big.Int {
	z := new(big.Int).SetUint64(x.hi)
	z.Lsh(z, 64)
	z.Or(z, new(big.Int).SetUint64(x.lo))
	return z
}

// u128FromBig converts a non-negative *big.Int to a u128, reporting
// overflow if it does not fit 128 bits.
func u128FromBig(x *big.Int) (z u128, ok bool) {
	if x.Sign() < 0 || x.BitLen() > 128 {
		return u128{}, false
	}
	var buf [16]byte
	x.FillBytes(buf[:])
	hi := uint64(0)
	lo := uint64(0)
	for i := 0; i < 8; i++ {
		hi = hi<<8 | uint64(buf[i])
	}
	for i := 8; i < 16; i++ {
		lo = lo<<8 | uint64(buf[i])
	}
	return u128{hi: hi, lo: lo}, true
}

// mul computes the full (up to 256-bit) product of x and y as a
// *big.Int. Used by multiplication (C6) before the result is checked
// against the 96-bit envelope.
func (x u128) mul(y u128) *big.Int {
	return new(big.Int).Mul(x.toBig(), y.toBig())
}

// lsh (Left Shift) calculates x * 10^shift, reporting overflow beyond
// 128 bits. shift must be >= 0.
func (x u128) lsh(shift int) (z u128, ok bool) {
	switch {
	case shift <= 0:
		return x, true
	case shift >= len(pow10u128):
		return u128{}, false
	}
	return pow10u128[shift].mulBig(x)
}

// mulBig multiplies the small value p (itself a power of ten that
// fits a u128) by x, going through big.Int only when the product
// would not fit a single machine word multiply.
func (p u128) mulBig(x u128) (u128, bool) {
	if p.hi == 0 {
		if z, ok := x.mulSmall(p.lo); ok {
			return z, true
		}
	}
	return u128FromBig(new(big.Int).Mul(p.toBig(), x.toBig()))
}

// quoRem computes q = floor(x/y), r = x - q*y for y != 0. It is
// implemented via big.Int: 128-bit hardware division is not available
// on every platform Go targets, and every divisor this package passes
// in practice is a cached power of ten, so correctness dominates.
func (x u128) quoRem(y u128) (q, r u128) {
	bq, br := new(big.Int).QuoRem(x.toBig(), y.toBig(), new(big.Int))
	q, _ = u128FromBig(bq)
	r, _ = u128FromBig(br)
	return q, r
}

// prec returns the number of decimal digits in x. prec(0) == 0.
func (x u128) prec() int {
	if x.isZero() {
		return 0
	}
	left, right := 1, len(pow10u128)
	for left < right {
		mid := (left + right) / 2
		if x.cmp(pow10u128[mid]) < 0 {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}

// hasPrec reports whether x has at least prec decimal digits.
func (x u128) hasPrec(prec int) bool {
	switch {
	case prec < 1:
		return true
	case prec > len(pow10u128):
		return false
	}
	return x.gte(pow10u128[prec-1])
}

func (x u128) String() string { return x.toBig().String() }

// pow10Small holds 10^0..10^19, the largest powers of ten that fit a
// single uint64 (10^19 < 2^64 <= 10^20).
var pow10Small = [20]uint64{
	1, 10, 100, 1_000, 10_000, 100_000, 1_000_000, 10_000_000,
	100_000_000, 1_000_000_000, 10_000_000_000, 100_000_000_000,
	1_000_000_000_000, 10_000_000_000_000, 100_000_000_000_000,
	1_000_000_000_000_000, 10_000_000_000_000_000, 100_000_000_000_000_000,
	1_000_000_000_000_000_000, 10_000_000_000_000_000_000,
}

// pow10u128 is a cache of powers of ten up to the largest that still
// fits 128 bits (10^38). Indexes beyond that are served by pow10Big.
var pow10u128 = func() [39]u128 {
	var t [39]u128
	t[0] = u128FromUint64(1)
	for i := 1; i < len(t); i++ {
		switch {
		case i < len(pow10Small):
			t[i] = u128FromUint64(pow10Small[i])
		default:
			z, ok := t[i-1].mulSmall(10)
			if !ok {
				panic("decimal: pow10u128 table overflowed 128 bits")
			}
			t[i] = z
		}
	}
	return t
}()

// bint (Big INTeger) is the slow-path coefficient type: an owned
// wrapper around *big.Int, used whenever an intermediate value (a
// 192-bit product, a scaled dividend, a square-root working value)
// would not fit u128. Grounded in govalues/decimal's identically
// named wrapper.
type bint big.Int

func newBint() *bint { return new(bint) }

func bintFromU128(x u128) *bint { return (*bint)(x.toBig()) }

func (z *bint) big() *big.Int { return (*big.Int)(z) }

func (z *bint) setU128(x u128) { z.big().Set(x.toBig()) }

func (z *bint) setInt64(x int64) { z.big().SetInt64(x) }

func (z *bint) setBint(x *bint) { z.big().Set(x.big()) }

func (z *bint) sign() int { return z.big().Sign() }

func (z *bint) isOdd() bool { return z.big().Bit(0) != 0 }

func (z *bint) cmp(x *bint) int { return z.big().Cmp(x.big()) }

func (z *bint) string() string { return z.big().String() }

// u128 converts z to a u128. If z does not fit, ok is false.
func (z *bint) u128() (x u128, ok bool) { return u128FromBig(z.big()) }

func (z *bint) add(x, y *bint) { z.big().Add(x.big(), y.big()) }

func (z *bint) inc(x *bint) { z.big().Add(x.big(), big.NewInt(1)) }

func (z *bint) sub(x, y *bint) { z.big().Sub(x.big(), y.big()) }

func (z *bint) dist(x, y *bint) {
	switch x.cmp(y) {
	case 1:
		z.sub(x, y)
	default:
		z.sub(y, x)
	}
}

func (z *bint) dbl(x *bint) { z.big().Lsh(x.big(), 1) }

func (z *bint) hlf(x *bint) { z.big().Rsh(x.big(), 1) }

// mul calculates z = x*y, copying x/y first if either aliases z
// (big.Int.Mul permits aliasing, but scratch values drawn from the
// pool below keep this consistent with govalues/decimal's own
// alias-protected mul).
func (z *bint) mul(x, y *bint) {
	if z == x {
		b := getBigInt()
		defer putBigInt(b)
		b.Set(x.big())
		x = (*bint)(b)
	}
	if z == y {
		b := getBigInt()
		defer putBigInt(b)
		b.Set(y.big())
		y = (*bint)(b)
	}
	z.big().Mul(x.big(), y.big())
}

func (z *bint) quo(x, y *bint) { z.big().Quo(x.big(), y.big()) }

func (z *bint) quoRem(x, y, r *bint) { z.big().QuoRem(x.big(), y.big(), r.big()) }

// pow10Bint returns a cached 10^power as a *bint, extending the
// cache under pow10Mu if needed. The cache is append-only, so readers
// can take a snapshot index under RLock and safely index into it
// after releasing the lock.
func pow10Bint(power int) *bint {
	if power < 0 {
		panic("decimal: pow10Bint of negative power")
	}
	pow10Mu.RLock()
	if power < len(pow10Big) {
		p := pow10Big[power]
		pow10Mu.RUnlock()
		return p
	}
	pow10Mu.RUnlock()

	pow10Mu.Lock()
	defer pow10Mu.Unlock()
	for len(pow10Big) <= power {
		prev := pow10Big[len(pow10Big)-1]
		next := (*bint)(new(big.Int).Mul(prev.big(), big.NewInt(10)))
		pow10Big = append(pow10Big, next)
	}
	return pow10Big[power]
}

var pow10Mu sync.RWMutex

// pow10Big is pre-filled at init time up to index 60, so lookups in
// that range only take pow10Mu's read lock; larger powers (for example
// from a large parsed exponent) are appended by pow10Bint under the
// write lock.
var pow10Big = func() []*bint {
	const prefill = 60
	t := make([]*bint, prefill+1)
	t[0] = (*bint)(big.NewInt(1))
	for i := 1; i <= prefill; i++ {
		t[i] = (*bint)(new(big.Int).Mul(t[i-1].big(), big.NewInt(10)))
	}
	return t
}()

// lsh (Left Shift) calculates z = x * 10^shift.
func (z *bint) lsh(x *bint, shift int) {
	if shift <= 0 {
		z.setBint(x)
		return
	}
	z.mul(x, pow10Bint(shift))
}

// rshDown (Right Shift) calculates z = floor(x / 10^shift).
func (z *bint) rshDown(x *bint, shift int) {
	switch {
	case x.sign() == 0:
		z.setInt64(0)
	case shift <= 0:
		z.setBint(x)
	default:
		z.quo(x, pow10Bint(shift))
	}
}

// prec returns the number of decimal digits in z. z must be >= 0.
func (z *bint) prec() int {
	if z.sign() == 0 {
		return 0
	}
	return len(z.string())
}

// bigIntPool recycles scratch *big.Int values used by u128/bint
// helpers, following govalues/decimal's sync.Pool idiom.
var bigIntPool = sync.Pool{
	New: func() any { return new(big.Int) },
}

func getBigInt() *big.Int  { return bigIntPool.Get().(*big.Int) }
func putBigInt(x *big.Int) { bigIntPool.Put(x) }
