/*
Package decimal implements fixed-point decimal numbers with a 96-bit
unsigned coefficient, a scale of 0 to 28, and a sign bit. It is
designed for transactional financial computation, where the rounding
behavior of binary floating point is unacceptable.

# Representation

[Decimal] holds three fields: a sign, a 96-bit unsigned coefficient,
and a scale from 0 to [MaxScale]. Its numeric value is:

	(-1)^sign * coefficient * 10^-scale

The same numeric value can have more than one representation: 1, 1.0,
and 1.00 are distinct Decimals with the same value but different
scales. [Decimal.Cmp] and [Decimal.Equal] compare values, not
representations.

# Layout

[Decimal.Bits] and [NewFromBits] convert losslessly to and from the
128-bit layout used by the Microsoft DECIMAL type and .NET's
System.Decimal: four 32-bit words (low, mid, high coefficient words,
then a flags word carrying the sign at bit 31 and the scale at bits
16-20). This makes the type a drop-in fit for interop with systems
built on that layout; [Decimal.MarshalBinary] and
[Decimal.UnmarshalBinary] write and read it as 16 little-endian
bytes. [Decimal.Value] and [Decimal.Scan] exchange the text form
with database drivers, not this layout.

# Arithmetic

[Decimal.Add], [Decimal.Sub], [Decimal.Mul], [Decimal.Quo], and
[Decimal.Sqrt] operate on the coefficient in wide-integer arithmetic
(u128, extending to *big.Int for 192/256-bit intermediates) and narrow
the result back to the 96-bit / 28-scale envelope with HALF_EVEN
rounding by default. All return an error
rather than panicking when the result cannot fit the envelope; the
Must-prefixed wrappers in this package panic instead, for callers who
have already established their inputs cannot overflow.

# Rounding

[RoundingMode] selects among DOWN, HALF_UP, HALF_EVEN (the default,
round-half-to-even), and UP when an operation must discard digits.
[Decimal.Round] rounds to an explicit scale; [Decimal.Truncate],
[Decimal.Floor], and [Decimal.Ceil] are common rounding idioms built
on it.

# Errors

Every fallible operation except the codec checks in [Decimal.Scan]
(unsupported source type) and [Decimal.UnmarshalBinary] (wrong byte
length), whose errors wrap none of them, returns one of the sentinel
errors in this package: [ErrConversionSyntax] for malformed input text,
[ErrOverflow] when a result cannot fit the envelope,
[ErrDivisionByZero] for division by zero, [ErrInvalidOperation] for
operations undefined regardless of magnitude (0/0, the square root of
a negative number, an out-of-range scale), and [ErrInternal] for a
wide-integer invariant violation, which should never surface from
valid inputs. Use errors.Is to test for a particular kind.
*/
package decimal
