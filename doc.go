/*
Package exact implements exact arithmetic on 64-bit integers:
fixed-point decimals with a precision selected at runtime, rational numbers,
and partitions of integers that never lose or create a unit through rounding.
It is designed for splitting money, quotas and workloads.

# Fixed-point numbers

[Fixed] is a struct with two fields:

  - Raw value: a signed 64-bit integer equal to the number multiplied by 10^precision.
  - Precision: the number of digits after the decimal point, from 0 to [MaxPrecision].

The range of a fixed-point number is determined by its precision:

	| Precision | Minimum                    | Maximum                   |
	| --------- | -------------------------- | ------------------------- |
	| 0         | -9223372036854775808       | 9223372036854775807       |
	| 2         | -92233720368547758.08      | 92233720368547758.07      |
	| 8         | -92233720368.54775808      | 92233720368.54775807      |
	| 18        | -9.223372036854775808      | 9.223372036854775807      |

Operands of different precisions are aligned to the larger precision.
Products and quotients are computed with 128-bit intermediates, see [MulWide]
and [DivWide], and rounded using "half away from zero" rule.

# Fractions

[Fraction] is a signed 64-bit numerator over an unsigned 64-bit denominator.
Fractions are compared by 128-bit cross products, added over the least
common multiple of the denominators and multiplied with cross-reduction,
so intermediate values stay as small as possible.
[Fraction.Round] is the only inexact operation on fractions.

# Partitions

[FixedPartition] splits an integer into parts that differ by at most 1,
and [Partition] splits it proportionally to rational weights.
In both cases the parts sum exactly to the partitioned value, and the
rounding adjustments are spread evenly over the sequence.
[Allocate] uses them to split a fraction into percentage shares.

# Errors

All methods are panic-free and pure.
Errors belong to one of three classes:

  - [ErrOverflow]: the exact result does not fit into 64 bits.
  - [ErrDivisionByZero]: the divisor is 0.
  - [ErrOutOfRange]: an argument is outside of its domain, such as a
    precision greater than [MaxPrecision] or a zero denominator.
*/
package exact
