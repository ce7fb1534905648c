package exact

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Fraction is an exact rational number with a signed 64-bit numerator
// and an unsigned 64-bit denominator.
// The zero value is 0/1: a stored denominator of 0 is observed as 1.
// Fractions are not kept in lowest terms, see [Fraction.Simplify].
// It is designed to be safe for concurrent use by multiple goroutines.
type Fraction struct {
	num int64
	den uint64 // 0 is observed as 1
}

// roundPlaces is the number of digits after the decimal point kept
// when a fraction is converted to a decimal.
const roundPlaces = 2 * (MaxPrecision + 1)

// NewFraction returns a fraction equal to num / den.
// NewFraction returns an error if den is 0.
func NewFraction(num int64, den uint64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, ErrOutOfRange.New("%v/0: denominator must be positive", num)
	}
	return Fraction{num: num, den: den}, nil
}

// NewFractionFromInt64 returns a fraction equal to v / 1.
func NewFractionFromInt64(v int64) Fraction {
	return Fraction{num: v, den: 1}
}

// NewFractionFromFixed converts a fixed-point number to a fraction.
// The numerator is the raw value and the denominator is 10^precision.
// The conversion is exact.
func NewFractionFromFixed(f Fixed) Fraction {
	return Fraction{num: f.raw, den: pow10[f.prec]}
}

// ParseFraction converts a string of the form "num/den" or "num" to a fraction.
// The fraction is not simplified.
func ParseFraction(s string) (Fraction, error) {
	n, d, found := strings.Cut(strings.TrimSpace(s), "/")
	num, err := strconv.ParseInt(n, 10, 64)
	if err != nil {
		return Fraction{}, ErrOutOfRange.New("invalid numerator in %q: %v", s, err)
	}
	if !found {
		return NewFractionFromInt64(num), nil
	}
	den, err := strconv.ParseUint(d, 10, 64)
	if err != nil {
		return Fraction{}, ErrOutOfRange.New("invalid denominator in %q: %v", s, err)
	}
	return NewFraction(num, den)
}

// Num returns the numerator of x.
func (x Fraction) Num() int64 {
	return x.num
}

// Den returns the denominator of x, which is always positive.
func (x Fraction) Den() uint64 {
	if x.den == 0 {
		return 1
	}
	return x.den
}

// String implements [fmt.Stringer] interface and returns "num/den".
func (x Fraction) String() string {
	return fmt.Sprintf("%d/%d", x.num, x.Den())
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Fraction.String].
func (x Fraction) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see function [ParseFraction].
func (x *Fraction) UnmarshalText(text []byte) error {
	var err error
	*x, err = ParseFraction(string(text))
	return err
}

// Decimal returns x as a decimal rounded to 38 digits after the decimal point.
// Unlike other methods, the conversion is not exact.
func (x Fraction) Decimal() decimal.Decimal {
	return decimal.NewFromInt(x.num).DivRound(decimalFromUint64(x.Den()), roundPlaces)
}

// Float64 returns the nearest binary floating-point number.
func (x Fraction) Float64() float64 {
	return float64(x.num) / float64(x.Den())
}

func decimalFromUint64(u uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(u), 0)
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x == 0
//	+1 if x > 0
func (x Fraction) Sign() int {
	return cmpInt64(x.num, 0)
}

// IsZero returns true if x == 0.
func (x Fraction) IsZero() bool {
	return x.num == 0
}

// Neg returns x with the opposite sign.
// Neg returns an error if the numerator is the most negative int64.
func (x Fraction) Neg() (Fraction, error) {
	mag, neg := SignDecompose(x.num)
	n, ok := recompose(mag, !neg)
	if !ok {
		return Fraction{}, ErrOverflow.New("-(%v)", x)
	}
	return Fraction{num: n, den: x.Den()}, nil
}

// Abs returns the absolute value of x.
// Abs returns an error if the numerator is the most negative int64.
func (x Fraction) Abs() (Fraction, error) {
	if x.num < 0 {
		return x.Neg()
	}
	return x, nil
}

// Inv returns the reciprocal 1/x.
//
// Inv returns an error if:
//   - x is 0;
//   - the denominator of x does not fit into the numerator of the result.
func (x Fraction) Inv() (Fraction, error) {
	if x.IsZero() {
		return Fraction{}, ErrDivisionByZero.New("1 / %v", x)
	}
	mag, neg := SignDecompose(x.num)
	n, ok := recompose(x.Den(), neg)
	if !ok {
		return Fraction{}, ErrOverflow.New("1 / %v", x)
	}
	return Fraction{num: n, den: mag}, nil
}

// Simplify returns x reduced to lowest terms.
func (x Fraction) Simplify() Fraction {
	mag, neg := SignDecompose(x.num)
	d := x.Den()
	g := GCD(mag, d)
	if g <= 1 {
		return Fraction{num: x.num, den: d}
	}
	// mag / g never grows, so it fits back with the same sign.
	n, _ := recompose(mag/g, neg)
	return Fraction{num: n, den: d / g}
}

// Floor returns the largest integer less than or equal to x.
func (x Fraction) Floor() int64 {
	mag, neg := SignDecompose(x.num)
	d := x.Den()
	q, r := mag/d, mag%d
	if neg && r != 0 {
		q++ // d >= 2, hence q < 2^63
	}
	z, _ := recompose(q, neg)
	return z
}

// Cmp compares x and y numerically and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
//
// Fractions with different denominators are compared by cross products
// computed with 128 bits, see [MulWide], so the comparison never overflows.
func (x Fraction) Cmp(y Fraction) int {
	xd, yd := x.Den(), y.Den()
	if xd == yd {
		return cmpInt64(x.num, y.num)
	}
	xs, ys := x.Sign(), y.Sign()
	switch {
	case xs != ys:
		return cmpInt64(int64(xs), int64(ys))
	case xs == 0:
		return 0
	}
	xmag, _ := SignDecompose(x.num)
	ymag, _ := SignDecompose(y.num)
	r := MulWide(xmag, yd).Cmp(MulWide(ymag, xd))
	if xs < 0 {
		return -r
	}
	return r
}

// Equal returns true if x and y are numerically equal,
// regardless of whether they are simplified.
func (x Fraction) Equal(y Fraction) bool {
	return x.Cmp(y) == 0
}

// Add returns the sum of x and y.
// Fractions with different denominators are combined over the least
// common multiple of the denominators.
//
// Add returns an error if the numerator or the denominator of the sum overflows.
func (x Fraction) Add(y Fraction) (Fraction, error) {
	z, ok := x.addSub(y, false)
	if !ok {
		return Fraction{}, ErrOverflow.New("%v + %v", x, y)
	}
	return z, nil
}

// Sub returns the difference of x and y.
// See [Fraction.Add] for details.
func (x Fraction) Sub(y Fraction) (Fraction, error) {
	z, ok := x.addSub(y, true)
	if !ok {
		return Fraction{}, ErrOverflow.New("%v - %v", x, y)
	}
	return z, nil
}

func (x Fraction) addSub(y Fraction, sub bool) (Fraction, bool) {
	combine := addInt64
	if sub {
		combine = subInt64
	}
	xd, yd := x.Den(), y.Den()
	if xd == yd {
		n, ok := combine(x.num, y.num)
		return Fraction{num: n, den: xd}, ok
	}
	g := GCD(xd, yd)
	t := yd / g
	xn, ok := scaleInt64(x.num, t)
	if !ok {
		return Fraction{}, false
	}
	yn, ok := scaleInt64(y.num, xd/g)
	if !ok {
		return Fraction{}, false
	}
	n, ok := combine(xn, yn)
	if !ok {
		return Fraction{}, false
	}
	d, ok := mulUint64(xd, t)
	if !ok {
		return Fraction{}, false
	}
	return Fraction{num: n, den: d}, true
}

// scaleInt64 calculates x * k and checks overflow.
func scaleInt64(x int64, k uint64) (int64, bool) {
	mag, neg := SignDecompose(x)
	return mulInt64Uint64(mag, neg, k)
}

// Mul returns the product of x and y.
// Each numerator is reduced against the other denominator before the
// multiplication, which keeps intermediate values small.
//
// Mul returns an error if the numerator or the denominator of the product overflows.
func (x Fraction) Mul(y Fraction) (Fraction, error) {
	xmag, xneg := SignDecompose(x.num)
	ymag, yneg := SignDecompose(y.num)
	z, ok := mulParts(xmag, x.Den(), ymag, y.Den(), xneg != yneg)
	if !ok {
		return Fraction{}, ErrOverflow.New("%v * %v", x, y)
	}
	return z, nil
}

// Quo returns the quotient of x and y, which is x multiplied by the
// reciprocal of y.
//
// Quo returns an error if:
//   - y is 0;
//   - the numerator or the denominator of the quotient overflows.
func (x Fraction) Quo(y Fraction) (Fraction, error) {
	if y.IsZero() {
		return Fraction{}, ErrDivisionByZero.New("%v / %v", x, y)
	}
	xmag, xneg := SignDecompose(x.num)
	ymag, yneg := SignDecompose(y.num)
	z, ok := mulParts(xmag, x.Den(), y.Den(), ymag, xneg != yneg)
	if !ok {
		return Fraction{}, ErrOverflow.New("%v / %v", x, y)
	}
	return z, nil
}

// mulParts calculates (xn / xd) * (yn / yd) with cross-reduction.
func mulParts(xn, xd, yn, yd uint64, neg bool) (Fraction, bool) {
	g1 := GCD(xn, yd)
	g2 := GCD(yn, xd)
	nmag, ok := mulUint64(xn/g1, yn/g2)
	if !ok {
		return Fraction{}, false
	}
	d, ok := mulUint64(xd/g2, yd/g1)
	if !ok {
		return Fraction{}, false
	}
	n, ok := recompose(nmag, neg)
	if !ok {
		return Fraction{}, false
	}
	return Fraction{num: n, den: d}, true
}

// Mod returns the floored modulus x - y * floor(x / y).
// The result has the sign of y.
//
// Mod returns an error if:
//   - y is 0;
//   - any intermediate result overflows.
func (x Fraction) Mod(y Fraction) (Fraction, error) {
	q, err := x.Quo(y)
	if err != nil {
		return Fraction{}, err
	}
	p, err := y.Mul(NewFractionFromInt64(q.Floor()))
	if err != nil {
		return Fraction{}, err
	}
	return x.Sub(p)
}

// Round returns x rescaled to the given denominator, with the numerator
// rounded using "half away from zero" rule.
//
// Unlike other methods, Round is not exact: the ratio is computed as a
// decimal with 38 digits after the decimal point, see [Fraction.Decimal].
//
// Round returns an error if:
//   - den is 0;
//   - the rounded numerator does not fit into int64.
func (x Fraction) Round(den uint64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, ErrOutOfRange.New("round(%v, 0): denominator must be positive", x)
	}
	n := x.Decimal().Mul(decimalFromUint64(den)).Round(0).BigInt()
	if !n.IsInt64() {
		return Fraction{}, ErrOverflow.New("round(%v, %v)", x, den)
	}
	return Fraction{num: n.Int64(), den: den}, nil
}
