package exact

import (
	"math"

	"github.com/shopspring/decimal"
)

// Fixed is a fixed-point decimal number with a precision selected at runtime.
// The zero value is the numeric value of 0 with precision 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A fixed-point number is a struct with two parameters:
//
//   - Raw value: a signed 64-bit integer equal to the number multiplied by 10^precision.
//   - Precision: the number of digits after the decimal point, from 0 to [MaxPrecision].
//
// For example, a raw value of 12345 with a precision of 2 represents 123.45.
// The same number can have several representations: 1, 1.0 and 1.00 are equal,
// but have different precisions and raw values.
type Fixed struct {
	raw  int64 // the number multiplied by 10^prec
	prec uint8 // the number of digits after the decimal point
}

// MaxPrecision is the maximum number of digits after the decimal point.
// 10^MaxPrecision is the largest power of 10 that fits into int64.
const MaxPrecision = 18

// pow10 must hold 10^0 through 10^MaxPrecision.
var _ = pow10[MaxPrecision]

func newFixed(raw int64, prec int) (Fixed, error) {
	if prec < 0 || prec > MaxPrecision {
		return Fixed{}, ErrOutOfRange.New("precision %v is not within [0, %v]", prec, MaxPrecision)
	}
	return Fixed{raw: raw, prec: uint8(prec)}, nil
}

// NewFixed returns a fixed-point number equal to raw / 10^prec.
// NewFixed returns an error if prec is less than 0 or greater than [MaxPrecision].
func NewFixed(raw int64, prec int) (Fixed, error) {
	return newFixed(raw, prec)
}

// NewFixedFromInt64 converts an integer to a fixed-point number with the given precision.
// NewFixedFromInt64 returns an error if:
//   - prec is less than 0 or greater than [MaxPrecision];
//   - v * 10^prec does not fit into int64.
func NewFixedFromInt64(v int64, prec int) (Fixed, error) {
	f, err := newFixed(0, prec)
	if err != nil {
		return Fixed{}, err
	}
	raw, ok := lsh(v, prec)
	if !ok {
		return Fixed{}, ErrOverflow.New("%v with precision %v does not fit into int64", v, prec)
	}
	f.raw = raw
	return f, nil
}

// NewFixedFromDecimal converts a decimal to a (possibly rounded) fixed-point
// number with the given precision.
// The integer part and the fractional part of d are scaled separately,
// and the fractional part is rounded to prec digits using
// "half away from zero" rule, so large integer parts never overflow
// during rounding.
//
// NewFixedFromDecimal returns an error if:
//   - prec is less than 0 or greater than [MaxPrecision];
//   - the rounded result does not fit into int64.
func NewFixedFromDecimal(d decimal.Decimal, prec int) (Fixed, error) {
	f, err := newFixed(0, prec)
	if err != nil {
		return Fixed{}, err
	}
	whole := d.Truncate(0)
	bwhole := whole.BigInt()
	if !bwhole.IsInt64() {
		return Fixed{}, ErrOverflow.New("integer part of %v does not fit into int64", d)
	}
	frac := d.Sub(whole).Round(int32(prec)).Shift(int32(prec)).IntPart()
	raw, ok := lsh(bwhole.Int64(), prec)
	if !ok {
		return Fixed{}, ErrOverflow.New("%v with precision %v does not fit into int64", d, prec)
	}
	raw, ok = addInt64(raw, frac)
	if !ok {
		return Fixed{}, ErrOverflow.New("%v with precision %v does not fit into int64", d, prec)
	}
	f.raw = raw
	return f, nil
}

// NewFixedFromFloat64 converts a float to a (possibly rounded) fixed-point
// number with the given precision.
// See [NewFixedFromDecimal] for details on rounding.
//
// NewFixedFromFloat64 returns an error if:
//   - the float is a special value (NaN or Inf);
//   - prec is less than 0 or greater than [MaxPrecision];
//   - the rounded result does not fit into int64.
func NewFixedFromFloat64(v float64, prec int) (Fixed, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Fixed{}, ErrOutOfRange.New("special value %v", v)
	}
	return NewFixedFromDecimal(decimal.NewFromFloat(v), prec)
}

// ParseFixed converts a string to a (possibly rounded) fixed-point number
// with the given precision.
// The string is parsed by [decimal.NewFromString], see [NewFixedFromDecimal]
// for details on rounding.
func ParseFixed(s string, prec int) (Fixed, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Fixed{}, ErrOutOfRange.New("invalid number %q: %v", s, err)
	}
	return NewFixedFromDecimal(d, prec)
}

// Raw returns the raw value of f, which is f * 10^f.Precision().
func (f Fixed) Raw() int64 {
	return f.raw
}

// Precision returns the number of digits after the decimal point.
func (f Fixed) Precision() int {
	return int(f.prec)
}

// unit returns 10^f.Precision(), the raw value of 1.
func (f Fixed) unit() int64 {
	return int64(pow10[f.prec])
}

// Decimal returns f as a decimal.
// The conversion is exact.
func (f Fixed) Decimal() decimal.Decimal {
	return decimal.New(f.raw, -int32(f.prec))
}

// Float64 returns the nearest binary floating-point number rounded
// using "half to even" rule.
func (f Fixed) Float64() float64 {
	return f.Decimal().InexactFloat64()
}

// Int64 returns the integer part of f, truncated towards zero.
func (f Fixed) Int64() int64 {
	return f.raw / f.unit()
}

// String implements [fmt.Stringer] interface and returns a string
// representation of f with exactly f.Precision() digits after the
// decimal point.
func (f Fixed) String() string {
	return f.Decimal().StringFixed(int32(f.prec))
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Fixed.String].
func (f Fixed) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// The precision is taken from the number of digits after the decimal point
// and capped at [MaxPrecision].
func (f *Fixed) UnmarshalText(text []byte) error {
	d, err := decimal.NewFromString(string(text))
	if err != nil {
		return ErrOutOfRange.New("invalid number %q: %v", text, err)
	}
	prec := 0
	if exp := int(d.Exponent()); exp < 0 {
		prec = min(-exp, MaxPrecision)
	}
	*f, err = NewFixedFromDecimal(d, prec)
	return err
}

// Sign returns:
//
//	-1 if f < 0
//	 0 if f == 0
//	+1 if f > 0
func (f Fixed) Sign() int {
	switch {
	case f.raw < 0:
		return -1
	case f.raw > 0:
		return 1
	}
	return 0
}

// IsZero returns true if f == 0.
func (f Fixed) IsZero() bool {
	return f.raw == 0
}

// Neg returns f with the opposite sign.
// Neg returns an error if f is the most negative raw value.
func (f Fixed) Neg() (Fixed, error) {
	if f.raw == math.MinInt64 {
		return Fixed{}, ErrOverflow.New("-(%v)", f)
	}
	return Fixed{raw: -f.raw, prec: f.prec}, nil
}

// Abs returns the absolute value of f.
// Abs returns an error if f is the most negative raw value.
func (f Fixed) Abs() (Fixed, error) {
	if f.raw < 0 {
		return f.Neg()
	}
	return f, nil
}

// split returns the integer part and the fractional remainder of the raw value.
func (f Fixed) split() (whole, frac int64) {
	u := f.unit()
	return f.raw / u, f.raw % u
}

// Cmp compares f and g numerically and returns:
//
//	-1 if f < g
//	 0 if f == g
//	+1 if f > g
//
// Numbers with different precisions are compared without rescaling the
// whole raw value: integer parts are compared first, and only the
// fractional remainders are aligned.
func (f Fixed) Cmp(g Fixed) int {
	if f.prec == g.prec {
		return cmpInt64(f.raw, g.raw)
	}
	fwhole, ffrac := f.split()
	gwhole, gfrac := g.split()
	if r := cmpInt64(fwhole, gwhole); r != 0 {
		return r
	}
	// |frac| < 10^prec, so alignment to the larger precision cannot overflow.
	if f.prec < g.prec {
		ffrac *= int64(pow10[g.prec-f.prec])
	} else {
		gfrac *= int64(pow10[f.prec-g.prec])
	}
	return cmpInt64(ffrac, gfrac)
}

func cmpInt64(x, y int64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// Equal returns true if f and g are numerically equal.
func (f Fixed) Equal(g Fixed) bool {
	return f.Cmp(g) == 0
}

// Max returns the numerically larger of f and g.
func (f Fixed) Max(g Fixed) Fixed {
	if f.Cmp(g) >= 0 {
		return f
	}
	return g
}

// Min returns the numerically smaller of f and g.
func (f Fixed) Min(g Fixed) Fixed {
	if f.Cmp(g) <= 0 {
		return f
	}
	return g
}

// align returns the raw values of f and g rescaled to the larger precision.
func align(f, g Fixed) (fraw, graw int64, prec uint8, ok bool) {
	fraw, graw, prec = f.raw, g.raw, f.prec
	switch {
	case f.prec < g.prec:
		fraw, ok = lsh(f.raw, int(g.prec-f.prec))
		prec = g.prec
	case g.prec < f.prec:
		graw, ok = lsh(g.raw, int(f.prec-g.prec))
	default:
		ok = true
	}
	return fraw, graw, prec, ok
}

// Add returns the sum of f and g.
// The precision of the sum is the larger of the two precisions.
//
// Add returns an error if the sum does not fit into int64.
func (f Fixed) Add(g Fixed) (Fixed, error) {
	x, y, prec, ok := align(f, g)
	if !ok {
		return Fixed{}, ErrOverflow.New("%v + %v: aligning precisions", f, g)
	}
	z, ok := addInt64(x, y)
	if !ok {
		return Fixed{}, ErrOverflow.New("%v + %v", f, g)
	}
	return Fixed{raw: z, prec: prec}, nil
}

// Sub returns the difference of f and g.
// The precision of the difference is the larger of the two precisions.
//
// Sub returns an error if the difference does not fit into int64.
func (f Fixed) Sub(g Fixed) (Fixed, error) {
	x, y, prec, ok := align(f, g)
	if !ok {
		return Fixed{}, ErrOverflow.New("%v - %v: aligning precisions", f, g)
	}
	z, ok := subInt64(x, y)
	if !ok {
		return Fixed{}, ErrOverflow.New("%v - %v", f, g)
	}
	return Fixed{raw: z, prec: prec}, nil
}

// Mul returns the (possibly rounded) product of f and g.
// The precision of the product is the larger of the two precisions,
// and the product is rounded using "half away from zero" rule.
// The intermediate product is computed with 128 bits, see [MulWide].
//
// Mul returns an error if:
//   - aligning the precisions overflows int64;
//   - the product does not fit into int64.
func (f Fixed) Mul(g Fixed) (Fixed, error) {
	x, y, prec, ok := align(f, g)
	if !ok {
		return Fixed{}, ErrOverflow.New("%v * %v: aligning precisions", f, g)
	}
	xmag, xneg := SignDecompose(x)
	ymag, yneg := SignDecompose(y)
	w := MulWide(xmag, ymag)
	unit := pow10[prec]
	qhi, q, r, err := DivWide(w.Hi, w.Lo, unit)
	if err != nil {
		return Fixed{}, err
	}
	q, ok = roundHalfUp(qhi, q, r, unit)
	if !ok {
		return Fixed{}, ErrOverflow.New("%v * %v", f, g)
	}
	z, ok := recompose(q, xneg != yneg)
	if !ok {
		return Fixed{}, ErrOverflow.New("%v * %v", f, g)
	}
	return Fixed{raw: z, prec: prec}, nil
}

// Quo returns the (possibly rounded) quotient of f and g.
// The precision of the quotient is the larger of the two precisions,
// and the quotient is rounded using "half away from zero" rule.
// The dividend is scaled with 128 bits before the division, see [DivWide].
//
// Quo returns an error if:
//   - the divisor is 0;
//   - aligning the precisions overflows int64;
//   - the quotient does not fit into int64.
func (f Fixed) Quo(g Fixed) (Fixed, error) {
	if g.IsZero() {
		return Fixed{}, ErrDivisionByZero.New("%v / %v", f, g)
	}
	x, y, prec, ok := align(f, g)
	if !ok {
		return Fixed{}, ErrOverflow.New("%v / %v: aligning precisions", f, g)
	}
	xmag, xneg := SignDecompose(x)
	ymag, yneg := SignDecompose(y)
	w := MulWide(xmag, pow10[prec])
	qhi, q, r, err := DivWide(w.Hi, w.Lo, ymag)
	if err != nil {
		return Fixed{}, err
	}
	q, ok = roundHalfUp(qhi, q, r, ymag)
	if !ok {
		return Fixed{}, ErrOverflow.New("%v / %v", f, g)
	}
	z, ok := recompose(q, xneg != yneg)
	if !ok {
		return Fixed{}, ErrOverflow.New("%v / %v", f, g)
	}
	return Fixed{raw: z, prec: prec}, nil
}

// roundHalfUp rounds the 128-bit quotient qhi * 2^64 + q with remainder r
// of the division by d using "half away from zero" rule, and checks that
// the result fits into uint64.
func roundHalfUp(qhi, q, r, d uint64) (uint64, bool) {
	if qhi != 0 {
		return 0, false
	}
	if r >= d-r {
		return addUint64(q, 1)
	}
	return q, true
}

// Rem returns the remainder of the truncated division of f by g.
// The result has the sign of f, and the precision is the larger of the two precisions.
//
// Rem returns an error if:
//   - the divisor is 0;
//   - aligning the precisions overflows int64.
func (f Fixed) Rem(g Fixed) (Fixed, error) {
	if g.IsZero() {
		return Fixed{}, ErrDivisionByZero.New("%v %% %v", f, g)
	}
	x, y, prec, ok := align(f, g)
	if !ok {
		return Fixed{}, ErrOverflow.New("%v %% %v: aligning precisions", f, g)
	}
	return Fixed{raw: x % y, prec: prec}, nil
}

// Trunc returns f rounded towards zero to an integer.
// The precision is preserved.
func (f Fixed) Trunc() Fixed {
	whole, frac := f.split()
	if frac == 0 {
		return f
	}
	return Fixed{raw: whole * f.unit(), prec: f.prec}
}

// Floor returns f rounded towards negative infinity to an integer.
// The precision is preserved.
//
// Floor returns an error if the result does not fit into int64.
func (f Fixed) Floor() (Fixed, error) {
	t := f.Trunc()
	if t.raw <= f.raw {
		return t, nil
	}
	z, ok := subInt64(t.raw, f.unit())
	if !ok {
		return Fixed{}, ErrOverflow.New("floor(%v)", f)
	}
	return Fixed{raw: z, prec: f.prec}, nil
}

// Ceil returns f rounded towards positive infinity to an integer.
// The precision is preserved.
//
// Ceil returns an error if the result does not fit into int64.
func (f Fixed) Ceil() (Fixed, error) {
	t := f.Trunc()
	if t.raw >= f.raw {
		return t, nil
	}
	z, ok := addInt64(t.raw, f.unit())
	if !ok {
		return Fixed{}, ErrOverflow.New("ceil(%v)", f)
	}
	return Fixed{raw: z, prec: f.prec}, nil
}

// Inc returns f + 1.
// Inc returns an error if the result does not fit into int64.
func (f Fixed) Inc() (Fixed, error) {
	z, ok := addInt64(f.raw, f.unit())
	if !ok {
		return Fixed{}, ErrOverflow.New("%v + 1", f)
	}
	return Fixed{raw: z, prec: f.prec}, nil
}

// Dec returns f - 1.
// Dec returns an error if the result does not fit into int64.
func (f Fixed) Dec() (Fixed, error) {
	z, ok := subInt64(f.raw, f.unit())
	if !ok {
		return Fixed{}, ErrOverflow.New("%v - 1", f)
	}
	return Fixed{raw: z, prec: f.prec}, nil
}

// SetPrecision returns f rescaled to the given precision.
// Increasing the precision is exact.
// Decreasing the precision rounds f using "half away from zero" rule.
//
// SetPrecision returns an error if:
//   - prec is less than 0 or greater than [MaxPrecision];
//   - the rescaled raw value does not fit into int64.
func (f Fixed) SetPrecision(prec int) (Fixed, error) {
	g, err := newFixed(0, prec)
	if err != nil {
		return Fixed{}, err
	}
	if prec >= f.Precision() {
		raw, ok := lsh(f.raw, prec-f.Precision())
		if !ok {
			return Fixed{}, ErrOverflow.New("%v with precision %v does not fit into int64", f, prec)
		}
		g.raw = raw
		return g, nil
	}
	g.raw = rshHalfUp(f.raw, f.Precision()-prec)
	return g, nil
}
