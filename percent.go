package exact

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Percent is a weight expressed as a decimal ratio, where 50% is 0.5.
type Percent struct {
	ratio decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// NewPercent returns a percentage, where pct is measured in percent.
func NewPercent(pct decimal.Decimal) Percent {
	return Percent{ratio: pct.Shift(-2)}
}

// NewPercentFromRatio returns a percentage equal to the given ratio.
func NewPercentFromRatio(ratio decimal.Decimal) Percent {
	return Percent{ratio: ratio}
}

// ParsePercent converts a string such as "12.5%" or "12.5" to a percentage.
func ParsePercent(s string) (Percent, error) {
	t := strings.TrimSuffix(strings.TrimSpace(s), "%")
	pct, err := decimal.NewFromString(t)
	if err != nil {
		return Percent{}, ErrOutOfRange.New("invalid percentage %q: %v", s, err)
	}
	return NewPercent(pct), nil
}

// Ratio returns the percentage as a ratio.
func (p Percent) Ratio() decimal.Decimal {
	return p.ratio
}

// String implements [fmt.Stringer] interface.
func (p Percent) String() string {
	return p.ratio.Mul(hundred).String() + "%"
}

// Fraction returns the ratio as a simplified fraction.
// Ratios with more than [MaxPrecision] digits after the decimal point
// are rounded using "half away from zero" rule.
func (p Percent) Fraction() (Fraction, error) {
	return decimalToFraction(p.ratio)
}

func decimalToFraction(d decimal.Decimal) (Fraction, error) {
	if d.Exponent() >= 0 {
		n := d.BigInt()
		if !n.IsInt64() {
			return Fraction{}, ErrOverflow.New("%v does not fit into int64", d)
		}
		return NewFractionFromInt64(n.Int64()), nil
	}
	prec := min(int(-d.Exponent()), MaxPrecision)
	f, err := NewFixedFromDecimal(d, prec)
	if err != nil {
		return Fraction{}, err
	}
	return NewFractionFromFixed(f).Simplify(), nil
}
