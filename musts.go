package exact

import "fmt"

// MustNewFixed is like [NewFixed] but panics if the precision is out of range.
// It simplifies safe initialization of global variables holding fixed-point numbers.
func MustNewFixed(raw int64, prec int) Fixed {
	f, err := NewFixed(raw, prec)
	if err != nil {
		panic(fmt.Sprintf("MustNewFixed(%v, %v) failed: %v", raw, prec, err))
	}
	return f
}

// MustParseFixed is like [ParseFixed] but panics if the string cannot be parsed.
func MustParseFixed(s string, prec int) Fixed {
	f, err := ParseFixed(s, prec)
	if err != nil {
		panic(fmt.Sprintf("MustParseFixed(%q, %v) failed: %v", s, prec, err))
	}
	return f
}

// MustNewFraction is like [NewFraction] but panics if the denominator is 0.
func MustNewFraction(num int64, den uint64) Fraction {
	x, err := NewFraction(num, den)
	if err != nil {
		panic(fmt.Sprintf("MustNewFraction(%v, %v) failed: %v", num, den, err))
	}
	return x
}

// MustAdd is like [Fixed.Add] but panics if computing error.
func (f Fixed) MustAdd(g Fixed) Fixed {
	h, err := f.Add(g)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", g, err))
	}
	return h
}

// MustSub is like [Fixed.Sub] but panics if computing error.
func (f Fixed) MustSub(g Fixed) Fixed {
	h, err := f.Sub(g)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", g, err))
	}
	return h
}

// MustMul is like [Fixed.Mul] but panics if computing error.
func (f Fixed) MustMul(g Fixed) Fixed {
	h, err := f.Mul(g)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", g, err))
	}
	return h
}

// MustQuo is like [Fixed.Quo] but panics if computing error.
func (f Fixed) MustQuo(g Fixed) Fixed {
	h, err := f.Quo(g)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", g, err))
	}
	return h
}

// MustAdd is like [Fraction.Add] but panics if computing error.
func (x Fraction) MustAdd(y Fraction) Fraction {
	z, err := x.Add(y)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", y, err))
	}
	return z
}

// MustMul is like [Fraction.Mul] but panics if computing error.
func (x Fraction) MustMul(y Fraction) Fraction {
	z, err := x.Mul(y)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", y, err))
	}
	return z
}
