package exact

import "github.com/shopspring/decimal"

// Allocate splits a non-negative fraction into shares proportional to the
// given percentages.
// The shares are returned in the order of the weights, have a common
// denominator, and sum exactly to the target.
//
// The common denominator is the denominator of the target whenever it can
// hold every exact share. Otherwise it is multiplied by the smallest L that
// makes every exact share a whole number of units. If no such L fits into
// uint64, the denominator of the target is used as is.
//
// Every numerator is first computed as a rounded decimal product and the
// rounding error is then absorbed by the shares: a surplus is removed one
// unit at a time in order, a deficit is spread using [FixedPartition].
//
// Allocate returns an error if:
//   - any weight is not positive;
//   - the target is negative;
//   - there are no weights and the target is not 0;
//   - any numerator overflows int64.
func Allocate(weights []Percent, target Fraction) ([]Fraction, error) {
	if target.Sign() < 0 {
		return nil, ErrOutOfRange.New("target %v is negative", target)
	}
	sum := decimal.Zero
	for i, w := range weights {
		if !w.ratio.IsPositive() {
			return nil, ErrOutOfRange.New("weight %v is not positive: %v", i, w)
		}
		sum = sum.Add(w.ratio)
	}
	shares := make([]Fraction, len(weights))
	if target.IsZero() {
		for i := range shares {
			shares[i] = target
		}
		return shares, nil
	}
	if len(weights) == 0 {
		return nil, ErrOutOfRange.New("no weights to allocate %v", target)
	}

	num, den := target.num, target.Den()
	if l := allocationScale(weights, num); l > 1 {
		n, ok1 := scaleInt64(num, l)
		d, ok2 := mulUint64(den, l)
		if ok1 && ok2 {
			num, den = n, d
		}
	}

	// Rounded shares
	multiplier := target.Decimal().DivRound(sum, roundPlaces).Mul(decimalFromUint64(den))
	diff := num
	for i, w := range weights {
		n := w.ratio.Mul(multiplier).Round(0).BigInt()
		if !n.IsInt64() {
			return nil, ErrOverflow.New("share %v of %v does not fit into int64", i, target)
		}
		shares[i] = Fraction{num: n.Int64(), den: den}
		var ok bool
		diff, ok = subInt64(diff, shares[i].num)
		if !ok {
			return nil, ErrOverflow.New("rounding error of %v does not fit into int64", target)
		}
	}
	if err := absorb(shares, diff); err != nil {
		return nil, err
	}
	return shares, nil
}

// absorb adds the rounding error diff to the numerators of non-negative
// shares, so that their sum changes by exactly diff:
//   - a surplus (diff < 0) is removed one unit at a time from positive
//     numerators, walking the shares in order as many times as needed;
//   - a deficit (diff > 0) is spread over all shares using [FixedPartition].
//
// absorb returns an error if the surplus exceeds the sum of the numerators
// or a numerator overflows.
func absorb(shares []Fraction, diff int64) error {
	switch {
	case diff < 0:
		need, _ := SignDecompose(diff)
		var mass uint64
		for _, s := range shares {
			if s.num > 0 {
				mass += uint64(s.num)
			}
			if mass >= need {
				break
			}
		}
		if mass < need {
			return ErrOutOfRange.New("surplus %v exceeds the shares", need)
		}
		for diff < 0 {
			for i := range shares {
				if diff == 0 {
					break
				}
				if shares[i].num > 0 {
					shares[i].num--
					diff++
				}
			}
		}
	case diff > 0:
		i := 0
		for extra := range NewFixedPartition(uint64(diff), uint64(len(shares))).All() {
			n, ok := addInt64(shares[i].num, int64(extra))
			if !ok {
				return ErrOverflow.New("%v + %v", shares[i], extra)
			}
			shares[i].num = n
			i++
		}
	}
	return nil
}

// allocationScale returns the smallest L such that num * w / sum(weights)
// is a multiple of 1/L for every weight w, or 1 if the shares cannot
// be represented with 64-bit fractions.
func allocationScale(weights []Percent, num int64) uint64 {
	ratios := make([]Fraction, len(weights))
	var sum Fraction
	for i, w := range weights {
		f, err := w.Fraction()
		if err != nil {
			return 1
		}
		ratios[i] = f
		sum, err = sum.Add(f)
		if err != nil {
			return 1
		}
		sum = sum.Simplify()
	}
	whole := NewFractionFromInt64(num)
	scale := uint64(1)
	for _, f := range ratios {
		share, err := f.Quo(sum)
		if err != nil {
			return 1
		}
		share, err = whole.Mul(share)
		if err != nil {
			return 1
		}
		scale, err = LCM(scale, share.Simplify().Den())
		if err != nil {
			return 1
		}
	}
	return scale
}
