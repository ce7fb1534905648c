package exact

import (
	"iter"
	"math/bits"
	"slices"
)

// FixedPartition splits an integer into a fixed number of parts that differ
// by at most 1 and sum exactly to the integer.
// The zero value is an empty partition of 0.
type FixedPartition struct {
	value uint64
	count uint64
	quo   uint64 // value / count
	rem   uint64 // value % count
}

// NewFixedPartition returns a partition of value into count parts.
// A partition into 0 parts is empty.
func NewFixedPartition(value, count uint64) FixedPartition {
	p := FixedPartition{value: value, count: count}
	if count > 0 {
		p.quo, p.rem = value/count, value%count
	}
	return p
}

// Value returns the partitioned integer.
func (p FixedPartition) Value() uint64 {
	return p.value
}

// Count returns the number of parts.
func (p FixedPartition) Count() uint64 {
	return p.count
}

// Quo returns the smaller part size, value / count.
func (p FixedPartition) Quo() uint64 {
	return p.quo
}

// Rem returns the number of parts of size Quo() + 1, value % count.
func (p FixedPartition) Rem() uint64 {
	return p.rem
}

// All returns the parts in order.
// Exactly Rem() parts are equal to Quo() + 1, the others are equal to Quo().
// The larger parts are spread evenly over the sequence, starting with the
// first one, instead of being grouped at one end.
//
// The sequence can be iterated any number of times and always yields
// the same parts.
func (p FixedPartition) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		// acc + rem >= count is checked as acc >= count - rem to avoid overflow.
		step := p.count - p.rem
		acc := p.count - 1
		for range p.count {
			part := p.quo
			if acc >= step {
				acc -= step
				part++
			} else {
				acc += p.rem
			}
			if !yield(part) {
				return
			}
		}
	}
}

// Values returns the parts as a slice.
// Also see method [FixedPartition.All].
func (p FixedPartition) Values() []uint64 {
	return slices.Collect(p.All())
}

// Partition splits an integer into parts proportional to non-negative
// rational weights.
// The parts sum exactly to Sum(), which is the integer scaled by the sum
// of the weights.
type Partition struct {
	value uint64
	parts []uint64 // weight numerators over the common denominator
	total uint64   // sum of parts
	sum   uint64
	quo   uint64 // sum / total
	rem   uint64 // sum % total
}

// NewPartition returns a partition of value into len(weights) parts.
//
// The weights are simplified and brought to their least common denominator D.
// If T is the sum of the resulting numerators, the partitioned sum is
// value * T / D reduced by GCD(T, D) and rounded using "half away from zero" rule.
//
// NewPartition returns an error if:
//   - any weight is negative;
//   - the common denominator, the sum of numerators or the partitioned sum
//     overflows uint64.
func NewPartition(value uint64, weights []Fraction) (Partition, error) {
	den := uint64(1)
	simple := make([]Fraction, len(weights))
	for i, w := range weights {
		if w.Sign() < 0 {
			return Partition{}, ErrOutOfRange.New("weight %v is negative: %v", i, w)
		}
		simple[i] = w.Simplify()
		var err error
		den, err = LCM(den, simple[i].Den())
		if err != nil {
			return Partition{}, err
		}
	}

	p := Partition{value: value, parts: make([]uint64, len(weights))}
	for i, w := range simple {
		n, ok := mulUint64(uint64(w.num), den/w.Den())
		if !ok {
			return Partition{}, ErrOverflow.New("weight %v over denominator %v", w, den)
		}
		p.parts[i] = n
		p.total, ok = addUint64(p.total, n)
		if !ok {
			return Partition{}, ErrOverflow.New("sum of weights over denominator %v", den)
		}
	}
	if p.total == 0 {
		return p, nil
	}

	g := GCD(p.total, den)
	w := MulWide(value, p.total/g)
	qhi, q, r, err := DivWide(w.Hi, w.Lo, den/g)
	if err != nil {
		return Partition{}, err
	}
	sum, ok := roundHalfUp(qhi, q, r, den/g)
	if !ok {
		return Partition{}, ErrOverflow.New("%v * %v/%v", value, p.total/g, den/g)
	}
	p.sum = sum
	p.quo, p.rem = sum/p.total, sum%p.total
	return p, nil
}

// Value returns the partitioned integer.
func (p Partition) Value() uint64 {
	return p.value
}

// Len returns the number of parts.
func (p Partition) Len() int {
	return len(p.parts)
}

// Sum returns the sum of all parts.
func (p Partition) Sum() uint64 {
	return p.sum
}

// Total returns the sum of the weight numerators over their common denominator.
func (p Partition) Total() uint64 {
	return p.total
}

// Quo returns Sum() / Total().
func (p Partition) Quo() uint64 {
	return p.quo
}

// Rem returns Sum() % Total().
func (p Partition) Rem() uint64 {
	return p.rem
}

// Weights returns the weight numerators over the common denominator.
func (p Partition) Weights() []uint64 {
	return slices.Clone(p.parts)
}

// All returns the parts in the order of the weights.
// The part for weight numerator n is Quo() * n plus a share of Rem()
// proportional to n. The shares of the remainder are spread with an
// accumulator that gains Rem() * n at every part and is reduced by Total()
// each time it reaches it.
//
// The sequence can be iterated any number of times and always yields
// the same parts.
func (p Partition) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		if p.total == 0 {
			for range p.parts {
				if !yield(0) {
					return
				}
			}
			return
		}
		acc := p.total - 1
		for _, n := range p.parts {
			// extra = (acc + rem * n) / total, acc = (acc + rem * n) % total
			w := MulWide(p.rem, n)
			lo, carry := bits.Add64(w.Lo, acc, 0)
			_, extra, r, _ := DivWide(w.Hi+carry, lo, p.total)
			acc = r
			if !yield(p.quo*n + extra) {
				return
			}
		}
	}
}

// Values returns the parts as a slice.
// Also see method [Partition.All].
func (p Partition) Values() []uint64 {
	return slices.Collect(p.All())
}
