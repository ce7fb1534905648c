package exact

import (
	"fmt"
	"math"
	"math/bits"
)

// pow10 is a table of powers of 10, where pow10[x] = 10^x.
// 10^18 is the largest power of 10 that fits into int64.
var pow10 = [...]uint64{
	1,                         // 10^0
	10,                        // 10^1
	100,                       // 10^2
	1_000,                     // 10^3
	10_000,                    // 10^4
	100_000,                   // 10^5
	1_000_000,                 // 10^6
	10_000_000,                // 10^7
	100_000_000,               // 10^8
	1_000_000_000,             // 10^9
	10_000_000_000,            // 10^10
	100_000_000_000,           // 10^11
	1_000_000_000_000,         // 10^12
	10_000_000_000_000,        // 10^13
	100_000_000_000_000,       // 10^14
	1_000_000_000_000_000,     // 10^15
	10_000_000_000_000_000,    // 10^16
	100_000_000_000_000_000,   // 10^17
	1_000_000_000_000_000_000, // 10^18
}

// Wide is an unsigned 128-bit integer equal to Hi * 2^64 + Lo.
// It is the exact product of two 64-bit integers, see [MulWide].
type Wide struct {
	Hi uint64
	Lo uint64
}

// String implements [fmt.Stringer] interface.
func (w Wide) String() string {
	if w.Hi == 0 {
		return fmt.Sprint(w.Lo)
	}
	return fmt.Sprintf("0x%x%016x", w.Hi, w.Lo)
}

// Cmp compares w and v and returns:
//
//	-1 if w < v
//	 0 if w == v
//	+1 if w > v
func (w Wide) Cmp(v Wide) int {
	switch {
	case w.Hi < v.Hi:
		return -1
	case w.Hi > v.Hi:
		return 1
	case w.Lo < v.Lo:
		return -1
	case w.Lo > v.Lo:
		return 1
	}
	return 0
}

// MulWide returns the exact 128-bit product of a and b.
func MulWide(a, b uint64) Wide {
	hi, lo := bits.Mul64(a, b)
	return Wide{Hi: hi, Lo: lo}
}

const (
	digitBits = 32
	digitMask = 1<<digitBits - 1
	digitBase = 1 << digitBits
)

// DivWide divides the 128-bit integer hi * 2^64 + lo by divisor and returns
// the 128-bit quotient qhi * 2^64 + qlo together with the remainder.
//
// The division is performed on 32-bit digits.
// Divisors that fit into a single digit take a short division path,
// all other divisors are normalized and divided with the classic
// estimate-and-correct long division (Knuth, TAOCP vol. 2, 4.3.1, Algorithm D).
//
// DivWide returns an error if divisor is 0.
func DivWide(hi, lo, divisor uint64) (qhi, qlo, rem uint64, err error) {
	if divisor == 0 {
		return 0, 0, 0, ErrDivisionByZero.New("%v / 0", Wide{Hi: hi, Lo: lo})
	}
	if divisor <= digitMask {
		qhi, qlo, rem = divShort(hi, lo, divisor)
		return qhi, qlo, rem, nil
	}
	qhi, qlo, rem = divLong(hi, lo, divisor)
	return qhi, qlo, rem, nil
}

// divShort divides a 4-digit dividend by a single-digit divisor.
func divShort(hi, lo, d uint64) (qhi, qlo, rem uint64) {
	u := [4]uint64{lo & digitMask, lo >> digitBits, hi & digitMask, hi >> digitBits}
	var q [4]uint64
	for j := len(u) - 1; j >= 0; j-- {
		t := rem<<digitBits | u[j] // rem < d < 2^32
		q[j] = t / d
		rem = t - q[j]*d
	}
	qhi = q[3]<<digitBits | q[2]
	qlo = q[1]<<digitBits | q[0]
	return qhi, qlo, rem
}

// divLong divides a 4-digit dividend by a 2-digit divisor.
// Every digit is kept in the lower half of a uint64.
func divLong(hi, lo, divisor uint64) (qhi, qlo, rem uint64) {
	// Normalization: the top bit of the divisor must be set.
	// divisor >= 2^32, hence s < 32 and the shifted dividend fits into 5 digits.
	s := uint(bits.LeadingZeros64(divisor))
	v := divisor << s
	vn := [2]uint64{v & digitMask, v >> digitBits}
	n0 := lo << s
	n1 := hi<<s | lo>>(64-s)
	n2 := hi >> (64 - s)
	u := [5]uint64{n0 & digitMask, n0 >> digitBits, n1 & digitMask, n1 >> digitBits, n2}

	var q [3]uint64
	for j := len(q) - 1; j >= 0; j-- {
		// Estimate the quotient digit from the top two digits of the
		// remaining dividend. The estimate is at most 2 too high.
		num := u[j+2]<<digitBits | u[j+1]
		qhat := num / vn[1]
		rhat := num - qhat*vn[1]
		for qhat >= digitBase || qhat*vn[0] > rhat<<digitBits|u[j] {
			qhat--
			rhat += vn[1]
			if rhat >= digitBase {
				break
			}
		}

		// Multiply and subtract.
		var carry, borrow uint64
		for i := range vn {
			p := qhat*vn[i] + carry
			carry = p >> digitBits
			t := u[i+j] - p&digitMask - borrow
			u[i+j] = t & digitMask
			borrow = t >> 63
		}
		t := u[j+2] - carry - borrow
		u[j+2] = t & digitMask

		// The estimate was still 1 too high, add the divisor back.
		if t>>63 != 0 {
			qhat--
			var c uint64
			for i := range vn {
				t := u[i+j] + vn[i] + c
				u[i+j] = t & digitMask
				c = t >> digitBits
			}
			u[j+2] = (u[j+2] + c) & digitMask
		}
		q[j] = qhat
	}

	// Denormalization: the remainder is left in the two lowest digits.
	rem = (u[1]<<digitBits | u[0]) >> s
	qhi = q[2]
	qlo = q[1]<<digitBits | q[0]
	return qhi, qlo, rem
}

// SignDecompose returns the absolute value of x as uint64 and reports
// whether x is negative.
// Unlike -x, it is exact for [math.MinInt64], whose magnitude is 2^63.
func SignDecompose(x int64) (mag uint64, neg bool) {
	if x < 0 {
		return ^uint64(x) + 1, true
	}
	return uint64(x), false
}

// SignRecompose is the inverse of [SignDecompose].
// SignRecompose returns an error if the magnitude cannot be represented as int64
// with the requested sign.
func SignRecompose(mag uint64, neg bool) (int64, error) {
	x, ok := recompose(mag, neg)
	if !ok {
		if neg {
			return 0, ErrOverflow.New("-%v does not fit into int64", mag)
		}
		return 0, ErrOverflow.New("%v does not fit into int64", mag)
	}
	return x, nil
}

func recompose(mag uint64, neg bool) (int64, bool) {
	switch {
	case neg && mag > 1<<63:
		return 0, false
	case neg:
		return int64(^mag + 1), true
	case mag > math.MaxInt64:
		return 0, false
	}
	return int64(mag), true
}

// GCD returns the greatest common divisor of a and b.
// GCD(0, 0) is 0.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b.
// LCM returns 0 if either argument is 0, and an error
// if the multiple does not fit into uint64.
func LCM(a, b uint64) (uint64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	z, ok := mulUint64(a/GCD(a, b), b)
	if !ok {
		return 0, ErrOverflow.New("lcm(%v, %v) does not fit into uint64", a, b)
	}
	return z, nil
}

// addUint64 calculates x + y and checks overflow.
func addUint64(x, y uint64) (z uint64, ok bool) {
	z, carry := bits.Add64(x, y, 0)
	return z, carry == 0
}

// mulUint64 calculates x * y and checks overflow.
func mulUint64(x, y uint64) (z uint64, ok bool) {
	hi, lo := bits.Mul64(x, y)
	return lo, hi == 0
}

// addInt64 calculates x + y and checks overflow.
func addInt64(x, y int64) (z int64, ok bool) {
	z = x + y
	if (z > x) != (y > 0) {
		return 0, false
	}
	return z, true
}

// subInt64 calculates x - y and checks overflow.
func subInt64(x, y int64) (z int64, ok bool) {
	z = x - y
	if (z < x) != (y > 0) {
		return 0, false
	}
	return z, true
}

// mulInt64 calculates x * y and checks overflow.
func mulInt64(x, y int64) (z int64, ok bool) {
	xmag, xneg := SignDecompose(x)
	ymag, yneg := SignDecompose(y)
	return mulInt64Uint64(xmag, xneg != yneg, ymag)
}

// mulInt64Uint64 calculates (-1)^neg * xmag * y and checks overflow.
func mulInt64Uint64(xmag uint64, neg bool, y uint64) (z int64, ok bool) {
	mag, ok := mulUint64(xmag, y)
	if !ok {
		return 0, false
	}
	return recompose(mag, neg)
}

// lsh (Left Shift) calculates x * 10^shift and checks overflow.
func lsh(x int64, shift int) (z int64, ok bool) {
	switch {
	case shift <= 0 || x == 0:
		return x, true
	case shift >= len(pow10):
		return 0, false
	}
	return mulInt64(x, int64(pow10[shift]))
}

// rshHalfUp (Right Shift) calculates x / 10^shift and rounds result
// using "half away from zero" rule.
func rshHalfUp(x int64, shift int) int64 {
	switch {
	case x == 0 || shift <= 0:
		return x
	case shift >= len(pow10):
		return 0
	}
	mag, neg := SignDecompose(x)
	y := pow10[shift]
	z := mag / y
	r := mag - z*y
	if r >= y-r {
		z++
	}
	q, _ := recompose(z, neg) // z < 2^63 as shift > 0
	return q
}
