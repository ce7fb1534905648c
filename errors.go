package exact

import "github.com/zeebo/errs"

// Error classes returned by this package.
// Use [errs.Class.Has] to check whether an error belongs to a class:
//
//	if exact.ErrOverflow.Has(err) {
//		...
//	}
var (
	// ErrOverflow is returned when the exact result of an operation
	// does not fit into the target integer width.
	ErrOverflow = errs.Class("overflow")

	// ErrDivisionByZero is returned when a divisor is zero.
	ErrDivisionByZero = errs.Class("division by zero")

	// ErrOutOfRange is returned when an argument is outside of its domain,
	// for example a precision greater than [MaxPrecision] or a zero denominator.
	ErrOutOfRange = errs.Class("argument out of range")
)
